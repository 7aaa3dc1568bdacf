package calibration

import (
	"errors"
	"testing"

	"github.com/tsawler/cutstudio/model"
)

func TestComputeLayoutFourMarks(t *testing.T) {
	opts, err := Preset("gx_24_gs_24", "A4", FourMarks)
	if err != nil {
		t.Fatalf("Preset failed: %v", err)
	}
	layout, err := ComputeLayout(opts)
	if err != nil {
		t.Fatalf("ComputeLayout failed: %v", err)
	}

	want := Settings{Version: 1, PageW: 210, PageH: 297, DX: 25, DY: 30, W: 160, H: 197}
	if layout.Settings != want {
		t.Errorf("Settings = %+v, want %+v", layout.Settings, want)
	}

	if len(layout.Marks) != 4 {
		t.Fatalf("expected 4 marks, got %d", len(layout.Marks))
	}
	if layout.Marks[0].Center != (model.Point{X: 25, Y: 30}) {
		t.Errorf("reference mark at %v, want (25, 30)", layout.Marks[0].Center)
	}
	if layout.Marks[3].Center != (model.Point{X: 185, Y: 227}) {
		t.Errorf("top right mark at %v, want (185, 227)", layout.Marks[3].Center)
	}

	area := model.BBox{X: 30, Y: 35, Width: 150, Height: 187}
	if layout.CuttingArea != area {
		t.Errorf("CuttingArea = %v, want %v", layout.CuttingArea, area)
	}
}

func TestComputeLayoutThreeMarks(t *testing.T) {
	opts, err := Preset("sv_8", "A3", ThreeMarks)
	if err != nil {
		t.Fatalf("Preset failed: %v", err)
	}

	layout, err := ComputeLayout(opts)
	if err != nil {
		t.Fatalf("ComputeLayout failed: %v", err)
	}

	if len(layout.Marks) != 3 {
		t.Errorf("expected 3 marks, got %d", len(layout.Marks))
	}
	want := Settings{Version: 1, PageW: 297, PageH: 420, DX: 28, DY: 35, W: 241, H: 374}
	if layout.Settings != want {
		t.Errorf("Settings = %+v, want %+v", layout.Settings, want)
	}
}

func TestComputeLayoutErrors(t *testing.T) {
	base, err := Preset("gx_24_gs_24", "A4", FourMarks)
	if err != nil {
		t.Fatalf("Preset failed: %v", err)
	}

	t.Run("too small", func(t *testing.T) {
		opts := base
		opts.Page = PageSize{Width: 40, Height: 40}
		_, err := ComputeLayout(opts)
		if !errors.Is(err, ErrInvalidLayout) {
			t.Errorf("expected ErrInvalidLayout, got %v", err)
		}
	})

	t.Run("unknown mark type", func(t *testing.T) {
		opts := base
		opts.MarkType = "five"
		if _, err := ComputeLayout(opts); err == nil {
			t.Error("expected error for unknown mark type")
		}
	})
}

func TestPresetUnknown(t *testing.T) {
	if _, err := Preset("plotter", "A4", FourMarks); err == nil {
		t.Error("expected error for unknown machine")
	}
	if _, err := Preset("gr_g", "Letter", FourMarks); err == nil {
		t.Error("expected error for unknown page")
	}
}
