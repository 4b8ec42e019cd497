package icon

import (
	"context"
	"testing"
)

func TestDispatch(t *testing.T) {
	if _, ok := Dispatch("", nil).(*sourceRasterizer); !ok {
		t.Errorf("Dispatch(\"\") should return *sourceRasterizer")
	}
	if _, ok := Dispatch(SelectAuto, nil).(*sourceRasterizer); !ok {
		t.Errorf("Dispatch(%q) should return *sourceRasterizer", SelectAuto)
	}
	if _, ok := Dispatch(SelectBuiltin, nil).(*ResizeRasterizer); !ok {
		t.Errorf("Dispatch(%q) should return *ResizeRasterizer", SelectBuiltin)
	}

	r, ok := Dispatch("inkscape", []string{"{input}"}).(*CommandRasterizer)
	if !ok {
		t.Fatalf("Dispatch(\"inkscape\") should return *CommandRasterizer")
	}
	if r.Path != "inkscape" || len(r.Args) != 1 {
		t.Errorf("CommandRasterizer = %+v", r)
	}
}

func TestSourceRasterizerRoutesByExtension(t *testing.T) {
	tests := []struct {
		src        string
		wantRaster bool
	}{
		{"icon.svg", false},
		{"icon.SVG", false},
		{"icon.png", true},
		{"icon.PNG", true},
		{"photo.jpg", true},
		{"photo.jpeg", true},
		{"icon", false},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			raster := &fakeRasterizer{}
			vector := &fakeRasterizer{}
			s := &sourceRasterizer{raster: raster, vector: vector}

			dst := t.TempDir() + "/out.png"
			if err := s.Rasterize(context.Background(), tt.src, 8, 8, dst); err != nil {
				t.Fatalf("Rasterize error: %v", err)
			}

			gotRaster := len(raster.calls) == 1
			if gotRaster != tt.wantRaster {
				t.Errorf("raster used = %v, want %v", gotRaster, tt.wantRaster)
			}
			if len(raster.calls)+len(vector.calls) != 1 {
				t.Errorf("expected exactly one call, got raster=%d vector=%d", len(raster.calls), len(vector.calls))
			}
		})
	}
}
