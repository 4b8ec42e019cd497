package icon

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"sync"
	"testing"
)

// writePNG writes a solid square-ish PNG of the given size.
func writePNG(path string, width, height int) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 30, G: 60, B: 90, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func pngSize(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decoding %s: %v", path, err)
	}
	return cfg.Width, cfg.Height
}

type call struct {
	src           string
	width, height int
	dst           string
}

// fakeRasterizer records calls and writes a real PNG of the requested size.
type fakeRasterizer struct {
	mu     sync.Mutex
	calls  []call
	failAt int // 1-based call index that fails; 0 never fails
	err    error
}

func (f *fakeRasterizer) Rasterize(_ context.Context, src string, width, height int, dst string) error {
	f.mu.Lock()
	f.calls = append(f.calls, call{src, width, height, dst})
	n := len(f.calls)
	f.mu.Unlock()

	if f.failAt != 0 && n == f.failAt {
		return f.err
	}
	return writePNG(dst, width, height)
}
