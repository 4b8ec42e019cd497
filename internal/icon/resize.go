package icon

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/nfnt/resize"
)

// ResizeRasterizer scales raster icon sources (PNG, JPEG) in-process with
// Lanczos resampling.
type ResizeRasterizer struct{}

// Rasterize decodes src, scales it to width×height and writes a PNG to dst.
func (r *ResizeRasterizer) Rasterize(ctx context.Context, src string, width, height int, dst string) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	img, err := decodeImage(src)
	if err != nil {
		return &ExternalToolError{Tool: SelectBuiltin, Err: err}
	}

	scaled := resize.Resize(uint(width), uint(height), img, resize.Lanczos3)

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating icon file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing icon file: %w", cerr)
		}
	}()

	if err := png.Encode(f, scaled); err != nil {
		return &ExternalToolError{Tool: SelectBuiltin, Err: fmt.Errorf("encoding icon: %w", err)}
	}
	return nil
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}
