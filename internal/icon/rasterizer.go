package icon

import (
	"context"
	"path/filepath"
	"strings"
)

// Rasterizer renders the icon at src into a width×height PNG at dst,
// overwriting any existing file.
type Rasterizer interface {
	Rasterize(ctx context.Context, src string, width, height int, dst string) error
}

// Rasterizer selectors accepted by Dispatch besides a tool name or path.
const (
	SelectAuto    = "auto"
	SelectBuiltin = "builtin"
)

// rasterExts are icon sources handled in-process.
var rasterExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// Dispatch returns the Rasterizer for a configured selector. "auto" (or
// empty) picks by source extension, "builtin" always resamples in-process,
// and any other value names an external tool. args overrides the tool's
// default argument template.
func Dispatch(tool string, args []string) Rasterizer {
	switch tool {
	case "", SelectAuto:
		return &sourceRasterizer{
			raster: &ResizeRasterizer{},
			vector: &CommandRasterizer{Args: args},
		}
	case SelectBuiltin:
		return &ResizeRasterizer{}
	default:
		return &CommandRasterizer{Path: tool, Args: args}
	}
}

// sourceRasterizer routes raster sources to an in-process resampler and
// everything else to a vector tool.
type sourceRasterizer struct {
	raster Rasterizer
	vector Rasterizer
}

func (s *sourceRasterizer) Rasterize(ctx context.Context, src string, width, height int, dst string) error {
	if rasterExts[strings.ToLower(filepath.Ext(src))] {
		return s.raster.Rasterize(ctx, src, width, height, dst)
	}
	return s.vector.Rasterize(ctx, src, width, height, dst)
}
