package icon

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

// Generate creates every density directory under resDir and, when src is
// set, rasterizes src into each of them. It stops at the first failure and
// returns the icon files written so far.
func Generate(ctx context.Context, r Rasterizer, src, resDir string, logger hclog.Logger) ([]string, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	var written []string
	for _, d := range Densities {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		dir := filepath.Join(resDir, d.Dir())
		if err := os.MkdirAll(dir, 0755); err != nil {
			return written, fmt.Errorf("creating %s: %w", dir, err)
		}

		if src == "" {
			logger.Trace("icon source not set, leaving bucket empty", "bucket", d.Name)
			continue
		}

		dst := filepath.Join(dir, FileName)
		logger.Debug("rasterizing icon", "bucket", d.Name, "size", d.Size, "output", dst)
		if err := r.Rasterize(ctx, src, d.Size, d.Size, dst); err != nil {
			return written, fmt.Errorf("%s icon: %w", d.Name, err)
		}
		written = append(written, dst)
	}
	return written, nil
}
