package scaffold

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/paw-tools/paw/internal/assets"
	"github.com/paw-tools/paw/internal/icon"
	"github.com/paw-tools/paw/internal/project"
)

//go:embed templates
var scaffoldFS embed.FS

// Template file names. Each is written under the same name.
const (
	BuildScriptName = "build.gradle"
	ManifestName    = "AndroidManifest.xml"
	ActivityName    = "MainActivity.java"
)

// Fixed locations inside the generated project, slash-separated.
const (
	MainDir   = "src/main"
	JavaDir   = "src/main/java"
	AssetsDir = "src/main/assets/www"
	ResDir    = "src/main/res"
)

// templateFile maps a template to its destination directory.
type templateFile struct {
	Name string
	Dir  func(cfg *project.ProjectConfig) string // slash path relative to the output root
}

// templateSet is rendered in order.
var templateSet = []templateFile{
	{Name: BuildScriptName, Dir: func(*project.ProjectConfig) string { return "." }},
	{Name: ManifestName, Dir: func(*project.ProjectConfig) string { return MainDir }},
	{Name: ActivityName, Dir: ActivityDir},
}

// ActivityDir returns the activity source directory for cfg's package.
func ActivityDir(cfg *project.ProjectConfig) string {
	return path.Join(append([]string{JavaDir}, cfg.PackageSegments()...)...)
}

// Result holds the outcome of a generation run.
type Result struct {
	OutputDir string
	Files     []string // slash paths relative to OutputDir, in pipeline order
	Warnings  []string
}

// Generator renders projects. The zero value is not usable; call New.
type Generator struct {
	templates  fs.FS
	rasterizer icon.Rasterizer
	logger     hclog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithRasterizer sets the icon rasterizer.
func WithRasterizer(r icon.Rasterizer) Option {
	return func(g *Generator) { g.rasterizer = r }
}

// WithLogger sets the logger.
func WithLogger(l hclog.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// WithTemplates replaces the embedded template set. fsys must contain every
// file of the set at its root.
func WithTemplates(fsys fs.FS) Option {
	return func(g *Generator) { g.templates = fsys }
}

// New returns a Generator using the embedded templates, automatic rasterizer
// selection and a silent logger unless overridden.
func New(opts ...Option) *Generator {
	sub, err := fs.Sub(scaffoldFS, "templates")
	if err != nil {
		panic(err) // embedded directory is always present
	}
	g := &Generator{
		templates:  sub,
		rasterizer: icon.Dispatch(icon.SelectAuto, nil),
		logger:     hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate writes the project for cfg into outputDir. Re-running overwrites
// generated files; unrelated files in outputDir are left alone. The pipeline
// is not atomic: on failure, files written by earlier steps remain.
func (g *Generator) Generate(ctx context.Context, cfg *project.ProjectConfig, outputDir string) (*Result, error) {
	if cfg == nil {
		return nil, errors.New("nil project config")
	}

	// Input paths may have changed since the config was loaded.
	if err := project.CheckPaths(cfg); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, &FilesystemError{Op: "create output directory", Path: outputDir, Err: err}
	}

	result := &Result{OutputDir: outputDir}
	log := g.logger.With("output", outputDir)

	values := cfg.Values()
	for _, tf := range templateSet {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		rel, err := g.renderTemplate(tf, cfg, values, outputDir)
		if err != nil {
			return result, err
		}
		log.Debug("rendered template", "template", tf.Name, "path", rel)
		result.Files = append(result.Files, rel)
	}

	if cfg.CopyFrom != "" {
		dst := filepath.Join(outputDir, filepath.FromSlash(AssetsDir))
		log.Debug("copying web assets", "from", cfg.CopyFrom)
		if err := assets.Replace(cfg.CopyFrom, dst); err != nil {
			return result, &FilesystemError{Op: "copy assets", Path: dst, Err: err}
		}
		result.Files = append(result.Files, AssetsDir+"/")
		if _, err := os.Stat(filepath.Join(dst, "index.html")); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s has no index.html; the activity loads file:///android_asset/www/index.html", cfg.CopyFrom))
		}
	} else {
		result.Warnings = append(result.Warnings, "copy_from not set; no web assets embedded")
	}

	resDir := filepath.Join(outputDir, filepath.FromSlash(ResDir))
	icons, err := icon.Generate(ctx, g.rasterizer, cfg.SVGIcon, resDir, g.logger.Named("icon"))
	for _, p := range icons {
		if rel, relErr := filepath.Rel(outputDir, p); relErr == nil {
			result.Files = append(result.Files, filepath.ToSlash(rel))
		}
	}
	if err != nil {
		if errors.Is(err, icon.ErrExternalTool) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return result, err
		}
		return result, &FilesystemError{Op: "generate icons", Path: resDir, Err: err}
	}
	if cfg.SVGIcon == "" {
		result.Warnings = append(result.Warnings, "svg_icon not set; mipmap directories left empty")
	}

	log.Info("project generated", "files", len(result.Files))
	return result, nil
}

// renderTemplate renders one template and writes it atomically. Nothing is
// written when rendering fails.
func (g *Generator) renderTemplate(tf templateFile, cfg *project.ProjectConfig, values map[string]string, outputDir string) (string, error) {
	text, err := fs.ReadFile(g.templates, tf.Name)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", tf.Name, err)
	}

	rendered, err := Render(tf.Name, string(text), values)
	if err != nil {
		return "", err
	}

	relDir := tf.Dir(cfg)
	dir := filepath.Join(outputDir, filepath.FromSlash(relDir))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", &FilesystemError{Op: "create directory", Path: dir, Err: err}
	}

	dst := filepath.Join(dir, tf.Name)
	if err := writeFileAtomic(dst, rendered, 0644); err != nil {
		return "", &FilesystemError{Op: "write", Path: dst, Err: err}
	}
	return path.Join(relDir, tf.Name), nil
}

// writeFileAtomic writes data to a temporary file next to name and renames
// it into place, so name holds either the old or the complete new content.
func writeFileAtomic(name string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpName, perm); err != nil {
		return err
	}
	return os.Rename(tmpName, name)
}
