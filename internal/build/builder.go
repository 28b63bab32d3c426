package build

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	clientdist "github.com/marquee-dev/marquee/client/dist"
	"github.com/marquee-dev/marquee/internal/config"
	"github.com/marquee-dev/marquee/internal/errors"
	"github.com/marquee-dev/marquee/internal/markdown"
	"github.com/marquee-dev/marquee/pkg/landing"
	"github.com/marquee-dev/marquee/pkg/middleware"
	"github.com/marquee-dev/marquee/pkg/mount"
	"github.com/marquee-dev/marquee/pkg/render"
	"github.com/marquee-dev/marquee/pkg/vdom"
)

// IndexFile is the name of the generated page.
const IndexFile = "index.html"

// Result contains the build output.
type Result struct {
	// Duration is how long the build took.
	Duration time.Duration

	// Output is the output directory.
	Output string

	// Index is the path to the generated page.
	Index string

	// IndexSize is the size of the generated page in bytes.
	IndexSize int64

	// StaticFiles is the number of static files copied.
	StaticFiles int

	// Title is the page title, for reporting.
	Title string
}

// Options configures the builder.
type Options struct {
	// Output overrides build.output from the project config.
	Output string

	// Pretty indents the generated HTML. Only applies to the built-in
	// template; host templates are written as parsed.
	Pretty bool

	// Clean removes the output directory before building.
	Clean bool

	// OnProgress is called with progress updates.
	OnProgress func(step string)
}

// Builder turns a project into a static site.
type Builder struct {
	config  *config.Config
	options Options
	logger  *slog.Logger
}

// New creates a new builder.
func New(cfg *config.Config, options Options) *Builder {
	if !options.Pretty && cfg.Build.Pretty {
		options.Pretty = true
	}
	return &Builder{
		config:  cfg,
		options: options,
		logger:  slog.Default().With("component", "build"),
	}
}

// OutputPath returns the resolved output directory.
func (b *Builder) OutputPath() string {
	if b.options.Output == "" {
		return b.config.OutputPath()
	}
	if filepath.IsAbs(b.options.Output) {
		return b.options.Output
	}
	return filepath.Join(b.config.Dir(), b.options.Output)
}

// Build runs the whole pipeline: load the page config, compose, mount,
// write index.html, copy static files and the client runtime.
func (b *Builder) Build(ctx context.Context) (result *Result, err error) {
	start := time.Now()

	ctx, span := otel.Tracer("marquee").Start(ctx, "marquee.build")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
		middleware.RecordBuild(time.Since(start), err)
	}()

	outputDir := b.OutputPath()
	span.SetAttributes(attribute.String("marquee.output", outputDir))

	if b.options.Clean {
		b.progress("Cleaning output directory...")
		if err := b.Clean(); err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.progress("Loading page config...")
	pageCfg, err := b.loadPage()
	if err != nil {
		return nil, err
	}

	b.progress("Composing page...")
	page := landing.Compose(pageCfg, b.composeOptions()...)

	b.progress("Rendering " + IndexFile + "...")
	html, err := b.renderPage(page)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, errors.New(errors.CodeBuildWrite).WithDetail(outputDir).Wrap(err)
	}

	indexPath := filepath.Join(outputDir, IndexFile)
	if err := os.WriteFile(indexPath, html, 0644); err != nil {
		return nil, errors.New(errors.CodeBuildWrite).WithDetail(indexPath).Wrap(err)
	}

	b.progress("Copying static assets...")
	copied, err := b.copyStatic(ctx, outputDir)
	if err != nil {
		return nil, err
	}

	b.progress("Writing client runtime...")
	scriptPath := filepath.Join(outputDir, filepath.FromSlash(clientdist.ScriptPath))
	if err := writeFile(scriptPath, clientdist.MarqueeJS); err != nil {
		return nil, err
	}

	result = &Result{
		Duration:    time.Since(start),
		Output:      outputDir,
		Index:       indexPath,
		IndexSize:   int64(len(html)),
		StaticFiles: copied,
		Title:       page.Title,
	}
	b.logger.Debug("build complete",
		"output", outputDir,
		"static_files", copied,
		"duration", result.Duration)
	return result, nil
}

// loadPage reads and parses the page config.
func (b *Builder) loadPage() (*landing.PageConfig, error) {
	path := b.config.PagePath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.CodePageNotFound).
				WithDetail("No page config at " + path)
		}
		return nil, errors.New(errors.CodePageInvalid).Wrap(err)
	}

	cfg, err := landing.ParseConfig(data)
	if err != nil {
		return nil, errors.New(errors.CodePageInvalid).
			WithLocationFromError(path, data, err).
			Wrap(err)
	}
	return cfg, nil
}

func (b *Builder) composeOptions() []landing.Option {
	opts := []landing.Option{
		landing.WithAssets(landing.Assets{
			Star:        b.config.Assets.Star,
			StarOutline: b.config.Assets.StarOutline,
			Play:        b.config.Assets.Play,
		}),
	}
	if b.config.Content.Markdown {
		opts = append(opts, landing.WithDescriptionFormatter(
			markdown.New(markdown.Options{Unsafe: b.config.Content.Unsafe}),
		))
	}
	return opts
}

// scripts lists the page scripts, client runtime last.
func (b *Builder) scripts() []string {
	scripts := make([]string, 0, len(b.config.Assets.Scripts)+1)
	scripts = append(scripts, b.config.Assets.Scripts...)
	return append(scripts, clientdist.ScriptPath)
}

// renderPage serialises page. Without a host template the page goes
// through the vdom renderer, which supports pretty output; otherwise it
// is mounted into the parsed template.
func (b *Builder) renderPage(page *landing.Page) ([]byte, error) {
	templatePath := b.config.TemplatePath()
	if templatePath == "" {
		return b.renderStandalone(page)
	}

	data, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, errors.New(errors.CodeTemplateInvalid).
			WithDetail("Cannot read " + templatePath).
			Wrap(err)
	}
	doc, err := mount.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.New(errors.CodeTemplateInvalid).
			WithDetail(templatePath).
			Wrap(err)
	}

	opts := mount.Options{
		StyleSheets: b.config.Assets.StyleSheets,
		Scripts:     b.scripts(),
	}
	if err := mount.Document(doc, b.config.Mount.Selector, page, opts); err != nil {
		return nil, mountError(err, b.config.Mount.Selector, templatePath)
	}
	if b.options.Pretty {
		b.logger.Debug("pretty output ignored for host templates", "template", templatePath)
	}

	var buf bytes.Buffer
	if err := mount.Render(&buf, doc); err != nil {
		return nil, errors.New(errors.CodeBuildRender).Wrap(err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func (b *Builder) renderStandalone(page *landing.Page) ([]byte, error) {
	data := render.PageData{
		Body:        page.Attach(vdom.Div(vdom.Class(strings.TrimPrefix(mount.DefaultSelector, ".")))),
		Title:       page.Title,
		HTMLStyle:   page.DocumentStyle,
		StyleSheets: b.config.Assets.StyleSheets,
	}
	if page.Favicon != nil {
		data.Links = append(data.Links, render.LinkTag{
			Rel:  "icon",
			Href: page.Favicon.Href,
			Type: page.Favicon.Type,
		})
	}
	for _, src := range b.scripts() {
		data.Scripts = append(data.Scripts, render.ScriptTag{Src: src, Defer: true})
	}

	renderer := render.NewRenderer(render.RendererConfig{Pretty: b.options.Pretty})
	var buf bytes.Buffer
	if err := renderer.RenderPage(&buf, data); err != nil {
		return nil, errors.New(errors.CodeBuildRender).Wrap(err)
	}
	return buf.Bytes(), nil
}

// mountError maps mount failures to coded errors.
func mountError(err error, selector, template string) error {
	var code string
	switch {
	case stderrors.Is(err, mount.ErrNoMountPoint):
		code = errors.CodeMountNotFound
	case stderrors.Is(err, mount.ErrAmbiguousMountPoint):
		code = errors.CodeMountAmbiguous
	case stderrors.Is(err, mount.ErrInvalidSelector):
		code = errors.CodeMountSelector
	default:
		return errors.New(errors.CodeBuildRender).Wrap(err)
	}
	return errors.New(code).
		WithDetail("selector " + selector + " in " + template).
		Wrap(err)
}

// copyStatic copies the static directory into the output, keeping
// relative paths. A missing static directory is not an error. The output
// directory and the project's own files are skipped when the static
// directory contains them.
func (b *Builder) copyStatic(ctx context.Context, outputDir string) (int, error) {
	srcDir := b.config.StaticPath()
	if _, err := os.Stat(srcDir); os.IsNotExist(err) {
		return 0, nil
	}

	skipDir := absPath(outputDir)
	skipFiles := map[string]bool{}
	for _, p := range []string{b.config.Path(), b.config.PagePath(), b.config.TemplatePath()} {
		if p != "" {
			skipFiles[absPath(p)] = true
		}
	}

	copied := 0
	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if absPath(path) == skipDir {
				return filepath.SkipDir
			}
			return nil
		}
		if skipFiles[absPath(path)] {
			return nil
		}

		relPath, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		if err := copyFile(path, filepath.Join(outputDir, relPath)); err != nil {
			return err
		}
		copied++
		return nil
	})
	if err != nil {
		return copied, errors.New(errors.CodeBuildStatic).WithDetail(srcDir).Wrap(err)
	}
	return copied, nil
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

// progress reports build progress.
func (b *Builder) progress(step string) {
	if b.options.OnProgress != nil {
		b.options.OnProgress(step)
	}
}

// writeFile writes data, creating parent directories.
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.New(errors.CodeBuildWrite).WithDetail(path).Wrap(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New(errors.CodeBuildWrite).WithDetail(path).Wrap(err)
	}
	return nil
}

// copyFile copies a file, creating parent directories.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Clean removes the build output directory. It refuses to remove the
// project directory or anything containing it.
func (b *Builder) Clean() error {
	output, err := filepath.Abs(b.OutputPath())
	if err != nil {
		return errors.New(errors.CodeBuildUnsafeOutput).Wrap(err)
	}
	project, err := filepath.Abs(b.config.Dir())
	if err != nil {
		return errors.New(errors.CodeBuildUnsafeOutput).Wrap(err)
	}

	if output == project || strings.HasPrefix(project, output+string(filepath.Separator)) ||
		output == filepath.Dir(output) {
		return errors.New(errors.CodeBuildUnsafeOutput).
			WithDetail("Refusing to remove " + output)
	}
	if err := os.RemoveAll(output); err != nil {
		return errors.New(errors.CodeBuildWrite).WithDetail(output).Wrap(err)
	}
	return nil
}
