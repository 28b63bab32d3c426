package dev

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	clientdist "github.com/marquee-dev/marquee/client/dist"
	"github.com/marquee-dev/marquee/internal/build"
	"github.com/marquee-dev/marquee/internal/config"
	"github.com/marquee-dev/marquee/internal/errors"
	"github.com/marquee-dev/marquee/pkg/middleware"
)

// MetricsPath is where Prometheus metrics are served.
const MetricsPath = "/metrics"

// ServerOptions configures the development server.
type ServerOptions struct {
	// Config is the project configuration.
	Config *config.Config

	// Output receives the timestamped status lines. Defaults to os.Stdout.
	Output io.Writer

	// OnBuildStart is called when a build starts.
	OnBuildStart func()

	// OnBuildComplete is called when a build completes. err is nil on
	// success.
	OnBuildComplete func(result *build.Result, err error)

	// OnReload is called when browsers are reloaded.
	OnReload func(clients int)
}

// Server is the development server: it builds the project, serves the
// output and rebuilds on change.
type Server struct {
	config       *config.Config
	options      ServerOptions
	watcher      *Watcher
	reloadServer *ReloadServer
	changeCh     chan Change
	httpServer   *http.Server
	logger       *slog.Logger
	mu           sync.Mutex
	running      bool
	hotReload    bool
	buildErr     error
}

// NewServer creates a new development server.
func NewServer(options ServerOptions) *Server {
	cfg := options.Config
	if options.Output == nil {
		options.Output = os.Stdout
	}

	ignore := append([]string{}, DefaultIgnore...)
	ignore = append(ignore, cfg.Dev.Ignore...)
	if out := OutputIgnore(cfg); out != "" {
		ignore = append(ignore, out)
	}

	watcher := NewWatcher(WatcherConfig{
		Paths:    CollectWatchPaths(cfg),
		Ignore:   ignore,
		Debounce: 100 * time.Millisecond,
	})

	var reloadServer *ReloadServer
	if cfg.Dev.HotReload {
		reloadServer = NewReloadServer()
	}

	return &Server{
		config:       cfg,
		options:      options,
		watcher:      watcher,
		reloadServer: reloadServer,
		logger:       slog.Default().With("component", "dev"),
		hotReload:    cfg.Dev.HotReload,
	}
}

// Handler returns the dev server routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	if s.config.Dev.Metrics {
		r.Use(middleware.Prometheus())
	}
	r.Use(middleware.OpenTelemetry(
		middleware.WithRequestFilter(func(r *http.Request) bool {
			return r.URL.Path != MetricsPath && r.URL.Path != ReloadPath
		}),
	))

	if s.config.Dev.Metrics {
		r.Handle(MetricsPath, promhttp.Handler())
	}
	if s.reloadEnabled() {
		r.Get(ReloadPath, s.reloadServer.HandleWebSocket)
	}
	r.Get("/"+clientdist.ScriptPath, serveClientScript)
	r.Get("/*", s.serveOutput)

	return r
}

// Start builds the project and serves it until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	ln, err := net.Listen("tcp", s.config.DevAddress())
	if err != nil {
		s.Stop()
		return errors.New(errors.CodePortInUse).
			WithDetail(s.config.DevAddress()).
			Wrap(err)
	}

	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.log("Building...")
	s.rebuild(ctx)

	s.changeCh = make(chan Change, 64)
	s.watcher.OnChange(func(change Change) {
		select {
		case s.changeCh <- change:
		default:
		}
	})

	go s.watcher.Start(ctx)
	go s.processChanges(ctx)

	s.log("Server running at %s", s.config.DevURL())

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.Stop()
		return nil
	case err := <-errCh:
		s.Stop()
		return err
	}
}

// Stop stops the development server.
func (s *Server) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	httpServer := s.httpServer
	s.mu.Unlock()

	s.watcher.Stop()
	if s.reloadServer != nil {
		s.reloadServer.Close()
	}

	if httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(ctx)
	}
}

// processChanges serializes file change handling and coalesces bursts.
func (s *Server) processChanges(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case change := <-s.changeCh:
			changes := []Change{change}
			draining := true
			for draining {
				select {
				case next := <-s.changeCh:
					changes = append(changes, next)
				default:
					draining = false
				}
			}
			s.handleChanges(ctx, changes)
		}
	}
}

// handleChanges rebuilds once for a batch of changes. When only
// stylesheets changed, browsers swap stylesheets instead of reloading.
func (s *Server) handleChanges(ctx context.Context, changes []Change) {
	if len(changes) == 0 {
		return
	}

	onlyCSS := true
	var cssPath string
	for _, change := range changes {
		s.log("Changed: %s", change.Path)
		switch change.Type {
		case ChangeConfig:
			s.reloadConfig()
			onlyCSS = false
		case ChangeCSS:
			if cssPath == "" {
				cssPath = change.Path
			}
		default:
			onlyCSS = false
		}
	}

	s.log("Rebuilding...")
	if err := s.rebuild(ctx); err != nil {
		return
	}

	if onlyCSS && cssPath != "" {
		if !s.reloadEnabled() {
			s.log("CSS changed (hot reload disabled)")
			return
		}
		s.reloadServer.NotifyCSS(s.relativeToStatic(cssPath))
		s.log("CSS reloaded")
		return
	}

	s.notifyReload()
}

// rebuild runs a build and records its outcome for the error page and the
// browser overlay.
func (s *Server) rebuild(ctx context.Context) error {
	if s.options.OnBuildStart != nil {
		s.options.OnBuildStart()
	}

	s.mu.Lock()
	cfg := s.config
	s.mu.Unlock()

	result, err := build.New(cfg, build.Options{}).Build(ctx)

	s.mu.Lock()
	s.buildErr = err
	s.mu.Unlock()

	if s.options.OnBuildComplete != nil {
		s.options.OnBuildComplete(result, err)
	}

	if err != nil {
		s.logError("Build failed: %s", compactError(err))
		s.notifyError(compactError(err))
		return err
	}

	s.log("Built in %s", result.Duration.Round(time.Millisecond))
	s.clearReloadError()
	return nil
}

// reloadConfig re-reads marquee.json. The old config stays in effect when
// the new one is invalid.
func (s *Server) reloadConfig() {
	cfg, err := config.LoadFile(s.config.Path())
	if err != nil {
		s.logError("Config not reloaded: %s", compactError(err))
		return
	}
	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()
	s.log("Reloaded %s", config.ConfigFileName)
}

// serveOutput serves the build output, injecting the live-reload client
// into HTML pages. While the last build is failing, pages are replaced by
// an error page.
func (s *Server) serveOutput(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	outputDir := s.config.OutputPath()
	buildErr := s.buildErr
	s.mu.Unlock()

	name := path.Clean("/" + chi.URLParam(r, "*"))
	if strings.HasSuffix(name, "/") {
		name += build.IndexFile
	}
	file := filepath.Join(outputDir, filepath.FromSlash(name))
	if info, err := os.Stat(file); err == nil && info.IsDir() {
		file = filepath.Join(file, build.IndexFile)
		name = path.Join(name, build.IndexFile)
	}

	if !isHTML(name) {
		http.ServeFile(w, r, file)
		return
	}

	if buildErr != nil {
		s.serveErrorPage(w, buildErr)
		return
	}

	data, err := os.ReadFile(file)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if s.reloadEnabled() {
		data = InjectReloadScript(data)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(data)
}

func (s *Server) serveErrorPage(w http.ResponseWriter, buildErr error) {
	reloadScript := ""
	if s.reloadEnabled() {
		reloadScript = DevClientScript
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head><title>marquee dev server</title></head>
<body style="font-family: system-ui; padding: 40px; background: #1a1a1a; color: #fff;">
<h1 style="color: #ff5555;">Build Failed</h1>
<pre style="white-space: pre-wrap;">%s</pre>
<p style="color: #888;">The page will reload when the build succeeds.</p>
%s
</body>
</html>`, html.EscapeString(compactError(buildErr)), reloadScript)
}

func serveClientScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(clientdist.MarqueeJS)
}

// InjectReloadScript inserts the live-reload client before </body>, or
// before </html>, or at the end.
func InjectReloadScript(page []byte) []byte {
	script := []byte(DevClientScript)
	for _, marker := range [][]byte{[]byte("</body>"), []byte("</html>")} {
		if idx := bytes.LastIndex(page, marker); idx != -1 {
			out := make([]byte, 0, len(page)+len(script))
			out = append(out, page[:idx]...)
			out = append(out, script...)
			return append(out, page[idx:]...)
		}
	}
	return append(append([]byte{}, page...), script...)
}

func isHTML(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".html" || ext == ".htm"
}

// relativeToStatic maps a changed stylesheet to its URL path in the output.
func (s *Server) relativeToStatic(file string) string {
	rel, err := filepath.Rel(s.config.StaticPath(), file)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.Base(file)
	}
	return filepath.ToSlash(rel)
}

// compactError renders an error on one line with its detail and cause.
func compactError(err error) string {
	coded := errors.FromError(err, errors.CodeBuildRender)
	msg := coded.FormatCompact()
	if coded.Detail != "" {
		msg += " (" + coded.Detail + ")"
	}
	if coded.Wrapped != nil {
		msg += ": " + coded.Wrapped.Error()
	}
	return msg
}

// log writes a timestamped status line.
func (s *Server) log(format string, args ...any) {
	timestamp := time.Now().Format("15:04:05")
	fmt.Fprintf(s.options.Output, "[%s] %s\n", timestamp, fmt.Sprintf(format, args...))
}

// logError logs an error message.
func (s *Server) logError(format string, args ...any) {
	timestamp := time.Now().Format("15:04:05")
	fmt.Fprintf(s.options.Output, "[%s] %s%s%s\n", timestamp, "\033[31m", fmt.Sprintf(format, args...), "\033[0m")
	s.logger.Debug("dev server error", "message", fmt.Sprintf(format, args...))
}

func (s *Server) reloadEnabled() bool {
	return s.hotReload && s.reloadServer != nil
}

func (s *Server) notifyReload() {
	if !s.reloadEnabled() {
		s.log("Hot reload disabled; rebuild complete")
		return
	}

	s.reloadServer.NotifyReload()
	if s.options.OnReload != nil {
		s.options.OnReload(s.reloadServer.ClientCount())
	}
	s.log("Reloaded %d browsers", s.reloadServer.ClientCount())
}

func (s *Server) notifyError(errMsg string) {
	if !s.reloadEnabled() {
		return
	}
	s.reloadServer.NotifyError(errMsg)
}

func (s *Server) clearReloadError() {
	if !s.reloadEnabled() {
		return
	}
	s.reloadServer.ClearError()
}
