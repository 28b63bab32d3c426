package dev

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	clientdist "github.com/marquee-dev/marquee/client/dist"
	"github.com/marquee-dev/marquee/internal/config"
)

func TestWatcher_Basic(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "movie.yaml")
	if err := os.WriteFile(testFile, []byte("title: A"), 0644); err != nil {
		t.Fatal(err)
	}

	watcher := NewWatcher(WatcherConfig{
		Paths:    []string{tmpDir},
		Debounce: 20 * time.Millisecond,
	})

	changes := make(chan Change, 10)
	watcher.OnChange(func(c Change) {
		changes <- c
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watcher.Start(ctx)
	<-watcher.Ready()

	if err := os.WriteFile(testFile, []byte("title: B"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case c := <-changes:
		if c.Path != testFile {
			t.Errorf("Change.Path = %q, want %q", c.Path, testFile)
		}
		if c.Type != ChangeContent {
			t.Errorf("Change.Type = %v, want %v", c.Type, ChangeContent)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Timeout waiting for change")
	}
}

func TestWatcher_NewDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	watcher := NewWatcher(WatcherConfig{
		Paths:    []string{tmpDir},
		Debounce: 20 * time.Millisecond,
	})
	changes := make(chan Change, 10)
	watcher.OnChange(func(c Change) {
		changes <- c
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watcher.Start(ctx)
	<-watcher.Ready()

	subDir := filepath.Join(tmpDir, "css")
	if err := os.Mkdir(subDir, 0755); err != nil {
		t.Fatal(err)
	}
	// Give the watcher a moment to add the new directory.
	time.Sleep(100 * time.Millisecond)

	cssFile := filepath.Join(subDir, "style.css")
	if err := os.WriteFile(cssFile, []byte("body{}"), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case c := <-changes:
			if c.Path == cssFile && c.Type == ChangeCSS {
				return
			}
		case <-deadline:
			t.Fatal("change in a new directory was not reported")
		}
	}
}

func TestWatcher_IgnoredChangesNotReported(t *testing.T) {
	tmpDir := t.TempDir()
	distDir := filepath.Join(tmpDir, "dist")
	if err := os.Mkdir(distDir, 0755); err != nil {
		t.Fatal(err)
	}

	watcher := NewWatcher(WatcherConfig{
		Paths:    []string{tmpDir},
		Ignore:   append([]string{"dist"}, DefaultIgnore...),
		Debounce: 20 * time.Millisecond,
	})
	changes := make(chan Change, 10)
	watcher.OnChange(func(c Change) {
		changes <- c
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watcher.Start(ctx)
	<-watcher.Ready()

	os.WriteFile(filepath.Join(distDir, "index.html"), []byte("<html>"), 0644)
	os.WriteFile(filepath.Join(tmpDir, "movie.yaml.swp"), []byte("x"), 0644)

	select {
	case c := <-changes:
		t.Errorf("unexpected change reported: %+v", c)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_Ignore(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "tmp", "project")
	watcher := NewWatcher(WatcherConfig{
		Paths:  []string{root},
		Ignore: append([]string{"dist", "static/vendor", "drafts/*.yaml"}, DefaultIgnore...),
	})

	tests := []struct {
		path   string
		ignore bool
	}{
		{"movie.yaml", false},
		{"static/css/style.css", false},
		{"dist/index.html", true},
		{".git/HEAD", true},
		{"node_modules/swiper/swiper.js", true},
		{"movie.yaml.swp", true},
		{"movie.yaml~", true},
		{"static/vendor/swiper.css", true},
		{"drafts/witcher.yaml", true},
		{"drafts/notes.md", false},
		{"static/distant.png", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			full := filepath.Join(root, filepath.FromSlash(tt.path))
			if got := watcher.shouldIgnore(full); got != tt.ignore {
				t.Errorf("shouldIgnore(%q) = %v, want %v", tt.path, got, tt.ignore)
			}
		})
	}
}

func TestWatcher_IgnoreIsRelativeToRoot(t *testing.T) {
	// The project itself lives under a directory named like an ignore
	// pattern; only paths inside the project are matched.
	root := filepath.Join(string(filepath.Separator), "home", "dist", "promo")
	watcher := NewWatcher(WatcherConfig{
		Paths:  []string{root},
		Ignore: []string{"dist"},
	})

	if watcher.shouldIgnore(filepath.Join(root, "movie.yaml")) {
		t.Error("files in the project should not be ignored because of a parent directory name")
	}
	if !watcher.shouldIgnore(filepath.Join(root, "dist", "index.html")) {
		t.Error("the output directory inside the project should be ignored")
	}
}

func TestClassifyChange(t *testing.T) {
	tests := []struct {
		path string
		want ChangeType
	}{
		{"movie.yaml", ChangeContent},
		{"content/movie.yml", ChangeContent},
		{"page.json", ChangeContent},
		{"marquee.json", ChangeConfig},
		{"static/css/style.css", ChangeCSS},
		{"styles.scss", ChangeCSS},
		{"index.html", ChangeTemplate},
		{"static/img/poster.jpg", ChangeAsset},
		{"static/img/star.svg", ChangeAsset},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := classifyChange(tt.path); got != tt.want {
				t.Errorf("classifyChange(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestWatcher_IsRunning(t *testing.T) {
	watcher := NewWatcher(WatcherConfig{
		Paths: []string{t.TempDir()},
	})

	if watcher.IsRunning() {
		t.Error("Watcher should not be running initially")
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		watcher.Start(ctx)
		close(done)
	}()
	<-watcher.Ready()
	if !watcher.IsRunning() {
		t.Error("Watcher should be running after Start")
	}

	cancel()
	<-done
	if watcher.IsRunning() {
		t.Error("Watcher should stop when its context is cancelled")
	}
}

func TestCollectWatchPaths(t *testing.T) {
	dir := t.TempDir()
	cfg := config.New()
	if err := cfg.SaveTo(filepath.Join(dir, config.ConfigFileName)); err != nil {
		t.Fatal(err)
	}
	cfg.Page = filepath.Join(string(filepath.Separator), "content", "movie.yaml")

	paths := CollectWatchPaths(cfg)
	want := []string{dir, cfg.Page}
	if len(paths) != len(want) {
		t.Fatalf("CollectWatchPaths() = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}

	if got := OutputIgnore(cfg); got != "dist" {
		t.Errorf("OutputIgnore() = %q, want %q", got, "dist")
	}
}

func TestReloadMessage_JSON(t *testing.T) {
	data, err := json.Marshal(ReloadMessage{Type: ReloadTypeCSS, File: "css/style.css"})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"type":"css","file":"css/style.css"}` {
		t.Errorf("json = %s", data)
	}
}

func TestDevClientScript(t *testing.T) {
	for _, want := range []string{"WebSocket", ReloadPath, "location.reload", "marquee-error-overlay"} {
		if !strings.Contains(DevClientScript, want) {
			t.Errorf("DevClientScript should contain %q", want)
		}
	}
}

func TestInjectReloadScript(t *testing.T) {
	tests := []struct {
		name   string
		page   string
		before string
	}{
		{"before body", "<html><body><p>x</p></body></html>", "</body>"},
		{"before html", "<html><p>x</p></html>", "</html>"},
		{"appended", "<p>x</p>", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(InjectReloadScript([]byte(tt.page)))
			idx := strings.Index(got, DevClientScript)
			if idx < 0 {
				t.Fatal("script not injected")
			}
			if tt.before == "" {
				if !strings.HasSuffix(got, DevClientScript) {
					t.Error("script should be appended")
				}
				return
			}
			if !strings.HasPrefix(got[idx+len(DevClientScript):], tt.before) {
				t.Errorf("script should precede %s", tt.before)
			}
		})
	}
}

// =============================================================================
// Reload server
// =============================================================================

func dialReload(t *testing.T, serverURL string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(serverURL, "http") + ReloadPath
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, rs *ReloadServer, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for rs.ClientCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("ClientCount() = %d, want %d", rs.ClientCount(), n)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// readMessage returns the next message that is not a "clear".
func readMessage(t *testing.T, conn *websocket.Conn) ReloadMessage {
	t.Helper()
	for {
		conn.SetReadDeadline(time.Now().Add(3 * time.Second))
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		var msg ReloadMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if msg.Type != ReloadTypeClear {
			return msg
		}
	}
}

func TestReloadServer_Broadcast(t *testing.T) {
	rs := NewReloadServer()
	mux := http.NewServeMux()
	mux.HandleFunc(ReloadPath, rs.HandleWebSocket)
	ts := httptest.NewServer(mux)
	defer ts.Close()

	if rs.ClientCount() != 0 {
		t.Errorf("ClientCount() = %d, want 0", rs.ClientCount())
	}

	a := dialReload(t, ts.URL)
	b := dialReload(t, ts.URL)
	waitForClients(t, rs, 2)

	rs.NotifyReload()
	for _, conn := range []*websocket.Conn{a, b} {
		if msg := readMessage(t, conn); msg.Type != ReloadTypeFull {
			t.Errorf("Type = %q, want %q", msg.Type, ReloadTypeFull)
		}
	}

	rs.NotifyError("E103: Page config not found")
	if msg := readMessage(t, a); msg.Type != ReloadTypeError || !strings.Contains(msg.Error, "E103") {
		t.Errorf("error message = %+v", msg)
	}

	a.Close()
	waitForClients(t, rs, 1)

	rs.Close()
	if rs.ClientCount() != 0 {
		t.Errorf("ClientCount() after Close = %d, want 0", rs.ClientCount())
	}
}

// =============================================================================
// Server
// =============================================================================

const testPage = `title: The Witcher
header:
  logo: img/logo.svg
main:
  rating: 8
footer:
  copyright: "© 2024 Netflix"
`

func newTestServer(t *testing.T, page string) (*Server, *config.Config) {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"static/css/style.css": "body { margin: 0; }",
	}
	if page != "" {
		files["movie.yaml"] = page
	}
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := config.New().SaveTo(filepath.Join(dir, config.ConfigFileName)); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	return NewServer(ServerOptions{Config: cfg, Output: io.Discard}), cfg
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, string(body)
}

func TestServer_ServesBuiltPage(t *testing.T) {
	s, _ := newTestServer(t, testPage)
	if err := s.rebuild(context.Background()); err != nil {
		t.Fatalf("rebuild: %v", err)
	}

	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, body := get(t, ts.URL+"/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET / status = %d", resp.StatusCode)
	}
	for _, want := range []string{"<title>The Witcher</title>", "<header", ReloadPath} {
		if !strings.Contains(body, want) {
			t.Errorf("GET / should contain %q", want)
		}
	}

	resp, body = get(t, ts.URL+"/css/style.css")
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, "margin") {
		t.Errorf("GET /css/style.css = %d %q", resp.StatusCode, body)
	}

	resp, body = get(t, ts.URL+"/"+clientdist.ScriptPath)
	if resp.StatusCode != http.StatusOK || body != string(clientdist.MarqueeJS) {
		t.Errorf("client script not served: %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/javascript") {
		t.Errorf("Content-Type = %q", ct)
	}

	resp, _ = get(t, ts.URL+"/img/missing.png")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing asset status = %d, want 404", resp.StatusCode)
	}

	resp, body = get(t, ts.URL+MetricsPath)
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, "marquee_http_requests_total") {
		t.Errorf("metrics endpoint = %d, should expose request counter", resp.StatusCode)
	}
}

func TestServer_HotReloadDisabled(t *testing.T) {
	s, cfg := newTestServer(t, testPage)
	cfg.Dev.HotReload = false
	s = NewServer(ServerOptions{Config: cfg, Output: io.Discard})
	if err := s.rebuild(context.Background()); err != nil {
		t.Fatalf("rebuild: %v", err)
	}

	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	_, body := get(t, ts.URL+"/")
	if strings.Contains(body, ReloadPath) {
		t.Error("reload script should not be injected when hot reload is off")
	}
}

func TestServer_BuildErrorPage(t *testing.T) {
	s, _ := newTestServer(t, "")
	if err := s.rebuild(context.Background()); err == nil {
		t.Fatal("rebuild should fail without a page config")
	}

	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, body := get(t, ts.URL+"/")
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
	if !strings.Contains(body, "E103") {
		t.Errorf("error page should name the error code:\n%s", body)
	}
	if !strings.Contains(body, ReloadPath) {
		t.Error("error page should reload once the build is fixed")
	}
}

func TestServer_HandleChanges(t *testing.T) {
	s, cfg := newTestServer(t, testPage)
	ctx := context.Background()
	if err := s.rebuild(ctx); err != nil {
		t.Fatalf("rebuild: %v", err)
	}

	ts := httptest.NewServer(s.Handler())
	defer ts.Close()
	conn := dialReload(t, ts.URL)
	waitForClients(t, s.reloadServer, 1)

	var reloads []int
	s.options.OnReload = func(clients int) { reloads = append(reloads, clients) }

	cssFile := filepath.Join(cfg.StaticPath(), "css", "style.css")
	s.handleChanges(ctx, []Change{{Path: cssFile, Type: ChangeCSS}})
	if msg := readMessage(t, conn); msg.Type != ReloadTypeCSS || msg.File != "css/style.css" {
		t.Errorf("css change message = %+v", msg)
	}

	if err := os.WriteFile(cfg.PagePath(), []byte("title: Blood Origin\n"), 0644); err != nil {
		t.Fatal(err)
	}
	s.handleChanges(ctx, []Change{{Path: cfg.PagePath(), Type: ChangeContent}})
	if msg := readMessage(t, conn); msg.Type != ReloadTypeFull {
		t.Errorf("content change message = %+v", msg)
	}
	if len(reloads) != 1 || reloads[0] != 1 {
		t.Errorf("OnReload calls = %v, want [1]", reloads)
	}

	_, body := get(t, ts.URL+"/")
	if !strings.Contains(body, "<title>Blood Origin</title>") {
		t.Error("page should reflect the rebuilt content")
	}

	if err := os.WriteFile(cfg.PagePath(), []byte("title: [\n"), 0644); err != nil {
		t.Fatal(err)
	}
	s.handleChanges(ctx, []Change{{Path: cfg.PagePath(), Type: ChangeContent}})
	if msg := readMessage(t, conn); msg.Type != ReloadTypeError || !strings.Contains(msg.Error, "E104") {
		t.Errorf("broken page message = %+v", msg)
	}
}
