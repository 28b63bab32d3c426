package dev

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/marquee-dev/marquee/pkg/middleware"
)

// ReloadPath is the live-reload WebSocket endpoint.
const ReloadPath = "/_marquee/reload"

// ReloadMessageType represents the type of reload message.
type ReloadMessageType string

const (
	ReloadTypeFull  ReloadMessageType = "reload"
	ReloadTypeCSS   ReloadMessageType = "css"
	ReloadTypeError ReloadMessageType = "error"
	ReloadTypeClear ReloadMessageType = "clear"
)

// ReloadMessage is sent to browsers via WebSocket.
type ReloadMessage struct {
	Type  ReloadMessageType `json:"type"`
	Error string            `json:"error,omitempty"`
	File  string            `json:"file,omitempty"`
}

const writeTimeout = 5 * time.Second

// ReloadServer manages WebSocket connections for live reload.
type ReloadServer struct {
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	writeMu  sync.Mutex
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewReloadServer creates a new reload server.
func NewReloadServer() *ReloadServer {
	return &ReloadServer{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins in dev
			},
		},
		logger: slog.Default().With("component", "reload"),
	}
}

// HandleWebSocket handles WebSocket upgrade and connection.
func (r *ReloadServer) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := r.upgrader.Upgrade(w, req, nil)
	if err != nil {
		middleware.RecordWebSocketError("upgrade")
		r.logger.Debug("upgrade failed", "error", err)
		return
	}

	r.mu.Lock()
	r.clients[conn] = true
	r.mu.Unlock()
	middleware.RecordReloadConnect()

	// Keep connection alive until client disconnects
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	r.remove(conn)
}

// NotifyReload sends a full page reload message to all clients.
func (r *ReloadServer) NotifyReload() {
	r.broadcast(ReloadMessage{Type: ReloadTypeFull})
	middleware.RecordReloadBroadcast()
}

// NotifyCSS sends a CSS-only reload message to all clients.
func (r *ReloadServer) NotifyCSS(file string) {
	r.broadcast(ReloadMessage{Type: ReloadTypeCSS, File: file})
	middleware.RecordReloadBroadcast()
}

// NotifyError sends an error message to all clients.
func (r *ReloadServer) NotifyError(errMsg string) {
	r.broadcast(ReloadMessage{Type: ReloadTypeError, Error: errMsg})
}

// ClearError clears the error overlay on all clients.
func (r *ReloadServer) ClearError() {
	r.broadcast(ReloadMessage{Type: ReloadTypeClear})
}

// broadcast sends a message to all connected clients. Clients that fail
// to receive it are dropped.
func (r *ReloadServer) broadcast(msg ReloadMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	r.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(r.clients))
	for client := range r.clients {
		clients = append(clients, client)
	}
	r.mu.RUnlock()

	// gorilla/websocket allows one concurrent writer per connection.
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	for _, client := range clients {
		client.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			middleware.RecordWebSocketError("write")
			r.remove(client)
		}
	}
}

// remove drops a client once.
func (r *ReloadServer) remove(conn *websocket.Conn) {
	r.mu.Lock()
	_, ok := r.clients[conn]
	delete(r.clients, conn)
	r.mu.Unlock()

	if ok {
		conn.Close()
		middleware.RecordReloadDisconnect()
	}
}

// ClientCount returns the number of connected clients.
func (r *ReloadServer) ClientCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}

// Close closes all client connections.
func (r *ReloadServer) Close() {
	r.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(r.clients))
	for client := range r.clients {
		clients = append(clients, client)
	}
	r.mu.RUnlock()

	for _, client := range clients {
		r.remove(client)
	}
}

// DevClientScript is the live-reload client. It is injected into every
// HTML page the dev server returns. A "css" message swaps only the
// stylesheet whose path ends with the changed file, or every stylesheet
// when none matches. After the connection drops, the page reloads once the
// server is back, since a restarted server has rebuilt the output.
const DevClientScript = `
<script>
(function() {
  'use strict';
  var OVERLAY = 'marquee-error-overlay';
  var delay = 500;
  var dropped = false;

  function open() {
    var scheme = location.protocol === 'https:' ? 'wss://' : 'ws://';
    var ws = new WebSocket(scheme + location.host + '` + ReloadPath + `');

    ws.onopen = function() {
      if (dropped) {
        location.reload();
        return;
      }
      delay = 500;
      console.log('[marquee] live reload connected');
    };

    ws.onmessage = function(e) {
      var msg;
      try { msg = JSON.parse(e.data); } catch (_) { return; }
      if (msg.type === 'reload') location.reload();
      else if (msg.type === 'css') swapStyles(msg.file);
      else if (msg.type === 'error') showError(msg.error);
      else if (msg.type === 'clear') hideError();
    };

    ws.onclose = function() {
      dropped = true;
      setTimeout(open, delay);
      delay = Math.min(delay * 2, 10000);
    };
  }

  function swapStyles(file) {
    var links = Array.prototype.slice.call(document.querySelectorAll('link[rel="stylesheet"]'));
    var matching = links.filter(function(l) {
      return file && new URL(l.href).pathname.slice(-file.length) === file;
    });
    (matching.length ? matching : links).forEach(function(l) {
      var url = new URL(l.href);
      url.searchParams.set('t', Date.now());
      l.href = url.toString();
    });
  }

  function showError(text) {
    hideError();
    console.error('[marquee] build failed:', text);
    var box = document.createElement('div');
    box.id = OVERLAY;
    box.style.cssText = 'position:fixed;inset:0;z-index:2147483647;overflow:auto;padding:24px;' +
      'background:rgba(20,20,20,.95);color:#eee;font:14px/1.5 monospace;';
    var h = document.createElement('h2');
    h.style.cssText = 'margin:0 0 16px;color:#ff5555;';
    h.textContent = 'marquee: build failed';
    var pre = document.createElement('pre');
    pre.style.whiteSpace = 'pre-wrap';
    pre.textContent = text;
    box.appendChild(h);
    box.appendChild(pre);
    document.body.appendChild(box);
  }

  function hideError() {
    var box = document.getElementById(OVERLAY);
    if (box) box.remove();
  }

  open();
})();
</script>
`
