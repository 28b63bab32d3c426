// Package dev provides the development server and live reload.
//
// This package implements:
//   - File watching for page config, stylesheet, template and asset changes
//   - Rebuilding the page on change
//   - WebSocket-based browser refresh
//   - Error overlay in browser
//
// # Architecture
//
// The development server consists of several components:
//
//   - Watcher: Monitors the project with fsnotify and debounces bursts
//   - Server: Builds the project and serves the output directory
//   - ReloadServer: Notifies browsers of changes via WebSocket
//
// # Usage
//
//	srv := dev.NewServer(dev.ServerOptions{Config: cfg})
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := srv.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Reload Protocol
//
// Browsers connect to /_marquee/reload and receive JSON messages:
//
//	{"type": "reload"}                      // full page reload
//	{"type": "css", "file": "css/site.css"} // swap stylesheets only
//	{"type": "error", "error": "..."}       // show the build error overlay
//	{"type": "clear"}                       // hide the overlay
//
// A change to marquee.json reloads the project config before rebuilding.
// While the last build is failing, HTML requests receive an error page that
// reloads itself once the build succeeds.
package dev
