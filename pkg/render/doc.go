// Package render serialises vdom trees to HTML.
//
// The render package converts VNode trees into HTML strings or streams,
// handling:
//
//   - Proper text and attribute escaping
//   - Void element handling (img, link, meta, etc.)
//   - Boolean attribute handling (hidden, defer, etc.)
//   - Hook expansion into data-hook / data-hook-config
//   - Full page rendering with DOCTYPE, head, body
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// # Full Page Rendering
//
//	err := renderer.RenderPage(w, render.PageData{
//	    Body:  root,
//	    Title: "The Witcher",
//	    Links: []render.LinkTag{{Rel: "icon", Href: "favicon.svg", Type: "image/svg+xml"}},
//	})
//
// Attributes are written in sorted order, so the same tree always renders
// to the same bytes.
package render
