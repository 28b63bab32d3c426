package render

import (
	"fmt"
	"io"

	"github.com/marquee-dev/marquee/pkg/vdom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is rendered as the only child of <body>.
	Body *vdom.VNode

	// Title is the page title
	Title string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// HTMLStyle is the inline style of the html element (custom properties).
	HTMLStyle vdom.Style

	// Meta contains meta tags for the page
	Meta []MetaTag

	// Links contains link tags (favicon, preloads)
	Links []LinkTag

	// StyleSheets contains paths to external stylesheets
	StyleSheets []string

	// Scripts are written at the end of <body>, in order.
	Scripts []ScriptTag
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name     string // name attribute
	Content  string // content attribute
	Property string // property attribute (for OpenGraph)
}

// LinkTag represents a link element in the document head.
type LinkTag struct {
	Rel   string // rel attribute
	Href  string // href attribute
	Type  string // type attribute
	Sizes string // sizes attribute
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string // src attribute
	Defer  bool   // defer attribute
	Inline string // inline script content
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	html := vdom.Html(
		vdom.Lang(lang),
		vdom.AttrIf(len(page.HTMLStyle) > 0, vdom.StyleAttr(page.HTMLStyle)),
	)

	head := vdom.Head(
		vdom.Meta(vdom.Charset("utf-8")),
		vdom.Meta(vdom.Name("viewport"), vdom.Content("width=device-width, initial-scale=1")),
	)
	if page.Title != "" {
		head.Append(vdom.Title(vdom.Text(page.Title)))
	}
	for _, meta := range page.Meta {
		head.Append(metaNode(meta))
	}
	for _, link := range page.Links {
		head.Append(linkNode(link))
	}
	for _, href := range page.StyleSheets {
		head.Append(vdom.Link(vdom.Rel("stylesheet"), vdom.Href(href)))
	}

	body := vdom.Body(page.Body)
	for _, script := range page.Scripts {
		body.Append(scriptNode(script))
	}
	html.Append(head, body)

	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	if err := r.RenderToWriter(w, html); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	if !r.config.Pretty {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}

func metaNode(meta MetaTag) *vdom.VNode {
	return vdom.Meta(
		vdom.AttrIf(meta.Name != "", vdom.Name(meta.Name)),
		vdom.AttrIf(meta.Property != "", vdom.Property(meta.Property)),
		vdom.Content(meta.Content),
	)
}

func linkNode(link LinkTag) *vdom.VNode {
	return vdom.Link(
		vdom.AttrIf(link.Rel != "", vdom.Rel(link.Rel)),
		vdom.AttrIf(link.Href != "", vdom.Href(link.Href)),
		vdom.AttrIf(link.Type != "", vdom.Type(link.Type)),
		vdom.AttrIf(link.Sizes != "", vdom.Sizes(link.Sizes)),
	)
}

func scriptNode(script ScriptTag) *vdom.VNode {
	node := vdom.Script(
		vdom.AttrIf(script.Src != "", vdom.Src(script.Src)),
		vdom.AttrIf(script.Defer, vdom.Defer_()),
	)
	if script.Inline != "" {
		node.Append(vdom.Raw(script.Inline))
	}
	return node
}
