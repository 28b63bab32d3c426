package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/marquee-dev/marquee/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty indents nested block elements, one per line.
	Pretty bool

	// Indent is one level of indentation in pretty mode. Defaults to two
	// spaces.
	Indent string
}

// Renderer serialises VNode trees to HTML. A Renderer holds no per-render
// state and may be reused.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to w. The first write error stops
// the render and is returned.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	hw := &htmlWriter{w: w, pretty: r.config.Pretty, indent: r.config.Indent}
	hw.node(node, 0)
	return hw.err
}

// inlineElements keep their children on the line of the opening tag in
// pretty output.
var inlineElements = map[string]bool{
	"a": true, "b": true, "br": true, "button": true, "code": true,
	"em": true, "h1": true, "h2": true, "i": true, "img": true,
	"p": true, "small": true, "span": true, "strong": true, "sub": true,
	"sup": true, "time": true, "title": true,
}

// htmlWriter carries the first write error so the tree walk stays free of
// error plumbing.
type htmlWriter struct {
	w      io.Writer
	pretty bool
	indent string
	err    error
}

func (hw *htmlWriter) write(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

func (hw *htmlWriter) newline() {
	if hw.pretty {
		hw.write("\n")
	}
}

func (hw *htmlWriter) pad(depth int) {
	if hw.pretty && depth > 0 {
		hw.write(strings.Repeat(hw.indent, depth))
	}
}

func (hw *htmlWriter) node(n *vdom.VNode, depth int) {
	if n == nil || hw.err != nil {
		return
	}

	switch n.Kind {
	case vdom.KindElement:
		hw.element(n, depth)
	case vdom.KindText:
		hw.write(escapeHTML(n.Text))
	case vdom.KindFragment:
		for _, child := range n.Children {
			hw.node(child, depth)
		}
	case vdom.KindRaw:
		hw.write(n.Text)
	default:
		hw.err = fmt.Errorf("render: unknown node kind %v", n.Kind)
	}
}

func (hw *htmlWriter) element(n *vdom.VNode, depth int) {
	hw.pad(depth)
	hw.write("<" + n.Tag)
	hw.attributes(n)
	hw.write(">")

	if vdom.IsVoidElement(n.Tag) {
		hw.newline()
		return
	}

	block := !inlineElements[n.Tag] && hasElementChild(n.Children)
	if block {
		hw.newline()
	}
	for _, child := range n.Children {
		hw.node(child, depth+1)
	}
	if block {
		hw.pad(depth)
	}

	hw.write("</" + n.Tag + ">")
	hw.newline()
}

// hasElementChild reports whether children hold an element, looking
// through fragments. Text-only content stays on the tag's line.
func hasElementChild(children []*vdom.VNode) bool {
	for _, c := range children {
		if c == nil {
			continue
		}
		if c.Kind == vdom.KindElement {
			return true
		}
		if c.Kind == vdom.KindFragment && hasElementChild(c.Children) {
			return true
		}
	}
	return false
}

// attributes writes the effective attributes sorted by name. Boolean
// attributes are written bare.
func (hw *htmlWriter) attributes(n *vdom.VNode) {
	attrs := vdom.EffectiveAttrs(n)
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if vdom.IsBooleanAttr(key) {
			hw.write(" " + key)
			continue
		}
		hw.write(" " + key + `="` + escapeAttr(attrs[key]) + `"`)
	}
}
