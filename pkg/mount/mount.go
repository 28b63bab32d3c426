// Package mount attaches composed landing pages to host HTML documents.
//
// The host document is parsed with golang.org/x/net/html; the mount point
// is located with a CSS selector. Mounting adds the page's marker class and
// inline style to the mount point, updates <title>, the icon <link> and the
// <html> style, then appends the page sections in order.
package mount

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/marquee-dev/marquee/pkg/landing"
	"github.com/marquee-dev/marquee/pkg/vdom"
)

// DefaultSelector is the mount point of the built-in host template.
const DefaultSelector = ".app"

// DefaultTemplate is the host document used when no template is given.
const DefaultTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title></title>
</head>
<body>
<div class="app"></div>
</body>
</html>
`

var (
	// ErrNoMountPoint is returned when the selector matches nothing.
	ErrNoMountPoint = errors.New("mount point not found")

	// ErrAmbiguousMountPoint is returned when the selector matches more
	// than one element.
	ErrAmbiguousMountPoint = errors.New("mount selector matches more than one element")

	// ErrInvalidSelector is returned for selectors that do not compile.
	ErrInvalidSelector = errors.New("invalid mount selector")
)

// Options adds document-level resources while mounting.
type Options struct {
	// StyleSheets are appended to <head> as stylesheet links.
	StyleSheets []string

	// Scripts are appended to <body> as deferred scripts, in order.
	Scripts []string
}

// Parse parses a host document.
func Parse(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse host document: %w", err)
	}
	return doc, nil
}

// Find returns the single element matching selector.
func Find(doc *html.Node, selector string) (*html.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidSelector, selector, err)
	}
	matches := sel.MatchAll(doc)
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %q", ErrNoMountPoint, selector)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %q matched %d elements", ErrAmbiguousMountPoint, selector, len(matches))
	}
}

// Document mounts page into doc at the element matching selector. The mount
// point must exist and be unique; nothing is changed otherwise.
func Document(doc *html.Node, selector string, page *landing.Page, opts ...Options) error {
	target, err := Find(doc, selector)
	if err != nil {
		return err
	}

	root := findElement(doc, atom.Html)
	head := ensureChild(root, atom.Head)
	body := findElement(doc, atom.Body)
	if body == nil {
		body = ensureChild(root, atom.Body)
	}

	addClasses(target, page.MountClasses)
	mergeStyle(target, page.MountStyle)
	mergeStyle(root, page.DocumentStyle)
	setTitle(head, page.Title)
	if page.Favicon != nil {
		setIcon(head, *page.Favicon)
	}

	for _, o := range opts {
		for _, href := range o.StyleSheets {
			head.AppendChild(element(atom.Link, "rel", "stylesheet", "href", href))
		}
		for _, src := range o.Scripts {
			body.AppendChild(element(atom.Script, "src", src, "defer", ""))
		}
	}

	for _, section := range page.Sections {
		for _, n := range ToHTML(section) {
			target.AppendChild(n)
		}
	}
	return nil
}

// Standalone mounts page into the built-in host template.
func Standalone(page *landing.Page, opts ...Options) (*html.Node, error) {
	doc, err := Parse(strings.NewReader(DefaultTemplate))
	if err != nil {
		return nil, err
	}
	if err := Document(doc, DefaultSelector, page, opts...); err != nil {
		return nil, err
	}
	return doc, nil
}

// Render serialises a document, including its doctype.
func Render(w io.Writer, doc *html.Node) error {
	return html.Render(w, doc)
}

// RenderString serialises a document to a string.
func RenderString(doc *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ToHTML converts a vdom tree to html nodes. Fragments are flattened, so
// the result may hold several siblings.
func ToHTML(node *vdom.VNode) []*html.Node {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindText:
		return []*html.Node{{Type: html.TextNode, Data: node.Text}}

	case vdom.KindRaw:
		return parseRaw(node.Text)

	case vdom.KindFragment:
		var out []*html.Node
		for _, child := range node.Children {
			out = append(out, ToHTML(child)...)
		}
		return out

	case vdom.KindElement:
		el := &html.Node{
			Type:     html.ElementNode,
			Data:     node.Tag,
			DataAtom: atom.Lookup([]byte(node.Tag)),
		}
		attrs := vdom.EffectiveAttrs(node)
		keys := make([]string, 0, len(attrs))
		for k := range attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			el.Attr = append(el.Attr, html.Attribute{Key: k, Val: attrs[k]})
		}
		for _, child := range node.Children {
			for _, c := range ToHTML(child) {
				el.AppendChild(c)
			}
		}
		return []*html.Node{el}
	}
	return nil
}

// parseRaw parses trusted markup as body content.
func parseRaw(markup string) []*html.Node {
	context := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return []*html.Node{{Type: html.TextNode, Data: markup}}
	}
	return nodes
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

// ensureChild returns the first child of parent with the given atom,
// creating it when missing.
func ensureChild(parent *html.Node, a atom.Atom) *html.Node {
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			return c
		}
	}
	child := &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
	if a == atom.Head && parent.FirstChild != nil {
		parent.InsertBefore(child, parent.FirstChild)
	} else {
		parent.AppendChild(child)
	}
	return child
}

func element(a atom.Atom, kv ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
	for i := 0; i+1 < len(kv); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: kv[i], Val: kv[i+1]})
	}
	return n
}

func getAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	kept := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Key != key {
			kept = append(kept, a)
		}
	}
	n.Attr = kept
}

func addClasses(n *html.Node, classes []string) {
	if len(classes) == 0 {
		return
	}
	existing, _ := getAttr(n, "class")
	list := strings.Fields(existing)
	for _, c := range classes {
		found := false
		for _, have := range list {
			if have == c {
				found = true
				break
			}
		}
		if !found {
			list = append(list, c)
		}
	}
	setAttr(n, "class", strings.Join(list, " "))
}

func mergeStyle(n *html.Node, style vdom.Style) {
	if n == nil || len(style) == 0 {
		return
	}
	existing, _ := getAttr(n, "style")
	merged := vdom.ParseStyle(existing).Merge(style)
	if len(merged) == 0 {
		removeAttr(n, "style")
		return
	}
	setAttr(n, "style", merged.String())
}

func setTitle(head *html.Node, title string) {
	el := findElement(head, atom.Title)
	if el == nil {
		el = element(atom.Title)
		head.AppendChild(el)
	}
	for el.FirstChild != nil {
		el.RemoveChild(el.FirstChild)
	}
	el.AppendChild(&html.Node{Type: html.TextNode, Data: title})
}

// setIcon replaces existing icon links with the page favicon.
func setIcon(head *html.Node, icon landing.Favicon) {
	for c := head.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.ElementNode && c.DataAtom == atom.Link {
			if rel, _ := getAttr(c, "rel"); isIconRel(rel) {
				head.RemoveChild(c)
			}
		}
		c = next
	}

	link := element(atom.Link, "rel", "icon", "href", icon.Href)
	if icon.Type != "" {
		link.Attr = append(link.Attr, html.Attribute{Key: "type", Val: icon.Type})
	}
	head.AppendChild(link)
}

func isIconRel(rel string) bool {
	for _, r := range strings.Fields(strings.ToLower(rel)) {
		if r == "icon" {
			return true
		}
	}
	return false
}
