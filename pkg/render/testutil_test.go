package render

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// attrValue parses rendered markup the way a browser would and returns the
// decoded value of the first occurrence of attr.
func attrValue(t *testing.T, markup, attr string) string {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("rendered markup does not parse: %v", err)
	}

	var find func(*html.Node) (string, bool)
	find = func(n *html.Node) (string, bool) {
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Key == attr {
					return a.Val, true
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if v, ok := find(c); ok {
				return v, true
			}
		}
		return "", false
	}

	v, ok := find(doc)
	if !ok {
		t.Fatalf("expected %s attribute in %q", attr, markup)
	}
	return v
}
