package vdom

import "testing"

func TestText(t *testing.T) {
	node := Text("Hello, World!")

	if node.Kind != KindText {
		t.Errorf("Kind = %v, want KindText", node.Kind)
	}
	if node.Text != "Hello, World!" {
		t.Errorf("Text = %v, want 'Hello, World!'", node.Text)
	}
}

func TestRaw(t *testing.T) {
	node := Raw("<strong>Bold</strong>")

	if node.Kind != KindRaw {
		t.Errorf("Kind = %v, want KindRaw", node.Kind)
	}
}

func TestFragment(t *testing.T) {
	node := Fragment(Div(), nil, "text", []*VNode{Span(), nil})

	if node.Kind != KindFragment {
		t.Errorf("Kind = %v, want KindFragment", node.Kind)
	}
	if len(node.Children) != 3 {
		t.Errorf("Children = %d, want 3", len(node.Children))
	}
}

func TestRange(t *testing.T) {
	items := []string{"a", "", "c"}
	nodes := Range(items, func(item string, i int) *VNode {
		if item == "" {
			return nil
		}
		return Li(Text(item))
	})

	if len(nodes) != 2 {
		t.Fatalf("len = %d, want 2", len(nodes))
	}
	if TextContent(nodes[0]) != "a" || TextContent(nodes[1]) != "c" {
		t.Errorf("order not preserved: %q, %q", TextContent(nodes[0]), TextContent(nodes[1]))
	}
}

func TestRepeat(t *testing.T) {
	if Repeat(0, func(int) *VNode { return Div() }) != nil {
		t.Error("Repeat(0) should return nil")
	}
	nodes := Repeat(10, func(i int) *VNode { return Img() })
	if len(nodes) != 10 {
		t.Errorf("len = %d, want 10", len(nodes))
	}
}

func TestRangeEmpty(t *testing.T) {
	if Range([]string(nil), func(string, int) *VNode { return Div() }) != nil {
		t.Error("Range over no items should return nil")
	}
}

func TestQueries(t *testing.T) {
	tree := Div(Class("root"),
		Nav(Class("menu-list"),
			A(Class("menu-link"), Text("A")),
			A(Class("menu-link"), Text("B")),
		),
		Fragment(Span(Class("menu-link"), Text("C"))),
	)

	links := ByClass(tree, "menu-link")
	if len(links) != 3 {
		t.Fatalf("ByClass = %d, want 3", len(links))
	}
	if TextContent(links[2]) != "C" {
		t.Errorf("fragment child not found in order, got %q", TextContent(links[2]))
	}
	if got := len(ByTag(tree, "a")); got != 2 {
		t.Errorf("ByTag(a) = %d, want 2", got)
	}
	if FirstByClass(tree, "menu-list").Tag != "nav" {
		t.Error("FirstByClass should return nav")
	}
	if FirstByClass(tree, "missing") != nil {
		t.Error("FirstByClass should return nil for missing class")
	}
	if TextContent(tree) != "ABC" {
		t.Errorf("TextContent = %q, want ABC", TextContent(tree))
	}
}
