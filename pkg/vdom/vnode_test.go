package vdom

import "testing"

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindRaw, "Raw"},
		{VKind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("VKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestElementFactory(t *testing.T) {
	node := Element("span", []string{"genre", "animated"}, Class("fadeInRight"), Text("Drama"))

	if node.Kind != KindElement || node.Tag != "span" {
		t.Fatalf("got %v <%s>, want Element <span>", node.Kind, node.Tag)
	}
	want := []string{"genre", "animated", "fadeInRight"}
	got := node.Classes()
	if len(got) != len(want) {
		t.Fatalf("Classes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Classes()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if TextContent(node) != "Drama" {
		t.Errorf("TextContent = %q, want Drama", TextContent(node))
	}
}

func TestElementFactoryNoClasses(t *testing.T) {
	node := Element("header", nil)

	if _, ok := node.Get("class"); ok {
		t.Error("element without classes should not carry a class prop")
	}
	if len(node.Children) != 0 {
		t.Errorf("Children = %d, want 0", len(node.Children))
	}
}

func TestElementKeepsNativeTypes(t *testing.T) {
	node := Img(AriaHidden(true), Width(40), Hidden())

	if v, _ := node.Get("aria-hidden"); v != true {
		t.Errorf("aria-hidden = %#v, want bool true", v)
	}
	if v, _ := node.Get("width"); v != 40 {
		t.Errorf("width = %#v, want int 40", v)
	}
	if v, _ := node.Get("hidden"); v != true {
		t.Errorf("hidden = %#v, want bool true", v)
	}
}

func TestElementSkipsNilAndEmpty(t *testing.T) {
	var missing *VNode
	node := Div(nil, missing, ClassIf(false, "x"), AttrIf(false, Href("#")), []*VNode{nil, Text("a")})

	if len(node.Props) != 0 {
		t.Errorf("Props = %v, want empty", node.Props)
	}
	if len(node.Children) != 1 {
		t.Errorf("Children = %d, want 1", len(node.Children))
	}
}

func TestAppendSkipsNil(t *testing.T) {
	node := Div()
	node.Append(nil, Span(), nil, P())

	if len(node.Children) != 2 {
		t.Fatalf("Children = %d, want 2", len(node.Children))
	}
	if node.Children[0].Tag != "span" || node.Children[1].Tag != "p" {
		t.Errorf("order = %s,%s want span,p", node.Children[0].Tag, node.Children[1].Tag)
	}
}

func TestClone(t *testing.T) {
	orig := Div(Class("a"), StyleAttr(Style{}.Set("color", "red")), Span(Text("x")))
	c := orig.Clone()

	c.AddClass("b")
	c.Children[0].Children[0].Text = "y"
	st, _ := c.Props["style"].(Style)
	st.Set("color", "blue")

	if orig.HasClass("b") {
		t.Error("clone class change leaked into original")
	}
	if TextContent(orig) != "x" {
		t.Errorf("original text = %q, want x", TextContent(orig))
	}
	if orig.AttrString("style") != "color: red;" {
		t.Errorf("original style = %q, want %q", orig.AttrString("style"), "color: red;")
	}
}

func TestClassList(t *testing.T) {
	node := Button(Class("menu-button"))

	if !node.ToggleClass("menu-button-active") {
		t.Error("first toggle should add the class")
	}
	if !node.HasClass("menu-button-active") {
		t.Error("class missing after toggle on")
	}
	if node.ToggleClass("menu-button-active") {
		t.Error("second toggle should remove the class")
	}
	if node.HasClass("menu-button-active") {
		t.Error("class present after toggle off")
	}

	node.AddClass("menu-button", "x y")
	if got := node.AttrString("class"); got != "menu-button x y" {
		t.Errorf("class = %q, want %q", got, "menu-button x y")
	}
	node.RemoveClass("menu-button", "x", "y")
	if _, ok := node.Get("class"); ok {
		t.Error("class prop should be dropped when list is empty")
	}
}
