package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/marquee-dev/marquee/pkg/vdom"
)

func TestRenderText(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("Hello, World!"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "Hello, World!" {
		t.Errorf("got %q, want %q", html, "Hello, World!")
	}
}

func TestRenderTextEscaping(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("<script>alert('xss')</script>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("HTML should be escaped, got %q", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("should contain escaped script tag, got %q", html)
	}
}

func TestRenderElement(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Div(vdom.Class("container"),
		vdom.H1(vdom.Text("Title")),
		vdom.P(vdom.Text("Content")),
	)
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div class="container"><h1>Title</h1><p>Content</p></div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderVoidElements(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{
			name: "img",
			node: vdom.Img(vdom.Src("/image.png"), vdom.Alt("test")),
			want: `<img alt="test" src="/image.png">`,
		},
		{
			name: "img with empty alt",
			node: vdom.Img(vdom.Class("star"), vdom.Src("img/star-o.svg"), vdom.Alt("")),
			want: `<img alt="" class="star" src="img/star-o.svg">`,
		},
		{
			name: "link",
			node: vdom.Link(vdom.Rel("icon"), vdom.Href("favicon.png"), vdom.Type("image/png")),
			want: `<link href="favicon.png" rel="icon" type="image/png">`,
		},
		{
			name: "br",
			node: vdom.Br(),
			want: `<br>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := renderer.RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if html != tt.want {
				t.Errorf("got %q, want %q", html, tt.want)
			}
		})
	}
}

func TestRenderBooleanAttributes(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Script(vdom.Src("/app.js"), vdom.Defer_())
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<script defer src="/app.js"></script>` {
		t.Errorf("got %q", html)
	}
}

func TestRenderAriaHiddenKeepsValue(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Img(vdom.AriaHidden(true)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<img aria-hidden="true">` {
		t.Errorf("got %q", html)
	}
}

func TestRenderFragment(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Fragment(
		vdom.Div(vdom.Text("One")),
		vdom.Div(vdom.Text("Two")),
	)
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<div>One</div><div>Two</div>" {
		t.Errorf("got %q", html)
	}
}

func TestRenderRaw(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Div(vdom.Raw("<em>ok</em>")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<div><em>ok</em></div>" {
		t.Errorf("got %q", html)
	}
}

func TestRenderHookConfig(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Div(vdom.Class("swiper-container"), vdom.Hook("Carousel", map[string]any{"loop": true}))
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := attrValue(t, html, "data-hook"); got != "Carousel" {
		t.Errorf("data-hook = %q", got)
	}
	if !strings.Contains(html, `data-hook-config="{&quot;loop&quot;:true}"`) {
		t.Errorf("hook config should be attribute-escaped, got %q", html)
	}
	if got := attrValue(t, html, "data-hook-config"); got != `{"loop":true}` {
		t.Errorf("data-hook-config = %q", got)
	}
}

func TestRenderStyle(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	style := vdom.Style{}.Set("background-image", vdom.CSSURL("bg.jpg"))
	html, err := renderer.RenderToString(vdom.Div(vdom.StyleAttr(style)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<div style="background-image: url(&#39;bg.jpg&#39;);"></div>` {
		t.Errorf("got %q", html)
	}
}

func TestRenderUnknownKind(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	_, err := renderer.RenderToString(&vdom.VNode{Kind: vdom.VKind(99)})
	if err == nil {
		t.Error("expected error for unknown node kind")
	}
}

func TestRenderDeterministic(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})
	build := func() *vdom.VNode {
		return vdom.A(vdom.Class("menu-link"), vdom.Href("#"), vdom.TitleAttr("t"), vdom.Target("_self"), vdom.Text("A"))
	}

	first, _ := renderer.RenderToString(build())
	for i := 0; i < 20; i++ {
		again, _ := renderer.RenderToString(build())
		if again != first {
			t.Fatalf("render %d differs: %q vs %q", i, again, first)
		}
	}
}

func TestRenderPretty(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Pretty: true})

	node := vdom.Div(vdom.Class("a"), vdom.Span(vdom.Text("x")))
	var buf bytes.Buffer
	if err := renderer.RenderToWriter(&buf, node); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<div class=\"a\">\n  <span>x</span>\n</div>\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestRenderPrettyTextContent(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Pretty: true})

	node := vdom.Div(vdom.Class("rating"),
		vdom.Div(vdom.Class("rating-number"), vdom.Text("8/10")),
		vdom.P(vdom.Fragment("Toss a coin ", "to your witcher")),
	)
	got, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<div class=\"rating\">\n" +
		"  <div class=\"rating-number\">8/10</div>\n" +
		"  <p>Toss a coin to your witcher</p>\n" +
		"</div>\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
