package vdom

import "testing"

func TestStyleSet(t *testing.T) {
	s := Style{}.
		Set("color", "#fff").
		Set("background-color", "black").
		Set("color", "red")

	if got := s.String(); got != "color: red; background-color: black;" {
		t.Errorf("String() = %q", got)
	}

	s = s.Set("color", "")
	if _, ok := s.Get("color"); ok {
		t.Error("empty value should remove the property")
	}
	if got := s.String(); got != "background-color: black;" {
		t.Errorf("String() = %q", got)
	}

	if got := (Style{}).Set("color", "").String(); got != "" {
		t.Errorf("unset on empty style = %q, want empty", got)
	}
}

func TestParseStyleMerge(t *testing.T) {
	base := ParseStyle("margin: 0; color: blue;; bogus")
	merged := base.Merge(Style{{Property: "color", Value: "red"}, {Property: "--sub-color", Value: "#f00"}})

	want := "margin: 0; color: red; --sub-color: #f00;"
	if got := merged.String(); got != want {
		t.Errorf("merged = %q, want %q", got, want)
	}
}

func TestCSSURL(t *testing.T) {
	if got := CSSURL("witcher/bg.jpg"); got != "url('witcher/bg.jpg')" {
		t.Errorf("CSSURL = %q", got)
	}
	if got := CSSURL("it's.jpg"); got != `url('it\'s.jpg')` {
		t.Errorf("CSSURL quote = %q", got)
	}
	if got := CSSURL(`posters\`); got != `url('posters\\')` {
		t.Errorf("CSSURL backslash = %q", got)
	}
	if got := CSSURL(`a\'b`); got != `url('a\\\'b')` {
		t.Errorf("CSSURL backslash quote = %q", got)
	}
	if got := CSSURL("bg\n.jpg"); got != `url('bg\a .jpg')` {
		t.Errorf("CSSURL newline = %q", got)
	}
}

func TestEffectiveAttrs(t *testing.T) {
	node := Img(
		Class("star"),
		Src("img/star.svg"),
		Alt(""),
		AriaHidden(true),
		Hidden(),
		Width(24),
		Hook("Carousel", map[string]any{"loop": true}),
	)

	attrs := EffectiveAttrs(node)
	tests := map[string]string{
		"class":            "star",
		"src":              "img/star.svg",
		"alt":              "",
		"aria-hidden":      "true",
		"hidden":           "",
		"width":            "24",
		"data-hook":        "Carousel",
		"data-hook-config": `{"loop":true}`,
	}
	for key, want := range tests {
		got, ok := attrs[key]
		if !ok {
			t.Errorf("missing attribute %q", key)
			continue
		}
		if got != want {
			t.Errorf("%s = %q, want %q", key, got, want)
		}
	}
	if _, ok := attrs["_hook"]; ok {
		t.Error("internal _hook prop must not be emitted")
	}
}

func TestEffectiveAttrsFalseBoolean(t *testing.T) {
	node := Div(AttrIf(true, Attr{Key: "hidden", Value: false}))
	if _, ok := EffectiveAttrs(node)["hidden"]; ok {
		t.Error("false boolean attribute should be omitted")
	}
}

func TestHookWithoutConfig(t *testing.T) {
	node := Button(Hook("MenuToggle", nil))
	attrs := EffectiveAttrs(node)
	if attrs["data-hook"] != "MenuToggle" {
		t.Errorf("data-hook = %q", attrs["data-hook"])
	}
	if _, ok := attrs["data-hook-config"]; ok {
		t.Error("nil config should not produce data-hook-config")
	}
	h, ok := HookOf(node)
	if !ok || h.Name != "MenuToggle" {
		t.Errorf("HookOf = %+v, %v", h, ok)
	}
}
