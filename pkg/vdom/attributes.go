package vdom

import "strings"

func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Class sets the class attribute, joining multiple classes with spaces.
// Repeated Class attributes on one element are merged.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute from a declaration list.
func StyleAttr(style Style) Attr { return attr("style", style) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }

// Hidden sets the boolean hidden attribute.
func Hidden() Attr { return attr("hidden", true) }

// TitleAttr sets the title attribute. The title element is Title.
func TitleAttr(title string) Attr { return attr("title", title) }

// Lang sets the lang attribute.
func Lang(lang string) Attr { return attr("lang", lang) }

// Href sets the href attribute. Links from a page config are written as
// given, without validation.
func Href(url string) Attr { return attr("href", url) }

// Target sets the target attribute.
func Target(target string) Attr { return attr("target", target) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return attr("rel", rel) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Alt sets the alt attribute. An empty alt is kept and written as alt="".
func Alt(text string) Attr { return attr("alt", text) }

// Width sets the width attribute.
func Width(w int) Attr { return attr("width", w) }

// Document head attributes

// Charset sets the charset attribute.
func Charset(charset string) Attr { return attr("charset", charset) }

// Content sets the content attribute of a meta element.
func Content(content string) Attr { return attr("content", content) }

// Property sets the property attribute of an OpenGraph meta element.
func Property(p string) Attr { return attr("property", p) }

// Sizes sets the sizes attribute of an icon link.
func Sizes(sizes string) Attr { return attr("sizes", sizes) }

// Defer_ sets the defer attribute for script elements.
func Defer_() Attr { return attr("defer", true) }

// ClassIf adds a class only when condition holds.
func ClassIf(condition bool, class string) Attr {
	return AttrIf(condition, Class(class))
}

// AttrIf returns a when condition holds and an empty, ignored Attr
// otherwise. Optional config fields use it to omit attributes.
func AttrIf(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}
