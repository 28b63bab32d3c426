package vdom

import "strings"

// Decl is one CSS declaration.
type Decl struct {
	Property string
	Value    string
}

// Style is an ordered list of inline CSS declarations. Property names are
// unique within a Style; Set replaces in place.
type Style []Decl

// Set returns the style with property set to value. An empty value removes
// the property, matching how an unset DOM style property behaves.
func (s Style) Set(property, value string) Style {
	property = strings.TrimSpace(property)
	if property == "" {
		return s
	}
	for i, d := range s {
		if d.Property == property {
			if value == "" {
				return append(s[:i:i], s[i+1:]...)
			}
			s[i].Value = value
			return s
		}
	}
	if value == "" {
		return s
	}
	return append(s, Decl{Property: property, Value: value})
}

// Get returns the value of property.
func (s Style) Get(property string) (string, bool) {
	for _, d := range s {
		if d.Property == property {
			return d.Value, true
		}
	}
	return "", false
}

// Merge applies other on top of s.
func (s Style) Merge(other Style) Style {
	for _, d := range other {
		s = s.Set(d.Property, d.Value)
	}
	return s
}

// String renders the declarations as an inline style attribute value.
func (s Style) String() string {
	parts := make([]string, 0, len(s))
	for _, d := range s {
		parts = append(parts, d.Property+": "+d.Value)
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "; ") + ";"
}

// ParseStyle parses an inline style attribute value. Malformed
// declarations are dropped.
func ParseStyle(raw string) Style {
	var s Style
	for _, part := range strings.Split(raw, ";") {
		prop, val, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		s = s.Set(strings.TrimSpace(prop), strings.TrimSpace(val))
	}
	return s
}

var cssStringEscaper = strings.NewReplacer(
	`\`, `\\`,
	"'", `\'`,
	"\n", `\a `,
	"\r", `\d `,
)

// CSSURL quotes a URL for use in url(...).
func CSSURL(u string) string {
	return "url('" + cssStringEscaper.Replace(u) + "')"
}

// InlineStyle returns the node's style attribute as a declaration list.
func (v *VNode) InlineStyle() Style {
	val, ok := v.Get("style")
	if !ok {
		return nil
	}
	switch s := val.(type) {
	case Style:
		return append(Style(nil), s...)
	case string:
		return ParseStyle(s)
	}
	return nil
}

// MergeStyle applies style on top of the node's inline style.
func (v *VNode) MergeStyle(style Style) *VNode {
	merged := v.InlineStyle().Merge(style)
	if v.Props == nil {
		v.Props = make(Props)
	}
	if len(merged) == 0 {
		delete(v.Props, "style")
		return v
	}
	v.Props["style"] = merged
	return v
}
