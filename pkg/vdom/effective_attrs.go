package vdom

import (
	"strconv"
	"strings"
)

var booleanAttrs = map[string]bool{
	"allowfullscreen": true,
	"async":           true,
	"autofocus":       true,
	"autoplay":        true,
	"checked":         true,
	"controls":        true,
	"default":         true,
	"defer":           true,
	"disabled":        true,
	"hidden":          true,
	"inert":           true,
	"loop":            true,
	"multiple":        true,
	"muted":           true,
	"open":            true,
	"playsinline":     true,
	"readonly":        true,
	"required":        true,
	"selected":        true,
}

// IsBooleanAttr reports whether name is an HTML boolean attribute, written
// without a value when true and omitted when false.
func IsBooleanAttr(name string) bool {
	return booleanAttrs[strings.ToLower(name)]
}

// EffectiveAttrs returns the string attributes that should be present in
// the document for the given node.
//
// This includes:
// - regular attributes (internal "_" props excluded)
// - derived attributes for hooks (`data-hook` + `data-hook-config`)
//
// A true boolean attribute maps to "" and a false one is omitted.
func EffectiveAttrs(node *VNode) map[string]string {
	if node == nil || node.Props == nil {
		return nil
	}

	attrs := make(map[string]string)

	for key, value := range node.Props {
		if value == nil || strings.HasPrefix(key, "_") {
			continue
		}
		if s, ok := attrValueToString(key, value); ok {
			attrs[key] = s
		}
	}

	if h, ok := HookOf(node); ok {
		attrs["data-hook"] = h.Name
		if cfg := encodeHookConfig(h); cfg != "" {
			attrs["data-hook-config"] = cfg
		}
	}

	return attrs
}

func attrValueToString(key string, value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		if IsBooleanAttr(key) {
			if v {
				return "", true
			}
			return "", false
		}
		if v {
			return "true", true
		}
		return "false", true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case Style:
		s := v.String()
		return s, s != ""
	default:
		return "", false
	}
}
