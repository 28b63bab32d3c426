package vdom

import "encoding/json"

// hookProp is the internal prop key holding a HookConfig.
const hookProp = "_hook"

// HookConfig hands an element to a client-side widget. It is written to
// the document as data-hook and data-hook-config; the client runtime
// binds widgets by name.
type HookConfig struct {
	Name   string // Hook name (e.g., "Carousel", "MenuToggle")
	Config any    // JSON-encodable widget configuration
}

// Hook attaches a client hook to an element.
func Hook(name string, config any) Attr {
	return attr(hookProp, HookConfig{Name: name, Config: config})
}

// HookOf returns the hook attached to node, if any.
func HookOf(node *VNode) (HookConfig, bool) {
	val, ok := node.Get(hookProp)
	if !ok {
		return HookConfig{}, false
	}
	h, ok := val.(HookConfig)
	return h, ok && h.Name != ""
}

func encodeHookConfig(h HookConfig) string {
	if h.Config == nil {
		return ""
	}
	b, err := json.Marshal(h.Config)
	if err != nil {
		return ""
	}
	s := string(b)
	if s == "{}" || s == "null" {
		return ""
	}
	return s
}
