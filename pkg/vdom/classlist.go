package vdom

import "strings"

func splitClasses(s string) []string {
	return strings.Fields(s)
}

// Classes returns the element's class list in insertion order.
func (v *VNode) Classes() []string {
	if v == nil || v.Props == nil {
		return nil
	}
	s, _ := v.Props["class"].(string)
	return splitClasses(s)
}

// HasClass reports whether the element carries class name.
func (v *VNode) HasClass(name string) bool {
	for _, c := range v.Classes() {
		if c == name {
			return true
		}
	}
	return false
}

// AddClass adds classes that are not already present.
func (v *VNode) AddClass(names ...string) *VNode {
	if len(names) == 0 {
		return v
	}
	list := v.Classes()
	for _, raw := range names {
		for _, name := range splitClasses(raw) {
			if !containsString(list, name) {
				list = append(list, name)
			}
		}
	}
	v.setClassList(list)
	return v
}

// RemoveClass removes classes if present.
func (v *VNode) RemoveClass(names ...string) *VNode {
	list := v.Classes()
	kept := list[:0]
	for _, c := range list {
		if !containsString(names, c) {
			kept = append(kept, c)
		}
	}
	v.setClassList(kept)
	return v
}

// ToggleClass flips name and reports whether it is now present.
func (v *VNode) ToggleClass(name string) bool {
	if v.HasClass(name) {
		v.RemoveClass(name)
		return false
	}
	v.AddClass(name)
	return true
}

func (v *VNode) setClassList(list []string) {
	if v.Props == nil {
		v.Props = make(Props)
	}
	if len(list) == 0 {
		delete(v.Props, "class")
		return
	}
	v.Props["class"] = strings.Join(list, " ")
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
