package vdom

import "strings"

// Walk visits node and its descendants in document order. Returning false
// from fn skips the node's children.
func Walk(node *VNode, fn func(*VNode) bool) {
	if node == nil {
		return
	}
	if !fn(node) {
		return
	}
	for _, child := range node.Children {
		Walk(child, fn)
	}
}

// FindAll returns every element under root (root included) that matches.
func FindAll(root *VNode, match func(*VNode) bool) []*VNode {
	var out []*VNode
	Walk(root, func(n *VNode) bool {
		if n.Kind == KindElement && match(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Find returns the first matching element in document order, or nil.
func Find(root *VNode, match func(*VNode) bool) *VNode {
	var found *VNode
	Walk(root, func(n *VNode) bool {
		if found != nil {
			return false
		}
		if n.Kind == KindElement && match(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// ByClass returns all elements carrying class.
func ByClass(root *VNode, class string) []*VNode {
	return FindAll(root, func(n *VNode) bool { return n.HasClass(class) })
}

// ByTag returns all elements with the given tag.
func ByTag(root *VNode, tag string) []*VNode {
	return FindAll(root, func(n *VNode) bool { return n.Tag == tag })
}

// FirstByClass returns the first element carrying class, or nil.
func FirstByClass(root *VNode, class string) *VNode {
	return Find(root, func(n *VNode) bool { return n.HasClass(class) })
}

// TextContent concatenates the text of node and its descendants.
func TextContent(node *VNode) string {
	var b strings.Builder
	Walk(node, func(n *VNode) bool {
		if n.Kind == KindText {
			b.WriteString(n.Text)
		}
		return true
	})
	return b.String()
}
