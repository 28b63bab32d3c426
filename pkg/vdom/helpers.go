package vdom

// Text creates a text node. The renderer escapes it.
func Text(content string) *VNode {
	return &VNode{Kind: KindText, Text: content}
}

// Raw creates a node whose HTML is written verbatim. Only sanitised
// markup, such as formatted descriptions, belongs here.
func Raw(html string) *VNode {
	return &VNode{Kind: KindRaw, Text: html}
}

// Fragment groups children without a wrapper element. Children may be
// nodes, node slices or strings; nils are dropped.
func Fragment(children ...any) *VNode {
	node := &VNode{Kind: KindFragment}
	for _, child := range children {
		switch v := child.(type) {
		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*VNode:
			node.Children = appendNodes(node.Children, v)
		case string:
			node.Children = append(node.Children, Text(v))
		}
	}
	return node
}

// Range maps config entries to nodes in order. Entries mapped to nil are
// left out, so an incomplete menu item or slide simply disappears.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	if len(items) == 0 {
		return nil
	}
	result := make([]*VNode, 0, len(items))
	for i, item := range items {
		if node := fn(item, i); node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Repeat builds n sibling nodes, such as the slots of a rating.
func Repeat(n int, fn func(i int) *VNode) []*VNode {
	if n <= 0 {
		return nil
	}
	result := make([]*VNode, 0, n)
	for i := 0; i < n; i++ {
		if node := fn(i); node != nil {
			result = append(result, node)
		}
	}
	return result
}

func appendNodes(dst, nodes []*VNode) []*VNode {
	for _, n := range nodes {
		if n != nil {
			dst = append(dst, n)
		}
	}
	return dst
}
