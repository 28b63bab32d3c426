package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement  VKind = iota // <div>, <img>, etc.
	KindText                  // Plain text node
	KindFragment              // Grouping without wrapper
	KindRaw                   // Raw HTML (trusted input only)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is an in-memory page node. A builder owns the nodes it creates
// until they are appended to a parent's Children.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (e.g., "div")
	Props    Props    // Attributes, keyed by attribute name
	Children []*VNode // Child nodes
	Text     string   // For KindText and KindRaw
}

// Props holds element attributes. Values keep their native Go types;
// conversion to strings happens in EffectiveAttrs.
type Props map[string]any

// Attr represents a single attribute. Attrs are only created through the
// constructors in attributes.go.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Append adds children to an element or fragment, skipping nil nodes.
func (v *VNode) Append(children ...*VNode) *VNode {
	for _, c := range children {
		if c != nil {
			v.Children = append(v.Children, c)
		}
	}
	return v
}

// Get returns the raw value of an attribute.
func (v *VNode) Get(key string) (any, bool) {
	if v == nil || v.Props == nil {
		return nil, false
	}
	val, ok := v.Props[key]
	return val, ok
}

// AttrString returns the string form of an attribute as it would be
// written to the document, or "" if absent.
func (v *VNode) AttrString(key string) string {
	val, ok := v.Get(key)
	if !ok {
		return ""
	}
	s, _ := attrValueToString(key, val)
	return s
}

// Clone returns a deep copy of the node.
func (v *VNode) Clone() *VNode {
	if v == nil {
		return nil
	}
	c := &VNode{
		Kind: v.Kind,
		Tag:  v.Tag,
		Text: v.Text,
	}
	if v.Props != nil {
		c.Props = make(Props, len(v.Props))
		for k, val := range v.Props {
			if s, ok := val.(Style); ok {
				val = append(Style(nil), s...)
			}
			c.Props[k] = val
		}
	}
	if v.Children != nil {
		c.Children = make([]*VNode, 0, len(v.Children))
		for _, child := range v.Children {
			c.Children = append(c.Children, child.Clone())
		}
	}
	return c
}
