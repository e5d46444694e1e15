package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement  VKind = iota // <div>, <input>, etc.
	KindText                  // Plain text node
	KindFragment              // Grouping without wrapper
	KindRaw                   // Raw HTML (dangerous)
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

// VNode is a node in the rendered tree.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (e.g., "div")
	Props    Props    // Attributes
	Children []*VNode // Child nodes
	Key      string   // Stable key, not rendered
	Text     string   // For KindText and KindRaw
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// SetProp sets an attribute on an element node, allocating Props if needed.
func (v *VNode) SetProp(key string, value any) {
	if v == nil {
		return
	}
	if v.Props == nil {
		v.Props = make(Props)
	}
	v.Props[key] = value
}

// AddClass appends class to the node's class attribute.
func (v *VNode) AddClass(class string) {
	if v == nil || class == "" {
		return
	}
	existing, _ := v.Props["class"].(string)
	if existing != "" {
		class = existing + " " + class
	}
	v.SetProp("class", class)
}

// Find returns the first element in the subtree, in document order, for
// which match returns true.
func (v *VNode) Find(match func(*VNode) bool) *VNode {
	if v == nil {
		return nil
	}
	if v.Kind == KindElement && match(v) {
		return v
	}
	for _, child := range v.Children {
		if found := child.Find(match); found != nil {
			return found
		}
	}
	return nil
}

// FindTag returns the first element with the given tag in the subtree.
func (v *VNode) FindTag(tag string) *VNode {
	return v.Find(func(n *VNode) bool { return n.Tag == tag })
}
