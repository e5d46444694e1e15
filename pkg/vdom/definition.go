package vdom

// Definition is a component definition: it renders a property bag to a node.
type Definition func(props Props) *VNode

// Render calls d with props. A nil Definition renders an empty fragment.
func (d Definition) Render(props Props) *VNode {
	if d == nil {
		return Fragment()
	}
	if props == nil {
		props = Props{}
	}
	if node := d(props); node != nil {
		return node
	}
	return Fragment()
}
