package ui

import "github.com/vango-dev/autoform/pkg/vdom"

// Fieldset renders a group as a fieldset with an optional legend.
func Fieldset(p vdom.Props) *vdom.VNode {
	title := p.String(PropTitle)
	return vdom.Fieldset(
		vdom.Class("group", p.String(PropClass)),
		vdom.If(title != "", vdom.Legend(vdom.Text(title))),
		Children(p),
	)
}

// Section renders a group as a titled section.
func Section(p vdom.Props) *vdom.VNode {
	title := p.String(PropTitle)
	return vdom.Section(
		vdom.Class("group", p.String(PropClass)),
		vdom.If(title != "", vdom.H2(vdom.Text(title))),
		Children(p),
	)
}
