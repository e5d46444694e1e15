package ui

import (
	"strings"

	"github.com/vango-dev/autoform/pkg/vdom"
)

// FormRoot renders the document as a form with a title and a submit button.
func FormRoot(p vdom.Props) *vdom.VNode {
	method := strings.ToLower(p.String(PropMethod))
	if method == "" {
		method = "post"
	}
	submit := p.String(PropSubmit)
	if submit == "" {
		submit = "Submit"
	}
	title := p.String(PropTitle)

	return vdom.Form(
		vdom.Class("autoform", p.String(PropClass)),
		vdom.Method(method),
		vdom.AttrIf(p.String(PropAction) != "", vdom.Action(p.String(PropAction))),
		vdom.If(title != "", vdom.H1(vdom.Text(title))),
		Children(p),
		vdom.Div(vdom.Class("actions"),
			vdom.Button(vdom.Type("submit"), vdom.Text(submit)),
		),
	)
}

// InlineRoot renders the document's groups in a plain container, for
// embedding in an existing form.
func InlineRoot(p vdom.Props) *vdom.VNode {
	return vdom.Div(
		vdom.Class("autoform-inline", p.String(PropClass)),
		Children(p),
	)
}
