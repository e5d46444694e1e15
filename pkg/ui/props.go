package ui

import "github.com/vango-dev/autoform/pkg/vdom"

// Property keys read by the built-in components, in addition to the
// factory's type, name and component.
const (
	PropLabel       = "label"
	PropPlaceholder = "placeholder"
	PropHelp        = "help"
	PropRequired    = "required"
	PropDisabled    = "disabled"
	PropReadonly    = "readonly"
	PropOptions     = "options"
	PropMultiple    = "multiple"
	PropRows        = "rows"
	PropMinLength   = "minLength"
	PropMaxLength   = "maxLength"
	PropMin         = "min"
	PropMax         = "max"
	PropStep        = "step"
	PropPattern     = "pattern"
	PropAutoFill    = "autocomplete"

	PropTitle    = "title"
	PropChildren = "children"
	PropAction   = "action"
	PropMethod   = "method"
	PropSubmit   = "submit"
	PropClass    = "class"
)

// Children returns the child nodes passed to a group or root component.
func Children(p vdom.Props) []*vdom.VNode {
	switch v := p[PropChildren].(type) {
	case []*vdom.VNode:
		return v
	case *vdom.VNode:
		return []*vdom.VNode{v}
	default:
		return nil
	}
}

// controlAttrs collects the HTML attributes shared by every form control.
func controlAttrs(p vdom.Props) []vdom.Attr {
	attrs := []vdom.Attr{
		vdom.AttrIf(p.Bool(PropRequired), vdom.Required()),
		vdom.AttrIf(p.Bool(PropDisabled), vdom.Disabled()),
		vdom.AttrIf(p.Bool(PropReadonly), vdom.Readonly()),
		vdom.Class(p.String(PropClass)),
	}
	if help := p.String(PropHelp); help != "" {
		attrs = append(attrs, vdom.AriaDescribedBy(helpID(p)))
	}
	return attrs
}

// textAttrs adds the attributes of text-like inputs.
func textAttrs(p vdom.Props) []vdom.Attr {
	attrs := controlAttrs(p)
	if s := p.String(PropPlaceholder); s != "" {
		attrs = append(attrs, vdom.Placeholder(s))
	}
	if s := p.String(PropAutoFill); s != "" {
		attrs = append(attrs, vdom.Autocomplete(s))
	}
	if n, ok := p.Int(PropMinLength); ok {
		attrs = append(attrs, vdom.MinLength(n))
	}
	if n, ok := p.Int(PropMaxLength); ok {
		attrs = append(attrs, vdom.MaxLength(n))
	}
	if s := p.String(PropPattern); s != "" {
		attrs = append(attrs, vdom.Pattern(s))
	}
	return attrs
}

// rangeAttrs adds min, max and step for number and date inputs.
func rangeAttrs(p vdom.Props) []vdom.Attr {
	attrs := controlAttrs(p)
	if s := p.String(PropMin); s != "" {
		attrs = append(attrs, vdom.Min(s))
	}
	if s := p.String(PropMax); s != "" {
		attrs = append(attrs, vdom.Max(s))
	}
	if s := p.String(PropStep); s != "" {
		attrs = append(attrs, vdom.Step(s))
	}
	return attrs
}

func fieldName(p vdom.Props) string {
	return p.String("name")
}

func helpID(p vdom.Props) string {
	return fieldName(p) + "-help"
}

// label renders the field label, falling back to the field name.
func label(p vdom.Props) *vdom.VNode {
	text := p.String(PropLabel)
	if text == "" {
		text = fieldName(p)
	}
	if text == "" {
		return nil
	}
	return vdom.Label(
		vdom.For(fieldName(p)),
		vdom.Text(text),
		vdom.If(p.Bool(PropRequired), vdom.Span(vdom.Class("required"), vdom.Text("*"))),
	)
}

func help(p vdom.Props) *vdom.VNode {
	text := p.String(PropHelp)
	if text == "" {
		return nil
	}
	return vdom.Small(vdom.ID(helpID(p)), vdom.Class("help"), vdom.Text(text))
}
