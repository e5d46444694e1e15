package ui

import "github.com/vango-dev/autoform/pkg/vdom"

// TextInput renders a labelled single-line text input.
func TextInput(p vdom.Props) *vdom.VNode {
	return input("text", p, textAttrs(p))
}

// EmailInput renders a labelled email input.
func EmailInput(p vdom.Props) *vdom.VNode {
	return input("email", p, textAttrs(p))
}

// PasswordInput renders a labelled password input.
func PasswordInput(p vdom.Props) *vdom.VNode {
	return input("password", p, textAttrs(p))
}

// NumberInput renders a labelled number input.
func NumberInput(p vdom.Props) *vdom.VNode {
	return input("number", p, rangeAttrs(p))
}

// DateInput renders a labelled date input.
func DateInput(p vdom.Props) *vdom.VNode {
	return input("date", p, rangeAttrs(p))
}

func input(inputType string, p vdom.Props, attrs []vdom.Attr) *vdom.VNode {
	return vdom.Fragment(
		label(p),
		vdom.Input(vdom.Type(inputType), attrs),
		help(p),
	)
}

// Textarea renders a labelled multi-line text input.
func Textarea(p vdom.Props) *vdom.VNode {
	rows := 3
	if n, ok := p.Int(PropRows); ok && n > 0 {
		rows = n
	}
	return vdom.Fragment(
		label(p),
		vdom.Textarea(vdom.Rows(rows), textAttrs(p)),
		help(p),
	)
}

// Checkbox renders a checkbox with its label after the box.
func Checkbox(p vdom.Props) *vdom.VNode {
	text := p.String(PropLabel)
	if text == "" {
		text = fieldName(p)
	}
	return vdom.Fragment(
		vdom.Label(
			vdom.Class("checkbox"),
			vdom.Input(vdom.Type("checkbox"), vdom.Value("true"), controlAttrs(p)),
			vdom.Text(" "+text),
		),
		help(p),
	)
}

// Select renders a labelled select. Options come from the options property;
// a placeholder becomes an empty first option.
func Select(p vdom.Props) *vdom.VNode {
	var options []*vdom.VNode
	if s := p.String(PropPlaceholder); s != "" {
		options = append(options, vdom.Option(vdom.Value(""), vdom.Text(s)))
	}
	options = append(options, vdom.Range(p.Options(PropOptions), func(o vdom.SelectOption, _ int) *vdom.VNode {
		return vdom.Option(vdom.Value(o.Value), vdom.Text(o.Label))
	})...)

	return vdom.Fragment(
		label(p),
		vdom.Select(
			vdom.AttrIf(p.Bool(PropMultiple), vdom.Multiple()),
			controlAttrs(p),
			options,
		),
		help(p),
	)
}
