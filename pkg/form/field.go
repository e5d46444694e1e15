package form

import (
	"fmt"
	"strings"

	"github.com/vango-dev/autoform/pkg/vdom"
)

// BindFunc wraps a rendered field under a form field name.
type BindFunc func(name string, child *vdom.VNode) *vdom.VNode

// Field binds child to name without any form state.
func Field(name string, child *vdom.VNode) *vdom.VNode {
	return bind(name, child, nil, false, nil)
}

// Field binds child to name, filling in the current value and showing the
// field's validation errors.
func (s *State) Field(name string, child *vdom.VNode) *vdom.VNode {
	value, ok := s.Lookup(name)
	return bind(name, child, value, ok, s.FieldErrors(name))
}

// Binder returns the state's Field method as a BindFunc.
func (s *State) Binder() BindFunc {
	return s.Field
}

// bind names the first form control inside child, and wraps child in a
// div.field carrying the field name and any error messages.
func bind(name string, child *vdom.VNode, value any, hasValue bool, errs []string) *vdom.VNode {
	if child == nil {
		child = vdom.Fragment()
	}

	control := child.Find(isControl)
	if control != nil {
		control.SetProp("name", name)
		if _, ok := control.Props["id"]; !ok {
			control.SetProp("id", name)
		}
	}

	wrapper := vdom.Div(vdom.Class("field"), vdom.Data("field", name), child)
	fill(wrapper, control, name, value, hasValue, errs)
	return wrapper
}

// Apply fills the state's values and errors into every field wrapper of an
// already built tree. Error lists left by an earlier Apply are replaced.
func (s *State) Apply(tree *vdom.VNode) {
	walkFields(tree, func(wrapper *vdom.VNode, name string) {
		kept := wrapper.Children[:0]
		for _, c := range wrapper.Children {
			if c == nil || c.Props["class"] != "field-errors" {
				kept = append(kept, c)
			}
		}
		wrapper.Children = kept
		if cls, _ := wrapper.Props["class"].(string); cls != "field" {
			wrapper.SetProp("class", "field")
		}

		control := wrapper.Find(isControl)
		if control != nil {
			clearErrorMarks(control)
		}
		value, ok := s.Lookup(name)
		fill(wrapper, control, name, value, ok, s.FieldErrors(name))
	})
}

func clearErrorMarks(control *vdom.VNode) {
	delete(control.Props, "aria-invalid")
	delete(control.Props, "aria-describedby")
	cls, _ := control.Props["class"].(string)
	if cls == "" {
		return
	}
	kept := make([]string, 0, 2)
	for _, c := range strings.Fields(cls) {
		if c != "field-error" {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		delete(control.Props, "class")
		return
	}
	control.Props["class"] = strings.Join(kept, " ")
}

func walkFields(n *vdom.VNode, fn func(wrapper *vdom.VNode, name string)) {
	if n == nil {
		return
	}
	if name, ok := n.Props["data-field"].(string); ok && n.Kind == vdom.KindElement {
		fn(n, name)
		return
	}
	for _, c := range n.Children {
		walkFields(c, fn)
	}
}

func fill(wrapper, control *vdom.VNode, name string, value any, hasValue bool, errs []string) {
	if control != nil && hasValue {
		setValue(control, value)
	}
	if len(errs) == 0 {
		return
	}

	errorsID := name + "-errors"
	wrapper.AddClass("has-error")
	if control != nil {
		control.AddClass("field-error")
		control.SetProp("aria-invalid", "true")
		control.SetProp("aria-describedby", errorsID)
	}
	wrapper.Children = append(wrapper.Children, vdom.Div(
		vdom.ID(errorsID),
		vdom.Class("field-errors"),
		vdom.Range(errs, func(msg string, _ int) *vdom.VNode {
			return vdom.Span(vdom.Class("field-error-message"), vdom.Text(msg))
		}),
	))
}

func isControl(n *vdom.VNode) bool {
	switch n.Tag {
	case "input", "select", "textarea":
		return true
	}
	return false
}

// setValue writes value onto control the way each control type expects.
func setValue(control *vdom.VNode, value any) {
	switch control.Tag {
	case "textarea":
		control.Children = []*vdom.VNode{vdom.Text(toString(value))}
	case "select":
		selected := make(map[string]bool)
		switch v := value.(type) {
		case []string:
			for _, s := range v {
				selected[s] = true
			}
		case []any:
			for _, s := range v {
				selected[fmt.Sprint(s)] = true
			}
		default:
			selected[toString(value)] = true
		}
		for _, opt := range control.Children {
			if opt == nil || opt.Tag != "option" {
				continue
			}
			v, _ := opt.Props["value"].(string)
			opt.SetProp("selected", selected[v])
		}
	case "input":
		if t, _ := control.Props["type"].(string); t == "checkbox" || t == "radio" {
			control.SetProp("checked", truthy(value))
			return
		}
		control.SetProp("value", toString(value))
	}
}

func truthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v != "" && v != "false" && v != "0" && v != "off"
	case nil:
		return false
	default:
		f, ok := toFloat64(v)
		return !ok || f != 0
	}
}
