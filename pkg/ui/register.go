package ui

import (
	"github.com/vango-dev/autoform/pkg/factory"
	"github.com/vango-dev/autoform/pkg/vdom"
)

// Registry is a factory whose definitions are vdom definitions.
type Registry = factory.Factory[vdom.Definition, *vdom.VNode]

// FieldComponent describes a built-in field component.
type FieldComponent struct {
	ID         string
	Types      []string
	Definition vdom.Definition
}

// FieldComponents lists the built-in field components in registration
// order. For a type served by several components, the first listed is the
// type's first-registered default.
var FieldComponents = []FieldComponent{
	{ID: "text", Types: []string{"text"}, Definition: TextInput},
	{ID: "email", Types: []string{"email", "text"}, Definition: EmailInput},
	{ID: "password", Types: []string{"password"}, Definition: PasswordInput},
	{ID: "textarea", Types: []string{"text", "textarea"}, Definition: Textarea},
	{ID: "number", Types: []string{"number"}, Definition: NumberInput},
	{ID: "date", Types: []string{"date"}, Definition: DateInput},
	{ID: "checkbox", Types: []string{"boolean", "checkbox"}, Definition: Checkbox},
	{ID: "select", Types: []string{"select", "enum"}, Definition: Select},
}

// Built-in group and root component ids.
const (
	GroupFieldset = "fieldset"
	GroupSection  = "section"
	RootForm      = "form"
	RootInline    = "inline"
)

// RegisterDefaults registers every built-in component with f, makes
// fieldset the default group and form the current root.
func RegisterDefaults(f *Registry) {
	for _, c := range FieldComponents {
		f.RegisterFieldComponent(c.ID, c.Types, c.Definition)
	}

	f.RegisterGroupComponent(GroupFieldset, Fieldset)
	f.RegisterGroupComponent(GroupSection, Section)
	f.SetDefaultGroupComponent(GroupFieldset)

	f.RegisterRootComponent(RootForm, FormRoot)
	f.RegisterRootComponent(RootInline, InlineRoot)
	f.SetCurrentRoot(RootForm)
}
