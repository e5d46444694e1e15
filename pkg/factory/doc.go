// Package factory resolves form metadata to registered UI components.
//
// A Factory holds three independent registries of component definitions:
// field components (indexed by id and by data type), group components and
// root components. Definitions are opaque values of type D; the factory
// only stores and returns them. Building a component turns a definition and
// its metadata into an instance of type N through an Instantiator, and field
// instances are additionally wrapped by a FieldBinder so a form-binding layer
// can attach them to form state.
//
// # Registration
//
//	f := factory.New[vdom.Definition, *vdom.VNode](instantiator, binder)
//
//	f.RegisterFieldComponent("text", []string{"text", "email"}, ui.TextInput)
//	f.RegisterFieldComponent("textarea", []string{"text"}, ui.Textarea)
//	f.RegisterGroupComponent("fieldset", ui.Fieldset)
//	f.SetDefaultGroupComponent("fieldset")
//
// Re-registering an id overwrites it silently. Default ids set with
// SetDefaultFieldComponents, SetDefaultGroupComponent and SetCurrentRoot are
// not checked until they are used.
//
// # Default selection
//
// A field without an explicit component resolves to the default for its type:
// the id configured with SetDefaultFieldComponents if any, otherwise the first
// definition ever registered for that type.
//
// # Building
//
//	node, err := f.BuildFieldComponent(&factory.FieldMetadata{
//	    Type: "text",
//	    Name: "email",
//	    Props: factory.Props{"label": "Email"},
//	})
//
// Field properties are merged in this order, later keys winning: Props, then
// type/name/component, then FormProps.
//
// # Errors
//
// Every failure wraps one of ErrInvalidArgument, ErrValidation, ErrNotFound
// or ErrResolution and names the offending id or type. Root is the exception:
// it reports a missing root with a boolean instead of an error.
package factory
