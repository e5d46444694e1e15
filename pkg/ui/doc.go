// Package ui provides the built-in HTML components for autoform.
//
// Field components render a label, the control and an optional help text.
// Naming the control and filling in its value is left to the form binder.
// Group components receive their built fields under the "children"
// property, and root components receive the built groups the same way.
//
//	f := factory.New[vdom.Definition, *vdom.VNode](instantiator, binder)
//	ui.RegisterDefaults(f)
package ui
