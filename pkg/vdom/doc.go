// Package vdom provides the node tree that autoform components render to.
//
// A component definition is a Definition: a function from a property bag to
// a VNode. Definitions are what gets registered with a factory; building a
// field or group calls the definition with the merged metadata properties.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Fieldset(Class("group"),
//	    Legend(Text("Account")),
//	    Label(For("email"), Text("Email")),
//	    Input(Type("email"), ID("email"), Name("email")),
//	)
//
// Arguments may be attributes (Attr, []Attr), children (*VNode, []*VNode),
// strings (text children) or nil, which is ignored.
//
// # Props
//
// Props carries both element attributes and component properties. The typed
// accessors (String, Bool, Int, Strings, Options) read component properties
// leniently, the way values decoded from JSON or YAML arrive.
package vdom
