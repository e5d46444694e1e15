package vdom

import "strings"

// attr creates an attribute.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Global attributes

// ID sets the element id.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute. Multiple classes are joined with spaces.
func Class(classes ...string) Attr {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		if c != "" {
			parts = append(parts, c)
		}
	}
	if len(parts) == 0 {
		return Attr{}
	}
	return attr("class", strings.Join(parts, " "))
}

// Data sets a data-* attribute.
func Data(key, value string) Attr { return attr("data-"+key, value) }

// AriaDescribedBy links an element to its description.
func AriaDescribedBy(id string) Attr { return attr("aria-describedby", id) }

// Form attributes

func Name(name string) Attr        { return attr("name", name) }
func Value(value string) Attr      { return attr("value", value) }
func Type(t string) Attr           { return attr("type", t) }
func Placeholder(text string) Attr { return attr("placeholder", text) }
func For(id string) Attr           { return attr("for", id) }
func Action(url string) Attr       { return attr("action", url) }
func Method(method string) Attr    { return attr("method", method) }
func Autocomplete(v string) Attr   { return attr("autocomplete", v) }

// Boolean attributes

func Disabled() Attr { return attr("disabled", true) }
func Readonly() Attr { return attr("readonly", true) }
func Required() Attr { return attr("required", true) }
func Multiple() Attr { return attr("multiple", true) }

// Constraint attributes

func Pattern(pattern string) Attr { return attr("pattern", pattern) }
func MinLength(n int) Attr        { return attr("minlength", n) }
func MaxLength(n int) Attr        { return attr("maxlength", n) }
func Min(value string) Attr       { return attr("min", value) }
func Max(value string) Attr       { return attr("max", value) }
func Step(value string) Attr      { return attr("step", value) }
func Rows(n int) Attr             { return attr("rows", n) }

// AttrIf returns the attribute only when condition is true.
func AttrIf(condition bool, a Attr) Attr {
	if !condition {
		return Attr{}
	}
	return a
}

