package render

// inlineElements are rendered on a single line in pretty mode.
var inlineElements = map[string]bool{
	"a":        true,
	"abbr":     true,
	"b":        true,
	"button":   true,
	"code":     true,
	"em":       true,
	"i":        true,
	"label":    true,
	"legend":   true,
	"option":   true,
	"small":    true,
	"span":     true,
	"strong":   true,
	"textarea": true,
	"title":    true,
}

func isInlineElement(tag string) bool {
	return inlineElements[tag]
}

// booleanAttrs are attributes that don't need a value.
// When true, they're rendered as just the attribute name.
var booleanAttrs = map[string]bool{
	"autofocus":      true,
	"checked":        true,
	"disabled":       true,
	"formnovalidate": true,
	"hidden":         true,
	"multiple":       true,
	"novalidate":     true,
	"readonly":       true,
	"required":       true,
	"selected":       true,
}

func isBooleanAttr(name string) bool {
	return booleanAttrs[name]
}
