package vdom

import (
	"fmt"
	"sort"
	"strconv"
)

// Props holds attributes and component properties.
type Props map[string]any

// String returns the property as a string. Numbers and booleans are
// formatted; anything else yields "".
func (p Props) String(key string) string {
	switch v := p[key].(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return ""
	}
}

// Bool returns the property as a boolean. The strings "true" and "1" count
// as true.
func (p Props) Bool(key string) bool {
	switch v := p[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	default:
		return false
	}
}

// Int returns the property as an int and whether it held a number.
func (p Props) Int(key string) (int, bool) {
	switch v := p[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(v)
		return n, err == nil
	default:
		return 0, false
	}
}

// Strings returns the property as a string slice. A single string becomes a
// one-element slice.
func (p Props) Strings(key string) []string {
	switch v := p[key].(type) {
	case []string:
		return v
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			} else if item != nil {
				out = append(out, fmt.Sprint(item))
			}
		}
		return out
	default:
		return nil
	}
}

// SelectOption is one choice of a select or enum field.
type SelectOption struct {
	Value string
	Label string
}

// Options returns the property as select options. It accepts a list of
// strings, a list of {value, label} objects, or a value-to-label object,
// which is returned sorted by value.
func (p Props) Options(key string) []SelectOption {
	switch v := p[key].(type) {
	case []SelectOption:
		return v
	case []string:
		out := make([]SelectOption, len(v))
		for i, s := range v {
			out[i] = SelectOption{Value: s, Label: s}
		}
		return out
	case []any:
		out := make([]SelectOption, 0, len(v))
		for _, item := range v {
			if opt, ok := toOption(item); ok {
				out = append(out, opt)
			}
		}
		return out
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]SelectOption, 0, len(keys))
		for _, k := range keys {
			out = append(out, SelectOption{Value: k, Label: Props(v).String(k)})
		}
		return out
	default:
		return nil
	}
}

func toOption(item any) (SelectOption, bool) {
	switch o := item.(type) {
	case string:
		return SelectOption{Value: o, Label: o}, true
	case map[string]any:
		return optionFromBag(Props(o))
	case map[any]any:
		bag := make(Props, len(o))
		for k, v := range o {
			if ks, ok := k.(string); ok {
				bag[ks] = v
			}
		}
		return optionFromBag(bag)
	default:
		if item == nil {
			return SelectOption{}, false
		}
		s := fmt.Sprint(item)
		return SelectOption{Value: s, Label: s}, true
	}
}

func optionFromBag(bag Props) (SelectOption, bool) {
	value := bag.String("value")
	label := bag.String("label")
	if value == "" && label == "" {
		return SelectOption{}, false
	}
	if label == "" {
		label = value
	}
	return SelectOption{Value: value, Label: label}, true
}
