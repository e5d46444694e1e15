package schema

import (
	"fmt"

	"github.com/vango-dev/autoform/pkg/form"
	"github.com/vango-dev/autoform/pkg/vdom"
)

// Field keys that declare validation rules.
const (
	RuleRequired  = "required"
	RuleMinLength = "minLength"
	RuleMaxLength = "maxLength"
	RulePattern   = "pattern"
	RuleMin       = "min"
	RuleMax       = "max"
	RuleMessage   = "message"
)

// Rules returns the validators the field declares. Email fields always get
// an Email validator. An optional "message" key overrides every default
// message.
func (f Field) Rules() ([]form.Validator, error) {
	p := vdom.Props(f)
	msg := p.String(RuleMessage)
	var rules []form.Validator

	if p.Bool(RuleRequired) {
		rules = append(rules, form.Required(msg))
	}
	if raw, ok := f[RuleMinLength]; ok {
		n, ok := p.Int(RuleMinLength)
		if !ok || n < 0 {
			return nil, fmt.Errorf("%s must be a non-negative number, got %v", RuleMinLength, raw)
		}
		rules = append(rules, form.MinLength(n, msg))
	}
	if raw, ok := f[RuleMaxLength]; ok {
		n, ok := p.Int(RuleMaxLength)
		if !ok || n < 0 {
			return nil, fmt.Errorf("%s must be a non-negative number, got %v", RuleMaxLength, raw)
		}
		rules = append(rules, form.MaxLength(n, msg))
	}
	if pattern := p.String(RulePattern); pattern != "" {
		v, err := form.CompilePattern(pattern, msg)
		if err != nil {
			return nil, err
		}
		rules = append(rules, v)
	}
	// min and max are numeric bounds only for number fields; date fields
	// pass them through as HTML attributes.
	if f.Type() == "number" {
		for _, key := range []string{RuleMin, RuleMax} {
			raw, ok := f[key]
			if !ok {
				continue
			}
			n, ok := toNumber(raw)
			if !ok {
				return nil, fmt.Errorf("%s must be a number, got %v", key, raw)
			}
			if key == RuleMin {
				rules = append(rules, form.Min(n, msg))
			} else {
				rules = append(rules, form.Max(n, msg))
			}
		}
	}
	if f.Type() == "email" {
		rules = append(rules, form.Email(msg))
	}
	return rules, nil
}

// Rules returns the validators of every field, keyed by field name.
func (d *Document) Rules() (map[string][]form.Validator, error) {
	out := make(map[string][]form.Validator)
	for _, f := range d.Fields() {
		rules, err := f.Rules()
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name(), err)
		}
		if len(rules) > 0 {
			out[f.Name()] = rules
		}
	}
	return out, nil
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case string:
		var f float64
		_, err := fmt.Sscan(n, &f)
		return f, err == nil
	default:
		return 0, false
	}
}
