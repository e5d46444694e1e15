package form

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Validator checks one submitted value. It returns nil when the value is
// acceptable and a ValidationError otherwise.
type Validator interface {
	Validate(value any) error
}

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc func(value any) error

func (f ValidatorFunc) Validate(value any) error {
	return f(value)
}

// ValidationError is a failed rule. Rule is the schema keyword that
// produced it ("required", "minLength", ...). Field names the field when
// the caller knows it.
type ValidationError struct {
	Field   string
	Rule    string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// rule is the Validator behind every constructor in this file. Rules other
// than required accept empty values so that an optional field may be left
// blank.
type rule struct {
	name     string
	message  string
	optional bool
	ok       func(value any) bool
}

func (r rule) Validate(value any) error {
	if r.optional && isEmpty(value) {
		return nil
	}
	if r.ok(value) {
		return nil
	}
	return ValidationError{Rule: r.name, Message: r.message}
}

func orDefault(msg, def string) string {
	if msg != "" {
		return msg
	}
	return def
}

// Required rejects nil, blank strings and empty slices.
func Required(msg string) Validator {
	return rule{
		name:    "required",
		message: orDefault(msg, "This field is required"),
		ok:      func(v any) bool { return !isEmpty(v) },
	}
}

// MinLength requires at least n characters.
func MinLength(n int, msg string) Validator {
	return rule{
		name:     "minLength",
		message:  orDefault(msg, fmt.Sprintf("Must be at least %d characters", n)),
		optional: true,
		ok:       func(v any) bool { return utf8.RuneCountInString(toString(v)) >= n },
	}
}

// MaxLength allows at most n characters.
func MaxLength(n int, msg string) Validator {
	return rule{
		name:     "maxLength",
		message:  orDefault(msg, fmt.Sprintf("Must be at most %d characters", n)),
		optional: true,
		ok:       func(v any) bool { return utf8.RuneCountInString(toString(v)) <= n },
	}
}

// Pattern requires the value to match pattern. It panics if pattern does
// not compile; patterns read from documents go through CompilePattern.
func Pattern(pattern string, msg string) Validator {
	v, err := CompilePattern(pattern, msg)
	if err != nil {
		panic(err)
	}
	return v
}

// CompilePattern is Pattern with an error for an invalid expression.
func CompilePattern(pattern string, msg string) (Validator, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return matching("pattern", re, orDefault(msg, "Invalid format")), nil
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email requires a plausible email address.
func Email(msg string) Validator {
	return matching("email", emailPattern, orDefault(msg, "Invalid email address"))
}

func matching(name string, re *regexp.Regexp, msg string) Validator {
	return rule{
		name:     name,
		message:  msg,
		optional: true,
		ok:       func(v any) bool { return re.MatchString(toString(v)) },
	}
}

// Min requires a number no smaller than n. Non-numeric values fail.
func Min(n float64, msg string) Validator {
	return bound("min", orDefault(msg, fmt.Sprintf("Must be at least %v", n)), func(f float64) bool { return f >= n })
}

// Max requires a number no larger than n. Non-numeric values fail.
func Max(n float64, msg string) Validator {
	return bound("max", orDefault(msg, fmt.Sprintf("Must be at most %v", n)), func(f float64) bool { return f <= n })
}

func bound(name, msg string, within func(float64) bool) Validator {
	return rule{
		name:     name,
		message:  msg,
		optional: true,
		ok: func(v any) bool {
			f, ok := toFloat64(v)
			return ok && within(f)
		},
	}
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []byte:
		return len(v) == 0
	case []string:
		return len(v) == 0
	default:
		return false
	}
}

// toString renders a submitted value as text. Multi-valued submissions use
// their first value.
func toString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		if len(v) == 0 {
			return ""
		}
		return v[0]
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// toFloat64 reports whether value is a number or numeric string.
func toFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
