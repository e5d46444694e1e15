// Package form binds rendered field components to form state.
//
// Field wraps a rendered component in a div.field element tagged with the
// field name and gives the first input, select or textarea inside it that
// name. A State adds current values and validation errors to the same
// wrapping:
//
//	state := form.NewState(map[string]any{"email": "a@b.co"})
//	state.Validate(map[string][]form.Validator{
//	    "email": {form.Required(""), form.Email("")},
//	})
//	node := state.Field("email", vdom.Input(vdom.Type("email")))
//
// State.Binder returns the same wrapping as a BindFunc, which is what a
// component factory uses to bind built field components.
//
// # Validation
//
// Built-in validators:
//
//   - Required: Non-empty value
//   - MinLength/MaxLength: String length constraints
//   - Email: Valid email format
//   - Pattern: Regular expression matching
//   - Min/Max: Numeric range constraints
//
// Length, pattern, email and range validators accept empty values; combine
// them with Required to reject those.
package form
