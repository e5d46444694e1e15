// Package errors provides structured, actionable error messages for autoform.
//
// Every error carries a code (e.g. "E202") that maps to a registered template
// with a category, a short message, a detailed explanation, and a
// documentation URL. Messages are replaced per occurrence so they always name
// the offending component id, field type, or schema reference.
//
// # Error Categories
//
//   - resolution: a component id or type could not be resolved
//   - validation: field metadata is missing its type or name
//   - schema: a schema document could not be decoded or is incomplete
//   - source: a schema could not be loaded from its source
//   - config: autoform.json is malformed
//   - cli: command-line usage errors
//
// # Usage
//
//	err := errors.New("E202").
//	    WithMessagef("Could not find the given component. Id: %s", id).
//	    Wrap(factory.ErrNotFound)
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E202: Could not find the given component. Id: nope
//	//
//	//   No field component is registered under the requested id.
//	//
//	//   Learn more: https://vango.dev/docs/autoform/errors/E202
package errors
