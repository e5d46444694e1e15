// Package schema decodes form documents and builds them into node trees.
//
// A document lists groups of fields. Fields are flat property bags, the
// same shape a factory's field metadata takes:
//
//	title: Sign up
//	action: /signup
//	groups:
//	  - title: Account
//	    fields:
//	      - {type: text, name: username, label: Username, required: true}
//	      - {type: email, name: email}
//
// Documents may be JSON or YAML. Parse detects the format; Decode takes it
// explicitly. Validate reports every field without a type or name at once.
//
// A Builder resolves each field and group through a component registry and
// wraps the result in the registry's current root, or in the root the
// document names.
package schema
