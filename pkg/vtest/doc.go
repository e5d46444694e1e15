// Package vtest provides testing helpers for autoform components.
//
// # Registries
//
// RegistryBuilder assembles a registry fluently:
//
//	obs := &vtest.Observer{}
//	reg := vtest.NewRegistry().
//	    WithDefaults().
//	    WithField("slider", []string{"number"}, Slider).
//	    WithObserver(obs).
//	    Build()
//
//	node := vtest.BuildField(t, reg, &factory.FieldMetadata{Type: "number", Name: "age"})
//	if obs.Count(factory.KindField, factory.OutcomeOK) != 1 {
//	    t.Error("expected one successful field build")
//	}
//
// # Render Assertions
//
// Assert on rendered HTML output:
//
//	vtest.ExpectContains(t, node, `name="age"`)
//	vtest.ExpectNotContains(t, node, "has-error")
//	vtest.ExpectInOrder(t, form, "<legend>Account</legend>", "<legend>Profile</legend>")
package vtest
