package ui

import (
	"github.com/vango-dev/autoform/pkg/factory"
	"github.com/vango-dev/autoform/pkg/form"
	"github.com/vango-dev/autoform/pkg/vdom"
)

// Instantiator renders a vdom definition with the factory's merged
// properties. A nil definition renders an empty fragment.
var Instantiator = factory.InstantiatorFunc[vdom.Definition, *vdom.VNode](
	func(def vdom.Definition, props factory.Props) *vdom.VNode {
		return def.Render(vdom.Props(props))
	},
)

// Binder adapts a form BindFunc to the factory's FieldBinder.
func Binder(bind form.BindFunc) factory.FieldBinder[*vdom.VNode] {
	if bind == nil {
		bind = form.Field
	}
	return factory.FieldBinderFunc[*vdom.VNode](bind)
}

// NewRegistry creates an empty registry that renders vdom definitions and
// binds fields with bind, or with form.Field when bind is nil.
func NewRegistry(bind form.BindFunc, opts ...factory.Option) *Registry {
	return factory.New[vdom.Definition, *vdom.VNode](Instantiator, Binder(bind), opts...)
}

// Default creates a registry with every built-in component registered.
func Default(opts ...factory.Option) *Registry {
	r := NewRegistry(nil, opts...)
	RegisterDefaults(r)
	return r
}
