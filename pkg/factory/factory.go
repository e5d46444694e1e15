package factory

import (
	"reflect"
	"sort"
	"sync"
)

// Props is the property bag handed to a component definition when it is
// instantiated.
type Props map[string]any

// Instantiator turns a component definition and a property bag into a
// renderable instance.
type Instantiator[D, N any] interface {
	Instantiate(def D, props Props) N
}

// InstantiatorFunc is a function that implements Instantiator.
type InstantiatorFunc[D, N any] func(def D, props Props) N

// Instantiate implements Instantiator.
func (f InstantiatorFunc[D, N]) Instantiate(def D, props Props) N {
	return f(def, props)
}

// FieldBinder wraps an instantiated field component so the form-binding
// layer can connect it to form state under the given name.
type FieldBinder[N any] interface {
	BindField(name string, child N) N
}

// FieldBinderFunc is a function that implements FieldBinder.
type FieldBinderFunc[N any] func(name string, child N) N

// BindField implements FieldBinder.
func (f FieldBinderFunc[N]) BindField(name string, child N) N {
	return f(name, child)
}

// Observer receives one notification per build attempt.
// kind is one of KindField, KindGroup or KindRoot; outcome is OutcomeOK or
// one of the failure outcomes.
type Observer interface {
	ObserveResolution(kind, outcome string)
}

// Resolution kinds reported to an Observer.
const (
	KindField = "field"
	KindGroup = "group"
	KindRoot  = "root"
)

// Option configures a Factory.
type Option func(*options)

type options struct {
	observer Observer
}

// WithObserver attaches an Observer that is notified of every build.
func WithObserver(o Observer) Option {
	return func(opts *options) {
		opts.observer = o
	}
}

// Factory is a registry of field, group and root component definitions of
// type D, and a resolver that turns metadata into instances of type N.
//
// A Factory is safe for concurrent use. Registration takes the write lock,
// lookups take the read lock, and instantiation runs outside the lock.
type Factory[D, N any] struct {
	mu sync.RWMutex

	// fieldsByType holds, per type, the definitions in registration order.
	// The first entry is the positional default for that type.
	fieldsByType  map[string][]D
	fieldsByID    map[string]D
	defaultFields map[string]string

	groupsByID   map[string]D
	defaultGroup string

	rootsByID   map[string]D
	currentRoot string

	instantiator Instantiator[D, N]
	binder       FieldBinder[N]
	observer     Observer
}

// New creates an empty Factory that instantiates definitions with inst and
// wraps field instances with binder.
func New[D, N any](inst Instantiator[D, N], binder FieldBinder[N], opts ...Option) *Factory[D, N] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Factory[D, N]{
		fieldsByType:  make(map[string][]D),
		fieldsByID:    make(map[string]D),
		defaultFields: make(map[string]string),
		groupsByID:    make(map[string]D),
		rootsByID:     make(map[string]D),
		instantiator:  inst,
		binder:        binder,
		observer:      o.observer,
	}
}

func (f *Factory[D, N]) observe(kind string, err error) {
	if f.observer == nil {
		return
	}
	f.observer.ObserveResolution(kind, Outcome(err))
}

// isEmpty reports whether def is a nil func, pointer, interface, map, slice
// or channel. Definitions of other kinds are never empty.
func isEmpty[D any](def D) bool {
	v := reflect.ValueOf(any(def))
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan:
		return v.IsNil()
	}
	return false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
