package vtest

import (
	"strings"
	"sync"
	"testing"

	"github.com/vango-dev/autoform/pkg/factory"
	"github.com/vango-dev/autoform/pkg/form"
	"github.com/vango-dev/autoform/pkg/render"
	"github.com/vango-dev/autoform/pkg/ui"
	"github.com/vango-dev/autoform/pkg/vdom"
)

// RegistryBuilder assembles a component registry for a test.
type RegistryBuilder struct {
	bind     form.BindFunc
	defaults bool
	observer factory.Observer
	steps    []func(*ui.Registry)
}

// NewRegistry starts an empty registry. Call WithDefaults to start from
// the built-in components instead.
func NewRegistry() *RegistryBuilder {
	return &RegistryBuilder{}
}

// WithDefaults registers the built-in components before anything else.
func (b *RegistryBuilder) WithDefaults() *RegistryBuilder {
	b.defaults = true
	return b
}

// WithBinder replaces form.Field as the field binder.
func (b *RegistryBuilder) WithBinder(bind form.BindFunc) *RegistryBuilder {
	b.bind = bind
	return b
}

// WithObserver attaches an observer to the registry.
func (b *RegistryBuilder) WithObserver(o factory.Observer) *RegistryBuilder {
	b.observer = o
	return b
}

// WithField registers a field component.
func (b *RegistryBuilder) WithField(id string, types []string, def vdom.Definition) *RegistryBuilder {
	b.steps = append(b.steps, func(r *ui.Registry) { r.RegisterFieldComponent(id, types, def) })
	return b
}

// WithGroup registers a group component.
func (b *RegistryBuilder) WithGroup(id string, def vdom.Definition) *RegistryBuilder {
	b.steps = append(b.steps, func(r *ui.Registry) { r.RegisterGroupComponent(id, def) })
	return b
}

// WithRoot registers a root component and makes it current.
func (b *RegistryBuilder) WithRoot(id string, def vdom.Definition) *RegistryBuilder {
	b.steps = append(b.steps, func(r *ui.Registry) {
		r.RegisterRootComponent(id, def)
		r.SetCurrentRoot(id)
	})
	return b
}

// Build creates the registry.
func (b *RegistryBuilder) Build() *ui.Registry {
	var opts []factory.Option
	if b.observer != nil {
		opts = append(opts, factory.WithObserver(b.observer))
	}
	r := ui.NewRegistry(b.bind, opts...)
	if b.defaults {
		ui.RegisterDefaults(r)
	}
	for _, step := range b.steps {
		step(r)
	}
	return r
}

// Resolution is one notification received by an Observer.
type Resolution struct {
	Kind    string
	Outcome string
}

// Observer records every build a registry reports. It is safe for
// concurrent use.
type Observer struct {
	mu     sync.Mutex
	events []Resolution
}

// ObserveResolution implements factory.Observer.
func (o *Observer) ObserveResolution(kind, outcome string) {
	o.mu.Lock()
	o.events = append(o.events, Resolution{Kind: kind, Outcome: outcome})
	o.mu.Unlock()
}

// Events returns the recorded notifications in order.
func (o *Observer) Events() []Resolution {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]Resolution(nil), o.events...)
}

// Count returns how many notifications matched kind and outcome.
func (o *Observer) Count(kind, outcome string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	n := 0
	for _, e := range o.events {
		if e.Kind == kind && e.Outcome == outcome {
			n++
		}
	}
	return n
}

// BuildField builds a field component and fails the test on error.
func BuildField(t *testing.T, r *ui.Registry, meta *factory.FieldMetadata) *vdom.VNode {
	t.Helper()
	node, err := r.BuildFieldComponent(meta)
	if err != nil {
		t.Fatalf("BuildFieldComponent(%s/%s): %v", meta.Type, meta.Name, err)
	}
	return node
}

// BuildGroup builds a group component and fails the test on error.
func BuildGroup(t *testing.T, r *ui.Registry, meta *factory.GroupMetadata) *vdom.VNode {
	t.Helper()
	node, err := r.BuildGroupComponent(meta)
	if err != nil {
		t.Fatalf("BuildGroupComponent(%q): %v", meta.Component, err)
	}
	return node
}

// RenderToString renders a VNode tree to compact HTML.
// Returns an empty string if rendering fails.
//
// Example:
//
//	html := vtest.RenderToString(node)
//	if !strings.Contains(html, "expected text") {
//	    t.Error("missing expected text")
//	}
func RenderToString(node *vdom.VNode) string {
	r := render.NewRenderer(render.RendererConfig{})
	html, err := r.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains expected substring.
func ExpectContains(t *testing.T, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t *testing.T, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectInOrder asserts that every part occurs in the rendered output, each
// after the previous one.
//
// Example:
//
//	vtest.ExpectInOrder(t, node, "<legend>Account</legend>", `name="email"`)
func ExpectInOrder(t *testing.T, node *vdom.VNode, parts ...string) {
	t.Helper()
	html := RenderToString(node)
	pos := 0
	for _, part := range parts {
		i := strings.Index(html[pos:], part)
		if i < 0 {
			t.Errorf("expected %q after offset %d, got:\n%s", part, pos, truncate(html, 2000))
			return
		}
		pos += i + len(part)
	}
}

// ExpectElement asserts that rendered output contains a specific tag.
func ExpectElement(t *testing.T, node *vdom.VNode, tag string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, "<"+tag) {
		t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(html, 500))
	}
}

// ExpectAttribute asserts that rendered output contains an attribute value.
//
// Example:
//
//	vtest.ExpectAttribute(t, node, "data-field", "email")
func ExpectAttribute(t *testing.T, node *vdom.VNode, attr, value string) {
	t.Helper()
	html := RenderToString(node)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
