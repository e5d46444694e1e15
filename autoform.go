// Package autoform builds forms from metadata.
//
// This is the recommended import for most applications:
//
//	import "github.com/vango-dev/autoform"
//
// Usage:
//
//	reg := autoform.New()
//	reg.RegisterFieldComponent("slider", []string{"number"}, Slider)
//
//	node, err := reg.BuildFieldComponent(&autoform.FieldMetadata{
//	    Type: "number",
//	    Name: "volume",
//	})
//
//	html, err := autoform.Render(ctx, reg, schemaYAML)
package autoform

import (
	"context"

	"github.com/vango-dev/autoform/internal/config"
	"github.com/vango-dev/autoform/pkg/factory"
	"github.com/vango-dev/autoform/pkg/render"
	"github.com/vango-dev/autoform/pkg/schema"
	"github.com/vango-dev/autoform/pkg/ui"
	"github.com/vango-dev/autoform/pkg/vdom"
)

// =============================================================================
// Types
// =============================================================================

// Registry is the component registry over vdom definitions.
type Registry = ui.Registry

// Definition is a component definition: a function from props to a tree.
type Definition = vdom.Definition

// Props is a property bag passed to definitions.
type Props = factory.Props

// FieldMetadata describes one field to build.
type FieldMetadata = factory.FieldMetadata

// GroupMetadata describes one group to build.
type GroupMetadata = factory.GroupMetadata

// Document is a decoded form schema.
type Document = schema.Document

// Observer is notified of every build attempt.
type Observer = factory.Observer

// Option configures a Registry.
type Option = factory.Option

// =============================================================================
// Errors
// =============================================================================

var (
	ErrInvalidArgument = factory.ErrInvalidArgument
	ErrValidation      = factory.ErrValidation
	ErrNotFound        = factory.ErrNotFound
	ErrResolution      = factory.ErrResolution
)

// WithObserver attaches an Observer to a Registry.
func WithObserver(o Observer) Option {
	return factory.WithObserver(o)
}

// =============================================================================
// Construction
// =============================================================================

// New returns a registry with every built-in component registered: the
// field components of package ui, the fieldset and section groups with
// fieldset as default, and the form and inline roots with form current.
func New(opts ...Option) *Registry {
	return ui.Default(opts...)
}

// NewEmpty returns a registry with nothing registered. Fields are bound
// with form.Field.
func NewEmpty(opts ...Option) *Registry {
	return ui.NewRegistry(nil, opts...)
}

// NewWithConfig returns a registry with the built-ins registered and the
// defaults of cfg applied. A nil cfg behaves like config.New().
//
// Default ids are not checked against the registered components; a wrong
// id surfaces on the first build that needs it.
func NewWithConfig(cfg *config.Config, opts ...Option) (*Registry, error) {
	if cfg == nil {
		cfg = config.New()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	reg := New(opts...)
	if len(cfg.Fields.Defaults) > 0 {
		reg.SetDefaultFieldComponents(cfg.Fields.Defaults)
	}
	if cfg.Groups.Default != "" {
		reg.SetDefaultGroupComponent(cfg.Groups.Default)
	}
	if cfg.Root != "" {
		reg.SetCurrentRoot(cfg.Root)
	}
	return reg, nil
}

// =============================================================================
// Rendering
// =============================================================================

// Build decodes a JSON or YAML schema and builds it with reg.
func Build(ctx context.Context, reg *Registry, data []byte) (*vdom.VNode, error) {
	doc, err := schema.Parse(data)
	if err != nil {
		return nil, err
	}
	return schema.NewBuilder(reg).Build(ctx, doc)
}

// Render decodes a JSON or YAML schema, builds it with reg and renders the
// result as compact HTML.
func Render(ctx context.Context, reg *Registry, data []byte) (string, error) {
	node, err := Build(ctx, reg, data)
	if err != nil {
		return "", err
	}
	return render.NewRenderer(render.RendererConfig{}).RenderToString(node)
}
