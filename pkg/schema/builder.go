package schema

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/autoform/pkg/factory"
	"github.com/vango-dev/autoform/pkg/ui"
	"github.com/vango-dev/autoform/pkg/vdom"
)

const tracerName = "github.com/vango-dev/autoform/pkg/schema"

// Builder turns documents into node trees using a component registry.
// A Builder is safe for concurrent use if its registry is.
type Builder struct {
	registry *ui.Registry
	tracer   trace.Tracer
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithTracer sets the tracer used for build spans. The default is the
// global OpenTelemetry tracer provider.
func WithTracer(t trace.Tracer) BuilderOption {
	return func(b *Builder) {
		b.tracer = t
	}
}

// NewBuilder creates a Builder backed by registry.
func NewBuilder(registry *ui.Registry, opts ...BuilderOption) *Builder {
	b := &Builder{registry: registry}
	for _, opt := range opts {
		opt(b)
	}
	if b.tracer == nil {
		b.tracer = otel.Tracer(tracerName)
	}
	return b
}

// Registry returns the registry the builder resolves components with.
func (b *Builder) Registry() *ui.Registry {
	return b.registry
}

// Build validates doc and builds it: the fields of each group, then each
// group with its fields as children, then the root with the groups as
// children. When the document names no root and the registry has no
// current root, the groups are wrapped in a bare form element.
//
// The first failing field or group aborts the build; its error is returned
// unchanged so callers can match the factory's sentinel errors.
func (b *Builder) Build(ctx context.Context, doc *Document) (*vdom.VNode, error) {
	_, span := b.tracer.Start(ctx, "schema.Build", trace.WithAttributes(
		attribute.String("schema.title", titleOf(doc)),
		attribute.Int("schema.groups", groupCount(doc)),
	))
	defer span.End()

	node, err := b.build(doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return node, nil
}

func (b *Builder) build(doc *Document) (*vdom.VNode, error) {
	if doc == nil {
		return nil, errInvalid([]string{"document is nil"})
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	groups := make([]*vdom.VNode, 0, len(doc.Groups))
	for _, g := range doc.Groups {
		fields := make([]*vdom.VNode, 0, len(g.Fields))
		for _, f := range g.Fields {
			meta, err := f.Metadata()
			if err != nil {
				return nil, err
			}
			node, err := b.registry.BuildFieldComponent(meta)
			if err != nil {
				return nil, err
			}
			fields = append(fields, node)
		}

		props := make(factory.Props, len(g.Props)+2)
		for k, v := range g.Props {
			props[k] = v
		}
		if g.Title != "" {
			props[ui.PropTitle] = g.Title
		}
		props[ui.PropChildren] = fields

		node, err := b.registry.BuildGroupComponent(&factory.GroupMetadata{
			Component: g.Component,
			Props:     props,
		})
		if err != nil {
			return nil, err
		}
		groups = append(groups, node)
	}

	props := factory.Props{ui.PropChildren: groups}
	for key, value := range map[string]string{
		ui.PropTitle:  doc.Title,
		ui.PropAction: doc.Action,
		ui.PropMethod: doc.Method,
		ui.PropSubmit: doc.Submit,
	} {
		if value != "" {
			props[key] = value
		}
	}

	if doc.Root != "" {
		root, ok := b.registry.BuildNamedRootComponent(doc.Root, props)
		if !ok {
			return nil, errRootNotFound(doc.Root)
		}
		return root, nil
	}
	if root, ok := b.registry.BuildRootComponent(props); ok {
		return root, nil
	}
	return vdom.Form(
		vdom.AttrIf(doc.Action != "", vdom.Action(doc.Action)),
		vdom.AttrIf(doc.Method != "", vdom.Method(doc.Method)),
		groups,
	), nil
}

func titleOf(doc *Document) string {
	if doc == nil {
		return ""
	}
	return doc.Title
}

func groupCount(doc *Document) int {
	if doc == nil {
		return 0
	}
	return len(doc.Groups)
}
