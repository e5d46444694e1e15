package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vango-dev/autoform/pkg/factory"
)

// Document is a form schema: a title, optional root settings and the
// groups of fields to render.
type Document struct {
	Title  string  `json:"title,omitempty" yaml:"title,omitempty"`
	Root   string  `json:"root,omitempty" yaml:"root,omitempty"`
	Action string  `json:"action,omitempty" yaml:"action,omitempty"`
	Method string  `json:"method,omitempty" yaml:"method,omitempty"`
	Submit string  `json:"submit,omitempty" yaml:"submit,omitempty"`
	Groups []Group `json:"groups" yaml:"groups"`
}

// Group is a titled set of fields rendered by one group component.
type Group struct {
	Title     string         `json:"title,omitempty" yaml:"title,omitempty"`
	Component string         `json:"component,omitempty" yaml:"component,omitempty"`
	Props     map[string]any `json:"props,omitempty" yaml:"props,omitempty"`
	Fields    []Field        `json:"fields" yaml:"fields"`
}

// Field is a flat property bag. The keys type, name, component and
// formProps are interpreted by the factory; validation keys are read by
// Rules; everything else is passed to the component.
type Field map[string]any

// Type returns the field's type, or "" when missing or not a string.
func (f Field) Type() string {
	s, _ := f[factory.PropType].(string)
	return s
}

// Name returns the field's name, or "" when missing or not a string.
func (f Field) Name() string {
	s, _ := f[factory.PropName].(string)
	return s
}

// Metadata converts the field to factory metadata. Validation keys are
// kept in Props so components can mirror them as HTML attributes.
func (f Field) Metadata() (*factory.FieldMetadata, error) {
	return factory.ParseFieldMetadata(f)
}

// Fields returns every field of the document in order.
func (d *Document) Fields() []Field {
	var out []Field
	for _, g := range d.Groups {
		out = append(out, g.Fields...)
	}
	return out
}

// Validate checks that the document can be built: every field must have a
// string type and name, names must be unique and declared rules must be
// well formed. All problems are reported together.
func (d *Document) Validate() error {
	var problems []string
	seen := make(map[string]string)

	for gi, g := range d.Groups {
		for fi, f := range g.Fields {
			where := fmt.Sprintf("groups[%d].fields[%d]", gi, fi)
			if f == nil {
				problems = append(problems, where+": empty field")
				continue
			}
			if f.Type() == "" {
				problems = append(problems, where+": missing type")
			}
			name := f.Name()
			if name == "" {
				problems = append(problems, where+": missing name")
			} else if prev, dup := seen[name]; dup {
				problems = append(problems, fmt.Sprintf("%s: duplicate name %q (first at %s)", where, name, prev))
			} else {
				seen[name] = where
			}
			if _, err := f.Rules(); err != nil {
				problems = append(problems, fmt.Sprintf("%s: %v", where, err))
			}
			if f.Type() != "" && name != "" {
				if _, err := f.Metadata(); err != nil {
					problems = append(problems, fmt.Sprintf("%s: %v", where, err))
				}
			}
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return errInvalid(problems)
}

// Names returns the sorted field names of the document.
func (d *Document) Names() []string {
	var names []string
	for _, f := range d.Fields() {
		if n := f.Name(); n != "" {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

func summarize(problems []string) string {
	return strings.Join(problems, "; ")
}
