package factory

import "fmt"

// Reserved property keys.
const (
	PropType      = "type"
	PropName      = "name"
	PropComponent = "component"
	PropFormProps = "formProps"
)

// FieldMetadata describes a single form field to resolve.
type FieldMetadata struct {
	// Type classifies the data the field renders (e.g. "text", "date").
	// Required.
	Type string

	// Name identifies the field in form state. Required.
	Name string

	// Component is an explicit field component id. When empty the default
	// component for Type is used.
	Component string

	// Props are passed through to the instantiated component.
	Props Props

	// FormProps are form-binding passthrough properties. They are merged on
	// top of everything else during field resolution.
	FormProps Props
}

// GroupMetadata describes a group of fields to resolve.
type GroupMetadata struct {
	// Component is an explicit group component id. When empty the default
	// group component is used.
	Component string

	// Props are passed through to the instantiated component.
	Props Props
}

// props returns the property bag for instantiation. Precedence, later wins:
// Props, then Type/Name/Component, then FormProps.
func (m *FieldMetadata) props() Props {
	out := make(Props, len(m.Props)+len(m.FormProps)+3)
	for k, v := range m.Props {
		out[k] = v
	}
	out[PropType] = m.Type
	out[PropName] = m.Name
	if m.Component != "" {
		out[PropComponent] = m.Component
	}
	for k, v := range m.FormProps {
		out[k] = v
	}
	return out
}

func (m *GroupMetadata) props() Props {
	out := make(Props, len(m.Props)+1)
	for k, v := range m.Props {
		out[k] = v
	}
	if m.Component != "" {
		out[PropComponent] = m.Component
	}
	return out
}

// ParseFieldMetadata converts a flat property bag, as authored in a schema
// document, into FieldMetadata. The keys "type", "name" and "component" must
// be strings when present; "formProps" must be an object. Every other key is
// kept in Props.
//
// ParseFieldMetadata does not check that type and name are present; that is
// BuildFieldComponent's job.
func ParseFieldMetadata(bag map[string]any) (*FieldMetadata, error) {
	if bag == nil {
		return nil, errInvalidArgument("Field metadata should not be nil")
	}
	m := &FieldMetadata{Props: make(Props, len(bag))}
	for k, v := range bag {
		var err error
		switch k {
		case PropType:
			m.Type, err = stringProp(k, v)
		case PropName:
			m.Name, err = stringProp(k, v)
		case PropComponent:
			m.Component, err = stringProp(k, v)
		case PropFormProps:
			m.FormProps, err = objectProp(k, v)
		default:
			m.Props[k] = v
		}
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ParseGroupMetadata converts a flat property bag into GroupMetadata.
func ParseGroupMetadata(bag map[string]any) (*GroupMetadata, error) {
	if bag == nil {
		return nil, errInvalidArgument("Group metadata should not be nil")
	}
	m := &GroupMetadata{Props: make(Props, len(bag))}
	for k, v := range bag {
		if k == PropComponent {
			s, err := stringProp(k, v)
			if err != nil {
				return nil, err
			}
			m.Component = s
			continue
		}
		m.Props[k] = v
	}
	return m, nil
}

func stringProp(key string, v any) (string, error) {
	if v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", errValidation("Metadata property %q should be a string, got %T", key, v)
	}
	return s, nil
}

func objectProp(key string, v any) (Props, error) {
	switch o := v.(type) {
	case nil:
		return nil, nil
	case Props:
		return o, nil
	case map[string]any:
		return Props(o), nil
	case map[any]any:
		out := make(Props, len(o))
		for k, val := range o {
			out[fmt.Sprint(k)] = val
		}
		return out, nil
	default:
		return nil, errValidation("Metadata property %q should be an object, got %T", key, v)
	}
}
