package form

import (
	"sort"
	"sync"
)

// State holds the values and validation errors of one form instance.
// It is safe for concurrent use.
type State struct {
	mu     sync.RWMutex
	values map[string]any
	errors map[string][]string
}

// NewState creates a State seeded with initial values.
func NewState(initial map[string]any) *State {
	s := &State{
		values: make(map[string]any, len(initial)),
		errors: make(map[string][]string),
	}
	for k, v := range initial {
		s.values[k] = v
	}
	return s
}

// Get returns the value of a field.
func (s *State) Get(field string) any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[field]
}

// Lookup returns the value of a field and whether it is set.
func (s *State) Lookup(field string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[field]
	return v, ok
}

// Set updates the value of a field.
func (s *State) Set(field string, value any) {
	s.mu.Lock()
	s.values[field] = value
	s.mu.Unlock()
}

// Values returns a copy of all field values.
func (s *State) Values() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]any, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Validate runs rules against the current values and replaces the stored
// errors with the result. It returns true if every field passed.
func (s *State) Validate(rules map[string][]Validator) bool {
	fields := make([]string, 0, len(rules))
	for field := range rules {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	s.mu.Lock()
	defer s.mu.Unlock()

	allErrors := make(map[string][]string)
	for _, field := range fields {
		value := s.values[field]
		var fieldErrors []string
		for _, v := range rules[field] {
			if v == nil {
				continue
			}
			if err := v.Validate(value); err != nil {
				fieldErrors = append(fieldErrors, err.Error())
			}
		}
		if len(fieldErrors) > 0 {
			allErrors[field] = fieldErrors
		}
	}

	s.errors = allErrors
	return len(allErrors) == 0
}

// Errors returns a copy of all validation errors keyed by field name.
func (s *State) Errors() map[string][]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string][]string, len(s.errors))
	for k, v := range s.errors {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// FieldErrors returns validation errors for a specific field.
func (s *State) FieldErrors(field string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.errors[field]...)
}

// HasError returns true if the field has any validation errors.
func (s *State) HasError(field string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.errors[field]) > 0
}

// SetError appends an error message for a field.
func (s *State) SetError(field, msg string) {
	s.mu.Lock()
	s.errors[field] = append(s.errors[field], msg)
	s.mu.Unlock()
}

// ClearErrors removes all validation errors.
func (s *State) ClearErrors() {
	s.mu.Lock()
	s.errors = make(map[string][]string)
	s.mu.Unlock()
}

// IsValid returns true if there are no validation errors.
func (s *State) IsValid() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.errors) == 0
}
