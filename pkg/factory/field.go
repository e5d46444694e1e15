package factory

// RegisterFieldComponent registers def under id and appends it to the
// definition list of every type in types. Re-registering an id overwrites
// the previous definition silently.
func (f *Factory[D, N]) RegisterFieldComponent(id string, types []string, def D) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, t := range types {
		f.fieldsByType[t] = append(f.fieldsByType[t], def)
	}
	f.fieldsByID[id] = def
}

// SetDefaultFieldComponents replaces the type -> component id defaults.
// Ids are not checked until resolution.
func (f *Factory[D, N]) SetDefaultFieldComponents(defaults map[string]string) {
	next := make(map[string]string, len(defaults))
	for t, id := range defaults {
		next[t] = id
	}

	f.mu.Lock()
	f.defaultFields = next
	f.mu.Unlock()
}

// DefaultFieldComponents returns a copy of the type -> component id defaults.
func (f *Factory[D, N]) DefaultFieldComponents() map[string]string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make(map[string]string, len(f.defaultFields))
	for t, id := range f.defaultFields {
		out[t] = id
	}
	return out
}

// FieldComponent returns the field component registered under id.
func (f *Factory[D, N]) FieldComponent(id string) (D, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.fieldComponent(id)
}

func (f *Factory[D, N]) fieldComponent(id string) (D, error) {
	def, ok := f.fieldsByID[id]
	if !ok {
		var zero D
		return zero, errFieldNotFound(id)
	}
	return def, nil
}

// FieldComponents returns a snapshot of every type and its definitions in
// registration order.
func (f *Factory[D, N]) FieldComponents() map[string][]D {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make(map[string][]D, len(f.fieldsByType))
	for t, defs := range f.fieldsByType {
		out[t] = append([]D(nil), defs...)
	}
	return out
}

// FieldComponentsFor returns a snapshot of the definitions registered for
// type t, in registration order. It returns nil when none are registered.
func (f *Factory[D, N]) FieldComponentsFor(t string) []D {
	f.mu.RLock()
	defer f.mu.RUnlock()

	defs, ok := f.fieldsByType[t]
	if !ok {
		return nil
	}
	return append([]D(nil), defs...)
}

// FieldComponentIDs returns the registered field component ids, sorted.
func (f *Factory[D, N]) FieldComponentIDs() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return sortedKeys(f.fieldsByID)
}

// DefaultFieldComponent returns the default field component for type t: the
// explicitly configured one if any, otherwise the first registered for t.
func (f *Factory[D, N]) DefaultFieldComponent(t string) (D, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.defaultFieldComponent(t)
}

func (f *Factory[D, N]) defaultFieldComponent(t string) (D, error) {
	var zero D
	if t == "" {
		return zero, errInvalidArgument("type should have a value")
	}
	if id := f.defaultFields[t]; id != "" {
		return f.fieldComponent(id)
	}
	defs := f.fieldsByType[t]
	if len(defs) == 0 {
		return zero, errTypeNotFound(t)
	}
	return defs[0], nil
}

// BuildFieldComponent resolves the field component for meta, instantiates it
// with the merged properties, and returns it wrapped by the FieldBinder under
// meta.Name.
func (f *Factory[D, N]) BuildFieldComponent(meta *FieldMetadata) (N, error) {
	def, err := f.resolveField(meta)
	f.observe(KindField, err)
	if err != nil {
		var zero N
		return zero, err
	}

	instance := f.instantiator.Instantiate(def, meta.props())
	return f.binder.BindField(meta.Name, instance), nil
}

func (f *Factory[D, N]) resolveField(meta *FieldMetadata) (D, error) {
	var zero D
	if meta == nil {
		return zero, errInvalidArgument("Argument 'metadata' should not be nil")
	}
	switch {
	case meta.Type == "" && meta.Name == "":
		return zero, errValidation("Metadata should have a type and a name")
	case meta.Type == "":
		return zero, errValidation("Metadata should have a type. Name: %s", meta.Name)
	case meta.Name == "":
		return zero, errValidation("Metadata should have a name. Type: %s", meta.Type)
	}

	f.mu.RLock()
	var (
		def D
		err error
	)
	if meta.Component != "" {
		def, err = f.fieldComponent(meta.Component)
	} else {
		def, err = f.defaultFieldComponent(meta.Type)
	}
	f.mu.RUnlock()
	if err != nil {
		return zero, err
	}

	if isEmpty(def) {
		return zero, errUnresolved("Could not resolve the component for the type. Type: %s", meta.Type)
	}
	return def, nil
}
