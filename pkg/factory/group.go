package factory

// RegisterGroupComponent registers def under id, overwriting silently.
func (f *Factory[D, N]) RegisterGroupComponent(id string, def D) {
	f.mu.Lock()
	f.groupsByID[id] = def
	f.mu.Unlock()
}

// SetDefaultGroupComponent sets the id used when group metadata names no
// component. The id is not checked until resolution.
func (f *Factory[D, N]) SetDefaultGroupComponent(id string) {
	f.mu.Lock()
	f.defaultGroup = id
	f.mu.Unlock()
}

// DefaultGroupComponentID returns the configured default group id, or "".
func (f *Factory[D, N]) DefaultGroupComponentID() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.defaultGroup
}

// GroupComponent returns the group component registered under id.
func (f *Factory[D, N]) GroupComponent(id string) (D, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.groupComponent(id)
}

func (f *Factory[D, N]) groupComponent(id string) (D, error) {
	def, ok := f.groupsByID[id]
	if !ok {
		var zero D
		return zero, errGroupNotFound(id)
	}
	return def, nil
}

// GroupComponentIDs returns the registered group component ids, sorted.
func (f *Factory[D, N]) GroupComponentIDs() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return sortedKeys(f.groupsByID)
}

// DefaultGroupComponent returns the group component selected by
// SetDefaultGroupComponent. It fails with ErrNotFound when no default is set
// or the default id is not registered.
func (f *Factory[D, N]) DefaultGroupComponent() (D, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.defaultGroupComponent()
}

func (f *Factory[D, N]) defaultGroupComponent() (D, error) {
	if f.defaultGroup == "" {
		var zero D
		return zero, errNoDefaultGroup()
	}
	return f.groupComponent(f.defaultGroup)
}

// BuildGroupComponent resolves the group component for meta and instantiates
// it with the group's properties. Unlike fields, the instance is not wrapped.
func (f *Factory[D, N]) BuildGroupComponent(meta *GroupMetadata) (N, error) {
	def, err := f.resolveGroup(meta)
	f.observe(KindGroup, err)
	if err != nil {
		var zero N
		return zero, err
	}
	return f.instantiator.Instantiate(def, meta.props()), nil
}

func (f *Factory[D, N]) resolveGroup(meta *GroupMetadata) (D, error) {
	var zero D
	if meta == nil {
		return zero, errInvalidArgument("The metadata parameter is required")
	}

	f.mu.RLock()
	var (
		def D
		err error
	)
	if meta.Component != "" {
		def, err = f.groupComponent(meta.Component)
	} else {
		def, err = f.defaultGroupComponent()
	}
	f.mu.RUnlock()
	if err != nil {
		return zero, err
	}

	if isEmpty(def) {
		return zero, errUnresolved("Could not resolve the component for the group")
	}
	return def, nil
}
