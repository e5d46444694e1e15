package factory

// RegisterRootComponent registers def under id, overwriting silently.
func (f *Factory[D, N]) RegisterRootComponent(id string, def D) {
	f.mu.Lock()
	f.rootsByID[id] = def
	f.mu.Unlock()
}

// SetCurrentRoot selects the root component returned by Root. The id is not
// checked until lookup.
func (f *Factory[D, N]) SetCurrentRoot(id string) {
	f.mu.Lock()
	f.currentRoot = id
	f.mu.Unlock()
}

// CurrentRootID returns the selected root id, or "".
func (f *Factory[D, N]) CurrentRootID() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.currentRoot
}

// Root returns the current root component. Unlike the group and field
// getters it never fails: ok is false when no root is selected or the
// selected id is not registered.
func (f *Factory[D, N]) Root() (def D, ok bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	def, ok = f.rootsByID[f.currentRoot]
	return def, ok
}

// RootComponent returns the root component registered under id.
func (f *Factory[D, N]) RootComponent(id string) (D, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	def, ok := f.rootsByID[id]
	return def, ok
}

// RootComponentIDs returns the registered root component ids, sorted.
func (f *Factory[D, N]) RootComponentIDs() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return sortedKeys(f.rootsByID)
}

// BuildRootComponent instantiates the current root with props. ok is false,
// and nothing is instantiated, when Root would report no root.
func (f *Factory[D, N]) BuildRootComponent(props Props) (N, bool) {
	def, ok := f.Root()
	return f.buildRoot(def, ok, props)
}

// BuildNamedRootComponent is BuildRootComponent for the root registered
// under id, ignoring the current selection.
func (f *Factory[D, N]) BuildNamedRootComponent(id string, props Props) (N, bool) {
	def, ok := f.RootComponent(id)
	return f.buildRoot(def, ok, props)
}

func (f *Factory[D, N]) buildRoot(def D, ok bool, props Props) (N, bool) {
	if !ok || isEmpty(def) {
		var zero N
		if f.observer != nil {
			f.observer.ObserveResolution(KindRoot, OutcomeNotFound)
		}
		return zero, false
	}
	f.observe(KindRoot, nil)

	bag := make(Props, len(props))
	for k, v := range props {
		bag[k] = v
	}
	return f.instantiator.Instantiate(def, bag), true
}
