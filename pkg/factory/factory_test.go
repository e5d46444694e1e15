package factory

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

type testDef struct {
	id string
}

type testNode struct {
	def   *testDef
	props Props
	field string
}

func newTestFactory(opts ...Option) *Factory[*testDef, *testNode] {
	inst := InstantiatorFunc[*testDef, *testNode](func(def *testDef, props Props) *testNode {
		return &testNode{def: def, props: props}
	})
	binder := FieldBinderFunc[*testNode](func(name string, child *testNode) *testNode {
		return &testNode{def: child.def, props: child.props, field: name}
	})
	return New[*testDef, *testNode](inst, binder, opts...)
}

func TestRegisterFieldComponent(t *testing.T) {
	f := newTestFactory()
	a := &testDef{id: "a"}
	b := &testDef{id: "b"}

	f.RegisterFieldComponent("a", []string{"text", "email"}, a)
	f.RegisterFieldComponent("b", []string{"text"}, b)

	got, err := f.FieldComponent("a")
	if err != nil {
		t.Fatalf("FieldComponent(a) error: %v", err)
	}
	if got != a {
		t.Errorf("FieldComponent(a) = %v, want %v", got, a)
	}

	text := f.FieldComponentsFor("text")
	if len(text) != 2 || text[0] != a || text[1] != b {
		t.Errorf("FieldComponentsFor(text) = %v, want [a b]", text)
	}
	email := f.FieldComponentsFor("email")
	if len(email) != 1 || email[0] != a {
		t.Errorf("FieldComponentsFor(email) = %v, want [a]", email)
	}

	all := f.FieldComponents()
	if len(all) != 2 {
		t.Errorf("FieldComponents() has %d types, want 2", len(all))
	}
}

func TestRegisterFieldComponent_OverwritesID(t *testing.T) {
	f := newTestFactory()
	a := &testDef{id: "a"}
	b := &testDef{id: "b"}

	f.RegisterFieldComponent("x", []string{"text"}, a)
	f.RegisterFieldComponent("x", []string{"date"}, b)

	got, _ := f.FieldComponent("x")
	if got != b {
		t.Errorf("FieldComponent(x) = %v, want last registration", got)
	}
	// The type lists keep both appends.
	if defs := f.FieldComponentsFor("text"); len(defs) != 1 || defs[0] != a {
		t.Errorf("FieldComponentsFor(text) = %v, want [a]", defs)
	}
}

func TestFieldComponent_NotFound(t *testing.T) {
	f := newTestFactory()
	_, err := f.FieldComponent("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if !strings.Contains(err.Error(), "nope") {
		t.Errorf("error %q should name the id", err)
	}
}

func TestFieldComponentsFor_Unknown(t *testing.T) {
	f := newTestFactory()
	if defs := f.FieldComponentsFor("color"); defs != nil {
		t.Errorf("FieldComponentsFor(color) = %v, want nil", defs)
	}
}

func TestFieldComponents_Snapshot(t *testing.T) {
	f := newTestFactory()
	f.RegisterFieldComponent("a", []string{"text"}, &testDef{id: "a"})

	snap := f.FieldComponentsFor("text")
	snap[0] = &testDef{id: "mutated"}

	got := f.FieldComponentsFor("text")
	if got[0].id != "a" {
		t.Error("mutating a snapshot must not change the registry")
	}
}

func TestDefaultFieldComponent(t *testing.T) {
	first := &testDef{id: "first"}
	second := &testDef{id: "second"}

	tests := []struct {
		name     string
		defaults map[string]string
		typ      string
		want     *testDef
		wantErr  error
	}{
		{name: "positional default", typ: "text", want: first},
		{name: "explicit default", defaults: map[string]string{"text": "second"}, typ: "text", want: second},
		{name: "stale explicit default", defaults: map[string]string{"text": "gone"}, typ: "text", wantErr: ErrNotFound},
		{name: "empty type", typ: "", wantErr: ErrInvalidArgument},
		{name: "unregistered type", typ: "color", wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFactory()
			f.RegisterFieldComponent("first", []string{"text"}, first)
			f.RegisterFieldComponent("second", []string{"text"}, second)
			if tt.defaults != nil {
				f.SetDefaultFieldComponents(tt.defaults)
			}

			got, err := f.DefaultFieldComponent(tt.typ)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DefaultFieldComponent(%q) = %v, want %v", tt.typ, got.id, tt.want.id)
			}
		})
	}
}

func TestDefaultFieldComponent_NotFoundNamesType(t *testing.T) {
	f := newTestFactory()
	_, err := f.DefaultFieldComponent("color")
	if err == nil || !strings.Contains(err.Error(), "color") {
		t.Errorf("err = %v, want message naming the type", err)
	}
}

func TestDefaultFieldComponent_PositionalIsFirstEver(t *testing.T) {
	f := newTestFactory()
	first := &testDef{id: "first"}
	f.RegisterFieldComponent("first", []string{"text"}, first)
	for i := 0; i < 5; i++ {
		f.RegisterFieldComponent("later", []string{"text"}, &testDef{id: "later"})
	}

	got, err := f.DefaultFieldComponent("text")
	if err != nil {
		t.Fatal(err)
	}
	if got != first {
		t.Errorf("DefaultFieldComponent(text) = %s, want first", got.id)
	}
}

func TestSetDefaultFieldComponents_Replaces(t *testing.T) {
	f := newTestFactory()
	f.SetDefaultFieldComponents(map[string]string{"text": "a", "date": "b"})
	f.SetDefaultFieldComponents(map[string]string{"text": "c"})

	got := f.DefaultFieldComponents()
	if len(got) != 1 || got["text"] != "c" {
		t.Errorf("DefaultFieldComponents() = %v, want only text=c", got)
	}
}

func TestBuildFieldComponent(t *testing.T) {
	f := newTestFactory()
	txt := &testDef{id: "txt"}
	f.RegisterFieldComponent("txt", []string{"text"}, txt)

	node, err := f.BuildFieldComponent(&FieldMetadata{Type: "text", Name: "email"})
	if err != nil {
		t.Fatalf("BuildFieldComponent error: %v", err)
	}
	if node.def != txt {
		t.Errorf("resolved %v, want txt", node.def)
	}
	if node.field != "email" {
		t.Errorf("wrapper name = %q, want email", node.field)
	}
	if node.props[PropName] != "email" || node.props[PropType] != "text" {
		t.Errorf("props = %v, want type and name", node.props)
	}
}

func TestBuildFieldComponent_Errors(t *testing.T) {
	f := newTestFactory()
	f.RegisterFieldComponent("txt", []string{"text"}, &testDef{id: "txt"})

	tests := []struct {
		name    string
		meta    *FieldMetadata
		wantErr error
		wantMsg string
	}{
		{name: "nil metadata", meta: nil, wantErr: ErrInvalidArgument},
		{name: "empty metadata", meta: &FieldMetadata{}, wantErr: ErrValidation},
		{name: "missing name", meta: &FieldMetadata{Type: "text"}, wantErr: ErrValidation},
		{name: "missing type", meta: &FieldMetadata{Name: "email"}, wantErr: ErrValidation},
		{name: "unknown explicit component", meta: &FieldMetadata{Type: "text", Name: "email", Component: "nope"}, wantErr: ErrNotFound, wantMsg: "nope"},
		{name: "unknown type", meta: &FieldMetadata{Type: "color", Name: "fg"}, wantErr: ErrNotFound, wantMsg: "color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := f.BuildFieldComponent(tt.meta)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if node != nil {
				t.Error("failed build must not return an instance")
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestBuildFieldComponent_ValidationBeforeLookup(t *testing.T) {
	// No registrations at all: a missing name must still be a validation
	// error, not a lookup failure.
	f := newTestFactory()
	_, err := f.BuildFieldComponent(&FieldMetadata{Type: "text"})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

func TestBuildFieldComponent_EmptyDefinition(t *testing.T) {
	f := newTestFactory()
	f.RegisterFieldComponent("hollow", []string{"text"}, nil)

	_, err := f.BuildFieldComponent(&FieldMetadata{Type: "text", Name: "email", Component: "hollow"})
	if !errors.Is(err, ErrResolution) {
		t.Fatalf("err = %v, want ErrResolution", err)
	}
	if !strings.Contains(err.Error(), "text") {
		t.Errorf("error %q should name the type", err)
	}
}

func TestBuildFieldComponent_PropsPrecedence(t *testing.T) {
	f := newTestFactory()
	f.RegisterFieldComponent("txt", []string{"text"}, &testDef{id: "txt"})

	node, err := f.BuildFieldComponent(&FieldMetadata{
		Type:      "text",
		Name:      "email",
		Component: "txt",
		Props:     Props{"label": "Email", "name": "shadowed", "placeholder": "you@example.com"},
		FormProps: Props{"placeholder": "override", "value": "a@b.c"},
	})
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]any{
		"label":       "Email",
		"name":        "email",
		"type":        "text",
		"component":   "txt",
		"placeholder": "override",
		"value":       "a@b.c",
	}
	for k, v := range want {
		if node.props[k] != v {
			t.Errorf("props[%q] = %v, want %v", k, node.props[k], v)
		}
	}
}

func TestBuildFieldComponent_DoesNotMutateMetadata(t *testing.T) {
	f := newTestFactory()
	f.RegisterFieldComponent("txt", []string{"text"}, &testDef{id: "txt"})

	props := Props{"label": "Email"}
	meta := &FieldMetadata{Type: "text", Name: "email", Props: props, FormProps: Props{"value": "x"}}
	if _, err := f.BuildFieldComponent(meta); err != nil {
		t.Fatal(err)
	}
	if len(props) != 1 {
		t.Errorf("metadata props were modified: %v", props)
	}
}

func TestGroupComponents(t *testing.T) {
	f := newTestFactory()
	a := &testDef{id: "A"}
	b := &testDef{id: "B"}

	f.RegisterGroupComponent("g1", a)
	f.RegisterGroupComponent("g1", b)

	got, err := f.GroupComponent("g1")
	if err != nil {
		t.Fatal(err)
	}
	if got != b {
		t.Errorf("GroupComponent(g1) = %s, want B", got.id)
	}

	if _, err := f.GroupComponent("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GroupComponent(missing) err = %v, want ErrNotFound", err)
	}
}

func TestDefaultGroupComponent(t *testing.T) {
	f := newTestFactory()
	g := &testDef{id: "g"}
	f.RegisterGroupComponent("g", g)

	if _, err := f.DefaultGroupComponent(); !errors.Is(err, ErrNotFound) {
		t.Errorf("unset default: err = %v, want ErrNotFound", err)
	}

	f.SetDefaultGroupComponent("stale")
	if _, err := f.DefaultGroupComponent(); !errors.Is(err, ErrNotFound) {
		t.Errorf("stale default: err = %v, want ErrNotFound", err)
	}

	f.SetDefaultGroupComponent("g")
	got, err := f.DefaultGroupComponent()
	if err != nil {
		t.Fatal(err)
	}
	if got != g {
		t.Error("DefaultGroupComponent should return the registered group")
	}
}

func TestBuildGroupComponent(t *testing.T) {
	f := newTestFactory()
	fieldset := &testDef{id: "fieldset"}
	card := &testDef{id: "card"}
	f.RegisterGroupComponent("fieldset", fieldset)
	f.RegisterGroupComponent("card", card)
	f.SetDefaultGroupComponent("fieldset")

	node, err := f.BuildGroupComponent(&GroupMetadata{Props: Props{"title": "Account"}})
	if err != nil {
		t.Fatal(err)
	}
	if node.def != fieldset {
		t.Errorf("default group resolved to %s", node.def.id)
	}
	if node.field != "" {
		t.Error("group instances must not be field-wrapped")
	}
	if node.props["title"] != "Account" {
		t.Errorf("props = %v", node.props)
	}

	node, err = f.BuildGroupComponent(&GroupMetadata{Component: "card"})
	if err != nil {
		t.Fatal(err)
	}
	if node.def != card {
		t.Errorf("explicit group resolved to %s", node.def.id)
	}
}

func TestBuildGroupComponent_Errors(t *testing.T) {
	f := newTestFactory()
	f.RegisterGroupComponent("hollow", nil)

	tests := []struct {
		name    string
		meta    *GroupMetadata
		wantErr error
	}{
		{name: "nil metadata", meta: nil, wantErr: ErrInvalidArgument},
		{name: "no default", meta: &GroupMetadata{}, wantErr: ErrNotFound},
		{name: "unknown component", meta: &GroupMetadata{Component: "nope"}, wantErr: ErrNotFound},
		{name: "empty definition", meta: &GroupMetadata{Component: "hollow"}, wantErr: ErrResolution},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.BuildGroupComponent(tt.meta); !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRoot(t *testing.T) {
	f := newTestFactory()

	if _, ok := f.Root(); ok {
		t.Error("Root() before SetCurrentRoot should report no root")
	}

	r := &testDef{id: "r"}
	f.RegisterRootComponent("main", r)

	f.SetCurrentRoot("stale")
	if _, ok := f.Root(); ok {
		t.Error("Root() with a stale id should report no root")
	}

	f.SetCurrentRoot("main")
	got, ok := f.Root()
	if !ok || got != r {
		t.Errorf("Root() = %v, %v; want r, true", got, ok)
	}
	if f.CurrentRootID() != "main" {
		t.Errorf("CurrentRootID() = %q", f.CurrentRootID())
	}
}

func TestBuildRootComponent(t *testing.T) {
	f := newTestFactory()
	if _, ok := f.BuildRootComponent(nil); ok {
		t.Error("BuildRootComponent without a root should report false")
	}

	r := &testDef{id: "r"}
	f.RegisterRootComponent("main", r)
	f.SetCurrentRoot("main")

	node, ok := f.BuildRootComponent(Props{"title": "Sign up"})
	if !ok {
		t.Fatal("BuildRootComponent should succeed")
	}
	if node.def != r || node.props["title"] != "Sign up" {
		t.Errorf("node = %+v", node)
	}
}

func TestBuildNamedRootComponent(t *testing.T) {
	obs := &recordingObserver{}
	f := newTestFactory(WithObserver(obs))
	inline := &testDef{id: "inline"}
	f.RegisterRootComponent("main", &testDef{id: "main"})
	f.RegisterRootComponent("inline", inline)
	f.RegisterRootComponent("empty", nil)
	f.SetCurrentRoot("main")

	props := Props{"title": "Sign up"}
	node, ok := f.BuildNamedRootComponent("inline", props)
	if !ok {
		t.Fatal("BuildNamedRootComponent should succeed")
	}
	if node.def != inline || node.props["title"] != "Sign up" {
		t.Errorf("node = %+v", node)
	}
	node.props["title"] = "changed"
	if props["title"] != "Sign up" {
		t.Error("instantiated props must be a copy")
	}

	for _, id := range []string{"missing", "empty"} {
		if _, ok := f.BuildNamedRootComponent(id, nil); ok {
			t.Errorf("BuildNamedRootComponent(%q) should report false", id)
		}
	}

	want := []string{"root:ok", "root:not_found", "root:not_found"}
	if len(obs.events) != len(want) {
		t.Fatalf("events = %v, want %v", obs.events, want)
	}
	for i := range want {
		if obs.events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, obs.events[i], want[i])
		}
	}
}

func TestComponentIDs(t *testing.T) {
	f := newTestFactory()
	f.RegisterFieldComponent("b", []string{"text"}, &testDef{})
	f.RegisterFieldComponent("a", []string{"text"}, &testDef{})
	f.RegisterGroupComponent("g", &testDef{})
	f.RegisterRootComponent("r", &testDef{})

	if ids := f.FieldComponentIDs(); len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("FieldComponentIDs() = %v", ids)
	}
	if ids := f.GroupComponentIDs(); len(ids) != 1 || ids[0] != "g" {
		t.Errorf("GroupComponentIDs() = %v", ids)
	}
	if ids := f.RootComponentIDs(); len(ids) != 1 || ids[0] != "r" {
		t.Errorf("RootComponentIDs() = %v", ids)
	}
}

type recordingObserver struct {
	mu     sync.Mutex
	events []string
}

func (r *recordingObserver) ObserveResolution(kind, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, kind+":"+outcome)
}

func TestObserver(t *testing.T) {
	obs := &recordingObserver{}
	f := newTestFactory(WithObserver(obs))
	f.RegisterFieldComponent("txt", []string{"text"}, &testDef{})

	f.BuildFieldComponent(&FieldMetadata{Type: "text", Name: "a"})
	f.BuildFieldComponent(&FieldMetadata{Type: "text"})
	f.BuildFieldComponent(nil)
	f.BuildGroupComponent(&GroupMetadata{})
	f.BuildRootComponent(nil)

	want := []string{
		"field:ok",
		"field:validation",
		"field:invalid_argument",
		"group:not_found",
		"root:not_found",
	}
	if len(obs.events) != len(want) {
		t.Fatalf("events = %v, want %v", obs.events, want)
	}
	for i := range want {
		if obs.events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, obs.events[i], want[i])
		}
	}
}

func TestOutcome(t *testing.T) {
	if Outcome(nil) != OutcomeOK {
		t.Error("nil error should be ok")
	}
	if Outcome(errors.New("other")) != OutcomeUnknown {
		t.Error("foreign error should be unknown")
	}
}

func TestFactory_ConcurrentAccess(t *testing.T) {
	f := newTestFactory()
	f.RegisterFieldComponent("txt", []string{"text"}, &testDef{id: "txt"})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				f.RegisterFieldComponent("other", []string{"text"}, &testDef{id: "other"})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, err := f.BuildFieldComponent(&FieldMetadata{Type: "text", Name: "x"}); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()

	got, _ := f.DefaultFieldComponent("text")
	if got.id != "txt" {
		t.Errorf("positional default changed to %s", got.id)
	}
}
