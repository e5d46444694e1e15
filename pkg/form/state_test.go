package form

import (
	"fmt"
	"reflect"
	"sync"
	"testing"
)

func TestStateValues(t *testing.T) {
	initial := map[string]any{"name": "Ada"}
	s := NewState(initial)
	initial["name"] = "changed"

	if got := s.Get("name"); got != "Ada" {
		t.Errorf("Get(name) = %v, initial map must be copied", got)
	}

	s.Set("age", 36)
	values := s.Values()
	values["age"] = 0
	if got := s.Get("age"); got != 36 {
		t.Errorf("Values() must return a copy, Get(age) = %v", got)
	}

	if _, ok := s.Lookup("missing"); ok {
		t.Error("Lookup(missing) should report false")
	}
}

func TestStateValidate(t *testing.T) {
	s := NewState(map[string]any{"email": "nope", "name": ""})
	rules := map[string][]Validator{
		"email": {Required(""), Email("")},
		"name":  {Required("Name is required"), nil},
		"age":   {Min(18, "")},
	}

	if s.Validate(rules) {
		t.Fatal("Validate() = true, want false")
	}
	if got := s.FieldErrors("name"); !reflect.DeepEqual(got, []string{"Name is required"}) {
		t.Errorf("FieldErrors(name) = %v", got)
	}
	if !s.HasError("email") || s.HasError("age") {
		t.Errorf("Errors() = %v", s.Errors())
	}
	if s.IsValid() {
		t.Error("IsValid() = true after failed validation")
	}

	s.Set("email", "a@b.co")
	s.Set("name", "Ada")
	if !s.Validate(rules) {
		t.Errorf("Validate() = false, errors %v", s.Errors())
	}
	if !s.IsValid() {
		t.Error("a successful Validate must clear previous errors")
	}
}

func TestStateSetError(t *testing.T) {
	s := NewState(nil)
	s.SetError("email", "taken")
	s.SetError("email", "blocked")
	if got := s.FieldErrors("email"); !reflect.DeepEqual(got, []string{"taken", "blocked"}) {
		t.Errorf("FieldErrors = %v", got)
	}
	s.ClearErrors()
	if len(s.Errors()) != 0 {
		t.Error("ClearErrors left errors behind")
	}
}

func TestStateConcurrentAccess(t *testing.T) {
	s := NewState(nil)
	rules := map[string][]Validator{"f0": {Required("")}}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("f%d", i%4)
			s.Set(name, i)
			s.Get(name)
			s.Validate(rules)
			s.Field(name, nil)
		}(i)
	}
	wg.Wait()
}
