package errors

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "resolution error",
			code:    "E202",
			wantMsg: "Field component not found",
			wantCat: CategoryResolution,
		},
		{
			name:    "validation error",
			code:    "E201",
			wantMsg: "Invalid metadata",
			wantCat: CategoryValidation,
		},
		{
			name:    "schema error",
			code:    "E210",
			wantMsg: "Malformed schema document",
			wantCat: CategorySchema,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryConfig, "file %q not found", "autoform.json")
	if err.Message != `file "autoform.json" not found` {
		t.Errorf("Message = %q, want %q", err.Message, `file "autoform.json" not found`)
	}
	if err.Category != CategoryConfig {
		t.Errorf("Category = %q, want %q", err.Category, CategoryConfig)
	}
}

func TestError_Error(t *testing.T) {
	err := New("E202").WithMessagef("Could not find the given component. Id: %s", "nope")
	got := err.Error()
	want := "E202: Could not find the given component. Id: nope"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	// Without code
	err2 := &Error{Message: "test error"}
	if err2.Error() != "test error" {
		t.Errorf("Error() = %q, want %q", err2.Error(), "test error")
	}
}

func TestError_WithLocation(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "signup.yaml")
	content := `title: Sign up
groups:
  - title: Account
    fields:
      - type: text
      - name: email
`
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	err := New("E211").WithLocation(tmpFile, 5, 9)

	if err.Location == nil {
		t.Fatal("Location is nil")
	}
	if err.Location.File != tmpFile {
		t.Errorf("Location.File = %q, want %q", err.Location.File, tmpFile)
	}
	if err.Location.Line != 5 {
		t.Errorf("Location.Line = %d, want %d", err.Location.Line, 5)
	}
	if len(err.Context) == 0 {
		t.Error("Context should not be empty")
	}
}

func TestError_WithSuggestion(t *testing.T) {
	err := New("E203").WithSuggestion("Register a component for the type")
	if err.Suggestion != "Register a component for the type" {
		t.Errorf("Suggestion = %q", err.Suggestion)
	}
}

func TestError_WithDetail(t *testing.T) {
	err := New("E202").WithDetail("Custom detail")
	if err.Detail != "Custom detail" {
		t.Errorf("Detail = %q, want %q", err.Detail, "Custom detail")
	}
}

func TestError_Wrap(t *testing.T) {
	sentinel := stderrors.New("not found")
	outer := New("E202").Wrap(sentinel)

	if outer.Unwrap() != sentinel {
		t.Error("Unwrap() should return wrapped error")
	}
	if !stderrors.Is(outer, sentinel) {
		t.Error("errors.Is should see the wrapped sentinel")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E120") != nil {
		t.Error("FromError(nil, ...) should return nil")
	}

	ae := New("E120")
	if FromError(ae, "E141") != ae {
		t.Error("FromError should return *Error as-is")
	}

	stdErr := stderrors.New("boom")
	result := FromError(stdErr, "E120")
	if result.Wrapped != stdErr {
		t.Error("Standard error should be wrapped")
	}
}

func TestLocation_String(t *testing.T) {
	tests := []struct {
		name string
		loc  *Location
		want string
	}{
		{name: "nil location", loc: nil, want: ""},
		{name: "with column", loc: &Location{File: "form.yaml", Line: 10, Column: 5}, want: "form.yaml:10:5"},
		{name: "without column", loc: &Location{File: "form.yaml", Line: 10}, want: "form.yaml:10"},
		{name: "no file", loc: &Location{Line: 3, Column: 7}, want: "line 3, column 7"},
		{name: "no file no column", loc: &Location{Line: 3}, want: "line 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.loc.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E203").
		WithMessagef("Couldn't find any component for the given type. Type: %s", "color").
		WithSuggestion("Register a field component for type color")

	formatted := err.Format()

	for _, want := range []string{"E203", "Type: color", "Hint:", "Learn more:"} {
		if !strings.Contains(formatted, want) {
			t.Errorf("Format() missing %q:\n%s", want, formatted)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("E211").WithLocation("form.yaml", 10, 5)
	want := "form.yaml:10:5: E211: Invalid schema document"
	if got := err.FormatCompact(); got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestFormatJSON(t *testing.T) {
	err := New("E202").WithMessagef("Could not find the given component. Id: %s", "nope")
	json := err.FormatJSON()

	if !strings.Contains(json, `"code":"E202"`) {
		t.Error("JSON should contain code")
	}
	if !strings.Contains(json, `"category":"resolution"`) {
		t.Error("JSON should contain category")
	}
	if !strings.Contains(json, `"message":"Could not find the given component. Id: nope"`) {
		t.Errorf("JSON should contain message, got %s", json)
	}
}

func TestFormatJSONEncoding(t *testing.T) {
	err := New("E210").
		WithDetail("unexpected \"\x01\" near <input>").
		WithLocation("", 3, 0)

	var decoded struct {
		Code     string `json:"code"`
		Detail   string `json:"detail"`
		Location struct {
			File string `json:"file"`
			Line int    `json:"line"`
		} `json:"location"`
	}
	if e := json.Unmarshal([]byte(err.FormatJSON()), &decoded); e != nil {
		t.Fatalf("FormatJSON is not valid JSON: %v\n%s", e, err.FormatJSON())
	}
	if decoded.Code != "E210" || decoded.Detail != "unexpected \"\x01\" near <input>" {
		t.Errorf("decoded = %+v", decoded)
	}
	if decoded.Location.Line != 3 || decoded.Location.File != "" {
		t.Errorf("location = %+v", decoded.Location)
	}

	nested, e := json.Marshal(map[string]any{"error": err})
	if e != nil {
		t.Fatal(e)
	}
	if !bytes.Contains(nested, []byte(`"code":"E210"`)) {
		t.Errorf("nested = %s", nested)
	}
}

func TestCodeOf(t *testing.T) {
	coded := New("E204")
	wrapped := fmt.Errorf("building group: %w", coded)

	if got := FromError(wrapped, "E232"); got != coded {
		t.Errorf("FromError(wrapped) = %v, want the coded error", got)
	}

	if got := CodeOf(wrapped); got != "E204" {
		t.Errorf("CodeOf(wrapped) = %q", got)
	}
	if got := CodeOf(stderrors.New("boom")); got != "" {
		t.Errorf("CodeOf(plain) = %q", got)
	}
}

func TestFprint(t *testing.T) {
	DisableColors()
	defer EnableColors()

	var buf bytes.Buffer
	Fprint(&buf, stderrors.New("plain failure"))
	if got := buf.String(); !strings.Contains(got, "ERROR: plain failure") {
		t.Errorf("Fprint(plain) = %q", got)
	}

	buf.Reset()
	Fprint(&buf, New("E141"))
	if got := buf.String(); !strings.Contains(got, "ERROR E141: Not an autoform project") {
		t.Errorf("Fprint(coded) = %q", got)
	}
}

func TestGetTemplate(t *testing.T) {
	template, ok := GetTemplate("E204")
	if !ok {
		t.Fatal("E204 should exist")
	}
	if template.Message != "Group component not found" {
		t.Error("Template message mismatch")
	}

	if _, ok := GetTemplate("E999"); ok {
		t.Error("E999 should not exist")
	}
}

func TestRegister(t *testing.T) {
	Register("E999", ErrorTemplate{
		Category: CategoryResolution,
		Message:  "Custom test error",
	})
	defer delete(registry, "E999")

	if err := New("E999"); err.Message != "Custom test error" {
		t.Errorf("Message = %q, want %q", err.Message, "Custom test error")
	}

	found := false
	for _, code := range GetAllCodes() {
		if code == "E999" {
			found = true
		}
	}
	if !found {
		t.Error("E999 should be in the codes list")
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("short text", 100)
	if len(got) != 1 || got[0] != "short text" {
		t.Errorf("wrapText short text: got %v", got)
	}

	got = wrapText("this is a longer text that should be wrapped", 20)
	if len(got) != 3 {
		t.Errorf("wrapText long text: expected 3 lines, got %d: %v", len(got), got)
	}

	if got := wrapText("", 10); len(got) != 0 {
		t.Errorf("wrapText empty: expected empty, got %v", got)
	}
}
