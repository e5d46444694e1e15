package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/autoform/internal/errors"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Server.Port != DefaultPort {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, DefaultPort)
	}
	if cfg.Server.Host != DefaultHost {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, DefaultHost)
	}
	if cfg.Groups.Default != DefaultGroup {
		t.Errorf("Groups.Default = %q, want %q", cfg.Groups.Default, DefaultGroup)
	}
	if cfg.Root != DefaultRoot {
		t.Errorf("Root = %q, want %q", cfg.Root, DefaultRoot)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Namespace != DefaultNamespace {
		t.Errorf("Metrics = %+v", cfg.Metrics)
	}
	if cfg.Fields.Defaults == nil {
		t.Error("Fields.Defaults should be an empty map")
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	// Test loading non-existent config
	_, err := Load(tmpDir)
	if err == nil {
		t.Fatal("Expected error for missing config")
	}
	var ae *errors.Error
	if !stderrors.As(err, &ae) || ae.Code != "E141" {
		t.Errorf("err = %v, want E141", err)
	}

	configJSON := `{
  "fields": {"defaults": {"text": "textarea"}},
  "server": {"port": 9090, "forms": "schemas"},
  "render": {"pretty": true},
  "metrics": {"enabled": false},
  "storage": {"s3": {"bucket": "forms", "prefix": "/prod/", "region": "eu-west-1"}}
}
`
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.Host != DefaultHost {
		t.Errorf("Server.Host = %q, want default", cfg.Server.Host)
	}
	if cfg.Fields.Defaults["text"] != "textarea" {
		t.Errorf("Fields.Defaults = %v", cfg.Fields.Defaults)
	}
	if cfg.Groups.Default != DefaultGroup || cfg.Root != DefaultRoot {
		t.Errorf("defaults not kept: group %q root %q", cfg.Groups.Default, cfg.Root)
	}
	if !cfg.Render.Pretty || cfg.Render.Indent != DefaultIndent {
		t.Errorf("Render = %+v", cfg.Render)
	}
	if cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled should be false")
	}
	if cfg.Metrics.Namespace != DefaultNamespace {
		t.Errorf("Metrics.Namespace = %q", cfg.Metrics.Namespace)
	}
	if cfg.Storage.S3.Prefix != "prod" {
		t.Errorf("S3.Prefix = %q, want trimmed", cfg.Storage.S3.Prefix)
	}
	if cfg.Dir() != tmpDir {
		t.Errorf("Dir() = %q, want %q", cfg.Dir(), tmpDir)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte("{invalid"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(tmpDir)
	var ae *errors.Error
	if !stderrors.As(err, &ae) || ae.Code != "E120" {
		t.Fatalf("err = %v, want E120", err)
	}
	if !strings.Contains(ae.Detail, "Failed to parse autoform.json") {
		t.Errorf("Detail = %q", ae.Detail)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ConfigFileName)

	cfg := New()
	cfg.Fields.Defaults["email"] = "text"
	cfg.Server.Port = 4000
	cfg.Storage.S3.Bucket = "forms"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo error: %v", err)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q", cfg.Path())
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if loaded.Server.Port != 4000 || loaded.Fields.Defaults["email"] != "text" || loaded.Storage.S3.Bucket != "forms" {
		t.Errorf("round trip lost values: %+v", loaded)
	}

	loaded.Root = "inline"
	if err := loaded.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	again, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if again.Root != "inline" {
		t.Errorf("Root = %q after Save", again.Root)
	}
}

func TestSaveWithoutPath(t *testing.T) {
	if err := New().Save(); err == nil {
		t.Error("expected error when saving without a path")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		code   string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "port too large", mutate: func(c *Config) { c.Server.Port = 70000 }, code: "E122"},
		{name: "negative port", mutate: func(c *Config) { c.Server.Port = -1 }, code: "E122"},
		{name: "empty default id", mutate: func(c *Config) { c.Fields.Defaults["text"] = "" }, code: "E121"},
		{name: "non-whitespace indent", mutate: func(c *Config) { c.Render.Indent = "--" }, code: "E121"},
		{name: "bad namespace", mutate: func(c *Config) { c.Metrics.Namespace = "auto-form" }, code: "E121"},
		{name: "bad namespace disabled", mutate: func(c *Config) {
			c.Metrics.Enabled = false
			c.Metrics.Namespace = "auto-form"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.code == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var ae *errors.Error
			if !stderrors.As(err, &ae) || ae.Code != tt.code {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestAddress(t *testing.T) {
	cfg := New()
	if got := cfg.Address(); got != "localhost:8080" {
		t.Errorf("Address() = %q", got)
	}
	cfg.Server.Host = ""
	cfg.Server.Port = 9000
	if got := cfg.Address(); got != ":9000" {
		t.Errorf("Address() = %q", got)
	}
}

func TestFormsURI(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ConfigFileName)

	cfg := New()
	if got := cfg.FormsURI(); got != DefaultForms {
		t.Errorf("unsaved FormsURI() = %q", got)
	}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatal(err)
	}
	if got := cfg.FormsURI(); got != filepath.Join(tmpDir, DefaultForms) {
		t.Errorf("FormsURI() = %q", got)
	}

	cfg.Storage.S3.Bucket = "bucket"
	if got := cfg.FormsURI(); got != "s3://bucket" {
		t.Errorf("FormsURI() = %q", got)
	}
	cfg.Storage.S3.Prefix = "prod"
	if got := cfg.FormsURI(); got != "s3://bucket/prod" {
		t.Errorf("FormsURI() = %q", got)
	}
}

func TestFindProjectRoot(t *testing.T) {
	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	if _, err := FindProjectRoot(nested); err == nil {
		t.Error("expected error without autoform.json")
	}

	if err := New().SaveTo(filepath.Join(tmpDir, ConfigFileName)); err != nil {
		t.Fatal(err)
	}
	if !Exists(tmpDir) {
		t.Error("Exists() = false after SaveTo")
	}

	root, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot error: %v", err)
	}
	want, _ := filepath.Abs(tmpDir)
	if root != want {
		t.Errorf("root = %q, want %q", root, want)
	}
}
