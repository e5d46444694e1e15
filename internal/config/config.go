package config

import (
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/vango-dev/autoform/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "autoform.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 8080

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultForms is the default schema directory.
	DefaultForms = "forms"

	// DefaultGroup is the group component used when a group names none.
	DefaultGroup = "fieldset"

	// DefaultRoot is the root component selected at startup.
	DefaultRoot = "form"

	// DefaultNamespace is the Prometheus metrics namespace.
	DefaultNamespace = "autoform"

	// DefaultIndent is the indentation used for pretty output.
	DefaultIndent = "  "
)

// Config represents the complete autoform.json configuration.
type Config struct {
	// Fields configures field component defaults.
	Fields FieldsConfig `json:"fields,omitempty"`

	// Groups configures group component defaults.
	Groups GroupsConfig `json:"groups,omitempty"`

	// Root is the id of the current root component.
	Root string `json:"root,omitempty"`

	// Server contains preview server configuration.
	Server ServerConfig `json:"server,omitempty"`

	// Render contains HTML output configuration.
	Render RenderConfig `json:"render,omitempty"`

	// Metrics contains Prometheus configuration.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// Storage configures remote schema storage.
	Storage StorageConfig `json:"storage,omitempty"`

	// configPath is the path to the config file (not serialized).
	configPath string
}

// FieldsConfig configures field components.
type FieldsConfig struct {
	// Defaults maps a type to the id of its default field component.
	Defaults map[string]string `json:"defaults,omitempty"`
}

// GroupsConfig configures group components.
type GroupsConfig struct {
	// Default is the id of the default group component.
	Default string `json:"default,omitempty"`
}

// ServerConfig configures the preview server.
type ServerConfig struct {
	// Host is the listen host.
	Host string `json:"host,omitempty"`

	// Port is the listen port.
	Port int `json:"port,omitempty"`

	// Forms is the schema directory, relative to the config file.
	Forms string `json:"forms,omitempty"`

	// Stylesheets are linked from every rendered page.
	Stylesheets []string `json:"stylesheets,omitempty"`
}

// RenderConfig configures HTML output.
type RenderConfig struct {
	// Pretty enables indented output.
	Pretty bool `json:"pretty,omitempty"`

	// Indent is the indentation string for pretty output.
	Indent string `json:"indent,omitempty"`
}

// MetricsConfig configures Prometheus metrics.
type MetricsConfig struct {
	// Enabled exposes /metrics and instruments component builds.
	Enabled bool `json:"enabled"`

	// Namespace prefixes every metric name.
	Namespace string `json:"namespace,omitempty"`
}

// StorageConfig configures remote schema storage.
type StorageConfig struct {
	// S3 serves schemas from a bucket instead of Server.Forms.
	S3 S3Config `json:"s3,omitempty"`
}

// S3Config locates schemas in S3.
type S3Config struct {
	Bucket   string `json:"bucket,omitempty"`
	Prefix   string `json:"prefix,omitempty"`
	Region   string `json:"region,omitempty"`
	Endpoint string `json:"endpoint,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Fields: FieldsConfig{
			Defaults: map[string]string{},
		},
		Groups: GroupsConfig{
			Default: DefaultGroup,
		},
		Root: DefaultRoot,
		Server: ServerConfig{
			Host:  DefaultHost,
			Port:  DefaultPort,
			Forms: DefaultForms,
		},
		Render: RenderConfig{
			Indent: DefaultIndent,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: DefaultNamespace,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for autoform.json in the directory.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	return LoadFile(configPath)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E141").
				WithDetail("No autoform.json found in " + filepath.Dir(path)).
				WithSuggestion("Run 'autoform init' to create one")
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to parse autoform.json: " + err.Error()).
			WithSuggestion("Check that autoform.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E120").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E120").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Fields.Defaults == nil {
		c.Fields.Defaults = map[string]string{}
	}
	if c.Groups.Default == "" {
		c.Groups.Default = DefaultGroup
	}
	if c.Root == "" {
		c.Root = DefaultRoot
	}

	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.Forms == "" {
		c.Server.Forms = DefaultForms
	}

	if c.Render.Indent == "" {
		c.Render.Indent = DefaultIndent
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	c.Storage.S3.Prefix = strings.Trim(c.Storage.S3.Prefix, "/")
}

var metricNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E122").
			WithDetail("Port must be between 0 and 65535, got " + strconv.Itoa(c.Server.Port))
	}
	for t, id := range c.Fields.Defaults {
		if t == "" || id == "" {
			return errors.New("E121").
				WithDetail("fields.defaults entries need a type and a component id").
				WithSuggestion(`Use the form {"email": "text"}`)
		}
	}
	if strings.TrimSpace(c.Render.Indent) != "" {
		return errors.New("E121").
			WithDetail("render.indent must contain only whitespace")
	}
	if c.Metrics.Enabled && !metricNamePattern.MatchString(c.Metrics.Namespace) {
		return errors.New("E121").
			WithDetail("metrics.namespace " + strconv.Quote(c.Metrics.Namespace) + " is not a valid metric name prefix")
	}
	return nil
}

// Address returns the listen address for the preview server.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// FormsURI returns the schema location: an s3:// URI when a bucket is
// configured, otherwise the forms directory resolved against Dir.
func (c *Config) FormsURI() string {
	if s3 := c.Storage.S3; s3.Bucket != "" {
		uri := "s3://" + s3.Bucket
		if s3.Prefix != "" {
			uri += "/" + s3.Prefix
		}
		return uri
	}
	if filepath.IsAbs(c.Server.Forms) || c.Dir() == "" {
		return c.Server.Forms
	}
	return filepath.Join(c.Dir(), c.Server.Forms)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	path := filepath.Join(dir, ConfigFileName)
	_, err := os.Stat(path)
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing autoform.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E141").
				WithDetail("No autoform.json found in " + startDir + " or any parent directory").
				WithSuggestion("Run 'autoform init' to create one")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory
// or the nearest parent that has an autoform.json.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}
