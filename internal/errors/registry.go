package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Config Errors (E120-E139)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid autoform.json",
		Detail:   "The autoform.json configuration file is malformed.",
		DocURL:   "https://vango.dev/docs/autoform/errors/E120",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A value in autoform.json is not allowed.",
		DocURL:   "https://vango.dev/docs/autoform/errors/E121",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid port number",
		Detail:   "The configured port number is outside the range 0-65535.",
		DocURL:   "https://vango.dev/docs/autoform/errors/E122",
	},

	// ============================================
	// CLI Errors (E140-E159)
	// ============================================

	"E141": {
		Category: CategoryCLI,
		Message:  "Not an autoform project",
		Detail:   "No autoform.json was found. Run this command from a directory with autoform.json or pass --config.",
		DocURL:   "https://vango.dev/docs/autoform/errors/E141",
	},
	"E142": {
		Category: CategoryCLI,
		Message:  "Config file already exists",
		Detail:   "Refusing to overwrite an existing autoform.json.",
		DocURL:   "https://vango.dev/docs/autoform/errors/E142",
	},

	// ============================================
	// Resolution Errors (E200-E209)
	// ============================================

	"E200": {
		Category: CategoryResolution,
		Message:  "Missing argument",
		Detail:   "A required argument was nil or empty.",
		DocURL:   "https://vango.dev/docs/autoform/errors/E200",
	},
	"E201": {
		Category: CategoryValidation,
		Message:  "Invalid metadata",
		Detail:   "Field metadata must have both a type and a name.",
		DocURL:   "https://vango.dev/docs/autoform/errors/E201",
	},
	"E202": {
		Category: CategoryResolution,
		Message:  "Field component not found",
		Detail:   "No field component is registered under the requested id.",
		DocURL:   "https://vango.dev/docs/autoform/errors/E202",
	},
	"E203": {
		Category: CategoryResolution,
		Message:  "No component for type",
		Detail:   "No field component is registered for the requested type and no default is configured.",
		DocURL:   "https://vango.dev/docs/autoform/errors/E203",
	},
	"E204": {
		Category: CategoryResolution,
		Message:  "Group component not found",
		Detail:   "No group component is registered under the requested id.",
		DocURL:   "https://vango.dev/docs/autoform/errors/E204",
	},
	"E205": {
		Category: CategoryResolution,
		Message:  "No default group component",
		Detail:   "The group metadata names no component and no default group component is set.",
		DocURL:   "https://vango.dev/docs/autoform/errors/E205",
	},
	"E206": {
		Category: CategoryResolution,
		Message:  "Unresolvable component",
		Detail:   "The registered definition is empty and cannot be instantiated.",
		DocURL:   "https://vango.dev/docs/autoform/errors/E206",
	},

	// ============================================
	// Schema Errors (E210-E219)
	// ============================================

	"E210": {
		Category: CategorySchema,
		Message:  "Malformed schema document",
		Detail:   "The schema could not be decoded as JSON or YAML.",
		DocURL:   "https://vango.dev/docs/autoform/errors/E210",
	},
	"E211": {
		Category: CategorySchema,
		Message:  "Invalid schema document",
		Detail:   "Every field in a schema needs a type and a name.",
		DocURL:   "https://vango.dev/docs/autoform/errors/E211",
	},
	"E212": {
		Category: CategorySchema,
		Message:  "Root component not found",
		Detail:   "The schema names a root component that is not registered.",
		DocURL:   "https://vango.dev/docs/autoform/errors/E212",
	},

	// ============================================
	// Source Errors (E220-E229)
	// ============================================

	"E220": {
		Category: CategorySource,
		Message:  "Schema not found",
		Detail:   "The schema source has no document under the requested name.",
		DocURL:   "https://vango.dev/docs/autoform/errors/E220",
	},
	"E221": {
		Category: CategorySource,
		Message:  "Invalid schema reference",
		Detail:   "Schema references must be relative names without '..' segments.",
		DocURL:   "https://vango.dev/docs/autoform/errors/E221",
	},
	"E222": {
		Category: CategorySource,
		Message:  "Unsupported schema source",
		Detail:   "Schema sources must be a directory path or an s3:// URI.",
		DocURL:   "https://vango.dev/docs/autoform/errors/E222",
	},

	// ============================================
	// Server Errors (E230-E239)
	// ============================================

	"E230": {
		Category: CategoryServer,
		Message:  "Request body too large",
		Detail:   "The posted schema exceeds the server's body size limit.",
		DocURL:   "https://vango.dev/docs/autoform/errors/E230",
	},
	"E231": {
		Category: CategoryServer,
		Message:  "Invalid request body",
		Detail:   "The request body could not be read or parsed.",
		DocURL:   "https://vango.dev/docs/autoform/errors/E231",
	},
	"E232": {
		Category: CategoryServer,
		Message:  "Internal server error",
		Detail:   "The request failed for a reason unrelated to the schema.",
		DocURL:   "https://vango.dev/docs/autoform/errors/E232",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
