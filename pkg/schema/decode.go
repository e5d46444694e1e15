package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	aferrors "github.com/vango-dev/autoform/internal/errors"
)

// Format is a schema encoding.
type Format string

const (
	FormatAuto Format = ""
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func (f Format) String() string {
	if f == FormatAuto {
		return "auto"
	}
	return string(f)
}

// FormatFromPath returns the format implied by a file extension, or
// FormatAuto for unknown extensions.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatAuto
	}
}

// Detect guesses the format of data: a leading '{' means JSON, anything
// else is treated as YAML.
func Detect(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatJSON
	}
	return FormatYAML
}

// Parse decodes data, detecting its format.
func Parse(data []byte) (*Document, error) {
	return Decode(data, FormatAuto)
}

// Decode decodes data in the given format. The document is not validated.
func Decode(data []byte, format Format) (*Document, error) {
	if format == FormatAuto {
		format = Detect(data)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errMalformed(format, errors.New("empty document"))
	}

	var doc Document
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			e := errMalformed(format, err)
			if line, col, ok := jsonPosition(data, err); ok {
				e.Location = locationAt(line, col)
			}
			return nil, e
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			e := errMalformed(format, err)
			if line, ok := yamlLine(err); ok {
				e.Location = locationAt(line, 0)
			}
			return nil, e
		}
	default:
		return nil, errMalformed(format, fmt.Errorf("unknown format %q", string(format)))
	}

	normalize(&doc)
	return &doc, nil
}

// DecodeFile reads and decodes the schema at path. Decode errors carry the
// file location and surrounding lines.
func DecodeFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Decode(data, FormatFromPath(path))
	if err != nil {
		var e *aferrors.Error
		if errors.As(err, &e) {
			line, col := 0, 0
			if e.Location != nil {
				line, col = e.Location.Line, e.Location.Column
			}
			e.WithLocation(path, line, col)
		}
		return nil, err
	}
	return doc, nil
}

func locationAt(line, col int) *aferrors.Location {
	return &aferrors.Location{Line: line, Column: col}
}

// normalize converts decoder-specific values into plain Go values:
// json.Number becomes int or float64 and YAML maps with non-string keys
// become map[string]any.
func normalize(doc *Document) {
	for gi := range doc.Groups {
		g := &doc.Groups[gi]
		for k, v := range g.Props {
			g.Props[k] = normalizeValue(v)
		}
		for _, f := range g.Fields {
			for k, v := range f {
				f[k] = normalizeValue(v)
			}
		}
	}
}

func normalizeValue(v any) any {
	switch x := v.(type) {
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return int(n)
		}
		f, _ := x.Float64()
		return f
	case map[string]any:
		for k, item := range x {
			x[k] = normalizeValue(item)
		}
		return x
	case Field:
		// yaml.v3 decodes mappings nested in a Field as Field.
		out := make(map[string]any, len(x))
		for k, item := range x {
			out[k] = normalizeValue(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, item := range x {
			out[fmt.Sprint(k)] = normalizeValue(item)
		}
		return out
	case []any:
		for i, item := range x {
			x[i] = normalizeValue(item)
		}
		return x
	default:
		return v
	}
}

// jsonPosition converts a JSON decoder error offset to a line and column.
func jsonPosition(data []byte, err error) (line, col int, ok bool) {
	var offset int64
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	default:
		return 0, 0, false
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	before := data[:offset]
	line = bytes.Count(before, []byte{'\n'}) + 1
	col = int(offset) - bytes.LastIndexByte(before, '\n')
	return line, col, true
}

var yamlLinePattern = regexp.MustCompile(`line (\d+)`)

// yamlLine extracts the first line number from a yaml.v3 error message.
func yamlLine(err error) (int, bool) {
	m := yamlLinePattern.FindStringSubmatch(err.Error())
	if m == nil {
		return 0, false
	}
	n, convErr := strconv.Atoi(m[1])
	return n, convErr == nil
}
