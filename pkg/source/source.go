package source

import (
	"context"
	"errors"
	"net/url"
	"path"
	"strings"

	aferrors "github.com/vango-dev/autoform/internal/errors"
)

var (
	// ErrNotFound is returned when a source has no schema under a reference.
	ErrNotFound = errors.New("source: schema not found")

	// ErrInvalidRef is returned for references that are empty, absolute or
	// escape the source root.
	ErrInvalidRef = errors.New("source: invalid schema reference")

	// ErrUnsupported is returned by Open for URIs it cannot serve.
	ErrUnsupported = errors.New("source: unsupported source")
)

// Source loads schema documents by reference.
//
// A reference is a slash-separated path relative to the source root, with
// or without a file extension. Without one, Load tries Extensions in order.
type Source interface {
	// Load returns the raw document stored under ref.
	Load(ctx context.Context, ref string) ([]byte, error)

	// List returns the references of every schema document, sorted.
	List(ctx context.Context) ([]string, error)
}

// Extensions are the file extensions recognised as schema documents, in
// lookup order.
var Extensions = []string{".yaml", ".yml", ".json"}

// Options configures sources created by Open.
type Options struct {
	// Region and Endpoint configure the S3 client built for s3:// URIs.
	Region   string
	Endpoint string

	// S3Client, when set, is used instead of building a client.
	S3Client S3API
}

// Open returns the source for uri: an s3://bucket/prefix URI selects an S3
// source, a file:// URI or a plain path selects a directory.
func Open(uri string, opts Options) (Source, error) {
	if uri == "" {
		return nil, errUnsupported(uri, "empty source")
	}
	if !strings.Contains(uri, "://") {
		return NewDir(uri), nil
	}

	u, err := url.Parse(uri)
	if err != nil {
		return nil, errUnsupported(uri, err.Error())
	}
	switch u.Scheme {
	case "file":
		return NewDir(u.Path), nil
	case "s3":
		if u.Host == "" {
			return nil, errUnsupported(uri, "missing bucket")
		}
		client := opts.S3Client
		if client == nil {
			client = NewS3Client(S3ClientConfig{Region: opts.Region, Endpoint: opts.Endpoint})
		}
		return NewS3(client, u.Host, strings.TrimPrefix(u.Path, "/")), nil
	default:
		return nil, errUnsupported(uri, "unknown scheme "+u.Scheme)
	}
}

// cleanRef validates ref and returns it in canonical slash form.
func cleanRef(ref string) (string, error) {
	if ref == "" || strings.Contains(ref, "\\") || strings.HasPrefix(ref, "/") {
		return "", errInvalidRef(ref)
	}
	for _, seg := range strings.Split(ref, "/") {
		if seg == ".." {
			return "", errInvalidRef(ref)
		}
	}
	cleaned := path.Clean(ref)
	if cleaned == "." {
		return "", errInvalidRef(ref)
	}
	return cleaned, nil
}

// candidates returns the keys to try for ref, in order.
func candidates(ref string) []string {
	if hasSchemaExt(ref) {
		return []string{ref}
	}
	out := make([]string, 0, len(Extensions))
	for _, ext := range Extensions {
		out = append(out, ref+ext)
	}
	return out
}

func hasSchemaExt(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func errNotFound(ref string) error {
	return aferrors.New("E220").
		WithMessagef("Schema not found: %s", ref).
		Wrap(ErrNotFound)
}

func errInvalidRef(ref string) error {
	return aferrors.New("E221").
		WithMessagef("Invalid schema reference: %q", ref).
		Wrap(ErrInvalidRef)
}

func errUnsupported(uri, reason string) error {
	return aferrors.New("E222").
		WithMessagef("Unsupported schema source %q: %s", uri, reason).
		Wrap(ErrUnsupported)
}
