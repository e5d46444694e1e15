package schema

import (
	"errors"

	aferrors "github.com/vango-dev/autoform/internal/errors"
	"github.com/vango-dev/autoform/pkg/factory"
)

var (
	// ErrMalformed is wrapped by errors for documents that cannot be decoded.
	ErrMalformed = errors.New("malformed schema document")

	// ErrInvalidDocument is wrapped by errors for documents that decode but
	// cannot be built.
	ErrInvalidDocument = errors.New("invalid schema document")
)

func errMalformed(format Format, cause error) *aferrors.Error {
	return aferrors.New("E210").
		WithMessagef("Could not decode %s schema: %v", format, cause).
		Wrap(errors.Join(ErrMalformed, cause))
}

func errInvalid(problems []string) *aferrors.Error {
	return aferrors.New("E211").
		WithDetail(summarize(problems)).
		WithSuggestion("Give every field a type and a unique name").
		Wrap(ErrInvalidDocument)
}

func errRootNotFound(id string) *aferrors.Error {
	return aferrors.New("E212").
		WithMessagef("Could not resolve the root component. Component: %s", id).
		Wrap(factory.ErrNotFound)
}
