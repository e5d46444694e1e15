package factory

import (
	"errors"

	aferrors "github.com/vango-dev/autoform/internal/errors"
)

// Sentinel errors. Every error returned by a Factory wraps exactly one of
// these, so callers can branch with errors.Is.
var (
	// ErrInvalidArgument reports a missing required argument to an API call.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrValidation reports field metadata without a type or a name.
	ErrValidation = errors.New("invalid metadata")

	// ErrNotFound reports an id or type with no registered or derivable
	// definition.
	ErrNotFound = errors.New("component not found")

	// ErrResolution reports a resolved definition that is empty.
	ErrResolution = errors.New("component not resolved")
)

// Outcomes reported to an Observer.
const (
	OutcomeOK              = "ok"
	OutcomeInvalidArgument = "invalid_argument"
	OutcomeValidation      = "validation"
	OutcomeNotFound        = "not_found"
	OutcomeResolution      = "resolution"
	OutcomeUnknown         = "unknown"
)

// Outcome classifies err into one of the Outcome constants.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrInvalidArgument):
		return OutcomeInvalidArgument
	case errors.Is(err, ErrValidation):
		return OutcomeValidation
	case errors.Is(err, ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, ErrResolution):
		return OutcomeResolution
	default:
		return OutcomeUnknown
	}
}

func errInvalidArgument(format string, args ...any) error {
	return aferrors.New("E200").WithMessagef(format, args...).Wrap(ErrInvalidArgument)
}

func errValidation(format string, args ...any) error {
	return aferrors.New("E201").WithMessagef(format, args...).Wrap(ErrValidation)
}

func errFieldNotFound(id string) error {
	return aferrors.New("E202").
		WithMessagef("Could not find the given component. Id: %s", id).
		WithSuggestion("Register the component with RegisterFieldComponent before building").
		Wrap(ErrNotFound)
}

func errTypeNotFound(t string) error {
	return aferrors.New("E203").
		WithMessagef("Couldn't find any component for the given type. Type: %s", t).
		WithSuggestion("Make sure a field component was registered for type " + t).
		Wrap(ErrNotFound)
}

func errGroupNotFound(id string) error {
	return aferrors.New("E204").
		WithMessagef("Could not resolve the group component. Component: %s", id).
		Wrap(ErrNotFound)
}

func errNoDefaultGroup() error {
	return aferrors.New("E205").
		WithMessagef("Could not resolve the group component. No default group component is set").
		WithSuggestion("Call SetDefaultGroupComponent or name a component in the group metadata").
		Wrap(ErrNotFound)
}

func errUnresolved(format string, args ...any) error {
	return aferrors.New("E206").WithMessagef(format, args...).Wrap(ErrResolution)
}
