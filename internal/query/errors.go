package query

import (
	"errors"
	"fmt"
)

// ErrConfiguration classifies every query misconfiguration. Match it with
// errors.Is; use errors.As with *ConfigurationError for the details.
var ErrConfiguration = errors.New("query configuration error")

// ConfigurationError reports a query that names an unknown field, an invalid
// direction or a malformed range. It is a programming error, never a user one.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrConfiguration, e.Reason)
	}
	return fmt.Sprintf("%s: field %q: %s", ErrConfiguration, e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

func configErr(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
