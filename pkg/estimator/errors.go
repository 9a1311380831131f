package estimator

import "fmt"

// ConfigurationError reports a hyperparameter violating one of the
// estimator invariants. It is always returned before any architecture
// object is built, so a failed construction leaves nothing behind.
type ConfigurationError struct {
	// Field is the offending configuration field.
	Field string
	// Reason describes the violated constraint.
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid estimator configuration: %s: %s", e.Field, e.Reason)
}

func configError(field, format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
