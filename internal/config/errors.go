package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrUnsupportedFormat indicates a file extension with no decoder.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrInvalid indicates a setting failed validation.
	ErrInvalid = errors.New("config: invalid setting")
)

// LoadError represents a failure to read or decode a configuration file.
type LoadError struct {
	// Path is the file that failed to load.
	Path string
	// Err is the underlying error.
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("config: load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// invalid returns an ErrInvalid error naming the setting.
func invalid(setting, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalid, setting, fmt.Sprintf(format, args...))
}
