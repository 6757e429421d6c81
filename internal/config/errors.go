package config

import (
	"errors"
	"fmt"
)

// ErrConfigNotFound is returned when an explicit --config path does not exist.
var ErrConfigNotFound = errors.New("config file not found")

// FatalError reports a failure to load the file named by --config. Callers
// are expected to terminate the process after printing it.
type FatalError struct {
	Path string
	Err  error
}

func (e *FatalError) Error() string {
	if errors.Is(e.Err, ErrConfigNotFound) {
		return fmt.Sprintf("config file not found: %s", e.Path)
	}
	return fmt.Sprintf("invalid config file %s: %v", e.Path, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}
