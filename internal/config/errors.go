package config

import (
	"fmt"
	"strings"
)

// ConfigurationError is fatal, the process cannot start with it
type ConfigurationError struct {
	Missing []string
	Invalid []string
	Err     error
}

func (e *ConfigurationError) Error() string {
	parts := make([]string, 0, 3) //nolint:mnd
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	if len(e.Missing) > 0 {
		parts = append(parts, "missing "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid "+strings.Join(e.Invalid, "; "))
	}
	return fmt.Sprintf("configuration: %s", strings.Join(parts, "; "))
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
