// Copyright (c) Microsoft. All rights reserved.

package githubmodels

import (
	"errors"
	"fmt"
)

// ErrConfiguration matches every [ConfigurationError] via errors.Is.
var ErrConfiguration = errors.New("configuration error")

// ConfigurationError reports a missing or invalid configuration value.
// It is returned before any network activity.
type ConfigurationError struct {
	// Variable names the environment variable or parameter at fault.
	Variable string
	Reason   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s %s", e.Variable, e.Reason)
}

// Is reports whether target is [ErrConfiguration].
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }
