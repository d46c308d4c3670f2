// Copyright (c) Microsoft. All rights reserved.

package githubmodels

// Tuning defaults.
const (
	DefaultTemperature = 0.3
	DefaultMaxTokens   = 1000
)

// Tuning holds optional generation parameters for [NewTunedClient].
// Nil fields keep their defaults.
type Tuning struct {
	Temperature *float64
	MaxTokens   *int
	Streaming   *bool
}

// Settings are the effective tuning values.
type Settings struct {
	Temperature float64
	MaxTokens   int
	Streaming   bool
}

// Resolve applies the defaults to unset fields.
func (t Tuning) Resolve() Settings {
	s := Settings{
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	}
	if t.Temperature != nil {
		s.Temperature = *t.Temperature
	}
	if t.MaxTokens != nil {
		s.MaxTokens = *t.MaxTokens
	}
	if t.Streaming != nil {
		s.Streaming = *t.Streaming
	}
	return s
}
