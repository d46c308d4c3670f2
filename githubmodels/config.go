// Copyright (c) Microsoft. All rights reserved.

package githubmodels

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
)

// Environment variables read by [ConfigFromEnv].
const (
	EnvToken      = "GITHUB_MODELS_TOKEN"
	EnvEndpoint   = "GITHUB_MODELS_ENDPOINT"
	EnvAPIVersion = "GITHUB_MODELS_API_VERSION"
)

// Built-in defaults.
const (
	DefaultEndpoint   = "https://models.inference.ai.azure.com"
	DefaultAPIVersion = "2024-02-15-preview"
	DefaultModel      = "gpt-4o"
)

// Config is the external configuration of the factory. The zero value is
// usable except for the missing token.
type Config struct {
	// Token is the GitHub personal access token. Required.
	Token string
	// Endpoint overrides [DefaultEndpoint] when non-empty.
	Endpoint string
	// APIVersion overrides [DefaultAPIVersion] when non-empty.
	APIVersion string

	// HTTPClient is used for every request. Timeouts are inherited from it.
	// Nil means http.DefaultClient.
	HTTPClient *http.Client
	// Logger receives probe diagnostics. Nil means slog.Default().
	Logger *slog.Logger
}

// ConfigFromEnv reads the configuration from the process environment.
func ConfigFromEnv() Config {
	return ConfigFromLookup(os.LookupEnv)
}

// ConfigFromLookup reads the configuration through lookup, which has the
// signature of os.LookupEnv. Blank values count as unset; any other value
// is kept verbatim.
func ConfigFromLookup(lookup func(string) (string, bool)) Config {
	get := func(key string) string {
		v, ok := lookup(key)
		if !ok || strings.TrimSpace(v) == "" {
			return ""
		}
		return v
	}
	return Config{
		Token:      get(EnvToken),
		Endpoint:   get(EnvEndpoint),
		APIVersion: get(EnvAPIVersion),
	}
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

func (c Config) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}
