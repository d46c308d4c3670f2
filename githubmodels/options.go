// Copyright (c) Microsoft. All rights reserved.

package githubmodels

import (
	"log/slog"

	"github.com/openai/openai-go/v3/option"
)

// Wire names used by the endpoint.
const (
	ModelHeader     = "x-ms-model-id"
	APIVersionParam = "api-version"
)

// ConnectionOptions is everything a client needs to reach the endpoint.
// It is a plain value; build a new one per client with
// [BuildConnectionOptions].
type ConnectionOptions struct {
	BaseURL         string
	APIKey          string
	ModelHeader     string
	APIVersionQuery string
}

// BuildConnectionOptions resolves cfg and model into [ConnectionOptions].
//
// A missing token yields a [*ConfigurationError] naming GITHUB_MODELS_TOKEN.
// Endpoint and API version overrides are used verbatim.
func BuildConnectionOptions(cfg Config, model string) (ConnectionOptions, error) {
	if cfg.Token == "" {
		return ConnectionOptions{}, &ConfigurationError{Variable: EnvToken, Reason: "is not set"}
	}
	if model == "" {
		return ConnectionOptions{}, &ConfigurationError{Variable: "model", Reason: "must not be empty"}
	}

	opts := ConnectionOptions{
		BaseURL:         cfg.Endpoint,
		APIKey:          cfg.Token,
		ModelHeader:     model,
		APIVersionQuery: cfg.APIVersion,
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultEndpoint
	}
	if opts.APIVersionQuery == "" {
		opts.APIVersionQuery = DefaultAPIVersion
	}
	return opts, nil
}

// Headers returns a fresh map of the headers sent on every request.
func (o ConnectionOptions) Headers() map[string]string {
	return map[string]string{ModelHeader: o.ModelHeader}
}

// Query returns a fresh map of the query parameters sent on every request.
func (o ConnectionOptions) Query() map[string]string {
	return map[string]string{APIVersionParam: o.APIVersionQuery}
}

// RequestOptions renders the options for the openai-go SDK.
func (o ConnectionOptions) RequestOptions() []option.RequestOption {
	return []option.RequestOption{
		option.WithBaseURL(o.BaseURL),
		option.WithAPIKey(o.APIKey),
		option.WithHeader(ModelHeader, o.ModelHeader),
		option.WithQuery(APIVersionParam, o.APIVersionQuery),
	}
}

// LogValue keeps the API key out of logs.
func (o ConnectionOptions) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("base_url", o.BaseURL),
		slog.String("model", o.ModelHeader),
		slog.String("api_version", o.APIVersionQuery),
		slog.Bool("api_key_set", o.APIKey != ""),
	)
}
