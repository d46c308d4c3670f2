// Copyright (c) Microsoft. All rights reserved.

package openai

import (
	"log/slog"
	"maps"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"

	af "github.com/microsoft/ghmodels-agents/agentframework"
)

// clientConfig holds resolved configuration for the chat client.
type clientConfig struct {
	baseURL         string
	organization    string
	httpClient      *http.Client
	headers         map[string]string
	query           map[string]string
	model           string
	defaults        *af.ChatOptions
	streaming       bool
	logger          *slog.Logger
	azureCredential azcore.TokenCredential
	chatMiddleware  []af.ChatMiddleware
}

// Option configures a [Client].
type Option func(*clientConfig)

// WithBaseURL overrides the API base URL (e.g., for GitHub Models or proxies).
func WithBaseURL(url string) Option {
	return func(c *clientConfig) { c.baseURL = url }
}

// WithOrganization sets the OpenAI organization header.
func WithOrganization(org string) Option {
	return func(c *clientConfig) { c.organization = org }
}

// WithHTTPClient provides a custom http.Client for requests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) { c.httpClient = client }
}

// WithHeaders adds custom headers to every request. Repeated calls merge.
func WithHeaders(headers map[string]string) Option {
	return func(c *clientConfig) {
		if c.headers == nil {
			c.headers = make(map[string]string, len(headers))
		}
		maps.Copy(c.headers, headers)
	}
}

// WithQuery adds query parameters to every request URL. Repeated calls merge.
func WithQuery(params map[string]string) Option {
	return func(c *clientConfig) {
		if c.query == nil {
			c.query = make(map[string]string, len(params))
		}
		maps.Copy(c.query, params)
	}
}

// WithModel sets the default model for requests.
func WithModel(model string) Option {
	return func(c *clientConfig) { c.model = model }
}

// WithDefaultOptions sets chat options applied to every request. Options
// passed to [Client.Response] take precedence field by field.
func WithDefaultOptions(opts *af.ChatOptions) Option {
	return func(c *clientConfig) { c.defaults = opts }
}

// WithStreaming makes the client request server-sent events. The events are
// folded into a single complete response before Response returns.
func WithStreaming(enabled bool) Option {
	return func(c *clientConfig) { c.streaming = enabled }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) { c.logger = logger }
}

// WithAzureCredential enables Azure AD token authentication using the provided credential.
// When set, the client obtains a bearer token per request instead of using the API key.
func WithAzureCredential(cred azcore.TokenCredential) Option {
	return func(c *clientConfig) { c.azureCredential = cred }
}

// WithChatMiddleware adds middleware to the chat pipeline.
// Middleware is applied in the order provided (first = outermost).
func WithChatMiddleware(mw ...af.ChatMiddleware) Option {
	return func(c *clientConfig) { c.chatMiddleware = append(c.chatMiddleware, mw...) }
}
