// Copyright (c) Microsoft. All rights reserved.

package githubmodels

import (
	oai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	af "github.com/microsoft/ghmodels-agents/agentframework"
	"github.com/microsoft/ghmodels-agents/openai"
)

// NewBasicClient returns an openai-go client bound to the endpoint.
// The model defaults to [DefaultModel]. The SDK's automatic retries are
// disabled.
func NewBasicClient(cfg Config, model string) (oai.Client, error) {
	if model == "" {
		model = DefaultModel
	}
	conn, err := BuildConnectionOptions(cfg, model)
	if err != nil {
		return oai.Client{}, err
	}

	opts := append(conn.RequestOptions(),
		option.WithHTTPClient(cfg.httpClient()),
		option.WithMaxRetries(0),
	)
	cfg.logger().Debug("github models basic client", "connection", conn)
	return oai.NewClient(opts...), nil
}

// ChatClient is an [agentframework.ChatClient] preconfigured with a model
// and tuning settings.
type ChatClient struct {
	*openai.Client
	conn     ConnectionOptions
	settings Settings
}

var _ af.ChatClient = (*ChatClient)(nil)

// NewTunedClient returns a chat client for agents. The model defaults to
// [DefaultModel]; tuning is resolved with [Tuning.Resolve] and applied as
// default chat options, which per-call options override.
func NewTunedClient(cfg Config, model string, tuning Tuning) (*ChatClient, error) {
	if model == "" {
		model = DefaultModel
	}
	conn, err := BuildConnectionOptions(cfg, model)
	if err != nil {
		return nil, err
	}
	settings := tuning.Resolve()

	client := openai.New(conn.APIKey,
		openai.WithBaseURL(conn.BaseURL),
		openai.WithHeaders(conn.Headers()),
		openai.WithQuery(conn.Query()),
		openai.WithModel(model),
		openai.WithDefaultOptions(&af.ChatOptions{
			Temperature: af.Ptr(settings.Temperature),
			MaxTokens:   af.Ptr(settings.MaxTokens),
		}),
		openai.WithStreaming(settings.Streaming),
		openai.WithHTTPClient(cfg.httpClient()),
		openai.WithLogger(cfg.logger()),
	)
	cfg.logger().Debug("github models tuned client",
		"connection", conn,
		"temperature", settings.Temperature,
		"max_tokens", settings.MaxTokens,
		"streaming", settings.Streaming,
	)
	return &ChatClient{Client: client, conn: conn, settings: settings}, nil
}

// Settings returns the effective tuning of the client.
func (c *ChatClient) Settings() Settings { return c.settings }

// Connection returns the connection options the client was built from.
func (c *ChatClient) Connection() ConnectionOptions { return c.conn }
