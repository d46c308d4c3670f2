// Copyright (c) Microsoft. All rights reserved.

package openai

import (
	"context"
	"fmt"
	"io"
	"net/http"

	af "github.com/microsoft/ghmodels-agents/agentframework"
)

// Client implements [agentframework.ChatClient] using the Chat Completions
// API. Use [New] to create one.
type Client struct {
	tp        transport
	model     string
	defaults  *af.ChatOptions
	streaming bool
	handler   af.ChatHandler
}

// Verify interface compliance at compile time.
var _ af.ChatClient = (*Client)(nil)

// New creates a [Client] with the given API key and options.
//
//	client := openai.New(token,
//	    openai.WithBaseURL("https://models.inference.ai.azure.com"),
//	    openai.WithModel("gpt-4o"),
//	)
func New(apiKey string, opts ...Option) *Client {
	cfg := &clientConfig{}
	for _, o := range opts {
		o(cfg)
	}
	c := &Client{
		tp:        newHTTPTransport(apiKey, cfg),
		model:     cfg.model,
		defaults:  cfg.defaults,
		streaming: cfg.streaming,
	}
	c.handler = c.coreResponse
	for i := len(cfg.chatMiddleware) - 1; i >= 0; i-- {
		c.handler = cfg.chatMiddleware[i](c.handler)
	}
	return c
}

// Model returns the default model of the client.
func (c *Client) Model() string { return c.model }

// Defaults returns a copy of the chat options applied to every request.
func (c *Client) Defaults() af.ChatOptions {
	if c.defaults == nil {
		return af.ChatOptions{}
	}
	return *c.defaults
}

// Streaming reports whether the client requests server-sent events.
func (c *Client) Streaming() bool { return c.streaming }

// Response sends a chat completion request and returns the complete
// response. In streaming mode the events are folded before returning.
func (c *Client) Response(ctx context.Context, messages []af.Message, opts *af.ChatOptions) (*af.ChatResponse, error) {
	return c.handler(ctx, messages, opts)
}

// coreResponse is the base implementation called by the middleware chain.
func (c *Client) coreResponse(ctx context.Context, messages []af.Message, opts *af.ChatOptions) (*af.ChatResponse, error) {
	req := buildRequest(messages, af.MergeChatOptions(c.defaults, opts), c.model)
	if c.streaming {
		req.Stream = true
		req.StreamOptions = &streamOptions{IncludeUsage: true}
	}

	resp, err := c.tp.do(ctx, http.MethodPost, "/chat/completions", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if c.streaming {
		return foldSSEStream(ctx, resp.Body)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %v", af.ErrService, err)
	}

	raw, err := unmarshalChatResponse(body)
	if err != nil {
		return nil, fmt.Errorf("%w: parse response: %v", af.ErrInvalidResponse, err)
	}

	result := parseChatResponse(raw)
	result.Raw = raw
	return result, nil
}
