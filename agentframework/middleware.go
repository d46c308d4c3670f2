// Copyright (c) Microsoft. All rights reserved.

package agentframework

import (
	"context"
	"encoding/json"
)

// AgentHandler is the function signature for processing an agent run.
type AgentHandler func(ctx context.Context, req *AgentRequest) (*AgentResponse, error)

// AgentRequest carries the inputs for an agent run through the middleware pipeline.
type AgentRequest struct {
	Messages []Message
	Options  *ChatOptions
}

// AgentMiddleware wraps an [AgentHandler] to add cross-cutting behavior.
// Middleware should call next to continue the chain, or return early to short-circuit.
type AgentMiddleware func(next AgentHandler) AgentHandler

// ChatHandler is the function signature for processing a chat request.
type ChatHandler func(ctx context.Context, messages []Message, opts *ChatOptions) (*ChatResponse, error)

// ChatMiddleware wraps a [ChatHandler]. It runs around every model call of
// a run, including the calls made while resolving tools.
type ChatMiddleware func(next ChatHandler) ChatHandler

// FunctionHandler is the function signature for invoking a tool.
type FunctionHandler func(ctx context.Context, tool Tool, args json.RawMessage) (any, error)

// FunctionMiddleware wraps a [FunctionHandler] to add cross-cutting behavior.
type FunctionMiddleware func(next FunctionHandler) FunctionHandler

// Hooks is a named set of callbacks observing an agent run. Any field may be
// nil. Attach with [WithHooks].
type Hooks struct {
	Name string

	// BeforeModel runs before each model call with the messages about to be sent.
	BeforeModel func(ctx context.Context, messages []Message)

	// AfterModel runs after each successful model call.
	AfterModel func(ctx context.Context, resp *ChatResponse)

	// WrapToolCall runs around each tool invocation. It must call next to
	// invoke the tool and may replace the result or error.
	WrapToolCall func(ctx context.Context, tool Tool, args json.RawMessage, next FunctionHandler) (any, error)
}

func (h Hooks) chatMiddleware() ChatMiddleware {
	if h.BeforeModel == nil && h.AfterModel == nil {
		return nil
	}
	return func(next ChatHandler) ChatHandler {
		return func(ctx context.Context, messages []Message, opts *ChatOptions) (*ChatResponse, error) {
			if h.BeforeModel != nil {
				h.BeforeModel(ctx, messages)
			}
			resp, err := next(ctx, messages, opts)
			if err != nil {
				return nil, err
			}
			if h.AfterModel != nil {
				h.AfterModel(ctx, resp)
			}
			return resp, nil
		}
	}
}

func (h Hooks) functionMiddleware() FunctionMiddleware {
	if h.WrapToolCall == nil {
		return nil
	}
	return func(next FunctionHandler) FunctionHandler {
		return func(ctx context.Context, tool Tool, args json.RawMessage) (any, error) {
			return h.WrapToolCall(ctx, tool, args, next)
		}
	}
}

// chainAgentMiddleware applies middleware in order (first in list = outermost wrapper).
func chainAgentMiddleware(handler AgentHandler, mws ...AgentMiddleware) AgentHandler {
	for i := len(mws) - 1; i >= 0; i-- {
		handler = mws[i](handler)
	}
	return handler
}

// chainChatMiddleware applies middleware in order (first in list = outermost wrapper).
func chainChatMiddleware(handler ChatHandler, mws ...ChatMiddleware) ChatHandler {
	for i := len(mws) - 1; i >= 0; i-- {
		handler = mws[i](handler)
	}
	return handler
}

// chainFunctionMiddleware applies middleware in order.
func chainFunctionMiddleware(handler FunctionHandler, mws ...FunctionMiddleware) FunctionHandler {
	for i := len(mws) - 1; i >= 0; i-- {
		handler = mws[i](handler)
	}
	return handler
}
