// Copyright (c) Microsoft. All rights reserved.

package agentframework

import "context"

// ChatClient is the interface for interacting with a chat-completions backend.
// Provider packages (e.g., openai) implement this interface.
type ChatClient interface {
	// Response sends messages to the model and returns a complete response.
	Response(ctx context.Context, messages []Message, opts *ChatOptions) (*ChatResponse, error)
}

// ChatClientFunc adapts a function to the [ChatClient] interface.
type ChatClientFunc func(ctx context.Context, messages []Message, opts *ChatOptions) (*ChatResponse, error)

// Response calls f.
func (f ChatClientFunc) Response(ctx context.Context, messages []Message, opts *ChatOptions) (*ChatResponse, error) {
	return f(ctx, messages, opts)
}
