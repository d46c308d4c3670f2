// Copyright (c) Microsoft. All rights reserved.

// Package agentframework provides the core types for building tool-calling
// agents on top of a chat-completions backend.
//
// # Quick Start
//
// Create a ChatClient (for example with the githubmodels package) and build
// an Agent:
//
//	client, err := githubmodels.NewTunedClient(cfg, "gpt-4o", githubmodels.Tuning{})
//
//	agent := agentframework.NewAgent(client,
//	    agentframework.WithName("assistant"),
//	    agentframework.WithInstructions("You are helpful."),
//	    agentframework.WithTools(myTool),
//	)
//
//	resp, err := agent.RunText(ctx, "Hello!")
//
// # Architecture
//
//   - [Agent]: composes a client with instructions, tools and middleware.
//     It is stateless; each run sees only the messages passed to it.
//   - [ChatClient]: interface for model backends.
//   - [Tool]: callable functions exposed to the model via function calling.
//   - [Content]: sealed interface for message parts (text, function call,
//     function result).
//   - Middleware: three levels (Agent, Chat, Function) plus [Hooks].
//
// # Tools
//
// Use [NewTypedTool] for type-safe tools with JSON Schema generated from
// struct tags:
//
//	type WeatherArgs struct {
//	    City string `json:"city" jsonschema:"required,description=City name"`
//	}
//
//	tool := agentframework.NewTypedTool("get_weather", "Get current weather",
//	    func(ctx context.Context, args WeatherArgs) (any, error) {
//	        return lookup(args.City), nil
//	    },
//	)
//
// # Hooks
//
// [Hooks] observe each model call and wrap each tool call:
//
//	agent := agentframework.NewAgent(client,
//	    agentframework.WithHooks(agentframework.Hooks{
//	        Name:        "simple-logger",
//	        BeforeModel: func(ctx context.Context, msgs []agentframework.Message) { ... },
//	    }),
//	)
package agentframework
