// Copyright (c) Microsoft. All rights reserved.

package agentframework

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Agent composes a [ChatClient] with instructions, tools and middleware.
// It keeps no conversation state: every [Agent.Run] sees only the messages
// it is given. An Agent is safe for concurrent use once built.
//
//	agent := agentframework.NewAgent(client,
//	    agentframework.WithName("assistant"),
//	    agentframework.WithInstructions("You are helpful."),
//	    agentframework.WithTools(weatherTool),
//	)
type Agent struct {
	id                 string
	name               string
	description        string
	client             ChatClient
	instructions       string
	tools              []Tool
	defaultOptions     *ChatOptions
	agentMiddleware    []AgentMiddleware
	chatMiddleware     []ChatMiddleware
	functionMiddleware []FunctionMiddleware
	hooks              []string
	invocationConfig   InvocationConfig
	logger             *slog.Logger
}

// AgentOption configures an [Agent] via [NewAgent].
type AgentOption func(*Agent)

// WithName sets the agent's display name.
func WithName(name string) AgentOption {
	return func(a *Agent) { a.name = name }
}

// WithDescription sets the agent's description.
func WithDescription(desc string) AgentOption {
	return func(a *Agent) { a.description = desc }
}

// WithInstructions sets the system instructions for the agent.
func WithInstructions(instructions string) AgentOption {
	return func(a *Agent) { a.instructions = instructions }
}

// WithTools adds tools to the agent's default tool set.
func WithTools(tools ...Tool) AgentOption {
	return func(a *Agent) { a.tools = append(a.tools, tools...) }
}

// WithDefaultOptions sets default [ChatOptions] for all requests.
func WithDefaultOptions(opts *ChatOptions) AgentOption {
	return func(a *Agent) { a.defaultOptions = opts }
}

// WithAgentMiddleware adds [AgentMiddleware] to the agent pipeline.
func WithAgentMiddleware(mws ...AgentMiddleware) AgentOption {
	return func(a *Agent) { a.agentMiddleware = append(a.agentMiddleware, mws...) }
}

// WithChatMiddleware adds [ChatMiddleware] to the chat pipeline.
func WithChatMiddleware(mws ...ChatMiddleware) AgentOption {
	return func(a *Agent) { a.chatMiddleware = append(a.chatMiddleware, mws...) }
}

// WithFunctionMiddleware adds [FunctionMiddleware] to the tool invocation pipeline.
func WithFunctionMiddleware(mws ...FunctionMiddleware) AgentOption {
	return func(a *Agent) { a.functionMiddleware = append(a.functionMiddleware, mws...) }
}

// WithHooks attaches [Hooks] to the agent. Hooks added first run outermost,
// alongside any middleware added before them.
func WithHooks(h Hooks) AgentOption {
	return func(a *Agent) {
		if mw := h.chatMiddleware(); mw != nil {
			a.chatMiddleware = append(a.chatMiddleware, mw)
		}
		if mw := h.functionMiddleware(); mw != nil {
			a.functionMiddleware = append(a.functionMiddleware, mw)
		}
		if h.Name != "" {
			a.hooks = append(a.hooks, h.Name)
		}
	}
}

// WithInvocationConfig overrides the default [InvocationConfig] for the
// function calling loop.
func WithInvocationConfig(cfg InvocationConfig) AgentOption {
	return func(a *Agent) { a.invocationConfig = cfg }
}

// WithLogger sets the logger used by the tool loop. Nil means slog.Default().
func WithLogger(logger *slog.Logger) AgentOption {
	return func(a *Agent) { a.logger = logger }
}

// NewAgent creates an Agent with the given [ChatClient] and options.
func NewAgent(client ChatClient, opts ...AgentOption) *Agent {
	a := &Agent{
		id:               uuid.NewString(),
		client:           client,
		invocationConfig: DefaultInvocationConfig(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	return a
}

// ID returns the agent's unique identifier.
func (a *Agent) ID() string { return a.id }

// Name returns the agent's display name.
func (a *Agent) Name() string { return a.name }

// Description returns the agent's description.
func (a *Agent) Description() string { return a.description }

// Hooks returns the names of the hook sets attached with [WithHooks].
func (a *Agent) Hooks() []string { return append([]string(nil), a.hooks...) }

// RunOption configures a single [Agent.Run] call.
type RunOption func(*runConfig)

type runConfig struct {
	tools   []Tool
	options *ChatOptions
}

// WithRunTools provides per-call tools, added to the agent defaults.
func WithRunTools(tools ...Tool) RunOption {
	return func(c *runConfig) { c.tools = tools }
}

// WithRunOptions provides per-call [ChatOptions] overrides.
func WithRunOptions(opts *ChatOptions) RunOption {
	return func(c *runConfig) { c.options = opts }
}

// Run sends messages to the agent and returns a complete response once every
// tool call requested by the model has been resolved.
func (a *Agent) Run(ctx context.Context, messages []Message, opts ...RunOption) (*AgentResponse, error) {
	cfg := &runConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	handler := chainAgentMiddleware(a.buildHandler(cfg), a.agentMiddleware...)
	return handler(ctx, &AgentRequest{
		Messages: messages,
		Options:  cfg.options,
	})
}

// RunText runs the agent with a single user message.
func (a *Agent) RunText(ctx context.Context, prompt string, opts ...RunOption) (*AgentResponse, error) {
	return a.Run(ctx, []Message{NewUserMessage(prompt)}, opts...)
}

func (a *Agent) prepareChatOptions(override *ChatOptions, runTools []Tool) *ChatOptions {
	opts := MergeChatOptions(a.defaultOptions, override)

	allTools := make([]Tool, 0, len(a.tools)+len(runTools))
	allTools = append(allTools, a.tools...)
	allTools = append(allTools, runTools...)
	if len(allTools) > 0 {
		opts.Tools = allTools
	}

	if a.instructions != "" {
		if opts.Instructions != "" {
			opts.Instructions = a.instructions + "\n" + opts.Instructions
		} else {
			opts.Instructions = a.instructions
		}
	}

	return opts
}

func (a *Agent) buildHandler(cfg *runConfig) AgentHandler {
	return func(ctx context.Context, req *AgentRequest) (*AgentResponse, error) {
		chatOpts := a.prepareChatOptions(req.Options, cfg.tools)
		allMessages := PrependInstructions(req.Messages, chatOpts.Instructions)

		a.logger.DebugContext(ctx, "agent run",
			"agent_id", a.id,
			"agent_name", a.name,
			"message_count", len(allMessages),
			"tool_count", len(chatOpts.Tools),
		)

		chat := chainChatMiddleware(a.client.Response, a.chatMiddleware...)
		res, err := invokeFunctions(ctx, chat, allMessages, chatOpts, a.invocationConfig, a.functionMiddleware, a.logger)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrExecution, err)
		}

		history := make([]Message, 0, len(req.Messages)+len(res.transcript))
		history = append(history, req.Messages...)
		history = append(history, res.transcript...)

		return &AgentResponse{
			Messages:   res.final.Messages,
			History:    history,
			ResponseID: res.final.ResponseID,
			AgentID:    a.id,
			ModelCalls: res.modelCalls,
			Usage:      res.usage,
			Raw:        res.final.Raw,
		}, nil
	}
}
