// Copyright (c) Microsoft. All rights reserved.

// Command hello runs an agent without tools to show that every run starts
// from an empty context: the agent only knows what it is sent.
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	af "github.com/microsoft/ghmodels-agents/agentframework"
	"github.com/microsoft/ghmodels-agents/githubmodels"
	"github.com/microsoft/ghmodels-agents/internal/cli"
	"github.com/microsoft/ghmodels-agents/internal/transcript"
)

const instructions = `Você é um assistente prestativo e educado que responde em português brasileiro.
Seja direto, claro e amigável nas suas respostas.`

var stream bool

func main() {
	cli.Main(cli.Sample{
		Use:          "hello",
		Short:        "Hello agent without tools",
		DefaultModel: githubmodels.DefaultModel,
		Flags: func(cmd *cobra.Command) {
			cmd.Flags().BoolVar(&stream, "stream", false, "Request streamed completions.")
		},
		Run: run,
	})
}

func newAgent(env *cli.Env) (*af.Agent, error) {
	client, err := githubmodels.NewTunedClient(env.Config, env.Model, githubmodels.Tuning{
		Temperature: af.Ptr(0.3),
		MaxTokens:   af.Ptr(500),
		Streaming:   af.Ptr(stream),
	})
	if err != nil {
		return nil, err
	}
	return af.NewAgent(client,
		af.WithName("hello-agent"),
		af.WithInstructions(instructions),
		af.WithAgentMiddleware(af.LoggingMiddleware(env.Logger)),
		af.WithLogger(env.Logger),
	), nil
}

func run(ctx context.Context, _ *cobra.Command, env *cli.Env, _ []string) error {
	fmt.Fprintln(env.Out, " Módulo 1: Hello Agent")
	fmt.Fprintln(env.Out, strings.Repeat("-", 60))

	agent, err := newAgent(env)
	if err != nil {
		return err
	}

	prompts := [][]string{
		{"Qual é a capital do Japão?"},
		{"Me dê 3 curiosidades sobre Tóquio"},
		{"Meu nome é Glaucia"},
		// The agent has no memory, so the context travels with the request.
		{"Meu nome é Glaucia", "Qual é o meu nome?"},
	}

	var last *af.AgentResponse
	for _, p := range prompts {
		msgs := make([]af.Message, len(p))
		for i, text := range p {
			msgs[i] = af.NewUserMessage(text)
		}
		resp, err := agent.Run(ctx, msgs)
		if err != nil {
			return err
		}
		fmt.Fprintln(env.Out, "Resposta...: ", resp.Text())
		last = resp
	}

	s := transcript.Summarize(last)
	fmt.Fprintln(env.Out, "Informações:")
	fmt.Fprintf(env.Out, "Total de mensagens...:  %d\n", s.Messages)
	fmt.Fprintf(env.Out, "Tipo da última mensagem...: %s\n", transcript.Label(*last.LastMessage()))
	fmt.Fprintf(env.Out, "Chamadas ao modelo...: %d\n", s.ModelCalls)
	if s.Usage.TotalTokens > 0 {
		fmt.Fprintf(env.Out, "Tokens...: %d\n", s.Usage.TotalTokens)
	}
	return nil
}
