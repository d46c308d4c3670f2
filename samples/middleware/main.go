// Copyright (c) Microsoft. All rights reserved.

// Command middleware attaches a logging hook set to an agent and shows when
// each hook fires: before and after every model call and around every tool
// call.
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	af "github.com/microsoft/ghmodels-agents/agentframework"
	"github.com/microsoft/ghmodels-agents/githubmodels"
	"github.com/microsoft/ghmodels-agents/internal/cli"
)

const instructions = `Você é um assistente matemático prestativo.
Use a ferramenta 'calculator' quando precisar fazer cálculos.
Sempre explique o resultado de forma clara.`

var rule = strings.Repeat("=", 60)

type scenario struct {
	title    string
	question string
}

var scenarios = []scenario{
	{"Soma", "Quanto é 15 + 27?"},
	{"Pergunta sem cálculo", "Olá, tudo bem?"},
	{"Múltiplas operações", "Calcule 10 * 5 e depois divida por 2"},
}

func main() {
	cli.Main(cli.Sample{
		Use:          "middleware",
		Short:        "Agent with before/after model and tool call hooks",
		DefaultModel: githubmodels.DefaultModel,
		Run:          run,
	})
}

func run(ctx context.Context, _ *cobra.Command, env *cli.Env, _ []string) error {
	fmt.Fprintln(env.Out, "Módulo 3: Middleware Simples")
	fmt.Fprintln(env.Out, "Demonstração dos 3 hooks principais")
	fmt.Fprintln(env.Out)
	fmt.Fprintln(env.Out, rule)

	client, err := githubmodels.NewTunedClient(env.Config, env.Model, githubmodels.Tuning{
		Temperature: af.Ptr(0.3),
		MaxTokens:   af.Ptr(800),
	})
	if err != nil {
		return err
	}
	agent := af.NewAgent(client,
		af.WithName("middleware-agent"),
		af.WithInstructions(instructions),
		af.WithTools(calculatorTool()),
		af.WithHooks(simpleLogger(env.Out)),
		af.WithAgentMiddleware(af.LoggingMiddleware(env.Logger)),
		af.WithLogger(env.Logger),
		af.WithInvocationConfig(af.InvocationConfig{IncludeDetailedErrors: true}),
	)
	env.Logger.Debug("agent ready", "agent", agent.Name(), "hooks", agent.Hooks())

	for i, sc := range scenarios {
		if i > 0 {
			fmt.Fprintln(env.Out, "\n\n"+rule)
			fmt.Fprintf(env.Out, "\nTESTE %d: %s\n", i+1, sc.title)
		} else {
			fmt.Fprintf(env.Out, "\n\nTESTE %d: %s\n", i+1, sc.title)
		}
		fmt.Fprintf(env.Out, "Pergunta: %q\n\n", sc.question)

		resp, err := agent.RunText(ctx, sc.question)
		if err != nil {
			return err
		}
		fmt.Fprintln(env.Out, "\nResposta final:", resp.Text())
	}
	return nil
}
