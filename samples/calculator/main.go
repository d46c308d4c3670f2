// Copyright (c) Microsoft. All rights reserved.

// Command calculator runs an agent with a calculator tool and prints the
// message history of its last run.
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

const instructions = `Você é um assistente matemático prestativo. Quando o usuário pedir cálculos, use a ferramenta 'calculator'
disponível. Sempre explique o resultado de forma clara e amigável.`

type example struct {
	title  string
	prompt string
}

var examples = []example{
	{"Adição", "Qual é a soma de 15 e 27?"},
	{"Multiplicação", "Quanto é 8 multiplicado por 12?"},
	{"Divisão", "Divida 100 por 4, por favor."},
	{"Subtração", "Qual é a diferença entre 50 e 19?"},
	{"Múltiplas operações", "Calcule (15 + 5) e depois multiplique por 3"},
}

func main() {
	cli.Main(cli.Sample{
		Use:          "calculator",
		Short:        "Agent with a calculator tool",
		DefaultModel: githubmodels.DefaultModel,
		Run:          run,
	})
}

func run(ctx context.Context, _ *cobra.Command, env *cli.Env, _ []string) error {
	fmt.Fprintln(env.Out, " Módulo 2: Calculator Agent com Tools")
	fmt.Fprintln(env.Out, strings.Repeat("-", 60))

	client, err := githubmodels.NewTunedClient(env.Config, env.Model, githubmodels.Tuning{
		Temperature: af.Ptr(0.3),
		MaxTokens:   af.Ptr(500),
	})
	if err != nil {
		return err
	}
	agent := af.NewAgent(client,
		af.WithName("calculator-agent"),
		af.WithInstructions(instructions),
		af.WithTools(newCalculator(env.Out)),
		af.WithAgentMiddleware(af.LoggingMiddleware(env.Logger)),
		af.WithLogger(env.Logger),
	)

	var last *af.AgentResponse
	for i, ex := range examples {
		fmt.Fprintf(env.Out, "\n-- Exemplo %d: %s --\n", i+1, ex.title)
		resp, err := agent.RunText(ctx, ex.prompt)
		if err != nil {
			return err
		}
		fmt.Fprintln(env.Out, "Resposta...: ", resp.Text())
		last = resp
	}

	fmt.Fprintln(env.Out, "\n Análise:")
	fmt.Fprintf(env.Out, "Total de mensagens no último teste....: %d\n", len(last.History))
	fmt.Fprintln(env.Out, "\n Histórico de mensagens:")
	transcript.WriteHistory(env.Out, last.History)
	return nil
}
