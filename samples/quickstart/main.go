// Copyright (c) Microsoft. All rights reserved.

// Command quickstart checks the GitHub Models token and sends one question.
//
// Usage:
//
//	export GITHUB_MODELS_TOKEN=ghp_...
//	go run ./samples/quickstart "Qual é a capital da França?"
//
// Without arguments the question is read from standard input.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	oai "github.com/openai/openai-go/v3"
	"github.com/spf13/cobra"

	"github.com/microsoft/ghmodels-agents/githubmodels"
	"github.com/microsoft/ghmodels-agents/internal/cli"
)

const (
	defaultQuestion = "Diga apenas: funcionando!"
	maxTokens       = 100
)

func main() {
	cli.Main(cli.Sample{
		Use:          "quickstart [pergunta...]",
		Short:        "Quick connectivity test against GitHub Models",
		DefaultModel: githubmodels.DefaultModel,
		Args:         cobra.ArbitraryArgs,
		Run:          run,
		ErrorHint:    "Consulte as instruções de acesso ao GitHub Models Preview.",
	})
}

func run(ctx context.Context, _ *cobra.Command, env *cli.Env, args []string) error {
	fmt.Fprintf(env.Out, "Teste rápido com GitHub Models (%s)\n\n", env.Model)

	question, err := askQuestion(env.In, env.Out, args)
	if err != nil {
		return err
	}
	fmt.Fprintf(env.Out, "Pergunta: %s\n\n", question)

	if !githubmodels.ValidToken(ctx, env.Config) {
		fmt.Fprintln(env.Err, "Token inválido ou problema de conexão")
		return nil
	}

	client, err := githubmodels.NewBasicClient(env.Config, env.Model)
	if err != nil {
		return err
	}
	resp, err := client.Chat.Completions.New(ctx, oai.ChatCompletionNewParams{
		Model:     env.Model,
		Messages:  []oai.ChatCompletionMessageParamUnion{oai.UserMessage(question)},
		MaxTokens: oai.Int(maxTokens),
	})
	if err != nil {
		return fmt.Errorf("chat completion: %w", err)
	}

	fmt.Fprintln(env.Out, "Resposta:")
	if len(resp.Choices) > 0 {
		fmt.Fprintln(env.Out, resp.Choices[0].Message.Content)
	}
	githubmodels.PrintRateLimitNotice(env.Out)
	return nil
}

// askQuestion joins args, or prompts on in when there are none.
func askQuestion(in io.Reader, out io.Writer, args []string) (string, error) {
	if q := strings.TrimSpace(strings.Join(args, " ")); q != "" {
		return q, nil
	}

	fmt.Fprint(out, "Pergunta para o modelo: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read question: %w", err)
	}
	if q := strings.TrimSpace(line); q != "" {
		return q, nil
	}
	return defaultQuestion, nil
}
