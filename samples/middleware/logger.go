// Copyright (c) Microsoft. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	af "github.com/microsoft/ghmodels-agents/agentframework"
)

// simpleLogger prints every model call and tool call of a run to out.
func simpleLogger(out io.Writer) af.Hooks {
	return af.Hooks{
		Name: "simple-logger",

		BeforeModel: func(ctx context.Context, messages []af.Message) {
			fmt.Fprintln(out, "\n[BEFORE MODEL]")
			fmt.Fprintf(out, "Mensagens no contexto: %d\n", len(messages))
			if n := len(messages); n > 0 {
				fmt.Fprintf(out, "Última mensagem: %q\n", lastContent(messages[n-1]))
			}
		},

		AfterModel: func(ctx context.Context, resp *af.ChatResponse) {
			fmt.Fprintln(out, "\n[AFTER MODEL]")
			fmt.Fprintln(out, "Resposta recebida do LLM")
			called := "Não"
			for i := range resp.Messages {
				if resp.Messages[i].HasFunctionCalls() {
					called = "Sim"
					break
				}
			}
			fmt.Fprintf(out, "Chamou ferramentas? %s\n", called)
		},

		WrapToolCall: func(ctx context.Context, tool af.Tool, args json.RawMessage, next af.FunctionHandler) (any, error) {
			fmt.Fprintln(out, "\n[TOOL CALL]")
			fmt.Fprintf(out, "Ferramenta: %s\n", tool.Name())
			fmt.Fprintf(out, "Argumentos: %s\n", args)

			result, err := next(ctx, tool, args)
			if err != nil {
				fmt.Fprintf(out, "Erro: %v\n", err)
				return nil, err
			}
			fmt.Fprintf(out, "Resultado: %v\n", result)
			return result, nil
		},
	}
}

// lastContent renders the text of m, or its tool result when it has no text.
func lastContent(m af.Message) string {
	if text := m.Text(); text != "" {
		return text
	}
	for _, c := range m.Contents {
		if r, ok := c.(*af.FunctionResultContent); ok {
			return fmt.Sprint(r.Result)
		}
	}
	return ""
}
