// Copyright (c) Microsoft. All rights reserved.

package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/microsoft/ghmodels-agents/githubmodels"
	"github.com/microsoft/ghmodels-agents/internal/cli"
	"github.com/microsoft/ghmodels-agents/internal/fakemodel"
)

func call(id, a, b, op string) fakemodel.Call {
	return fakemodel.Call{ID: id, Name: "calculator", Args: `{"a":` + a + `,"b":` + b + `,"operation":"` + op + `"}`}
}

func TestRun(t *testing.T) {
	tp := fakemodel.New(
		fakemodel.ToolCalls(call("c1", "15", "27", "add")),
		fakemodel.Text("15 + 27 = 42"),
		fakemodel.ToolCalls(call("c2", "8", "12", "multiply")),
		fakemodel.Text("96"),
		fakemodel.ToolCalls(call("c3", "100", "4", "divide")),
		fakemodel.Text("25"),
		fakemodel.ToolCalls(call("c4", "50", "19", "subtract")),
		fakemodel.Text("31"),
		fakemodel.ToolCalls(call("c5", "15", "5", "add")),
		fakemodel.ToolCalls(call("c6", "20", "3", "multiply")),
		fakemodel.Text("O resultado final é 60."),
	)
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	env := &cli.Env{
		Config: githubmodels.Config{Token: "ghp_test", HTTPClient: tp.Client(), Logger: logger},
		Model:  githubmodels.DefaultModel,
		Logger: logger,
		Out:    &out,
		Err:    io.Discard,
	}

	if err := run(context.Background(), nil, env, nil); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"-- Exemplo 1: Adição --",
		"Parâmetros: a=15, b=27, operation=add",
		"Resultado...: 42",
		"Resposta...:  O resultado final é 60.",
		"Total de mensagens no último teste....: 6",
		"  1. UserMessage: Calcule (15 + 5) e depois multiplique por 3...",
		"  2. AssistantMessage: [tool call]...",
		"  3. ToolMessage: O resultado de add entre 15 e 5 é 20....",
		"  6. AssistantMessage: O resultado final é 60....",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	reqs := tp.Requests()
	if len(reqs) != 11 {
		t.Fatalf("requests = %d, want 11", len(reqs))
	}
	if reqs[0].Body["max_tokens"] != float64(500) {
		t.Errorf("max_tokens = %v", reqs[0].Body["max_tokens"])
	}
	tools, _ := reqs[0].Body["tools"].([]any)
	if len(tools) != 1 {
		t.Fatalf("tools = %v", reqs[0].Body["tools"])
	}
	// The tool result goes back to the model on the following request.
	msgs := reqs[1].Body["messages"].([]any)
	lastMsg := msgs[len(msgs)-1].(map[string]any)
	if lastMsg["role"] != "tool" || lastMsg["tool_call_id"] != "c1" {
		t.Errorf("tool message = %v", lastMsg)
	}
}
