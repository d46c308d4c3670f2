// Copyright (c) Microsoft. All rights reserved.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	af "github.com/microsoft/ghmodels-agents/agentframework"
	"github.com/microsoft/ghmodels-agents/githubmodels"
	"github.com/microsoft/ghmodels-agents/internal/cli"
	"github.com/microsoft/ghmodels-agents/internal/fakemodel"
)

func TestCalculatorTool(t *testing.T) {
	tests := []struct {
		args string
		want string
	}{
		{`{"a":15,"b":27,"operation":"add"}`, "Resultado: 15 add 27 = 42"},
		{`{"a":10,"b":5,"operation":"multiply"}`, "Resultado: 10 multiply 5 = 50"},
		{`{"a":50,"b":2,"operation":"divide"}`, "Resultado: 50 divide 2 = 25"},
		{`{"a":1,"b":0,"operation":"divide"}`, "Resultado: 1 divide 0 = NaN"},
		{`{"a":3,"b":5,"operation":"subtract"}`, "Resultado: 3 subtract 5 = -2"},
	}
	for _, tt := range tests {
		got, err := calculatorTool().Invoke(context.Background(), json.RawMessage(tt.args))
		if err != nil {
			t.Fatalf("Invoke(%s): %v", tt.args, err)
		}
		if got != tt.want {
			t.Errorf("Invoke(%s) = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestCalculatorTool_UnknownOperation(t *testing.T) {
	_, err := calculatorTool().Invoke(context.Background(), json.RawMessage(`{"a":1,"b":2,"operation":"pow"}`))
	if !errors.Is(err, af.ErrToolExecution) {
		t.Fatalf("err = %v, want ErrToolExecution", err)
	}
}

func TestSimpleLogger(t *testing.T) {
	var out bytes.Buffer
	h := simpleLogger(&out)
	if h.Name != "simple-logger" {
		t.Errorf("name = %q", h.Name)
	}

	h.BeforeModel(context.Background(), []af.Message{
		af.NewSystemMessage("sys"),
		af.NewUserMessage("Quanto é 15 + 27?"),
	})
	h.AfterModel(context.Background(), &af.ChatResponse{Messages: []af.Message{{
		Role:     af.RoleAssistant,
		Contents: af.Contents{&af.FunctionCallContent{CallID: "c1", Name: "calculator"}},
	}}})
	res, err := h.WrapToolCall(context.Background(), calculatorTool(),
		json.RawMessage(`{"a":15,"b":27,"operation":"add"}`),
		func(ctx context.Context, tool af.Tool, args json.RawMessage) (any, error) {
			return tool.Invoke(ctx, args)
		})
	if err != nil {
		t.Fatalf("WrapToolCall: %v", err)
	}
	if res != "Resultado: 15 add 27 = 42" {
		t.Errorf("result = %v", res)
	}

	got := out.String()
	for _, want := range []string{
		"[BEFORE MODEL]\nMensagens no contexto: 2\nÚltima mensagem: \"Quanto é 15 + 27?\"",
		"[AFTER MODEL]\nResposta recebida do LLM\nChamou ferramentas? Sim",
		"[TOOL CALL]\nFerramenta: calculator\nArgumentos: {\"a\":15,\"b\":27,\"operation\":\"add\"}\nResultado: Resultado: 15 add 27 = 42",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRun(t *testing.T) {
	tp := fakemodel.New(
		fakemodel.ToolCalls(fakemodel.Call{ID: "c1", Name: "calculator", Args: `{"a":15,"b":27,"operation":"add"}`}),
		fakemodel.Text("15 + 27 = 42"),
		fakemodel.Text("Tudo bem!"),
		fakemodel.ToolCalls(fakemodel.Call{ID: "c2", Name: "calculator", Args: `{"a":10,"b":5,"operation":"multiply"}`}),
		fakemodel.ToolCalls(fakemodel.Call{ID: "c3", Name: "calculator", Args: `{"a":50,"b":2,"operation":"divide"}`}),
		fakemodel.Text("O resultado é 25."),
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
	if n := strings.Count(got, "[BEFORE MODEL]"); n != 6 {
		t.Errorf("before-model hooks = %d, want 6", n)
	}
	if n := strings.Count(got, "[AFTER MODEL]"); n != 6 {
		t.Errorf("after-model hooks = %d, want 6", n)
	}
	if n := strings.Count(got, "[TOOL CALL]"); n != 3 {
		t.Errorf("tool-call hooks = %d, want 3", n)
	}
	if n := strings.Count(got, "Chamou ferramentas? Não"); n != 3 {
		t.Errorf("final answers = %d, want 3", n)
	}
	for _, want := range []string{
		"TESTE 2: Pergunta sem cálculo",
		"Resposta final: Tudo bem!",
		"Resultado: Resultado: 50 divide 2 = 25",
		"Resposta final: O resultado é 25.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	if reqs := tp.Requests(); reqs[0].Body["max_tokens"] != float64(800) {
		t.Errorf("max_tokens = %v", reqs[0].Body["max_tokens"])
	}
}
