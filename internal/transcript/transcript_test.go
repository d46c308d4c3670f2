// Copyright (c) Microsoft. All rights reserved.

package transcript_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	af "github.com/microsoft/ghmodels-agents/agentframework"
	"github.com/microsoft/ghmodels-agents/internal/transcript"
)

func toolCallMessage(names ...string) af.Message {
	m := af.Message{Role: af.RoleAssistant}
	for i, n := range names {
		m.Contents = append(m.Contents, &af.FunctionCallContent{
			CallID:    "call_" + string(rune('a'+i)),
			Name:      n,
			Arguments: `{}`,
		})
	}
	return m
}

func sampleHistory() []af.Message {
	return []af.Message{
		af.NewUserMessage("O que posso fazer hoje no Rio de Janeiro e que roupa devo usar?"),
		toolCallMessage("getWeather"),
		af.NewToolMessage("call_a", "Rio de Janeiro: 32°C, Parcialmente nublado"),
		toolCallMessage("suggestClothing", "suggestActivity"),
		af.NewToolMessage("call_a", "Vista roupas leves e frescas"),
		af.NewToolMessage("call_b", "Bom dia para atividades indoor"),
		af.NewAssistantMessage("Hoje no Rio faz 32°C."),
	}
}

func TestWriteHistory(t *testing.T) {
	var buf bytes.Buffer
	transcript.WriteHistory(&buf, sampleHistory()[:3])

	want := strings.Join([]string{
		"  1. UserMessage: O que posso fazer hoje no Rio de Janeiro e que rou...",
		"  2. AssistantMessage: [tool call]...",
		"  3. ToolMessage: Rio de Janeiro: 32°C, Parcialmente nublado...",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteFlow(t *testing.T) {
	var buf bytes.Buffer
	transcript.WriteFlow(&buf, sampleHistory())

	want := strings.Join([]string{
		"  1. Usuário: O que posso fazer hoje no Rio de Janeiro e que rou...",
		"  2. AI decidiu chamar: getWeather",
		"  3. Tool resultado",
		"  4. AI decidiu chamar: suggestClothing, suggestActivity",
		"  5. Tool resultado",
		"  6. Tool resultado",
		"  7. AI resposta final",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("flow mismatch (-want +got):\n%s", diff)
	}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name string
		msg  af.Message
		n    int
		want string
	}{
		{"short text", af.NewUserMessage("oi"), transcript.PreviewLen, "oi"},
		{"multibyte truncation", af.NewUserMessage(strings.Repeat("ã", 60)), 10, strings.Repeat("ã", 10)},
		{"tool call only", toolCallMessage("calculator"), transcript.PreviewLen, "[tool call]"},
		{"structured result", af.NewToolMessage("c1", map[string]int{"n": 1}), transcript.PreviewLen, `{"n":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := transcript.Preview(tt.msg, tt.n); got != tt.want {
				t.Errorf("Preview = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	resp := &af.AgentResponse{
		History:    sampleHistory(),
		ModelCalls: 3,
		Usage:      af.UsageDetails{TotalTokens: 42},
	}
	got := transcript.Summarize(resp)
	want := transcript.Summary{
		Messages:   7,
		ModelCalls: 3,
		ToolCalls:  3,
		LastRole:   af.RoleAssistant,
		TextOutput: true,
		Usage:      af.UsageDetails{TotalTokens: 42},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarize_EmptyHistory(t *testing.T) {
	got := transcript.Summarize(&af.AgentResponse{})
	if got.Messages != 0 || got.LastRole != "" {
		t.Errorf("summary = %+v", got)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := transcript.WriteJSON(&buf, sampleHistory()[:2]); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var decoded []af.Message
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output does not decode: %v", err)
	}
	if len(decoded) != 2 || decoded[0].Text() != sampleHistory()[0].Text() {
		t.Errorf("decoded = %+v", decoded)
	}
	if !decoded[1].HasFunctionCalls() {
		t.Error("tool call lost in JSON round trip")
	}
}
