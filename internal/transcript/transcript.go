// Copyright (c) Microsoft. All rights reserved.

// Package transcript prints summaries of agent runs for the samples.
package transcript

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	af "github.com/microsoft/ghmodels-agents/agentframework"
)

// PreviewLen is the number of characters of message text shown by
// [WriteHistory].
const PreviewLen = 50

// Summary describes one agent run.
type Summary struct {
	Messages   int
	ModelCalls int
	ToolCalls  int
	LastRole   af.Role
	TextOutput bool
	Usage      af.UsageDetails
}

// Summarize computes the [Summary] of resp.
func Summarize(resp *af.AgentResponse) Summary {
	s := Summary{
		Messages:   len(resp.History),
		ModelCalls: resp.ModelCalls,
		ToolCalls:  len(resp.ToolCalls()),
		Usage:      resp.Usage,
	}
	if last := resp.LastMessage(); last != nil {
		s.LastRole = last.Role
		s.TextOutput = last.Text() != ""
	}
	return s
}

// Label names the kind of message m.
func Label(m af.Message) string {
	switch m.Role {
	case af.RoleUser:
		return "UserMessage"
	case af.RoleAssistant:
		return "AssistantMessage"
	case af.RoleTool:
		return "ToolMessage"
	case af.RoleSystem:
		return "SystemMessage"
	default:
		return string(m.Role)
	}
}

// Preview returns the first n characters of the message content. Assistant
// turns carrying only tool calls render as "[tool call]".
func Preview(m af.Message, n int) string {
	text := m.Text()
	if text == "" {
		for _, c := range m.Contents {
			if r, ok := c.(*af.FunctionResultContent); ok {
				text = resultString(r.Result)
				break
			}
		}
	}
	if text == "" && m.HasFunctionCalls() {
		return "[tool call]"
	}
	return truncate(text, n)
}

// WriteHistory prints one numbered line per message.
func WriteHistory(w io.Writer, history []af.Message) {
	for i, m := range history {
		fmt.Fprintf(w, "  %d. %s: %s...\n", i+1, Label(m), Preview(m, PreviewLen))
	}
}

// WriteFlow prints the execution flow of a run: who spoke at each step and
// which tools the model decided to call.
func WriteFlow(w io.Writer, history []af.Message) {
	for i, m := range history {
		switch m.Role {
		case af.RoleUser:
			fmt.Fprintf(w, "  %d. Usuário: %s...\n", i+1, truncate(m.Text(), PreviewLen))
		case af.RoleAssistant:
			if calls := m.FunctionCalls(); len(calls) > 0 {
				names := make([]string, len(calls))
				for j, c := range calls {
					names[j] = c.Name
				}
				fmt.Fprintf(w, "  %d. AI decidiu chamar: %s\n", i+1, strings.Join(names, ", "))
			} else {
				fmt.Fprintf(w, "  %d. AI resposta final\n", i+1)
			}
		case af.RoleTool:
			fmt.Fprintf(w, "  %d. Tool resultado\n", i+1)
		}
	}
}

// WriteJSON writes history as indented JSON.
func WriteJSON(w io.Writer, history []af.Message) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(history)
}

func resultString(v any) string {
	switch r := v.(type) {
	case nil:
		return ""
	case string:
		return r
	default:
		b, err := json.Marshal(r)
		if err != nil {
			return fmt.Sprint(r)
		}
		return string(b)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
