// Copyright (c) Microsoft. All rights reserved.

package agentframework

import "strings"

// ChatResponse is the complete response from a [ChatClient].
type ChatResponse struct {
	Messages     []Message
	ResponseID   string
	ModelID      string
	FinishReason FinishReason
	Usage        UsageDetails
	Raw          any
}

// Text returns the concatenated text of all messages in this response.
func (r *ChatResponse) Text() string {
	var b strings.Builder
	for i := range r.Messages {
		b.WriteString(r.Messages[i].Text())
	}
	return b.String()
}

// AgentResponse is the complete response from an [Agent] run.
type AgentResponse struct {
	// Messages holds the final model turn.
	Messages []Message

	// History holds the whole run in order: the caller's input, every
	// assistant message that requested tools, every tool result and the
	// final answer. The system message built from instructions is not
	// included.
	History []Message

	ResponseID string
	AgentID    string
	// ModelCalls counts the round trips to the model made by this run.
	ModelCalls int
	Usage      UsageDetails
	Raw        any
}

// Text returns the concatenated text of the final model turn.
func (r *AgentResponse) Text() string {
	var b strings.Builder
	for i := range r.Messages {
		b.WriteString(r.Messages[i].Text())
	}
	return b.String()
}

// LastMessage returns the last message of the run history, or nil when the
// history is empty.
func (r *AgentResponse) LastMessage() *Message {
	if len(r.History) == 0 {
		return nil
	}
	return &r.History[len(r.History)-1]
}

// ToolCalls returns every tool call made during the run, in order.
func (r *AgentResponse) ToolCalls() []*FunctionCallContent {
	var calls []*FunctionCallContent
	for i := range r.History {
		calls = append(calls, r.History[i].FunctionCalls()...)
	}
	return calls
}
