// Copyright (c) Microsoft. All rights reserved.

package openai

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	af "github.com/microsoft/ghmodels-agents/agentframework"
)

// chatCompletionResponse is the Chat Completions API response.
type chatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []choice `json:"choices"`
	Usage   *usage   `json:"usage,omitempty"`
}

type choice struct {
	Index        int         `json:"index"`
	Message      respMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type respMessage struct {
	Role      string     `json:"role"`
	Content   *string    `json:"content"`
	ToolCalls []toolCall `json:"tool_calls,omitempty"`
}

type usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// chatCompletionChunk is a single SSE chunk in streaming mode.
type chatCompletionChunk struct {
	ID      string        `json:"id"`
	Object  string        `json:"object"`
	Created int64         `json:"created"`
	Model   string        `json:"model"`
	Choices []chunkChoice `json:"choices"`
	Usage   *usage        `json:"usage,omitempty"`
}

type chunkChoice struct {
	Index        int        `json:"index"`
	Delta        chunkDelta `json:"delta"`
	FinishReason *string    `json:"finish_reason"`
}

type chunkDelta struct {
	Role      string     `json:"role,omitempty"`
	Content   *string    `json:"content,omitempty"`
	ToolCalls []toolCall `json:"tool_calls,omitempty"`
}

// parseChatResponse converts the API response into framework types.
func parseChatResponse(raw *chatCompletionResponse) *af.ChatResponse {
	resp := &af.ChatResponse{
		ResponseID: raw.ID,
		ModelID:    raw.Model,
		Usage:      convertUsage(raw.Usage),
	}

	if len(raw.Choices) > 0 {
		c := raw.Choices[0]
		resp.FinishReason = mapFinishReason(c.FinishReason)

		role := af.Role(c.Message.Role)
		if role == "" {
			role = af.RoleAssistant
		}
		msg := af.Message{Role: role}

		if c.Message.Content != nil && *c.Message.Content != "" {
			msg.Contents = append(msg.Contents, &af.TextContent{Text: *c.Message.Content})
		}

		for _, tc := range c.Message.ToolCalls {
			msg.Contents = append(msg.Contents, &af.FunctionCallContent{
				CallID:    tc.ID,
				Name:      tc.Function.Name,
				Arguments: tc.Function.Arguments,
			})
		}

		resp.Messages = []af.Message{msg}
	}

	return resp
}

// unmarshalChatResponse parses the JSON response body.
func unmarshalChatResponse(data []byte) (*chatCompletionResponse, error) {
	var resp chatCompletionResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// streamFold accumulates SSE chunks of the first choice into one response.
type streamFold struct {
	id           string
	model        string
	role         af.Role
	text         strings.Builder
	calls        map[int]*toolCall
	finishReason string
	usage        *usage
	chunks       int
}

func (f *streamFold) add(chunk *chatCompletionChunk) {
	f.chunks++
	if chunk.ID != "" {
		f.id = chunk.ID
	}
	if chunk.Model != "" {
		f.model = chunk.Model
	}
	if chunk.Usage != nil {
		f.usage = chunk.Usage
	}
	for _, c := range chunk.Choices {
		if c.Index != 0 {
			continue
		}
		if c.Delta.Role != "" {
			f.role = af.Role(c.Delta.Role)
		}
		if c.Delta.Content != nil {
			f.text.WriteString(*c.Delta.Content)
		}
		if c.FinishReason != nil && *c.FinishReason != "" {
			f.finishReason = *c.FinishReason
		}
		for i, d := range c.Delta.ToolCalls {
			idx := i
			if d.Index != nil {
				idx = *d.Index
			}
			if f.calls == nil {
				f.calls = make(map[int]*toolCall)
			}
			tc, ok := f.calls[idx]
			if !ok {
				tc = &toolCall{}
				f.calls[idx] = tc
			}
			if d.ID != "" {
				tc.ID = d.ID
			}
			if d.Function.Name != "" {
				tc.Function.Name = d.Function.Name
			}
			tc.Function.Arguments += d.Function.Arguments
		}
	}
}

func (f *streamFold) response() *af.ChatResponse {
	resp := &af.ChatResponse{
		ResponseID:   f.id,
		ModelID:      f.model,
		FinishReason: mapFinishReason(f.finishReason),
		Usage:        convertUsage(f.usage),
	}

	role := f.role
	if role == "" {
		role = af.RoleAssistant
	}
	msg := af.Message{Role: role}
	if f.text.Len() > 0 {
		msg.Contents = append(msg.Contents, &af.TextContent{Text: f.text.String()})
	}

	indexes := make([]int, 0, len(f.calls))
	for idx := range f.calls {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)
	for _, idx := range indexes {
		tc := f.calls[idx]
		msg.Contents = append(msg.Contents, &af.FunctionCallContent{
			CallID:    tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}

	resp.Messages = []af.Message{msg}
	return resp
}

// foldSSEStream reads server-sent events from r until [DONE] or EOF and
// folds them into a single response.
func foldSSEStream(ctx context.Context, r io.Reader) (*af.ChatResponse, error) {
	scanner := bufio.NewScanner(r)
	// Allow large SSE lines (some responses can be substantial).
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	fold := &streamFold{}
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, ok := strings.CutPrefix(scanner.Text(), "data:")
		if !ok {
			continue
		}
		data = strings.TrimSpace(data)

		if data == "[DONE]" {
			break
		}

		var chunk chatCompletionChunk
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			// Skip malformed chunks rather than aborting.
			continue
		}
		fold.add(&chunk)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: read SSE stream: %v", af.ErrService, err)
	}
	if fold.chunks == 0 {
		return nil, fmt.Errorf("%w: stream ended without data", af.ErrInvalidResponse)
	}

	return fold.response(), nil
}

func convertUsage(u *usage) af.UsageDetails {
	if u == nil {
		return af.UsageDetails{}
	}
	return af.UsageDetails{
		InputTokens:  u.PromptTokens,
		OutputTokens: u.CompletionTokens,
		TotalTokens:  u.TotalTokens,
	}
}

func mapFinishReason(s string) af.FinishReason {
	switch s {
	case "stop":
		return af.FinishReasonStop
	case "length":
		return af.FinishReasonLength
	case "tool_calls":
		return af.FinishReasonToolCalls
	case "content_filter":
		return af.FinishReasonContentFilter
	default:
		return af.FinishReason(s)
	}
}
