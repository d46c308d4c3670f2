// Copyright (c) Microsoft. All rights reserved.

package openai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	af "github.com/microsoft/ghmodels-agents/agentframework"
)

func TestFoldSSEStream_ToolCallDeltas(t *testing.T) {
	stream := strings.Join([]string{
		`data: {"id":"c1","choices":[{"index":0,"delta":{"role":"assistant","tool_calls":[{"index":0,"id":"call_a","type":"function","function":{"name":"calculator","arguments":""}}]}}]}`,
		`data: {"id":"c1","choices":[{"index":0,"delta":{"tool_calls":[{"index":0,"function":{"arguments":"{\"operation\":"}}]}}]}`,
		`data: {"id":"c1","choices":[{"index":0,"delta":{"tool_calls":[{"index":1,"id":"call_b","type":"function","function":{"name":"getWeather","arguments":"{\"city\":\"Curitiba\"}"}}]}}]}`,
		`data: {"id":"c1","choices":[{"index":0,"delta":{"tool_calls":[{"index":0,"function":{"arguments":"\"add\",\"a\":1,\"b\":2}"}}]}}]}`,
		`: keep-alive`,
		`data: not json`,
		`data: {"id":"c1","choices":[{"index":0,"delta":{},"finish_reason":"tool_calls"}]}`,
		`data: [DONE]`,
	}, "\n")

	resp, err := foldSSEStream(context.Background(), strings.NewReader(stream))
	if err != nil {
		t.Fatalf("fold: %v", err)
	}

	want := []*af.FunctionCallContent{
		{CallID: "call_a", Name: "calculator", Arguments: `{"operation":"add","a":1,"b":2}`},
		{CallID: "call_b", Name: "getWeather", Arguments: `{"city":"Curitiba"}`},
	}
	if diff := cmp.Diff(want, resp.Messages[0].FunctionCalls(), cmpopts.IgnoreUnexported(af.FunctionCallContent{})); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
	if resp.FinishReason != af.FinishReasonToolCalls {
		t.Errorf("FinishReason = %q", resp.FinishReason)
	}
	if resp.ResponseID != "c1" {
		t.Errorf("ResponseID = %q", resp.ResponseID)
	}
}

func TestFoldSSEStream_Empty(t *testing.T) {
	_, err := foldSSEStream(context.Background(), strings.NewReader("data: [DONE]\n"))
	if !errors.Is(err, af.ErrInvalidResponse) {
		t.Errorf("error = %v, want ErrInvalidResponse", err)
	}
}

func TestFoldSSEStream_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := foldSSEStream(ctx, strings.NewReader(`data: {"id":"x","choices":[]}`+"\n"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestConvertMessages(t *testing.T) {
	got := convertMessages([]af.Message{
		af.NewSystemMessage("sys"),
		af.NewAssistantMessage("hi"),
		af.NewToolMessage("c1", "plain"),
	})

	if len(got) != 3 {
		t.Fatalf("len = %d", len(got))
	}
	if got[0].Role != "system" || *got[0].Content != "sys" {
		t.Errorf("system = %+v", got[0])
	}
	if *got[1].Content != "hi" || got[1].ToolCalls != nil {
		t.Errorf("assistant = %+v", got[1])
	}
	if got[2].ToolCallID != "c1" || *got[2].Content != "plain" {
		t.Errorf("tool = %+v", got[2])
	}
}
