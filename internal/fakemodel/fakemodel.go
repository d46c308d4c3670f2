// Copyright (c) Microsoft. All rights reserved.

// Package fakemodel provides a scripted chat-completions endpoint for tests.
// It plugs into clients as an http.RoundTripper, so no network is used.
package fakemodel

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
)

// Reply is one scripted response.
type Reply struct {
	Status int
	Body   any
}

// Call is a tool call placed in a scripted assistant turn.
type Call struct {
	ID   string
	Name string
	Args string
}

// Text returns a successful completion answering with text.
func Text(text string) Reply {
	return Reply{Status: http.StatusOK, Body: completion(map[string]any{
		"role":    "assistant",
		"content": text,
	}, "stop")}
}

// ToolCalls returns a successful completion requesting the given calls.
func ToolCalls(calls ...Call) Reply {
	tcs := make([]map[string]any, len(calls))
	for i, c := range calls {
		tcs[i] = map[string]any{
			"id":   c.ID,
			"type": "function",
			"function": map[string]any{
				"name":      c.Name,
				"arguments": c.Args,
			},
		}
	}
	return Reply{Status: http.StatusOK, Body: completion(map[string]any{
		"role":       "assistant",
		"content":    nil,
		"tool_calls": tcs,
	}, "tool_calls")}
}

// Error returns an error reply in the endpoint's error envelope.
func Error(status int, message string) Reply {
	return Reply{Status: status, Body: map[string]any{
		"error": map[string]any{"code": http.StatusText(status), "message": message},
	}}
}

func completion(message map[string]any, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-fake",
		"object":  "chat.completion",
		"created": 0,
		"model":   "gpt-4o",
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": finish,
			"message":       message,
		}},
		"usage": map[string]any{
			"prompt_tokens":     10,
			"completion_tokens": 5,
			"total_tokens":      15,
		},
	}
}

// Request is a request received by the [Transport].
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   map[string]any
}

// Transport replays replies in order. Once the script is exhausted every
// request gets a 500.
type Transport struct {
	mu       sync.Mutex
	replies  []Reply
	requests []Request
}

// New returns a transport that answers with replies in order.
func New(replies ...Reply) *Transport {
	return &Transport{replies: replies}
}

// Client returns an http.Client using t.
func (t *Transport) Client() *http.Client {
	return &http.Client{Transport: t}
}

// Requests returns the requests received so far.
func (t *Transport) Requests() []Request {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Request(nil), t.requests...)
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	rec := Request{
		Method: req.Method,
		URL:    req.URL.String(),
		Header: req.Header.Clone(),
	}
	if req.Body != nil {
		b, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("read request body: %w", err)
		}
		_ = req.Body.Close()
		if len(b) > 0 {
			if err := json.Unmarshal(b, &rec.Body); err != nil {
				return nil, fmt.Errorf("decode request body: %w", err)
			}
		}
	}

	t.mu.Lock()
	t.requests = append(t.requests, rec)
	reply := Error(http.StatusInternalServerError, "no scripted reply left")
	if len(t.replies) > 0 {
		reply = t.replies[0]
		t.replies = t.replies[1:]
	}
	t.mu.Unlock()

	b, err := json.Marshal(reply.Body)
	if err != nil {
		return nil, fmt.Errorf("encode reply: %w", err)
	}
	return &http.Response{
		StatusCode: reply.Status,
		Status:     fmt.Sprintf("%d %s", reply.Status, http.StatusText(reply.Status)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewReader(b)),
		Request:    req,
	}, nil
}
