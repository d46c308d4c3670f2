// Copyright (c) Microsoft. All rights reserved.

package fakemodel_test

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/microsoft/ghmodels-agents/internal/fakemodel"
)

func post(t *testing.T, c *http.Client, body string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := c.Post("https://fake.test/chat/completions", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("decode reply: %v", err)
	}
	return resp, m
}

func TestTransport_ReplaysInOrder(t *testing.T) {
	tp := fakemodel.New(
		fakemodel.ToolCalls(fakemodel.Call{ID: "c1", Name: "calculator", Args: `{"a":1}`}),
		fakemodel.Text("pronto"),
	)
	c := tp.Client()

	resp, first := post(t, c, `{"model":"gpt-4o"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if first["choices"].([]any)[0].(map[string]any)["finish_reason"] != "tool_calls" {
		t.Errorf("first reply = %v", first)
	}

	_, second := post(t, c, `{"model":"gpt-4o","n":2}`)
	msg := second["choices"].([]any)[0].(map[string]any)["message"].(map[string]any)
	if msg["content"] != "pronto" {
		t.Errorf("second reply content = %v", msg["content"])
	}

	resp, _ = post(t, c, `{}`)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("exhausted status = %d, want 500", resp.StatusCode)
	}

	reqs := tp.Requests()
	if len(reqs) != 3 {
		t.Fatalf("requests = %d, want 3", len(reqs))
	}
	if reqs[1].Body["n"] != float64(2) || reqs[0].Method != http.MethodPost {
		t.Errorf("recorded = %+v", reqs[:2])
	}
}

func TestError(t *testing.T) {
	tp := fakemodel.New(fakemodel.Error(http.StatusNotFound, "unknown model"))
	resp, body := post(t, tp.Client(), `{}`)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if body["error"].(map[string]any)["message"] != "unknown model" {
		t.Errorf("body = %v", body)
	}
}
