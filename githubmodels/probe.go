// Copyright (c) Microsoft. All rights reserved.

package githubmodels

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	oai "github.com/openai/openai-go/v3"
)

// Probe request parameters.
const (
	probePrompt    = "test"
	probeMaxTokens = 5
)

// NotFoundHint is logged when the probe receives a 404.
const NotFoundHint = "404 recebido. Verifique se o acesso ao preview do GitHub Models está habilitado " +
	"e se o modelo solicitado está disponível para a sua conta."

// ProbeResult is the outcome of [ValidateCredential].
type ProbeResult struct {
	// StatusCode is the HTTP status of a failed request, or 0 when no
	// response was received.
	StatusCode int
	// Body is the raw error body returned by the endpoint, if any.
	Body string
	// Hint is a human-readable explanation for well-known failures.
	Hint string
	// Err is nil when the credential was accepted.
	Err error
}

// OK reports whether the probe succeeded.
func (r ProbeResult) OK() bool { return r.Err == nil }

// ValidateCredential sends one minimal completion to [DefaultModel] to
// check that the token and endpoint work. It never panics and reports every
// failure, including configuration errors, through the result, logging the
// diagnostics on cfg.Logger.
func ValidateCredential(ctx context.Context, cfg Config) (res ProbeResult) {
	log := cfg.logger()
	defer func() {
		if r := recover(); r != nil {
			res = ProbeResult{Err: fmt.Errorf("probe panicked: %v", r)}
			log.ErrorContext(ctx, "Error validating GitHub token", "error", res.Err)
		}
	}()

	client, err := NewBasicClient(cfg, DefaultModel)
	if err != nil {
		log.ErrorContext(ctx, "Error validating GitHub token", "error", err)
		return ProbeResult{Err: err}
	}

	_, err = client.Chat.Completions.New(ctx, oai.ChatCompletionNewParams{
		Model:     DefaultModel,
		Messages:  []oai.ChatCompletionMessageParamUnion{oai.UserMessage(probePrompt)},
		MaxTokens: oai.Int(probeMaxTokens),
	})
	if err == nil {
		log.DebugContext(ctx, "github token validated", "model", DefaultModel)
		return ProbeResult{}
	}

	res = ProbeResult{Err: err}
	var apiErr *oai.Error
	if errors.As(err, &apiErr) {
		res.StatusCode = apiErr.StatusCode
		res.Body = apiErr.RawJSON()
	}
	if res.StatusCode == http.StatusNotFound {
		res.Hint = NotFoundHint
	}

	args := []any{"error", err}
	if res.StatusCode != 0 {
		args = append(args, "status", res.StatusCode)
	}
	if res.Body != "" {
		args = append(args, "details", res.Body)
	}
	log.ErrorContext(ctx, "Error validating GitHub token", args...)
	if res.Hint != "" {
		log.WarnContext(ctx, res.Hint, "status", res.StatusCode)
	}
	return res
}

// ValidToken is the boolean view of [ValidateCredential].
func ValidToken(ctx context.Context, cfg Config) bool {
	return ValidateCredential(ctx, cfg).OK()
}
