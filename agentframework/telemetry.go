// Copyright (c) Microsoft. All rights reserved.

package agentframework

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

const promptPreviewLen = 80

// LoggingMiddleware returns an [AgentMiddleware] that writes one record per
// run: Info with the run's shape and token usage on success, Error with the
// endpoint status on failure. The start of a run is logged at Debug together
// with a preview of the last user message.
func LoggingMiddleware(logger *slog.Logger) AgentMiddleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next AgentHandler) AgentHandler {
		return func(ctx context.Context, req *AgentRequest) (*AgentResponse, error) {
			if logger.Enabled(ctx, slog.LevelDebug) {
				logger.LogAttrs(ctx, slog.LevelDebug, "agent run started",
					slog.Int("input_messages", len(req.Messages)),
					slog.String("prompt", lastUserPreview(req.Messages)),
				)
			}

			start := time.Now()
			resp, err := next(ctx, req)
			elapsed := slog.Duration("elapsed", time.Since(start))

			if err != nil {
				attrs := []slog.Attr{elapsed, slog.Any("error", err)}
				var svcErr *ServiceError
				if errors.As(err, &svcErr) {
					attrs = append(attrs, slog.Int("status", svcErr.StatusCode))
				}
				logger.LogAttrs(ctx, slog.LevelError, "agent run failed", attrs...)
				return nil, err
			}

			logger.LogAttrs(ctx, slog.LevelInfo, "agent run completed",
				elapsed,
				slog.Int("model_calls", resp.ModelCalls),
				slog.Int("tool_calls", len(resp.ToolCalls())),
				slog.Int("history_messages", len(resp.History)),
				slog.Group("usage",
					slog.Int("input_tokens", resp.Usage.InputTokens),
					slog.Int("output_tokens", resp.Usage.OutputTokens),
					slog.Int("total_tokens", resp.Usage.TotalTokens),
				),
			)
			return resp, nil
		}
	}
}

func lastUserPreview(messages []Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role != RoleUser {
			continue
		}
		r := []rune(messages[i].Text())
		if len(r) > promptPreviewLen {
			return string(r[:promptPreviewLen]) + "..."
		}
		return string(r)
	}
	return ""
}
