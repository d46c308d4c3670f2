// Copyright (c) Microsoft. All rights reserved.

package cli

import (
	"errors"
	"fmt"
	"io"

	oai "github.com/openai/openai-go/v3"

	af "github.com/microsoft/ghmodels-agents/agentframework"
)

// ReportError prints err to w together with the HTTP status and response
// body when the error chain carries them.
func ReportError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(w, "Erro:", err)

	status, body := errorDetails(err)
	if status != 0 {
		fmt.Fprintln(w, "Status:", status)
	}
	if body != "" {
		fmt.Fprintln(w, "Detalhes:", body)
	}
}

func errorDetails(err error) (int, string) {
	var svcErr *af.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.StatusCode, svcErr.Body
	}
	var apiErr *oai.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode, apiErr.RawJSON()
	}
	return 0, ""
}
