// Copyright (c) Microsoft. All rights reserved.

// Package openai provides a [agentframework.ChatClient] for Chat Completions
// compatible endpoints such as GitHub Models.
//
//	client := openai.New(token,
//	    openai.WithBaseURL("https://models.inference.ai.azure.com"),
//	    openai.WithHeaders(map[string]string{"x-ms-model-id": "gpt-4o"}),
//	    openai.WithQuery(map[string]string{"api-version": "2024-02-15-preview"}),
//	    openai.WithModel("gpt-4o"),
//	)
//
//	agent := agentframework.NewAgent(client)
//
// Azure OpenAI deployments authenticate with Microsoft Entra tokens instead
// of an API key. Any azcore.TokenCredential works:
//
//	client := openai.New("",
//	    openai.WithBaseURL("https://<resource>.openai.azure.com/openai/deployments/<deployment>"),
//	    openai.WithQuery(map[string]string{"api-version": "2024-10-21"}),
//	    openai.WithAzureCredential(cred),
//	    openai.WithOrganization("org-id"),
//	)
//
// # Configuration
//
//   - [WithModel]: set the default model
//   - [WithBaseURL]: override the API endpoint
//   - [WithHeaders], [WithQuery]: values sent on every request
//   - [WithDefaultOptions]: chat options applied under per-call options
//   - [WithStreaming]: request server-sent events, folded into one response
//   - [WithAzureCredential]: bearer tokens from an azcore credential
//   - [WithOrganization]: OpenAI-Organization header
//   - [WithHTTPClient]: provide a custom http.Client
//
// # Testing
//
// The client uses an unexported transport interface internally.
// For testing, provide a mock http.Client via [WithHTTPClient]
// with a custom RoundTripper.
package openai
