// Copyright (c) Microsoft. All rights reserved.

// Package githubmodels builds clients for the GitHub Models inference
// endpoint.
//
// GitHub Models speaks the Chat Completions protocol with two additions:
// the model is named in the x-ms-model-id header and every request carries
// an api-version query parameter. [BuildConnectionOptions] resolves those
// values from a [Config]; [NewBasicClient] and [NewTunedClient] turn them
// into ready clients; [ValidateCredential] sends one small request to check
// that the token works.
//
//	cfg := githubmodels.ConfigFromEnv()
//	client, err := githubmodels.NewTunedClient(cfg, "gpt-4o", githubmodels.Tuning{})
//	if err != nil {
//	    return err
//	}
//	agent := agentframework.NewAgent(client)
package githubmodels
