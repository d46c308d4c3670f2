// Copyright (c) Microsoft. All rights reserved.

package githubmodels_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/microsoft/ghmodels-agents/githubmodels"
)

func TestBuildConnectionOptions_MissingToken(t *testing.T) {
	tests := []struct {
		name string
		cfg  githubmodels.Config
	}{
		{"nothing set", githubmodels.Config{}},
		{"endpoint set", githubmodels.Config{Endpoint: "https://example.test"}},
		{"version set", githubmodels.Config{APIVersion: "2025-01-01"}},
		{"both set", githubmodels.Config{Endpoint: "https://example.test", APIVersion: "2025-01-01"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := githubmodels.BuildConnectionOptions(tc.cfg, "gpt-4o")
			if !errors.Is(err, githubmodels.ErrConfiguration) {
				t.Fatalf("error = %v, want ErrConfiguration", err)
			}
			var cfgErr *githubmodels.ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("error %T is not a ConfigurationError", err)
			}
			if cfgErr.Variable != githubmodels.EnvToken {
				t.Errorf("Variable = %q, want %q", cfgErr.Variable, githubmodels.EnvToken)
			}
			if !strings.Contains(err.Error(), "GITHUB_MODELS_TOKEN") {
				t.Errorf("message %q does not name the variable", err.Error())
			}
		})
	}
}

func TestBuildConnectionOptions_Defaults(t *testing.T) {
	got, err := githubmodels.BuildConnectionOptions(githubmodels.Config{Token: "abc123"}, "gpt-4o")
	if err != nil {
		t.Fatal(err)
	}

	want := githubmodels.ConnectionOptions{
		BaseURL:         "https://models.inference.ai.azure.com",
		APIKey:          "abc123",
		ModelHeader:     "gpt-4o",
		APIVersionQuery: "2024-02-15-preview",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildConnectionOptions_OverridesVerbatim(t *testing.T) {
	tests := []struct {
		name        string
		cfg         githubmodels.Config
		wantBase    string
		wantVersion string
	}{
		{
			name:        "endpoint only",
			cfg:         githubmodels.Config{Token: "t", Endpoint: "http://localhost:8080/v1/"},
			wantBase:    "http://localhost:8080/v1/",
			wantVersion: githubmodels.DefaultAPIVersion,
		},
		{
			name:        "version only",
			cfg:         githubmodels.Config{Token: "t", APIVersion: "2024-05-01-preview"},
			wantBase:    githubmodels.DefaultEndpoint,
			wantVersion: "2024-05-01-preview",
		},
		{
			name:        "both",
			cfg:         githubmodels.Config{Token: "t", Endpoint: "HTTPS://Example.Test", APIVersion: "v2"},
			wantBase:    "HTTPS://Example.Test",
			wantVersion: "v2",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := githubmodels.BuildConnectionOptions(tc.cfg, "gpt-4o-mini")
			if err != nil {
				t.Fatal(err)
			}
			if got.BaseURL != tc.wantBase {
				t.Errorf("BaseURL = %q, want %q", got.BaseURL, tc.wantBase)
			}
			if got.APIVersionQuery != tc.wantVersion {
				t.Errorf("APIVersionQuery = %q, want %q", got.APIVersionQuery, tc.wantVersion)
			}
			if got.ModelHeader != "gpt-4o-mini" {
				t.Errorf("ModelHeader = %q", got.ModelHeader)
			}
		})
	}
}

func TestBuildConnectionOptions_EmptyModel(t *testing.T) {
	_, err := githubmodels.BuildConnectionOptions(githubmodels.Config{Token: "t"}, "")
	var cfgErr *githubmodels.ConfigurationError
	if !errors.As(err, &cfgErr) || cfgErr.Variable != "model" {
		t.Errorf("error = %v, want ConfigurationError for model", err)
	}
}

func TestConnectionOptions_FreshMaps(t *testing.T) {
	conn, err := githubmodels.BuildConnectionOptions(githubmodels.Config{Token: "t"}, "gpt-4o")
	if err != nil {
		t.Fatal(err)
	}

	h := conn.Headers()
	h["x-ms-model-id"] = "tampered"
	q := conn.Query()
	q["api-version"] = "tampered"

	if diff := cmp.Diff(map[string]string{"x-ms-model-id": "gpt-4o"}, conn.Headers()); diff != "" {
		t.Errorf("headers mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]string{"api-version": "2024-02-15-preview"}, conn.Query()); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
	if len(conn.RequestOptions()) != 4 {
		t.Errorf("RequestOptions = %d, want 4", len(conn.RequestOptions()))
	}
}

func TestConfigFromLookup(t *testing.T) {
	env := map[string]string{
		"GITHUB_MODELS_TOKEN":       " ghp_abc ",
		"GITHUB_MODELS_ENDPOINT":    "  \n",
		"GITHUB_MODELS_API_VERSION": "2024-08-01-preview",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	got := githubmodels.ConfigFromLookup(lookup)
	want := githubmodels.Config{Token: " ghp_abc ", APIVersion: "2024-08-01-preview"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	conn, err := githubmodels.BuildConnectionOptions(got, "gpt-4o")
	if err != nil {
		t.Fatal(err)
	}
	if conn.BaseURL != githubmodels.DefaultEndpoint {
		t.Errorf("blank endpoint should fall back to default, got %q", conn.BaseURL)
	}
}

func TestConfigFromLookup_OverridesKeptVerbatim(t *testing.T) {
	env := map[string]string{
		"GITHUB_MODELS_TOKEN":       "ghp_abc",
		"GITHUB_MODELS_ENDPOINT":    " https://proxy.test/v1 \n",
		"GITHUB_MODELS_API_VERSION": "\t2024-05-01 ",
	}
	got := githubmodels.ConfigFromLookup(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})

	conn, err := githubmodels.BuildConnectionOptions(got, "gpt-4o")
	if err != nil {
		t.Fatal(err)
	}
	if conn.BaseURL != " https://proxy.test/v1 \n" {
		t.Errorf("BaseURL = %q, want the override unchanged", conn.BaseURL)
	}
	if conn.APIVersionQuery != "\t2024-05-01 " {
		t.Errorf("APIVersionQuery = %q, want the override unchanged", conn.APIVersionQuery)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("GITHUB_MODELS_TOKEN", "from-env")
	t.Setenv("GITHUB_MODELS_ENDPOINT", "https://env.test")
	t.Setenv("GITHUB_MODELS_API_VERSION", "")

	got := githubmodels.ConfigFromEnv()
	if got.Token != "from-env" || got.Endpoint != "https://env.test" || got.APIVersion != "" {
		t.Errorf("ConfigFromEnv = %+v", got)
	}
}

func TestTuningResolve(t *testing.T) {
	tests := []struct {
		name   string
		tuning githubmodels.Tuning
		want   githubmodels.Settings
	}{
		{
			name:   "defaults",
			tuning: githubmodels.Tuning{},
			want:   githubmodels.Settings{Temperature: 0.3, MaxTokens: 1000, Streaming: false},
		},
		{
			name:   "temperature only",
			tuning: githubmodels.Tuning{Temperature: ptr(0.9)},
			want:   githubmodels.Settings{Temperature: 0.9, MaxTokens: 1000, Streaming: false},
		},
		{
			name:   "zero values are explicit",
			tuning: githubmodels.Tuning{Temperature: ptr(0.0), MaxTokens: ptr(0), Streaming: ptr(true)},
			want:   githubmodels.Settings{Temperature: 0, MaxTokens: 0, Streaming: true},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, tc.tuning.Resolve()); diff != "" {
				t.Errorf("settings mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }
