package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"llm": map[string]any{
			"apiKey":            "",
			"generationTimeout": "60s",
		},
		"retrieval": map[string]any{
			"topK": 5,
		},
		"safety": map[string]any{
			"calorieFloor": 1200,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "LLM_APIKEY", want: "llm.apiKey"},
		{envKey: "LLM_GENERATIONTIMEOUT", want: "llm.generationTimeout"},
		{envKey: "RETRIEVAL_TOPK", want: "retrieval.topK"},
		{envKey: "SAFETY_CALORIEFLOOR", want: "safety.calorieFloor"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	tests := map[string]string{
		"topK":       "topk",
		"api_key":    "apikey",
		"Max-Tokens": "maxtokens",
	}

	for in, want := range tests {
		if got := normalizeToken(in); got != want {
			t.Fatalf("normalizeToken(%q) = %q, want %q", in, got, want)
		}
	}
}
