package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"api": map[string]any{
			"baseUrl": "",
			"timeout": "10s",
		},
		"storage": map[string]any{
			"passphrase": "",
		},
		"query": map[string]any{
			"userPollInterval": "15s",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "API_BASEURL", want: "api.baseUrl"},
		{envKey: "API_TIMEOUT", want: "api.timeout"},
		{envKey: "STORAGE_PASSPHRASE", want: "storage.passphrase"},
		{envKey: "QUERY_USERPOLLINTERVAL", want: "query.userPollInterval"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
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
