package resource

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeProperties(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "application.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write properties: %v", err)
	}
	return path
}

func TestInitResolvesPlaceholders(t *testing.T) {
	t.Setenv("TEST_API_KEY", "abc123")
	path := writeProperties(t, `
app:
  name: plain
  key: "${TEST_API_KEY}"
  url: "${TEST_UNSET_URL:https://example.com/data/2.5}"
  empty: "${TEST_UNSET_EMPTY:}"
  port: 8080
  timeout: 3s
`)

	if err := Init(path); err != nil {
		t.Fatalf("Init: %v", err)
	}

	cases := map[string]string{
		"app.name":  "plain",
		"app.key":   "abc123",
		"app.url":   "https://example.com/data/2.5",
		"app.empty": "",
	}
	for key, want := range cases {
		if got := GetString(key); got != want {
			t.Errorf("GetString(%q) = %q, want %q", key, got, want)
		}
	}
	if got := GetInt("app.port"); got != 8080 {
		t.Errorf("GetInt(app.port) = %d", got)
	}
	if got := GetDuration("app.timeout"); got != 3*time.Second {
		t.Errorf("GetDuration(app.timeout) = %v", got)
	}
	if got := GetStringOrDefault("app.empty", "fallback"); got != "fallback" {
		t.Errorf("GetStringOrDefault = %q", got)
	}
	if got := GetIntOrDefault("app.missing", 7); got != 7 {
		t.Errorf("GetIntOrDefault = %d", got)
	}
}

func TestInitMissingFile(t *testing.T) {
	if err := Init(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestResolveEnvVariableEmbedded(t *testing.T) {
	t.Setenv("TEST_HOST", "api.local")
	got := resolveEnvVariable("https://${TEST_HOST}/v${TEST_UNSET_VERSION:2}")
	if got != "https://api.local/v2" {
		t.Fatalf("resolveEnvVariable = %q", got)
	}
}
