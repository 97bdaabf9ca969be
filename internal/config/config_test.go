package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/phravins/gitie/internal/errors"
	"github.com/phravins/gitie/internal/logger"
)

func testResolver(t *testing.T) *Resolver {
	t.Helper()
	return &Resolver{
		Home:    t.TempDir(),
		WorkDir: t.TempDir(),
		Log:     logger.NewWithLevel("error"),
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

const validConfig = `[ai]
api_url = "http://example.com/v1/chat/completions"
model_name = "test-model"
temperature = 0.3
api_key = "sk-real"
`

func TestResolveBundledTemplateAndCopyUp(t *testing.T) {
	r := testResolver(t)

	// Nothing exists yet: the bundled templates win and both documents
	// are materialized at the user-scope paths.
	cfg, err := r.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if cfg.APIURL != "http://localhost:11434/v1/chat/completions" {
		t.Errorf("APIURL = %q, want bundled default", cfg.APIURL)
	}
	if cfg.ModelName != "qwen3:32b-q8_0" {
		t.Errorf("ModelName = %q, want bundled default", cfg.ModelName)
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("Temperature = %v, want 0.7", cfg.Temperature)
	}
	if cfg.APIKey != "" {
		t.Errorf("APIKey = %q, want placeholder normalized to empty", cfg.APIKey)
	}
	if cfg.SystemPrompt == "" {
		t.Error("SystemPrompt is empty")
	}

	for _, path := range []string{r.UserConfigPath(), r.UserPromptPath()} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("copy-up target %s missing: %v", path, err)
		}
	}

	// A second resolution reads the materialized copy unchanged.
	again, err := r.Resolve()
	if err != nil {
		t.Fatalf("second Resolve failed: %v", err)
	}
	if *again != *cfg {
		t.Errorf("second Resolve = %+v, want identical %+v", again, cfg)
	}
}

func TestResolveUserConfigWins(t *testing.T) {
	r := testResolver(t)
	writeFile(t, r.UserConfigPath(), validConfig)
	writeFile(t, r.UserPromptPath(), "user prompt")
	writeFile(t, filepath.Join(r.WorkDir, ".gitie.toml"), `[ai]
api_url = "http://project/api"
model_name = "project-model"
`)

	cfg, err := r.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.ModelName != "test-model" {
		t.Errorf("ModelName = %q, want user-scope value", cfg.ModelName)
	}
	if cfg.SystemPrompt != "user prompt" {
		t.Errorf("SystemPrompt = %q, want user prompt", cfg.SystemPrompt)
	}
	if cfg.APIKey != "sk-real" {
		t.Errorf("APIKey = %q, want sk-real", cfg.APIKey)
	}
}

func TestResolveProjectConfigCopiedUp(t *testing.T) {
	r := testResolver(t)
	writeFile(t, filepath.Join(r.WorkDir, ".gitie.toml"), validConfig)
	writeFile(t, filepath.Join(r.WorkDir, ".gitie-prompt"), "project prompt")

	cfg, err := r.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.ModelName != "test-model" {
		t.Errorf("ModelName = %q, want project value", cfg.ModelName)
	}
	if cfg.SystemPrompt != "project prompt" {
		t.Errorf("SystemPrompt = %q, want project prompt", cfg.SystemPrompt)
	}

	copied, err := os.ReadFile(r.UserConfigPath())
	if err != nil {
		t.Fatalf("user-scope copy missing: %v", err)
	}
	if string(copied) != validConfig {
		t.Error("user-scope copy differs from project source")
	}
}

func TestResolveParseFailureIsFatal(t *testing.T) {
	r := testResolver(t)
	// A malformed user config must not be skipped in favor of lower
	// precedence sources.
	writeFile(t, r.UserConfigPath(), "not [valid toml")
	writeFile(t, r.UserPromptPath(), "prompt")

	_, err := r.Resolve()
	if err == nil {
		t.Fatal("Resolve succeeded on malformed config")
	}
	if !errors.Is(err, apperrors.ErrConfigParse) {
		t.Errorf("error = %v, want ErrConfigParse", err)
	}
	var ce *apperrors.ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("error %v does not carry the file path", err)
	}
	if ce.Path != r.UserConfigPath() {
		t.Errorf("error names %s, want %s", ce.Path, r.UserConfigPath())
	}
}

func TestResolveMissingRequiredField(t *testing.T) {
	r := testResolver(t)
	writeFile(t, r.UserConfigPath(), `[ai]
api_url = "http://example.com/api"
`)
	writeFile(t, r.UserPromptPath(), "prompt")

	_, err := r.Resolve()
	if !errors.Is(err, apperrors.ErrFieldMissing) {
		t.Errorf("error = %v, want ErrFieldMissing", err)
	}
}

func TestResolveMissingPromptIsDistinct(t *testing.T) {
	r := testResolver(t)
	writeFile(t, r.UserConfigPath(), validConfig)
	// Redirect the bundled prompt to a non-existent path so no prompt
	// source exists at any level.
	t.Setenv(EnvAssetsPrompt, filepath.Join(t.TempDir(), "missing-prompt"))

	_, err := r.Resolve()
	if !errors.Is(err, apperrors.ErrPromptMissing) {
		t.Errorf("error = %v, want ErrPromptMissing", err)
	}
}

func TestResolveAssetOverrides(t *testing.T) {
	r := testResolver(t)
	alt := t.TempDir()
	writeFile(t, filepath.Join(alt, "config.toml"), validConfig)
	writeFile(t, filepath.Join(alt, "prompt"), "override prompt")
	t.Setenv(EnvAssetsConfig, filepath.Join(alt, "config.toml"))
	t.Setenv(EnvAssetsPrompt, filepath.Join(alt, "prompt"))

	cfg, err := r.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.ModelName != "test-model" {
		t.Errorf("ModelName = %q, want override value", cfg.ModelName)
	}
	if cfg.SystemPrompt != "override prompt" {
		t.Errorf("SystemPrompt = %q, want override prompt", cfg.SystemPrompt)
	}
}

func TestNormalizeAPIKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"placeholder", PlaceholderAPIKey, ""},
		{"empty", "", ""},
		{"real key", "sk-real", "sk-real"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeAPIKey(tt.in); got != tt.want {
				t.Errorf("normalizeAPIKey(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseConfigDefaultsTemperature(t *testing.T) {
	cfg, err := parseConfig([]byte(`[ai]
api_url = "http://example.com/api"
model_name = "m"
`), "test.toml")
	if err != nil {
		t.Fatalf("parseConfig failed: %v", err)
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("Temperature = %v, want default 0.7", cfg.Temperature)
	}
}
