package env

import (
	"strings"
	"testing"
)

type sampleConfig struct {
	Provider string `env:"APP_PROVIDER"`
	APIKey   string `env:"APP_API_KEY,required,notEmpty"`
	OwnerID  int64  `env:"APP_OWNER_ID"`
	Enabled  bool   `env:"APP_ENABLED"`
	NoTag    string
	hidden   string `env:"APP_HIDDEN"`
}

func TestMarshalEnv(t *testing.T) {
	cfg := &sampleConfig{
		Provider: "gemini",
		APIKey:   "secret",
		OwnerID:  42,
		Enabled:  true,
		NoTag:    "ignored",
		hidden:   "ignored",
	}

	out, err := MarshalEnv(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"APP_PROVIDER=gemini",
		"APP_API_KEY=secret",
		"APP_OWNER_ID=42",
		"APP_ENABLED=true",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "ignored") || strings.Contains(out, "APP_HIDDEN") {
		t.Errorf("untagged or unexported fields leaked:\n%s", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("output should end with a newline")
	}
}

func TestMarshalEnv_SkipsZeroValues(t *testing.T) {
	out, err := MarshalEnv(&sampleConfig{Provider: "ollama"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(out, "APP_API_KEY") || strings.Contains(out, "APP_OWNER_ID") || strings.Contains(out, "APP_ENABLED") {
		t.Errorf("zero values should be omitted:\n%s", out)
	}
	if !strings.Contains(out, "APP_PROVIDER=ollama") {
		t.Errorf("non-zero value missing:\n%s", out)
	}
}
