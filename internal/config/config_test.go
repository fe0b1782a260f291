package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.MinWordLength != 2 {
		t.Errorf("MinWordLength = %d, want 2", cfg.MinWordLength)
	}
	if cfg.StrokeDelimiter != "/" {
		t.Errorf("StrokeDelimiter = %q, want /", cfg.StrokeDelimiter)
	}
	if cfg.Rules != "" || cfg.Corpus != "" {
		t.Errorf("Rules/Corpus should default to empty, got %q/%q", cfg.Rules, cfg.Corpus)
	}
}

func TestDecode(t *testing.T) {
	cfg := Default()
	err := cfg.Decode("test.toml", []byte(`
rules = "custom.toml"
corpus = "odm.txt"
first_form_only = true
min_word_length = 3
conflicts = "conflicts.yaml"
`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if cfg.Rules != "custom.toml" || cfg.Corpus != "odm.txt" {
		t.Errorf("paths = %q, %q", cfg.Rules, cfg.Corpus)
	}
	if !cfg.FirstFormOnly || cfg.MinWordLength != 3 {
		t.Errorf("FirstFormOnly = %v, MinWordLength = %d", cfg.FirstFormOnly, cfg.MinWordLength)
	}
	// Untouched keys keep their defaults.
	if cfg.Dictionary != "dictionary.json" || !cfg.Progress {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestDecode_UnknownKey(t *testing.T) {
	cfg := Default()
	err := cfg.Decode("test.toml", []byte(`min_word_lenght = 3`))

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if perr.Path != "test.toml" {
		t.Errorf("Path = %q", perr.Path)
	}
}

func TestDecode_TypeError(t *testing.T) {
	cfg := Default()
	err := cfg.Decode("test.toml", []byte("progress = true\nmin_word_length = \"two\"\n"))

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if perr.Message == "" {
		t.Error("empty parse message")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"PLSTENO_RULES":           "env.toml",
		"PLSTENO_FIRST_FORM_ONLY": "true",
		"PLSTENO_MIN_WORD_LENGTH": "4",
		"PLSTENO_PROGRESS":        "0",
		"PLSTENO_CONFLICTS":       "",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	cfg.Conflicts = "conflicts.yaml"
	if err := cfg.ApplyEnv(lookup); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}

	if cfg.Rules != "env.toml" {
		t.Errorf("Rules = %q", cfg.Rules)
	}
	if !cfg.FirstFormOnly || cfg.MinWordLength != 4 || cfg.Progress {
		t.Errorf("env not applied: %+v", cfg)
	}
	if cfg.Conflicts != "" {
		t.Errorf("empty env value should clear Conflicts, got %q", cfg.Conflicts)
	}
}

func TestApplyEnv_BadValue(t *testing.T) {
	lookup := func(k string) (string, bool) {
		if k == "PLSTENO_MIN_WORD_LENGTH" {
			return "many", true
		}
		return "", false
	}

	err := Default().ApplyEnv(lookup)
	if !errors.Is(err, ErrInvalidValue) {
		t.Errorf("error = %v, want ErrInvalidValue", err)
	}
}

func TestEnvName(t *testing.T) {
	if got := EnvName("output_dir"); got != "PLSTENO_OUTPUT_DIR" {
		t.Errorf("EnvName = %q", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		key    string
	}{
		{"min length", func(c *Config) { c.MinWordLength = 0 }, "min_word_length"},
		{"delimiter", func(c *Config) { c.StrokeDelimiter = "" }, "stroke_delimiter"},
		{"log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"log format", func(c *Config) { c.LogFormat = "xml" }, "log_format"},
		{"output dir", func(c *Config) { c.Corpus = "odm.txt"; c.OutputDir = "" }, "output_dir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			var verr *ValueError
			if err := cfg.Validate(); !errors.As(err, &verr) {
				t.Fatalf("Validate = %v, want *ValueError", err)
			}
			if verr.Key != tt.key {
				t.Errorf("Key = %q, want %q", verr.Key, tt.key)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plsteno.toml")
	if err := os.WriteFile(path, []byte(`output_dir = "out"`), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PLSTENO_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OutputDir != "out" || cfg.LogLevel != "debug" {
		t.Errorf("cfg = %+v", cfg)
	}
	if got := cfg.OutputPath("dictionary.json"); got != filepath.Join("out", "dictionary.json") {
		t.Errorf("OutputPath = %q", got)
	}
	if got := cfg.OutputPath(""); got != "" {
		t.Errorf("OutputPath(\"\") = %q, want empty", got)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "none.toml"))
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("error = %v, want ErrFileNotFound", err)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("PLSTENO_LOG_FORMAT", "xml")
	if _, err := Load(""); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("error = %v, want ErrInvalidValue", err)
	}
}
