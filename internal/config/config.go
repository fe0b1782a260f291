package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/plsteno/internal/diag"
)

// Config is the application configuration.
type Config struct {
	// Rules is the rule file. Empty means the embedded Polish tables.
	Rules string `toml:"rules"`
	// Corpus is the word list to build from. Empty skips the build.
	Corpus string `toml:"corpus"`

	// OutputDir receives the exported files.
	OutputDir string `toml:"output_dir"`
	// Dictionary is the full dictionary file name. Empty disables it.
	Dictionary string `toml:"dictionary"`
	// Syllables is the chunk dictionary file name. Empty disables it.
	Syllables string `toml:"syllables"`
	// WordRoots is the word-root dictionary file name. Empty disables it.
	WordRoots string `toml:"word_roots"`
	// Conflicts is the YAML conflict report file name. Empty disables it.
	Conflicts string `toml:"conflicts"`

	FirstFormOnly   bool   `toml:"first_form_only"`
	MinWordLength   int    `toml:"min_word_length"`
	StrokeDelimiter string `toml:"stroke_delimiter"`

	// TranslateScript is a Lua script with a translate function applied to
	// exported entries.
	TranslateScript string `toml:"translate_script"`

	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`

	// Progress shows a progress bar during corpus builds.
	Progress bool `toml:"progress"`
	// WatchRules reloads the rule file while in query mode.
	WatchRules bool `toml:"watch_rules"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		OutputDir:       ".",
		Dictionary:      "dictionary.json",
		Syllables:       "syllables.json",
		WordRoots:       "word_roots.json",
		MinWordLength:   2,
		StrokeDelimiter: "/",
		LogLevel:        "info",
		LogFormat:       "text",
		Progress:        true,
	}
}

// Load builds a configuration from defaults, the file at path (if not
// empty) and the process environment, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, &ParseError{Path: path, Message: ErrFileNotFound.Error(), Err: ErrFileNotFound}
			}
			return nil, err
		}
		if err := cfg.Decode(path, data); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode applies a TOML document on top of cfg. Keys absent from the
// document keep their current values.
func (c *Config) Decode(source string, data []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return perr
	}
	return nil
}

// Validate checks the settings for consistency.
func (c *Config) Validate() error {
	if c.MinWordLength < 1 {
		return &ValueError{Key: "min_word_length", Value: c.MinWordLength, Reason: "must be at least 1"}
	}
	if c.StrokeDelimiter == "" {
		return &ValueError{Key: "stroke_delimiter", Value: `""`, Reason: "must not be empty"}
	}
	if _, err := diag.ParseLevel(c.LogLevel); err != nil {
		return &ValueError{Key: "log_level", Value: c.LogLevel, Reason: err.Error()}
	}
	if _, err := diag.ParseFormat(c.LogFormat); err != nil {
		return &ValueError{Key: "log_format", Value: c.LogFormat, Reason: err.Error()}
	}
	if c.Corpus != "" && c.OutputDir == "" {
		return &ValueError{Key: "output_dir", Value: `""`, Reason: "required when a corpus is set"}
	}
	return nil
}

// OutputPath returns the path of an output file, or "" if name is empty.
func (c *Config) OutputPath(name string) string {
	if name == "" {
		return ""
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.OutputDir, name)
}
