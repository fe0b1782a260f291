package config

import (
	"fmt"
	"strconv"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "PLSTENO_"

// LookupFunc reads an environment variable.
type LookupFunc func(key string) (string, bool)

type envBinding struct {
	key string
	set func(c *Config, v string) error
}

func stringVar(get func(c *Config) *string) func(*Config, string) error {
	return func(c *Config, v string) error {
		*get(c) = v
		return nil
	}
}

func boolVar(key string, get func(c *Config) *bool) func(*Config, string) error {
	return func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return &ValueError{Key: key, Value: v, Reason: "not a boolean"}
		}
		*get(c) = b
		return nil
	}
}

func intVar(key string, get func(c *Config) *int) func(*Config, string) error {
	return func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &ValueError{Key: key, Value: v, Reason: "not an integer"}
		}
		*get(c) = n
		return nil
	}
}

// envBindings maps setting names to their environment setters. The
// variable name is EnvPrefix plus the upper-cased key.
var envBindings = []envBinding{
	{"rules", stringVar(func(c *Config) *string { return &c.Rules })},
	{"corpus", stringVar(func(c *Config) *string { return &c.Corpus })},
	{"output_dir", stringVar(func(c *Config) *string { return &c.OutputDir })},
	{"dictionary", stringVar(func(c *Config) *string { return &c.Dictionary })},
	{"syllables", stringVar(func(c *Config) *string { return &c.Syllables })},
	{"word_roots", stringVar(func(c *Config) *string { return &c.WordRoots })},
	{"conflicts", stringVar(func(c *Config) *string { return &c.Conflicts })},
	{"first_form_only", boolVar("first_form_only", func(c *Config) *bool { return &c.FirstFormOnly })},
	{"min_word_length", intVar("min_word_length", func(c *Config) *int { return &c.MinWordLength })},
	{"stroke_delimiter", stringVar(func(c *Config) *string { return &c.StrokeDelimiter })},
	{"translate_script", stringVar(func(c *Config) *string { return &c.TranslateScript })},
	{"log_level", stringVar(func(c *Config) *string { return &c.LogLevel })},
	{"log_format", stringVar(func(c *Config) *string { return &c.LogFormat })},
	{"progress", boolVar("progress", func(c *Config) *bool { return &c.Progress })},
	{"watch_rules", boolVar("watch_rules", func(c *Config) *bool { return &c.WatchRules })},
}

// EnvName returns the environment variable for a setting key.
func EnvName(key string) string {
	b := []byte(EnvPrefix + key)
	for i := len(EnvPrefix); i < len(b); i++ {
		if b[i] >= 'a' && b[i] <= 'z' {
			b[i] -= 'a' - 'A'
		}
	}
	return string(b)
}

// ApplyEnv overrides settings from environment variables.
// Empty values are treated as set, matching os.LookupEnv.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	for _, b := range envBindings {
		name := EnvName(b.key)
		v, ok := lookup(name)
		if !ok {
			continue
		}
		if err := b.set(c, v); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
