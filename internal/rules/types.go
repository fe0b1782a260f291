package rules

import "maps"

// Tables is the file representation of a rule set.
type Tables struct {
	// Version is the schema version of the file.
	Version int `toml:"version" yaml:"version"`

	// Include lists files loaded underneath this one.
	Include []string `toml:"include,omitempty" yaml:"include,omitempty"`

	// Diacritics lists the non-ASCII letters accepted in words.
	Diacritics string `toml:"diacritics" yaml:"diacritics"`

	// NullInfix is the base chord for infixes.
	NullInfix string `toml:"null_infix" yaml:"null_infix"`

	// SpacingInfix forces a space between word parts.
	SpacingInfix string `toml:"spacing_infix" yaml:"spacing_infix"`

	// InvalidChords is the deny-list of forbidden key combinations.
	InvalidChords []string `toml:"invalid_chords" yaml:"invalid_chords"`

	// PrefixExceptions are words that must not have a prefix stripped.
	PrefixExceptions []string `toml:"prefix_exceptions" yaml:"prefix_exceptions"`

	// SuffixExceptions are roots that must not have a suffix stripped.
	SuffixExceptions []string `toml:"suffix_exceptions" yaml:"suffix_exceptions"`

	LeftHand     map[string]string `toml:"left_hand" yaml:"left_hand"`
	Center       map[string]string `toml:"center" yaml:"center"`
	RightHand    map[string]string `toml:"right_hand" yaml:"right_hand"`
	Prefixes     map[string]string `toml:"prefixes" yaml:"prefixes"`
	Suffixes     map[string]string `toml:"suffixes" yaml:"suffixes"`
	Shortcuts    map[string]string `toml:"shortcuts" yaml:"shortcuts"`
	SpecialChars map[string]string `toml:"special_chars" yaml:"special_chars"`
	Commands     map[string]string `toml:"commands" yaml:"commands"`
}

// Clone returns a deep copy of the tables.
func (t *Tables) Clone() *Tables {
	if t == nil {
		return nil
	}
	c := *t
	c.Include = append([]string(nil), t.Include...)
	c.InvalidChords = append([]string(nil), t.InvalidChords...)
	c.PrefixExceptions = append([]string(nil), t.PrefixExceptions...)
	c.SuffixExceptions = append([]string(nil), t.SuffixExceptions...)
	c.LeftHand = maps.Clone(t.LeftHand)
	c.Center = maps.Clone(t.Center)
	c.RightHand = maps.Clone(t.RightHand)
	c.Prefixes = maps.Clone(t.Prefixes)
	c.Suffixes = maps.Clone(t.Suffixes)
	c.Shortcuts = maps.Clone(t.Shortcuts)
	c.SpecialChars = maps.Clone(t.SpecialChars)
	c.Commands = maps.Clone(t.Commands)
	return &c
}

// Overlay returns a copy of t with the values of over applied on top.
// Scalars and lists in over replace those of t when set; table entries are
// merged key by key with over winning.
func (t *Tables) Overlay(over *Tables) *Tables {
	out := t.Clone()
	if out == nil {
		out = &Tables{}
	}
	if over == nil {
		return out
	}

	if over.Version != 0 {
		out.Version = over.Version
	}
	if over.Diacritics != "" {
		out.Diacritics = over.Diacritics
	}
	if over.NullInfix != "" {
		out.NullInfix = over.NullInfix
	}
	if over.SpacingInfix != "" {
		out.SpacingInfix = over.SpacingInfix
	}
	if over.InvalidChords != nil {
		out.InvalidChords = append([]string(nil), over.InvalidChords...)
	}
	out.PrefixExceptions = unionStrings(out.PrefixExceptions, over.PrefixExceptions)
	out.SuffixExceptions = unionStrings(out.SuffixExceptions, over.SuffixExceptions)
	out.Include = nil

	out.LeftHand = mergeTable(out.LeftHand, over.LeftHand)
	out.Center = mergeTable(out.Center, over.Center)
	out.RightHand = mergeTable(out.RightHand, over.RightHand)
	out.Prefixes = mergeTable(out.Prefixes, over.Prefixes)
	out.Suffixes = mergeTable(out.Suffixes, over.Suffixes)
	out.Shortcuts = mergeTable(out.Shortcuts, over.Shortcuts)
	out.SpecialChars = mergeTable(out.SpecialChars, over.SpecialChars)
	out.Commands = mergeTable(out.Commands, over.Commands)

	return out
}

// mergeTable copies src entries into dst. An empty chord string removes
// the entry.
func mergeTable(dst, src map[string]string) map[string]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	for k, v := range src {
		if v == "" {
			delete(dst, k)
			continue
		}
		dst[k] = v
	}
	return dst
}

func unionStrings(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, s := range list {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}
