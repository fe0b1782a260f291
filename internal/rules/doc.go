// Package rules loads and compiles the rule tables of the steno generator.
//
// Rule tables map literal Polish text fragments to chord notation. They are
// authored as TOML (or YAML) files with one table per category:
//
//	[prefixes]     - word prefixes, stripped before root resolution
//	[suffixes]     - word suffixes, stripped before root resolution
//	[left_hand]    - clusters that open a stroke
//	[center]       - vowel clusters for the middle keys
//	[right_hand]   - clusters that close a stroke (read after a hyphen)
//	[shortcuts]    - whole roots with a dedicated chord
//	[special_chars], [commands] - exported verbatim to the dictionary
//
// Top-level keys hold the exception lists, the deny-list of invalid key
// combinations and the infix chords. A file may list other files under
// "include"; included tables are loaded first and the including file
// overrides them. The name "default" refers to the embedded Polish tables.
//
// # Lifecycle
//
// Tables are the raw, mergeable form. Compile parses every chord once and
// returns an immutable *Rules; a reload always builds a new *Rules.
//
//	loader := rules.NewLoader()
//	tables, err := loader.LoadFile("custom.toml")
//	if err != nil {
//	    return err
//	}
//	r, err := rules.Compile(tables)
package rules
