package rules

import (
	"sort"
	"strings"

	"github.com/dshills/plsteno/internal/affix"
	"github.com/dshills/plsteno/internal/chord"
)

// Table names used in errors and logs.
const (
	TableLeftHand     = "left_hand"
	TableCenter       = "center"
	TableRightHand    = "right_hand"
	TablePrefixes     = "prefixes"
	TableSuffixes     = "suffixes"
	TableShortcuts    = "shortcuts"
	TableSpecialChars = "special_chars"
	TableCommands     = "commands"
	TableDenyList     = "invalid_chords"
	TableInfixes      = "infixes"
)

// Rules is a compiled, read-only rule set.
// Tables returned by the accessors must not be modified.
type Rules struct {
	prefixes  *affix.Table[chord.Chord]
	suffixes  *affix.Table[chord.Chord]
	leftHand  *affix.Table[chord.Chord]
	center    *affix.Table[chord.Chord]
	rightHand *affix.Table[chord.Chord]

	shortcuts    []affix.Entry[chord.Chord]
	specialChars []affix.Entry[chord.Chord]
	commands     []affix.Entry[chord.Chord]

	prefixExceptions map[string]struct{}
	suffixExceptions map[string]struct{}

	diacritics   string
	denyList     []chord.Chord
	nullInfix    chord.Chord
	spacingInfix chord.Chord
}

// Compile parses every chord of the tables.
// Any malformed chord fails the whole compilation with a *CompileError.
func Compile(t *Tables) (*Rules, error) {
	if t == nil {
		t = &Tables{}
	}

	r := &Rules{
		diacritics:       t.Diacritics,
		prefixExceptions: toSet(t.PrefixExceptions),
		suffixExceptions: toSet(t.SuffixExceptions),
	}

	var err error
	if r.prefixes, err = compileTable(TablePrefixes, t.Prefixes, ""); err != nil {
		return nil, err
	}
	if r.suffixes, err = compileTable(TableSuffixes, t.Suffixes, ""); err != nil {
		return nil, err
	}
	if r.leftHand, err = compileTable(TableLeftHand, t.LeftHand, ""); err != nil {
		return nil, err
	}
	if r.center, err = compileTable(TableCenter, t.Center, ""); err != nil {
		return nil, err
	}
	// Right-hand chords are written without the separating hyphen.
	if r.rightHand, err = compileTable(TableRightHand, t.RightHand, "-"); err != nil {
		return nil, err
	}

	if r.shortcuts, err = compileEntries(TableShortcuts, t.Shortcuts); err != nil {
		return nil, err
	}
	if r.specialChars, err = compileEntries(TableSpecialChars, t.SpecialChars); err != nil {
		return nil, err
	}
	if r.commands, err = compileEntries(TableCommands, t.Commands); err != nil {
		return nil, err
	}

	deny := t.InvalidChords
	if deny == nil {
		r.denyList = chord.DefaultDenyList()
	} else {
		for _, spec := range deny {
			c, err := chord.Parse(spec)
			if err != nil {
				return nil, &CompileError{Table: TableDenyList, Fragment: spec, Chord: spec, Err: err}
			}
			r.denyList = append(r.denyList, c)
		}
	}

	if r.nullInfix, err = compileChord(TableInfixes, "null_infix", t.NullInfix); err != nil {
		return nil, err
	}
	if r.spacingInfix, err = compileChord(TableInfixes, "spacing_infix", t.SpacingInfix); err != nil {
		return nil, err
	}

	return r, nil
}

func compileChord(table, fragment, spec string) (chord.Chord, error) {
	c, err := chord.Parse(spec)
	if err != nil {
		return chord.Empty, &CompileError{Table: table, Fragment: fragment, Chord: spec, Err: err}
	}
	return c, nil
}

func compileTable(name string, src map[string]string, lead string) (*affix.Table[chord.Chord], error) {
	table := affix.NewTable[chord.Chord]()
	for text, spec := range src {
		c, err := compileChord(name, text, lead+spec)
		if err != nil {
			return nil, err
		}
		table.Set(text, c)
	}
	return table, nil
}

func compileEntries(name string, src map[string]string) ([]affix.Entry[chord.Chord], error) {
	entries := make([]affix.Entry[chord.Chord], 0, len(src))
	for text, spec := range src {
		c, err := compileChord(name, text, spec)
		if err != nil {
			return nil, err
		}
		entries = append(entries, affix.Entry[chord.Chord]{Text: text, Value: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Text < entries[j].Text
	})
	return entries, nil
}

func toSet(list []string) map[string]struct{} {
	set := make(map[string]struct{}, len(list))
	for _, s := range list {
		set[s] = struct{}{}
	}
	return set
}

// Prefixes returns the prefix table.
func (r *Rules) Prefixes() *affix.Table[chord.Chord] { return r.prefixes }

// Suffixes returns the suffix table.
func (r *Rules) Suffixes() *affix.Table[chord.Chord] { return r.suffixes }

// LeftHand returns the left-hand combination table.
func (r *Rules) LeftHand() *affix.Table[chord.Chord] { return r.leftHand }

// Center returns the center combination table.
func (r *Rules) Center() *affix.Table[chord.Chord] { return r.center }

// RightHand returns the right-hand combination table.
func (r *Rules) RightHand() *affix.Table[chord.Chord] { return r.rightHand }

// Shortcuts returns the shortcut entries sorted by text.
func (r *Rules) Shortcuts() []affix.Entry[chord.Chord] { return r.shortcuts }

// SpecialChars returns the special character entries sorted by text.
func (r *Rules) SpecialChars() []affix.Entry[chord.Chord] { return r.specialChars }

// Commands returns the command entries sorted by text.
func (r *Rules) Commands() []affix.Entry[chord.Chord] { return r.commands }

// DenyList returns the forbidden key combinations.
func (r *Rules) DenyList() []chord.Chord { return r.denyList }

// NullInfix returns the base infix chord.
func (r *Rules) NullInfix() chord.Chord { return r.nullInfix }

// SpacingInfix returns the chord that forces a space.
func (r *Rules) SpacingInfix() chord.Chord { return r.spacingInfix }

// Diacritics returns the accepted non-ASCII letters.
func (r *Rules) Diacritics() string { return r.diacritics }

// IsPrefixException returns true if prefixes must not be stripped from word.
func (r *Rules) IsPrefixException(word string) bool {
	_, ok := r.prefixExceptions[word]
	return ok
}

// IsSuffixException returns true if suffixes must not be stripped from root.
func (r *Rules) IsSuffixException(root string) bool {
	_, ok := r.suffixExceptions[root]
	return ok
}

// IsLetter returns true if ch is an ASCII letter or an accepted diacritic.
func (r *Rules) IsLetter(ch rune) bool {
	if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') {
		return true
	}
	return strings.ContainsRune(r.diacritics, ch)
}

// Validate checks a chord against the rule set's deny-list.
func (r *Rules) Validate(c chord.Chord) error {
	return c.ValidateAgainst(r.denyList)
}
