package export

import (
	"bytes"
	"encoding/json"
	"io"
	"sort"
)

// Kind tags the origin of a dictionary entry.
type Kind string

const (
	KindCommand  Kind = "command"
	KindSpecial  Kind = "special_char"
	KindSuffix   Kind = "suffix"
	KindPrefix   Kind = "prefix"
	KindChunk    Kind = "chunk"
	KindSyllable Kind = "syllable"
	KindWordRoot Kind = "word_root"
)

// Entry is one stroke-to-text mapping.
type Entry struct {
	Stroke string
	Text   string
	Kind   Kind
}

// Dictionary maps outlines to translations.
type Dictionary struct {
	entries map[string]Entry

	// Collisions counts entries dropped because their outline was taken.
	Collisions int
	// Dropped counts entries the translate hook removed.
	Dropped int
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{entries: make(map[string]Entry)}
}

// Add stores e unless its outline is taken. It returns false on a collision.
func (d *Dictionary) Add(e Entry) bool {
	if _, taken := d.entries[e.Stroke]; taken {
		d.Collisions++
		return false
	}
	d.entries[e.Stroke] = e
	return true
}

// Lookup returns the entry stored for stroke.
func (d *Dictionary) Lookup(stroke string) (Entry, bool) {
	e, ok := d.entries[stroke]
	return e, ok
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Entries returns the entries ordered by outline.
func (d *Dictionary) Entries() []Entry {
	out := make([]Entry, 0, len(d.entries))
	for _, e := range d.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Stroke < out[j].Stroke })
	return out
}

// JSON encodes the dictionary as a flat outline-to-text object.
// Keys are sorted and HTML characters are left unescaped so that Plover
// operators such as {&} survive.
func (d *Dictionary) JSON() ([]byte, error) {
	m := make(map[string]string, len(d.entries))
	for k, e := range d.entries {
		m[k] = e.Text
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteJSON writes the dictionary to w.
func (d *Dictionary) WriteJSON(w io.Writer) error {
	data, err := d.JSON()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
