// Package affix provides longest-match lookup of text fragments.
//
// A Table maps literal fragments (prefixes, suffixes, hand combinations,
// word roots, chunks) to values. Longest searches a needle for the longest
// fragment of the table that starts (or ends) it, trying candidate lengths
// from longest to shortest. Candidates are measured in runes, so Polish
// letters count as one character each.
//
// # Usage
//
//	prefixes := affix.NewTable[chord.Chord]()
//	prefixes.Set("prze", chord.MustParse("PRE*"))
//
//	m, ok := affix.Longest("przebiegłość", prefixes, 2, affix.Prefix)
//	if ok {
//	    // m.Text == "prze", m.Rest == "biegłość"
//	}
package affix
