package chord

import (
	"errors"
	"testing"
)

func TestParseRecognizesWholeSet(t *testing.T) {
	const full = "XFZSKTPVLRJE~*IAUCRLBSGTWOY"

	parsed, err := Parse(full)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", full, err)
	}
	if parsed != FullStenoOrder() {
		t.Errorf("Parse(%q) = %s, want full steno order", full, parsed)
	}
	if got := FullStenoOrder().String(); got != full {
		t.Errorf("FullStenoOrder().String() = %q, want %q", got, full)
	}
}

func TestParseSidedKeys(t *testing.T) {
	tests := []struct {
		spec string
		want Chord
	}{
		{"S", New(KeySLeft)},
		{"-S", New(KeySRight)},
		{"SAS", New(KeySLeft, KeyA, KeySRight)},
		{"TL-RT", New(KeyTLeft, KeyLLeft, KeyRRight, KeyTRight)},
		{"R~R", New(KeyRLeft, KeyTilde, KeyRRight)},
		{"-R", New(KeyRRight)},
		{"--R", New(KeyRRight)},
		{"k*", New(KeyK, KeyAsterisk)},
		{"", Empty},
		{"-", Empty},
	}

	for _, tt := range tests {
		got, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.spec, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.spec, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"KQ", ErrUnrecognizedCharacter},
		{"K A", ErrUnrecognizedCharacter},
		{"Ą", ErrUnrecognizedCharacter},
		{"KK", ErrConflict},
		{"S-SS", ErrConflict},
	}

	for _, tt := range tests {
		_, err := Parse(tt.spec)
		if !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.want)
		}
	}

	var uerr *UnrecognizedCharacterError
	if _, err := Parse("KAQ"); !errors.As(err, &uerr) {
		t.Fatalf("expected *UnrecognizedCharacterError, got %T", err)
	}
	if uerr.Char != 'Q' || uerr.Offset != 2 {
		t.Errorf("error = %+v, want Q at offset 2", uerr)
	}
}

func TestParseRoundTrip(t *testing.T) {
	canonical := []string{
		"-",
		"K-",
		"-R",
		"KAT",
		"Z-SGW",
		"XF-OY",
		"XF*OY",
		"PJE*S",
		"ZKPLACTW",
		"ZSKTPVLR-C",
		"KTPV*LBSG",
		"XFZSKTPVLRJE~*IAUCRLBSGTWOY",
	}

	for _, s := range canonical {
		c, err := Parse(s)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", s, err)
			continue
		}
		if got := c.String(); got != s {
			t.Errorf("Parse(%q).String() = %q", s, got)
		}
	}
}

func TestStringRoundTripAllChords(t *testing.T) {
	for _, c := range randomChords(500) {
		back, err := Parse(c.String())
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", c.String(), err)
		}
		if back != c {
			t.Errorf("Parse(%q) = %s, want %s", c.String(), back, c)
		}
	}
}

func TestParseStrokes(t *testing.T) {
	chords, err := ParseStrokes("KAT/TO", "/")
	if err != nil {
		t.Fatalf("ParseStrokes error = %v", err)
	}
	if len(chords) != 2 {
		t.Fatalf("len = %d, want 2", len(chords))
	}
	if got := JoinStrokes(chords, "/"); got != "KAT/T-O" {
		t.Errorf("JoinStrokes = %q, want %q", got, "KAT/T-O")
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on invalid input")
		}
	}()
	MustParse("Q")
}
