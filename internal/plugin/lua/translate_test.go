package lua

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const script = `
function translate(stroke, text, kind)
  if kind == "command" then
    return nil
  end
  if kind == "chunk" then
    return string.upper(text)
  end
  if stroke == "KAT" then
    return false
  end
  if stroke == "TA" then
    return 42
  end
  return text
end
`

func TestTranslator(t *testing.T) {
	ctx := context.Background()
	tr, err := NewTranslator(ctx, script)
	if err != nil {
		t.Fatalf("NewTranslator failed: %v", err)
	}
	defer tr.Close()

	tests := []struct {
		stroke, text, kind string
		want               string
		keep               bool
	}{
		{"KAUT", "{&kot}", "chunk", "{&KOT}", true},
		{"XF*OY", "{^ ^}", "command", "", false},
		{"KAT", "kat", "word_root", "", false},
		{"PRE*", "prze{^}", "prefix", "prze{^}", true},
	}

	for _, tt := range tests {
		got, keep, err := tr.Translate(ctx, tt.stroke, tt.text, tt.kind)
		if err != nil {
			t.Errorf("Translate(%q) failed: %v", tt.stroke, err)
			continue
		}
		if keep != tt.keep || got != tt.want {
			t.Errorf("Translate(%q, %q, %q) = %q, %v; want %q, %v",
				tt.stroke, tt.text, tt.kind, got, keep, tt.want, tt.keep)
		}
	}

	if _, _, err := tr.Translate(ctx, "TA", "ta", "syllable"); !errors.Is(err, ErrBadResult) {
		t.Errorf("number result error = %v, want ErrBadResult", err)
	}
}

func TestTranslator_NoFunction(t *testing.T) {
	ctx := context.Background()
	tr, err := NewTranslator(ctx, `x = 1`)
	if err != nil {
		t.Fatalf("NewTranslator failed: %v", err)
	}
	defer tr.Close()

	got, keep, err := tr.Translate(ctx, "KAT", "kat", "word_root")
	if err != nil || !keep || got != "kat" {
		t.Errorf("Translate = %q, %v, %v; want passthrough", got, keep, err)
	}
}

func TestLoadTranslator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hook.lua")
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}

	tr, err := LoadTranslator(context.Background(), path)
	if err != nil {
		t.Fatalf("LoadTranslator failed: %v", err)
	}
	defer tr.Close()

	if _, err := LoadTranslator(context.Background(), filepath.Join(t.TempDir(), "none.lua")); err == nil {
		t.Error("expected error for missing script")
	}
	if _, err := NewTranslator(context.Background(), `function (`); err == nil {
		t.Error("expected syntax error")
	}
}
