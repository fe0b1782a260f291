package lua

import (
	"context"
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// TranslateFunc is the global function a translation script defines.
const TranslateFunc = "translate"

// Translator calls a script's translate function for dictionary entries.
type Translator struct {
	state   *State
	defined bool
}

// LoadTranslator loads a translation script from path.
func LoadTranslator(ctx context.Context, path string, opts ...StateOption) (*Translator, error) {
	s := NewState(opts...)
	if err := s.DoFile(ctx, path); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return &Translator{state: s, defined: s.HasFunction(TranslateFunc)}, nil
}

// NewTranslator loads a translation script from source code.
func NewTranslator(ctx context.Context, code string, opts ...StateOption) (*Translator, error) {
	s := NewState(opts...)
	if err := s.DoString(ctx, code); err != nil {
		_ = s.Close()
		return nil, err
	}
	return &Translator{state: s, defined: s.HasFunction(TranslateFunc)}, nil
}

// Translate returns the text to store for an entry and whether to keep it.
func (t *Translator) Translate(ctx context.Context, stroke, text, kind string) (string, bool, error) {
	if !t.defined {
		return text, true, nil
	}

	ret, err := t.state.Call(ctx, TranslateFunc, lua.LString(stroke), lua.LString(text), lua.LString(kind))
	if err != nil {
		return "", false, fmt.Errorf("translate(%q, %q, %q): %w", stroke, text, kind, err)
	}
	if len(ret) == 0 {
		return text, true, nil
	}

	switch v := ret[0].(type) {
	case lua.LString:
		return string(v), true, nil
	case *lua.LNilType:
		return "", false, nil
	case lua.LBool:
		if !bool(v) {
			return "", false, nil
		}
		return text, true, nil
	default:
		return "", false, fmt.Errorf("%w: %s from translate(%q)", ErrBadResult, ret[0].Type(), stroke)
	}
}

// Close releases the script state.
func (t *Translator) Close() error {
	return t.state.Close()
}
