package lua

import (
	"context"
	"errors"
	"testing"
	"time"

	lua "github.com/yuin/gopher-lua"
)

func TestState_DoStringAndCall(t *testing.T) {
	s := NewState()
	defer s.Close()

	ctx := context.Background()
	if err := s.DoString(ctx, `function add(a, b) return a + b, "ok" end`); err != nil {
		t.Fatalf("DoString failed: %v", err)
	}

	ret, err := s.Call(ctx, "add", lua.LNumber(2), lua.LNumber(3))
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if len(ret) != 2 {
		t.Fatalf("got %d results, want 2", len(ret))
	}
	if ret[0] != lua.LNumber(5) || ret[1] != lua.LString("ok") {
		t.Errorf("results = %v", ret)
	}
}

func TestState_CallMissing(t *testing.T) {
	s := NewState()
	defer s.Close()

	if _, err := s.Call(context.Background(), "nothing"); err == nil {
		t.Error("expected error calling undefined function")
	}
	if s.HasFunction("nothing") {
		t.Error("HasFunction reported an undefined function")
	}
}

func TestState_Sandbox(t *testing.T) {
	s := NewState()
	defer s.Close()

	ctx := context.Background()
	for _, code := range []string{
		`dofile("/etc/passwd")`,
		`loadstring("return 1")()`,
		`require("os")`,
		`os.exit(1)`,
		`io.open("/tmp/x", "w")`,
	} {
		if err := s.DoString(ctx, code); err == nil {
			t.Errorf("%s should fail in the sandbox", code)
		}
	}

	if err := s.DoString(ctx, `x = string.upper("kot") .. math.floor(1.5)`); err != nil {
		t.Errorf("safe libraries unavailable: %v", err)
	}
}

func TestState_Timeout(t *testing.T) {
	s := NewState(WithExecutionTimeout(50 * time.Millisecond))
	defer s.Close()

	err := s.DoString(context.Background(), `while true do end`)
	if !errors.Is(err, ErrExecutionTimeout) {
		t.Errorf("error = %v, want ErrExecutionTimeout", err)
	}

	// The state stays usable after a timeout.
	if err := s.DoString(context.Background(), `y = 1`); err != nil {
		t.Errorf("DoString after timeout failed: %v", err)
	}
}

func TestState_Closed(t *testing.T) {
	s := NewState()
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close = %v", err)
	}
	if err := s.DoString(context.Background(), `x = 1`); !errors.Is(err, ErrStateClosed) {
		t.Errorf("DoString after Close = %v, want ErrStateClosed", err)
	}
}
