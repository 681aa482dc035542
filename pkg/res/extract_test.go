package res

import (
	"strings"
	"testing"
)

func TestOk_MovesOnSuccess(t *testing.T) {
	t.Parallel()
	r := Success[string](7)

	v, ok := r.Ok()
	if !ok || v != 7 {
		t.Fatalf("expected (7, true), got (%v, %v)", v, ok)
	}

	expectViolation(t, func() { r.Ok() })
}

func TestOk_OnFailureLeavesResultLive(t *testing.T) {
	t.Parallel()
	r := Fail[int]("bad")

	if v, ok := r.Ok(); ok || v != 0 {
		t.Fatalf("expected (0, false), got (%v, %v)", v, ok)
	}

	// The failure payload is still there for the matching extraction.
	e, ok := r.Err()
	if !ok || e != "bad" {
		t.Fatalf("expected (%q, true), got (%q, %v)", "bad", e, ok)
	}
}

func TestErr_OnSuccessLeavesResultLive(t *testing.T) {
	t.Parallel()
	r := Success[string](7)

	if e, ok := r.Err(); ok || e != "" {
		t.Fatalf("expected (%q, false), got (%q, %v)", "", e, ok)
	}

	v, ok := r.Ok()
	if !ok || v != 7 {
		t.Fatalf("expected (7, true), got (%v, %v)", v, ok)
	}
}

func TestUnwrap_OnFailurePanics(t *testing.T) {
	t.Parallel()
	r := Fail[int]("bad")
	expectViolation(t, func() { r.Unwrap() })
}

func TestUnwrapErr_OnSuccessPanics(t *testing.T) {
	t.Parallel()
	r := Success[string](7)
	expectViolation(t, func() { r.UnwrapErr() })
}

func TestExpect_CarriesMessage(t *testing.T) {
	t.Parallel()
	r := Fail[int]("bad")

	defer func() {
		rec := recover()
		v, ok := rec.(Violation)
		if !ok {
			t.Fatalf("expected a Violation panic, got %T: %v", rec, rec)
		}
		if !strings.Contains(v.Error(), "wanted a parsed port") {
			t.Fatalf("diagnostic lost, got %q", v.Error())
		}
	}()
	r.Expect("wanted a parsed port")
}

func TestExpectErr_OnSuccessPanics(t *testing.T) {
	t.Parallel()
	r := Success[string](7)
	expectViolation(t, func() { r.ExpectErr("wanted a failure") })
}

func TestExpect_OnSuccessReturnsValue(t *testing.T) {
	t.Parallel()
	r := Success[string](7)
	if got := r.Expect("should not trigger"); got != 7 {
		t.Fatalf("expected 7, got %v", got)
	}
}

func TestUnwrapOr(t *testing.T) {
	t.Parallel()

	ok := Success[string](7)
	if got := ok.UnwrapOr(1); got != 7 {
		t.Fatalf("expected the held value 7, got %v", got)
	}

	bad := Fail[int]("bad")
	if got := bad.UnwrapOr(1); got != 1 {
		t.Fatalf("expected the default 1, got %v", got)
	}
}

func TestUnwrapOrDefault(t *testing.T) {
	t.Parallel()

	bad := Fail[int]("bad")
	if got := bad.UnwrapOrDefault(); got != 0 {
		t.Fatalf("expected the zero value, got %v", got)
	}

	ok := Success[string](7)
	if got := ok.UnwrapOrDefault(); got != 7 {
		t.Fatalf("expected 7, got %v", got)
	}
}

func TestUnwrapOrElse(t *testing.T) {
	t.Parallel()

	called := false
	ok := Success[string](7)
	got := ok.UnwrapOrElse(func(err string) int {
		called = true
		return -1
	})
	if got != 7 || called {
		t.Fatalf("fallback must not run on success: got=%v, called=%v", got, called)
	}

	bad := Fail[int]("bad")
	got = bad.UnwrapOrElse(func(err string) int {
		return len(err)
	})
	if got != 3 {
		t.Fatalf("expected len(%q)=3, got %v", "bad", got)
	}
}
