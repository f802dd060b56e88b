package testutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// recorder captures failures instead of failing the enclosing test.
type recorder struct {
	testing.TB
	failures []string
}

func (r *recorder) Helper() {}

func (r *recorder) Error(args ...any) {
	r.failures = append(r.failures, fmt.Sprint(args...))
}

func (r *recorder) Errorf(format string, args ...any) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func TestAssertions(t *testing.T) {
	errBoom := errors.New("boom")
	var nilPtr *int
	x := 1

	tests := []struct {
		name   string
		assert func(tb testing.TB)
		fails  bool
	}{
		{"equal", func(tb testing.TB) { AssertEqual(tb, []int{1, 2}, []int{1, 2}) }, false},
		{"not equal", func(tb testing.TB) { AssertEqual(tb, "a", "b") }, true},
		{"same elements", func(tb testing.TB) { AssertSameElements(tb, []string{"b", "a"}, []string{"a", "b"}) }, false},
		{"nil and empty elements", func(tb testing.TB) { AssertSameElements(tb, nil, []string{}) }, false},
		{"different elements", func(tb testing.TB) { AssertSameElements(tb, []string{"a"}, []string{"a", "a"}) }, true},
		{"no error", func(tb testing.TB) { AssertNoError(tb, nil) }, false},
		{"unexpected error", func(tb testing.TB) { AssertNoError(tb, errBoom) }, true},
		{"error", func(tb testing.TB) { AssertError(tb, errBoom) }, false},
		{"missing error", func(tb testing.TB) { AssertError(tb, nil) }, true},
		{"wrapped error", func(tb testing.TB) { AssertErrorIs(tb, fmt.Errorf("x: %w", errBoom), errBoom) }, false},
		{"other error", func(tb testing.TB) { AssertErrorIs(tb, errors.New("boom"), errBoom) }, true},
		{"contains", func(tb testing.TB) { AssertContains(tb, "e2e4 e7e5", "e7e5") }, false},
		{"does not contain", func(tb testing.TB) { AssertContains(tb, "e2e4", "e7e5") }, true},
		{"not contains", func(tb testing.TB) { AssertNotContains(tb, "e2e4", "e7e5") }, false},
		{"contains unwanted", func(tb testing.TB) { AssertNotContains(tb, "e2e4", "e2") }, true},
		{"true", func(tb testing.TB) { AssertTrue(tb, true) }, false},
		{"not true", func(tb testing.TB) { AssertTrue(tb, false) }, true},
		{"false", func(tb testing.TB) { AssertFalse(tb, false) }, false},
		{"not false", func(tb testing.TB) { AssertFalse(tb, true) }, true},
		{"untyped nil", func(tb testing.TB) { AssertNil(tb, nil) }, false},
		{"typed nil", func(tb testing.TB) { AssertNil(tb, nilPtr) }, false},
		{"nil slice", func(tb testing.TB) { AssertNil(tb, []int(nil)) }, false},
		{"not nil", func(tb testing.TB) { AssertNil(tb, &x) }, true},
		{"non-nil", func(tb testing.TB) { AssertNotNil(tb, &x) }, false},
		{"non-nil value", func(tb testing.TB) { AssertNotNil(tb, 0) }, false},
		{"typed nil is nil", func(tb testing.TB) { AssertNotNil(tb, nilPtr) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{TB: t}
			tt.assert(rec)
			if failed := len(rec.failures) > 0; failed != tt.fails {
				t.Errorf("failed = %v; want %v (failures: %q)", failed, tt.fails, rec.failures)
			}
		})
	}
}

func TestFailurePrefix(t *testing.T) {
	rec := &recorder{TB: t}
	AssertTrue(rec, false, "move %s", "e2e4")
	AssertFalse(rec, true)

	if len(rec.failures) != 2 {
		t.Fatalf("got %d failures; want 2", len(rec.failures))
	}
	if !strings.HasPrefix(rec.failures[0], "move e2e4: ") {
		t.Errorf("failure %q lacks the message prefix", rec.failures[0])
	}
	if rec.failures[1] != "expected false but got true" {
		t.Errorf("failure %q should have no prefix", rec.failures[1])
	}
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want string
	}{
		{"no args", nil, ""},
		{"plain string", []any{"hello"}, "hello"},
		{"non-string", []any{42}, "42"},
		{"format", []any{"ply %d: %s", 3, "e2e4"}, "ply 3: e2e4"},
		{"non-string with args", []any{42, "x"}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q; want %q", tt.args, got, tt.want)
			}
		})
	}
}
