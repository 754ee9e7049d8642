package testutil

import (
	"fmt"
	"io"
	"strings"
	"testing"
)

// recorder captures failures so assertions can be checked without failing
// the enclosing test.
type recorder struct {
	testing.TB
	errors []string
}

func (r *recorder) Helper() {}

func (r *recorder) Error(args ...any) { r.errors = append(r.errors, fmt.Sprint(args...)) }

func TestAssertions(t *testing.T) {
	wrapped := fmt.Errorf("reading: %w", io.EOF)
	tests := []struct {
		name     string
		run      func(tb testing.TB)
		wantFail string
	}{
		{"equal", func(tb testing.TB) { AssertEqual(tb, []string{"e4"}, []string{"e4"}) }, ""},
		{"not equal", func(tb testing.TB) { AssertEqual(tb, "e4", "e5") }, "mismatch (-want +got)"},
		{"no error", func(tb testing.TB) { AssertNoError(tb, nil) }, ""},
		{"error", func(tb testing.TB) { AssertNoError(tb, io.EOF) }, "unexpected error: EOF"},
		{"error is", func(tb testing.TB) { AssertErrorIs(tb, wrapped, io.EOF) }, ""},
		{"error is not", func(tb testing.TB) { AssertErrorIs(tb, io.EOF, io.ErrClosedPipe) }, "does not wrap"},
		{"contains", func(tb testing.TB) { AssertContains(tb, "White won by checkmate.", "checkmate") }, ""},
		{"does not contain", func(tb testing.TB) { AssertContains(tb, "Draw", "mate") }, `"Draw" does not contain "mate"`},
		{"true", func(tb testing.TB) { AssertTrue(tb, true) }, ""},
		{"false as true", func(tb testing.TB) { AssertTrue(tb, false, "ply %d", 3) }, "ply 3: condition is false"},
		{"false", func(tb testing.TB) { AssertFalse(tb, false) }, ""},
		{"true as false", func(tb testing.TB) { AssertFalse(tb, true, "in check") }, "in check: condition is true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{TB: t}
			tt.run(rec)
			switch {
			case tt.wantFail == "" && len(rec.errors) > 0:
				t.Errorf("unexpected failure: %v", rec.errors)
			case tt.wantFail != "" && (len(rec.errors) != 1 || !strings.Contains(rec.errors[0], tt.wantFail)):
				t.Errorf("failures = %q, want one containing %q", rec.errors, tt.wantFail)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		context []any
		want    string
	}{
		{nil, ""},
		{[]any{"hello"}, "hello"},
		{[]any{42}, "42"},
		{[]any{"move %s", "e4"}, "move e4"},
		{[]any{"%s %d", "ply", 7}, "ply 7"},
	}
	for _, tt := range tests {
		if got := describe(tt.context); got != tt.want {
			t.Errorf("describe(%v) = %q, want %q", tt.context, got, tt.want)
		}
	}
}
