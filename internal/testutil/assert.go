// Package testutil holds helpers shared by the package tests: assertions
// built on go-cmp and shortcuts for setting up and playing games.
package testutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Every assertion takes optional trailing context: a format string and its
// arguments, or a single value. The context prefixes the failure message.

// AssertEqual reports a go-cmp diff when got and want differ.
func AssertEqual(t testing.TB, got, want any, context ...any) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		report(t, context, "mismatch (-want +got):\n%s", diff)
	}
}

// AssertNoError fails when err is non-nil.
func AssertNoError(t testing.TB, err error, context ...any) {
	t.Helper()
	if err != nil {
		report(t, context, "unexpected error: %v", err)
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t testing.TB, err, target error, context ...any) {
	t.Helper()
	if !errors.Is(err, target) {
		report(t, context, "error %v does not wrap %v", err, target)
	}
}

// AssertContains fails unless substr occurs in got.
func AssertContains(t testing.TB, got, substr string, context ...any) {
	t.Helper()
	if !strings.Contains(got, substr) {
		report(t, context, "%q does not contain %q", got, substr)
	}
}

// AssertTrue fails when cond is false.
func AssertTrue(t testing.TB, cond bool, context ...any) {
	t.Helper()
	if !cond {
		report(t, context, "condition is false")
	}
}

// AssertFalse fails when cond is true.
func AssertFalse(t testing.TB, cond bool, context ...any) {
	t.Helper()
	if cond {
		report(t, context, "condition is true")
	}
}

func report(t testing.TB, context []any, format string, args ...any) {
	t.Helper()
	msg := fmt.Sprintf(format, args...)
	if prefix := describe(context); prefix != "" {
		msg = prefix + ": " + msg
	}
	t.Error(msg)
}

// describe renders assertion context. A leading string is used as a format.
func describe(context []any) string {
	switch {
	case len(context) == 0:
		return ""
	case len(context) > 1:
		if format, ok := context[0].(string); ok {
			return fmt.Sprintf(format, context[1:]...)
		}
	}
	return fmt.Sprint(context[0])
}
