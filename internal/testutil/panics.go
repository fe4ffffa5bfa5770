package testutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// Recover runs fn and returns the value it panicked with, or nil.
func Recover(fn func()) (recovered interface{}) {
	defer func() {
		recovered = recover()
	}()
	fn()
	return nil
}

// AssertPanicsWith fails unless fn panics with an error matching target
// under errors.Is. It returns the recovered error for further checks.
func AssertPanicsWith(t *testing.T, fn func(), target error, msgAndArgs ...interface{}) error {
	t.Helper()
	msg := formatMessage(msgAndArgs...)
	if msg != "" {
		msg += ": "
	}
	v := Recover(fn)
	if v == nil {
		t.Errorf("%sexpected panic wrapping %v, got none", msg, target)
		return nil
	}
	err, ok := v.(error)
	if !ok {
		t.Errorf("%spanic value %v (%T) is not an error", msg, v, v)
		return fmt.Errorf("%v", v)
	}
	if !errors.Is(err, target) {
		t.Errorf("%spanic %v does not wrap %v", msg, err, target)
	}
	return err
}

// Lines splits rendered text into lines, dropping the final empty line
// left by a trailing newline.
func Lines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
