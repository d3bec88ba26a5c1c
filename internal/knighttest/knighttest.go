// Package knighttest provides shared helpers for testing Knight source
// against expected results: a buffered-I/O Environment and a table-driven
// test case shape.
//
// Grounded on testutils/testutils.go's SourceTestCase/TestFunc pattern,
// narrowed from a shared *VM singleton (Io's test helper reuses one VM
// across all tests) to a fresh Environment per case, since Knight
// Environments are cheap and tests commonly need distinct flag sets.
package knighttest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/knightlang/knight-go"
	"github.com/knightlang/knight-go/ext"
)

// NewEnvironment builds an Environment over in-memory stdin/stdout
// buffers, with every registered extension wired in according to flags.
func NewEnvironment(flags knight.Flags, stdin string) (*knight.Environment, *bytes.Buffer) {
	var out bytes.Buffer
	env := knight.NewEnvironment(knight.Config{
		Stdin:  strings.NewReader(stdin),
		Stdout: &out,
		Flags:  flags,
	})
	ext.RegisterAll(env)
	return env, &out
}

// Case is a table-driven test case: Knight source, the flags to run it
// under, and a predicate over the result.
type Case struct {
	Name   string
	Source string
	Flags  knight.Flags
	Stdin  string

	// Pass receives the evaluation result (nil on error), the error (nil
	// on success), and everything written to stdout, and reports whether
	// the case passed.
	Pass func(t *testing.T, result knight.Value, err error, stdout string)
}

// Run executes every case in turn as a subtest.
func Run(t *testing.T, cases []Case) {
	for _, c := range cases {
		c := c
		t.Run(c.Name, func(t *testing.T) {
			env, out := NewEnvironment(c.Flags, c.Stdin)
			result, err := knight.Run(c.Source, env)
			c.Pass(t, result, err, out.String())
		})
	}
}

// WantValue returns a Pass function asserting the result's String() form
// equals want and that no error occurred.
func WantValue(want string) func(*testing.T, knight.Value, error, string) {
	return func(t *testing.T, result knight.Value, err error, stdout string) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.String() != want {
			t.Errorf("got %q, want %q", result.String(), want)
		}
	}
}

// WantStdout returns a Pass function asserting the program's captured
// stdout equals want and that no error occurred.
func WantStdout(want string) func(*testing.T, knight.Value, error, string) {
	return func(t *testing.T, result knight.Value, err error, stdout string) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stdout != want {
			t.Errorf("got stdout %q, want %q", stdout, want)
		}
	}
}

// WantErrorKind returns a Pass function asserting evaluation failed with
// the given ErrorKind.
func WantErrorKind(kind knight.ErrorKind) func(*testing.T, knight.Value, error, string) {
	return func(t *testing.T, result knight.Value, err error, stdout string) {
		if !knight.IsKind(err, kind) {
			t.Errorf("got error %v, want kind %v", err, kind)
		}
	}
}
