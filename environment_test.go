package knight

import (
	"bytes"
	"strings"
	"testing"
)

func TestEnvironmentLookupUndefined(t *testing.T) {
	env := NewEnvironment(Config{})
	if _, err := env.Lookup("x"); !IsKind(err, ErrUndefinedVariable) {
		t.Errorf("expected UndefinedVariable, got %v", err)
	}

	env2 := NewEnvironment(Config{Flags: Flags{UnassignedVariablesDefaultToNull: true}})
	v, err := env2.Lookup("x")
	if err != nil || v != NullValue {
		t.Errorf("got %v, %v, want Null, nil", v, err)
	}
}

func TestEnvironmentAssignAndLookup(t *testing.T) {
	env := NewEnvironment(Config{})
	env.Assign("x", Integer{42})
	v, err := env.Lookup("x")
	if err != nil || v.(Integer).Value != 42 {
		t.Errorf("got %v, %v, want 42, nil", v, err)
	}
}

func TestEnvironmentPromptQueueAndStdin(t *testing.T) {
	env := NewEnvironment(Config{Stdin: strings.NewReader("from stdin\n")})
	env.QueuePrompt(String{Value: "queued"})
	v, err := env.Prompt()
	if err != nil || v.(String).Value != "queued" {
		t.Fatalf("got %v, %v, want queued, nil", v, err)
	}
	v, err = env.Prompt()
	if err != nil || v.(String).Value != "from stdin" {
		t.Fatalf("got %v, %v, want \"from stdin\", nil", v, err)
	}
	v, err = env.Prompt()
	if err != nil || v != NullValue {
		t.Fatalf("got %v, %v, want Null, nil (EOF)", v, err)
	}
}

func TestEnvironmentOutputCapture(t *testing.T) {
	var stdout, capture bytes.Buffer
	env := NewEnvironment(Config{Stdout: &stdout, Capture: &capture})
	if err := env.Output("hi", true); err != nil {
		t.Fatal(err)
	}
	if stdout.String() != "hi\n" || capture.String() != "hi\n" {
		t.Errorf("stdout=%q capture=%q, want both %q", stdout.String(), capture.String(), "hi\n")
	}
}

func TestEnvironmentRunHandleCatchesError(t *testing.T) {
	env := NewEnvironment(Config{})
	body := Call{Operator: "Y", Args: []Node{NewLiteral(String{Value: "boom"}, Span{})}}
	env.RegisterOperator("Y", 1, func(env *Environment, args []Node) (Value, error) {
		v, err := args[0].Eval(env)
		if err != nil {
			return nil, err
		}
		return nil, NewYeetError(v)
	})
	catch := NewVarRef("_errmsg", Span{})
	result, err := env.RunHandle(body, catch)
	if err != nil {
		t.Fatal(err)
	}
	if result.(String).Value != "boom" {
		t.Errorf("got %v, want \"boom\"", result)
	}
	if env.CatchDepth() != 0 {
		t.Errorf("catch stack should be empty after RunHandle, got depth %d", env.CatchDepth())
	}
}

func TestEnvironmentRunHandleLetsQuitThrough(t *testing.T) {
	env := NewEnvironment(Config{})
	quitErr := &Quit{Code: 3}
	env.RegisterOperator("Z", 0, func(env *Environment, args []Node) (Value, error) {
		return nil, quitErr
	})
	call := Call{Operator: "Z"}
	_, err := env.RunHandle(call, NewVarRef("_errmsg", Span{}))
	if err != quitErr {
		t.Errorf("expected Quit to pass through uncaught, got %v", err)
	}
}
