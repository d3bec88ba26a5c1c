package knight

import "testing"

func TestVariableKindAndString(t *testing.T) {
	env := NewEnvironment(Config{})
	v := env.Var("x")
	if v.Kind() != KindVariable {
		t.Errorf("got kind %v, want KindVariable", v.Kind())
	}
	if v.String() != "x" {
		t.Errorf("got String() %q, want %q", v.String(), "x")
	}
}

func TestVariableGetUndefined(t *testing.T) {
	env := NewEnvironment(Config{})
	_, err := env.Var("never_assigned").Get()
	if !IsKind(err, ErrUndefinedVariable) {
		t.Errorf("got error %v, want ErrUndefinedVariable", err)
	}
}

func TestVariableAssignThenGet(t *testing.T) {
	env := NewEnvironment(Config{})
	v := env.Var("x")
	got := v.Assign(Integer{7})
	if i, ok := got.(Integer); !ok || i.Value != 7 {
		t.Errorf("Assign returned %v, want Integer{7}", got)
	}
	read, err := v.Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if i, ok := read.(Integer); !ok || i.Value != 7 {
		t.Errorf("Get returned %v, want Integer{7}", read)
	}
}

func TestVariableInterningIsIdempotent(t *testing.T) {
	env := NewEnvironment(Config{})
	env.Var("x").Assign(Integer{1})
	v2 := env.Var("x")
	got, err := v2.Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if i, ok := got.(Integer); !ok || i.Value != 1 {
		t.Errorf("second Var(\"x\") didn't see first's assignment: got %v", got)
	}
}
