package knight

import "testing"

func TestBlockKindAndString(t *testing.T) {
	b := Block{Body: NewLiteral(Integer{5}, Span{})}
	if b.Kind() != KindBlock {
		t.Errorf("got kind %v, want KindBlock", b.Kind())
	}
	if b.String() != "[block]" {
		t.Errorf("got String() %q, want %q", b.String(), "[block]")
	}
}

func TestBlockRunEvaluatesBody(t *testing.T) {
	env := NewEnvironment(Config{})
	b := Block{Body: NewLiteral(Integer{42}, Span{})}
	v, err := b.Run(env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	i, ok := v.(Integer)
	if !ok || i.Value != 42 {
		t.Errorf("got %v, want Integer{42}", v)
	}
}

func TestBlockRunPropagatesError(t *testing.T) {
	env := NewEnvironment(Config{})
	b := Block{Body: NewVarRef("undefined_var", Span{})}
	_, err := b.Run(env)
	if !IsKind(err, ErrUndefinedVariable) {
		t.Errorf("got error %v, want ErrUndefinedVariable", err)
	}
}
