package knight

import "testing"

func TestIntegerToList(t *testing.T) {
	cases := []struct {
		n    int64
		want []int64
	}{
		{0, []int64{0}},
		{5, []int64{5}},
		{25, []int64{2, 5}},
		{-25, []int64{-2, 5}},
	}
	for _, c := range cases {
		l := integerToList(Integer{c.n})
		if len(l.Elements) != len(c.want) {
			t.Fatalf("integerToList(%d) has %d elements, want %d", c.n, len(l.Elements), len(c.want))
		}
		for i, e := range c.want {
			if l.Elements[i].(Integer).Value != e {
				t.Errorf("integerToList(%d)[%d] = %v, want %d", c.n, i, l.Elements[i], e)
			}
		}
	}
}

func TestEqualCrossKindIsFalse(t *testing.T) {
	eq, err := Equal(Flags{}, Integer{1}, Boolean(true))
	if err != nil {
		t.Fatal(err)
	}
	if eq {
		t.Error("Integer(1) should not equal Boolean(true)")
	}
}

func TestEqualCheckEqualsParamsRejectsBlock(t *testing.T) {
	_, err := Equal(Flags{CheckEqualsParams: true}, Block{}, Block{})
	if !IsKind(err, ErrTypeError) {
		t.Errorf("expected TypeError, got %v", err)
	}
}

func TestToBooleanRejectsBlock(t *testing.T) {
	if _, err := ToBoolean(Block{}); !IsKind(err, ErrTypeError) {
		t.Errorf("expected TypeError coercing Block to Boolean, got %v", err)
	}
}

func TestToBooleanRejectsVariable(t *testing.T) {
	env := NewEnvironment(Config{})
	if _, err := ToBoolean(env.Var("x")); !IsKind(err, ErrTypeError) {
		t.Errorf("expected TypeError coercing Variable to Boolean, got %v", err)
	}
}

func TestCompareListLexicographic(t *testing.T) {
	a := List{Elements: []Value{Integer{1}, Integer{2}}}
	b := List{Elements: []Value{Integer{1}, Integer{3}}}
	c, err := Compare(Flags{}, a, b)
	if err != nil {
		t.Fatal(err)
	}
	if c >= 0 {
		t.Errorf("expected a < b, got comparison %d", c)
	}
}
