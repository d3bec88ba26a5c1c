package knight

import "testing"

func TestListConcatAndRepeat(t *testing.T) {
	a := List{Elements: []Value{Integer{1}}}
	b := List{Elements: []Value{Integer{2}}}
	c, err := a.Concat(Flags{}, b)
	if err != nil || len(c.Elements) != 2 {
		t.Fatalf("Concat: %v, %v", c, err)
	}
	r, err := a.Repeat(Flags{}, 3)
	if err != nil || len(r.Elements) != 3 {
		t.Fatalf("Repeat: %v, %v", r, err)
	}
}

func TestListJoin(t *testing.T) {
	l := List{Elements: []Value{Integer{1}, Integer{2}, Integer{3}}}
	s, err := l.Join(Flags{}, ",")
	if err != nil || s.Value != "1,2,3" {
		t.Errorf("Join = %v, %v, want \"1,2,3\", nil", s, err)
	}
}

func TestListReverse(t *testing.T) {
	l := List{Elements: []Value{Integer{1}, Integer{2}, Integer{3}}}
	r := l.Reverse()
	want := []int64{3, 2, 1}
	for i, v := range want {
		if r.Elements[i].(Integer).Value != v {
			t.Errorf("Reverse()[%d] = %v, want %d", i, r.Elements[i], v)
		}
	}
}

func TestListSliceAndSplice(t *testing.T) {
	l := List{Elements: []Value{Integer{1}, Integer{2}, Integer{3}, Integer{4}}}
	s, err := l.Slice(1, 2)
	if err != nil || len(s.Elements) != 2 || s.Elements[0].(Integer).Value != 2 {
		t.Fatalf("Slice: %v, %v", s, err)
	}
	spliced, err := l.Splice(Flags{}, 1, 2, List{Elements: []Value{Integer{9}}})
	if err != nil {
		t.Fatal(err)
	}
	want := []int64{1, 9, 4}
	if len(spliced.Elements) != len(want) {
		t.Fatalf("Splice: got %d elements, want %d", len(spliced.Elements), len(want))
	}
	for i, v := range want {
		if spliced.Elements[i].(Integer).Value != v {
			t.Errorf("Splice()[%d] = %v, want %d", i, spliced.Elements[i], v)
		}
	}
}
