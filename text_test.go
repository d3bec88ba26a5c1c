package knight

import "testing"

func TestStringKnightEncodingRejectsControlBytes(t *testing.T) {
	_, err := NewString(Flags{KnightEncoding: true}, "hello\x01world")
	if err == nil {
		t.Error("expected an error for a control byte under knight_encoding")
	}
	if _, err := NewString(Flags{KnightEncoding: true}, "hello\tworld\n"); err != nil {
		t.Errorf("tab/newline should be legal under knight_encoding: %v", err)
	}
}

func TestStringDumpQuoted(t *testing.T) {
	s := String{Value: "a\"b\\c\nd"}
	want := `"a\"b\\c\nd"`
	if got := s.DumpQuoted(); got != want {
		t.Errorf("DumpQuoted() = %s, want %s", got, want)
	}
}

func TestStringHeadTail(t *testing.T) {
	s := String{Value: "abc"}
	h, err := s.Head()
	if err != nil || h.Value != "a" {
		t.Errorf("Head() = %v, %v, want \"a\", nil", h, err)
	}
	tl, err := s.Tail()
	if err != nil || tl.Value != "bc" {
		t.Errorf("Tail() = %v, %v, want \"bc\", nil", tl, err)
	}
	if _, err := (String{}).Head(); err == nil {
		t.Error("expected DomainError on empty string head")
	}
}

func TestStringToList(t *testing.T) {
	l := String{Value: "ab"}.ToList()
	if len(l.Elements) != 2 {
		t.Fatalf("got %d elements, want 2", len(l.Elements))
	}
	if l.Elements[0].(String).Value != "a" || l.Elements[1].(String).Value != "b" {
		t.Errorf("got %v, want [a b]", l.Elements)
	}
}
