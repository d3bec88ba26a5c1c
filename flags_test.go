package knight

import "testing"

func TestEnableByNameDedup(t *testing.T) {
	f := Flags{}
	fresh, ok := f.enableByName("knight_encoding")
	if !ok || !fresh {
		t.Fatalf("first enable: fresh=%v ok=%v, want true, true", fresh, ok)
	}
	if !f.KnightEncoding {
		t.Error("expected KnightEncoding to be set")
	}
	fresh, ok = f.enableByName("knight_encoding")
	if !ok || fresh {
		t.Fatalf("second enable: fresh=%v ok=%v, want false, true", fresh, ok)
	}
}

func TestEnableByNameUnknown(t *testing.T) {
	f := Flags{}
	if _, ok := f.enableByName("not_a_real_flag"); ok {
		t.Error("expected unknown flag name to report ok=false")
	}
}

func TestExtListSetMultiple(t *testing.T) {
	f := Flags{}
	e := extList{flags: &f}
	if err := e.Set("yeet_function,handle_function"); err != nil {
		t.Fatal(err)
	}
	if !f.YeetFunction || !f.HandleFunction {
		t.Errorf("got YeetFunction=%v HandleFunction=%v, want both true", f.YeetFunction, f.HandleFunction)
	}
}

func TestExtListSetUnknown(t *testing.T) {
	f := Flags{}
	e := extList{flags: &f}
	if err := e.Set("bogus_flag_name"); err == nil {
		t.Error("expected error for unknown flag name")
	}
}

func TestSplitCSV(t *testing.T) {
	got := splitCSV("a,b,,c")
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
