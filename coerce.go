package knight

// ToBoolean implements Boolean coercion for any Value (spec.md §4.3's
// coercion table). Variable and Block have no coercion and raise
// TypeError, matching knightrs's ToBoolean impl.
func ToBoolean(v Value) (Boolean, error) {
	switch x := v.(type) {
	case Null:
		return false, nil
	case Boolean:
		return x, nil
	case Integer:
		return x.Value != 0, nil
	case String:
		return x.ToBoolean(), nil
	case List:
		return x.ToBoolean(), nil
	default:
		return false, newErrorf(ErrTypeError, "cannot coerce %s to Boolean", v.Kind())
	}
}

// ToInteger implements Integer coercion.
func ToInteger(f Flags, v Value) (Integer, error) {
	switch x := v.(type) {
	case Null:
		return Integer{0}, nil
	case Boolean:
		if x {
			return Integer{1}, nil
		}
		return Integer{0}, nil
	case Integer:
		return x, nil
	case String:
		return x.ToInteger(f)
	case List:
		return x.ToInteger(), nil
	default:
		return Integer{}, newErrorf(ErrTypeError, "cannot coerce %s to Integer", v.Kind())
	}
}

// ToString implements String coercion. The Open Question decision recorded
// in DESIGN.md picks "null" (the spec's stated default) for Null→String.
func ToString(f Flags, v Value) (String, error) {
	switch x := v.(type) {
	case Null:
		return NewString(f, "null")
	case Boolean:
		if x {
			return NewString(f, "true")
		}
		return NewString(f, "false")
	case Integer:
		return NewString(f, x.String())
	case String:
		return x, nil
	case List:
		return x.ToText(f)
	default:
		return String{}, newErrorf(ErrTypeError, "cannot coerce %s to String", v.Kind())
	}
}

// ToList implements List coercion: Integer→digit-value list (sign kept on
// the leading element for negatives; zero → [0]).
func ToList(f Flags, v Value) (List, error) {
	switch x := v.(type) {
	case Null:
		return List{}, nil
	case Boolean:
		if x {
			return List{Elements: []Value{Boolean(true)}}, nil
		}
		return List{}, nil
	case Integer:
		return integerToList(x), nil
	case String:
		return x.ToList(), nil
	case List:
		return x, nil
	default:
		return List{}, newErrorf(ErrTypeError, "cannot coerce %s to List", v.Kind())
	}
}

func integerToList(i Integer) List {
	neg := i.Value < 0
	n := uint64(i.Value)
	if neg {
		n = -n
	}
	if n == 0 {
		return List{Elements: []Value{Integer{0}}}
	}
	var digits []int64
	for n > 0 {
		digits = append(digits, int64(n%10))
		n /= 10
	}
	elems := make([]Value, len(digits))
	for i, d := range digits {
		elems[len(digits)-1-i] = Integer{d}
	}
	if neg {
		elems[0] = Integer{-elems[0].(Integer).Value}
	}
	return List{Elements: elems}
}

// Equal implements `?` (spec.md §4.3): reflexive within a kind, never
// equal across kinds. Under check_equals_params, comparing a Block (or a
// List transitively containing one) raises TypeError.
func Equal(f Flags, a, b Value) (Boolean, error) {
	if f.CheckEqualsParams {
		if containsBlock(a) || containsBlock(b) {
			return false, newError(ErrTypeError, "cannot compare a Block")
		}
	}
	if a.Kind() != b.Kind() {
		return false, nil
	}
	return Boolean(valueEqual(a, b)), nil
}

func containsBlock(v Value) bool {
	switch x := v.(type) {
	case Block:
		return true
	case List:
		for _, e := range x.Elements {
			if containsBlock(e) {
				return true
			}
		}
	}
	return false
}

func valueEqual(a, b Value) bool {
	switch x := a.(type) {
	case Null:
		return true
	case Boolean:
		return x == b.(Boolean)
	case Integer:
		return x.Value == b.(Integer).Value
	case String:
		return x.Value == b.(String).Value
	case List:
		return x.Equal(b.(List), valueEqual)
	default:
		return false
	}
}

// Compare implements `<`/`>` (spec.md §4.3): only Integer, String, Boolean,
// List are orderable; rhs is coerced to lhs's kind first.
func Compare(f Flags, lhs, rhs Value) (int, error) {
	switch l := lhs.(type) {
	case Integer:
		r, err := ToInteger(f, rhs)
		if err != nil {
			return 0, err
		}
		switch {
		case l.Value < r.Value:
			return -1, nil
		case l.Value > r.Value:
			return 1, nil
		default:
			return 0, nil
		}
	case String:
		r, err := ToString(f, rhs)
		if err != nil {
			return 0, err
		}
		return l.Compare(r), nil
	case Boolean:
		r, err := ToBoolean(rhs)
		if err != nil {
			return 0, err
		}
		if l == r {
			return 0, nil
		}
		if !bool(l) && bool(r) {
			return -1, nil
		}
		return 1, nil
	case List:
		r, err := ToList(f, rhs)
		if err != nil {
			return 0, err
		}
		return l.Compare(r, func(a, b Value) int {
			c, _ := Compare(f, a, b)
			return c
		}), nil
	default:
		return 0, newErrorf(ErrTypeError, "%s is not orderable", lhs.Kind())
	}
}
