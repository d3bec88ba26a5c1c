package knight_test

import (
	"testing"

	"github.com/knightlang/knight-go"
	"github.com/knightlang/knight-go/internal/knighttest"
)

// TestEndToEnd exercises spec.md §8's end-to-end scenarios.
func TestEndToEnd(t *testing.T) {
	knighttest.Run(t, []knighttest.Case{
		{
			Name:   "factorial",
			Source: `; = n 10 ; = f B I (< n 2) 1 (* n (; = n (- n 1) CALL f)) ; = n 5 O C f`,
			Pass:   knighttest.WantStdout("120\n"),
		},
		{
			Name:   "fibonacci",
			Source: `; = fib B I (< n 2) n (+ (; = n (- n 1) ; = r CALL fib ; = n (+ n 1) r) (; = n (- n 2) ; = r CALL fib ; = n (+ n 2) r)) ; = n 10 O C fib`,
			Pass:   knighttest.WantStdout("55\n"),
		},
		{
			Name:   "while loop concat",
			Source: `; = i 0 ; = s "" ; W (< i 5) ; = s + s i = i + i 1 O s`,
			Pass:   knighttest.WantStdout("01234\n"),
		},
		{
			Name:   "string concat",
			Source: `O + "hello " "world"`,
			Pass:   knighttest.WantStdout("hello world\n"),
		},
		{
			Name:   "substring",
			Source: `O G "abcdef" 1 3`,
			Pass:   knighttest.WantStdout("bcd\n"),
		},
		{
			Name:   "list join",
			Source: `; = xs +,1 +,2 ,3 O ^ xs ","`,
			Pass:   knighttest.WantStdout("1,2,3\n"),
		},
		{
			Name:   "handle yeet",
			Source: `HANDLE (YEET "boom") _errmsg`,
			Flags:  knight.Flags{HandleFunction: true, YeetFunction: true},
			Pass:   knighttest.WantValue("boom"),
		},
	})
}

// TestShortCircuit checks spec.md §8 property 3: & and | never evaluate
// their second argument when the first already determines the result.
func TestShortCircuit(t *testing.T) {
	knighttest.Run(t, []knighttest.Case{
		{
			Name:   "and short circuits",
			Source: `; = hit 0 ; & F (= hit 1) hit`,
			Pass:   knighttest.WantValue("0"),
		},
		{
			Name:   "or short circuits",
			Source: `; = hit 0 ; | T (= hit 1) hit`,
			Pass:   knighttest.WantValue("0"),
		},
	})
}

// TestArgumentOrder checks spec.md §8 property 4.
func TestArgumentOrder(t *testing.T) {
	knighttest.Run(t, []knighttest.Case{
		{
			Name:   "then sequencing",
			Source: `; (= a 1) (; (= a 2) a)`,
			Pass:   knighttest.WantValue("2"),
		},
		{
			Name:   "left to right add",
			Source: `+ (; (= a 1) a) (; (= a 2) a)`,
			Pass:   knighttest.WantValue("3"),
		},
	})
}

// TestBlockDiscipline checks spec.md §8 property 5.
func TestBlockDiscipline(t *testing.T) {
	knighttest.Run(t, []knighttest.Case{
		{
			Name:   "call of block equals value",
			Source: `C B 5`,
			Pass:   knighttest.WantValue("5"),
		},
		{
			Name:   "block misuse is a type error",
			Source: `+ B 5 1`,
			Flags:  knight.Flags{},
			Pass:   knighttest.WantErrorKind(knight.ErrTypeError),
		},
	})
}

// TestBlockCoercionIsTypeError checks spec.md §3/§8: a Block has no
// Boolean coercion, so every operator that coerces its condition to
// Boolean (other than C) raises TypeError instead of silently treating a
// Block as falsy.
func TestBlockCoercionIsTypeError(t *testing.T) {
	knighttest.Run(t, []knighttest.Case{
		{
			Name:   "not",
			Source: `! B 5`,
			Pass:   knighttest.WantErrorKind(knight.ErrTypeError),
		},
		{
			Name:   "and",
			Source: `& (B 5) 1`,
			Pass:   knighttest.WantErrorKind(knight.ErrTypeError),
		},
		{
			Name:   "or",
			Source: `| (B 5) 1`,
			Pass:   knighttest.WantErrorKind(knight.ErrTypeError),
		},
		{
			Name:   "while condition",
			Source: `W (B 5) 1`,
			Pass:   knighttest.WantErrorKind(knight.ErrTypeError),
		},
		{
			Name:   "if condition",
			Source: `I (B 5) 1 2`,
			Pass:   knighttest.WantErrorKind(knight.ErrTypeError),
		},
	})
}

// TestAsciiNonStrictLatin1 checks that A's Integer case decodes a
// non-ASCII byte as Latin-1 rather than producing invalid UTF-8 when
// knight_encoding is off.
func TestAsciiNonStrictLatin1(t *testing.T) {
	knighttest.Run(t, []knighttest.Case{
		{
			Name:   "0xE9 decodes to é",
			Source: `O A 233`,
			Pass:   knighttest.WantStdout("é\n"),
		},
		{
			Name:   "knight_encoding rejects the same code point",
			Source: `A 233`,
			Flags:  knight.Flags{KnightEncoding: true},
			Pass:   knighttest.WantErrorKind(knight.ErrDomainError),
		},
	})
}

func TestOverflow(t *testing.T) {
	knighttest.Run(t, []knighttest.Case{
		{
			Name:   "wraps by default",
			Source: `+ 9223372036854775807 1`,
			Pass:   knighttest.WantValue("-9223372036854775808"),
		},
		{
			Name:   "traps under check_overflow",
			Source: `+ 9223372036854775807 1`,
			Flags:  knight.Flags{CheckOverflow: true},
			Pass:   knighttest.WantErrorKind(knight.ErrIntegerOverflow),
		},
	})
}

// TestAssignToPrompt checks the assign_to_prompt extension (eval.go's
// evalAssign): `= PROMPT v` edits the prompt injection queue rather than
// assigning a variable.
func TestAssignToPrompt(t *testing.T) {
	knighttest.Run(t, []knighttest.Case{
		{
			Name:   "queues a line ahead of stdin",
			Source: `; = PROMPT "queued" O PROMPT`,
			Flags:  knight.Flags{AssignToPrompt: true},
			Stdin:  "from stdin\n",
			Pass:   knighttest.WantStdout("queued\n"),
		},
		{
			Name:   "assigning false clears the queue and falls through to stdin",
			Source: `; = PROMPT "queued" ; = PROMPT FALSE O PROMPT`,
			Flags:  knight.Flags{AssignToPrompt: true},
			Stdin:  "from stdin\n",
			Pass:   knighttest.WantStdout("from stdin\n"),
		},
	})
}

// TestAssignToOutput checks the assign_to_output extension: `= OUTPUT x var`
// (OUTPUT's own argument x is never evaluated) redirects future Output
// writes into var instead of stdout.
func TestAssignToOutput(t *testing.T) {
	knighttest.Run(t, []knighttest.Case{
		{
			Name:   "redirects output into a variable",
			Source: `; = OUTPUT N out ; O "hello" ; O "world" ; = OUTPUT N NULL OUTPUT out`,
			Flags:  knight.Flags{AssignToOutput: true},
			Pass:   knighttest.WantStdout("hello\nworld\n\n"),
		},
		{
			Name:   "clearing redirection restores stdout",
			Source: `; = OUTPUT N out ; O "hidden" ; = OUTPUT N NULL O "visible"`,
			Flags:  knight.Flags{AssignToOutput: true},
			Pass:   knighttest.WantStdout("visible\n"),
		},
	})
}

// TestAssignToSystem checks the assign_to_system extension: `= $ v` edits
// the system-command injection queue.
func TestAssignToSystem(t *testing.T) {
	knighttest.Run(t, []knighttest.Case{
		{
			Name:   "queues a canned result ahead of running a command",
			Source: `; = $ N "canned" O $ "echo should not run"`,
			Flags:  knight.Flags{AssignToSystem: true, SystemFunction: true},
			Pass:   knighttest.WantStdout("canned\n"),
		},
	})
}

// TestAssignToText checks the assign_to_text extension: when `=`'s target
// is any other expression, it is evaluated to a String naming the variable
// to assign.
func TestAssignToText(t *testing.T) {
	knighttest.Run(t, []knighttest.Case{
		{
			Name:   "dynamic variable name",
			Source: `; = (+ "my_" "var") 5 O my_var`,
			Flags:  knight.Flags{AssignToText: true},
			Pass:   knighttest.WantStdout("5\n"),
		},
	})
}

// TestStacktraceCapturesFrames checks spec.md §5: under the stacktrace
// flag, an error raised mid-evaluation carries the shadow stack of
// operators that were running when it was raised, innermost last, and the
// field stays nil when the flag is off.
func TestStacktraceCapturesFrames(t *testing.T) {
	env, _ := knighttest.NewEnvironment(knight.Flags{Stacktrace: true}, "")
	_, err := knight.Run(`+ 1 (+ B 5 1)`, env)
	kerr, ok := err.(*knight.Error)
	if !ok {
		t.Fatalf("expected *knight.Error, got %v (%T)", err, err)
	}
	if len(kerr.Stack) == 0 {
		t.Fatal("expected a populated Stack, got none")
	}
	innermost := kerr.Stack[len(kerr.Stack)-1]
	if innermost.Operator != "+" {
		t.Errorf("innermost frame operator = %q, want %q", innermost.Operator, "+")
	}

	env2, _ := knighttest.NewEnvironment(knight.Flags{}, "")
	_, err2 := knight.Run(`+ 1 (+ B 5 1)`, env2)
	kerr2, ok := err2.(*knight.Error)
	if !ok {
		t.Fatalf("expected *knight.Error, got %v (%T)", err2, err2)
	}
	if kerr2.Stack != nil {
		t.Errorf("expected nil Stack with stacktrace off, got %v", kerr2.Stack)
	}
}

// TestTypeExtensions checks the type_extensions flag: Boolean gains `+`
// (OR) and `*` (AND), String gains `/` (split), grounded on
// knightrs-bytecode's builtin_fns.boolean/builtin_fns.string overloads.
// Off, the same programs raise TypeError as they always did.
func TestTypeExtensions(t *testing.T) {
	knighttest.Run(t, []knighttest.Case{
		{
			Name:   "boolean or",
			Source: `O + F T`,
			Flags:  knight.Flags{TypeExtensions: true},
			Pass:   knighttest.WantStdout("true\n"),
		},
		{
			Name:   "boolean and",
			Source: `O * T F`,
			Flags:  knight.Flags{TypeExtensions: true},
			Pass:   knighttest.WantStdout("false\n"),
		},
		{
			Name:   "string split",
			Source: `O ^ / "a,b,c" "," "-"`,
			Flags:  knight.Flags{TypeExtensions: true},
			Pass:   knighttest.WantStdout("a-b-c\n"),
		},
		{
			Name:   "boolean plus is a type error when off",
			Source: `+ F T`,
			Pass:   knighttest.WantErrorKind(knight.ErrTypeError),
		},
	})
}

func TestQuit(t *testing.T) {
	env, _ := knighttest.NewEnvironment(knight.Flags{}, "")
	_, err := knight.Run("Q 7", env)
	q, ok := err.(*knight.Quit)
	if !ok {
		t.Fatalf("expected *Quit, got %v (%T)", err, err)
	}
	if q.Code != 7 {
		t.Errorf("got exit code %d, want 7", q.Code)
	}
}
