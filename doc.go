/*
Package knight implements the Knight programming language.

Knight is a tiny, deliberately underspecified language designed as a
cross-implementation benchmark: the same program should run, with the same
observable result, whether the interpreter is written in C, Rust, Go, or
anything else. Its value set is closed at seven kinds, its grammar has no
operator precedence to resolve, and most of what a real language leaves to
a standard library (string formatting, list manipulation, even how errors
print) is instead pinned down as part of the language itself.

To embed the interpreter, build an Environment with NewEnvironment,
optionally register extension operators via the ext package's RegisterAll,
and call Run with Knight source text.

Knight Primer

Hello World in Knight:

	OUTPUT "Hello, world!"

A Knight program is a single expression. Unlike most languages, Knight has
no statement separator and no implicit sequencing: chaining two expressions
requires the `;` operator explicitly, as in

	; OUTPUT "first" OUTPUT "second"

Every function - arithmetic operators, OUTPUT, IF, and so on - is prefix
and has a fixed, known arity: `+ a b` rather than `a + b`. A multi-letter
function name like OUTPUT or WHILE is parsed as a single token by reading
only its first (uppercase) letter and discarding the rest, so `OUTPUT`,
`OUT`, and `O` are the same function; this lets programs be self-documenting
without the parser needing a symbol table of keywords. Extension operators
registered by the ext package (VALUE, XRANGE, ...) are the exception: their
whole word names them.

Variables are lowercase identifiers, assigned with `=`:

	= x 10
	OUTPUT + x 5

Blocks, introduced by `B`, suspend evaluation of their single argument
until a later `CALL`:

	; = double B * x 2
	  OUTPUT CALL double

Control flow is built from three- and two-argument functions rather than
dedicated syntax: `IF cond then else`, `WHILE cond body`. Both branches of
IF and the body of WHILE are ordinary expressions - they are simply not
evaluated until the function decides to evaluate them, which is how Knight
gets short-circuiting control flow without a Block wrapper at every call
site.

Errors are untyped at the language level: any operation that cannot be
completed - dividing by zero, looking up an undefined variable, comparing
incompatible types - aborts the program by default. The HANDLE extension
(where enabled) turns that abort into a catchable non-local exit, binding
the failure's payload to `_errmsg` for the handler to inspect.

For the full function table, coercion rules, and the extension flags this
implementation recognizes, see SPEC_FULL.md in the repository root.
*/
package knight
