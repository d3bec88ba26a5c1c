package knight

import (
	"bufio"
	"io"
	"math/rand"
	"os/exec"
	"strings"
)

// Environment owns everything a running program needs beyond its AST: the
// variable table, the I/O handles, the RNG, the prompt/system injection
// queues, and the active Flags snapshot. Exactly one Environment exists
// per program invocation.
//
// Grounded on internal/vm.go's VM: a single struct holding every owned
// resource (protos, scheduler, RNG-adjacent StartTime, control channel),
// built once by a constructor and threaded through evaluation by pointer.
type Environment struct {
	Flags Flags

	vars map[string]Value

	stdin  *bufio.Reader
	stdout io.Writer

	// runCommand executes a system command and returns its captured stdout,
	// the injected collaborator spec.md §6 requires for `$`; the CLI wires
	// this to os/exec, embedders may substitute anything.
	runCommand func(cmd string) (string, error)

	rng *rand.Rand

	promptQueue []Value
	systemQueue []Value

	catchStack []catchFrame

	shadowStack []Frame

	// extOps holds operators registered by package ext at startup, keyed
	// by name; see optable.go's RegisterOperator/ArityOf/dispatch.
	extOps map[string]opEntry

	// capture, if non-nil, additionally receives everything written via O/D,
	// for embedders that want program output without redirecting stdout
	// itself (spec.md §4.4's "optional stdout capture buffer").
	capture io.Writer

	// outputRedirect, under assign_to_output, diverts Output's writes into
	// a variable instead of stdout/capture. `= OUTPUT NULL` clears it.
	outputRedirect *Variable
}

// catchFrame is one entry of the HANDLE catch stack (spec.md §4.7): the
// catch Node of one active HANDLE; its depth is its position in catchStack.
type catchFrame struct {
	catch Node
}

// Config collects the explicit collaborators an embedder supplies when
// constructing an Environment (spec.md §6's Embedding interface): input
// line source, output sink, system-command runner, RNG seed, flags, and an
// optional capture buffer.
type Config struct {
	Stdin      io.Reader
	Stdout     io.Writer
	RunCommand func(cmd string) (string, error)
	Seed       int64
	Flags      Flags
	Capture    io.Writer
}

// NewEnvironment builds an Environment from cfg, filling in defaults for
// any collaborator left unset (os/exec for RunCommand, a fresh math/rand
// source seeded from Seed).
func NewEnvironment(cfg Config) *Environment {
	seed := cfg.Seed
	if seed == 0 {
		seed = osSeed()
	}
	env := &Environment{
		Flags:      cfg.Flags,
		vars:       make(map[string]Value),
		stdout:     cfg.Stdout,
		runCommand: cfg.RunCommand,
		rng:        rand.New(rand.NewSource(seed)),
		capture:    cfg.Capture,
	}
	if cfg.Stdin != nil {
		env.stdin = bufio.NewReader(cfg.Stdin)
	}
	if env.runCommand == nil {
		env.runCommand = runShellCommand
	}
	return env
}

// runShellCommand is the default `$` collaborator: run cmd through the
// platform shell and capture its stdout, the same responsibility
// file_unix.go/file_windows.go split by build tag for filesystem access —
// here there is exactly one portable implementation via os/exec.
func runShellCommand(cmd string) (string, error) {
	c := exec.Command("/bin/sh", "-c", cmd)
	out, err := c.Output()
	if err != nil {
		return "", newErrorf(ErrIoError, "running command: %v", err)
	}
	return string(out), nil
}

// Lookup implements get(var) (spec.md §4.4): the current value bound to
// name, or UndefinedVariable (or Null under the iffy extension) if unset.
func (env *Environment) Lookup(name string) (Value, error) {
	if v, ok := env.vars[name]; ok {
		return v, nil
	}
	if env.Flags.UnassignedVariablesDefaultToNull {
		return NullValue, nil
	}
	return nil, newErrorf(ErrUndefinedVariable, "undefined variable %q", name)
}

// Assign implements set(var, v).
func (env *Environment) Assign(name string, v Value) {
	env.vars[name] = v
}

// Prompt implements prompt() (spec.md §4.4): the queue's head if non-empty,
// else the next stdin line with its trailing newline (and CR) stripped, or
// Null at EOF.
func (env *Environment) Prompt() (Value, error) {
	if len(env.promptQueue) > 0 {
		return env.dequeue(&env.promptQueue)
	}
	if env.stdin == nil {
		return NullValue, nil
	}
	line, err := env.stdin.ReadString('\n')
	if err != nil && line == "" {
		return NullValue, nil
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return String{Value: line}, nil
}

// System implements system(cmd) (spec.md §4.4): the queue's head if
// non-empty, else the captured stdout of running cmd.
func (env *Environment) System(cmd string) (Value, error) {
	if len(env.systemQueue) > 0 {
		return env.dequeue(&env.systemQueue)
	}
	out, err := env.runCommand(cmd)
	if err != nil {
		return nil, err
	}
	return String{Value: out}, nil
}

// SystemWithStdin implements the XSYSTEM extension's two-argument form
// (SPEC_FULL's SUPPLEMENTED FEATURES #1): like System, but additionally
// pipes stdin into the child process. It does not consult the system
// injection queue, since that queue only models `$`'s single-argument
// contract.
func (env *Environment) SystemWithStdin(cmd, stdin string) (Value, error) {
	c := exec.Command("/bin/sh", "-c", cmd)
	c.Stdin = strings.NewReader(stdin)
	out, err := c.Output()
	if err != nil {
		return nil, newErrorf(ErrIoError, "running command: %v", err)
	}
	return String{Value: string(out)}, nil
}

// dequeue pops the head of an injection queue, resolving a queued Block by
// running it and coercing the result to String (spec.md §4.4).
func (env *Environment) dequeue(q *[]Value) (Value, error) {
	head := (*q)[0]
	*q = (*q)[1:]
	if b, ok := head.(Block); ok {
		result, err := b.Run(env)
		if err != nil {
			return nil, err
		}
		return ToString(env.Flags, result)
	}
	return head, nil
}

// QueuePrompt appends a String or Block to the prompt injection queue.
func (env *Environment) QueuePrompt(v Value) { env.promptQueue = append(env.promptQueue, v) }

// QueueSystem appends a String or Block to the system injection queue.
func (env *Environment) QueueSystem(v Value) { env.systemQueue = append(env.systemQueue, v) }

// Random implements random() (spec.md §4.4): a non-negative integer in
// [0, 2^32) by default, [0, 0x7FFF] under limit_rand_range, or the full
// signed range under negative_random_integers.
func (env *Environment) Random() Integer {
	switch {
	case env.Flags.NegativeRandomIntegers:
		return Integer{int64(env.rng.Uint64())}
	case env.Flags.LimitRandRange:
		return Integer{int64(env.rng.Intn(0x8000))}
	default:
		return Integer{int64(env.rng.Uint32())}
	}
}

// Reseed re-seeds the RNG; the XSRAND extension's collaborator.
func (env *Environment) Reseed(seed int64) { env.rng = rand.New(rand.NewSource(seed)) }

// Output implements output(s)/output_no_newline(s) (spec.md §4.4); nl
// controls whether a trailing newline is written. Under assign_to_output, a
// redirection set via `= OUTPUT var` diverts the write into that variable
// (appended as Text) instead of stdout.
func (env *Environment) Output(s string, nl bool) error {
	if nl {
		s += "\n"
	}
	if env.outputRedirect != nil {
		cur, err := env.outputRedirect.Get()
		var prefix string
		if err == nil {
			if str, ok := cur.(String); ok {
				prefix = str.Value
			}
		}
		env.outputRedirect.Assign(String{Value: prefix + s})
		return nil
	}
	if _, err := io.WriteString(env.stdout, s); err != nil {
		return newErrorf(ErrIoError, "writing output: %v", err)
	}
	if env.capture != nil {
		io.WriteString(env.capture, s)
	}
	return nil
}

// pushCatch and popCatch implement the HANDLE catch stack (spec.md §4.7):
// frames pushed before evaluating the body and popped after, whether it
// succeeded or an uncaught error escaped. The actual "unwind to nearest
// frame" behavior falls out of Go's own call stack — each RunHandle call
// intercepts errors from its own body before its caller ever sees them —
// so catchStack itself is bookkeeping (depth introspection), not the
// unwinding mechanism.
func (env *Environment) pushCatch(catch Node) {
	env.catchStack = append(env.catchStack, catchFrame{catch: catch})
}

func (env *Environment) popCatch() {
	env.catchStack = env.catchStack[:len(env.catchStack)-1]
}

// CatchDepth reports how many HANDLE frames are currently active.
func (env *Environment) CatchDepth() int { return len(env.catchStack) }

// RunHandle implements the HANDLE extension operator (spec.md §4.7 and
// §7): body is evaluated; any runtime *Error it raises transfers control
// to catch with `_errmsg` bound to the error's payload (the YEETed value,
// or a String of the error message for any other runtime error kind). A
// Quit signal is not an *Error and passes through uncaught.
func (env *Environment) RunHandle(body, catch Node) (Value, error) {
	env.pushCatch(catch)
	result, err := body.Eval(env)
	env.popCatch()
	if err == nil {
		return result, nil
	}
	kerr, ok := err.(*Error)
	if !ok {
		return nil, err
	}
	payload := kerr.Payload
	if payload == nil {
		payload = String{Value: kerr.Msg}
	}
	env.Assign("_errmsg", payload)
	return catch.Eval(env)
}
