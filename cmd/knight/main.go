// Command knight is the CLI entry point: it selects a source (either a
// literal expression via -e or a file via -f), wires every compliance and
// extension flag onto an Environment, and runs the program once.
//
// Given neither -e nor -f, it falls back to a line-at-a-time REPL, a
// convenience grounded on cmd/io/main.go's interactive loop.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/knightlang/knight-go"
	"github.com/knightlang/knight-go/ext"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	fs := flag.NewFlagSet("knight", flag.ContinueOnError)
	expr := fs.String("e", "", "execute the given expression")
	file := fs.String("f", "", "execute the contents of the given file")
	flagsPath := fs.String("flags-file", "", "load a Flags snapshot from a YAML file")
	seed := fs.Int64("seed", 0, "RNG seed")

	var f knight.Flags
	knight.RegisterCLIFlags(fs, &f)

	if err := fs.Parse(argv); err != nil {
		return 2
	}

	if *flagsPath != "" {
		loaded, err := knight.LoadFlagsYAML(*flagsPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		f = loaded
	}

	env := knight.NewEnvironment(knight.Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Seed:   *seed,
		Flags:  f,
	})
	ext.RegisterAll(env)

	switch {
	case *expr != "" && *file != "":
		fmt.Fprintln(os.Stderr, "knight: -e and -f are mutually exclusive")
		return 2
	case *expr != "":
		return runSource(env, *expr)
	case *file != "":
		data, err := ioutil.ReadFile(*file)
		if err != nil {
			fmt.Fprintln(os.Stderr, "knight:", err)
			return 1
		}
		return runSource(env, string(data))
	default:
		return repl(env)
	}
}

// runSource evaluates source once and reports the outcome to stderr/exit
// status per spec.md §6: 0 on success, Q's argument (truncated to
// 0..127) on Q, 1 on any uncaught error.
func runSource(env *knight.Environment, source string) int {
	_, err := knight.Run(source, env)
	if err == nil {
		return 0
	}
	if q, ok := err.(*knight.Quit); ok {
		return q.Code
	}
	fmt.Fprintln(os.Stderr, "knight:", err)
	return 1
}

// repl implements the no-source-given convenience mode (SPEC_FULL's
// SUPPLEMENTED FEATURES #4): read one line at a time, evaluate each as a
// standalone program, and print its DUMP-style representation.
func repl(env *knight.Environment) int {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(os.Stderr, "knight> ")
		if !scanner.Scan() {
			break
		}
		v, err := knight.Run(scanner.Text(), env)
		if err != nil {
			if q, ok := err.(*knight.Quit); ok {
				return q.Code
			}
			fmt.Fprintln(os.Stderr, "knight:", err)
			continue
		}
		fmt.Println(knight.Dump(v))
	}
	return 0
}
