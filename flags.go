package knight

import (
	"flag"
	"hash/fnv"
	"io/ioutil"

	"github.com/zephyrtronium/contains"
	yaml "gopkg.in/yaml.v2"
)

// Flags is the compliance/extension snapshot built once at Environment
// construction (spec.md §4.1). It has two disjoint groups: compliance
// checks, which turn one of the spec's undefined-behavior cases into a
// typed error when enabled, and extensions, which add optional operators
// or change already-defined behavior ("iffy" extensions).
//
// Grounded on internal/vm.go's VM struct: a single snapshot of everything
// the evaluator needs to consult, built once and read many times on the hot
// path.
type Flags struct {
	// Compliance checks.
	KnightEncoding             bool `yaml:"knight_encoding"`
	I32Integer                 bool `yaml:"i32_integer"`
	CheckOverflow              bool `yaml:"check_overflow"`
	CheckContainerLength       bool `yaml:"check_container_length"`
	VerifyVariableNames        bool `yaml:"verify_variable_names"`
	ForbidTrailingTokens       bool `yaml:"forbid_trailing_tokens"`
	CheckQuitBounds            bool `yaml:"check_quit_bounds"`
	CheckCallArg               bool `yaml:"check_call_arg"`
	LimitRandRange             bool `yaml:"limit_rand_range"`
	CheckEqualsParams          bool `yaml:"check_equals_params"`
	CheckIntegerFunctionBounds bool `yaml:"check_integer_function_bounds"`

	// Extension operators.
	ValueFunction  bool `yaml:"value_function"`
	EvalFunction   bool `yaml:"eval_function"`
	HandleFunction bool `yaml:"handle_function"`
	YeetFunction   bool `yaml:"yeet_function"`
	UseFunction    bool `yaml:"use_function"`
	SystemFunction bool `yaml:"system_function"`
	StdinFunction  bool `yaml:"stdin_function"`
	XSRand         bool `yaml:"xsrand"`
	XRange         bool `yaml:"xrange"`
	XReverse       bool `yaml:"xreverse"`
	ListExtensions bool `yaml:"list_extensions"`

	// Type extensions: Boolean `+` (or) and `*` (and), String `/` (split).
	TypeExtensions bool `yaml:"type_extensions"`

	// Assign-to-X extensions: `=`'s target may be PROMPT, OUTPUT, `$`, or
	// an arbitrary expression naming a variable (see eval.go's
	// evalAssign). assign_to_list has no settled semantics even in the
	// original implementations (it is left as an unimplemented stub
	// there), so this port does not carry it.
	AssignToPrompt bool `yaml:"assign_to_prompt"`
	AssignToOutput bool `yaml:"assign_to_output"`
	AssignToSystem bool `yaml:"assign_to_system"`
	AssignToText   bool `yaml:"assign_to_text"`

	// Iffy extensions: change the meaning of already-valid programs.
	NegatingAListInvertsIt          bool `yaml:"negating_a_list_inverts_it"`
	UnassignedVariablesDefaultToNull bool `yaml:"unassigned_variables_default_to_null"`
	NegativeRandomIntegers           bool `yaml:"negative_random_integers"`
	NegativeIndexing                 bool `yaml:"negative_indexing"`
	ListLiteral                      bool `yaml:"list_literal"`

	// Ambient: not part of the spec's compliance/extension split, but gates
	// the evaluator's shadow stack (stacktrace.go) the same way a
	// compliance flag gates a check — zero cost when off.
	Stacktrace bool `yaml:"stacktrace"`

	// seen dedups which flag names have already been toggled on by -flag,
	// mirroring internal/object.go's visited-proto dedup.
	seen contains.Set
}

// DefaultFlags returns the flag snapshot a bare `knight` CLI invocation
// uses: no compliance checks, no extensions, matching the original
// reference interpreters' permissive default (spec.md §7: disabled checks
// map undefined behavior to a documented default, not a rejection).
func DefaultFlags() Flags {
	return Flags{}
}

// enableByName turns on the named compliance check or extension, using the
// dedup Set to report whether this is the first time the name was seen
// (the same role contains.Set plays for repeated protos in the teacher).
// extList.Set, its only caller, ignores the fresh result.
func (f *Flags) enableByName(name string) (fresh bool, ok bool) {
	setter, known := flagSetters[name]
	if !known {
		return false, false
	}
	setter(f)
	h := fnv.New64a()
	h.Write([]byte(name))
	fresh = f.seen.Add(uintptr(h.Sum64()))
	return fresh, true
}

var flagSetters = map[string]func(*Flags){
	"knight_encoding":                      func(f *Flags) { f.KnightEncoding = true },
	"i32_integer":                          func(f *Flags) { f.I32Integer = true },
	"check_overflow":                       func(f *Flags) { f.CheckOverflow = true },
	"check_container_length":               func(f *Flags) { f.CheckContainerLength = true },
	"verify_variable_names":                func(f *Flags) { f.VerifyVariableNames = true },
	"forbid_trailing_tokens":               func(f *Flags) { f.ForbidTrailingTokens = true },
	"check_quit_bounds":                    func(f *Flags) { f.CheckQuitBounds = true },
	"check_call_arg":                       func(f *Flags) { f.CheckCallArg = true },
	"limit_rand_range":                     func(f *Flags) { f.LimitRandRange = true },
	"check_equals_params":                  func(f *Flags) { f.CheckEqualsParams = true },
	"check_integer_function_bounds":        func(f *Flags) { f.CheckIntegerFunctionBounds = true },
	"value_function":                       func(f *Flags) { f.ValueFunction = true },
	"eval_function":                        func(f *Flags) { f.EvalFunction = true },
	"handle_function":                      func(f *Flags) { f.HandleFunction = true },
	"yeet_function":                        func(f *Flags) { f.YeetFunction = true },
	"use_function":                         func(f *Flags) { f.UseFunction = true },
	"system_function":                      func(f *Flags) { f.SystemFunction = true },
	"stdin_function":                       func(f *Flags) { f.StdinFunction = true },
	"xsrand":                               func(f *Flags) { f.XSRand = true },
	"xrange":                               func(f *Flags) { f.XRange = true },
	"xreverse":                             func(f *Flags) { f.XReverse = true },
	"list_extensions":                      func(f *Flags) { f.ListExtensions = true },
	"type_extensions":                      func(f *Flags) { f.TypeExtensions = true },
	"assign_to_prompt":                     func(f *Flags) { f.AssignToPrompt = true },
	"assign_to_output":                     func(f *Flags) { f.AssignToOutput = true },
	"assign_to_system":                     func(f *Flags) { f.AssignToSystem = true },
	"assign_to_text":                       func(f *Flags) { f.AssignToText = true },
	"negating_a_list_inverts_it":           func(f *Flags) { f.NegatingAListInvertsIt = true },
	"unassigned_variables_default_to_null": func(f *Flags) { f.UnassignedVariablesDefaultToNull = true },
	"negative_random_integers":             func(f *Flags) { f.NegativeRandomIntegers = true },
	"negative_indexing":                    func(f *Flags) { f.NegativeIndexing = true },
	"list_literal":                         func(f *Flags) { f.ListLiteral = true },
	"stacktrace":                           func(f *Flags) { f.Stacktrace = true },
}

// extList is a flag.Value that accumulates repeated `-flag name[,name...]`
// occurrences, enabling each by name on the Flags it wraps.
type extList struct {
	flags *Flags
}

func (e extList) String() string { return "" }

func (e extList) Set(csv string) error {
	for _, name := range splitCSV(csv) {
		if _, ok := e.flags.enableByName(name); !ok {
			return newErrorf(ErrIoError, "unknown flag %q", name)
		}
	}
	return nil
}

func splitCSV(s string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}

// RegisterCLIFlags wires every compliance check and extension as a boolean
// `-<name>` flag on fs, plus a repeatable `-flag name[,name...]` for
// scripting. Grounded on cmd/io/main.go's hand-rolled argument handling,
// generalized with the standard flag package (see DESIGN.md's cmd/knight
// entry for why flag, not a third-party CLI library).
func RegisterCLIFlags(fs *flag.FlagSet, f *Flags) {
	for name, setter := range flagSetters {
		name, setter := name, setter
		fs.Var(boolSetterFlag{f: f, setter: setter, name: name}, name, "enable the "+name+" flag")
	}
	fs.Var(extList{flags: f}, "flag", "enable one or more flags by name, comma separated")
}

// boolSetterFlag adapts a Flags field setter to flag.Value so RegisterCLIFlags
// can expose every flag as its own `-name` boolean switch without hand
// writing one flag.BoolVar call per entry in flagSetters.
type boolSetterFlag struct {
	f      *Flags
	setter func(*Flags)
	name   string
}

func (b boolSetterFlag) String() string { return "false" }

func (b boolSetterFlag) Set(v string) error {
	if v == "true" || v == "1" {
		b.setter(b.f)
	}
	return nil
}

func (boolSetterFlag) IsBoolFlag() bool { return true }

// LoadFlagsYAML reads a Flags snapshot from a YAML document, for embedders
// that keep a flags profile on disk instead of re-deriving it from CLI
// switches every run (see SPEC_FULL.md's Configuration entry).
func LoadFlagsYAML(path string) (Flags, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Flags{}, newErrorf(ErrIoError, "reading flags file: %v", err)
	}
	var f Flags
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Flags{}, newErrorf(ErrIoError, "parsing flags file: %v", err)
	}
	return f, nil
}

// SaveFlagsYAML writes f as a YAML document to path.
func SaveFlagsYAML(path string, f Flags) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return newErrorf(ErrIoError, "encoding flags: %v", err)
	}
	if err := ioutil.WriteFile(path, data, 0o644); err != nil {
		return newErrorf(ErrIoError, "writing flags file: %v", err)
	}
	return nil
}
