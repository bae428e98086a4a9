package tools

import (
	"fmt"
	"strings"

	"github.com/cmoultrie/umvm/asm"
)

// Diagnostic is one lint finding, anchored to a source line.
type Diagnostic struct {
	Line    int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s", d.Line, d.Message)
}

// Lint parses source and reports style and correctness issues beyond
// what Parse itself rejects outright: labels that are defined but
// never referenced, and halt instructions followed by unreachable
// statements.
//
// A source file that fails to parse at all produces a single
// diagnostic wrapping the parse error rather than a panic.
func Lint(source string) []Diagnostic {
	prog, err := asm.Parse(source)
	if err != nil {
		return []Diagnostic{{Line: 0, Message: err.Error()}}
	}

	var diags []Diagnostic
	diags = append(diags, lintUnreachable(prog)...)
	diags = append(diags, lintUnusedLabels(source, prog)...)
	return diags
}

func lintUnreachable(prog *asm.Program) []Diagnostic {
	var diags []Diagnostic
	halted := false
	for _, line := range prog.Lines() {
		if halted {
			diags = append(diags, Diagnostic{Line: line, Message: "unreachable statement after halt"})
		}
		if prog.MnemonicAt(line) == "halt" {
			halted = true
		}
	}
	return diags
}

// lintUnusedLabels flags labels that were defined but whose name never
// appears as an operand anywhere else in the source. This is a
// heuristic, not a resolved-reference check: it only wants to catch
// the common case of a stale label left behind after editing.
func lintUnusedLabels(source string, prog *asm.Program) []Diagnostic {
	var diags []Diagnostic
	for _, name := range prog.Symbols.Names() {
		if strings.Count(source, name) < 2 {
			diags = append(diags, Diagnostic{Line: 0, Message: fmt.Sprintf("label %q is never referenced", name)})
		}
	}
	return diags
}
