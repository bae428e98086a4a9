package tools

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/cmoultrie/umvm/asm"
)

// LabelXref reports every line on which a label is mentioned: its
// definition line, plus every line where it's used as an operand.
type LabelXref struct {
	Definition int
	References []int
}

var identPattern = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

// Xref builds a cross-reference table of every label defined in
// source, across the whole file, by re-scanning raw lines for the
// label's name as a word-bounded token. Comments are stripped first,
// but it does not otherwise distinguish a label used as an operand
// from a mnemonic or other token that shares its name; callers doing
// anything load-bearing with the
// result should treat it as a navigation aid, not a resolved-reference
// graph (Parse's two-pass label resolution is the source of truth for
// that).
func Xref(source string) (map[string]*LabelXref, error) {
	prog, err := asm.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("tools: xref: %w", err)
	}

	table := make(map[string]*LabelXref, len(prog.Symbols.Names()))
	for _, name := range prog.Symbols.Names() {
		table[name] = &LabelXref{}
	}

	for lineNo, raw := range strings.Split(source, "\n") {
		line := lineNo + 1
		text := stripLineComment(raw)
		for _, ident := range identPattern.FindAllString(text, -1) {
			entry, ok := table[ident]
			if !ok {
				continue
			}
			if isLabelDefLine(text, ident) {
				entry.Definition = line
			} else {
				entry.References = append(entry.References, line)
			}
		}
	}

	return table, nil
}

func stripLineComment(line string) string {
	for i, r := range line {
		if r == '#' || r == ';' {
			return line[:i]
		}
	}
	return line
}

func isLabelDefLine(text, name string) bool {
	trimmed := strings.TrimSpace(text)
	return strings.HasPrefix(trimmed, name+":")
}

// SortedNames returns the label names in a LabelXref table in
// alphabetical order, for deterministic report output.
func SortedNames(table map[string]*LabelXref) []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
