// Package tools provides developer utilities over the asm package's
// text assembly format: a canonicalizing formatter, a small set of
// lint rules, and a label cross-reference report. All three take
// source text (Lint and Xref parse it with asm.Parse; Format works on
// the raw lines); none of them touch a running vm.VM.
package tools

import (
	"strings"
)

// Format rewrites source into a canonical layout: one statement per
// line, label definitions flush left, instructions indented one tab,
// comments preserved verbatim.
func Format(source string) string {
	var out strings.Builder
	for _, raw := range strings.Split(source, "\n") {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}

		comment := ""
		if idx := commentIndex(trimmed); idx >= 0 {
			comment = " " + strings.TrimSpace(trimmed[idx:])
			trimmed = strings.TrimSpace(trimmed[:idx])
		}

		if trimmed == "" {
			out.WriteString(comment)
			out.WriteByte('\n')
			continue
		}

		if colon := strings.Index(trimmed, ":"); colon >= 0 && !strings.ContainsAny(trimmed[:colon], " \t") {
			label := trimmed[:colon+1]
			rest := strings.TrimSpace(trimmed[colon+1:])
			out.WriteString(label)
			out.WriteByte('\n')
			if rest != "" {
				out.WriteByte('\t')
				out.WriteString(formatFields(rest))
				out.WriteString(comment)
				out.WriteByte('\n')
			}
			continue
		}

		out.WriteByte('\t')
		out.WriteString(formatFields(trimmed))
		out.WriteString(comment)
		out.WriteByte('\n')
	}
	return out.String()
}

func commentIndex(line string) int {
	for i, r := range line {
		if r == '#' || r == ';' {
			return i
		}
	}
	return -1
}

// formatFields rewrites "mnemonic op,op,op" into "mnemonic op, op, op".
func formatFields(body string) string {
	fields := strings.Fields(strings.ReplaceAll(body, ",", " "))
	if len(fields) == 0 {
		return ""
	}
	if len(fields) == 1 {
		return fields[0]
	}
	return fields[0] + " " + strings.Join(fields[1:], ", ")
}
