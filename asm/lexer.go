package asm

import "strings"

// tokenKind classifies a single whitespace-delimited token on an
// assembly line.
type tokenKind int

const (
	tokMnemonic tokenKind = iota
	tokRegister
	tokNumber
	tokIdent
	tokLabelDef
	tokDirective
)

type token struct {
	kind tokenKind
	text string
}

// rawLine is a source line stripped of comments and leading/trailing
// whitespace, with its original line number preserved for diagnostics.
type rawLine struct {
	number int
	text   string
}

// stripComments removes everything from the first unquoted '#' or ';'
// to the end of the line.
func stripComments(line string) string {
	for i, r := range line {
		if r == '#' || r == ';' {
			return line[:i]
		}
	}
	return line
}

// lex splits source into non-blank, comment-stripped lines.
func lex(source string) []rawLine {
	var lines []rawLine
	for i, raw := range strings.Split(source, "\n") {
		text := strings.TrimSpace(stripComments(raw))
		if text == "" {
			continue
		}
		lines = append(lines, rawLine{number: i + 1, text: text})
	}
	return lines
}

// tokenizeFields splits a line's instruction body into tokens after
// any label definition and mnemonic have already been consumed.
func tokenizeFields(body string) []string {
	body = strings.ReplaceAll(body, ",", " ")
	return strings.Fields(body)
}

func classifyOperand(field string) tokenKind {
	if len(field) >= 2 && (field[0] == 'r' || field[0] == 'R') {
		if n := field[1:]; n != "" && isAllDigits(n) {
			return tokRegister
		}
	}
	if field != "" && (isAllDigits(field) || (field[0] == '-' && len(field) > 1 && isAllDigits(field[1:]))) {
		return tokNumber
	}
	if strings.HasPrefix(field, "0x") || strings.HasPrefix(field, "0X") {
		return tokNumber
	}
	return tokIdent
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
