package asm

import "fmt"

// SyntaxError reports a problem at a specific source line, mirroring
// the line-anchored diagnostics style of the toolchain this assembler
// was adapted from.
type SyntaxError struct {
	Line    int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

func newSyntaxError(line int, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Line: line, Message: fmt.Sprintf(format, args...)}
}
