package tools_test

import (
	"testing"

	"github.com/cmoultrie/umvm/tools"
)

func TestLintFlagsUnreachableCode(t *testing.T) {
	diags := tools.Lint(`
		halt
		halt
	`)
	found := false
	for _, d := range diags {
		if d.Message == "unreachable statement after halt" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an unreachable-code diagnostic, got %v", diags)
	}
}

func TestLintFlagsUnusedLabel(t *testing.T) {
	diags := tools.Lint(`
		dead: halt
	`)
	found := false
	for _, d := range diags {
		if d.Message == `label "dead" is never referenced` {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an unused-label diagnostic, got %v", diags)
	}
}

func TestLintCleanProgramHasNoDiagnostics(t *testing.T) {
	diags := tools.Lint(`
		start:
		ldval r0, start
		halt
	`)
	if len(diags) != 0 {
		t.Errorf("expected no diagnostics, got %v", diags)
	}
}

func TestLintReportsParseErrors(t *testing.T) {
	diags := tools.Lint("bogus r0, r1, r2")
	if len(diags) != 1 {
		t.Fatalf("expected one diagnostic for a parse error, got %v", diags)
	}
}
