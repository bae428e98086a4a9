package asm

import "testing"

func TestAssembleHalt(t *testing.T) {
	words, err := Assemble("halt")
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if len(words) != 1 || words[0] != 0x70000000 {
		t.Errorf("got %#v, want [0x70000000]", words)
	}
}

func TestAssembleLoadValueAndOutput(t *testing.T) {
	words, err := Assemble(`
		ldval r0, 65
		out   r0
		halt
	`)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if len(words) != 3 {
		t.Fatalf("got %d words, want 3", len(words))
	}
	roundTrip := Disassemble(words)
	want := "ldval r0, 65\nout r0\nhalt\n"
	if roundTrip != want {
		t.Errorf("Disassemble = %q, want %q", roundTrip, want)
	}
}

func TestAssembleThreeRegisterForm(t *testing.T) {
	words, err := Assemble("add r3, r1, r2")
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if len(words) != 1 {
		t.Fatalf("got %d words, want 1", len(words))
	}
	if got := Disassemble(words); got != "add r3, r1, r2\n" {
		t.Errorf("Disassemble = %q", got)
	}
}

func TestAssembleLabelReference(t *testing.T) {
	words, err := Assemble(`
		start:
		ldval r0, start
		halt
	`)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("got %d words, want 2", len(words))
	}
	// start resolves to offset 0, the ldval instruction itself.
	if words[0] != 0xD0000000 {
		t.Errorf("ldval word = 0x%08X, want 0xD0000000", words[0])
	}
}

func TestAssembleDuplicateLabelFails(t *testing.T) {
	_, err := Assemble(`
		start: halt
		start: halt
	`)
	if err == nil {
		t.Fatal("expected error for duplicate label")
	}
}

func TestAssembleUndefinedLabelFails(t *testing.T) {
	_, err := Assemble("ldval r0, nowhere")
	if err == nil {
		t.Fatal("expected error for undefined label")
	}
}

func TestAssembleRegisterOutOfRangeFails(t *testing.T) {
	_, err := Assemble("add r8, r0, r0")
	if err == nil {
		t.Fatal("expected error for register out of range")
	}
}

func TestAssembleOversizedImmediateFails(t *testing.T) {
	_, err := Assemble("ldval r0, 33554432")
	if err == nil {
		t.Fatal("expected error for 25-bit immediate overflow")
	}
}

func TestAssembleWordDirective(t *testing.T) {
	words, err := Assemble(".word 0xCAFEBABE")
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if words[0] != 0xCAFEBABE {
		t.Errorf("got 0x%08X, want 0xCAFEBABE", words[0])
	}
}
