package vm_test

import (
	"bytes"
	"testing"

	"github.com/cmoultrie/umvm/asm"
	"github.com/cmoultrie/umvm/vm"
)

func assembleAndBoot(t *testing.T, source string) (*vm.VM, *bytes.Buffer) {
	t.Helper()
	words, err := asm.Assemble(source)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	machine := vm.NewVM()
	machine.Boot(words)
	var out bytes.Buffer
	machine.SetOutput(&out)
	return machine, &out
}

func TestHaltImmediate(t *testing.T) {
	machine, _ := assembleAndBoot(t, "halt")
	if err := machine.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if machine.State != vm.StateHalted {
		t.Errorf("State = %v, want StateHalted", machine.State)
	}
}

func TestLoadValueAndOutputProducesByte(t *testing.T) {
	machine, out := assembleAndBoot(t, `
		ldval r0, 65
		out   r0
		halt
	`)
	if err := machine.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.String() != "A" {
		t.Errorf("output = %q, want %q", out.String(), "A")
	}
}

func TestAddWithWrap(t *testing.T) {
	// add a, b, c computes R[a] = R[b] + R[c], so the destination is
	// the first operand.
	machine, _ := assembleAndBoot(t, `
		ldval r3, 2
		add   r1, r2, r3
		halt
	`)
	machine.Registers[2] = 0xFFFFFFFF
	if err := machine.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if machine.Registers[1] != 1 {
		t.Errorf("R1 = %d, want 1 (0xFFFFFFFF + 2 mod 2^32)", machine.Registers[1])
	}
}

func TestSegmentRoundTrip(t *testing.T) {
	machine, out := assembleAndBoot(t, `
		ldval r2, 4
		map   r0, r0, r2
		ldval r2, 99
		ldval r1, 0
		sstore r0, r1, r2
		sload r3, r0, r1
		out   r3
		halt
	`)
	if err := machine.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.String() != string(rune(99)) {
		t.Errorf("output = %q, want byte 99", out.String())
	}
}

func TestIdentifierReuse(t *testing.T) {
	machine, _ := assembleAndBoot(t, `
		ldval r2, 1
		map   r0, r0, r2
		unmap r0, r0, r0
		map   r0, r1, r2
		halt
	`)
	if err := machine.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if machine.Registers[0] != machine.Registers[1] {
		t.Errorf("R0=%d R1=%d, want the freed identifier reused", machine.Registers[0], machine.Registers[1])
	}
}

func TestDivideByZeroTrapsTheWholeRun(t *testing.T) {
	// div a, b, c computes R[a] = R[b] / R[c]: the divisor is the
	// third operand, and r2's default zero value is never overwritten.
	machine, _ := assembleAndBoot(t, `
		ldval r1, 10
		div   r0, r1, r2
		halt
	`)
	err := machine.Run()
	if err == nil {
		t.Fatal("expected a trap on division by zero")
	}
	if machine.State != vm.StateTrapped {
		t.Errorf("State = %v, want StateTrapped", machine.State)
	}
}
