package vm

import (
	"fmt"
	"io"
)

// TraceEntry is one dispatched instruction, captured for diagnostics.
// Register state is deliberately not snapshotted here — recording all
// eight registers on every instruction would dominate the cost of
// tracing a long run, and the PC/opcode/operands are normally enough
// to correlate against a disassembly.
type TraceEntry struct {
	Cycle uint64
	PC    uint32
	Inst  Instruction
}

// InstructionTrace accumulates TraceEntry values for a run. It is
// opt-in: a VM with a nil Trace field pays no tracing cost at all.
type InstructionTrace struct {
	entries []TraceEntry
}

// NewInstructionTrace creates an empty trace with room for
// DefaultTraceCapacity entries before its backing slice must grow.
func NewInstructionTrace() *InstructionTrace {
	return &InstructionTrace{entries: make([]TraceEntry, 0, DefaultTraceCapacity)}
}

func (t *InstructionTrace) record(cycle uint64, pc uint32, inst Instruction) {
	t.entries = append(t.entries, TraceEntry{Cycle: cycle, PC: pc, Inst: inst})
}

// Entries returns the recorded trace in execution order.
func (t *InstructionTrace) Entries() []TraceEntry {
	return t.entries
}

// WriteTo renders the trace as one line per instruction: Load Value
// lines show the rl register and the immediate, every other opcode
// shows its a, b and c fields whether or not it uses them.
func (t *InstructionTrace) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, e := range t.entries {
		var line string
		if e.Inst.Op == OpLoadValue {
			line = fmt.Sprintf("%08d pc=%-8d %-8s r%d=%d\n", e.Cycle, e.PC, e.Inst.Op, e.Inst.RL, e.Inst.VL)
		} else {
			line = fmt.Sprintf("%08d pc=%-8d %-8s a=%d b=%d c=%d\n", e.Cycle, e.PC, e.Inst.Op, e.Inst.RA, e.Inst.RB, e.Inst.RC)
		}
		n, err := io.WriteString(w, line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
