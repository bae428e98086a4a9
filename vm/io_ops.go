package vm

import (
	"errors"
	"io"
)

// execOutput implements opcode 10: write the low byte of R[c] to the
// output stream. A value above 255 is a program error, but the
// architecture's documented behavior is to emit the low byte rather
// than trap; only an actual stream write failure is fatal.
func (vm *VM) execOutput(inst Instruction) error {
	b := byte(vm.Registers[inst.RC] & 0xFF)
	if err := vm.Output.WriteByte(b); err != nil {
		return errors.Join(ErrOutputIO, err)
	}
	return nil
}

// execInput implements opcode 11: read one byte into R[c].
//
// The reference implementation this architecture descends from
// coalesces every read failure, end-of-file included, into the
// all-ones sentinel. This implementation keeps that behavior for a
// clean end-of-file only: R[c] is set to all ones and execution
// continues. Any other read error is a genuine I/O failure, not an
// architectural end-of-file condition, and traps rather than feeding
// the program a sentinel it can't distinguish from real input.
func (vm *VM) execInput(inst Instruction) error {
	b, err := vm.input.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			vm.Registers[inst.RC] = AllOnes32
			return nil
		}
		return errors.Join(ErrInputIO, err)
	}
	vm.Registers[inst.RC] = uint32(b)
	return nil
}
