package vm

// execConditionalMove implements opcode 0: R[a] = R[b] if R[c] != 0.
func (vm *VM) execConditionalMove(inst Instruction) error {
	if vm.Registers[inst.RC] != 0 {
		vm.Registers[inst.RA] = vm.Registers[inst.RB]
	}
	return nil
}

// execHalt implements opcode 7: stop the machine cleanly. This is the
// only opcode that transitions State to StateHalted rather than
// leaving the loop to run out of fuel or trap.
func (vm *VM) execHalt(inst Instruction) error {
	vm.State = StateHalted
	return nil
}

// execLoadProgram implements opcode 12: replace segment 0 with a
// duplicate of segment R[b] (unless R[b] == 0, the no-copy fast path),
// then jump to offset R[c].
func (vm *VM) execLoadProgram(inst Instruction) error {
	src := vm.Registers[inst.RB]
	if src != ProgramSegment {
		if err := vm.Memory.ReplaceProgram(src); err != nil {
			return err
		}
	}
	offset := vm.Registers[inst.RC]
	if offset >= vm.Memory.ProgramLength() {
		return ErrProgramCounterOOB
	}
	vm.PC = offset
	return nil
}

// execLoadValue implements opcode 13: R[l] = value, a 25-bit immediate
// loaded directly into the register named by the instruction's own RL
// field (distinct field layout from every other opcode).
func (vm *VM) execLoadValue(inst Instruction) error {
	vm.Registers[inst.RL] = inst.VL
	return nil
}
