package vm

// execSegmentedLoad implements opcode 1: R[a] = memory[R[b]][R[c]].
func (vm *VM) execSegmentedLoad(inst Instruction) error {
	word, err := vm.Memory.Load(vm.Registers[inst.RB], vm.Registers[inst.RC])
	if err != nil {
		return err
	}
	vm.Registers[inst.RA] = word
	return nil
}

// execSegmentedStore implements opcode 2: memory[R[a]][R[b]] = R[c].
func (vm *VM) execSegmentedStore(inst Instruction) error {
	return vm.Memory.Store(vm.Registers[inst.RA], vm.Registers[inst.RB], vm.Registers[inst.RC])
}

// execMapSegment implements opcode 8: allocate a new zero-filled
// segment of R[c] words and store its identifier in R[b].
func (vm *VM) execMapSegment(inst Instruction) error {
	id := vm.Memory.Allocate(vm.Registers[inst.RC])
	vm.Registers[inst.RB] = id
	return nil
}

// execUnmapSegment implements opcode 9: free segment R[c], making its
// identifier eligible for reuse by a future Map Segment.
func (vm *VM) execUnmapSegment(inst Instruction) error {
	return vm.Memory.Free(vm.Registers[inst.RC])
}
