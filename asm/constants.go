// Package asm implements a text assembly format for Universal Machine
// programs: a mnemonic per opcode, register operands as r0-r7, labels,
// and a single .word directive for raw data. It exists purely as a
// convenience for writing test fixtures and example programs by hand;
// the VM itself only ever executes the binary word stream the loader
// produces.
package asm

// mnemonicToOpcode maps each opcode's text form to its numeric value. Kept as
// a plain map rather than generated from vm.Opcode.String() so the
// assembler's grammar doesn't silently drift if the VM's trace
// mnemonics ever change.
var mnemonicToOpcode = map[string]uint32{
	"cmov":     0,
	"sload":    1,
	"sstore":   2,
	"add":      3,
	"mul":      4,
	"div":      5,
	"nand":     6,
	"halt":     7,
	"map":      8,
	"unmap":    9,
	"out":      10,
	"in":       11,
	"loadprog": 12,
	"ldval":    13,
}

// threeRegisterOps take exactly three register operands: a, b, c.
var threeRegisterOps = map[string]bool{
	"cmov":     true,
	"sload":    true,
	"sstore":   true,
	"add":      true,
	"mul":      true,
	"div":      true,
	"nand":     true,
	"map":      true,
	"unmap":    true,
	"loadprog": true,
}

// oneRegisterOps take a single register operand: c.
var oneRegisterOps = map[string]bool{
	"out": true,
	"in":  true,
}

const maxLoadValue = 1<<25 - 1
