package asm

import (
	"fmt"

	"github.com/cmoultrie/umvm/bitfield"
)

// field layouts, shared with the disassembler. The VM's own decoder
// uses direct shift-and-mask for these same positions (see
// vm/decode.go) since it's on the hot path for every instruction; the
// assembler runs once per build, so it goes through the general
// bitfield API instead to exercise exactly the width/lsb contract the
// bitfield package exists to validate.
const (
	opcodeWidth, opcodeLsb = 4, 28
	aWidth, aLsb           = 3, 6
	bWidth, bLsb           = 3, 3
	cWidth, cLsb           = 3, 0
	rlWidth, rlLsb         = 3, 25
	vlWidth, vlLsb         = 25, 0
)

// Encode renders a parsed Program as a stream of big-endian-ready
// 32-bit instruction words, in source order.
func Encode(prog *Program) ([]uint32, error) {
	words := make([]uint32, 0, len(prog.Statements))
	for _, stmt := range prog.Statements {
		if stmt.kind == stmtWord {
			words = append(words, stmt.value)
			continue
		}
		word, err := encodeStatement(stmt)
		if err != nil {
			return nil, fmt.Errorf("asm: line %d: %w", stmt.line, err)
		}
		words = append(words, word)
	}
	return words, nil
}

func encodeStatement(stmt statement) (uint32, error) {
	opcode, ok := mnemonicToOpcode[stmt.mnemonic]
	if !ok {
		return 0, fmt.Errorf("unknown mnemonic %q", stmt.mnemonic)
	}

	word, ok := bitfield.NewUnsigned(0, opcodeWidth, opcodeLsb, uint64(opcode))
	if !ok {
		return 0, fmt.Errorf("opcode %d does not fit in its field", opcode)
	}

	if stmt.mnemonic == "ldval" {
		word, ok = bitfield.NewUnsigned(word, rlWidth, rlLsb, uint64(stmt.rl))
		if !ok {
			return 0, fmt.Errorf("register %d does not fit in rl field", stmt.rl)
		}
		word, ok = bitfield.NewUnsigned(word, vlWidth, vlLsb, uint64(stmt.value))
		if !ok {
			return 0, fmt.Errorf("immediate %d does not fit in vl field", stmt.value)
		}
		return uint32(word), nil
	}

	word, ok = bitfield.NewUnsigned(word, aWidth, aLsb, uint64(stmt.regs[0]))
	if !ok {
		return 0, fmt.Errorf("register %d does not fit in a field", stmt.regs[0])
	}
	word, ok = bitfield.NewUnsigned(word, bWidth, bLsb, uint64(stmt.regs[1]))
	if !ok {
		return 0, fmt.Errorf("register %d does not fit in b field", stmt.regs[1])
	}
	word, ok = bitfield.NewUnsigned(word, cWidth, cLsb, uint64(stmt.regs[2]))
	if !ok {
		return 0, fmt.Errorf("register %d does not fit in c field", stmt.regs[2])
	}
	return uint32(word), nil
}

// Assemble is the convenience entry point: parse source and encode it
// in one call.
func Assemble(source string) ([]uint32, error) {
	prog, err := Parse(source)
	if err != nil {
		return nil, err
	}
	return Encode(prog)
}
