package asm

import (
	"fmt"
	"strings"

	"github.com/cmoultrie/umvm/bitfield"
)

var opcodeToMnemonic = func() map[uint32]string {
	m := make(map[uint32]string, len(mnemonicToOpcode))
	for name, op := range mnemonicToOpcode {
		m[op] = name
	}
	return m
}()

// Disassemble renders a word stream as one text instruction per line,
// the inverse of Assemble minus label names (offsets are printed as
// bare Load Value immediates, not resolved back to symbols). A word
// is rendered as .word only when its opcode field is 14 or 15; a
// .word value whose top four bits name an opcode comes back as that
// instruction, with any bits outside that opcode's operand fields
// dropped.
func Disassemble(words []uint32) string {
	var b strings.Builder
	for _, word := range words {
		b.WriteString(disassembleWord(word))
		b.WriteByte('\n')
	}
	return b.String()
}

func disassembleWord(word uint32) string {
	w := uint64(word)
	opcode := bitfield.GetUnsigned(w, opcodeWidth, opcodeLsb)
	mnemonic, ok := opcodeToMnemonic[uint32(opcode)]
	if !ok {
		return fmt.Sprintf(".word 0x%08X", word)
	}

	if mnemonic == "ldval" {
		rl := bitfield.GetUnsigned(w, rlWidth, rlLsb)
		vl := bitfield.GetUnsigned(w, vlWidth, vlLsb)
		return fmt.Sprintf("ldval r%d, %d", rl, vl)
	}
	if mnemonic == "halt" {
		return "halt"
	}
	if oneRegisterOps[mnemonic] {
		c := bitfield.GetUnsigned(w, cWidth, cLsb)
		return fmt.Sprintf("%s r%d", mnemonic, c)
	}

	a := bitfield.GetUnsigned(w, aWidth, aLsb)
	b := bitfield.GetUnsigned(w, bWidth, bLsb)
	c := bitfield.GetUnsigned(w, cWidth, cLsb)
	return fmt.Sprintf("%s r%d, r%d, r%d", mnemonic, a, b, c)
}
