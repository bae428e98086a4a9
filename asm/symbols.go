package asm

import "fmt"

// SymbolTable maps label names to the word offset they were defined
// at. Offsets are assigned during the first parse pass, before any
// operand referring to a label as a Load Value immediate can be
// resolved.
type SymbolTable struct {
	offsets map[string]uint32
}

func newSymbolTable() *SymbolTable {
	return &SymbolTable{offsets: make(map[string]uint32)}
}

func (s *SymbolTable) define(name string, offset uint32) error {
	if _, exists := s.offsets[name]; exists {
		return fmt.Errorf("label %q defined more than once", name)
	}
	s.offsets[name] = offset
	return nil
}

// Get resolves a label to its word offset.
func (s *SymbolTable) Get(name string) (uint32, error) {
	offset, ok := s.offsets[name]
	if !ok {
		return 0, fmt.Errorf("undefined label %q", name)
	}
	return offset, nil
}

// Names returns every defined label name.
func (s *SymbolTable) Names() []string {
	names := make([]string, 0, len(s.offsets))
	for name := range s.offsets {
		names = append(names, name)
	}
	return names
}
