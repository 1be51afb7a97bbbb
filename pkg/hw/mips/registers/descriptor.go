// Package registers contains the MIPS general purpose register table.
package registers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Manu343726/mipsdecode/pkg/utils"
)

// Number of general purpose registers
const Count = 32

// Bits used to encode a register number
const RegisterBits = 5

var ErrInvalidRegisterNumber = errors.New("invalid register number")
var ErrUnknownRegister = errors.New("unknown register")

// All the MIPS general purpose registers, indexed by register number
var registers [Count]*RegisterDescriptor = buildRegisterTable()

func buildRegisterTable() [Count]*RegisterDescriptor {
	var table [Count]*RegisterDescriptor

	groups := [][]*RegisterDescriptor{
		{{Name: "$zero", Description: "Constant zero"}},
		{{Name: "$at", Description: "Assembler temporary"}},
		makeRegisters("v", 0, 2, "Function results and expression evaluation"),
		makeRegisters("a", 0, 4, "Function arguments"),
		makeRegisters("t", 0, 8, "Temporaries"),
		makeRegisters("s", 0, 8, "Saved temporaries"),
		makeRegisters("t", 8, 2, "Temporaries"),
		makeRegisters("k", 0, 2, "Reserved for the OS kernel"),
		{{Name: "$gp", Description: "Global pointer"}},
		{{Name: "$sp", Description: "Stack pointer"}},
		{{Name: "$fp", Description: "Frame pointer"}},
		{{Name: "$ra", Description: "Return address"}},
	}

	index := 0
	for _, group := range groups {
		for _, register := range group {
			register.Index = index
			table[index] = register
			index++
		}
	}

	if index != Count {
		panic("MIPS register table must have exactly 32 registers")
	}

	return table
}

// Returns the register with the given number
func Register(number uint64) (*RegisterDescriptor, error) {
	if number >= Count {
		return nil, utils.MakeError(ErrInvalidRegisterNumber, "%v (binary: %v) is out of range [0, %v)",
			number, utils.FormatUintBinary(number, RegisterBits), Count)
	}

	return registers[number], nil
}

// Returns the canonical mnemonic of the register with the given number
func Name(number uint64) (string, error) {
	register, err := Register(number)
	if err != nil {
		return "", err
	}

	return register.Name, nil
}

// Returns a register given either its mnemonic ("$t0", "t0") or its number ("$8", "8")
func ByName(name string) (*RegisterDescriptor, error) {
	trimmed := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "$")

	if number, err := strconv.ParseUint(trimmed, 10, 64); err == nil {
		register, err := Register(number)
		if err != nil {
			return nil, utils.MakeError(ErrUnknownRegister, "'%v': %w", name, err)
		}
		return register, nil
	}

	for _, register := range registers {
		if register.Name == "$"+trimmed {
			return register, nil
		}
	}

	// $s8 is the alternate name of the frame pointer
	if trimmed == "s8" {
		return registers[30], nil
	}

	return nil, utils.MakeError(ErrUnknownRegister, "'%v'", name)
}

// Returns all registers, ordered by number
func All() []*RegisterDescriptor {
	return registers[:]
}
