package vm

import (
	"errors"
	"fmt"
)

var (
	// ErrRomTooLarge is returned when a program image does not fit into memory.
	ErrRomTooLarge = errors.New("rom too large")
	// ErrUnknownOpcode is returned for instruction words that are not part of the instruction set.
	ErrUnknownOpcode = errors.New("unknown opcode")
	// ErrStackOverflow is returned for a call with all stack levels in use.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned for a return with an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrInvalidRegister is returned for register operands outside of V0-VF.
	ErrInvalidRegister = errors.New("invalid register index")
)

// StepError describes a recoverable fault of a single executed instruction.
type StepError struct {
	Address     uint16 // address the instruction was fetched from
	Opcode      uint16
	Instruction Instruction // kind Unknown if the opcode did not decode
	Err         error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s (opcode %04X) at %03X: %s", e.Instruction, e.Opcode, e.Address, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
