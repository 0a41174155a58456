package vm

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Kind identifies a decoded instruction form.
type Kind uint8

// Instruction forms of the CHIP-8 instruction set, named after their
// canonical opcode patterns.
const (
	Unknown           Kind = iota
	ClearScreen            // 00E0
	Return                 // 00EE
	Jump                   // 1nnn
	Call                   // 2nnn
	SkipEqualImm           // 3xkk
	SkipNotEqualImm        // 4xkk
	SkipEqualReg           // 5xy0
	LoadImm                // 6xkk
	AddImm                 // 7xkk
	LoadReg                // 8xy0
	Or                     // 8xy1
	And                    // 8xy2
	Xor                    // 8xy3
	AddReg                 // 8xy4
	Sub                    // 8xy5
	ShiftRight             // 8xy6
	SubNotBorrow           // 8xy7
	ShiftLeft              // 8xyE
	SkipNotEqualReg        // 9xy0
	LoadIndex              // Annn
	JumpOffset             // Bnnn
	Random                 // Cxkk
	Draw                   // Dxyn
	SkipKeyPressed         // Ex9E
	SkipKeyNotPressed      // ExA1
	LoadDelay              // Fx07
	WaitKey                // Fx0A
	SetDelay               // Fx15
	SetSound               // Fx18
	AddIndex               // Fx1E
	LoadFont               // Fx29
	StoreBCD               // Fx33
	StoreRegisters         // Fx55
	LoadRegisters          // Fx65

	kindCount
)

// kinds maps the value of an opcode table entry to its instruction form.
// Table entries without a form here, like machine code routines, decode
// as unknown.
var kinds = map[uint16]Kind{
	0x00E0: ClearScreen,
	0x00EE: Return,
	0x1000: Jump,
	0x2000: Call,
	0x3000: SkipEqualImm,
	0x4000: SkipNotEqualImm,
	0x5000: SkipEqualReg,
	0x6000: LoadImm,
	0x7000: AddImm,
	0x8000: LoadReg,
	0x8001: Or,
	0x8002: And,
	0x8003: Xor,
	0x8004: AddReg,
	0x8005: Sub,
	0x8006: ShiftRight,
	0x8007: SubNotBorrow,
	0x800E: ShiftLeft,
	0x9000: SkipNotEqualReg,
	0xA000: LoadIndex,
	0xB000: JumpOffset,
	0xC000: Random,
	0xD000: Draw,
	0xE09E: SkipKeyPressed,
	0xE0A1: SkipKeyNotPressed,
	0xF007: LoadDelay,
	0xF00A: WaitKey,
	0xF015: SetDelay,
	0xF018: SetSound,
	0xF01E: AddIndex,
	0xF029: LoadFont,
	0xF033: StoreBCD,
	0xF055: StoreRegisters,
	0xF065: LoadRegisters,
}

// Instruction is a decoded instruction word with all operand fields extracted.
// Which fields are meaningful depends on Kind.
type Instruction struct {
	Kind   Kind
	Opcode uint16 // raw instruction word

	X   uint8  // register nibble 0x0F00
	Y   uint8  // register nibble 0x00F0
	N   uint8  // low nibble 0x000F
	KK  uint8  // low byte 0x00FF
	NNN uint16 // address 0x0FFF

	mnemonic *chip8.Instruction
}

// Decode maps an instruction word to its instruction form using the CHIP-8
// opcode table. Decoding is total: words that do not match any supported
// table entry return an Instruction of kind Unknown together with an error
// wrapping ErrUnknownOpcode.
func Decode(opcode uint16) (Instruction, error) {
	ins := Instruction{
		Opcode: opcode,
		X:      uint8(opcode>>8) & 0x0F,
		Y:      uint8(opcode>>4) & 0x0F,
		N:      uint8(opcode) & 0x0F,
		KK:     uint8(opcode),
		NNN:    opcode & 0x0FFF,
	}

	for _, op := range chip8.Opcodes[int(opcode>>12)] {
		if op.Info.Mask&opcode != op.Info.Value {
			continue
		}
		kind, ok := kinds[op.Info.Value]
		if !ok {
			continue
		}

		ins.Kind = kind
		ins.mnemonic = op.Instruction
		return ins, nil
	}
	return ins, fmt.Errorf("%w: %04X", ErrUnknownOpcode, opcode)
}

// Name returns the assembler mnemonic of the instruction.
func (ins Instruction) Name() string {
	if ins.mnemonic == nil {
		return "unknown"
	}
	return ins.mnemonic.Name
}

// IsSkip returns whether the instruction conditionally skips the next instruction.
func (ins Instruction) IsSkip() bool {
	if ins.mnemonic == nil {
		return false
	}
	return chip8.SkipInstructions.Contains(ins.mnemonic.Name)
}

// String returns the instruction in assembler notation, used for trace output.
func (ins Instruction) String() string {
	if params := ins.params(); params != "" {
		return fmt.Sprintf("%s %s", ins.Name(), params)
	}
	return ins.Name()
}

func (ins Instruction) params() string {
	switch ins.Kind {
	case ClearScreen, Return:
		return ""
	case Jump, Call:
		return fmt.Sprintf("$%03X", ins.NNN)
	case JumpOffset:
		return fmt.Sprintf("V0, $%03X", ins.NNN)
	case SkipEqualImm, SkipNotEqualImm, LoadImm, AddImm, Random:
		return fmt.Sprintf("V%X, $%02X", ins.X, ins.KK)
	case SkipEqualReg, SkipNotEqualReg, LoadReg, Or, And, Xor, AddReg, Sub, SubNotBorrow:
		return fmt.Sprintf("V%X, V%X", ins.X, ins.Y)
	case ShiftRight, ShiftLeft, SkipKeyPressed, SkipKeyNotPressed:
		return fmt.Sprintf("V%X", ins.X)
	case LoadIndex:
		return fmt.Sprintf("I, $%03X", ins.NNN)
	case Draw:
		return fmt.Sprintf("V%X, V%X, $%X", ins.X, ins.Y, ins.N)
	case LoadDelay:
		return fmt.Sprintf("V%X, DT", ins.X)
	case WaitKey:
		return fmt.Sprintf("V%X, K", ins.X)
	case SetDelay:
		return fmt.Sprintf("DT, V%X", ins.X)
	case SetSound:
		return fmt.Sprintf("ST, V%X", ins.X)
	case AddIndex:
		return fmt.Sprintf("I, V%X", ins.X)
	case LoadFont:
		return fmt.Sprintf("F, V%X", ins.X)
	case StoreBCD:
		return fmt.Sprintf("B, V%X", ins.X)
	case StoreRegisters:
		return fmt.Sprintf("[I], V%X", ins.X)
	case LoadRegisters:
		return fmt.Sprintf("V%X, [I]", ins.X)
	default:
		return fmt.Sprintf("$%04X", ins.Opcode)
	}
}
