package vm

import "fmt"

// pcEffect describes how an executed instruction affected the program counter.
type pcEffect uint8

const (
	pcAdvance pcEffect = iota // pc moves to the next instruction
	pcSet                     // the instruction set pc itself
	pcHold                    // pc stays on the current instruction
)

// Execute applies a decoded instruction to the state, assuming that PC
// holds the address the instruction was fetched from. Faulting instructions
// have no effect besides advancing PC and return the cause.
func (s *State) Execute(ins Instruction) error {
	if ins.X >= RegisterCount || ins.Y >= RegisterCount {
		if debugChecks {
			panic(fmt.Sprintf("decoded register operand out of range: %+v", ins))
		}
		s.PC = wrapAddress(s.PC + opcodeSize)
		return fmt.Errorf("%w: V%X/V%X", ErrInvalidRegister, ins.X, ins.Y)
	}

	effect, err := s.execute(ins)
	if effect == pcAdvance {
		s.PC = wrapAddress(s.PC + opcodeSize)
	}
	return err
}

//nolint:funlen,cyclop // one case per instruction form
func (s *State) execute(ins Instruction) (pcEffect, error) {
	x, y := ins.X, ins.Y

	switch ins.Kind {
	case ClearScreen:
		s.Pixels = [ScreenWidth * ScreenHeight]bool{}

	case Return:
		if s.SP == 0 {
			return pcAdvance, ErrStackUnderflow
		}
		s.SP--
		s.PC = s.Stack[s.SP]
		return pcSet, nil

	case Jump:
		s.PC = ins.NNN
		return pcSet, nil

	case Call:
		if s.SP >= StackDepth {
			return pcAdvance, ErrStackOverflow
		}
		s.Stack[s.SP] = wrapAddress(s.PC + opcodeSize)
		s.SP++
		s.PC = ins.NNN
		return pcSet, nil

	case SkipEqualImm:
		return s.skipIf(s.V[x] == ins.KK), nil
	case SkipNotEqualImm:
		return s.skipIf(s.V[x] != ins.KK), nil
	case SkipEqualReg:
		return s.skipIf(s.V[x] == s.V[y]), nil
	case SkipNotEqualReg:
		return s.skipIf(s.V[x] != s.V[y]), nil

	case LoadImm:
		s.V[x] = ins.KK
	case AddImm:
		s.V[x] += ins.KK
	case LoadReg:
		s.V[x] = s.V[y]
	case Or:
		s.V[x] |= s.V[y]
	case And:
		s.V[x] &= s.V[y]
	case Xor:
		s.V[x] ^= s.V[y]

	case AddReg:
		sum := uint16(s.V[x]) + uint16(s.V[y])
		s.setWithFlag(x, uint8(sum), sum > 0xFF)
	case Sub:
		vx, vy := s.V[x], s.V[y]
		s.setWithFlag(x, vx-vy, vx >= vy)
	case SubNotBorrow:
		vx, vy := s.V[x], s.V[y]
		s.setWithFlag(x, vy-vx, vy >= vx)
	case ShiftRight:
		vx := s.V[x]
		s.setWithFlag(x, vx>>1, vx&0x01 != 0)
	case ShiftLeft:
		vx := s.V[x]
		s.setWithFlag(x, vx<<1, vx&0x80 != 0)

	case LoadIndex:
		s.I = ins.NNN
	case JumpOffset:
		s.PC = wrapAddress(ins.NNN + uint16(s.V[0]))
		return pcSet, nil
	case Random:
		s.V[x] = uint8(s.rng.UintN(256)) & ins.KK
	case Draw:
		s.draw(s.V[x], s.V[y], ins.N)

	case SkipKeyPressed:
		return s.skipIf(s.Keys[s.V[x]&0x0F]), nil
	case SkipKeyNotPressed:
		return s.skipIf(!s.Keys[s.V[x]&0x0F]), nil

	case LoadDelay:
		s.V[x] = s.DelayTimer
	case WaitKey:
		s.waitingForKey = true
		s.waitRegister = x
		return pcHold, nil
	case SetDelay:
		s.DelayTimer = s.V[x]
	case SetSound:
		s.SoundTimer = s.V[x]
	case AddIndex:
		s.I = wrapAddress(s.I + uint16(s.V[x]))
	case LoadFont:
		s.I = FontAddress(s.V[x])
	case StoreBCD:
		vx := s.V[x]
		s.Memory[wrapAddress(s.I)] = vx / 100
		s.Memory[wrapAddress(s.I+1)] = vx / 10 % 10
		s.Memory[wrapAddress(s.I+2)] = vx % 10
	case StoreRegisters:
		for i := uint16(0); i <= uint16(x); i++ {
			s.Memory[wrapAddress(s.I+i)] = s.V[i]
		}
	case LoadRegisters:
		for i := uint16(0); i <= uint16(x); i++ {
			s.V[i] = s.Memory[wrapAddress(s.I+i)]
		}

	default:
		return pcAdvance, fmt.Errorf("%w: %04X", ErrUnknownOpcode, ins.Opcode)
	}

	return pcAdvance, nil
}

// skipIf moves pc past the next instruction if the condition holds.
func (s *State) skipIf(condition bool) pcEffect {
	if !condition {
		return pcAdvance
	}
	s.PC = wrapAddress(s.PC + 2*opcodeSize)
	return pcSet
}

// setWithFlag stores an ALU result and then the flag, so that the flag wins
// when the destination is VF.
func (s *State) setWithFlag(x, result uint8, flag bool) {
	s.V[x] = result
	s.V[FlagRegister] = boolToByte(flag)
}

// draw XORs an n byte sprite read from I onto the pixel buffer at (vx, vy),
// wrapping on both axes. VF reports whether any set pixel was cleared.
func (s *State) draw(vx, vy, n uint8) {
	collision := false

	for row := range int(n) {
		sprite := s.Memory[wrapAddress(s.I+uint16(row))]
		py := (int(vy) + row) % ScreenHeight

		for col := range spriteWidth {
			if sprite&(0x80>>col) == 0 {
				continue
			}
			px := (int(vx) + col) % ScreenWidth
			idx := py*ScreenWidth + px
			if s.Pixels[idx] {
				collision = true
			}
			s.Pixels[idx] = !s.Pixels[idx]
		}
	}

	s.V[FlagRegister] = boolToByte(collision)
}

func boolToByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
