package vm

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// State is the complete mutable machine state of the interpreter.
// It is owned by a single emulation loop and is not safe for concurrent use.
type State struct {
	V     [RegisterCount]uint8 // general-purpose registers V0-VF
	I     uint16               // index register
	PC    uint16               // program counter
	Stack [StackDepth]uint16   // return addresses
	SP    uint8                // number of stack levels in use

	Memory [MemorySize]byte

	DelayTimer uint8
	SoundTimer uint8

	Pixels [ScreenWidth * ScreenHeight]bool

	// Keys is the input snapshot, written by the host before each step.
	Keys Keypad

	previousKeys  Keypad // key snapshot seen by the previous step
	waitingForKey bool
	waitRegister  uint8

	rng    *rand.Rand
	tracer Tracer
}

// Option configures a State on creation.
type Option func(*State)

// WithRand sets the random source used by the random instruction.
func WithRand(rng *rand.Rand) Option {
	return func(s *State) {
		s.rng = rng
	}
}

// WithSeed seeds the random source used by the random instruction.
func WithSeed(seed uint64) Option {
	return func(s *State) {
		s.rng = rand.New(rand.NewPCG(seed, seed>>32|seed<<32))
	}
}

// New returns a machine in power-on state with the font set loaded and
// the program counter at ProgramStart.
func New(opts ...Option) *State {
	s := &State{}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		seed := uint64(time.Now().UnixNano())
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	}
	s.Reset()
	return s
}

// Reset restores the power-on state. The program area of the memory is kept
// so that a loaded program can be restarted.
func (s *State) Reset() {
	s.V = [RegisterCount]uint8{}
	s.I = 0
	s.PC = ProgramStart
	s.Stack = [StackDepth]uint16{}
	s.SP = 0
	s.DelayTimer = 0
	s.SoundTimer = 0
	s.Pixels = [ScreenWidth * ScreenHeight]bool{}
	s.Keys = Keypad{}
	s.previousKeys = Keypad{}
	s.waitingForKey = false
	s.waitRegister = 0

	clear(s.Memory[:ProgramStart])
	copy(s.Memory[FontStart:], fontSet[:])
}

// LoadROM copies a program image into memory at ProgramStart and resets the
// machine. Images larger than MaxROMSize are rejected and leave the state
// unchanged.
func (s *State) LoadROM(rom []byte) error {
	if len(rom) > MaxROMSize {
		return fmt.Errorf("%w: %d bytes exceed the maximum of %d bytes", ErrRomTooLarge, len(rom), MaxROMSize)
	}

	clear(s.Memory[ProgramStart:])
	copy(s.Memory[ProgramStart:], rom)
	s.Reset()
	return nil
}

// WaitingForKey returns the destination register and true if execution is
// parked on a wait for key instruction.
func (s *State) WaitingForKey() (uint8, bool) {
	return s.waitRegister, s.waitingForKey
}

// SoundActive returns whether the beeper should currently sound.
func (s *State) SoundActive() bool {
	return s.SoundTimer > 0
}

// fetch reads the big-endian instruction word at the program counter.
func (s *State) fetch() uint16 {
	hi := s.Memory[wrapAddress(s.PC)]
	lo := s.Memory[wrapAddress(s.PC+1)]
	return uint16(hi)<<8 | uint16(lo)
}
