// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input string // ROM file to run
}

// Flags contains behavior options.
type Flags struct {
	Debug bool
	Quiet bool
}

// Emulation contains the scheduling options of the interpreter.
type Emulation struct {
	InstructionRate uint   // instructions per second
	TimerRate       uint   // timer decrements per second
	Seed            uint64 // random seed, 0 selects a time based seed
	MaxCycles       uint64 // instruction budget, 0 runs until interrupted
	FixedTiming     bool   // tick timers by executed instructions
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags
	Emulation
}
