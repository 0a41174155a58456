// Package runner drives a CHIP-8 machine at a fixed instruction rate while
// decrementing its timers on an independent wall-clock cadence.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/retroenv/chip8vm/internal/vm"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// Default rates in Hz.
const (
	DefaultInstructionRate = 700
	DefaultTimerRate       = vm.TimerRate
)

var errInvalidRate = errors.New("rate must be greater than zero")

// Config contains the scheduling settings of a runner.
type Config struct {
	InstructionRate uint   // instructions per second
	TimerRate       uint   // timer decrements per second
	MaxCycles       uint64 // stop after this many instructions, 0 runs until cancelled

	// FixedTiming derives timer ticks from the executed instructions
	// instead of the wall clock, which makes runs reproducible.
	FixedTiming bool
}

// DefaultConfig returns the default scheduling settings.
func DefaultConfig() Config {
	return Config{
		InstructionRate: DefaultInstructionRate,
		TimerRate:       DefaultTimerRate,
	}
}

// Option configures optional runner behavior.
type Option func(*Runner)

// WithClock sets the time source used for timer ticks.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		r.now = now
	}
}

// fault identifies a reported instruction fault, each is logged once.
type fault struct {
	address uint16
	opcode  uint16
}

// Fault is a distinct recoverable instruction fault seen during a run.
type Fault struct {
	Address     uint16
	Instruction vm.Instruction
	Err         error
}

// Runner executes a machine frame by frame.
type Runner struct {
	logger  *log.Logger
	machine *vm.State
	host    Host
	config  Config
	pacer   *Pacer
	now     func() time.Time

	cycles   uint64
	lastTick time.Time
	reported set.Set[fault]
	faults   []Fault

	frames       int
	presented    bool
	lastChecksum uint64
	lastSound    bool
}

// New returns a runner for the machine that exchanges input and output
// with the given host.
func New(logger *log.Logger, machine *vm.State, host Host, config Config, opts ...Option) (*Runner, error) {
	if config.InstructionRate == 0 {
		return nil, fmt.Errorf("instruction %w", errInvalidRate)
	}
	if config.TimerRate == 0 {
		return nil, fmt.Errorf("timer %w", errInvalidRate)
	}

	r := &Runner{
		logger:   logger,
		machine:  machine,
		host:     host,
		config:   config,
		pacer:    NewPacer(config.InstructionRate, config.TimerRate),
		now:      time.Now,
		reported: set.New[fault](),
	}
	for _, opt := range opts {
		opt(r)
	}
	machine.SetTracer(r.trace)
	return r, nil
}

// Run executes frames at the timer rate until the context is cancelled or
// the cycle budget is exhausted. Cancellation is checked between
// instructions and returned as the context error.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.pacer.FramePeriod())
	defer ticker.Stop()

	r.lastTick = r.now()

	for {
		done, err := r.RunFrame(ctx)
		if err != nil || done {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// RunFrame executes the instructions of a single frame, decrements the
// timers by the time elapsed since the previous frame and presents the
// frame if it changed. It returns true once the cycle budget is exhausted.
// Elapsed time is measured on the wall clock, or in executed instructions
// if FixedTiming is set.
func (r *Runner) RunFrame(ctx context.Context) (bool, error) {
	if r.lastTick.IsZero() {
		r.lastTick = r.now()
	}

	cycles := r.pacer.CyclesForFrame()
	for range cycles {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		if r.budgetExhausted() {
			r.logger.Info("Cycle budget exhausted", log.Int("cycles", int(r.cycles)))
			return true, nil
		}
		r.step()
	}

	r.machine.TickTimers(r.elapsedTicks(uint64(cycles)))

	if err := r.present(); err != nil {
		return false, err
	}
	return false, nil
}

// Cycles returns the number of executed steps.
func (r *Runner) Cycles() uint64 {
	return r.cycles
}

// Frames returns the number of frames presented to the host.
func (r *Runner) Frames() int {
	return r.frames
}

// Faults returns the distinct instruction faults in the order they
// occurred.
func (r *Runner) Faults() []Fault {
	return r.faults
}

func (r *Runner) elapsedTicks(cycles uint64) uint32 {
	if r.config.FixedTiming {
		return r.pacer.TicksForCycles(cycles)
	}

	now := r.now()
	ticks := r.pacer.TicksForDuration(now.Sub(r.lastTick))
	r.lastTick = now
	return ticks
}

func (r *Runner) budgetExhausted() bool {
	return r.config.MaxCycles > 0 && r.cycles >= r.config.MaxCycles
}

func (r *Runner) step() {
	r.machine.SetKeys(r.host.Keys())
	err := r.machine.Step()
	r.cycles++
	if err != nil {
		r.report(err)
	}
}

// report logs a recoverable instruction fault once per faulting instruction.
func (r *Runner) report(err error) {
	var stepErr *vm.StepError
	if !errors.As(err, &stepErr) {
		r.logger.Error("Executing instruction failed", log.Err(err))
		return
	}

	key := fault{address: stepErr.Address, opcode: stepErr.Opcode}
	if r.reported.Contains(key) {
		return
	}
	r.reported.Add(key)
	r.faults = append(r.faults, Fault{
		Address:     stepErr.Address,
		Instruction: stepErr.Instruction,
		Err:         stepErr.Err,
	})

	r.logger.Warn("Skipping faulting instruction",
		log.Hex("address", stepErr.Address),
		log.Hex("opcode", stepErr.Opcode),
		log.Stringer("instruction", stepErr.Instruction),
		log.Err(stepErr.Err))
}

func (r *Runner) trace(address uint16, ins vm.Instruction) {
	r.logger.Debug("Executing instruction",
		log.Hex("address", address),
		log.Stringer("instruction", ins))
}

func (r *Runner) present() error {
	frame := r.machine.Frame()
	checksum := frame.Checksum()
	if r.presented && checksum == r.lastChecksum && frame.SoundActive == r.lastSound {
		return nil
	}

	if err := r.host.Present(frame); err != nil {
		return fmt.Errorf("presenting frame: %w", err)
	}
	r.presented = true
	r.frames++
	r.lastChecksum = checksum
	r.lastSound = frame.SoundActive
	return nil
}
