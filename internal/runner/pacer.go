package runner

import (
	"time"
)

// Pacer converts between the instruction rate and the timer rate. All
// conversions carry their remainder, so rates that do not divide evenly
// do not drift over time.
type Pacer struct {
	instructionRate uint64
	timerRate       uint64
	timerPeriod     time.Duration

	frameCycles  uint64        // instructions per frame not yet executed, scaled by timerRate
	tickCycles   uint64        // instructions not yet converted into timer ticks, scaled by timerRate
	tickDuration time.Duration // wall-clock time not yet converted into timer ticks
}

// NewPacer returns a pacer for the given instruction and timer rates in Hz.
func NewPacer(instructionRate, timerRate uint) *Pacer {
	return &Pacer{
		instructionRate: uint64(instructionRate),
		timerRate:       uint64(timerRate),
		timerPeriod:     time.Second / time.Duration(timerRate),
	}
}

// FramePeriod returns the wall-clock duration of a single timer tick.
func (p *Pacer) FramePeriod() time.Duration {
	return p.timerPeriod
}

// CyclesForFrame returns the number of instructions to execute for the next
// timer tick.
func (p *Pacer) CyclesForFrame() int {
	p.frameCycles += p.instructionRate
	cycles := p.frameCycles / p.timerRate
	p.frameCycles %= p.timerRate
	return int(cycles)
}

// TicksForCycles returns the number of whole timer ticks that elapse while
// executing the given number of instructions.
func (p *Pacer) TicksForCycles(cycles uint64) uint32 {
	p.tickCycles += cycles * p.timerRate
	ticks := p.tickCycles / p.instructionRate
	p.tickCycles %= p.instructionRate
	return uint32(ticks)
}

// TicksForDuration returns the number of whole timer ticks that fit into the
// elapsed wall-clock time.
func (p *Pacer) TicksForDuration(elapsed time.Duration) uint32 {
	if elapsed <= 0 {
		return 0
	}
	p.tickDuration += elapsed
	ticks := p.tickDuration / p.timerPeriod
	p.tickDuration -= ticks * p.timerPeriod
	return uint32(ticks)
}
