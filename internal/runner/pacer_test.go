package runner

import (
	"testing"
	"time"

	"github.com/retroenv/chip8vm/internal/vm"
	"github.com/retroenv/retrogolib/assert"
)

func TestPacer_CyclesForFrame(t *testing.T) {
	tests := []struct {
		name            string
		instructionRate uint
		timerRate       uint
		frames          int
		wantTotal       int
	}{
		{"even division", 600, 60, 60, 600},
		{"uneven division", 700, 60, 60, 700},
		{"slower than timer", 30, 60, 60, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPacer(tt.instructionRate, tt.timerRate)
			total := 0
			for range tt.frames {
				total += p.CyclesForFrame()
			}
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}

func TestPacer_TicksForCycles(t *testing.T) {
	p := NewPacer(600, 60)

	assert.Equal(t, uint32(0), p.TicksForCycles(9))
	assert.Equal(t, uint32(1), p.TicksForCycles(1))
	assert.Equal(t, uint32(59), p.TicksForCycles(590))
	assert.Equal(t, uint32(0), p.TicksForCycles(5))
	assert.Equal(t, uint32(1), p.TicksForCycles(5))
}

func TestPacer_TimerDecayOverInstructions(t *testing.T) {
	p := NewPacer(600, 60)
	machine := vm.New(vm.WithSeed(1))
	machine.DelayTimer = 10

	machine.TickTimers(p.TicksForCycles(600))
	assert.Equal(t, uint8(0), machine.DelayTimer)

	machine.TickTimers(p.TicksForCycles(600))
	assert.Equal(t, uint8(0), machine.DelayTimer)
}

func TestPacer_TicksForDuration(t *testing.T) {
	p := NewPacer(700, 60)
	period := p.FramePeriod()
	assert.Equal(t, time.Second/60, period)

	assert.Equal(t, uint32(0), p.TicksForDuration(period/2))
	assert.Equal(t, uint32(1), p.TicksForDuration(period/2+1))
	assert.Equal(t, uint32(3), p.TicksForDuration(3*period))
	assert.Equal(t, uint32(60), p.TicksForDuration(time.Second))
	assert.Equal(t, uint32(0), p.TicksForDuration(-time.Second))
}
