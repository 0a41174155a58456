package vm

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestTickTimers(t *testing.T) {
	tests := []struct {
		name       string
		delay      uint8
		sound      uint8
		ticks      uint32
		wantDelay  uint8
		wantSound  uint8
		wantActive bool
	}{
		{"no ticks", 10, 10, 0, 10, 10, true},
		{"single tick", 10, 1, 1, 9, 0, false},
		{"exact", 10, 10, 10, 0, 0, false},
		{"floored at zero", 10, 3, 60, 0, 0, false},
		{"huge elapsed", 255, 255, 1 << 31, 0, 0, false},
		{"already zero", 0, 0, 5, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(t)
			s.DelayTimer = tt.delay
			s.SoundTimer = tt.sound

			s.TickTimers(tt.ticks)
			assert.Equal(t, tt.wantDelay, s.DelayTimer)
			assert.Equal(t, tt.wantSound, s.SoundTimer)
			assert.Equal(t, tt.wantActive, s.SoundActive())
		})
	}
}

func TestTickTimers_NotPartOfExecution(t *testing.T) {
	s := newTestState(t)
	loadProgram(t, s, 0x1200) // JP $200
	s.DelayTimer = 10

	for range 100 {
		assert.NoError(t, s.Step())
	}
	assert.Equal(t, uint8(10), s.DelayTimer)
}
