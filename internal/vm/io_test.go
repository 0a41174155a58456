package vm

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestFrame(t *testing.T) {
	s := newTestState(t)
	s.Pixels[3*ScreenWidth+2] = true
	s.SoundTimer = 1

	frame := s.Frame()
	assert.True(t, frame.SoundActive)
	assert.True(t, frame.Pixels[3*ScreenWidth+2])
	assert.False(t, frame.Pixels[2*ScreenWidth+3])

	// the frame is a copy
	s.Pixels[3*ScreenWidth+2] = false
	assert.True(t, frame.Pixels[3*ScreenWidth+2])
}

func TestFrame_Packed(t *testing.T) {
	var frame Frame
	frame.Pixels[0] = true
	frame.Pixels[9] = true
	frame.Pixels[len(frame.Pixels)-1] = true

	packed := frame.Packed()
	assert.Equal(t, ScreenWidth*ScreenHeight/8, len(packed))
	assert.Equal(t, byte(0x80), packed[0])
	assert.Equal(t, byte(0x40), packed[1])
	assert.Equal(t, byte(0x01), packed[len(packed)-1])
}

func TestFrame_Checksum(t *testing.T) {
	s := newTestState(t)
	empty := s.Frame()
	again := s.Frame()
	assert.Equal(t, empty.Checksum(), again.Checksum())

	s.I = FontAddress(1)
	assert.NoError(t, exec(t, s, 0xD005))
	drawn := s.Frame()
	assert.True(t, empty.Checksum() != drawn.Checksum())
}

func TestSetKeys(t *testing.T) {
	s := newTestState(t)
	keys := Keypad{0x0: true, 0xF: true}

	s.SetKeys(keys)
	assert.Equal(t, keys, s.Keys)
}
