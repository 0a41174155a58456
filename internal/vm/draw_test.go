package vm

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func pixel(s *State, x, y int) bool {
	return s.Pixels[y*ScreenWidth+x]
}

func countPixels(s *State) int {
	count := 0
	for _, set := range s.Pixels {
		if set {
			count++
		}
	}
	return count
}

func TestDraw_CollisionOnRedraw(t *testing.T) {
	s := newTestState(t)
	s.I = FontAddress(0x0)
	s.V[0] = 10
	s.V[1] = 5

	assert.NoError(t, exec(t, s, 0xD015))
	assert.Equal(t, uint8(0), s.V[FlagRegister])
	assert.Equal(t, 14, countPixels(s))

	// top row of the 0 glyph is 0xF0
	assert.True(t, pixel(s, 10, 5))
	assert.True(t, pixel(s, 13, 5))
	assert.False(t, pixel(s, 14, 5))

	assert.NoError(t, exec(t, s, 0xD015))
	assert.Equal(t, uint8(1), s.V[FlagRegister])
	assert.Equal(t, 0, countPixels(s))
}

func TestDraw_PartialOverlapSetsCollision(t *testing.T) {
	s := newTestState(t)
	s.I = 0x300
	s.Memory[0x300] = 0b10000000
	s.V[0] = 0
	s.V[1] = 0
	s.Pixels[1] = true

	assert.NoError(t, exec(t, s, 0xD011))
	assert.Equal(t, uint8(0), s.V[FlagRegister])
	assert.True(t, pixel(s, 0, 0))
	assert.True(t, pixel(s, 1, 0))
}

func TestDraw_WrapsHorizontally(t *testing.T) {
	s := newTestState(t)
	s.I = 0x300
	s.Memory[0x300] = 0xFF
	s.V[2] = 60
	s.V[3] = 0

	assert.NoError(t, exec(t, s, 0xD231))
	assert.Equal(t, uint8(0), s.V[FlagRegister])
	for x := 60; x < ScreenWidth; x++ {
		assert.True(t, pixel(s, x, 0))
	}
	for x := range 4 {
		assert.True(t, pixel(s, x, 0))
	}
	assert.False(t, pixel(s, 4, 0))
	assert.False(t, pixel(s, 59, 0))
	assert.Equal(t, 8, countPixels(s))
}

func TestDraw_WrapsVertically(t *testing.T) {
	s := newTestState(t)
	s.I = 0x300
	s.Memory[0x300] = 0x80
	s.Memory[0x301] = 0x80
	s.Memory[0x302] = 0x80
	s.V[0] = 5
	s.V[1] = 30

	assert.NoError(t, exec(t, s, 0xD013))
	assert.True(t, pixel(s, 5, 30))
	assert.True(t, pixel(s, 5, 31))
	assert.True(t, pixel(s, 5, 0))
	assert.Equal(t, 3, countPixels(s))
}

func TestDraw_CoordinatesWrapBeyondScreen(t *testing.T) {
	s := newTestState(t)
	s.I = 0x300
	s.Memory[0x300] = 0x80
	s.V[0] = 64 + 3
	s.V[1] = 32 + 2

	assert.NoError(t, exec(t, s, 0xD011))
	assert.True(t, pixel(s, 3, 2))
}

func TestDraw_SpriteAddressWraps(t *testing.T) {
	s := newTestState(t)
	s.Memory[0xFFF] = 0x80
	s.Memory[0x000] = 0x40 // overwrites the first font byte
	s.I = 0xFFF

	assert.NoError(t, exec(t, s, 0xD002))
	assert.True(t, pixel(s, 0, 0))
	assert.True(t, pixel(s, 1, 1))
	assert.Equal(t, 2, countPixels(s))
}

func TestDraw_ZeroHeightClearsFlag(t *testing.T) {
	s := newTestState(t)
	s.V[FlagRegister] = 1

	assert.NoError(t, exec(t, s, 0xD010))
	assert.Equal(t, uint8(0), s.V[FlagRegister])
	assert.Equal(t, 0, countPixels(s))
}
