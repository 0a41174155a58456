package vm

import (
	"github.com/cespare/xxhash"
)

// Keypad is the pressed state of the 16 hexadecimal keys 0-F.
type Keypad [KeyCount]bool

// Frame is the output exchanged with a host each frame.
type Frame struct {
	Pixels      [ScreenWidth * ScreenHeight]bool
	SoundActive bool
}

// SetKeys stores the current input snapshot. It has to be called before
// Step to make key presses visible to the program.
func (s *State) SetKeys(keys Keypad) {
	s.Keys = keys
}

// Frame returns a copy of the pixel buffer and the sound flag.
func (s *State) Frame() Frame {
	return Frame{
		Pixels:      s.Pixels,
		SoundActive: s.SoundActive(),
	}
}

// Packed returns the pixel buffer with 8 horizontal pixels per byte,
// most significant bit first.
func (f *Frame) Packed() []byte {
	buf := make([]byte, len(f.Pixels)/8)
	for i, set := range f.Pixels {
		if set {
			buf[i/8] |= 0x80 >> (i % 8)
		}
	}
	return buf
}

// Checksum returns a hash of the pixel buffer that hosts can use to detect
// unchanged frames.
func (f *Frame) Checksum() uint64 {
	return xxhash.Sum64(f.Packed())
}
