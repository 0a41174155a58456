package vm

// CHIP-8 machine dimensions.
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000
	// ProgramStart is the address where programs are loaded and executed from.
	ProgramStart = 0x200
	// MaxROMSize is the largest program image that fits into memory.
	MaxROMSize = MemorySize - ProgramStart

	// FontStart is the address of the built-in hexadecimal font.
	FontStart = 0x000
	// FontGlyphSize is the number of bytes of a single font sprite.
	FontGlyphSize = 5

	// RegisterCount is the number of general-purpose registers.
	RegisterCount = 16
	// FlagRegister is the index of VF.
	FlagRegister = 0xF
	// StackDepth is the maximum number of nested subroutine calls.
	StackDepth = 16
	// KeyCount is the number of keys on the hexadecimal keypad.
	KeyCount = 16

	// ScreenWidth is the width of the pixel buffer.
	ScreenWidth = 64
	// ScreenHeight is the height of the pixel buffer.
	ScreenHeight = 32

	// TimerRate is the decrement rate of the delay and sound timers in Hz.
	TimerRate = 60

	opcodeSize  = 2
	addressMask = MemorySize - 1
	spriteWidth = 8
)

// wrapAddress maps any computed address into the memory space.
func wrapAddress(address uint16) uint16 {
	return address & addressMask
}
