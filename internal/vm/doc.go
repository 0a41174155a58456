// Package vm implements the CHIP-8 decode and execute core.
//
// # Machine Model
//
// A State holds everything the interpreter mutates:
//   - 4KB of memory, the font set at 0x000 and programs from ProgramStart (0x200)
//   - 16 general-purpose 8-bit registers (V0-VF), VF doubles as flag register
//   - the 16-bit index register I and the program counter
//   - a 16 level call stack
//   - the delay and sound timers
//   - a 64x32 monochrome pixel buffer and the 16 key input snapshot
//
// All memory addressing wraps modulo MemorySize, register arithmetic wraps
// modulo 256.
//
// # Execution
//
// Step fetches the big-endian instruction word at PC, decodes it into an
// Instruction and executes it. Instructions that transfer control set PC
// themselves, all others advance it by 2. Timers are not decremented by
// Step, the host calls TickTimers at a fixed 60 Hz cadence.
//
// The wait for key instruction (Fx0A) parks the machine: further Step calls
// only check for a newly pressed key and do not execute instructions until
// one is reported through SetKeys.
//
// # Errors
//
// Step errors are recoverable. Unknown opcodes, stack overflows and stack
// underflows turn the instruction into a no-op that advances PC, the
// returned *StepError describes the fault. Only ErrRomTooLarge returned by
// LoadROM is meant to be fatal for a host.
package vm
