//go:build debug

package vm

// debugChecks makes internal consistency faults fatal.
const debugChecks = true
