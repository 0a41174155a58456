// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/chip8vm/internal/runner"
	"github.com/retroenv/chip8vm/internal/vm"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case debug:
		cfg.Level = log.DebugLevel
	case quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// RunnerConfig returns the scheduling settings for the given options,
// unset rates fall back to the defaults.
func RunnerConfig(opts options.Emulation) runner.Config {
	cfg := runner.DefaultConfig()
	if opts.InstructionRate > 0 {
		cfg.InstructionRate = opts.InstructionRate
	}
	if opts.TimerRate > 0 {
		cfg.TimerRate = opts.TimerRate
	}
	cfg.MaxCycles = opts.MaxCycles
	cfg.FixedTiming = opts.FixedTiming
	return cfg
}

// MachineOptions returns the machine creation options for the given options.
func MachineOptions(opts options.Emulation) []vm.Option {
	if opts.Seed == 0 {
		return nil
	}
	return []vm.Option{vm.WithSeed(opts.Seed)}
}
