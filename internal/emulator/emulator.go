// Package emulator wires loader, machine and runner into a complete run.
package emulator

import (
	"context"
	"fmt"

	"github.com/retroenv/chip8vm/internal/config"
	"github.com/retroenv/chip8vm/internal/loader"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/chip8vm/internal/runner"
	"github.com/retroenv/chip8vm/internal/vm"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// Run loads the ROM named in the options and executes it with the host
// until the context is cancelled or the cycle budget is exhausted.
func Run(ctx context.Context, logger *log.Logger, opts options.Program, host runner.Host) error {
	rom, err := loader.New(logger).Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading rom: %w", err)
	}

	machine := vm.New(config.MachineOptions(opts.Emulation)...)
	if err := machine.LoadROM(rom); err != nil {
		return fmt.Errorf("loading rom into memory: %w", err)
	}

	cfg := config.RunnerConfig(opts.Emulation)
	run, err := runner.New(logger, machine, host, cfg)
	if err != nil {
		return fmt.Errorf("creating runner: %w", err)
	}

	if !opts.Quiet {
		logger.Info("Running CHIP-8 ROM",
			log.String("file", opts.Input),
			log.Int("size", len(rom)),
			log.Int("instruction_rate", int(cfg.InstructionRate)),
			log.Int("timer_rate", int(cfg.TimerRate)),
		)
	}

	err = run.Run(ctx)
	logger.Debug("Emulation finished",
		log.Int("cycles", int(run.Cycles())),
		log.Int("frames", run.Frames()),
		log.Int("faults", len(run.Faults())))
	return err
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}
	logger.Info("chip8vm - CHIP-8 interpreter",
		log.String("version", buildinfo.Version(version, commit, date)))
}
