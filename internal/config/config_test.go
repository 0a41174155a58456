package config

import (
	"testing"

	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/chip8vm/internal/runner"
	"github.com/retroenv/chip8vm/internal/vm"
	"github.com/retroenv/retrogolib/assert"
)

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false))
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}

func TestRunnerConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := RunnerConfig(options.Emulation{})
		assert.Equal(t, runner.DefaultConfig(), cfg)
	})

	t.Run("overrides", func(t *testing.T) {
		cfg := RunnerConfig(options.Emulation{
			InstructionRate: 1000,
			TimerRate:       50,
			MaxCycles:       123,
			FixedTiming:     true,
		})
		assert.Equal(t, uint(1000), cfg.InstructionRate)
		assert.Equal(t, uint(50), cfg.TimerRate)
		assert.Equal(t, uint64(123), cfg.MaxCycles)
		assert.True(t, cfg.FixedTiming)
	})
}

func TestMachineOptions(t *testing.T) {
	assert.Equal(t, 0, len(MachineOptions(options.Emulation{})))

	opts := MachineOptions(options.Emulation{Seed: 7})
	assert.Equal(t, 1, len(opts))

	a := vm.New(opts...)
	b := vm.New(vm.WithSeed(7))
	insA, _ := vm.Decode(0xC0FF)
	assert.NoError(t, a.Execute(insA))
	assert.NoError(t, b.Execute(insA))
	assert.Equal(t, a.V[0], b.V[0])
}
