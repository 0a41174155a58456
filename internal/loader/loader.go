// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/chip8vm/internal/vm"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// ErrUnsupportedSystem is returned for ROM files of another system.
var ErrUnsupportedSystem = errors.New("unsupported system")

// Loader handles loading ROM files from disk.
type Loader struct {
	logger *log.Logger
}

// New creates a new ROM loader.
func New(logger *log.Logger) *Loader {
	return &Loader{
		logger: logger,
	}
}

// Load reads a raw CHIP-8 program image. Images that do not fit into the
// program area of the memory are rejected with vm.ErrRomTooLarge, files
// of other known systems with ErrUnsupportedSystem.
func (l *Loader) Load(path string) ([]byte, error) {
	system := detectFromFile(path)
	if system == arch.NES {
		return nil, fmt.Errorf("loading file %s: %w: %s", path, ErrUnsupportedSystem, system)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	// read one byte more than fits to detect oversized images without
	// reading arbitrarily large files
	rom, err := io.ReadAll(io.LimitReader(file, vm.MaxROMSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	if len(rom) > vm.MaxROMSize {
		return nil, fmt.Errorf("loading file %s: %w: maximum size is %d bytes", path, vm.ErrRomTooLarge, vm.MaxROMSize)
	}

	if system != arch.CHIP8System {
		l.logger.Warn("File extension does not indicate a CHIP-8 ROM", log.String("file", path))
	}
	l.logger.Debug("Loaded ROM",
		log.String("file", path),
		log.Int("size", len(rom)),
		log.Stringer("system", arch.CHIP8System))
	return rom, nil
}

// detectFromFile determines the system type based on file extension.
func detectFromFile(filename string) arch.System {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".ch8", ".c8", ".rom", "":
		return arch.CHIP8System
	case ".nes":
		return arch.NES
	default:
		return ""
	}
}
