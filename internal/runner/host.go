package runner

import (
	"fmt"

	"github.com/retroenv/chip8vm/internal/vm"
	"github.com/retroenv/retrogolib/log"
)

// Host is the collaborator that supplies input and consumes the output of
// the machine.
type Host interface {
	// Keys returns the current state of the keypad.
	Keys() vm.Keypad
	// Present is called with the frame whenever the pixels or the sound
	// flag changed.
	Present(frame vm.Frame) error
}

// Headless is a host without input devices that only logs frame changes.
type Headless struct {
	logger *log.Logger
	frames int
	beep   bool
}

// NewHeadless returns a host that reports presented frames to the logger.
func NewHeadless(logger *log.Logger) *Headless {
	return &Headless{
		logger: logger,
	}
}

// Keys returns a keypad with no keys pressed.
func (h *Headless) Keys() vm.Keypad {
	return vm.Keypad{}
}

// Present logs the frame checksum and sound state transitions.
func (h *Headless) Present(frame vm.Frame) error {
	h.frames++
	h.logger.Debug("Frame",
		log.Int("number", h.frames),
		log.String("checksum", fmt.Sprintf("%016x", frame.Checksum())))

	if frame.SoundActive != h.beep {
		h.beep = frame.SoundActive
		if h.beep {
			h.logger.Debug("Beep on")
		} else {
			h.logger.Debug("Beep off")
		}
	}
	return nil
}
