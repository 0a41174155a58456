package vm

// TickTimers decrements the delay and sound timers by up to elapsedTicks
// 60 Hz ticks, stopping at 0.
func (s *State) TickTimers(elapsedTicks uint32) {
	s.DelayTimer = decrement(s.DelayTimer, elapsedTicks)
	s.SoundTimer = decrement(s.SoundTimer, elapsedTicks)
}

func decrement(value uint8, ticks uint32) uint8 {
	if uint32(value) <= ticks {
		return 0
	}
	return value - uint8(ticks)
}
