package vm

// Step executes a single instruction. While the machine waits for a key
// press, Step only checks the key snapshot for a newly pressed key.
//
// A returned error is always a *StepError and never leaves the machine in
// an inconsistent state, execution can continue with the next Step.
func (s *State) Step() error {
	defer func() {
		s.previousKeys = s.Keys
	}()

	if s.waitingForKey {
		s.resolveKeyWait()
		return nil
	}

	address := s.PC
	opcode := s.fetch()

	ins, err := Decode(opcode)
	if err == nil {
		if s.tracer != nil {
			s.tracer(address, ins)
		}
		err = s.Execute(ins)
	} else {
		s.PC = wrapAddress(s.PC + opcodeSize)
	}
	if err != nil {
		return &StepError{
			Address:     address,
			Opcode:      opcode,
			Instruction: ins,
			Err:         err,
		}
	}
	return nil
}

// Tracer is called with every decoded instruction before it is executed.
type Tracer func(address uint16, ins Instruction)

// SetTracer sets the function that observes executed instructions, nil
// disables tracing.
func (s *State) SetTracer(tracer Tracer) {
	s.tracer = tracer
}

// resolveKeyWait finishes a pending wait for key instruction if a key
// changed to pressed since the previous step.
func (s *State) resolveKeyWait() {
	for key := range uint8(KeyCount) {
		if !s.Keys[key] || s.previousKeys[key] {
			continue
		}

		s.V[s.waitRegister] = key
		s.waitingForKey = false
		s.PC = wrapAddress(s.PC + opcodeSize)
		return
	}
}
