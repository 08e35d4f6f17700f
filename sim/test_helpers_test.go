package sim

// baselineConfig returns the 5-agent, 10 calls/hour, 8-hour scenario.
func baselineConfig() Config {
	return NewConfig(5, 10, 480, 5)
}

// runStepwise drives a simulator event by event, calling check after each event.
func runStepwise(s *Simulator, check func(*Simulator)) {
	s.Start()
	check(s)
	for s.Step() {
		check(s)
	}
}
