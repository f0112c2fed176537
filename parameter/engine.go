package parameter

import "time"

// Simulation timing
const (
	// TickRate is the fixed simulation rate in ticks per second
	TickRate = 60

	// TickInterval is the wall-clock duration of one simulation tick
	TickInterval = time.Second / TickRate

	// SolverIterations is the default number of constraint relaxation passes per tick
	SolverIterations = 8
)
