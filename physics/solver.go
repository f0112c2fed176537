package physics

// Solver relaxes an ordered constraint list several times per tick
// Order is significant: callers register suspension before rigid links
type Solver struct {
	Iterations  int
	constraints []*Constraint
}

// NewSolver creates a solver running iterations passes per Solve, minimum one
func NewSolver(iterations int) *Solver {
	if iterations < 1 {
		iterations = 1
	}
	return &Solver{Iterations: iterations}
}

// Add appends constraints in evaluation order
func (s *Solver) Add(cs ...*Constraint) {
	s.constraints = append(s.constraints, cs...)
}

// Constraints returns the registered constraints in evaluation order
func (s *Solver) Constraints() []*Constraint {
	return s.constraints
}

// Solve runs the full ordered sequence Iterations times
func (s *Solver) Solve() {
	for range s.Iterations {
		for _, c := range s.constraints {
			Satisfy(c)
		}
	}
}
