package core

type Step struct {
	Round   int
	Arm     int
	Reward  float64
	Optimal int

	// True values, without noise
	ChosenValue  float64
	OptimalValue float64
}

// Regret of the step measured on true values
func (s *Step) Regret() float64 {
	return s.OptimalValue - s.ChosenValue
}

func (s *Step) IsOptimal() bool {
	return s.Arm == s.Optimal || s.ChosenValue == s.OptimalValue
}

type Trace struct {
	steps []*Step
}

func NewTrace() *Trace {
	return &Trace{
		steps: make([]*Step, 0),
	}
}

func (t *Trace) AddStep(s *Step) {
	t.steps = append(t.steps, s)
}

func (t *Trace) Step(i int) *Step {
	return t.steps[i]
}

func (t *Trace) Len() int {
	return len(t.steps)
}

func (t *Trace) Last() *Step {
	return t.steps[len(t.steps)-1]
}
