package config

// SpawnStep is one row of the garbage schedule: from the given year on,
// a new piece of garbage appears every Delay ticks.
type SpawnStep struct {
	From  int `yaml:"from"`
	Delay int `yaml:"delay"`
}

// SpawnSchedule maps the calendar year to the garbage spawn delay.
// It is a monotonic step function over the sorted steps.
type SpawnSchedule struct {
	steps []SpawnStep
}

// NewSpawnSchedule creates a schedule from steps sorted by year.
func NewSpawnSchedule(steps []SpawnStep) *SpawnSchedule {
	return &SpawnSchedule{steps: steps}
}

// Delay returns the spawn delay in ticks for a year.
// ok is false before the first step: no garbage is launched yet.
func (s *SpawnSchedule) Delay(year int) (ticks int, ok bool) {
	for i := len(s.steps) - 1; i >= 0; i-- {
		if year >= s.steps[i].From {
			return s.steps[i].Delay, true
		}
	}
	return 0, false
}

// Steps returns the schedule rows in year order.
func (s *SpawnSchedule) Steps() []SpawnStep {
	return s.steps
}
