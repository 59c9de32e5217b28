package cacik

import "time"

// StepStatus represents the execution outcome of a step.
type StepStatus int

const (
	// StepPassed indicates the step executed successfully.
	StepPassed StepStatus = iota
	// StepFailed indicates the step failed (error, panic or rejected action).
	StepFailed
	// StepSkipped indicates the step did not run because an earlier one failed.
	StepSkipped
	// StepPending indicates the step body reported it is not implemented.
	StepPending
)

func (s StepStatus) String() string {
	switch s {
	case StepPassed:
		return "passed"
	case StepFailed:
		return "failed"
	case StepSkipped:
		return "skipped"
	case StepPending:
		return "pending"
	default:
		return "unknown"
	}
}

// StepResult holds the execution result of a single step.
type StepResult struct {
	Keyword string
	Text    string
	Status  StepStatus

	// Error is the error message of a failed or pending step.
	Error string

	// Duration and StartedAt are zero for skipped steps.
	Duration  time.Duration
	StartedAt time.Time

	// MatchLocs holds [start, end] byte offsets of each parameter in Text.
	MatchLocs []int
}

// ScenarioResult holds the execution result of a single test.
type ScenarioResult struct {
	Scenario Scenario

	// Passed is true when every step passed.
	Passed bool

	// Pending is true for scenario outlines, which are not executed.
	Pending bool

	// Error is the error message when the scenario failed.
	Error string

	Duration  time.Duration
	StartedAt time.Time

	// Steps include background steps, in execution order.
	Steps []StepResult
}

// Summary holds aggregate counters of a run.
type Summary struct {
	ScenariosTotal   int
	ScenariosPassed  int
	ScenariosFailed  int
	ScenariosPending int
	StepsTotal       int
	StepsPassed      int
	StepsFailed      int
	StepsSkipped     int
	StepsPending     int
}

// RunResult holds the results of running a suite.
type RunResult struct {
	Title     string
	Scenarios []ScenarioResult
	Duration  time.Duration
	StartedAt time.Time
}

// Summary counts scenarios and steps by outcome.
func (r RunResult) Summary() Summary {
	var s Summary
	for _, scenario := range r.Scenarios {
		s.ScenariosTotal++
		switch {
		case scenario.Pending:
			s.ScenariosPending++
		case scenario.Passed:
			s.ScenariosPassed++
		default:
			s.ScenariosFailed++
		}

		for _, step := range scenario.Steps {
			s.StepsTotal++
			switch step.Status {
			case StepPassed:
				s.StepsPassed++
			case StepFailed:
				s.StepsFailed++
			case StepSkipped:
				s.StepsSkipped++
			case StepPending:
				s.StepsPending++
			}
		}
	}
	return s
}

// Passed reports whether no scenario failed.
func (r RunResult) Passed() bool {
	return r.Summary().ScenariosFailed == 0
}
