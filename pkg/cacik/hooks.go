package cacik

import "sort"

// Hooks holds lifecycle callbacks run around suites, scenarios and steps.
type Hooks struct {
	// Order determines execution order of Before hooks (lower = runs first).
	// After hooks run in the reverse order. Hooks with the same Order keep
	// their registration order.
	Order int

	// BeforeAll runs once before the tests of a suite.
	BeforeAll func()

	// AfterAll runs once after the tests of a suite.
	AfterAll func()

	// BeforeScenario runs before the first step of each test.
	BeforeScenario func(Scenario)

	// AfterScenario runs after each test.
	// The error is nil when the scenario passed, non-nil on failure.
	AfterScenario func(Scenario, error)

	// BeforeStep runs before each step.
	BeforeStep func(Step)

	// AfterStep runs after each executed step. Skipped steps get no hooks.
	AfterStep func(Step, error)
}

// SortHooks returns a copy of hooks sorted by Order (stable).
func SortHooks(hooks []*Hooks) []*Hooks {
	sorted := make([]*Hooks, len(hooks))
	copy(sorted, hooks)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})

	return sorted
}

// HookExecutor runs a set of hooks. A nil *HookExecutor runs nothing.
type HookExecutor struct {
	hooks []*Hooks
}

// NewHookExecutor creates a HookExecutor, ignoring nil hooks.
func NewHookExecutor(hooks ...*Hooks) *HookExecutor {
	valid := make([]*Hooks, 0, len(hooks))
	for _, h := range hooks {
		if h != nil {
			valid = append(valid, h)
		}
	}

	return &HookExecutor{
		hooks: SortHooks(valid),
	}
}

func (e *HookExecutor) forward(fn func(*Hooks)) {
	if e == nil {
		return
	}
	for _, h := range e.hooks {
		fn(h)
	}
}

func (e *HookExecutor) backward(fn func(*Hooks)) {
	if e == nil {
		return
	}
	for i := len(e.hooks) - 1; i >= 0; i-- {
		fn(e.hooks[i])
	}
}

func (e *HookExecutor) ExecuteBeforeAll() {
	e.forward(func(h *Hooks) {
		if h.BeforeAll != nil {
			h.BeforeAll()
		}
	})
}

func (e *HookExecutor) ExecuteAfterAll() {
	e.backward(func(h *Hooks) {
		if h.AfterAll != nil {
			h.AfterAll()
		}
	})
}

func (e *HookExecutor) ExecuteBeforeScenario(scenario Scenario) {
	e.forward(func(h *Hooks) {
		if h.BeforeScenario != nil {
			h.BeforeScenario(scenario)
		}
	})
}

func (e *HookExecutor) ExecuteAfterScenario(scenario Scenario, err error) {
	e.backward(func(h *Hooks) {
		if h.AfterScenario != nil {
			h.AfterScenario(scenario, err)
		}
	})
}

func (e *HookExecutor) ExecuteBeforeStep(step Step) {
	e.forward(func(h *Hooks) {
		if h.BeforeStep != nil {
			h.BeforeStep(step)
		}
	})
}

func (e *HookExecutor) ExecuteAfterStep(step Step, err error) {
	e.backward(func(h *Hooks) {
		if h.AfterStep != nil {
			h.AfterStep(step, err)
		}
	})
}
