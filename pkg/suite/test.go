package suite

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/denizgursoy/cacik-bdd/pkg/cacik"
	"github.com/denizgursoy/cacik-bdd/pkg/steps"
)

// Lines a test writes to the recorder when it finishes.
const (
	LineTestPassed = "fire test.passed"
	LineTestFailed = "fire test.failed"
	LineTestFinish = "finish test"
)

// Suite is a compiled feature.
type Suite struct {
	Title string
	Tests []*Test

	hooks     *cacik.HookExecutor
	reporters []cacik.Reporter
	logger    zerolog.Logger
}

// Run runs every test in order between the BeforeAll and AfterAll hooks,
// then hands the result to the reporters. A failing test does not stop the
// others.
func (s *Suite) Run(ctx context.Context) cacik.RunResult {
	started := time.Now()
	result := cacik.RunResult{
		Title:     s.Title,
		StartedAt: started,
		Scenarios: make([]cacik.ScenarioResult, 0, len(s.Tests)),
	}

	s.hooks.ExecuteBeforeAll()
	for _, test := range s.Tests {
		_ = test.Run(ctx)
		scenario, _ := test.Result()
		result.Scenarios = append(result.Scenarios, scenario)
	}
	s.hooks.ExecuteAfterAll()

	result.Duration = time.Since(started)
	for _, reporter := range s.reporters {
		if err := reporter.Report(result); err != nil {
			s.logger.Warn().Err(err).Msg("reporter failed")
		}
	}
	return result
}

// Step is a step bound to its definition at compile time.
type Step struct {
	Keyword    string
	Text       string
	Line       int64
	Background bool
	Match      *steps.Match
}

func (s *Step) metadata() cacik.Step {
	return cacik.Step{Keyword: s.Keyword, Text: s.Text, Line: s.Line}
}

// Test is a compiled scenario. Fn runs it and reports through done, for
// harnesses that expect a callback.
type Test struct {
	Title    string
	Scenario cacik.Scenario
	Steps    []*Step
	Pending  bool
	Fn       func(done func(error))

	recorder Recorder
	hooks    *cacik.HookExecutor
	logger   zerolog.Logger

	mu     sync.Mutex
	result *cacik.ScenarioResult
}

func newTest(title string, scenario cacik.Scenario, rec Recorder, hooks *cacik.HookExecutor, logger zerolog.Logger) *Test {
	t := &Test{
		Title:    title,
		Scenario: scenario,
		Steps:    make([]*Step, 0),
		recorder: rec,
		hooks:    hooks,
		logger:   logger.With().Str("test", title).Logger(),
	}
	t.Fn = func(done func(error)) {
		err := t.Run(context.Background())
		if done != nil {
			done(err)
		}
	}
	return t
}

// Run executes the steps in order, passing along the context each step
// returns. The first failure skips the remaining steps. Pending tests
// return nil without running anything.
func (t *Test) Run(ctx context.Context) error {
	started := time.Now()
	result := cacik.ScenarioResult{
		Scenario:  t.Scenario,
		StartedAt: started,
		Steps:     make([]cacik.StepResult, 0, len(t.Steps)),
	}

	if t.Pending {
		result.Pending = true
		t.logger.Debug().Msg("scenario outline is pending")
		t.setResult(result)
		return nil
	}

	t.checkpoint()
	t.hooks.ExecuteBeforeScenario(t.Scenario)

	var runErr error
	for _, step := range t.Steps {
		if runErr != nil {
			result.Steps = append(result.Steps, cacik.StepResult{
				Keyword: step.Keyword,
				Text:    step.Text,
				Status:  cacik.StepSkipped,
			})
			continue
		}

		var (
			stepResult cacik.StepResult
			err        error
		)
		ctx, stepResult, err = t.runStep(ctx, step)
		result.Steps = append(result.Steps, stepResult)

		if err != nil {
			runErr = fmt.Errorf("step %q failed: %w", step.Text, err)
		}
	}

	t.finish(runErr)
	t.hooks.ExecuteAfterScenario(t.Scenario, runErr)

	result.Passed = runErr == nil
	if runErr != nil {
		result.Error = runErr.Error()
	}
	result.Duration = time.Since(started)
	t.setResult(result)

	return runErr
}

func (t *Test) runStep(ctx context.Context, step *Step) (context.Context, cacik.StepResult, error) {
	metadata := step.metadata()
	t.hooks.ExecuteBeforeStep(metadata)

	started := time.Now()
	ctx, _, err := step.Match.InvokeContext(ctx)
	if drainErr := t.drain(ctx); err == nil {
		err = drainErr
	}

	result := cacik.StepResult{
		Keyword:   step.Keyword,
		Text:      step.Text,
		Status:    cacik.StepPassed,
		Duration:  time.Since(started),
		StartedAt: started,
		MatchLocs: step.Match.MatchLocs(),
	}
	if err != nil {
		result.Status = cacik.StepFailed
		if errors.Is(err, steps.ErrPending) {
			result.Status = cacik.StepPending
		}
		result.Error = err.Error()
	}

	t.logger.Debug().
		Str("step", step.Text).
		Stringer("status", result.Status).
		Dur("duration", result.Duration).
		Msg("step finished")

	t.hooks.ExecuteAfterStep(metadata, err)
	return ctx, result, err
}

// checkpoint keeps failures of earlier tests out of this test's drains.
func (t *Test) checkpoint() {
	if t.recorder == nil || !t.recorder.IsRunning() {
		return
	}
	t.recorder.Checkpoint()
}

// drain waits for the actions a step queued on the recorder.
func (t *Test) drain(ctx context.Context) error {
	if t.recorder == nil || !t.recorder.IsRunning() {
		return nil
	}
	_, err := t.recorder.Promise().Await(ctx)
	return err
}

func (t *Test) finish(err error) {
	if t.recorder == nil || !t.recorder.IsRunning() {
		return
	}
	if err != nil {
		t.recorder.Log(LineTestFailed)
	} else {
		t.recorder.Log(LineTestPassed)
	}
	t.recorder.Log(LineTestFinish)
}

func (t *Test) setResult(result cacik.ScenarioResult) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.result = &result
}

// Result returns the outcome of the last run, and false before the first.
func (t *Test) Result() (cacik.ScenarioResult, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.result == nil {
		return cacik.ScenarioResult{}, false
	}
	return *t.result, true
}
