package cacik

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunResult_Summary(t *testing.T) {
	result := RunResult{
		Scenarios: []ScenarioResult{
			{Passed: true, Steps: []StepResult{{Status: StepPassed}, {Status: StepPassed}}},
			{Steps: []StepResult{{Status: StepPassed}, {Status: StepFailed}, {Status: StepSkipped}}},
			{Steps: []StepResult{{Status: StepPending}}},
			{Pending: true},
		},
	}

	require.Equal(t, Summary{
		ScenariosTotal:   4,
		ScenariosPassed:  1,
		ScenariosFailed:  2,
		ScenariosPending: 1,
		StepsTotal:       6,
		StepsPassed:      3,
		StepsFailed:      1,
		StepsSkipped:     1,
		StepsPending:     1,
	}, result.Summary())
	require.False(t, result.Passed())

	require.True(t, RunResult{Scenarios: []ScenarioResult{{Passed: true}, {Pending: true}}}.Passed())
}

func TestStepStatus_String(t *testing.T) {
	require.Equal(t, "passed", StepPassed.String())
	require.Equal(t, "failed", StepFailed.String())
	require.Equal(t, "skipped", StepSkipped.String())
	require.Equal(t, "pending", StepPending.String())
	require.Equal(t, "unknown", StepStatus(42).String())
}
