package cacik

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"

	colorKeyword = "\033[38;2;207;142;109m" // #CF8E6D
	colorText    = "\033[38;2;188;190;196m" // #BCBEC4
	colorParam   = "\033[38;2;92;146;255m"  // #5C92FF
	colorSkipped = "\033[38;2;111;115;122m" // #6F737A
	colorYellow  = "\033[33m"
)

// Symbols for step status
const (
	symbolPass    = "✓"
	symbolFail    = "✗"
	symbolSkip    = "-"
	symbolPending = "?"
)

// Reporter receives the result of every suite run.
type Reporter interface {
	Report(result RunResult) error
}

// ConsoleReporter prints features, scenarios and steps with their status
// followed by a summary. Reports of concurrent runs do not interleave.
type ConsoleReporter struct {
	mu        sync.Mutex
	out       io.Writer
	useColors bool
}

// NewConsoleReporter creates a reporter writing to out.
func NewConsoleReporter(out io.Writer, useColors bool) *ConsoleReporter {
	return &ConsoleReporter{out: out, useColors: useColors}
}

// Report writes the run result.
func (r *ConsoleReporter) Report(result RunResult) error {
	var b strings.Builder

	b.WriteString("\n" + r.color(colorKeyword, "Feature:") + " " + r.color(colorText, result.Title) + "\n")

	rule := ""
	for _, scenario := range result.Scenarios {
		if name := scenario.Scenario.RuleName; name != "" && name != rule {
			rule = name
			b.WriteString("\n  " + r.color(colorKeyword, "Rule:") + " " + r.color(colorText, name) + "\n")
		}

		keyword := scenario.Scenario.Keyword
		if keyword == "" {
			keyword = "Scenario"
		}
		b.WriteString("\n  " + r.color(colorKeyword, keyword+":") + " " + r.color(colorText, scenario.Scenario.Name))
		if scenario.Pending {
			b.WriteString(" " + r.color(colorYellow, "(pending)"))
		}
		b.WriteString("\n")

		for _, step := range scenario.Steps {
			r.writeStep(&b, step)
		}
	}

	r.writeSummary(&b, result.Summary())

	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := io.WriteString(r.out, b.String())
	return err
}

func (r *ConsoleReporter) color(c, s string) string {
	if r.useColors {
		return c + s + colorReset
	}
	return s
}

func (r *ConsoleReporter) writeStep(b *strings.Builder, step StepResult) {
	var line, symbol string
	switch step.Status {
	case StepPassed:
		line = r.color(colorKeyword, step.Keyword) + r.colorizeStepText(step.Text, step.MatchLocs)
		symbol = r.color(colorGreen, symbolPass)
	case StepFailed:
		line = r.color(colorKeyword, step.Keyword) + r.colorizeStepText(step.Text, step.MatchLocs)
		symbol = r.color(colorRed, symbolFail)
	case StepPending:
		line = r.color(colorKeyword, step.Keyword) + r.color(colorText, step.Text)
		symbol = r.color(colorYellow, symbolPending)
	default:
		line = r.color(colorSkipped, step.Keyword+step.Text)
		symbol = r.color(colorYellow, symbolSkip)
	}
	fmt.Fprintf(b, "%-60s %s\n", "    "+line, symbol)

	if step.Status == StepFailed && step.Error != "" {
		for _, errLine := range strings.Split(step.Error, "\n") {
			b.WriteString(r.color(colorRed, "      "+errLine) + "\n")
		}
	}
}

// colorizeStepText highlights the parameter regions of text. matchLocs holds
// [start, end] byte offset pairs, one per parameter.
func (r *ConsoleReporter) colorizeStepText(text string, matchLocs []int) string {
	if !r.useColors || len(matchLocs) < 2 {
		return r.color(colorText, text)
	}

	var b strings.Builder
	prev := 0
	for i := 0; i+1 < len(matchLocs); i += 2 {
		start, end := matchLocs[i], matchLocs[i+1]
		if start < prev || end > len(text) || start >= end {
			continue
		}
		if start > prev {
			b.WriteString(colorText + text[prev:start] + colorReset)
		}
		b.WriteString(colorParam + text[start:end] + colorReset)
		prev = end
	}
	if prev < len(text) {
		b.WriteString(colorText + text[prev:] + colorReset)
	}
	return b.String()
}

func (r *ConsoleReporter) writeSummary(b *strings.Builder, summary Summary) {
	b.WriteString("\n")

	scenarioLine := fmt.Sprintf("%d scenario(s)", summary.ScenariosTotal)
	parts := r.counts(
		count{summary.ScenariosPassed, "passed", colorGreen},
		count{summary.ScenariosFailed, "failed", colorRed},
		count{summary.ScenariosPending, "pending", colorYellow},
	)
	if len(parts) > 0 {
		scenarioLine += " (" + strings.Join(parts, ", ") + ")"
	}
	b.WriteString(scenarioLine + "\n")

	stepLine := fmt.Sprintf("%d step(s)", summary.StepsTotal)
	parts = r.counts(
		count{summary.StepsPassed, "passed", colorGreen},
		count{summary.StepsFailed, "failed", colorRed},
		count{summary.StepsSkipped, "skipped", colorYellow},
		count{summary.StepsPending, "pending", colorYellow},
	)
	if len(parts) > 0 {
		stepLine += " (" + strings.Join(parts, ", ") + ")"
	}
	b.WriteString(stepLine + "\n")
}

type count struct {
	n     int
	label string
	color string
}

func (r *ConsoleReporter) counts(counts ...count) []string {
	parts := make([]string, 0, len(counts))
	for _, c := range counts {
		if c.n > 0 {
			parts = append(parts, r.color(c.color, fmt.Sprintf("%d %s", c.n, c.label)))
		}
	}
	return parts
}
