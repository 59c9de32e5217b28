package cacik

import messages "github.com/cucumber/messages/go/v21"

// KeywordOutline is the keyword of a parameterized scenario in English
// feature files. Outlines are detected by their Examples, not by keyword.
const KeywordOutline = "Scenario Outline"

// Scenario holds metadata about a compiled scenario.
// Passed to BeforeScenario/AfterScenario hooks.
type Scenario struct {
	// FeatureName is the name of the parent feature.
	FeatureName string

	// RuleName is the name of the parent rule, empty outside rules.
	RuleName string

	// Name is the scenario name as written in the .feature file.
	Name string

	// Tags contains the scenario's tag names including the ones inherited
	// from the Feature and Rule (e.g. "@smoke").
	Tags []string

	// Description is the optional free text below the Scenario: line.
	Description string

	// Keyword is "Scenario", "Example", "Scenario Outline" or a translation.
	Keyword string

	// Outline is true for scenarios with Examples tables.
	Outline bool

	// Line is the source line where the scenario is defined.
	Line int64
}

// Step holds metadata about a step. Passed to BeforeStep/AfterStep hooks.
type Step struct {
	// Keyword is the Gherkin keyword including trailing whitespace
	// (e.g. "Given ", "And ").
	Keyword string

	// Text is the step text after the keyword.
	Text string

	// Line is the source line where the step is defined.
	Line int64
}

// ScenarioFromMessage converts a parsed Gherkin Scenario. inherited holds
// the feature and rule tags.
func ScenarioFromMessage(s *messages.Scenario, inherited []string) Scenario {
	tags := make([]string, 0, len(inherited)+len(s.Tags))
	tags = append(tags, inherited...)
	tags = append(tags, TagNames(s.Tags)...)

	var line int64
	if s.Location != nil {
		line = s.Location.Line
	}
	return Scenario{
		Name:        s.Name,
		Tags:        tags,
		Description: s.Description,
		Keyword:     s.Keyword,
		Outline:     len(s.Examples) > 0,
		Line:        line,
	}
}

// StepFromMessage converts a parsed Gherkin Step.
func StepFromMessage(s *messages.Step) Step {
	var line int64
	if s.Location != nil {
		line = s.Location.Line
	}
	return Step{
		Keyword: s.Keyword,
		Text:    s.Text,
		Line:    line,
	}
}

// TagNames returns the names of tags, "@" included.
func TagNames(tags []*messages.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names
}
