package steps

// Default is the registry used by the package-level functions.
var Default = NewRegistry()

// Given registers a step on Default. It panics when the pattern or body is
// invalid, so bad definitions fail at registration.
func Given(source any, body any) {
	must(Default.Given(source, body))
}

// When registers a step on Default. See Given.
func When(source any, body any) {
	must(Default.When(source, body))
}

// Then registers a step on Default. See Given.
func Then(source any, body any) {
	must(Default.Then(source, body))
}

// ClearSteps removes every definition from Default.
func ClearSteps() {
	Default.Clear()
}

// MatchStep resolves text against Default.
func MatchStep(text string) (*Match, error) {
	return Default.Match(text)
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
