//go:generate mockgen -source=interfaces.go -destination=interface_mock.go -package=generator
package generator

import (
	messages "github.com/cucumber/messages/go/v21"

	"github.com/denizgursoy/cacik-bdd/pkg/suite"
)

type (
	// StepFinder reports the steps of a document that have no definition.
	// *suite.Compiler implements it.
	StepFinder interface {
		Undefined(*messages.GherkinDocument) ([]suite.UndefinedStep, error)
	}
)
