//go:generate mockgen -source=interfaces.go -destination=interfaces_mock.go -package=actor
package actor

import (
	"context"

	"github.com/denizgursoy/cacik-bdd/pkg/async"
	"github.com/denizgursoy/cacik-bdd/pkg/recorder"
)

type (
	// HelperContainer resolves helpers by name.
	HelperContainer interface {
		Helper(name string) (any, error)
		Default() (string, any, error)
	}

	// Scheduler queues effects in call order.
	Scheduler interface {
		Add(name string, task recorder.Task) *async.Deferred
	}

	// Performer is a helper with a single entry point for every action.
	Performer interface {
		Perform(ctx context.Context, action string, args ...any) (any, error)
	}
)
