// Package recorder keeps the ordered execution trace of a test run.
//
// Tasks added to a Recorder run one after another in the order they were
// added, whatever their individual durations, so the trace always shows
// every task's dispatch line followed by its own settlement lines.
package recorder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/denizgursoy/cacik-bdd/pkg/async"
)

// Trace lines written around every task.
const (
	LineStepPassed   = "step passed"
	LineReturnResult = "return result"
	LineStepFailed   = "step failed"
)

var (
	// ErrNotRecording is returned for tasks added while the recorder is stopped.
	ErrNotRecording = errors.New("recorder is not running")

	// ErrAborted rejects tasks queued behind a failed task of the same session.
	ErrAborted = errors.New("aborted after earlier failure")
)

// Task is an effect scheduled on the recorder.
type Task func(ctx context.Context) (any, error)

// Option configures a Recorder.
type Option func(*Recorder)

// WithLogger sets the logger trace lines are mirrored to at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Recorder) {
		r.logger = logger
	}
}

// Recorder serializes tasks and records what happened. Only one session is
// active at a time; Start begins a new one and discards the old trace.
type Recorder struct {
	mu      sync.Mutex
	running bool
	session string
	ctx     context.Context
	cancel  context.CancelFunc
	lines   []string
	tail    *async.Deferred
	scope   *scope
	logger  zerolog.Logger
}

// scope holds the first failure of the tasks added since the last Start or
// Checkpoint. Tasks and promises keep the scope they were created in.
type scope struct {
	session string
	failure error
}

// New creates a stopped Recorder.
func New(opts ...Option) *Recorder {
	r := &Recorder{
		tail:   async.Resolved(nil),
		scope:  &scope{},
		ctx:    context.Background(),
		cancel: func() {},
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start clears the trace and begins accepting tasks in a new session.
func (r *Recorder) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cancel()
	r.ctx, r.cancel = context.WithCancel(context.Background())
	r.session = uuid.NewString()
	r.running = true
	r.lines = nil
	r.scope = &scope{session: r.session}
	r.tail = async.Resolved(nil)

	r.logger.Debug().Str("session", r.session).Msg("recorder started")
}

// Stop stops accepting tasks. Lines already in the trace are kept; tasks
// still running when Stop is called no longer write to it.
func (r *Recorder) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		return
	}
	r.running = false
	r.cancel()

	r.logger.Debug().Str("session", r.session).Int("lines", len(r.lines)).Msg("recorder stopped")
}

// Checkpoint starts a new failure scope in the current session. Failures of
// tasks added before it no longer abort tasks added after it, nor reject
// promises taken after it. The trace is kept.
func (r *Recorder) Checkpoint() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.scope = &scope{session: r.session}
}

// IsRunning reports whether a session is active.
func (r *Recorder) IsRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.running
}

// Session returns the id of the current or last session.
func (r *Recorder) Session() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.session
}

// Add queues task behind every task added before it. name is written to
// the trace when the task starts; `step passed` and `return result` follow
// when it succeeds, `step failed: <err>` when it fails. The returned
// Deferred settles after those lines are written.
func (r *Recorder) Add(name string, task Task) *async.Deferred {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return async.Rejected(fmt.Errorf("%s: %w", name, ErrNotRecording))
	}
	session, ctx, previous, sc := r.session, r.ctx, r.tail, r.scope
	result, finished := async.New(), async.New()
	r.tail = finished
	r.mu.Unlock()

	go func() {
		defer finished.Resolve(nil)
		<-previous.Done()

		if err := r.failureOf(sc); err != nil {
			result.Reject(fmt.Errorf("%s: %w: %v", name, ErrAborted, err))
			return
		}

		r.appendLine(session, name)
		value, err := run(ctx, task)
		if err != nil {
			r.appendLine(session, LineStepFailed+": "+err.Error())
			r.markFailed(sc, err)
			result.Reject(err)
			return
		}

		r.appendLine(session, LineStepPassed)
		r.appendLine(session, LineReturnResult)
		result.Resolve(value)
	}()

	return result
}

// Log appends a line to the trace of the current session.
func (r *Recorder) Log(line string) {
	r.mu.Lock()
	session := r.session
	r.mu.Unlock()

	r.appendLine(session, line)
}

// Scheduled returns the trace joined with newlines.
func (r *Recorder) Scheduled() string {
	return strings.Join(r.Lines(), "\n")
}

// Lines returns a copy of the trace.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := make([]string, len(r.lines))
	copy(lines, r.lines)
	return lines
}

// Err returns the first task failure since the last Start or Checkpoint.
func (r *Recorder) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.scope.failure
}

// Promise returns a Deferred that settles once every task added so far
// has settled. It rejects with the first failure since the last Start or
// Checkpoint.
func (r *Recorder) Promise() *async.Deferred {
	r.mu.Lock()
	tail, sc := r.tail, r.scope
	r.mu.Unlock()

	return async.Go(func() (any, error) {
		<-tail.Done()
		return nil, r.failureOf(sc)
	})
}

func (r *Recorder) appendLine(session, line string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running || r.session != session {
		return
	}
	r.lines = append(r.lines, line)
	r.logger.Debug().Str("session", session).Msg(line)
}

func (r *Recorder) markFailed(sc *scope, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sc.session == r.session && sc.failure == nil {
		sc.failure = err
	}
}

func (r *Recorder) failureOf(sc *scope) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sc.session != r.session {
		return nil
	}
	return sc.failure
}

func run(ctx context.Context, task Task) (value any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	return task(ctx)
}
