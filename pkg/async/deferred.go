// Package async provides Deferred, a result that settles once in the future.
package async

import (
	"context"
	"fmt"
	"sync"
)

// Deferred is a value or error that becomes available later. It settles
// exactly once; later Resolve/Reject calls are ignored.
type Deferred struct {
	done  chan struct{}
	once  sync.Once
	value any
	err   error
}

// New returns an unsettled Deferred.
func New() *Deferred {
	return &Deferred{done: make(chan struct{})}
}

// Resolved returns a Deferred already settled with value.
func Resolved(value any) *Deferred {
	d := New()
	d.Resolve(value)
	return d
}

// Rejected returns a Deferred already settled with err.
func Rejected(err error) *Deferred {
	d := New()
	d.Reject(err)
	return d
}

// Go runs fn on a new goroutine and settles with its result. A panic in fn
// rejects the Deferred.
func Go(fn func() (any, error)) *Deferred {
	d := New()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				d.Reject(fmt.Errorf("panic: %v", r))
			}
		}()
		d.Settle(fn())
	}()
	return d
}

// Resolve settles the Deferred with value.
func (d *Deferred) Resolve(value any) {
	d.Settle(value, nil)
}

// Reject settles the Deferred with err.
func (d *Deferred) Reject(err error) {
	d.Settle(nil, err)
}

// Settle settles with value when err is nil, otherwise with err.
func (d *Deferred) Settle(value any, err error) {
	d.once.Do(func() {
		d.value, d.err = value, err
		close(d.done)
	})
}

// Done is closed once the Deferred has settled.
func (d *Deferred) Done() <-chan struct{} {
	return d.done
}

// Settled reports whether the Deferred has settled.
func (d *Deferred) Settled() bool {
	select {
	case <-d.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the Deferred settles.
func (d *Deferred) Wait() (any, error) {
	<-d.done
	return d.value, d.err
}

// Await blocks until the Deferred settles or ctx is done.
func (d *Deferred) Await(ctx context.Context) (any, error) {
	select {
	case <-d.done:
		return d.value, d.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Then returns a Deferred settled with fn applied to this one's value.
// Errors skip fn and pass through.
func (d *Deferred) Then(fn func(any) (any, error)) *Deferred {
	return Go(func() (any, error) {
		value, err := d.Wait()
		if err != nil {
			return nil, err
		}
		return fn(value)
	})
}
