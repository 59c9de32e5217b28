package actor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/denizgursoy/cacik-bdd/pkg/async"
	"github.com/denizgursoy/cacik-bdd/pkg/container"
	"github.com/denizgursoy/cacik-bdd/pkg/recorder"
)

// printer joins every action it receives, settling after a delay.
type printer struct {
	mu      sync.Mutex
	delay   time.Duration
	printed []string
}

func (p *printer) Perform(ctx context.Context, action string, args ...any) (any, error) {
	time.Sleep(p.delay)
	parts := []string{action}
	for _, arg := range args {
		parts = append(parts, fmt.Sprint(arg))
	}
	line := strings.Join(parts, " ")

	p.mu.Lock()
	defer p.mu.Unlock()
	p.printed = append(p.printed, line)
	return line, nil
}

// cart implements actions as methods.
type cart struct {
	total int
}

func (c *cart) Add(ctx context.Context, price int) int {
	c.total += price
	return c.total
}

func (c *cart) FinishCheckout() (int, error) {
	if c.total == 0 {
		return 0, errors.New("cart is empty")
	}
	return c.total, nil
}

func TestActor_Do(t *testing.T) {
	t.Run("records actions in call order", func(t *testing.T) {
		rec := recorder.New()
		rec.Start()
		defer rec.Stop()

		helpers := container.New()
		p := &printer{delay: 5 * time.Millisecond}
		helpers.Create(map[string]any{"simple": p})

		I := New(helpers, rec)
		I.Do("add", 600)
		I.Do("add", 1600)
		I.Do("add finish checkout")

		_, err := rec.Promise().Wait()
		require.NoError(t, err)
		require.Equal(t, []string{"add 600", "add 1600", "add finish checkout"}, p.printed)
		require.Equal(t, []string{
			`do: "add", 600`, "step passed", "return result",
			`do: "add", 1600`, "step passed", "return result",
			`do: "add finish checkout"`, "step passed", "return result",
		}, rec.Lines())
	})

	t.Run("deferred settles with the helper result after logging", func(t *testing.T) {
		rec := recorder.New()
		rec.Start()
		defer rec.Stop()

		helpers := container.New()
		helpers.Create(map[string]any{"simple": &printer{}})

		value, err := New(helpers, rec).Do("click", "Login").Wait()
		require.NoError(t, err)
		require.Equal(t, "click Login", value)
		require.Equal(t, []string{`do: "click", "Login"`, "step passed", "return result"}, rec.Lines())
	})

	t.Run("calls helper methods named after the action", func(t *testing.T) {
		rec := recorder.New()
		rec.Start()
		defer rec.Stop()

		helpers := container.New()
		c := &cart{}
		helpers.Create(map[string]any{"cart": c, "other": &printer{}})

		I := New(helpers, rec, WithHelper("cart"))
		I.Do("add", 600)
		I.Do("add", "1000")
		value, err := I.Do("finish checkout").Wait()
		require.NoError(t, err)
		require.Equal(t, 1600, value)
	})

	t.Run("rejects unknown actions", func(t *testing.T) {
		rec := recorder.New()
		rec.Start()
		defer rec.Stop()

		helpers := container.New()
		helpers.Create(map[string]any{"cart": &cart{}})

		_, err := New(helpers, rec).Do("fly away").Wait()
		require.ErrorIs(t, err, ErrUnknownAction)
		require.Equal(t, `do: "fly away"`, rec.Lines()[0])
		require.True(t, strings.HasPrefix(rec.Lines()[1], "step failed"))
	})

	t.Run("helper errors reject the deferred and abort later actions", func(t *testing.T) {
		rec := recorder.New()
		rec.Start()
		defer rec.Stop()

		helpers := container.New()
		helpers.Create(map[string]any{"cart": &cart{}})

		I := New(helpers, rec)
		first := I.Do("finish checkout")
		second := I.Do("add", 10)

		_, err := first.Wait()
		require.ErrorContains(t, err, "cart is empty")
		_, err = second.Wait()
		require.ErrorIs(t, err, recorder.ErrAborted)
	})

	t.Run("awaits deferred results of a performer", func(t *testing.T) {
		controller := gomock.NewController(t)
		performer := NewMockPerformer(controller)
		performer.EXPECT().Perform(gomock.Any(), "add", 1).
			DoAndReturn(func(ctx context.Context, action string, args ...any) (any, error) {
				return async.Go(func() (any, error) {
					time.Sleep(20 * time.Millisecond)
					return nil, errors.New("payment declined")
				}), nil
			})
		performer.EXPECT().Perform(gomock.Any(), "add", 2).
			DoAndReturn(func(ctx context.Context, action string, args ...any) (any, error) {
				return async.Go(func() (any, error) {
					time.Sleep(10 * time.Millisecond)
					return 2, nil
				}), nil
			})

		rec := recorder.New()
		rec.Start()
		defer rec.Stop()

		helpers := container.New()
		helpers.Create(map[string]any{"shop": performer})
		I := New(helpers, rec)

		value, err := I.Do("add", 2).Wait()
		require.NoError(t, err)
		require.Equal(t, 2, value)

		_, err = I.Do("add", 1).Wait()
		require.ErrorContains(t, err, "payment declined")

		_, err = rec.Promise().Wait()
		require.ErrorContains(t, err, "payment declined")
		require.Equal(t, []string{
			`do: "add", 2`, "step passed", "return result",
			`do: "add", 1`, "step failed: payment declined",
		}, rec.Lines())
	})

	t.Run("uses the performer through mocks", func(t *testing.T) {
		controller := gomock.NewController(t)
		helpers := NewMockHelperContainer(controller)
		scheduler := NewMockScheduler(controller)
		performer := NewMockPerformer(controller)

		helpers.EXPECT().Helper("web").Return(performer, nil).Times(1)
		performer.EXPECT().Perform(gomock.Any(), "fill field", "email", "a@b.c").Return(true, nil).Times(1)
		scheduler.EXPECT().
			Add(`do: "fill field", "email", "a@b.c"`, gomock.Any()).
			DoAndReturn(func(name string, task recorder.Task) *async.Deferred {
				return async.Go(func() (any, error) { return task(context.Background()) })
			}).
			Times(1)

		value, err := New(helpers, scheduler, WithHelper("web")).Do("fill field", "email", "a@b.c").Wait()
		require.NoError(t, err)
		require.Equal(t, true, value)
	})

	t.Run("fails when the helper cannot be resolved", func(t *testing.T) {
		controller := gomock.NewController(t)
		helpers := NewMockHelperContainer(controller)
		scheduler := NewMockScheduler(controller)

		helpers.EXPECT().Default().Return("", nil, container.ErrHelperNotFound).Times(1)
		scheduler.EXPECT().
			Add(`do: "add"`, gomock.Any()).
			DoAndReturn(func(name string, task recorder.Task) *async.Deferred {
				return async.Go(func() (any, error) { return task(context.Background()) })
			})

		_, err := New(helpers, scheduler).Do("add").Wait()
		require.ErrorIs(t, err, container.ErrHelperNotFound)
	})
}

func TestMethodName(t *testing.T) {
	require.Equal(t, "Add", MethodName("add"))
	require.Equal(t, "SeeElement", MethodName("see element"))
	require.Equal(t, "FillField", MethodName("fill_field"))
	require.Equal(t, "", MethodName("  "))
}

func TestFormatArgs(t *testing.T) {
	require.Equal(t, `"add", 600`, FormatArgs("add", 600))
	require.Equal(t, `"a<b>", 1.5, true, null`, FormatArgs("a<b>", 1.5, true, nil))
	require.Equal(t, `{"k":"v"}`, FormatArgs(map[string]string{"k": "v"}))
}
