package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asavelyev/campus-canteen/internal/types/order"
)

type scriptedFetcher struct {
	steps []func() (*order.Order, error)
	calls int
}

func (f *scriptedFetcher) GetOrder(ctx context.Context, id int64) (*order.Order, error) {
	step := f.steps[f.calls]
	if f.calls < len(f.steps)-1 {
		f.calls++
	}
	return step()
}

func ok(status order.Status) func() (*order.Order, error) {
	return func() (*order.Order, error) {
		return &order.Order{ID: 1, Status: status}, nil
	}
}

func fail() func() (*order.Order, error) {
	return func() (*order.Order, error) {
		return nil, errors.New("poll failed")
	}
}

type transition struct {
	from, to order.Status
}

func TestWatchLoopReportsTransitions(t *testing.T) {
	fetcher := &scriptedFetcher{steps: []func() (*order.Order, error){
		ok(order.StatusReceived),
		ok(order.StatusReceived),
		fail(),
		ok(order.StatusPreparing),
		ok(order.StatusReady),
		ok(order.StatusCollected),
	}}

	var got []transition
	done := make(chan struct{})
	go func() {
		WatchLoop(context.Background(), fetcher, 1, time.Millisecond, func(from, to order.Status) {
			got = append(got, transition{from, to})
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not terminate on terminal status")
	}

	require.Equal(t, []transition{
		{order.StatusReceived, order.StatusPreparing},
		{order.StatusPreparing, order.StatusReady},
		{order.StatusReady, order.StatusCollected},
	}, got)
}

func TestWatchLoopStopsImmediatelyOnTerminal(t *testing.T) {
	fetcher := &scriptedFetcher{steps: []func() (*order.Order, error){
		ok(order.StatusCancelled),
	}}

	var got []transition
	WatchLoop(context.Background(), fetcher, 1, time.Hour, func(from, to order.Status) {
		got = append(got, transition{from, to})
	})

	assert.Empty(t, got, "first observation is not a transition")
	assert.Equal(t, 0, fetcher.calls)
}

func TestWatchLoopRespectsContext(t *testing.T) {
	fetcher := &scriptedFetcher{steps: []func() (*order.Order, error){
		ok(order.StatusReceived),
	}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		WatchLoop(ctx, fetcher, 1, time.Hour, func(from, to order.Status) {})
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop on cancel")
	}
}
