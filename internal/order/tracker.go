package order

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/asavelyev/campus-canteen/internal/types/order"
)

// OrderFetcher fetches one order's current state.
type OrderFetcher interface {
	GetOrder(ctx context.Context, id int64) (*order.Order, error)
}

// StatusClient fetches order state over the HTTP API with a bearer token.
type StatusClient struct {
	Client  *http.Client
	BaseURL string
	Token   string
}

func (c *StatusClient) GetOrder(ctx context.Context, id int64) (*order.Order, error) {
	url := fmt.Sprintf("%s/orders/%d", c.BaseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var o order.Order
	if err := json.NewDecoder(resp.Body).Decode(&o); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	return &o, nil
}

// WatchLoop polls one order on a fixed wall-clock interval and invokes
// onChange whenever consecutive polls disagree on the status. Failed polls
// are discarded silently — this is a best-effort background refresh, not a
// reliability mechanism. The loop returns when the order reaches a terminal
// status or the context is cancelled.
func WatchLoop(ctx context.Context, fetcher OrderFetcher, orderID int64, interval time.Duration, onChange func(from, to order.Status)) {
	var last order.Status

	poll := func() bool {
		o, err := fetcher.GetOrder(ctx, orderID)
		if err != nil {
			return false
		}
		if o.Status != last {
			if last != "" {
				onChange(last, o.Status)
			}
			last = o.Status
		}
		return o.Status.Terminal()
	}

	if poll() {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if poll() {
				return
			}
		}
	}
}
