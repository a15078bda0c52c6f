package order

import (
	"encoding/json"
	"time"
)

type Status string

const (
	StatusReceived  Status = "received"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusCollected Status = "collected"
	StatusCancelled Status = "cancelled"
)

// Statuses lists every recognized status value, in lifecycle order.
var Statuses = []Status{StatusReceived, StatusPreparing, StatusReady, StatusCollected, StatusCancelled}

var statusRank = map[Status]int{
	StatusReceived:  0,
	StatusPreparing: 1,
	StatusReady:     2,
	StatusCollected: 3,
}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusCollected || s == StatusCancelled
}

// CanTransition reports whether strict mode allows moving from one status to
// another: forward through the received→preparing→ready→collected sequence,
// or to cancelled from any non-terminal state.
func CanTransition(from, to Status) bool {
	if from.Terminal() {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	fr, ok := statusRank[from]
	if !ok {
		return false
	}
	tr, ok := statusRank[to]
	if !ok {
		return false
	}
	return tr > fr
}

// LineItem is a single dish entry within an order. Line items are owned by
// their order and never persisted on their own.
type LineItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image,omitempty"`
}

type Order struct {
	ID            int64      `db:"id" json:"id"`
	UserID        string     `db:"user_id" json:"userId"`
	OrderNumber   string     `db:"order_number" json:"orderNumber"`
	Items         []LineItem `db:"-" json:"items"`
	RawItems      string     `db:"items" json:"-"`
	Subtotal      float64    `db:"subtotal" json:"subtotal"`
	Tax           float64    `db:"tax" json:"tax"`
	Discount      float64    `db:"discount" json:"discount"`
	Total         float64    `db:"total" json:"total"`
	PaymentMethod string     `db:"payment_method" json:"paymentMethod"`
	PromoCode     *string    `db:"promo_code" json:"promoCode,omitempty"`
	Status        Status     `db:"status" json:"status"`
	CreatedAt     time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updatedAt"`
}

// EncodeItems serializes Items into RawItems for persistence.
func (o *Order) EncodeItems() error {
	b, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}
	o.RawItems = string(b)
	return nil
}

// DecodeItems restores Items from the persisted RawItems form. The two
// representations round-trip losslessly for the LineItem shape.
func (o *Order) DecodeItems() error {
	if o.RawItems == "" {
		o.Items = nil
		return nil
	}
	return json.Unmarshal([]byte(o.RawItems), &o.Items)
}
