package order

import (
	"fmt"
	"math"
	"strings"

	"github.com/asavelyev/campus-canteen/internal/types/order"
)

// ValidationError reports exactly one violated rule; checks run in a fixed
// priority order, so the first failure wins.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// CreatePayload is the raw order-creation body. Fields are decoded as
// dynamic JSON on purpose: a string "10" in a monetary field must be
// reported as a type violation, not coerced.
type CreatePayload struct {
	Items         any `json:"items"`
	Subtotal      any `json:"subtotal"`
	Tax           any `json:"tax"`
	Discount      any `json:"discount"`
	Total         any `json:"total"`
	PaymentMethod any `json:"paymentMethod"`
	PromoCode     any `json:"promoCode"`
}

// NewOrder is a validated, normalized creation request.
type NewOrder struct {
	Items         []order.LineItem
	Subtotal      float64
	Tax           float64
	Discount      float64
	Total         float64
	PaymentMethod string
	PromoCode     *string
}

func asNumber(v any) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}

func asNonEmptyString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok && s != ""
}

// ValidateCreate checks the payload rule by rule. Priority: items present
// and an array, items non-empty, each monetary field numeric (subtotal, tax,
// discount, total in that order), payment method a non-empty string, and
// finally the structure of every line item.
func ValidateCreate(p *CreatePayload) (*NewOrder, *ValidationError) {
	rawItems, ok := p.Items.([]any)
	if !ok {
		return nil, &ValidationError{Code: "INVALID_ITEMS", Message: "Items must be a valid array"}
	}
	if len(rawItems) == 0 {
		return nil, &ValidationError{Code: "EMPTY_ITEMS", Message: "Items array cannot be empty"}
	}

	subtotal, ok := asNumber(p.Subtotal)
	if !ok {
		return nil, &ValidationError{Code: "INVALID_SUBTOTAL", Message: "Subtotal must be a number"}
	}
	tax, ok := asNumber(p.Tax)
	if !ok {
		return nil, &ValidationError{Code: "INVALID_TAX", Message: "Tax must be a number"}
	}
	discount, ok := asNumber(p.Discount)
	if !ok {
		return nil, &ValidationError{Code: "INVALID_DISCOUNT", Message: "Discount must be a number"}
	}
	total, ok := asNumber(p.Total)
	if !ok {
		return nil, &ValidationError{Code: "INVALID_TOTAL", Message: "Total must be a number"}
	}

	paymentMethod, ok := asNonEmptyString(p.PaymentMethod)
	if !ok {
		return nil, &ValidationError{Code: "MISSING_PAYMENT_METHOD", Message: "Payment method is required"}
	}

	items := make([]order.LineItem, 0, len(rawItems))
	for _, raw := range rawItems {
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, invalidItemStructure()
		}
		id, okID := asNonEmptyString(m["id"])
		name, okName := asNonEmptyString(m["name"])
		price, okPrice := asNumber(m["price"])
		quantity, okQuantity := asNumber(m["quantity"])
		if !okID || !okName || !okPrice || !okQuantity {
			return nil, invalidItemStructure()
		}
		// Quantity is a count; a fractional value would be silently
		// truncated by the int conversion below.
		if quantity != math.Trunc(quantity) {
			return nil, invalidItemStructure()
		}
		item := order.LineItem{ID: id, Name: name, Price: price, Quantity: int(quantity)}
		if img, ok := m["image"].(string); ok {
			item.Image = img
		}
		items = append(items, item)
	}

	no := &NewOrder{
		Items:         items,
		Subtotal:      subtotal,
		Tax:           tax,
		Discount:      discount,
		Total:         total,
		PaymentMethod: paymentMethod,
	}
	if promo, ok := asNonEmptyString(p.PromoCode); ok {
		no.PromoCode = &promo
	}
	return no, nil
}

func invalidItemStructure() *ValidationError {
	return &ValidationError{
		Code:    "INVALID_ITEM_STRUCTURE",
		Message: "Each item must have id, name, price, and quantity",
	}
}

// ValidateStatusValue checks a status-update value: it must be present and
// one of the five recognized literals.
func ValidateStatusValue(v any) (order.Status, *ValidationError) {
	if v == nil || v == "" {
		return "", &ValidationError{Code: "MISSING_STATUS", Message: "Status is required"}
	}
	invalid := &ValidationError{
		Code:    "INVALID_STATUS",
		Message: fmt.Sprintf("Invalid status. Must be one of: %s", joinStatuses()),
	}
	s, ok := v.(string)
	if !ok {
		return "", invalid
	}
	st := order.Status(s)
	if !st.Valid() {
		return "", invalid
	}
	return st, nil
}

func joinStatuses() string {
	parts := make([]string, len(order.Statuses))
	for i, s := range order.Statuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
