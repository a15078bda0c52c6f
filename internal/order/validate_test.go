package order

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// payloadFromJSON decodes through encoding/json so the dynamic fields carry
// the same types a real request body would.
func payloadFromJSON(t *testing.T, body string) *CreatePayload {
	t.Helper()
	var p CreatePayload
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	return &p
}

const validBody = `{
	"items": [{"id":"b1","name":"Masala Dosa","price":60,"quantity":2,"image":"dosa.jpg"}],
	"subtotal": 120, "tax": 6, "discount": 0, "total": 126,
	"paymentMethod": "upi", "promoCode": "WELCOME10"
}`

func TestValidateCreateCodes(t *testing.T) {
	tests := []struct {
		name string
		body string
		code string
	}{
		{"items absent", `{"subtotal":10,"tax":1,"discount":0,"total":11,"paymentMethod":"cash"}`, "INVALID_ITEMS"},
		{"items not array", `{"items":"nope","subtotal":10,"tax":1,"discount":0,"total":11,"paymentMethod":"cash"}`, "INVALID_ITEMS"},
		{"items empty", `{"items":[],"subtotal":10,"tax":1,"discount":0,"total":11,"paymentMethod":"cash"}`, "EMPTY_ITEMS"},
		{"subtotal string", `{"items":[{"id":"a","name":"A","price":1,"quantity":1}],"subtotal":"10","tax":1,"discount":0,"total":11,"paymentMethod":"cash"}`, "INVALID_SUBTOTAL"},
		{"tax absent", `{"items":[{"id":"a","name":"A","price":1,"quantity":1}],"subtotal":10,"discount":0,"total":11,"paymentMethod":"cash"}`, "INVALID_TAX"},
		{"discount bool", `{"items":[{"id":"a","name":"A","price":1,"quantity":1}],"subtotal":10,"tax":1,"discount":true,"total":11,"paymentMethod":"cash"}`, "INVALID_DISCOUNT"},
		{"total string", `{"items":[{"id":"a","name":"A","price":1,"quantity":1}],"subtotal":10,"tax":1,"discount":0,"total":"11","paymentMethod":"cash"}`, "INVALID_TOTAL"},
		{"payment method absent", `{"items":[{"id":"a","name":"A","price":1,"quantity":1}],"subtotal":10,"tax":1,"discount":0,"total":11}`, "MISSING_PAYMENT_METHOD"},
		{"payment method empty", `{"items":[{"id":"a","name":"A","price":1,"quantity":1}],"subtotal":10,"tax":1,"discount":0,"total":11,"paymentMethod":""}`, "MISSING_PAYMENT_METHOD"},
		{"payment method number", `{"items":[{"id":"a","name":"A","price":1,"quantity":1}],"subtotal":10,"tax":1,"discount":0,"total":11,"paymentMethod":5}`, "MISSING_PAYMENT_METHOD"},
		{"item missing name", `{"items":[{"id":"a","price":1,"quantity":1}],"subtotal":10,"tax":1,"discount":0,"total":11,"paymentMethod":"cash"}`, "INVALID_ITEM_STRUCTURE"},
		{"item price string", `{"items":[{"id":"a","name":"A","price":"1","quantity":1}],"subtotal":10,"tax":1,"discount":0,"total":11,"paymentMethod":"cash"}`, "INVALID_ITEM_STRUCTURE"},
		{"item quantity absent", `{"items":[{"id":"a","name":"A","price":1}],"subtotal":10,"tax":1,"discount":0,"total":11,"paymentMethod":"cash"}`, "INVALID_ITEM_STRUCTURE"},
		{"item quantity fractional", `{"items":[{"id":"a","name":"A","price":1,"quantity":2.5}],"subtotal":10,"tax":1,"discount":0,"total":11,"paymentMethod":"cash"}`, "INVALID_ITEM_STRUCTURE"},
		{"item not object", `{"items":[42],"subtotal":10,"tax":1,"discount":0,"total":11,"paymentMethod":"cash"}`, "INVALID_ITEM_STRUCTURE"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			no, verr := ValidateCreate(payloadFromJSON(t, tc.body))
			require.NotNil(t, verr)
			assert.Nil(t, no)
			assert.Equal(t, tc.code, verr.Code)
		})
	}
}

func TestValidateCreatePriorityOrder(t *testing.T) {
	// Several rules broken at once: the items rule wins.
	body := `{"items":[],"subtotal":"x","tax":"x","discount":"x","total":"x"}`
	_, verr := ValidateCreate(payloadFromJSON(t, body))
	require.NotNil(t, verr)
	assert.Equal(t, "EMPTY_ITEMS", verr.Code)
}

func TestValidateCreateOK(t *testing.T) {
	no, verr := ValidateCreate(payloadFromJSON(t, validBody))
	require.Nil(t, verr)

	assert.Equal(t, 120.0, no.Subtotal)
	assert.Equal(t, 6.0, no.Tax)
	assert.Equal(t, 0.0, no.Discount)
	assert.Equal(t, 126.0, no.Total)
	assert.Equal(t, "upi", no.PaymentMethod)
	require.NotNil(t, no.PromoCode)
	assert.Equal(t, "WELCOME10", *no.PromoCode)

	require.Len(t, no.Items, 1)
	assert.Equal(t, "b1", no.Items[0].ID)
	assert.Equal(t, "Masala Dosa", no.Items[0].Name)
	assert.Equal(t, 60.0, no.Items[0].Price)
	assert.Equal(t, 2, no.Items[0].Quantity)
	assert.Equal(t, "dosa.jpg", no.Items[0].Image)
}

func TestValidateCreateNegativeValuesAccepted(t *testing.T) {
	// Only types are checked; bounds are not this validator's concern.
	body := `{"items":[{"id":"a","name":"A","price":-1,"quantity":-2}],"subtotal":-10,"tax":1,"discount":0,"total":11,"paymentMethod":"cash"}`
	no, verr := ValidateCreate(payloadFromJSON(t, body))
	require.Nil(t, verr)
	assert.Equal(t, -10.0, no.Subtotal)
	assert.Equal(t, -2, no.Items[0].Quantity)
}

func TestValidateStatusValue(t *testing.T) {
	_, verr := ValidateStatusValue(nil)
	require.NotNil(t, verr)
	assert.Equal(t, "MISSING_STATUS", verr.Code)

	_, verr = ValidateStatusValue("")
	require.NotNil(t, verr)
	assert.Equal(t, "MISSING_STATUS", verr.Code)

	_, verr = ValidateStatusValue(5.0)
	require.NotNil(t, verr)
	assert.Equal(t, "INVALID_STATUS", verr.Code)

	_, verr = ValidateStatusValue("shipped")
	require.NotNil(t, verr)
	assert.Equal(t, "INVALID_STATUS", verr.Code)
	assert.Contains(t, verr.Message, "received, preparing, ready, collected, cancelled")

	st, verr := ValidateStatusValue("preparing")
	require.Nil(t, verr)
	assert.Equal(t, "preparing", string(st))
}
