package service

import (
	"testing"
	"time"

	"delivery-backend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderItems(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []OrderItem
	}{
		{"empty string", "", []OrderItem{}},
		{"invalid json", "invalid-json", []OrderItem{}},
		{"json object", `{"name":"x"}`, []OrderItem{}},
		{
			"well formed",
			`[{"name":"Box","quantity":2,"price":10.5}]`,
			[]OrderItem{{Name: "Box", Quantity: 2, Price: 10.5}},
		},
		{
			"null fields get defaults",
			`[{"name":null,"quantity":null,"price":null}]`,
			[]OrderItem{{Name: "Товар", Quantity: 1, Price: 0}},
		},
		{
			"missing fields get defaults",
			`[{}]`,
			[]OrderItem{{Name: "Товар", Quantity: 1, Price: 0}},
		},
		{
			"mixed list",
			`[{"name":"Box","quantity":3},{"price":5}]`,
			[]OrderItem{
				{Name: "Box", Quantity: 3, Price: 0},
				{Name: "Товар", Quantity: 1, Price: 5},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseOrderItems(tt.raw))
		})
	}
}

func baseOrder() *model.Order {
	return &model.Order{
		ID:                   uuid.New(),
		OrderNumber:          "TTN-1700000000000-abcd1234",
		DeliveryAddress:      "Khreshchatyk St, 1",
		DeliveryContactName:  "Fallback Name",
		DeliveryContactPhone: "+380501234567",
		Items:                `[{"name":"Box","quantity":2,"price":10}]`,
		CreatedAt:            time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestToClientOrderStoredPriceWins(t *testing.T) {
	order := baseOrder()
	price := decimal.NewFromFloat(99.5)
	order.Price = &price

	resp := ToClientOrder(order)

	assert.Equal(t, 99.5, resp.TotalAmount)
}

func TestToClientOrderRecomputesTotalFromItems(t *testing.T) {
	order := baseOrder()
	order.Price = nil
	order.Items = `[{"name":"A","quantity":2,"price":10},{"name":"B","quantity":3,"price":5}]`

	resp := ToClientOrder(order)

	assert.Equal(t, 35.0, resp.TotalAmount)
}

func TestToClientOrderMalformedItemsDegrade(t *testing.T) {
	order := baseOrder()
	order.Items = "invalid-json"
	order.Price = nil

	resp := ToClientOrder(order)

	assert.Equal(t, []OrderItem{}, resp.Items)
	assert.Equal(t, 0.0, resp.TotalAmount)
}

func TestToClientOrderCustomerNameFallsBackToContact(t *testing.T) {
	order := baseOrder()

	resp := ToClientOrder(order)

	assert.Equal(t, "Fallback Name", resp.CustomerName)
	assert.Equal(t, "+380501234567", resp.CustomerPhone)
}

func TestToClientOrderPrefersCustomerProfile(t *testing.T) {
	order := baseOrder()
	order.Customer = &model.Customer{
		User: model.User{FirstName: "Olena", LastName: "Shevchenko", Phone: "+380671112233"},
	}

	resp := ToClientOrder(order)

	assert.Equal(t, "Olena Shevchenko", resp.CustomerName)
	assert.Equal(t, "+380671112233", resp.CustomerPhone)
}

func TestToClientOrderBlankProfileNameFallsBack(t *testing.T) {
	order := baseOrder()
	order.Customer = &model.Customer{
		User: model.User{FirstName: "  ", LastName: "", Phone: ""},
	}

	resp := ToClientOrder(order)

	assert.Equal(t, "Fallback Name", resp.CustomerName)
	assert.Equal(t, "+380501234567", resp.CustomerPhone)
}

func TestToClientOrderStatusMapping(t *testing.T) {
	order := baseOrder()
	order.Status = &model.Status{Name: "in_transit"}

	resp := ToClientOrder(order)
	assert.Equal(t, "shipped", resp.Status)

	order.Status = nil
	resp = ToClientOrder(order)
	assert.Equal(t, "processing", resp.Status)
}

func TestToClientOrderWithoutCourier(t *testing.T) {
	resp := ToClientOrder(baseOrder())

	assert.Nil(t, resp.CourierID)
	assert.Nil(t, resp.CourierName)
	assert.Nil(t, resp.CourierLat)
	assert.Nil(t, resp.CourierLng)
}

func TestToClientOrderWithCourier(t *testing.T) {
	order := baseOrder()
	lat, lng := 50.45, 30.52
	courierID := uuid.New()
	order.Delivery = &model.Delivery{
		Courier: &model.Courier{
			ID:               courierID,
			User:             &model.User{FirstName: "Ivan", LastName: "Petrenko"},
			CurrentLatitude:  &lat,
			CurrentLongitude: &lng,
		},
	}

	resp := ToClientOrder(order)

	require.NotNil(t, resp.CourierID)
	assert.Equal(t, courierID.String(), *resp.CourierID)
	require.NotNil(t, resp.CourierName)
	assert.Equal(t, "Ivan Petrenko", *resp.CourierName)
	assert.Equal(t, &lat, resp.CourierLat)
	assert.Equal(t, &lng, resp.CourierLng)
}

func TestToClientOrderCourierWithoutNameStaysNil(t *testing.T) {
	order := baseOrder()
	order.Delivery = &model.Delivery{
		Courier: &model.Courier{ID: uuid.New(), User: &model.User{}},
	}

	resp := ToClientOrder(order)

	require.NotNil(t, resp.CourierID)
	assert.Nil(t, resp.CourierName)
}

func TestToClientOrderTimestampIsUTCRFC3339(t *testing.T) {
	order := baseOrder()
	order.CreatedAt = time.Date(2026, 8, 1, 14, 30, 0, 0, time.FixedZone("EEST", 3*3600))

	resp := ToClientOrder(order)

	assert.Equal(t, "2026-08-01T11:30:00Z", resp.CreatedAt)
}
