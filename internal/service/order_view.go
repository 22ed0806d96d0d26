package service

import (
	"encoding/json"
	"strings"
	"time"

	"delivery-backend/internal/model"
	"delivery-backend/internal/status"
)

// OrderItem is a sanitized line item in the client order representation
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderResponse is the client-facing order shape. Optional fields are
// pointers so they are omitted entirely when absent rather than sent as null.
type OrderResponse struct {
	ID              string      `json:"id"`
	CustomerName    string      `json:"customerName"`
	CustomerAddress string      `json:"customerAddress"`
	CustomerPhone   string      `json:"customerPhone"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"totalAmount"`
	Status          string      `json:"status"`
	CreatedAt       string      `json:"createdAt"`
	TrackingNumber  string      `json:"trackingNumber"`
	DeliveryLat     *float64    `json:"deliveryLat,omitempty"`
	DeliveryLng     *float64    `json:"deliveryLng,omitempty"`
	CourierID       *string     `json:"courierId,omitempty"`
	CourierName     *string     `json:"courierName,omitempty"`
	CourierLat      *float64    `json:"courierLat,omitempty"`
	CourierLng      *float64    `json:"courierLng,omitempty"`
	Weight          *float64    `json:"weight,omitempty"`
	Volume          *float64    `json:"volume,omitempty"`
}

// rawOrderItem mirrors the stored JSON shape; pointers keep nulls detectable
type rawOrderItem struct {
	Name     *string  `json:"name"`
	Quantity *float64 `json:"quantity"`
	Price    *float64 `json:"price"`
}

// placeholderItemName substitutes a missing item name ("Item" in the UI locale)
const placeholderItemName = "Товар"

// parseOrderItems decodes the stored item list, degrading to an empty list on
// any malformed input. Each item is sanitized independently: missing name,
// quantity and price fall back to the placeholder, 1 and 0.
func parseOrderItems(raw string) []OrderItem {
	if raw == "" {
		return []OrderItem{}
	}
	var items []rawOrderItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []OrderItem{}
	}

	result := make([]OrderItem, 0, len(items))
	for _, item := range items {
		out := OrderItem{Name: placeholderItemName, Quantity: 1, Price: 0}
		if item.Name != nil {
			out.Name = *item.Name
		}
		if item.Quantity != nil {
			out.Quantity = *item.Quantity
		}
		if item.Price != nil {
			out.Price = *item.Price
		}
		result = append(result, out)
	}
	return result
}

// ToClientOrder converts a persisted order with its nested associations into
// the client representation. The transform never fails: malformed nested data
// degrades to safe defaults so a (possibly incomplete) response is always
// available.
func ToClientOrder(o *model.Order) OrderResponse {
	items := parseOrderItems(o.Items)

	totalAmount := 0.0
	if o.Price != nil {
		totalAmount = o.Price.InexactFloat64()
	} else {
		for _, item := range items {
			totalAmount += item.Quantity * item.Price
		}
	}

	customerName := ""
	customerPhone := ""
	if o.Customer != nil {
		customerName = strings.TrimSpace(o.Customer.User.FirstName + " " + o.Customer.User.LastName)
		customerPhone = o.Customer.User.Phone
	}
	if customerName == "" {
		customerName = o.DeliveryContactName
	}
	if customerPhone == "" {
		customerPhone = o.DeliveryContactPhone
	}

	statusName := ""
	if o.Status != nil {
		statusName = o.Status.Name
	}

	resp := OrderResponse{
		ID:              o.ID.String(),
		CustomerName:    customerName,
		CustomerAddress: o.DeliveryAddress,
		CustomerPhone:   customerPhone,
		Items:           items,
		TotalAmount:     totalAmount,
		Status:          status.OrderDBToFront(statusName),
		CreatedAt:       o.CreatedAt.UTC().Format(time.RFC3339),
		TrackingNumber:  o.OrderNumber,
		DeliveryLat:     o.DeliveryLatitude,
		DeliveryLng:     o.DeliveryLongitude,
		Weight:          o.Weight,
		Volume:          o.Volume,
	}

	if o.Delivery != nil && o.Delivery.Courier != nil {
		courier := o.Delivery.Courier
		id := courier.ID.String()
		resp.CourierID = &id
		if courier.User != nil {
			name := strings.TrimSpace(courier.User.FirstName + " " + courier.User.LastName)
			if name != "" {
				resp.CourierName = &name
			}
		}
		resp.CourierLat = courier.CurrentLatitude
		resp.CourierLng = courier.CurrentLongitude
	}

	return resp
}
