package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"delivery-backend/internal/repository"
	"delivery-backend/internal/route"
	"delivery-backend/internal/websocket"
)

// --- DTOs ---

// UpdateLocationRequest carries a position fix. Coordinates are pointers so
// the equator and the prime meridian (legitimate zero values) pass the
// required check.
type UpdateLocationRequest struct {
	Lat *float64 `json:"lat" binding:"required,min=-90,max=90"`
	Lng *float64 `json:"lng" binding:"required,min=-180,max=180"`
}

type CourierResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Availability string   `json:"availability"`
	CurrentLat   *float64 `json:"currentLat,omitempty"`
	CurrentLng   *float64 `json:"currentLng,omitempty"`
}

// RouteStop pairs an order with its delivery coordinate in suggested visit order
type RouteStop struct {
	OrderID        string  `json:"orderId"`
	TrackingNumber string  `json:"trackingNumber"`
	Address        string  `json:"address"`
	Lat            float64 `json:"lat"`
	Lng            float64 `json:"lng"`
}

// --- Interface ---

type CourierService interface {
	List(ctx context.Context) ([]CourierResponse, error)
	// UpdateLocation records the courier's position, keyed by their user id
	UpdateLocation(ctx context.Context, userID string, req UpdateLocationRequest) (*time.Time, error)
	// MyOrders returns the normalized orders behind the courier's deliveries
	MyOrders(ctx context.Context, userID string) ([]OrderResponse, error)
	// SuggestRoute orders the courier's assigned stops with the
	// nearest-neighbor heuristic; stops without coordinates are skipped.
	SuggestRoute(ctx context.Context, userID string) ([]RouteStop, error)
}

type courierService struct {
	couriers repository.CourierRepository
	orders   repository.OrderRepository
	hub      *websocket.Hub
}

func NewCourierService(couriers repository.CourierRepository, orders repository.OrderRepository, hub *websocket.Hub) CourierService {
	return &courierService{couriers: couriers, orders: orders, hub: hub}
}

// --- Implementation ---

func (s *courierService) List(ctx context.Context) ([]CourierResponse, error) {
	couriers, err := s.couriers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch couriers: %w", err)
	}

	res := make([]CourierResponse, 0, len(couriers))
	for _, c := range couriers {
		name := ""
		if c.User != nil {
			name = strings.TrimSpace(c.User.FirstName + " " + c.User.LastName)
		}
		res = append(res, CourierResponse{
			ID:           c.ID.String(),
			Name:         name,
			Availability: c.Availability,
			CurrentLat:   c.CurrentLatitude,
			CurrentLng:   c.CurrentLongitude,
		})
	}
	return res, nil
}

func (s *courierService) UpdateLocation(ctx context.Context, userID string, req UpdateLocationRequest) (*time.Time, error) {
	courier, err := s.couriers.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("courier not found: %w", err)
	}

	updated, err := s.couriers.UpdateLocation(ctx, courier.ID, *req.Lat, *req.Lng)
	if err != nil {
		return nil, fmt.Errorf("failed to update location: %w", err)
	}

	s.hub.Publish(websocket.EventCourierLocation, map[string]interface{}{
		"courierId": courier.ID.String(),
		"lat":       *req.Lat,
		"lng":       *req.Lng,
	})

	return updated.LastLocationUpdate, nil
}

func (s *courierService) MyOrders(ctx context.Context, userID string) ([]OrderResponse, error) {
	courier, err := s.couriers.GetByUserID(ctx, userID)
	if err != nil {
		return []OrderResponse{}, nil
	}

	deliveries, err := s.couriers.ListDeliveries(ctx, courier.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch deliveries: %w", err)
	}

	res := make([]OrderResponse, 0, len(deliveries))
	for _, d := range deliveries {
		order, err := s.orders.FindByID(ctx, d.OrderID.String())
		if err != nil {
			continue
		}
		res = append(res, ToClientOrder(order))
	}
	return res, nil
}

func (s *courierService) SuggestRoute(ctx context.Context, userID string) ([]RouteStop, error) {
	orders, err := s.MyOrders(ctx, userID)
	if err != nil {
		return nil, err
	}

	stops := make([]RouteStop, 0, len(orders))
	points := make([]route.Point, 0, len(orders))
	for _, o := range orders {
		if o.DeliveryLat == nil || o.DeliveryLng == nil {
			continue
		}
		stops = append(stops, RouteStop{
			OrderID:        o.ID,
			TrackingNumber: o.TrackingNumber,
			Address:        o.CustomerAddress,
			Lat:            *o.DeliveryLat,
			Lng:            *o.DeliveryLng,
		})
		points = append(points, route.Point{Lat: *o.DeliveryLat, Lng: *o.DeliveryLng})
	}

	ordered := route.Sequence(points)

	// Re-associate stops with the sequenced points; duplicates resolve to the
	// first unused stop at that coordinate.
	used := make([]bool, len(stops))
	result := make([]RouteStop, 0, len(stops))
	for _, p := range ordered {
		for i, stop := range stops {
			if !used[i] && stop.Lat == p.Lat && stop.Lng == p.Lng {
				used[i] = true
				result = append(result, stop)
				break
			}
		}
	}
	return result, nil
}
