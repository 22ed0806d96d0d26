package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"delivery-backend/internal/model"
	"delivery-backend/internal/repository"
	"delivery-backend/internal/status"
	"delivery-backend/internal/websocket"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- DTOs ---

type OrderItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
	Price    float64 `json:"price" binding:"min=0"`
}

type CreateOrderRequest struct {
	CustomerName    string             `json:"customerName" binding:"required,min=2"`
	CustomerAddress string             `json:"customerAddress" binding:"required,min=3"`
	CustomerPhone   string             `json:"customerPhone" binding:"required"`
	Items           []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	DeliveryLat     *float64           `json:"deliveryLat"`
	DeliveryLng     *float64           `json:"deliveryLng"`
	Weight          *float64           `json:"weight"`
	Volume          *float64           `json:"volume"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing shipped delivered cancelled"`
}

type AssignOrderRequest struct {
	OrderID   string `json:"orderId" binding:"required"`
	CourierID string `json:"courierId" binding:"required"`
}

// --- Interface ---

type OrderService interface {
	Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error)
	List(ctx context.Context, offset, limit int) ([]OrderResponse, int64, error)
	ListMine(ctx context.Context, userID string) ([]OrderResponse, error)
	ListUnassigned(ctx context.Context) ([]OrderResponse, error)
	TrackByTTN(ctx context.Context, ttn string) (*OrderResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdateOrderStatusRequest) (*OrderResponse, error)
	Assign(ctx context.Context, req AssignOrderRequest, actorID uuid.UUID) error
}

type orderService struct {
	orders        repository.OrderRepository
	customers     repository.CustomerRepository
	couriers      repository.CourierRepository
	txManager     repository.TransactionManager
	logs          LogService
	notifications NotificationService
	hub           *websocket.Hub
}

func NewOrderService(
	orders repository.OrderRepository,
	customers repository.CustomerRepository,
	couriers repository.CourierRepository,
	txManager repository.TransactionManager,
	logs LogService,
	notifications NotificationService,
	hub *websocket.Hub,
) OrderService {
	return &orderService{
		orders:        orders,
		customers:     customers,
		couriers:      couriers,
		txManager:     txManager,
		logs:          logs,
		notifications: notifications,
		hub:           hub,
	}
}

// --- Implementation ---

var phoneRegex = regexp.MustCompile(`^[+]?\d{10,15}$`)

func (s *orderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	if !phoneRegex.MatchString(req.CustomerPhone) {
		return nil, fmt.Errorf("invalid phone number")
	}

	customer, err := s.customers.FindOrCreateByPhone(ctx, req.CustomerName, req.CustomerPhone, req.CustomerAddress)
	if err != nil {
		return nil, err
	}

	statusID, err := s.orders.EnsureStatus(ctx, model.OrderStatusPending, model.StatusTypeOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve order status: %w", err)
	}

	price := decimal.Zero
	for _, item := range req.Items {
		price = price.Add(decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	items, err := serializeItems(req.Items)
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		OrderNumber:          newTrackingNumber(),
		CustomerID:           customer.ID,
		StatusID:             statusID,
		PickupAddress:        "Склад",
		DeliveryAddress:      req.CustomerAddress,
		DeliveryContactName:  req.CustomerName,
		DeliveryContactPhone: req.CustomerPhone,
		Items:                items,
		Price:                &price,
		PaymentStatus:        "pending",
		DeliveryLatitude:     req.DeliveryLat,
		DeliveryLongitude:    req.DeliveryLng,
		Weight:               req.Weight,
		Volume:               req.Volume,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.notifications.Notify(ctx, customer.UserID, "Замовлення створено",
		fmt.Sprintf("Ваше замовлення #%s успішно створено", order.OrderNumber), "order", order.ID.String())
	s.logs.Record(ctx, &customer.UserID, model.ActionOrderCreated, "order", order.ID.String(),
		map[string]interface{}{"items": req.Items, "price": price}, "", "")
	s.hub.Publish(websocket.EventOrderCreated, map[string]string{"id": order.ID.String(), "ttn": order.OrderNumber})

	created, err := s.orders.FindByID(ctx, order.ID.String())
	if err != nil {
		return nil, err
	}
	resp := ToClientOrder(created)
	return &resp, nil
}

func (s *orderService) List(ctx context.Context, offset, limit int) ([]OrderResponse, int64, error) {
	orders, total, err := s.orders.FindMany(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return toClientOrders(orders), total, nil
}

func (s *orderService) ListMine(ctx context.Context, userID string) ([]OrderResponse, error) {
	customer, err := s.customers.GetByUserID(ctx, userID)
	if err != nil {
		// Users without a customer profile simply have no orders yet
		return []OrderResponse{}, nil
	}

	orders, err := s.orders.FindByCustomer(ctx, customer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return toClientOrders(orders), nil
}

func (s *orderService) ListUnassigned(ctx context.Context) ([]OrderResponse, error) {
	orders, err := s.orders.FindUnassigned(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unassigned orders: %w", err)
	}
	return toClientOrders(orders), nil
}

func (s *orderService) TrackByTTN(ctx context.Context, ttn string) (*OrderResponse, error) {
	order, err := s.orders.FindByTTN(ctx, ttn)
	if err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}
	resp := ToClientOrder(order)
	return &resp, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, id string, req UpdateOrderStatusRequest) (*OrderResponse, error) {
	if _, err := s.orders.FindByID(ctx, id); err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}

	target := status.OrderFrontToDB(req.Status)
	statusID, err := s.orders.EnsureStatus(ctx, target, model.StatusTypeOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve order status: %w", err)
	}
	if err := s.orders.UpdateStatus(ctx, id, statusID); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	updated, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if updated.Customer != nil {
		s.notifications.Notify(ctx, updated.Customer.UserID, "Статус замовлення оновлено",
			fmt.Sprintf("Статус замовлення #%s змінено на %s", updated.OrderNumber, target), "order", updated.ID.String())
		s.logs.Record(ctx, &updated.Customer.UserID, model.ActionOrderStatusUpdated, "order", updated.ID.String(),
			map[string]string{"status": req.Status}, "", "")
	}
	s.hub.Publish(websocket.EventOrderStatusChanged, map[string]string{"id": updated.ID.String(), "status": target})

	resp := ToClientOrder(updated)
	return &resp, nil
}

func (s *orderService) Assign(ctx context.Context, req AssignOrderRequest, actorID uuid.UUID) error {
	courier, err := s.couriers.GetByID(ctx, req.CourierID)
	if err != nil {
		return fmt.Errorf("courier not found: %w", err)
	}
	order, err := s.orders.FindByID(ctx, req.OrderID)
	if err != nil {
		return fmt.Errorf("order not found: %w", err)
	}

	// Delivery upsert and order status change commit atomically
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		assignedID, err := s.orders.EnsureStatus(txCtx, model.OrderStatusAssigned, model.StatusTypeOrder)
		if err != nil {
			return err
		}
		confirmedID, err := s.orders.EnsureStatus(txCtx, model.OrderStatusConfirmed, model.StatusTypeOrder)
		if err != nil {
			return err
		}
		if err := s.orders.UpsertDelivery(txCtx, order.ID, courier.ID, assignedID); err != nil {
			return err
		}
		return s.orders.UpdateStatus(txCtx, order.ID.String(), confirmedID)
	})
	if err != nil {
		return fmt.Errorf("failed to assign order: %w", err)
	}

	s.notifications.Notify(ctx, courier.UserID, "Нове призначення",
		fmt.Sprintf("Вам призначено замовлення %s", order.OrderNumber), "order", order.ID.String())
	s.logs.Record(ctx, &actorID, model.ActionOrderAssigned, "order", order.ID.String(),
		map[string]string{"courierId": req.CourierID}, "", "")
	s.hub.Publish(websocket.EventOrderAssigned, map[string]string{"orderId": order.ID.String(), "courierId": courier.ID.String()})

	return nil
}

// --- Helpers ---

func toClientOrders(orders []model.Order) []OrderResponse {
	res := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		res = append(res, ToClientOrder(&orders[i]))
	}
	return res
}

func newTrackingNumber() string {
	return fmt.Sprintf("TTN-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

func serializeItems(items []OrderItemRequest) (string, error) {
	raw, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("failed to serialize items: %w", err)
	}
	return string(raw), nil
}
