package repository

import (
	"context"

	"delivery-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// orderPreloads is the association chain every read path needs: the customer's
// user for display names, the status row, and the delivery with its courier.
func orderPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Customer").
		Preload("Customer.User").
		Preload("Status").
		Preload("Delivery").
		Preload("Delivery.Courier").
		Preload("Delivery.Courier.User")
}

// OrderRepository defines data access for orders and their status references
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, id string) (*model.Order, error)
	FindByTTN(ctx context.Context, ttn string) (*model.Order, error)
	FindMany(ctx context.Context, offset, limit int) ([]model.Order, int64, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Order, error)
	FindUnassigned(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id string, statusID uuid.UUID) error
	// EnsureStatus returns the id of the named status row, creating it when
	// missing so status writes never fail on an unseeded database.
	EnsureStatus(ctx context.Context, name, statusType string) (uuid.UUID, error)
	UpsertDelivery(ctx context.Context, orderID, courierID, statusID uuid.UUID) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	return GetDB(ctx, r.db).Create(order).Error
}

func (r *orderRepository) FindByID(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	if err := orderPreloads(GetDB(ctx, r.db)).First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindByTTN(ctx context.Context, ttn string) (*model.Order, error) {
	var order model.Order
	if err := orderPreloads(GetDB(ctx, r.db)).First(&order, "order_number = ?", ttn).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindMany(ctx context.Context, offset, limit int) ([]model.Order, int64, error) {
	var orders []model.Order
	var total int64

	if err := GetDB(ctx, r.db).Model(&model.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := orderPreloads(GetDB(ctx, r.db)).Order("created_at DESC").Offset(offset).Limit(limit).Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *orderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Order, error) {
	var orders []model.Order
	if err := orderPreloads(GetDB(ctx, r.db)).Where("customer_id = ?", customerID).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) FindUnassigned(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := orderPreloads(GetDB(ctx, r.db)).
		Where("NOT EXISTS (SELECT 1 FROM deliveries WHERE deliveries.order_id = orders.id)").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, statusID uuid.UUID) error {
	return GetDB(ctx, r.db).Model(&model.Order{}).Where("id = ?", id).Update("status_id", statusID).Error
}

func (r *orderRepository) EnsureStatus(ctx context.Context, name, statusType string) (uuid.UUID, error) {
	db := GetDB(ctx, r.db)

	var status model.Status
	if err := db.First(&status, "name = ?", name).Error; err == nil {
		return status.ID, nil
	}

	status = model.Status{Name: name, Type: statusType}
	if err := db.Create(&status).Error; err != nil {
		return uuid.Nil, err
	}
	return status.ID, nil
}

func (r *orderRepository) UpsertDelivery(ctx context.Context, orderID, courierID, statusID uuid.UUID) error {
	db := GetDB(ctx, r.db)

	var delivery model.Delivery
	err := db.First(&delivery, "order_id = ?", orderID).Error
	if err != nil {
		delivery = model.Delivery{OrderID: orderID, CourierID: courierID, StatusID: statusID}
		return db.Create(&delivery).Error
	}

	delivery.CourierID = courierID
	delivery.StatusID = statusID
	return db.Save(&delivery).Error
}
