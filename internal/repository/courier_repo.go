package repository

import (
	"context"
	"time"

	"delivery-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourierRepository defines data access for couriers and their deliveries
type CourierRepository interface {
	List(ctx context.Context) ([]model.Courier, error)
	GetByID(ctx context.Context, id string) (*model.Courier, error)
	GetByUserID(ctx context.Context, userID string) (*model.Courier, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, lat, lng float64) (*model.Courier, error)
	ListDeliveries(ctx context.Context, courierID uuid.UUID) ([]model.Delivery, error)
	CountActive(ctx context.Context) (int64, error)
}

type courierRepository struct {
	db *gorm.DB
}

func NewCourierRepository(db *gorm.DB) CourierRepository {
	return &courierRepository{db: db}
}

func (r *courierRepository) List(ctx context.Context) ([]model.Courier, error) {
	var couriers []model.Courier
	if err := GetDB(ctx, r.db).Preload("User").Order("created_at DESC").Find(&couriers).Error; err != nil {
		return nil, err
	}
	return couriers, nil
}

func (r *courierRepository) GetByID(ctx context.Context, id string) (*model.Courier, error) {
	var courier model.Courier
	if err := GetDB(ctx, r.db).Preload("User").First(&courier, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &courier, nil
}

func (r *courierRepository) GetByUserID(ctx context.Context, userID string) (*model.Courier, error) {
	var courier model.Courier
	if err := GetDB(ctx, r.db).Preload("User").First(&courier, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &courier, nil
}

func (r *courierRepository) UpdateLocation(ctx context.Context, id uuid.UUID, lat, lng float64) (*model.Courier, error) {
	now := time.Now()
	updates := map[string]interface{}{
		"current_latitude":     lat,
		"current_longitude":    lng,
		"last_location_update": now,
	}
	if err := GetDB(ctx, r.db).Model(&model.Courier{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id.String())
}

func (r *courierRepository) ListDeliveries(ctx context.Context, courierID uuid.UUID) ([]model.Delivery, error) {
	var deliveries []model.Delivery
	err := GetDB(ctx, r.db).
		Where("courier_id = ?", courierID).
		Preload("Status").
		Find(&deliveries).Error
	if err != nil {
		return nil, err
	}
	return deliveries, nil
}

func (r *courierRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.Courier{}).
		Where("availability IN ?", []string{model.CourierAvailable, model.CourierBusy}).
		Count(&count).Error
	return count, err
}
