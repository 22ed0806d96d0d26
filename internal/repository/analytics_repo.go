package repository

import (
	"context"
	"time"

	"delivery-backend/internal/model"

	"gorm.io/gorm"
)

// CourierLeader is an aggregate row for the courier leaderboard
type CourierLeader struct {
	CourierID      string `gorm:"column:courier_id"`
	FirstName      string `gorm:"column:first_name"`
	LastName       string `gorm:"column:last_name"`
	DeliveredCount int64  `gorm:"column:delivered_count"`
}

// AnalyticsRepository serves the aggregate queries behind the dashboard
type AnalyticsRepository interface {
	OrderCountsByStatus(ctx context.Context, since time.Time) (map[string]int64, error)
	OrderCountsByDay(ctx context.Context, since time.Time) (map[string]int64, error)
	RevenueByDay(ctx context.Context, since time.Time) (map[string]float64, error)
	TotalOrders(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (float64, error)
	TopCouriers(ctx context.Context, since time.Time, limit int) ([]CourierLeader, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) OrderCountsByStatus(ctx context.Context, since time.Time) (map[string]int64, error) {
	var rows []struct {
		Name  string
		Count int64
	}
	err := GetDB(ctx, r.db).Model(&model.Order{}).
		Select("statuses.name AS name, COUNT(orders.id) AS count").
		Joins("JOIN statuses ON statuses.id = orders.status_id").
		Where("orders.created_at >= ?", since).
		Group("statuses.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Name] = row.Count
	}
	return counts, nil
}

func (r *analyticsRepository) OrderCountsByDay(ctx context.Context, since time.Time) (map[string]int64, error) {
	var rows []struct {
		Day   string
		Count int64
	}
	err := GetDB(ctx, r.db).Model(&model.Order{}).
		Select("TO_CHAR(created_at, 'YYYY-MM-DD') AS day, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("day").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Day] = row.Count
	}
	return counts, nil
}

func (r *analyticsRepository) RevenueByDay(ctx context.Context, since time.Time) (map[string]float64, error) {
	var rows []struct {
		Day     string
		Revenue float64
	}
	err := GetDB(ctx, r.db).Model(&model.Order{}).
		Select("TO_CHAR(created_at, 'YYYY-MM-DD') AS day, COALESCE(SUM(price), 0) AS revenue").
		Where("created_at >= ?", since).
		Group("day").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	revenue := make(map[string]float64, len(rows))
	for _, row := range rows {
		revenue[row.Day] = row.Revenue
	}
	return revenue, nil
}

func (r *analyticsRepository) TotalOrders(ctx context.Context) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.Order{}).Count(&count).Error
	return count, err
}

func (r *analyticsRepository) TotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := GetDB(ctx, r.db).Model(&model.Order{}).
		Select("COALESCE(SUM(price), 0)").
		Scan(&total).Error
	return total, err
}

func (r *analyticsRepository) TopCouriers(ctx context.Context, since time.Time, limit int) ([]CourierLeader, error) {
	var leaders []CourierLeader
	err := GetDB(ctx, r.db).Model(&model.Delivery{}).
		Select("deliveries.courier_id AS courier_id, users.first_name AS first_name, users.last_name AS last_name, COUNT(deliveries.id) AS delivered_count").
		Joins("JOIN orders ON orders.id = deliveries.order_id").
		Joins("JOIN statuses ON statuses.id = orders.status_id").
		Joins("JOIN couriers ON couriers.id = deliveries.courier_id").
		Joins("JOIN users ON users.id = couriers.user_id").
		Where("statuses.name = ? AND deliveries.created_at >= ?", model.OrderStatusDelivered, since).
		Group("deliveries.courier_id, users.first_name, users.last_name").
		Order("delivered_count DESC").
		Limit(limit).
		Scan(&leaders).Error
	if err != nil {
		return nil, err
	}
	return leaders, nil
}
