package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"delivery-backend/internal/model"
	"delivery-backend/internal/repository"
	"delivery-backend/internal/status"
)

const (
	defaultAnalyticsDays = 14
	maxAnalyticsDays     = 90
	topCourierLimit      = 5
)

// --- DTOs ---

type DayCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type DayRevenue struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type TopCourier struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	DeliveredCount int64  `json:"deliveredCount"`
}

type AnalyticsStats struct {
	TotalRevenue        float64 `json:"totalRevenue"`
	TotalOrders         int64   `json:"totalOrders"`
	ActiveCouriersCount int64   `json:"activeCouriersCount"`
	ActiveVehiclesCount int64   `json:"activeVehiclesCount"`
	AverageOrderValue   float64 `json:"averageOrderValue"`
}

// AnalyticsResponse is the dashboard payload. Status keys use the
// client vocabulary, and the per-day series cover every day of the
// window with zeroes where nothing happened.
type AnalyticsResponse struct {
	OrdersByStatus   map[string]int64 `json:"ordersByStatus"`
	OrdersByDay      []DayCount       `json:"ordersByDay"`
	RevenueByDay     []DayRevenue     `json:"revenueByDay"`
	VehiclesByStatus map[string]int64 `json:"vehiclesByStatus"`
	Stats            AnalyticsStats   `json:"stats"`
	TopCouriers      []TopCourier     `json:"topCouriers"`
}

// --- Interface ---

type AnalyticsService interface {
	Dashboard(ctx context.Context, days int) (*AnalyticsResponse, error)
}

type analyticsService struct {
	analytics repository.AnalyticsRepository
	couriers  repository.CourierRepository
	vehicles  repository.VehicleRepository
}

func NewAnalyticsService(
	analytics repository.AnalyticsRepository,
	couriers repository.CourierRepository,
	vehicles repository.VehicleRepository,
) AnalyticsService {
	return &analyticsService{analytics: analytics, couriers: couriers, vehicles: vehicles}
}

// --- Implementation ---

func (s *analyticsService) Dashboard(ctx context.Context, days int) (*AnalyticsResponse, error) {
	if days <= 0 {
		days = defaultAnalyticsDays
	}
	if days > maxAnalyticsDays {
		days = maxAnalyticsDays
	}

	now := time.Now().UTC()
	since := now.AddDate(0, 0, -(days - 1)).Truncate(24 * time.Hour)

	statusCounts, err := s.analytics.OrderCountsByStatus(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate orders by status: %w", err)
	}
	ordersByStatus := make(map[string]int64, len(statusCounts))
	for name, count := range statusCounts {
		ordersByStatus[status.OrderDBToFront(name)] += count
	}

	dayCounts, err := s.analytics.OrderCountsByDay(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate orders by day: %w", err)
	}
	dayRevenue, err := s.analytics.RevenueByDay(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue by day: %w", err)
	}

	ordersByDay := make([]DayCount, 0, days)
	revenueByDay := make([]DayRevenue, 0, days)
	for i := 0; i < days; i++ {
		day := since.AddDate(0, 0, i).Format("2006-01-02")
		ordersByDay = append(ordersByDay, DayCount{Date: day, Count: dayCounts[day]})
		revenueByDay = append(revenueByDay, DayRevenue{Date: day, Revenue: dayRevenue[day]})
	}

	vehicleCounts, err := s.vehicles.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate vehicles by status: %w", err)
	}
	vehiclesByStatus := make(map[string]int64, len(vehicleCounts))
	for name, count := range vehicleCounts {
		vehiclesByStatus[status.VehicleStatusDBToFront(name)] += count
	}

	totalOrders, err := s.analytics.TotalOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}
	totalRevenue, err := s.analytics.TotalRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}
	activeCouriers, err := s.couriers.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active couriers: %w", err)
	}

	avg := 0.0
	if totalOrders > 0 {
		avg = totalRevenue / float64(totalOrders)
	}

	leaders, err := s.analytics.TopCouriers(ctx, since, topCourierLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank couriers: %w", err)
	}
	topCouriers := make([]TopCourier, 0, len(leaders))
	for _, l := range leaders {
		topCouriers = append(topCouriers, TopCourier{
			ID:             l.CourierID,
			Name:           strings.TrimSpace(l.FirstName + " " + l.LastName),
			DeliveredCount: l.DeliveredCount,
		})
	}

	activeVehicles := vehicleCounts[model.VehicleStatusActive] + vehicleCounts[model.VehicleStatusBusy]

	return &AnalyticsResponse{
		OrdersByStatus:   ordersByStatus,
		OrdersByDay:      ordersByDay,
		RevenueByDay:     revenueByDay,
		VehiclesByStatus: vehiclesByStatus,
		Stats: AnalyticsStats{
			TotalRevenue:        totalRevenue,
			TotalOrders:         totalOrders,
			ActiveCouriersCount: activeCouriers,
			ActiveVehiclesCount: activeVehicles,
			AverageOrderValue:   avg,
		},
		TopCouriers: topCouriers,
	}, nil
}
