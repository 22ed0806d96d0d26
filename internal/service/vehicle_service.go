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

// --- DTOs ---

type CreateVehicleRequest struct {
	Type         string   `json:"type" binding:"required,oneof=car motorcycle van truck bicycle scooter"`
	Model        string   `json:"model"`
	LicensePlate string   `json:"licensePlate"`
	Capacity     *float64 `json:"capacity" binding:"omitempty,min=0"`
	Status       string   `json:"status" binding:"omitempty,oneof=available in_delivery maintenance offline busy"`
}

type UpdateVehicleRequest struct {
	Type         string   `json:"type" binding:"omitempty,oneof=car motorcycle van truck bicycle scooter"`
	Model        *string  `json:"model"`
	LicensePlate *string  `json:"licensePlate"`
	Capacity     *float64 `json:"capacity" binding:"omitempty,min=0"`
	Status       string   `json:"status" binding:"omitempty,oneof=available in_delivery maintenance offline busy"`
}

// VehicleResponse is the client-facing vehicle shape. Driver name and
// position come from the first assigned courier when present, falling back
// to the vehicle's own last known position.
type VehicleResponse struct {
	ID                 string   `json:"id"`
	Type               string   `json:"type"`
	Model              string   `json:"model"`
	LicensePlate       string   `json:"licensePlate"`
	Capacity           float64  `json:"capacity"`
	Status             string   `json:"status"`
	DriverName         *string  `json:"driverName,omitempty"`
	CurrentLat         *float64 `json:"currentLat,omitempty"`
	CurrentLng         *float64 `json:"currentLng,omitempty"`
	LastLocationUpdate *string  `json:"lastLocationUpdate,omitempty"`
}

// --- Interface ---

type VehicleService interface {
	List(ctx context.Context) ([]VehicleResponse, error)
	Create(ctx context.Context, req CreateVehicleRequest) (*VehicleResponse, error)
	Update(ctx context.Context, id string, req UpdateVehicleRequest) (*VehicleResponse, error)
	Delete(ctx context.Context, id string) error
	UpdateLocation(ctx context.Context, id string, lat, lng float64) (*VehicleResponse, error)
}

type vehicleService struct {
	repo repository.VehicleRepository
}

func NewVehicleService(repo repository.VehicleRepository) VehicleService {
	return &vehicleService{repo: repo}
}

// --- Implementation ---

func (s *vehicleService) List(ctx context.Context) ([]VehicleResponse, error) {
	vehicles, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vehicles: %w", err)
	}

	res := make([]VehicleResponse, 0, len(vehicles))
	for i := range vehicles {
		res = append(res, toVehicleResponse(&vehicles[i]))
	}
	return res, nil
}

func (s *vehicleService) Create(ctx context.Context, req CreateVehicleRequest) (*VehicleResponse, error) {
	vehicleStatus := model.VehicleStatusActive
	if req.Status != "" {
		vehicleStatus = status.VehicleStatusFrontToDB(req.Status)
	}

	vehicle := &model.Vehicle{
		Type:         status.VehicleTypeFrontToDB(req.Type),
		Model:        req.Model,
		LicensePlate: req.LicensePlate,
		MaxWeight:    req.Capacity,
		Status:       vehicleStatus,
	}
	if err := s.repo.Create(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	resp := toVehicleResponse(vehicle)
	return &resp, nil
}

func (s *vehicleService) Update(ctx context.Context, id string, req UpdateVehicleRequest) (*VehicleResponse, error) {
	vehicle, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("vehicle not found: %w", err)
	}

	if req.Type != "" {
		vehicle.Type = status.VehicleTypeFrontToDB(req.Type)
	}
	if req.Model != nil {
		vehicle.Model = *req.Model
	}
	if req.LicensePlate != nil {
		vehicle.LicensePlate = *req.LicensePlate
	}
	if req.Capacity != nil {
		vehicle.MaxWeight = req.Capacity
	}
	if req.Status != "" {
		vehicle.Status = status.VehicleStatusFrontToDB(req.Status)
	}

	if err := s.repo.Update(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}

	resp := toVehicleResponse(vehicle)
	return &resp, nil
}

func (s *vehicleService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("vehicle not found: %w", err)
	}
	return s.repo.Delete(ctx, id)
}

func (s *vehicleService) UpdateLocation(ctx context.Context, id string, lat, lng float64) (*VehicleResponse, error) {
	vehicle, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("vehicle not found: %w", err)
	}

	now := time.Now()
	vehicle.CurrentLatitude = &lat
	vehicle.CurrentLongitude = &lng
	vehicle.LastLocationUpdate = &now

	if err := s.repo.Update(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to update vehicle location: %w", err)
	}

	resp := toVehicleResponse(vehicle)
	return &resp, nil
}

// --- Helpers ---

func toVehicleResponse(v *model.Vehicle) VehicleResponse {
	capacity := 0.0
	if v.MaxWeight != nil {
		capacity = *v.MaxWeight
	}

	resp := VehicleResponse{
		ID:           v.ID.String(),
		Type:         status.VehicleTypeDBToFront(v.Type),
		Model:        v.Model,
		LicensePlate: v.LicensePlate,
		Capacity:     capacity,
		Status:       status.VehicleStatusDBToFront(v.Status),
		CurrentLat:   v.CurrentLatitude,
		CurrentLng:   v.CurrentLongitude,
	}

	lastUpdate := v.LastLocationUpdate
	if len(v.Couriers) > 0 {
		courier := v.Couriers[0]
		if courier.User != nil {
			name := strings.TrimSpace(courier.User.FirstName + " " + courier.User.LastName)
			if name != "" {
				resp.DriverName = &name
			}
		}
		// Courier position takes precedence over the vehicle's own
		if courier.CurrentLatitude != nil && courier.CurrentLongitude != nil {
			resp.CurrentLat = courier.CurrentLatitude
			resp.CurrentLng = courier.CurrentLongitude
		}
		if courier.LastLocationUpdate != nil {
			lastUpdate = courier.LastLocationUpdate
		}
	}
	if lastUpdate != nil {
		formatted := lastUpdate.UTC().Format(time.RFC3339)
		resp.LastLocationUpdate = &formatted
	}

	return resp
}
