package service

import (
	"context"
	"encoding/json"
	"log"

	"delivery-backend/internal/model"
	"delivery-backend/internal/repository"

	"github.com/google/uuid"
)

type ActivityLogResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	UserName   string `json:"user_name"`
	Action     string `json:"action"`
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	Data       string `json:"data"`
	IPAddress  string `json:"ip_address"`
	CreatedAt  string `json:"created_at"`
}

// LogService records and lists activity log entries
type LogService interface {
	// Record writes an audit entry. Failures are logged and swallowed so an
	// audit hiccup never fails the business operation it annotates.
	Record(ctx context.Context, userID *uuid.UUID, action, entityType, entityID string, data interface{}, ip, userAgent string)
	List(ctx context.Context, limit int) ([]ActivityLogResponse, error)
}

type logService struct {
	repo repository.LogRepository
}

func NewLogService(repo repository.LogRepository) LogService {
	return &logService{repo: repo}
}

func (s *logService) Record(ctx context.Context, userID *uuid.UUID, action, entityType, entityID string, data interface{}, ip, userAgent string) {
	serialized := ""
	if data != nil {
		if raw, err := json.Marshal(data); err == nil {
			serialized = string(raw)
		}
	}

	entry := &model.ActivityLog{
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Data:       serialized,
		IPAddress:  ip,
		UserAgent:  userAgent,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		log.Printf("WARNING: failed to record activity log %s: %v", action, err)
	}
}

func (s *logService) List(ctx context.Context, limit int) ([]ActivityLogResponse, error) {
	logs, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	res := make([]ActivityLogResponse, 0, len(logs))
	for _, l := range logs {
		userID := ""
		userName := "System"
		if l.UserID != nil {
			userID = l.UserID.String()
		}
		if l.User != nil {
			userName = l.User.Email
		}

		res = append(res, ActivityLogResponse{
			ID:         l.ID.String(),
			UserID:     userID,
			UserName:   userName,
			Action:     l.Action,
			EntityType: l.EntityType,
			EntityID:   l.EntityID,
			Data:       l.Data,
			IPAddress:  l.IPAddress,
			CreatedAt:  l.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return res, nil
}
