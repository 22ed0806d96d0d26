package service

import (
	"context"
	"log"

	"delivery-backend/internal/model"
	"delivery-backend/internal/repository"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID                string `json:"id"`
	Type              string `json:"type"`
	Title             string `json:"title"`
	Content           string `json:"content"`
	RelatedEntityType string `json:"related_entity_type"`
	RelatedEntityID   string `json:"related_entity_id"`
	IsRead            bool   `json:"is_read"`
	CreatedAt         string `json:"created_at"`
}

// NotificationService creates and serves in-app notifications
type NotificationService interface {
	// Notify creates an in-app notification; failures are logged and
	// swallowed, a missed notification never fails the triggering operation.
	Notify(ctx context.Context, userID uuid.UUID, title, content, entityType, entityID string)
	ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]NotificationResponse, error)
	MarkRead(ctx context.Context, id string, userID uuid.UUID) error
}

type notificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) Notify(ctx context.Context, userID uuid.UUID, title, content, entityType, entityID string) {
	n := &model.Notification{
		UserID:            userID,
		Type:              model.NotificationInApp,
		Title:             title,
		Content:           content,
		RelatedEntityType: entityType,
		RelatedEntityID:   entityID,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		log.Printf("WARNING: failed to create notification for %s: %v", userID, err)
	}
}

func (s *notificationService) ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]NotificationResponse, error) {
	notifications, err := s.repo.ListByUser(ctx, userID, unreadOnly)
	if err != nil {
		return nil, err
	}

	res := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		res = append(res, NotificationResponse{
			ID:                n.ID.String(),
			Type:              n.Type,
			Title:             n.Title,
			Content:           n.Content,
			RelatedEntityType: n.RelatedEntityType,
			RelatedEntityID:   n.RelatedEntityID,
			IsRead:            n.IsRead,
			CreatedAt:         n.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return res, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id string, userID uuid.UUID) error {
	return s.repo.MarkRead(ctx, id, userID)
}
