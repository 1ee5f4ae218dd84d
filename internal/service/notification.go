package service

import (
	"context"
	"database/sql"
	"errors"

	"alugo-backend/internal/domain"
	"alugo-backend/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) List(ctx context.Context, userID int64, limit, offset int32) ([]domain.Notification, int64, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.noteRepo.List(ctx, userID, limit, offset)
}

func (s *notificationService) MarkAsRead(ctx context.Context, id, userID int64) error {
	if err := s.noteRepo.MarkAsRead(ctx, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotificationNotFound
		}
		return err
	}
	return nil
}
