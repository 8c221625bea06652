package service

import (
	"context"
	"errors"
	"strings"

	"tardis-journal/internal/model"
	"tardis-journal/internal/repository"
	"tardis-journal/pkg/apierror"
)

type MessageService struct {
	messages *repository.MessageRepository
	users    *repository.UserRepository
}

func NewMessageService(messages *repository.MessageRepository, users *repository.UserRepository) *MessageService {
	return &MessageService{messages: messages, users: users}
}

// Send records a direct message after checking the recipient exists.
func (s *MessageService) Send(ctx context.Context, fromUserID int64, req model.MessageRequest) (int64, error) {
	if strings.TrimSpace(req.Message) == "" {
		return 0, apierror.Validation("message is required")
	}

	if _, err := s.users.FindByID(ctx, req.ToUserID); err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return 0, apierror.NotFound("Recipient not found")
		}
		return 0, err
	}

	return s.messages.Create(ctx, fromUserID, req.ToUserID, req.Message)
}

func (s *MessageService) Inbox(ctx context.Context, userID int64) ([]model.MessageEntry, error) {
	return s.messages.ListForUser(ctx, userID)
}
