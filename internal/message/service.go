package message

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MessageService struct {
	repo *MessageRepository
}

func NewMessageService(repo *MessageRepository) *MessageService {
	return &MessageService{repo: repo}
}

func (s *MessageService) Submit(ctx context.Context, req SubmitRequest) (*Message, error) {
	now := time.Now().UTC()
	m := &Message{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		Read:      false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MessageService) List(ctx context.Context) ([]Message, error) {
	return s.repo.FindAll(ctx)
}

// ToggleRead flips the read flag and returns the updated message.
func (s *MessageService) ToggleRead(ctx context.Context, id primitive.ObjectID) (*Message, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	m.Read = !m.Read
	m.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MessageService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}
