package teacher

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TeacherService struct {
	repo *TeacherRepository
}

func NewTeacherService(repo *TeacherRepository) *TeacherService {
	return &TeacherService{repo: repo}
}

func (s *TeacherService) Create(ctx context.Context, req CreateRequest) (*Teacher, error) {
	classID, err := primitive.ObjectIDFromHex(req.ClassID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	t := &Teacher{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Subject:   req.Subject,
		Contact:   req.Contact,
		ClassID:   classID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TeacherService) List(ctx context.Context) ([]Teacher, error) {
	return s.repo.FindAll(ctx)
}

func (s *TeacherService) Get(ctx context.Context, id primitive.ObjectID) (*Teacher, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TeacherService) Update(ctx context.Context, id primitive.ObjectID, req UpdateRequest) (*Teacher, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		t.Name = req.Name
	}
	if req.Subject != "" {
		t.Subject = req.Subject
	}
	if req.Contact != "" {
		t.Contact = req.Contact
	}
	if req.ClassID != "" {
		classID, err := primitive.ObjectIDFromHex(req.ClassID)
		if err != nil {
			return nil, err
		}
		t.ClassID = classID
	}
	t.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TeacherService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}
