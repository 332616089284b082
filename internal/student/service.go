package student

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type StudentService struct {
	repo *StudentRepository
}

func NewStudentService(repo *StudentRepository) *StudentService {
	return &StudentService{repo: repo}
}

func (s *StudentService) Create(ctx context.Context, req CreateRequest) (*Student, error) {
	classID, err := primitive.ObjectIDFromHex(req.ClassID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	st := &Student{
		ID:         primitive.NewObjectID(),
		Name:       req.Name,
		ClassID:    classID,
		RollNumber: req.RollNumber,
		ParentName: req.ParentName,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *StudentService) List(ctx context.Context) ([]Student, error) {
	return s.repo.FindAll(ctx)
}

func (s *StudentService) Get(ctx context.Context, id primitive.ObjectID) (*Student, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *StudentService) Update(ctx context.Context, id primitive.ObjectID, req UpdateRequest) (*Student, error) {
	st, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		st.Name = req.Name
	}
	if req.ClassID != "" {
		classID, err := primitive.ObjectIDFromHex(req.ClassID)
		if err != nil {
			return nil, err
		}
		st.ClassID = classID
	}
	if req.RollNumber != nil {
		st.RollNumber = *req.RollNumber
	}
	if req.ParentName != "" {
		st.ParentName = req.ParentName
	}
	st.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *StudentService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}
