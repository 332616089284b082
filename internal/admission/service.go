package admission

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AdmissionService struct {
	repo *AdmissionRepository
}

func NewAdmissionService(repo *AdmissionRepository) *AdmissionService {
	return &AdmissionService{repo: repo}
}

// Submit records a public admission inquiry; every new inquiry starts
// out Pending.
func (s *AdmissionService) Submit(ctx context.Context, req SubmitRequest) (*Admission, error) {
	now := time.Now().UTC()
	a := &Admission{
		ID:            primitive.NewObjectID(),
		Name:          req.Name,
		Grade:         req.Grade,
		ParentContact: req.ParentContact,
		Message:       req.Message,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AdmissionService) List(ctx context.Context) ([]Admission, error) {
	return s.repo.FindAll(ctx)
}

func (s *AdmissionService) UpdateStatus(ctx context.Context, id primitive.ObjectID, req UpdateRequest) (*Admission, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status != "" {
		a.Status = req.Status
	}
	a.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AdmissionService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}
