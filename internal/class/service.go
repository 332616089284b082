package class

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClassService struct {
	repo *ClassRepository
}

func NewClassService(repo *ClassRepository) *ClassService {
	return &ClassService{repo: repo}
}

func (s *ClassService) Create(ctx context.Context, req CreateRequest) (*Class, error) {
	year := req.AcademicYear
	if year == "" {
		year = "2025"
	}
	status := req.Status
	if status == "" {
		status = StatusActive
	}
	now := time.Now().UTC()
	cls := &Class{
		ID:               primitive.NewObjectID(),
		Name:             req.Name,
		Teacher:          req.Teacher,
		Subjects:         req.Subjects,
		NumberOfStudents: req.NumberOfStudents,
		AcademicYear:     year,
		Status:           status,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.repo.Create(ctx, cls); err != nil {
		return nil, err
	}
	return cls, nil
}

func (s *ClassService) ListAll(ctx context.Context) ([]Class, error) {
	return s.repo.FindAll(ctx, false)
}

// ListPublic returns only Active classes for the public site.
func (s *ClassService) ListPublic(ctx context.Context) ([]Class, error) {
	return s.repo.FindAll(ctx, true)
}

func (s *ClassService) Get(ctx context.Context, id primitive.ObjectID) (*Class, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ClassService) Update(ctx context.Context, id primitive.ObjectID, req UpdateRequest) (*Class, error) {
	cls, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		cls.Name = req.Name
	}
	if req.Teacher != "" {
		cls.Teacher = req.Teacher
	}
	if len(req.Subjects) > 0 {
		cls.Subjects = req.Subjects
	}
	if req.NumberOfStudents != nil {
		cls.NumberOfStudents = *req.NumberOfStudents
	}
	if req.AcademicYear != "" {
		cls.AcademicYear = req.AcademicYear
	}
	if req.Status != "" {
		cls.Status = req.Status
	}
	cls.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, cls); err != nil {
		return nil, err
	}
	return cls, nil
}

func (s *ClassService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}
