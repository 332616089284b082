package notice

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const latestCount = 3

type NoticeService struct {
	repo Repository
}

func NewNoticeService(repo Repository) *NoticeService {
	return &NoticeService{repo: repo}
}

func (s *NoticeService) Create(ctx context.Context, req CreateRequest, createdBy primitive.ObjectID) (*Notice, error) {
	description := req.Description
	if description == "" {
		description = defaultDescription
	}
	now := time.Now().UTC()
	n := &Notice{
		ID:          primitive.NewObjectID(),
		Title:       req.Title,
		Date:        req.Date,
		Category:    req.Category,
		Description: description,
		CreatedBy:   createdBy,
		ReadBy:      []ReadReceipt{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// List serves notices newest-first with the caller's derived read
// state. The latest-3 view and the all-but-latest-3 view are two
// projections over the same sorted sequence.
func (s *NoticeService) List(ctx context.Context, userID primitive.ObjectID, latest, excludeLatest bool) ([]View, error) {
	notices, err := s.repo.FindAllSorted(ctx)
	if err != nil {
		return nil, err
	}

	switch {
	case latest:
		if len(notices) > latestCount {
			notices = notices[:latestCount]
		}
	case excludeLatest:
		if len(notices) > latestCount {
			notices = notices[latestCount:]
		} else {
			notices = nil
		}
	}

	views := make([]View, 0, len(notices))
	for _, n := range notices {
		views = append(views, View{Notice: n, IsRead: n.IsReadBy(userID)})
	}
	return views, nil
}

func (s *NoticeService) Update(ctx context.Context, id primitive.ObjectID, req UpdateRequest) (*Notice, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Title != "" {
		n.Title = req.Title
	}
	if req.Date != nil {
		n.Date = *req.Date
	}
	if req.Category != "" {
		n.Category = req.Category
	}
	if req.Description != "" {
		n.Description = req.Description
	}
	n.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *NoticeService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// MarkRead is idempotent: a second call for the same user leaves the
// receipt list unchanged.
func (s *NoticeService) MarkRead(ctx context.Context, noticeID, userID primitive.ObjectID) error {
	if _, err := s.repo.FindByID(ctx, noticeID); err != nil {
		return err
	}
	return s.repo.AddReceipt(ctx, noticeID, userID, time.Now().UTC())
}

func (s *NoticeService) MarkUnread(ctx context.Context, noticeID, userID primitive.ObjectID) error {
	if _, err := s.repo.FindByID(ctx, noticeID); err != nil {
		return err
	}
	return s.repo.RemoveReceipt(ctx, noticeID, userID)
}

// MarkAllRead stamps a receipt on every notice the user has not read
// yet and reports how many were affected.
func (s *NoticeService) MarkAllRead(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return s.repo.AddReceiptToAll(ctx, userID, time.Now().UTC())
}
