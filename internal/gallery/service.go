package gallery

import (
	"context"
	"path"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"SchoolServer/internal/config"
)

const latestCount = 3

type GalleryService struct {
	repo  *GalleryRepository
	files *config.FileStore
	log   *zap.Logger
}

func NewGalleryService(repo *GalleryRepository, files *config.FileStore, log *zap.Logger) *GalleryService {
	return &GalleryService{repo: repo, files: files, log: log}
}

// Create stores a media document for an already-saved upload. When the
// request does not name a media type it is inferred from the MIME type.
func (s *GalleryService) Create(ctx context.Context, req CreateRequest, storedName, mimeType string, createdBy primitive.ObjectID) (*Media, error) {
	mediaType := req.MediaType
	if mediaType == "" {
		mediaType = MediaImage
		if strings.HasPrefix(mimeType, "video/") {
			mediaType = MediaVideo
		}
	}
	date := time.Now().UTC()
	if req.Date != nil {
		date = *req.Date
	}
	now := time.Now().UTC()
	m := &Media{
		ID:          primitive.NewObjectID(),
		Title:       req.Title,
		Description: req.Description,
		MediaURL:    "/uploads/" + config.UploadKindGallery + "/" + storedName,
		MediaType:   mediaType,
		Category:    req.Category,
		Date:        date,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// List serves media newest-first; latest and excludeLatest are the two
// mutually exclusive projections the homepage and gallery page use.
func (s *GalleryService) List(ctx context.Context, latest, excludeLatest bool) ([]Media, error) {
	items, err := s.repo.FindAllSorted(ctx)
	if err != nil {
		return nil, err
	}
	switch {
	case latest:
		if len(items) > latestCount {
			items = items[:latestCount]
		}
	case excludeLatest:
		if len(items) > latestCount {
			items = items[latestCount:]
		} else {
			items = nil
		}
	}
	return items, nil
}

// Update applies field changes; a replacement upload deletes the
// previously stored file.
func (s *GalleryService) Update(ctx context.Context, id primitive.ObjectID, req UpdateRequest, storedName, mimeType string) (*Media, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Title != "" {
		m.Title = req.Title
	}
	if req.Description != "" {
		m.Description = req.Description
	}
	if req.Category != "" {
		m.Category = req.Category
	}
	if req.MediaType != "" {
		m.MediaType = req.MediaType
	}
	if req.Date != nil {
		m.Date = *req.Date
	}
	if storedName != "" {
		if err := s.files.Remove(config.UploadKindGallery, path.Base(m.MediaURL)); err != nil {
			s.log.Warn("failed to remove old media file", zap.Error(err))
		}
		m.MediaURL = "/uploads/" + config.UploadKindGallery + "/" + storedName
		if req.MediaType == "" {
			m.MediaType = MediaImage
			if strings.HasPrefix(mimeType, "video/") {
				m.MediaType = MediaVideo
			}
		}
	}
	m.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Delete removes the document and the stored file it references.
func (s *GalleryService) Delete(ctx context.Context, id primitive.ObjectID) error {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.files.Remove(config.UploadKindGallery, path.Base(m.MediaURL)); err != nil {
		s.log.Warn("failed to remove media file", zap.Error(err))
	}
	return s.repo.Delete(ctx, id)
}
