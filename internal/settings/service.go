package settings

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"SchoolServer/internal/config"
)

type SettingsService struct {
	repo  *SettingsRepository
	files *config.FileStore
	log   *zap.Logger
}

func NewSettingsService(repo *SettingsRepository, files *config.FileStore, log *zap.Logger) *SettingsService {
	return &SettingsService{repo: repo, files: files, log: log}
}

func (s *SettingsService) List(ctx context.Context) ([]Settings, error) {
	return s.repo.FindAll(ctx)
}

func (s *SettingsService) Create(ctx context.Context, req UpsertRequest, logo string) (*Settings, error) {
	now := time.Now().UTC()
	settings := &Settings{
		ID:           primitive.NewObjectID(),
		SchoolName:   req.SchoolName,
		Address:      req.Address,
		Phone:        req.Phone,
		Email:        req.Email,
		Logo:         logo,
		Facebook:     req.Facebook,
		Twitter:      req.Twitter,
		Instagram:    req.Instagram,
		TikTok:       req.TikTok,
		HomepageText: req.HomepageText,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// Update applies only provided fields; a new logo replaces and deletes
// the previous file.
func (s *SettingsService) Update(ctx context.Context, id primitive.ObjectID, req UpsertRequest, logo string) (*Settings, error) {
	settings, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.SchoolName != "" {
		settings.SchoolName = req.SchoolName
	}
	if req.Address != "" {
		settings.Address = req.Address
	}
	if req.Phone != "" {
		settings.Phone = req.Phone
	}
	if req.Email != "" {
		settings.Email = req.Email
	}
	if req.Facebook != "" {
		settings.Facebook = req.Facebook
	}
	if req.Twitter != "" {
		settings.Twitter = req.Twitter
	}
	if req.Instagram != "" {
		settings.Instagram = req.Instagram
	}
	if req.TikTok != "" {
		settings.TikTok = req.TikTok
	}
	if req.HomepageText != "" {
		settings.HomepageText = req.HomepageText
	}
	if logo != "" {
		if err := s.files.Remove(config.UploadKindLogos, settings.Logo); err != nil {
			s.log.Warn("failed to remove old logo", zap.Error(err))
		}
		settings.Logo = logo
	}
	settings.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *SettingsService) Delete(ctx context.Context, id primitive.ObjectID) error {
	settings, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.files.Remove(config.UploadKindLogos, settings.Logo); err != nil {
		s.log.Warn("failed to remove logo", zap.Error(err))
	}
	return s.repo.Delete(ctx, id)
}
