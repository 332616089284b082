package auth

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"SchoolServer/internal/config"
)

const resetTokenTTL = time.Hour

type UserService struct {
	repo   Repository
	tokens *TokenService
	mailer config.Mailer
	files  *config.FileStore
	site   *config.SiteConfig
	log    *zap.Logger
}

func NewUserService(repo Repository, tokens *TokenService, mailer config.Mailer, files *config.FileStore, site *config.SiteConfig, log *zap.Logger) *UserService {
	return &UserService{repo: repo, tokens: tokens, mailer: mailer, files: files, site: site, log: log}
}

// Register creates a user and returns it with a freshly issued session
// token. Role defaults to Student when not supplied.
func (s *UserService) Register(ctx context.Context, req RegisterRequest, profileImage string) (*User, string, error) {
	role := req.Role
	if role == "" {
		role = RoleStudent
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	user := &User{
		ID:           primitive.NewObjectID(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		ProfileImage: profileImage,
		Status:       StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID.Hex(), user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Authenticate verifies credentials and mints a session token. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, cred Credential) (*User, string, error) {
	user, err := s.repo.FindByEmail(ctx, cred.Email)
	if err != nil {
		if err == ErrUserNotFound {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !CheckPasswordHash(cred.Password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID.Hex(), user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ForgotPassword issues a reset ticket: a random token whose SHA-256
// hash and 1-hour expiry land on the user document, while the plain
// token goes out by email only.
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	plain, hash, err := GenerateResetToken()
	if err != nil {
		return err
	}
	user.ResetTokenHash = hash
	user.ResetTokenExpiry = time.Now().UTC().Add(resetTokenTTL)
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", s.site.FrontendURL, plain)
	body := fmt.Sprintf("You requested a password reset. Click the link to reset your password:\n\n%s\n\nIf you did not request this, ignore this email.", resetURL)
	if err := s.mailer.Send(user.Email, s.site.SchoolName+" Password Reset", body); err != nil {
		// Roll the ticket back so a failed send does not strand a live token.
		user.ResetTokenHash = ""
		user.ResetTokenExpiry = time.Time{}
		if rbErr := s.repo.Update(ctx, user); rbErr != nil {
			s.log.Error("failed to clear reset ticket after send failure", zap.Error(rbErr))
		}
		return err
	}
	return nil
}

// ResetPassword consumes a reset ticket. The lookup and the ticket
// clear happen in a single conditional write, so a ticket can be spent
// at most once.
func (s *UserService) ResetPassword(ctx context.Context, plainToken, newPassword string) error {
	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.repo.ConsumeResetToken(ctx, HashResetToken(plainToken), hash, time.Now().UTC())
}

func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, req ChangePasswordRequest) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		return ErrWrongOldPassword
	}
	hash, err := HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, user)
}

func (s *UserService) Profile(ctx context.Context, userID primitive.ObjectID) (*User, error) {
	return s.repo.FindByID(ctx, userID)
}

// UpdateProfile applies the caller's own changes. A new profile image
// replaces and deletes the previous file.
func (s *UserService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, req UpdateProfileRequest, newImage string) (*User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if newImage != "" {
		if err := s.files.Remove(config.UploadKindUsers, user.ProfileImage); err != nil {
			s.log.Warn("failed to remove old profile image", zap.Error(err))
		}
		user.ProfileImage = newImage
	}
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) AdminUpdateUser(ctx context.Context, id primitive.ObjectID, req AdminUpdateUserRequest, newImage string) (*User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.Status != "" {
		user.Status = req.Status
	}
	if newImage != "" {
		if err := s.files.Remove(config.UploadKindUsers, user.ProfileImage); err != nil {
			s.log.Warn("failed to remove old profile image", zap.Error(err))
		}
		user.ProfileImage = newImage
	}
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the user document and its stored profile image.
func (s *UserService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.files.Remove(config.UploadKindUsers, user.ProfileImage); err != nil {
		s.log.Warn("failed to remove profile image", zap.Error(err))
	}
	return s.repo.Delete(ctx, id)
}
