package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"SchoolServer/internal/config"
)

// memRepo is an in-memory credential store used instead of Mongo.
type memRepo struct {
	users map[primitive.ObjectID]*User
}

func newMemRepo() *memRepo {
	return &memRepo{users: make(map[primitive.ObjectID]*User)}
}

func (r *memRepo) Create(_ context.Context, user *User) error {
	for _, u := range r.users {
		if u.Email == strings.ToLower(user.Email) {
			return ErrEmailExists
		}
	}
	user.Email = strings.ToLower(user.Email)
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memRepo) FindByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range r.users {
		if u.Email == strings.ToLower(email) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *memRepo) FindByID(_ context.Context, id primitive.ObjectID) (*User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *memRepo) FindAll(_ context.Context) ([]User, error) {
	users := make([]User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

func (r *memRepo) Update(_ context.Context, user *User) error {
	if _, ok := r.users[user.ID]; !ok {
		return ErrUserNotFound
	}
	user.Email = strings.ToLower(user.Email)
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.users[id]; !ok {
		return ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *memRepo) ConsumeResetToken(_ context.Context, tokenHash, newPasswordHash string, now time.Time) error {
	for _, u := range r.users {
		if u.ResetTokenHash == tokenHash && u.ResetTokenExpiry.After(now) {
			u.PasswordHash = newPasswordHash
			u.ResetTokenHash = ""
			u.ResetTokenExpiry = time.Time{}
			u.UpdatedAt = now
			return nil
		}
	}
	return ErrInvalidResetToken
}

// memMailer records outgoing mail instead of delivering it.
type memMailer struct {
	to      []string
	bodies  []string
	failing bool
}

func (m *memMailer) Send(to, _, body string) error {
	if m.failing {
		return assert.AnError
	}
	m.to = append(m.to, to)
	m.bodies = append(m.bodies, body)
	return nil
}

func newTestService(t *testing.T) (*UserService, *memRepo, *memMailer) {
	t.Helper()
	repo := newMemRepo()
	mailer := &memMailer{}
	svc := NewUserService(
		repo,
		newTestTokenService(TokenTTL),
		mailer,
		&config.FileStore{Root: t.TempDir()},
		&config.SiteConfig{FrontendURL: "http://localhost:5173", SchoolName: "RK School"},
		zap.NewNop(),
	)
	return svc, repo, mailer
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "pw123",
	}, "")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, RoleStudent, user.Role)
	assert.Equal(t, StatusActive, user.Status)
	assert.NotEqual(t, "pw123", user.PasswordHash)

	// Same raw password verifies.
	logged, token, err := svc.Authenticate(ctx, Credential{Email: "alice@example.com", Password: "pw123"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
	assert.NotEmpty(t, token)

	// Wrong password and unknown email both come back generic.
	_, _, err = svc.Authenticate(ctx, Credential{Email: "alice@example.com", Password: "wrongpw"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Authenticate(ctx, Credential{Email: "nobody@example.com", Password: "pw123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterRequest{Name: "A", Email: "dup@example.com", Password: "pw123"}, "")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, RegisterRequest{Name: "B", Email: "DUP@example.com", Password: "pw456"}, "")
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestRegisterAssignedRole(t *testing.T) {
	svc, _, _ := newTestService(t)

	user, _, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Head",
		Email:    "head@example.com",
		Password: "pw123",
		Role:     RoleAdmin,
	}, "")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, user.Role)
}

func TestChangePassword(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, RegisterRequest{Name: "A", Email: "a@example.com", Password: "oldpw1"}, "")
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, user.ID, ChangePasswordRequest{OldPassword: "nope", NewPassword: "newpw1"})
	assert.ErrorIs(t, err, ErrWrongOldPassword)

	err = svc.ChangePassword(ctx, user.ID, ChangePasswordRequest{OldPassword: "oldpw1", NewPassword: "newpw1"})
	require.NoError(t, err)

	_, _, err = svc.Authenticate(ctx, Credential{Email: "a@example.com", Password: "newpw1"})
	assert.NoError(t, err)
	_, _, err = svc.Authenticate(ctx, Credential{Email: "a@example.com", Password: "oldpw1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestPasswordResetFlow(t *testing.T) {
	svc, repo, mailer := newTestService(t)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, RegisterRequest{Name: "A", Email: "a@example.com", Password: "oldpw1"}, "")
	require.NoError(t, err)

	require.NoError(t, svc.ForgotPassword(ctx, "a@example.com"))
	require.Len(t, mailer.to, 1)
	assert.Equal(t, "a@example.com", mailer.to[0])

	stored := repo.users[user.ID]
	assert.NotEmpty(t, stored.ResetTokenHash)
	assert.WithinDuration(t, time.Now().Add(time.Hour), stored.ResetTokenExpiry, time.Minute)

	// The emailed link ends with the plain token.
	parts := strings.Split(strings.TrimSpace(strings.Split(mailer.bodies[0], "\n\n")[1]), "/")
	plain := parts[len(parts)-1]
	assert.Equal(t, stored.ResetTokenHash, HashResetToken(plain))

	// A fabricated token fails.
	err = svc.ResetPassword(ctx, "fabricated", "newpw1")
	assert.ErrorIs(t, err, ErrInvalidResetToken)

	// The real token succeeds and clears the ticket.
	require.NoError(t, svc.ResetPassword(ctx, plain, "newpw1"))
	assert.Empty(t, repo.users[user.ID].ResetTokenHash)

	_, _, err = svc.Authenticate(ctx, Credential{Email: "a@example.com", Password: "newpw1"})
	assert.NoError(t, err)

	// A consumed ticket cannot be reused.
	err = svc.ResetPassword(ctx, plain, "anotherpw")
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestPasswordResetExpiredTicket(t *testing.T) {
	svc, repo, mailer := newTestService(t)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, RegisterRequest{Name: "A", Email: "a@example.com", Password: "oldpw1"}, "")
	require.NoError(t, err)
	require.NoError(t, svc.ForgotPassword(ctx, "a@example.com"))

	// Age the ticket past its expiry; it becomes unusable without any purge.
	repo.users[user.ID].ResetTokenExpiry = time.Now().Add(-time.Minute)

	parts := strings.Split(strings.TrimSpace(strings.Split(mailer.bodies[0], "\n\n")[1]), "/")
	plain := parts[len(parts)-1]
	err = svc.ResetPassword(ctx, plain, "newpw1")
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestForgotPasswordSendFailureClearsTicket(t *testing.T) {
	svc, repo, mailer := newTestService(t)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, RegisterRequest{Name: "A", Email: "a@example.com", Password: "pw123"}, "")
	require.NoError(t, err)

	mailer.failing = true
	err = svc.ForgotPassword(ctx, "a@example.com")
	require.Error(t, err)
	assert.Empty(t, repo.users[user.ID].ResetTokenHash)
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	svc, _, mailer := newTestService(t)

	err := svc.ForgotPassword(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Empty(t, mailer.to)
}
