package auth

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"SchoolServer/internal/config"
)

type AuthHandler struct {
	service *UserService
	files   *config.FileStore
	log     *zap.Logger
}

func NewAuthHandler(service *UserService, files *config.FileStore, log *zap.Logger) *AuthHandler {
	return &AuthHandler{service: service, files: files, log: log}
}

type userPayload struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	ProfileImage string `json:"profileImage,omitempty"`
	Token        string `json:"token"`
}

func newUserPayload(user *User, token string) userPayload {
	return userPayload{
		ID:           user.ID.Hex(),
		Name:         user.Name,
		Email:        user.Email,
		Role:         user.Role,
		ProfileImage: user.ProfileImage,
		Token:        token,
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	image := ""
	if file, err := c.FormFile("image"); err == nil {
		name, err := h.files.Save(config.UploadKindUsers, file)
		if err != nil {
			h.log.Error("failed to store profile image", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
		}
		image = name
	}

	user, token, err := h.service.Register(c.Request().Context(), req, image)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email already exists"})
		}
		h.log.Error("registration failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "User registered successfully",
		"user":    newUserPayload(user, token),
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var cred Credential
	if err := c.Bind(&cred); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
	}
	if err := c.Validate(&cred); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Please provide email and password"})
	}

	user, token, err := h.service.Authenticate(c.Request().Context(), cred)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid credentials"})
		}
		h.log.Error("login failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login successful",
		"user":    newUserPayload(user, token),
	})
}

// Logout is a client-side token discard; there is no server-side
// session to revoke.
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "User logged out successfully"})
}

// ForgotPassword responds identically whether or not the email is
// registered, so the endpoint cannot be used to enumerate accounts.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Please provide your email"})
	}

	if err := h.service.ForgotPassword(c.Request().Context(), req.Email); err != nil && !errors.Is(err, ErrUserNotFound) {
		h.log.Error("forgot password failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Email could not be sent"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "If that email is registered, a reset link has been sent"})
}

func (h *AuthHandler) ResetPassword(c echo.Context) error {
	token := c.Param("token")

	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Please provide a new password"})
	}

	if err := h.service.ResetPassword(c.Request().Context(), token, req.NewPassword); err != nil {
		if errors.Is(err, ErrInvalidResetToken) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid or expired token"})
		}
		h.log.Error("reset password failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Password reset successfully"})
}

func (h *AuthHandler) Profile(c echo.Context) error {
	userID, ok := CurrentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid or missing token"})
	}
	user, err := h.service.Profile(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "User not found"})
		}
		h.log.Error("profile lookup failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	userID, ok := CurrentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid or missing token"})
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	image := ""
	if file, err := c.FormFile("image"); err == nil {
		name, err := h.files.Save(config.UploadKindUsers, file)
		if err != nil {
			h.log.Error("failed to store profile image", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
		}
		image = name
	}

	user, err := h.service.UpdateProfile(c.Request().Context(), userID, req, image)
	if err != nil {
		return h.writeUserError(c, err, "profile update failed")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Profile updated", "user": user})
}

func (h *AuthHandler) ChangePassword(c echo.Context) error {
	userID, ok := CurrentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid or missing token"})
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	if err := h.service.ChangePassword(c.Request().Context(), userID, req); err != nil {
		if errors.Is(err, ErrWrongOldPassword) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Old password is incorrect"})
		}
		return h.writeUserError(c, err, "password change failed")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Password changed successfully"})
}

func (h *AuthHandler) ListUsers(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		h.log.Error("user listing failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, users)
}

func (h *AuthHandler) AdminUpdateUser(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid user id"})
	}

	var req AdminUpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	image := ""
	if file, err := c.FormFile("image"); err == nil {
		name, err := h.files.Save(config.UploadKindUsers, file)
		if err != nil {
			h.log.Error("failed to store profile image", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
		}
		image = name
	}

	user, err := h.service.AdminUpdateUser(c.Request().Context(), id, req, image)
	if err != nil {
		return h.writeUserError(c, err, "admin user update failed")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User updated by admin", "user": user})
}

func (h *AuthHandler) AdminDeleteUser(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid user id"})
	}
	if err := h.service.DeleteUser(c.Request().Context(), id); err != nil {
		return h.writeUserError(c, err, "user deletion failed")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User deleted successfully"})
}

func (h *AuthHandler) writeUserError(c echo.Context, err error, logMsg string) error {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"message": "User not found"})
	case errors.Is(err, ErrEmailExists):
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email already exists"})
	default:
		h.log.Error(logMsg, zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
}
