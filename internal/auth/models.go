package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleStudent Role = "Student"
	RoleTeacher Role = "Teacher"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStudent, RoleTeacher:
		return true
	}
	return false
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusActive, StatusInactive:
		return true
	}
	return false
}

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Role         Role               `bson:"role" json:"role"`
	ProfileImage string             `bson:"profile_image,omitempty" json:"profileImage,omitempty"`
	Status       Status             `bson:"status" json:"status"`

	// Password reset ticket: only the SHA-256 of the token is stored.
	ResetTokenHash   string    `bson:"reset_token_hash,omitempty" json:"-"`
	ResetTokenExpiry time.Time `bson:"reset_token_expiry,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

type RegisterRequest struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
	Role     Role   `json:"role" form:"role" validate:"omitempty,oneof=Admin Student Teacher"`
}

type Credential struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" form:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" form:"newPassword" validate:"required,min=6"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" form:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" form:"newPassword" validate:"required,min=6"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name" form:"name"`
	Email string `json:"email" form:"email" validate:"omitempty,email"`
}

type AdminUpdateUserRequest struct {
	Name   string `json:"name" form:"name"`
	Email  string `json:"email" form:"email" validate:"omitempty,email"`
	Role   Role   `json:"role" form:"role" validate:"omitempty,oneof=Admin Student Teacher"`
	Status Status `json:"status" form:"status" validate:"omitempty,oneof=pending active inactive"`
}
