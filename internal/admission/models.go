package admission

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

type Admission struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Grade         string             `bson:"grade" json:"grade"`
	ParentContact string             `bson:"parent_contact" json:"parentContact"`
	Message       string             `bson:"message,omitempty" json:"message,omitempty"`
	Status        Status             `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}

type SubmitRequest struct {
	Name          string `json:"name" form:"name" validate:"required"`
	Grade         string `json:"grade" form:"grade" validate:"required"`
	ParentContact string `json:"parentContact" form:"parentContact" validate:"required"`
	Message       string `json:"message" form:"message"`
}

type UpdateRequest struct {
	Status Status `json:"status" form:"status" validate:"omitempty,oneof=Pending Approved Rejected"`
}
