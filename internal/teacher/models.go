package teacher

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Teacher struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Subject   string             `bson:"subject" json:"subject"`
	Contact   string             `bson:"contact" json:"contact"`
	ClassID   primitive.ObjectID `bson:"class_id" json:"classId"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

type CreateRequest struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Subject string `json:"subject" form:"subject" validate:"required"`
	Contact string `json:"contact" form:"contact" validate:"required"`
	ClassID string `json:"classId" form:"classId" validate:"required"`
}

type UpdateRequest struct {
	Name    string `json:"name" form:"name"`
	Subject string `json:"subject" form:"subject"`
	Contact string `json:"contact" form:"contact"`
	ClassID string `json:"classId" form:"classId"`
}
