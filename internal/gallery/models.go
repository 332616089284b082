package gallery

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

type Media struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	MediaURL    string             `bson:"media_url" json:"mediaUrl"`
	MediaType   MediaType          `bson:"media_type" json:"mediaType"`
	Category    string             `bson:"category" json:"category"`
	Date        time.Time          `bson:"date" json:"date"`
	CreatedBy   primitive.ObjectID `bson:"created_by" json:"createdBy"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

type CreateRequest struct {
	Title       string     `json:"title" form:"title" validate:"required"`
	Description string     `json:"description" form:"description"`
	Category    string     `json:"category" form:"category" validate:"required"`
	MediaType   MediaType  `json:"mediaType" form:"mediaType" validate:"omitempty,oneof=image video"`
	Date        *time.Time `json:"date" form:"date"`
}

type UpdateRequest struct {
	Title       string     `json:"title" form:"title"`
	Description string     `json:"description" form:"description"`
	Category    string     `json:"category" form:"category"`
	MediaType   MediaType  `json:"mediaType" form:"mediaType" validate:"omitempty,oneof=image video"`
	Date        *time.Time `json:"date" form:"date"`
}
