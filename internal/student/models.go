package student

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Student struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	ClassID    primitive.ObjectID `bson:"class_id" json:"classId"`
	RollNumber int                `bson:"roll_number" json:"rollNumber"`
	ParentName string             `bson:"parent_name,omitempty" json:"parentName,omitempty"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updatedAt"`
}

type CreateRequest struct {
	Name       string `json:"name" form:"name" validate:"required"`
	ClassID    string `json:"classId" form:"classId" validate:"required"`
	RollNumber int    `json:"rollNumber" form:"rollNumber" validate:"required"`
	ParentName string `json:"parentName" form:"parentName"`
}

type UpdateRequest struct {
	Name       string `json:"name" form:"name"`
	ClassID    string `json:"classId" form:"classId"`
	RollNumber *int   `json:"rollNumber" form:"rollNumber"`
	ParentName string `json:"parentName" form:"parentName"`
}
