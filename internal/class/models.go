package class

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

type Class struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string             `bson:"name" json:"name"`
	Teacher          string             `bson:"teacher" json:"teacher"`
	Subjects         []string           `bson:"subjects" json:"subjects"`
	NumberOfStudents int                `bson:"number_of_students" json:"numberOfStudents"`
	AcademicYear     string             `bson:"academic_year" json:"academicYear"`
	Status           Status             `bson:"status" json:"status"`
	CreatedAt        time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updatedAt"`
}

type CreateRequest struct {
	Name             string   `json:"name" form:"name" validate:"required"`
	Teacher          string   `json:"teacher" form:"teacher" validate:"required"`
	Subjects         []string `json:"subjects" validate:"required,min=1"`
	NumberOfStudents int      `json:"numberOfStudents" form:"numberOfStudents" validate:"gte=0"`
	AcademicYear     string   `json:"academicYear" form:"academicYear"`
	Status           Status   `json:"status" form:"status" validate:"omitempty,oneof=Active Inactive"`
}

type UpdateRequest struct {
	Name             string   `json:"name" form:"name"`
	Teacher          string   `json:"teacher" form:"teacher"`
	Subjects         []string `json:"subjects"`
	NumberOfStudents *int     `json:"numberOfStudents" form:"numberOfStudents"`
	AcademicYear     string   `json:"academicYear" form:"academicYear"`
	Status           Status   `json:"status" form:"status" validate:"omitempty,oneof=Active Inactive"`
}
