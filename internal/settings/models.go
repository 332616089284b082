package settings

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Settings struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SchoolName   string             `bson:"school_name" json:"schoolName"`
	Address      string             `bson:"address,omitempty" json:"address,omitempty"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Email        string             `bson:"email,omitempty" json:"email,omitempty"`
	Logo         string             `bson:"logo,omitempty" json:"logo,omitempty"`
	Facebook     string             `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Twitter      string             `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Instagram    string             `bson:"instagram,omitempty" json:"instagram,omitempty"`
	TikTok       string             `bson:"tiktok,omitempty" json:"tiktok,omitempty"`
	HomepageText string             `bson:"homepage_text,omitempty" json:"homepageText,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}

type UpsertRequest struct {
	SchoolName   string `json:"schoolName" form:"schoolName"`
	Address      string `json:"address" form:"address"`
	Phone        string `json:"phone" form:"phone"`
	Email        string `json:"email" form:"email" validate:"omitempty,email"`
	Facebook     string `json:"facebook" form:"facebook"`
	Twitter      string `json:"twitter" form:"twitter"`
	Instagram    string `json:"instagram" form:"instagram"`
	TikTok       string `json:"tiktok" form:"tiktok"`
	HomepageText string `json:"homepageText" form:"homepageText"`
}
