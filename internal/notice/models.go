package notice

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category string

const (
	CategorySports   Category = "Sports"
	CategoryHolidays Category = "Holidays"
	CategoryMeetings Category = "Meetings"
	CategoryEvents   Category = "Events"
)

const defaultDescription = "Please note the date of this event/announcement."

// ReadReceipt records that a user viewed a notice. A user appears at
// most once per notice.
type ReadReceipt struct {
	User   primitive.ObjectID `bson:"user" json:"user"`
	ReadAt time.Time          `bson:"read_at" json:"readAt"`
}

type Notice struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Date        time.Time          `bson:"date" json:"date"`
	Category    Category           `bson:"category" json:"category"`
	Description string             `bson:"description" json:"description"`
	CreatedBy   primitive.ObjectID `bson:"created_by" json:"createdBy"`
	ReadBy      []ReadReceipt      `bson:"read_by" json:"readBy"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

// IsReadBy derives the read state from the receipt list; it is never
// stored, so it cannot drift.
func (n *Notice) IsReadBy(userID primitive.ObjectID) bool {
	for _, r := range n.ReadBy {
		if r.User == userID {
			return true
		}
	}
	return false
}

// View is a Notice plus the caller-specific read projection.
type View struct {
	Notice
	IsRead bool `json:"isRead"`
}

type CreateRequest struct {
	Title       string    `json:"title" form:"title" validate:"required"`
	Date        time.Time `json:"date" form:"date" validate:"required"`
	Category    Category  `json:"category" form:"category" validate:"required,oneof=Sports Holidays Meetings Events"`
	Description string    `json:"description" form:"description"`
}

type UpdateRequest struct {
	Title       string     `json:"title" form:"title"`
	Date        *time.Time `json:"date" form:"date"`
	Category    Category   `json:"category" form:"category" validate:"omitempty,oneof=Sports Holidays Meetings Events"`
	Description string     `json:"description" form:"description"`
}
