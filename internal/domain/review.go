package domain

import "time"

// RatingLabels are the descriptive labels a review may carry, one per star.
var RatingLabels = [5]string{"Terrible", "Poor", "Average", "Very Good", "Excellent"}

func ValidRatingLabel(label string) bool {
	for _, l := range RatingLabels {
		if l == label {
			return true
		}
	}
	return false
}

// Review is a user's rating of a service. A user may leave several reviews
// for the same service; there is deliberately no uniqueness constraint.
type Review struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	ServiceID   int64     `json:"service"`
	Rating      int       `json:"rating" validate:"gte=1,lte=5"`
	RatingLabel string    `json:"rating_label" gorm:"size:20"`
	Comment     string    `json:"comment" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Replies []Reply `json:"replies,omitempty" gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE"`
	User    *User   `json:"-" gorm:"foreignKey:UserID"`
}

type Reply struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ReviewID  int64     `json:"review"`
	Comment   string    `json:"comment" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `json:"-" gorm:"foreignKey:UserID"`
}
