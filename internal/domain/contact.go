package domain

import "time"

type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" gorm:"size:100"`
	Email     string    `json:"email" validate:"required,email"`
	Subject   string    `json:"subject,omitempty" gorm:"size:200"`
	Message   string    `json:"message" gorm:"type:text"`
	ImageURL  string    `json:"image,omitempty" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`
}
