package domain

import "time"

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

type User struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"first_name" gorm:"size:50"`
	MiddleName   string    `json:"middle_name,omitempty" gorm:"size:50"`
	LastName     string    `json:"last_name" gorm:"size:50"`
	Username     string    `json:"username" gorm:"size:50;uniqueIndex"`
	Contact      string    `json:"contact" gorm:"size:15;uniqueIndex"`
	Address      string    `json:"address" gorm:"type:text"`
	Gender       Gender    `json:"gender" gorm:"size:10"`
	Email        string    `json:"email" gorm:"uniqueIndex" validate:"required,email"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	IsStaff      bool      `json:"-" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
