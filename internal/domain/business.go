package domain

import "time"

type BusinessCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"category_name" gorm:"column:category_name;size:100"`
}

// PopularBusiness is a featured directory entry shown on the landing page,
// separate from the bookable service catalog.
type PopularBusiness struct {
	ID         int64     `json:"id"`
	CategoryID int64     `json:"-"`
	Name       string    `json:"service_name" gorm:"column:service_name;size:100"`
	Location   string    `json:"location" gorm:"type:text"`
	ImageURL   string    `json:"image,omitempty" gorm:"size:255"`
	CreatedAt  time.Time `json:"created_at"`

	Category *BusinessCategory `json:"service_category,omitempty" gorm:"foreignKey:CategoryID"`
}
