package domain

import "time"

type ServiceCategory string

const (
	CategoryCleaning ServiceCategory = "cleaning"
	CategoryRepair   ServiceCategory = "repair"
	CategoryPainting ServiceCategory = "painting"
	CategoryPlumbing ServiceCategory = "plumbing"
	CategoryElectric ServiceCategory = "electric"
)

func (c ServiceCategory) Valid() bool {
	switch c {
	case CategoryCleaning, CategoryRepair, CategoryPainting, CategoryPlumbing, CategoryElectric:
		return true
	}
	return false
}

type Service struct {
	ID          int64           `json:"id"`
	Category    ServiceCategory `json:"category" gorm:"size:50;default:cleaning"`
	Title       string          `json:"title" gorm:"size:100"`
	Description string          `json:"description" gorm:"type:text"`
	Location    string          `json:"location,omitempty" gorm:"size:100"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	WorkItems []WorkItem     `json:"work_specifications,omitempty" gorm:"foreignKey:ServiceID"`
	Images    []ServiceImage `json:"images,omitempty" gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
	Reviews   []Review       `json:"reviews,omitempty" gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
}

// WorkItem is a priced line item ("work specification") belonging to a
// service. ServiceID is nullable: items may be orphaned when a service is
// removed without cascading into bookings that still reference them.
type WorkItem struct {
	ID        int64   `json:"id"`
	ServiceID *int64  `json:"service_id,omitempty"`
	Name      string  `json:"name" gorm:"size:100"`
	Price     float64 `json:"price" gorm:"type:decimal(10,2)" validate:"gte=0"`
}

type ServiceImage struct {
	ID        int64     `json:"id"`
	ServiceID int64     `json:"service_id"`
	URL       string    `json:"image" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`
}
