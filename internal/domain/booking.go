package domain

import "time"

type BookingStatus string

const (
	BookingScheduled BookingStatus = "scheduled"
	BookingCompleted BookingStatus = "completed"
)

// Booking reserves a service slot. The (service_id, booking_date,
// booking_time) triple is unique system-wide: the composite index is the
// storage-level safety net behind the validator's advisory duplicate check.
type Booking struct {
	ID        int64         `json:"id"`
	UserID    int64         `json:"user_id"`
	ServiceID *int64        `json:"service,omitempty" gorm:"uniqueIndex:idx_booking_slot"`
	Price     float64       `json:"price" gorm:"type:decimal(10,2)"`
	Date      string        `json:"booking_date" gorm:"column:booking_date;size:10;uniqueIndex:idx_booking_slot"`
	Time      string        `json:"booking_time" gorm:"column:booking_time;size:5;uniqueIndex:idx_booking_slot"`
	Address   string        `json:"address" gorm:"size:255"`
	Latitude  *float64      `json:"latitude,omitempty"`
	Longitude *float64      `json:"longitude,omitempty"`
	Editable  bool          `json:"is_editable" gorm:"column:is_editable"`
	Status    BookingStatus `json:"status" gorm:"size:20;default:scheduled"`
	CreatedAt time.Time     `json:"created_at"`

	WorkItems []WorkItem `json:"work_specifications,omitempty" gorm:"many2many:booking_work_items"`
	Service   *Service   `json:"service_detail,omitempty" gorm:"foreignKey:ServiceID"`
	User      *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
