package booking

type CreateBookingRequest struct {
	ServiceID   *int64   `json:"service"`
	WorkItemIDs []int64  `json:"work_specifications"`
	Price       *float64 `json:"price"`
	Date        string   `json:"booking_date" binding:"required"`
	Time        string   `json:"booking_time" binding:"required"`
	Address     *string  `json:"address"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// UpdateBookingRequest carries partial fields; anything omitted falls back
// to the stored booking before revalidation.
type UpdateBookingRequest struct {
	ServiceID   *int64   `json:"service"`
	WorkItemIDs []int64  `json:"work_specifications"`
	Price       *float64 `json:"price"`
	Date        *string  `json:"booking_date"`
	Time        *string  `json:"booking_time"`
	Address     *string  `json:"address"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}
