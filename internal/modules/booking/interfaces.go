package booking

import (
	"context"

	"homeserve/internal/domain"
)

// BookingRepository is the persisted booking store. Create and Update must
// report a collision on the (service, date, time) unique index as
// repository.ErrSlotTaken.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	Update(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetEditable(ctx context.Context, id, userID int64) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	Delete(ctx context.Context, id, userID int64) (bool, error)
	ExistsForSlot(ctx context.Context, userID, serviceID int64, date, timeOfDay string, excludeID *int64) (bool, error)
}

// Catalog resolves services and work items; a miss is (nil, nil) or an
// absent element, never an error.
type Catalog interface {
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
	GetWorkItemsByIDs(ctx context.Context, ids []int64) ([]domain.WorkItem, error)
}
