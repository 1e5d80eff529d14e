package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"homeserve/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create persists the booking and its work-item selection. A collision on
// the slot index surfaces as ErrSlotTaken.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(b).Error; err != nil {
			return err
		}
		if len(b.WorkItems) > 0 {
			if err := tx.Model(b).Association("WorkItems").Replace(b.WorkItems); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return ErrSlotTaken
		}
		return err
	}
	return nil
}

// Update rewrites the mutable fields and replaces the work-item set.
// Zero-valued fields are written deliberately; the caller has already
// merged the candidate over the prior state.
func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Booking{ID: b.ID}).
			Select("service_id", "price", "booking_date", "booking_time", "address", "latitude", "longitude").
			Updates(map[string]any{
				"service_id":   b.ServiceID,
				"price":        b.Price,
				"booking_date": b.Date,
				"booking_time": b.Time,
				"address":      b.Address,
				"latitude":     b.Latitude,
				"longitude":    b.Longitude,
			})
		if res.Error != nil {
			return res.Error
		}
		return tx.Model(b).Association("WorkItems").Replace(b.WorkItems)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return ErrSlotTaken
		}
		return err
	}
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).
		Preload("WorkItems").
		Preload("Service.Images").
		Preload("Service.WorkItems").
		First(&b, id)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &b, nil
}

// GetEditable fetches a booking through the mutation scope: owned by the
// user, still editable and still scheduled. Completed or locked bookings
// are unreachable here by construction.
func (r *BookingRepository) GetEditable(ctx context.Context, id, userID int64) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).
		Preload("WorkItems").
		Where("id = ? AND user_id = ? AND is_editable = ? AND status = ?",
			id, userID, true, domain.BookingScheduled).
		First(&b)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var out []domain.Booking
	tx := r.db.WithContext(ctx).
		Preload("WorkItems").
		Preload("Service.Images").
		Preload("Service.WorkItems").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out)
	return out, tx.Error
}

// Delete removes a booking through the same scope as GetEditable and
// reports whether a row was actually deleted.
func (r *BookingRepository) Delete(ctx context.Context, id, userID int64) (bool, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ? AND is_editable = ? AND status = ?",
			id, userID, true, domain.BookingScheduled).
			First(&b)
		if res.Error != nil {
			return res.Error
		}
		if err := tx.Model(&b).Association("WorkItems").Clear(); err != nil {
			return err
		}
		return tx.Delete(&b).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ExistsForSlot is the advisory per-user duplicate check: the storage-level
// unique index remains the safety net for the check/use gap.
func (r *BookingRepository) ExistsForSlot(ctx context.Context, userID, serviceID int64, date, timeOfDay string, excludeID *int64) (bool, error) {
	q := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("user_id = ? AND service_id = ? AND booking_date = ? AND booking_time = ?",
			userID, serviceID, date, timeOfDay)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
