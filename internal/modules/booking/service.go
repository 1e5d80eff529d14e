package booking

import (
	"context"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"homeserve/internal/domain"
	"homeserve/internal/pkg/logger"
)

type Service struct {
	bookings BookingRepository
	catalog  Catalog
}

func NewService(bookings BookingRepository, catalog Catalog) *Service {
	return &Service{bookings: bookings, catalog: catalog}
}

// candidate is a fully merged booking proposal: for updates the request has
// already been overlaid on the stored booking before validation runs.
type candidate struct {
	serviceID *int64
	workItems []domain.WorkItem
	price     *float64
	date      string
	timeOfDay string
	address   *string
	latitude  *float64
	longitude *float64
}

// Create validates a new booking and persists it with status=scheduled and
// the editable flag set. Validation completes fully before any write.
func (s *Service) Create(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	date, err := normalizeDate(req.Date)
	if err != nil {
		return nil, err
	}
	timeOfDay, err := normalizeTime(req.Time)
	if err != nil {
		return nil, err
	}

	cand := candidate{
		serviceID: req.ServiceID,
		price:     req.Price,
		date:      date,
		timeOfDay: timeOfDay,
		address:   req.Address,
		latitude:  req.Latitude,
		longitude: req.Longitude,
	}

	items, existErrs, err := s.resolve(ctx, req.ServiceID, req.WorkItemIDs)
	if err != nil {
		return nil, err
	}
	if len(existErrs) > 0 {
		return nil, existErrs
	}
	cand.workItems = items

	resolvedPrice, verrs, err := s.validate(ctx, userID, nil, cand)
	if err != nil {
		return nil, err
	}
	if len(verrs) > 0 {
		return nil, verrs
	}

	b := &domain.Booking{
		UserID:    userID,
		ServiceID: cand.serviceID,
		WorkItems: cand.workItems,
		Price:     resolvedPrice,
		Date:      cand.date,
		Time:      cand.timeOfDay,
		Address:   derefString(cand.address),
		Latitude:  cand.latitude,
		Longitude: cand.longitude,
		Editable:  true,
		Status:    domain.BookingScheduled,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	logger.L().Info("booking created",
		zap.Int64("booking_id", b.ID),
		zap.Int64("user_id", userID),
		zap.String("date", b.Date),
		zap.String("time", b.Time),
	)

	if full, err := s.bookings.GetByID(ctx, b.ID); err == nil && full != nil {
		return full, nil
	}
	return b, nil
}

// Update merges the partial request over the stored booking, revalidates
// the result and persists it. Only bookings reachable through the
// (owner, editable, scheduled) scope can be updated.
func (s *Service) Update(ctx context.Context, userID, id int64, req UpdateBookingRequest) (*domain.Booking, error) {
	existing, err := s.bookings.GetEditable(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	cand := candidate{
		serviceID: existing.ServiceID,
		workItems: existing.WorkItems,
		price:     &existing.Price,
		date:      existing.Date,
		timeOfDay: existing.Time,
		address:   &existing.Address,
		latitude:  existing.Latitude,
		longitude: existing.Longitude,
	}

	if req.ServiceID != nil {
		cand.serviceID = req.ServiceID
	}
	if req.Price != nil {
		cand.price = req.Price
	}
	if req.Date != nil {
		cand.date, err = normalizeDate(*req.Date)
		if err != nil {
			return nil, err
		}
	}
	if req.Time != nil {
		cand.timeOfDay, err = normalizeTime(*req.Time)
		if err != nil {
			return nil, err
		}
	}
	if req.Address != nil {
		cand.address = req.Address
	}
	if req.Latitude != nil {
		cand.latitude = req.Latitude
	}
	if req.Longitude != nil {
		cand.longitude = req.Longitude
	}

	// Existence checks run only against ids the request actually supplied;
	// fields merged from the stored booking are already known-good.
	items, existErrs, err := s.resolve(ctx, req.ServiceID, req.WorkItemIDs)
	if err != nil {
		return nil, err
	}
	if len(existErrs) > 0 {
		return nil, existErrs
	}
	if len(req.WorkItemIDs) > 0 {
		cand.workItems = items
	}

	resolvedPrice, verrs, err := s.validate(ctx, userID, &id, cand)
	if err != nil {
		return nil, err
	}
	if len(verrs) > 0 {
		return nil, verrs
	}

	updated := &domain.Booking{
		ID:        id,
		UserID:    userID,
		ServiceID: cand.serviceID,
		WorkItems: cand.workItems,
		Price:     resolvedPrice,
		Date:      cand.date,
		Time:      cand.timeOfDay,
		Address:   derefString(cand.address),
		Latitude:  cand.latitude,
		Longitude: cand.longitude,
	}

	if err := s.bookings.Update(ctx, updated); err != nil {
		return nil, err
	}

	logger.L().Info("booking updated",
		zap.Int64("booking_id", id),
		zap.Int64("user_id", userID),
	)

	if full, err := s.bookings.GetByID(ctx, id); err == nil && full != nil {
		return full, nil
	}
	return updated, nil
}

func (s *Service) List(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

// Get reads a single booking through the same ownership scope as the
// mutation surface.
func (s *Service) Get(ctx context.Context, userID, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetEditable(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	return b, nil
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	ok, err := s.bookings.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	logger.L().Info("booking deleted",
		zap.Int64("booking_id", id),
		zap.Int64("user_id", userID),
	)
	return nil
}

// resolve performs the existence checks: a supplied service id must exist
// and every supplied work-item id must exist. Failures are collected so the
// caller sees all bad references at once.
func (s *Service) resolve(ctx context.Context, serviceID *int64, workItemIDs []int64) ([]domain.WorkItem, ValidationErrors, error) {
	var verrs ValidationErrors

	if serviceID != nil {
		svc, err := s.catalog.GetServiceByID(ctx, *serviceID)
		if err != nil {
			return nil, nil, err
		}
		if svc == nil {
			verrs = append(verrs, errServiceNotFound(*serviceID))
		}
	}

	var items []domain.WorkItem
	if len(workItemIDs) > 0 {
		found, err := s.catalog.GetWorkItemsByIDs(ctx, workItemIDs)
		if err != nil {
			return nil, nil, err
		}
		byID := make(map[int64]domain.WorkItem, len(found))
		for _, w := range found {
			byID[w.ID] = w
		}
		for _, id := range workItemIDs {
			w, ok := byID[id]
			if !ok {
				verrs = append(verrs, errWorkItemNotFound(id))
				continue
			}
			items = append(items, w)
		}
	}

	return items, verrs, nil
}

// validate runs the duplicate-slot, ownership, price and address checks
// over a merged candidate and gathers every failure. It performs repository
// reads only; persistence is the caller's job. The returned price is
// authoritative: the work-item sum when the client omitted a price.
func (s *Service) validate(ctx context.Context, userID int64, excludeID *int64, cand candidate) (float64, ValidationErrors, error) {
	var verrs ValidationErrors

	if cand.serviceID != nil && cand.date != "" && cand.timeOfDay != "" {
		exists, err := s.bookings.ExistsForSlot(ctx, userID, *cand.serviceID, cand.date, cand.timeOfDay, excludeID)
		if err != nil {
			return 0, nil, err
		}
		if exists {
			verrs = append(verrs, errDuplicateBooking(cand.date, cand.timeOfDay))
		}
	}

	if cand.serviceID != nil {
		for _, w := range cand.workItems {
			if w.ServiceID == nil || *w.ServiceID != *cand.serviceID {
				verrs = append(verrs, errWorkItemServiceMismatch(w.ID, w.Name))
			}
		}
	}

	var resolvedPrice float64
	if cand.price != nil {
		resolvedPrice = *cand.price
		if *cand.price < 0 {
			verrs = append(verrs, errInvalidPrice(*cand.price))
		}
	}
	if len(cand.workItems) > 0 {
		var expected float64
		for _, w := range cand.workItems {
			expected += w.Price
		}
		expected = round2(expected)

		if cand.price != nil {
			if *cand.price >= 0 && !priceEqual(*cand.price, expected) {
				verrs = append(verrs, errPriceMismatch(*cand.price, expected))
			}
		} else {
			resolvedPrice = expected
		}
	}

	if cand.address != nil && strings.TrimSpace(*cand.address) == "" {
		verrs = append(verrs, errEmptyAddress())
	}

	return resolvedPrice, verrs, nil
}

func normalizeDate(s string) (string, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return "", ErrInvalidInput
	}
	return t.Format("2006-01-02"), nil
}

func normalizeTime(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04"), nil
		}
	}
	return "", ErrInvalidInput
}

// Prices are compared at cent precision.
func priceEqual(a, b float64) bool {
	return math.Round(a*100) == math.Round(b*100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
