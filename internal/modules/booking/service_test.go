package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"homeserve/internal/domain"
)

// Mock repositories

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetEditable(ctx context.Context, id, userID int64) (*domain.Booking, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id, userID int64) (bool, error) {
	args := m.Called(ctx, id, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) ExistsForSlot(ctx context.Context, userID, serviceID int64, date, timeOfDay string, excludeID *int64) (bool, error) {
	args := m.Called(ctx, userID, serviceID, date, timeOfDay, excludeID)
	return args.Bool(0), args.Error(1)
}

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) GetServiceByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockCatalog) GetWorkItemsByIDs(ctx context.Context, ids []int64) ([]domain.WorkItem, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkItem), args.Error(1)
}

func int64Ptr(v int64) *int64     { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func cleaningService() *domain.Service {
	return &domain.Service{ID: 7, Category: domain.CategoryCleaning, Title: "Apartment Cleaning"}
}

func cleaningItems() []domain.WorkItem {
	return []domain.WorkItem{
		{ID: 1, ServiceID: int64Ptr(7), Name: "Kitchen cleaning", Price: 100},
		{ID: 2, ServiceID: int64Ptr(7), Name: "Bathroom cleaning", Price: 50},
	}
}

func TestService_Create_PriceFilledFromWorkItems(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalog)

	mockCatalog.On("GetServiceByID", mock.Anything, int64(7)).Return(cleaningService(), nil)
	mockCatalog.On("GetWorkItemsByIDs", mock.Anything, []int64{1, 2}).Return(cleaningItems(), nil)
	mockBookings.On("ExistsForSlot", mock.Anything, int64(42), int64(7), "2026-09-15", "10:00", (*int64)(nil)).
		Return(false, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockBookings.On("GetByID", mock.Anything, int64(999)).Return(nil, nil)

	service := NewService(mockBookings, mockCatalog)

	req := CreateBookingRequest{
		ServiceID:   int64Ptr(7),
		WorkItemIDs: []int64{1, 2},
		Date:        "2026-09-15",
		Time:        "10:00",
		Address:     strPtr("Dostyk Ave 97"),
	}

	b, err := service.Create(context.Background(), 42, req)

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, 150.0, b.Price)
	assert.True(t, b.Editable)
	assert.Equal(t, domain.BookingScheduled, b.Status)
}

func TestService_Create_MatchingPriceAccepted(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalog)

	mockCatalog.On("GetServiceByID", mock.Anything, int64(7)).Return(cleaningService(), nil)
	mockCatalog.On("GetWorkItemsByIDs", mock.Anything, []int64{1, 2}).Return(cleaningItems(), nil)
	mockBookings.On("ExistsForSlot", mock.Anything, int64(42), int64(7), "2026-09-15", "10:00", (*int64)(nil)).
		Return(false, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockBookings.On("GetByID", mock.Anything, int64(999)).Return(nil, nil)

	service := NewService(mockBookings, mockCatalog)

	req := CreateBookingRequest{
		ServiceID:   int64Ptr(7),
		WorkItemIDs: []int64{1, 2},
		Price:       floatPtr(150),
		Date:        "2026-09-15",
		Time:        "10:00",
		Address:     strPtr("Dostyk Ave 97"),
	}

	b, err := service.Create(context.Background(), 42, req)

	assert.NoError(t, err)
	assert.Equal(t, 150.0, b.Price)
}

func TestService_Create_PriceMismatch(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalog)

	items := []domain.WorkItem{
		{ID: 1, ServiceID: int64Ptr(7), Name: "Kitchen cleaning", Price: 300},
		{ID: 2, ServiceID: int64Ptr(7), Name: "Bathroom cleaning", Price: 200},
	}
	mockCatalog.On("GetServiceByID", mock.Anything, int64(7)).Return(cleaningService(), nil)
	mockCatalog.On("GetWorkItemsByIDs", mock.Anything, []int64{1, 2}).Return(items, nil)
	mockBookings.On("ExistsForSlot", mock.Anything, int64(42), int64(7), "2026-09-15", "10:00", (*int64)(nil)).
		Return(false, nil)

	service := NewService(mockBookings, mockCatalog)

	req := CreateBookingRequest{
		ServiceID:   int64Ptr(7),
		WorkItemIDs: []int64{1, 2},
		Price:       floatPtr(450),
		Date:        "2026-09-15",
		Time:        "10:00",
		Address:     strPtr("Dostyk Ave 97"),
	}

	_, err := service.Create(context.Background(), 42, req)

	var verrs ValidationErrors
	assert.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 1)
	assert.Equal(t, CodePriceMismatch, verrs[0].Code)
	assert.Equal(t, 450.0, *verrs[0].SuppliedPrice)
	assert.Equal(t, 500.0, *verrs[0].ExpectedPrice)
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_NegativePrice(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalog)

	mockCatalog.On("GetServiceByID", mock.Anything, int64(7)).Return(cleaningService(), nil)
	mockCatalog.On("GetWorkItemsByIDs", mock.Anything, []int64{1, 2}).Return(cleaningItems(), nil)
	mockBookings.On("ExistsForSlot", mock.Anything, int64(42), int64(7), "2026-09-15", "10:00", (*int64)(nil)).
		Return(false, nil)

	service := NewService(mockBookings, mockCatalog)

	req := CreateBookingRequest{
		ServiceID:   int64Ptr(7),
		WorkItemIDs: []int64{1, 2},
		Price:       floatPtr(-0.01),
		Date:        "2026-09-15",
		Time:        "10:00",
		Address:     strPtr("Dostyk Ave 97"),
	}

	_, err := service.Create(context.Background(), 42, req)

	var verrs ValidationErrors
	assert.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 1)
	assert.Equal(t, CodeInvalidPrice, verrs[0].Code)
}

func TestService_Create_DuplicateSlot(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalog)

	mockCatalog.On("GetServiceByID", mock.Anything, int64(7)).Return(cleaningService(), nil)
	mockBookings.On("ExistsForSlot", mock.Anything, int64(42), int64(7), "2026-09-15", "10:00", (*int64)(nil)).
		Return(true, nil)

	service := NewService(mockBookings, mockCatalog)

	req := CreateBookingRequest{
		ServiceID: int64Ptr(7),
		Price:     floatPtr(100),
		Date:      "2026-09-15",
		Time:      "10:00",
		Address:   strPtr("Dostyk Ave 97"),
	}

	_, err := service.Create(context.Background(), 42, req)

	var verrs ValidationErrors
	assert.ErrorAs(t, err, &verrs)
	assert.Equal(t, CodeDuplicateBooking, verrs[0].Code)
	assert.Equal(t, "2026-09-15", verrs[0].Date)
	assert.Equal(t, "10:00", verrs[0].Time)
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_ServiceNotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalog)

	mockCatalog.On("GetServiceByID", mock.Anything, int64(404)).Return(nil, nil)

	service := NewService(mockBookings, mockCatalog)

	req := CreateBookingRequest{
		ServiceID: int64Ptr(404),
		Date:      "2026-09-15",
		Time:      "10:00",
	}

	_, err := service.Create(context.Background(), 42, req)

	var verrs ValidationErrors
	assert.ErrorAs(t, err, &verrs)
	assert.Equal(t, CodeServiceNotFound, verrs[0].Code)
	assert.Equal(t, "Service with ID 404 does not exist.", verrs[0].Message)
	mockBookings.AssertNotCalled(t, "ExistsForSlot",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Create_MissingWorkItemsCollected(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalog)

	mockCatalog.On("GetServiceByID", mock.Anything, int64(7)).Return(cleaningService(), nil)
	mockCatalog.On("GetWorkItemsByIDs", mock.Anything, []int64{1, 55, 56}).
		Return(cleaningItems()[:1], nil)

	service := NewService(mockBookings, mockCatalog)

	req := CreateBookingRequest{
		ServiceID:   int64Ptr(7),
		WorkItemIDs: []int64{1, 55, 56},
		Date:        "2026-09-15",
		Time:        "10:00",
	}

	_, err := service.Create(context.Background(), 42, req)

	var verrs ValidationErrors
	assert.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
	assert.Equal(t, CodeWorkItemNotFound, verrs[0].Code)
	assert.Equal(t, int64(55), *verrs[0].WorkItemID)
	assert.Equal(t, int64(56), *verrs[1].WorkItemID)
}

func TestService_Create_WorkItemFromOtherService(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalog)

	foreign := []domain.WorkItem{
		{ID: 3, ServiceID: int64Ptr(8), Name: "Faucet replacement", Price: 120},
	}
	mockCatalog.On("GetServiceByID", mock.Anything, int64(7)).Return(cleaningService(), nil)
	mockCatalog.On("GetWorkItemsByIDs", mock.Anything, []int64{3}).Return(foreign, nil)
	mockBookings.On("ExistsForSlot", mock.Anything, int64(42), int64(7), "2026-09-15", "10:00", (*int64)(nil)).
		Return(false, nil)

	service := NewService(mockBookings, mockCatalog)

	req := CreateBookingRequest{
		ServiceID:   int64Ptr(7),
		WorkItemIDs: []int64{3},
		Date:        "2026-09-15",
		Time:        "10:00",
		Address:     strPtr("Dostyk Ave 97"),
	}

	_, err := service.Create(context.Background(), 42, req)

	var verrs ValidationErrors
	assert.ErrorAs(t, err, &verrs)
	assert.Equal(t, CodeWorkItemServiceMismatch, verrs[0].Code)
	assert.Equal(t, `The work specification "Faucet replacement" does not belong to the chosen service.`,
		verrs[0].Message)
}

func TestService_Create_BlankAddress(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalog)

	service := NewService(mockBookings, mockCatalog)

	req := CreateBookingRequest{
		Price:   floatPtr(100),
		Date:    "2026-09-15",
		Time:    "10:00",
		Address: strPtr("   "),
	}

	_, err := service.Create(context.Background(), 42, req)

	var verrs ValidationErrors
	assert.ErrorAs(t, err, &verrs)
	assert.Equal(t, CodeEmptyAddress, verrs[0].Code)
}

func TestService_Create_MultipleFailuresCollected(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalog)

	mockCatalog.On("GetServiceByID", mock.Anything, int64(7)).Return(cleaningService(), nil)
	mockCatalog.On("GetWorkItemsByIDs", mock.Anything, []int64{1, 2}).Return(cleaningItems(), nil)
	mockBookings.On("ExistsForSlot", mock.Anything, int64(42), int64(7), "2026-09-15", "10:00", (*int64)(nil)).
		Return(true, nil)

	service := NewService(mockBookings, mockCatalog)

	req := CreateBookingRequest{
		ServiceID:   int64Ptr(7),
		WorkItemIDs: []int64{1, 2},
		Price:       floatPtr(999),
		Date:        "2026-09-15",
		Time:        "10:00",
		Address:     strPtr(""),
	}

	_, err := service.Create(context.Background(), 42, req)

	var verrs ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	codes := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		codes = append(codes, fe.Code)
	}
	assert.Contains(t, codes, CodeDuplicateBooking)
	assert.Contains(t, codes, CodePriceMismatch)
	assert.Contains(t, codes, CodeEmptyAddress)
}

func TestService_Create_InvalidDateFormat(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockCatalog))

	req := CreateBookingRequest{Date: "15-09-2026", Time: "10:00"}
	_, err := service.Create(context.Background(), 42, req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = CreateBookingRequest{Date: "2026-09-15", Time: "25:61"}
	_, err = service.Create(context.Background(), 42, req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Create_SecondsTrimmedFromTime(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalog)

	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockBookings.On("GetByID", mock.Anything, int64(999)).Return(nil, nil)

	service := NewService(mockBookings, mockCatalog)

	req := CreateBookingRequest{
		Price:   floatPtr(100),
		Date:    "2026-09-15",
		Time:    "10:00:00",
		Address: strPtr("Dostyk Ave 97"),
	}

	b, err := service.Create(context.Background(), 42, req)

	assert.NoError(t, err)
	assert.Equal(t, "10:00", b.Time)
}

func TestService_Update_MergesOverStoredBooking(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalog)

	stored := &domain.Booking{
		ID:        5,
		UserID:    42,
		ServiceID: int64Ptr(7),
		WorkItems: cleaningItems(),
		Price:     150,
		Date:      "2026-09-15",
		Time:      "10:00",
		Address:   "Dostyk Ave 97",
		Editable:  true,
		Status:    domain.BookingScheduled,
	}
	mockBookings.On("GetEditable", mock.Anything, int64(5), int64(42)).Return(stored, nil)
	mockBookings.On("ExistsForSlot", mock.Anything, int64(42), int64(7), "2026-09-16", "10:00", int64Ptr(5)).
		Return(false, nil)
	mockBookings.On("Update", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Date == "2026-09-16" && b.Time == "10:00" && b.Price == 150 && len(b.WorkItems) == 2
	})).Return(nil)
	mockBookings.On("GetByID", mock.Anything, int64(5)).Return(nil, nil)

	service := NewService(mockBookings, mockCatalog)

	// Only the date changes; work items and price carry over.
	b, err := service.Update(context.Background(), 42, 5, UpdateBookingRequest{
		Date: strPtr("2026-09-16"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "2026-09-16", b.Date)
	assert.Equal(t, 150.0, b.Price)
	mockCatalog.AssertNotCalled(t, "GetServiceByID", mock.Anything, mock.Anything)
}

func TestService_Update_ExcludesSelfFromDuplicateCheck(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalog)

	stored := &domain.Booking{
		ID:        5,
		UserID:    42,
		ServiceID: int64Ptr(7),
		Price:     150,
		Date:      "2026-09-15",
		Time:      "10:00",
		Address:   "Dostyk Ave 97",
		Editable:  true,
		Status:    domain.BookingScheduled,
	}
	mockBookings.On("GetEditable", mock.Anything, int64(5), int64(42)).Return(stored, nil)
	mockBookings.On("ExistsForSlot", mock.Anything, int64(42), int64(7), "2026-09-15", "10:00", int64Ptr(5)).
		Return(false, nil)
	mockBookings.On("Update", mock.Anything, mock.Anything).Return(nil)
	mockBookings.On("GetByID", mock.Anything, int64(5)).Return(nil, nil)

	service := NewService(mockBookings, mockCatalog)

	// Resubmitting the unchanged slot must not trip the duplicate check.
	_, err := service.Update(context.Background(), 42, 5, UpdateBookingRequest{
		Address: strPtr("Abay Ave 10"),
	})

	assert.NoError(t, err)
	mockBookings.AssertExpectations(t)
}

func TestService_Update_NotEditable(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalog)

	mockBookings.On("GetEditable", mock.Anything, int64(5), int64(42)).Return(nil, nil)

	service := NewService(mockBookings, mockCatalog)

	_, err := service.Update(context.Background(), 42, 5, UpdateBookingRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete_NotOwned(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalog)

	mockBookings.On("Delete", mock.Anything, int64(5), int64(42)).Return(false, nil)

	service := NewService(mockBookings, mockCatalog)

	err := service.Delete(context.Background(), 42, 5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPriceEqual_CentPrecision(t *testing.T) {
	assert.True(t, priceEqual(0.1+0.2, 0.3))
	assert.True(t, priceEqual(150.004, 150.0))
	assert.False(t, priceEqual(150.01, 150.0))
}
