package booking

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"homeserve/internal/database"
	"homeserve/internal/domain"
	"homeserve/internal/middleware"
	jwtsvc "homeserve/internal/pkg/jwt"
	"homeserve/internal/repository"
)

type bookingResponse struct {
	Data domain.Booking `json:"data"`
}

type bookingErrorResponse struct {
	Error struct {
		Code    string       `json:"code"`
		Message string       `json:"message"`
		Details []FieldError `json:"details"`
	} `json:"error"`
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB, *jwtsvc.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	bookingRepo := repository.NewBookingRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	handler := NewHandler(NewService(bookingRepo, catalogRepo))

	j := jwtsvc.New("test-secret", time.Hour)

	router := gin.New()
	protected := router.Group("/api/v1")
	protected.Use(middleware.Auth(j))
	handler.RegisterRoutes(protected)

	return router, db, j
}

func authToken(t *testing.T, j *jwtsvc.Service, userID int64) string {
	t.Helper()
	token, err := j.GenerateToken(userID, "tester")
	require.NoError(t, err)
	return token
}

func performRequest(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func seedService(t *testing.T, db *gorm.DB) domain.Service {
	t.Helper()
	svc := domain.Service{
		Category: domain.CategoryCleaning,
		Title:    "Apartment Cleaning",
		Location: "Almaty",
		WorkItems: []domain.WorkItem{
			{Name: "Kitchen cleaning", Price: 100},
			{Name: "Bathroom cleaning", Price: 50},
		},
	}
	require.NoError(t, db.Create(&svc).Error)
	return svc
}

func workItemIDs(svc domain.Service) []int64 {
	ids := make([]int64, 0, len(svc.WorkItems))
	for _, w := range svc.WorkItems {
		ids = append(ids, w.ID)
	}
	return ids
}

func TestCreateBooking(t *testing.T) {
	router, db, j := setupRouter(t)
	svc := seedService(t, db)

	req := CreateBookingRequest{
		ServiceID:   &svc.ID,
		WorkItemIDs: workItemIDs(svc),
		Date:        "2026-09-15",
		Time:        "10:00",
		Address:     strPtr("Dostyk Ave 97"),
	}

	resp := performRequest(router, http.MethodPost, "/api/v1/bookings", req, authToken(t, j, 1))
	require.Equal(t, http.StatusCreated, resp.Code)

	var payload bookingResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, 150.0, payload.Data.Price)
	require.True(t, payload.Data.Editable)
	require.Equal(t, domain.BookingScheduled, payload.Data.Status)
	require.Len(t, payload.Data.WorkItems, 2)

	var stored domain.Booking
	require.NoError(t, db.First(&stored, payload.Data.ID).Error)
	require.Equal(t, "2026-09-15", stored.Date)
	require.Equal(t, "10:00", stored.Time)
}

func TestCreateBooking_DuplicateRejected(t *testing.T) {
	router, db, j := setupRouter(t)
	svc := seedService(t, db)
	token := authToken(t, j, 1)

	req := CreateBookingRequest{
		ServiceID:   &svc.ID,
		WorkItemIDs: workItemIDs(svc),
		Date:        "2026-09-15",
		Time:        "10:00",
		Address:     strPtr("Dostyk Ave 97"),
	}

	resp := performRequest(router, http.MethodPost, "/api/v1/bookings", req, token)
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = performRequest(router, http.MethodPost, "/api/v1/bookings", req, token)
	require.Equal(t, http.StatusBadRequest, resp.Code)

	var payload bookingErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "VALIDATION_ERROR", payload.Error.Code)
	require.Len(t, payload.Error.Details, 1)
	require.Equal(t, CodeDuplicateBooking, payload.Error.Details[0].Code)
}

func TestCreateBooking_SlotConflictAcrossUsers(t *testing.T) {
	router, db, j := setupRouter(t)
	svc := seedService(t, db)

	req := CreateBookingRequest{
		ServiceID:   &svc.ID,
		WorkItemIDs: workItemIDs(svc),
		Date:        "2026-09-15",
		Time:        "10:00",
		Address:     strPtr("Dostyk Ave 97"),
	}

	resp := performRequest(router, http.MethodPost, "/api/v1/bookings", req, authToken(t, j, 1))
	require.Equal(t, http.StatusCreated, resp.Code)

	// The per-user duplicate check does not see the other user's booking;
	// the unique slot index catches the collision at write time.
	resp = performRequest(router, http.MethodPost, "/api/v1/bookings", req, authToken(t, j, 2))
	require.Equal(t, http.StatusConflict, resp.Code)

	var payload bookingErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "SLOT_CONFLICT", payload.Error.Code)
}

func TestCreateBooking_PriceMismatchDetails(t *testing.T) {
	router, db, j := setupRouter(t)
	svc := seedService(t, db)

	req := CreateBookingRequest{
		ServiceID:   &svc.ID,
		WorkItemIDs: workItemIDs(svc),
		Price:       floatPtr(450),
		Date:        "2026-09-15",
		Time:        "10:00",
		Address:     strPtr("Dostyk Ave 97"),
	}

	resp := performRequest(router, http.MethodPost, "/api/v1/bookings", req, authToken(t, j, 1))
	require.Equal(t, http.StatusBadRequest, resp.Code)

	var payload bookingErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, CodePriceMismatch, payload.Error.Details[0].Code)
	require.Equal(t, 450.0, *payload.Error.Details[0].SuppliedPrice)
	require.Equal(t, 150.0, *payload.Error.Details[0].ExpectedPrice)
}

func TestUpdateBooking_CompletedUnreachable(t *testing.T) {
	router, db, j := setupRouter(t)
	svc := seedService(t, db)

	done := domain.Booking{
		UserID:    1,
		ServiceID: &svc.ID,
		Price:     150,
		Date:      "2026-09-10",
		Time:      "09:00",
		Address:   "Dostyk Ave 97",
		Editable:  true,
		Status:    domain.BookingCompleted,
	}
	require.NoError(t, db.Create(&done).Error)

	resp := performRequest(router, http.MethodPut, "/api/v1/bookings/1",
		UpdateBookingRequest{Address: strPtr("Abay Ave 10")}, authToken(t, j, 1))
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDeleteBooking_OtherUsersBookingUnreachable(t *testing.T) {
	router, db, j := setupRouter(t)
	svc := seedService(t, db)

	b := domain.Booking{
		UserID:    1,
		ServiceID: &svc.ID,
		Price:     150,
		Date:      "2026-09-15",
		Time:      "10:00",
		Address:   "Dostyk Ave 97",
		Editable:  true,
		Status:    domain.BookingScheduled,
	}
	require.NoError(t, db.Create(&b).Error)

	resp := performRequest(router, http.MethodDelete, "/api/v1/bookings/1", nil, authToken(t, j, 2))
	require.Equal(t, http.StatusNotFound, resp.Code)

	resp = performRequest(router, http.MethodDelete, "/api/v1/bookings/1", nil, authToken(t, j, 1))
	require.Equal(t, http.StatusOK, resp.Code)

	var count int64
	require.NoError(t, db.Model(&domain.Booking{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestUpdateBooking_SameSlotResubmission(t *testing.T) {
	router, db, j := setupRouter(t)
	svc := seedService(t, db)
	token := authToken(t, j, 1)

	create := CreateBookingRequest{
		ServiceID:   &svc.ID,
		WorkItemIDs: workItemIDs(svc),
		Date:        "2026-09-15",
		Time:        "10:00",
		Address:     strPtr("Dostyk Ave 97"),
	}
	resp := performRequest(router, http.MethodPost, "/api/v1/bookings", create, token)
	require.Equal(t, http.StatusCreated, resp.Code)

	var created bookingResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	// Changing only the address keeps slot, work items and price intact.
	resp = performRequest(router, http.MethodPut,
		"/api/v1/bookings/"+itoa(created.Data.ID),
		UpdateBookingRequest{Address: strPtr("Abay Ave 10")}, token)
	require.Equal(t, http.StatusOK, resp.Code)

	var updated bookingResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	require.Equal(t, "Abay Ave 10", updated.Data.Address)
	require.Equal(t, 150.0, updated.Data.Price)
	require.Len(t, updated.Data.WorkItems, 2)
}

func TestListBookings_ScopedToUser(t *testing.T) {
	router, db, j := setupRouter(t)
	svc := seedService(t, db)

	for i, userID := range []int64{1, 1, 2} {
		b := domain.Booking{
			UserID:    userID,
			ServiceID: &svc.ID,
			Price:     150,
			Date:      "2026-09-15",
			Time:      []string{"08:00", "09:00", "10:00"}[i],
			Address:   "Dostyk Ave 97",
			Editable:  true,
			Status:    domain.BookingScheduled,
		}
		require.NoError(t, db.Create(&b).Error)
	}

	resp := performRequest(router, http.MethodGet, "/api/v1/bookings/my", nil, authToken(t, j, 1))
	require.Equal(t, http.StatusOK, resp.Code)

	var payload struct {
		Data []domain.Booking `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Len(t, payload.Data, 2)
}

func TestBookingRoutes_RequireAuth(t *testing.T) {
	router, _, _ := setupRouter(t)

	resp := performRequest(router, http.MethodGet, "/api/v1/bookings/my", nil, "")
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
