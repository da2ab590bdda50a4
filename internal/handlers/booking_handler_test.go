package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorhub_backend/internal/middleware"
	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/services"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/internal/validator"
	"mentorhub_backend/pkg/apperrors"
)

// stubBookingService returns canned values so the HTTP layer can be
// tested without repositories.
type stubBookingService struct {
	booking *models.Booking
	err     error

	lastStatus string
	lastRating int
}

func (s *stubBookingService) Create(string, dto.CreateBookingRequest) (*models.Booking, error) {
	return s.booking, s.err
}

func (s *stubBookingService) GetByID(string, string) (*models.Booking, error) {
	return s.booking, s.err
}

func (s *stubBookingService) ListForUser(string) ([]models.Booking, error) {
	return nil, s.err
}

func (s *stubBookingService) Update(string, string, dto.UpdateBookingRequest) (*models.Booking, error) {
	return s.booking, s.err
}

func (s *stubBookingService) UpdateStatus(_ string, status string) (*models.Booking, error) {
	s.lastStatus = status
	if !models.BookingStatus(status).IsValid() {
		return nil, apperrors.ErrInvalidStatus("booking", "Unknown booking status: "+status)
	}
	return s.booking, s.err
}

func (s *stubBookingService) Rate(_ string, _ string, req dto.RateBookingRequest) (*models.Booking, error) {
	s.lastRating = req.Rating
	return s.booking, s.err
}

func (s *stubBookingService) Delete(string, string) error {
	return s.err
}

var _ services.BookingService = (*stubBookingService)(nil)

func newBookingRouter(svc services.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	// Stand-in for the auth middleware.
	router.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, "mentee-1")
	})

	handler := NewBookingHandler(NewBaseHandler(validator.New()), svc)
	router.PATCH("/bookings/:id/status", handler.UpdateStatus)
	router.POST("/bookings/:id/rate", handler.Rate)
	return router
}

func patchStatus(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPatch, "/bookings/b1/status", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestUpdateStatusEndpointAcceptsEnumValue(t *testing.T) {
	stub := &stubBookingService{booking: &models.Booking{
		BaseModel: models.BaseModel{ID: "b1"},
		Status:    models.BookingStatusConfirmed,
	}}
	router := newBookingRouter(stub)

	rec := patchStatus(t, router, gin.H{"status": "confirmed"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "confirmed", stub.lastStatus)
}

func TestUpdateStatusEndpointRejectsUnknownValue(t *testing.T) {
	stub := &stubBookingService{}
	router := newBookingRouter(stub)

	rec := patchStatus(t, router, gin.H{"status": "archived"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, apperrors.CodeInvalidStatus, resp.Error.Code)
}

func TestUpdateStatusEndpointRequiresStatusField(t *testing.T) {
	stub := &stubBookingService{}
	router := newBookingRouter(stub)

	rec := patchStatus(t, router, gin.H{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// The service must never see the request.
	assert.Empty(t, stub.lastStatus)
}

func TestRateEndpointRendersForbidden(t *testing.T) {
	stub := &stubBookingService{err: apperrors.ErrNotBookingOwner}
	router := newBookingRouter(stub)

	payload, _ := json.Marshal(gin.H{"rating": 5})
	req := httptest.NewRequest(http.MethodPost, "/bookings/b1/rate", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, 5, stub.lastRating)
}
