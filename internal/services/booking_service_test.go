package services

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/pkg/apperrors"
)

func newBookingTestEnv(t *testing.T) (*fakeBookingRepo, *fakeUserRepo, *fakeNotifier, BookingService) {
	t.Helper()
	bookingRepo := newFakeBookingRepo()
	userRepo := newFakeUserRepo()
	notifier := &fakeNotifier{}
	stats := NewStatsService(bookingRepo, userRepo)
	svc := NewBookingService(bookingRepo, userRepo, stats, notifier)
	return bookingRepo, userRepo, notifier, svc
}

func seedMentor(userRepo *fakeUserRepo, id string) *models.User {
	return userRepo.add(&models.User{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Mentor " + id,
		Email:     id + "@example.com",
		Role:      models.UserRoleMentor,
		Status:    models.UserStatusActive,
	})
}

func seedMentee(userRepo *fakeUserRepo, id string) *models.User {
	return userRepo.add(&models.User{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Mentee " + id,
		Email:     id + "@example.com",
		Role:      models.UserRoleStudent,
		Status:    models.UserStatusActive,
	})
}

func seedBooking(bookingRepo *fakeBookingRepo, id, menteeID, mentorID, duration string, status models.BookingStatus) *models.Booking {
	return bookingRepo.add(&models.Booking{
		BaseModel: models.BaseModel{ID: id},
		UserID:    menteeID,
		MentorID:  mentorID,
		Duration:  duration,
		Date:      time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		Status:    status,
	})
}

func TestParseDurationHours(t *testing.T) {
	tests := []struct {
		duration string
		want     float64
	}{
		{"1 hour", 1},
		{"2 hours", 2},
		{"3hour", 3},
		{"hour", 1},          // no integer, hour default
		{"60min", 1},
		{"90 min", 1.5},
		{"30 minutes", 0.5},
		{"min", 0.5},         // no integer, minute default
		{"a while", 0},
		{"", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseDurationHours(tt.duration), "duration %q", tt.duration)
	}
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	bookingRepo, userRepo, _, svc := newBookingTestEnv(t)
	seedMentor(userRepo, "mentor-1")
	seedMentee(userRepo, "mentee-1")
	seedBooking(bookingRepo, "b1", "mentee-1", "mentor-1", "1 hour", models.BookingStatusPending)

	_, err := svc.UpdateStatus("b1", "archived")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)

	// Booking must be untouched.
	booking, findErr := bookingRepo.FindByID("b1")
	require.NoError(t, findErr)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
}

func TestCompletionAppliesStatsOnce(t *testing.T) {
	bookingRepo, userRepo, _, svc := newBookingTestEnv(t)
	mentor := seedMentor(userRepo, "mentor-1")
	mentee := seedMentee(userRepo, "mentee-1")
	seedBooking(bookingRepo, "b1", "mentee-1", "mentor-1", "2 hours", models.BookingStatusConfirmed)

	_, err := svc.UpdateStatus("b1", "completed")
	require.NoError(t, err)

	assert.Equal(t, 1, mentee.Mentee.CompletedSessions)
	assert.Equal(t, 2.0, mentee.Mentee.HoursLearned)
	assert.Equal(t, 1, mentor.Mentor.TotalSessions)
	assert.Equal(t, 1, mentor.Mentor.ActiveStudents)
	assert.Equal(t, 1, mentee.Mentee.ActiveMentors)

	// Completing an already completed booking must not double count.
	_, err = svc.UpdateStatus("b1", "completed")
	require.NoError(t, err)

	assert.Equal(t, 1, mentee.Mentee.CompletedSessions)
	assert.Equal(t, 2.0, mentee.Mentee.HoursLearned)
	assert.Equal(t, 1, mentor.Mentor.TotalSessions)
}

func TestCompletionAddsMinuteDurations(t *testing.T) {
	bookingRepo, userRepo, _, svc := newBookingTestEnv(t)
	seedMentor(userRepo, "mentor-1")
	mentee := seedMentee(userRepo, "mentee-1")
	seedBooking(bookingRepo, "b1", "mentee-1", "mentor-1", "90min", models.BookingStatusConfirmed)

	_, err := svc.UpdateStatus("b1", "completed")
	require.NoError(t, err)

	assert.Equal(t, 1.5, mentee.Mentee.HoursLearned)
}

func TestCompletionNotifiesMentee(t *testing.T) {
	bookingRepo, userRepo, notifier, svc := newBookingTestEnv(t)
	seedMentor(userRepo, "mentor-1")
	seedMentee(userRepo, "mentee-1")
	seedBooking(bookingRepo, "b1", "mentee-1", "mentor-1", "1 hour", models.BookingStatusPending)

	_, err := svc.UpdateStatus("b1", "confirmed")
	require.NoError(t, err)

	require.Len(t, notifier.events, 1)
	assert.Equal(t, "mentee-1@example.com", notifier.events[0].Email)
	assert.Equal(t, EventBookingStatusUpdated, notifier.events[0].Type)
}

func TestCreateNotifiesMentor(t *testing.T) {
	_, userRepo, notifier, svc := newBookingTestEnv(t)
	seedMentor(userRepo, "mentor-1")
	seedMentee(userRepo, "mentee-1")

	booking, err := svc.Create("mentee-1", dto.CreateBookingRequest{
		MentorID:    "mentor-1",
		SessionType: "code review",
		Duration:    "1 hour",
		Date:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Equal(t, "Mentor mentor-1", booking.MentorName)

	require.Len(t, notifier.events, 1)
	assert.Equal(t, "mentor-1@example.com", notifier.events[0].Email)
	assert.Equal(t, EventNewSessionRequest, notifier.events[0].Type)
}

func TestRateRequiresOwnership(t *testing.T) {
	bookingRepo, userRepo, _, svc := newBookingTestEnv(t)
	seedMentor(userRepo, "mentor-1")
	seedMentee(userRepo, "mentee-1")
	seedMentee(userRepo, "mentee-2")
	seedBooking(bookingRepo, "b1", "mentee-1", "mentor-1", "1 hour", models.BookingStatusCompleted)

	_, err := svc.Rate("mentee-2", "b1", dto.RateBookingRequest{Rating: 5})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode)
}

func TestRateRejectsIncompleteBooking(t *testing.T) {
	bookingRepo, userRepo, _, svc := newBookingTestEnv(t)
	seedMentor(userRepo, "mentor-1")
	seedMentee(userRepo, "mentee-1")
	seedBooking(bookingRepo, "b1", "mentee-1", "mentor-1", "1 hour", models.BookingStatusPending)

	_, err := svc.Rate("mentee-1", "b1", dto.RateBookingRequest{Rating: 4})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
}

func TestRateRejectsOutOfRangeRating(t *testing.T) {
	bookingRepo, userRepo, _, svc := newBookingTestEnv(t)
	seedMentor(userRepo, "mentor-1")
	seedMentee(userRepo, "mentee-1")
	seedBooking(bookingRepo, "b1", "mentee-1", "mentor-1", "1 hour", models.BookingStatusCompleted)

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Rate("mentee-1", "b1", dto.RateBookingRequest{Rating: rating})
		require.Error(t, err, "rating %d", rating)

		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	}
}

func TestRateOnlyOnce(t *testing.T) {
	bookingRepo, userRepo, _, svc := newBookingTestEnv(t)
	seedMentor(userRepo, "mentor-1")
	seedMentee(userRepo, "mentee-1")
	seedBooking(bookingRepo, "b1", "mentee-1", "mentor-1", "1 hour", models.BookingStatusCompleted)

	_, err := svc.Rate("mentee-1", "b1", dto.RateBookingRequest{Rating: 5})
	require.NoError(t, err)

	_, err = svc.Rate("mentee-1", "b1", dto.RateBookingRequest{Rating: 3})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode)
}

func TestRateRecomputesAverages(t *testing.T) {
	bookingRepo, userRepo, _, svc := newBookingTestEnv(t)
	mentor := seedMentor(userRepo, "mentor-1")
	mentee := seedMentee(userRepo, "mentee-1")

	ratings := []int{5, 4}
	for i, rating := range ratings {
		id := string(rune('a' + i))
		b := seedBooking(bookingRepo, id, "mentee-1", "mentor-1", "1 hour", models.BookingStatusCompleted)
		r := rating
		b.Rating = &r
	}
	seedBooking(bookingRepo, "fresh", "mentee-1", "mentor-1", "1 hour", models.BookingStatusCompleted)

	_, err := svc.Rate("mentee-1", "fresh", dto.RateBookingRequest{Rating: 3, Review: "solid"})
	require.NoError(t, err)

	// {5, 4, 3} -> 4.0 over three reviews, on both profiles.
	assert.Equal(t, 4.0, mentor.Mentor.AverageRating)
	assert.Equal(t, 3, mentor.Mentor.TotalReviews)
	assert.Equal(t, 4.0, mentee.Mentee.AverageRating)
	assert.Equal(t, 3, mentee.Mentee.TotalReviews)
}
