package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorhub_backend/internal/models"
)

func newStreakEnv(now time.Time) (*fakeBookingRepo, *statsService) {
	bookingRepo := newFakeBookingRepo()
	svc := &statsService{
		bookingRepo: bookingRepo,
		userRepo:    newFakeUserRepo(),
		now:         func() time.Time { return now },
	}
	return bookingRepo, svc
}

func completedOn(bookingRepo *fakeBookingRepo, id string, date time.Time) {
	bookingRepo.add(&models.Booking{
		BaseModel: models.BaseModel{ID: id},
		UserID:    "mentee-1",
		MentorID:  "mentor-1",
		Date:      date,
		Status:    models.BookingStatusCompleted,
	})
}

func TestStreakNoSessions(t *testing.T) {
	_, svc := newStreakEnv(time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC))

	streak, err := svc.Streak("mentee-1")
	require.NoError(t, err)
	assert.Equal(t, 0, streak.CurrentStreak)
	assert.Equal(t, 0, streak.LongestStreak)
}

func TestStreakExactWeeklySessions(t *testing.T) {
	base := time.Date(2026, 8, 3, 10, 30, 0, 0, time.UTC)
	bookingRepo, svc := newStreakEnv(base.AddDate(0, 0, 15))

	// Days 0, 7, 14: three sessions exactly a week apart.
	completedOn(bookingRepo, "b1", base)
	completedOn(bookingRepo, "b2", base.AddDate(0, 0, 7))
	completedOn(bookingRepo, "b3", base.AddDate(0, 0, 14))

	streak, err := svc.Streak("mentee-1")
	require.NoError(t, err)
	assert.Equal(t, 3, streak.CurrentStreak)
	assert.Equal(t, 3, streak.LongestStreak)
}

func TestStreakBrokenByLongGap(t *testing.T) {
	base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	// Today is day 28, more than a week after the last session.
	bookingRepo, svc := newStreakEnv(base.AddDate(0, 0, 28))

	completedOn(bookingRepo, "b1", base)
	completedOn(bookingRepo, "b2", base.AddDate(0, 0, 20))

	streak, err := svc.Streak("mentee-1")
	require.NoError(t, err)
	assert.Equal(t, 0, streak.CurrentStreak)
	assert.Equal(t, 1, streak.LongestStreak)
}

func TestStreakHoldsWithinSameWeek(t *testing.T) {
	base := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	bookingRepo, svc := newStreakEnv(base.AddDate(0, 0, 12))

	// Two sessions three days apart count as one streak unit; the
	// session exactly a week after the second extends the run.
	completedOn(bookingRepo, "b1", base)
	completedOn(bookingRepo, "b2", base.AddDate(0, 0, 3))
	completedOn(bookingRepo, "b3", base.AddDate(0, 0, 10))

	streak, err := svc.Streak("mentee-1")
	require.NoError(t, err)
	assert.Equal(t, 2, streak.CurrentStreak)
	assert.Equal(t, 2, streak.LongestStreak)
}

func TestStreakCurrentRequiresRecentSession(t *testing.T) {
	base := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	bookingRepo, svc := newStreakEnv(base.AddDate(0, 0, 30))

	completedOn(bookingRepo, "b1", base)
	completedOn(bookingRepo, "b2", base.AddDate(0, 0, 7))
	completedOn(bookingRepo, "b3", base.AddDate(0, 0, 14))

	streak, err := svc.Streak("mentee-1")
	require.NoError(t, err)
	assert.Equal(t, 0, streak.CurrentStreak)
	assert.Equal(t, 3, streak.LongestStreak)
}

func TestAverageRatingRounding(t *testing.T) {
	rate := func(n int) *int { return &n }
	bookings := []models.Booking{
		{Rating: rate(5)},
		{Rating: rate(4)},
		{Rating: rate(4)},
	}
	// 13/3 = 4.333... -> 4.3
	assert.Equal(t, 4.3, averageRating(bookings))
	assert.Equal(t, 0.0, averageRating(nil))
}

func TestRecomputeMentorRatingEmptySet(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	userRepo := newFakeUserRepo()
	mentor := seedMentor(userRepo, "mentor-1")
	mentor.Mentor.AverageRating = 4.5
	mentor.Mentor.TotalReviews = 9

	svc := NewStatsService(bookingRepo, userRepo)
	require.NoError(t, svc.RecomputeMentorRating("mentor-1"))

	// No rated completed bookings: the average resets to zero.
	assert.Equal(t, 0.0, mentor.Mentor.AverageRating)
	assert.Equal(t, 0, mentor.Mentor.TotalReviews)
}
