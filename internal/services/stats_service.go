package services

import (
	"math"
	"time"

	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/internal/services/dto"
)

// StatsService owns the derived statistics: rating averages and
// learning streaks. Rating recomputes always re-scan the full set of
// rated completed bookings instead of maintaining a running average,
// so a transient race between two submissions is corrected by the
// next recompute.
type StatsService interface {
	RecomputeMentorRating(mentorID string) error
	RecomputeMenteeRating(menteeID string) error
	Streak(menteeID string) (dto.StreakResponse, error)
}

type statsService struct {
	bookingRepo repositories.BookingRepository
	userRepo    repositories.UserRepository

	// now is injectable so streak tests can pin "today".
	now func() time.Time
}

func NewStatsService(bookingRepo repositories.BookingRepository, userRepo repositories.UserRepository) StatsService {
	return &statsService{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		now:         time.Now,
	}
}

func (s *statsService) RecomputeMentorRating(mentorID string) error {
	bookings, err := s.bookingRepo.FindRatedCompletedByMentor(mentorID)
	if err != nil {
		return err
	}
	return s.userRepo.UpdateMentorRating(mentorID, averageRating(bookings), len(bookings))
}

func (s *statsService) RecomputeMenteeRating(menteeID string) error {
	bookings, err := s.bookingRepo.FindRatedCompletedByMentee(menteeID)
	if err != nil {
		return err
	}
	return s.userRepo.UpdateMenteeRating(menteeID, averageRating(bookings), len(bookings))
}

// averageRating returns the mean rating rounded to one decimal, or 0
// when no rated bookings exist.
func averageRating(bookings []models.Booking) float64 {
	if len(bookings) == 0 {
		return 0
	}
	sum := 0
	for _, b := range bookings {
		if b.Rating != nil {
			sum += *b.Rating
		}
	}
	average := float64(sum) / float64(len(bookings))
	return math.Round(average*10) / 10
}

// Streak walks the mentee's completed bookings in date order and
// counts weekly runs: a gap of exactly 7 days extends the run, a gap
// under 7 days stays in the same week, a gap over 7 days breaks it.
// The current streak only counts if the latest session is within 7
// days of today.
func (s *statsService) Streak(menteeID string) (dto.StreakResponse, error) {
	bookings, err := s.bookingRepo.FindCompletedByMenteeAsc(menteeID)
	if err != nil {
		return dto.StreakResponse{}, err
	}
	if len(bookings) == 0 {
		return dto.StreakResponse{CurrentStreak: 0, LongestStreak: 0}, nil
	}

	days := make([]time.Time, len(bookings))
	for i, b := range bookings {
		days[i] = truncateToDay(b.Date)
	}

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		gap := daysBetween(days[i-1], days[i])
		switch {
		case gap == 7:
			run++
		case gap < 7:
			// Same week, the run holds.
		default:
			if run > longest {
				longest = run
			}
			run = 1
		}
	}
	if run > longest {
		longest = run
	}

	current := 0
	today := truncateToDay(s.now())
	if daysBetween(days[len(days)-1], today) <= 7 {
		current = run
	}

	return dto.StreakResponse{CurrentStreak: current, LongestStreak: longest}, nil
}

func truncateToDay(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}
