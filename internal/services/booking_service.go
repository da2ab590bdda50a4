package services

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"mentorhub_backend/internal/logger"
	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/pkg/apperrors"
)

// BookingService drives the session lifecycle: creation by a mentee,
// status transitions, the one-time completion side effects and rating
// submission.
type BookingService interface {
	Create(menteeID string, req dto.CreateBookingRequest) (*models.Booking, error)
	GetByID(userID, bookingID string) (*models.Booking, error)
	ListForUser(userID string) ([]models.Booking, error)
	Update(userID, bookingID string, req dto.UpdateBookingRequest) (*models.Booking, error)
	UpdateStatus(bookingID, status string) (*models.Booking, error)
	Rate(menteeID, bookingID string, req dto.RateBookingRequest) (*models.Booking, error)
	Delete(userID, bookingID string) error
}

type bookingService struct {
	bookingRepo repositories.BookingRepository
	userRepo    repositories.UserRepository
	stats       StatsService
	notifier    Notifier
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	userRepo repositories.UserRepository,
	stats StatsService,
	notifier Notifier,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		stats:       stats,
		notifier:    notifier,
	}
}

func (s *bookingService) Create(menteeID string, req dto.CreateBookingRequest) (*models.Booking, error) {
	mentor, err := s.userRepo.FindByID(req.MentorID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if mentor.Role != models.UserRoleMentor {
		return nil, apperrors.ErrInvalidUserRole
	}

	topics, _ := json.Marshal(req.Topics)
	booking := &models.Booking{
		UserID:      menteeID,
		MentorID:    mentor.ID,
		MentorName:  mentor.Name,
		SessionType: req.SessionType,
		Duration:    req.Duration,
		Date:        req.Date,
		Time:        req.Time,
		Status:      models.BookingStatusPending,
		Cost:        req.Cost,
		Topics:      topics,
	}
	if err := s.bookingRepo.Create(booking); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if mentee, err := s.userRepo.FindByID(menteeID); err == nil {
		s.notifier.SendToUser(mentor.Email, EventNewSessionRequest, dto.SessionRequestEvent{
			BookingID:   booking.ID,
			MenteeID:    mentee.ID,
			MenteeName:  mentee.Name,
			SessionType: booking.SessionType,
			Date:        booking.Date,
		})
	}

	return booking, nil
}

func (s *bookingService) GetByID(userID, bookingID string) (*models.Booking, error) {
	booking, err := s.findBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID && booking.MentorID != userID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return booking, nil
}

// ListForUser returns the user's bookings from whichever side of the
// table they sit on.
func (s *bookingService) ListForUser(userID string) ([]models.Booking, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	var bookings []models.Booking
	if user.Role == models.UserRoleMentor {
		bookings, err = s.bookingRepo.FindByMentor(userID)
	} else {
		bookings, err = s.bookingRepo.FindByMentee(userID)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return bookings, nil
}

func (s *bookingService) Update(userID, bookingID string, req dto.UpdateBookingRequest) (*models.Booking, error) {
	booking, err := s.findBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if booking.Status.IsTerminal() {
		return nil, apperrors.ErrInvalidOperation("booking", "Cannot modify a cancelled or completed booking")
	}

	if req.SessionType != nil {
		booking.SessionType = *req.SessionType
	}
	if req.Duration != nil {
		booking.Duration = *req.Duration
	}
	if req.Date != nil {
		booking.Date = *req.Date
	}
	if req.Time != nil {
		booking.Time = *req.Time
	}
	if req.Topics != nil {
		topics, _ := json.Marshal(req.Topics)
		booking.Topics = topics
	}

	if err := s.bookingRepo.Update(booking); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return booking, nil
}

// UpdateStatus persists a lifecycle transition. Any value outside the
// status enum is rejected before the database is touched. Moving from
// a non-completed state into completed fires the stat side effects
// exactly once; the guard is the previous status, so re-completing an
// already completed booking changes nothing.
func (s *bookingService) UpdateStatus(bookingID, status string) (*models.Booking, error) {
	newStatus := models.BookingStatus(status)
	if !newStatus.IsValid() {
		return nil, apperrors.ErrInvalidStatus("booking", "Unknown booking status: "+status)
	}

	booking, err := s.findBooking(bookingID)
	if err != nil {
		return nil, err
	}

	previous := booking.Status
	if err := s.bookingRepo.UpdateStatus(booking.ID, newStatus); err != nil {
		return nil, apperrors.InternalError(err)
	}
	booking.Status = newStatus

	if previous != models.BookingStatusCompleted && newStatus == models.BookingStatusCompleted {
		s.applyCompletionStats(booking)
	}

	s.notifyStatusChange(booking)
	return booking, nil
}

// Rate records the mentee's 1-5 rating on a completed booking and
// triggers the full rating recompute for both sides. The recompute is
// best effort: the stored rating is authoritative even if aggregation
// fails.
func (s *bookingService) Rate(menteeID, bookingID string, req dto.RateBookingRequest) (*models.Booking, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.ErrInvalidRating
	}

	booking, err := s.findBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != menteeID {
		return nil, apperrors.ErrNotBookingOwner
	}
	if booking.Status != models.BookingStatusCompleted {
		return nil, apperrors.ErrBookingNotCompleted
	}
	if booking.Rating != nil {
		return nil, apperrors.ErrBookingAlreadyRated
	}

	if err := s.bookingRepo.SetRating(booking.ID, req.Rating, req.Review); err != nil {
		return nil, apperrors.InternalError(err)
	}
	rating := req.Rating
	booking.Rating = &rating
	booking.Review = req.Review

	if err := s.stats.RecomputeMentorRating(booking.MentorID); err != nil {
		logger.SideEffectLog("booking", "recompute mentor rating", err)
	}
	if err := s.stats.RecomputeMenteeRating(booking.UserID); err != nil {
		logger.SideEffectLog("booking", "recompute mentee rating", err)
	}

	return booking, nil
}

func (s *bookingService) Delete(userID, bookingID string) error {
	booking, err := s.findBooking(bookingID)
	if err != nil {
		return err
	}
	if booking.UserID != userID && booking.MentorID != userID {
		return apperrors.ErrInsufficientPermissions
	}
	if err := s.bookingRepo.Delete(booking.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// applyCompletionStats runs the one-time completion side effects:
// mentee gains a completed session and the parsed duration hours,
// mentor gains a total session, both sides get fresh active counters.
// Failures are logged and swallowed; the status update stands.
func (s *bookingService) applyCompletionStats(booking *models.Booking) {
	hours := ParseDurationHours(booking.Duration)
	if err := s.userRepo.ApplyMenteeCompletion(booking.UserID, hours); err != nil {
		logger.SideEffectLog("booking", "apply mentee completion", err)
	}
	if err := s.userRepo.IncrementMentorSessions(booking.MentorID); err != nil {
		logger.SideEffectLog("booking", "increment mentor sessions", err)
	}

	students, err := s.bookingRepo.CountDistinctStudents(booking.MentorID)
	if err != nil {
		logger.SideEffectLog("booking", "count distinct students", err)
		return
	}
	mentors, err := s.bookingRepo.CountDistinctMentors(booking.UserID)
	if err != nil {
		logger.SideEffectLog("booking", "count distinct mentors", err)
		return
	}
	if err := s.userRepo.UpdateActiveCounters(booking.MentorID, students, booking.UserID, mentors); err != nil {
		logger.SideEffectLog("booking", "update active counters", err)
	}
}

func (s *bookingService) notifyStatusChange(booking *models.Booking) {
	mentee, err := s.userRepo.FindByID(booking.UserID)
	if err != nil {
		logger.SideEffectLog("booking", "notify status change", err)
		return
	}
	s.notifier.SendToUser(mentee.Email, EventBookingStatusUpdated, dto.BookingStatusEvent{
		BookingID: booking.ID,
		Status:    string(booking.Status),
	})
}

func (s *bookingService) findBooking(bookingID string) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(bookingID)
	if err != nil {
		if errors.Is(err, repositories.ErrBookingNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return booking, nil
}

var firstIntPattern = regexp.MustCompile(`\d+`)

// ParseDurationHours turns the free-text session duration into hours.
// "hour" durations use the first embedded integer (default 1), "min"
// durations use the first integer divided by 60 (default 0.5), and
// anything else contributes zero hours.
func ParseDurationHours(duration string) float64 {
	normalized := strings.ToLower(duration)
	switch {
	case strings.Contains(normalized, "hour"):
		if n, ok := firstInt(normalized); ok {
			return float64(n)
		}
		return 1
	case strings.Contains(normalized, "min"):
		if n, ok := firstInt(normalized); ok {
			return float64(n) / 60
		}
		return 0.5
	default:
		return 0
	}
}

func firstInt(s string) (int, bool) {
	match := firstIntPattern.FindString(s)
	if match == "" {
		return 0, false
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return n, true
}
