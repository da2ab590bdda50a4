package repositories

import (
	"errors"

	"mentorhub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrBookingNotFound = errors.New("booking not found")

type BookingRepository interface {
	// Booking operations
	Create(booking *models.Booking) error
	FindByID(id string) (*models.Booking, error)
	FindByMentee(menteeID string) ([]models.Booking, error)
	FindByMentor(mentorID string) ([]models.Booking, error)
	Update(booking *models.Booking) error
	UpdateStatus(id string, status models.BookingStatus) error
	SetRating(id string, rating int, review string) error
	Delete(id string) error

	// Aggregation scans
	FindRatedCompletedByMentor(mentorID string) ([]models.Booking, error)
	FindRatedCompletedByMentee(menteeID string) ([]models.Booking, error)
	FindCompletedByMenteeAsc(menteeID string) ([]models.Booking, error)
	CountDistinctStudents(mentorID string) (int, error)
	CountDistinctMentors(menteeID string) (int, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// ---------------- Booking operations ----------------

func (r *bookingRepository) Create(booking *models.Booking) error {
	return r.db.Create(booking).Error
}

func (r *bookingRepository) FindByID(id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByMentee(menteeID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Preload("Mentor").
		Where("user_id = ?", menteeID).
		Order("date DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) FindByMentor(mentorID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Preload("User").
		Where("mentor_id = ?", mentorID).
		Order("date DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) Update(booking *models.Booking) error {
	return r.db.Save(booking).Error
}

func (r *bookingRepository) UpdateStatus(id string, status models.BookingStatus) error {
	return r.db.Model(&models.Booking{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *bookingRepository) SetRating(id string, rating int, review string) error {
	return r.db.Model(&models.Booking{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"rating": rating,
			"review": review,
		}).Error
}

func (r *bookingRepository) Delete(id string) error {
	return r.db.Delete(&models.Booking{}, "id = ?", id).Error
}

// ---------------- Aggregation scans ----------------

// FindRatedCompletedByMentor returns every completed booking of the mentor
// carrying a rating of at least 1. Rating recomputes re-scan this set in
// full rather than maintaining a running average.
func (r *bookingRepository) FindRatedCompletedByMentor(mentorID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.
		Where("mentor_id = ? AND status = ? AND rating >= 1", mentorID, models.BookingStatusCompleted).
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) FindRatedCompletedByMentee(menteeID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.
		Where("user_id = ? AND status = ? AND rating >= 1", menteeID, models.BookingStatusCompleted).
		Find(&bookings).Error
	return bookings, err
}

// FindCompletedByMenteeAsc feeds the streak calculation; order matters.
func (r *bookingRepository) FindCompletedByMenteeAsc(menteeID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.
		Where("user_id = ? AND status = ?", menteeID, models.BookingStatusCompleted).
		Order("date ASC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) CountDistinctStudents(mentorID string) (int, error) {
	var count int64
	err := r.db.Model(&models.Booking{}).
		Where("mentor_id = ? AND status IN ?", mentorID,
			[]models.BookingStatus{models.BookingStatusConfirmed, models.BookingStatusCompleted}).
		Distinct("user_id").
		Count(&count).Error
	return int(count), err
}

func (r *bookingRepository) CountDistinctMentors(menteeID string) (int, error) {
	var count int64
	err := r.db.Model(&models.Booking{}).
		Where("user_id = ? AND status IN ?", menteeID,
			[]models.BookingStatus{models.BookingStatusConfirmed, models.BookingStatusCompleted}).
		Distinct("mentor_id").
		Count(&count).Error
	return int(count), err
}
