package repositories

import (
	"errors"
	"time"

	"mentorhub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
)

type UserRepository interface {
	// User operations
	Create(user *models.User) error
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByVerificationToken(token string) (*models.User, error)
	Update(user *models.User) error
	ListMentors(page, pageSize int) ([]models.User, int64, error)

	// Stat mutations (booking completion / rating recompute side effects)
	ApplyMenteeCompletion(menteeID string, hours float64) error
	IncrementMentorSessions(mentorID string) error
	UpdateMentorRating(mentorID string, average float64, count int) error
	UpdateMenteeRating(menteeID string, average float64, count int) error
	UpdateActiveCounters(mentorID string, activeStudents int, menteeID string, activeMentors int) error

	// Refresh tokens
	SaveRefreshToken(token *models.RefreshToken) error
	FindRefreshToken(token string) (*models.RefreshToken, error)
	DeleteRefreshToken(token string) error
	DeleteExpiredRefreshTokens() error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// ---------------- User operations ----------------

func (r *userRepository) Create(user *models.User) error {
	var existing models.User
	err := r.db.Where("email = ?", user.Email).First(&existing).Error
	if err == nil {
		return ErrEmailAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(user).Error
}

func (r *userRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByVerificationToken(token string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "verification_token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) ListMentors(page, pageSize int) ([]models.User, int64, error) {
	var mentors []models.User
	var total int64

	query := r.db.Model(&models.User{}).
		Where("role = ? AND status = ?", models.UserRoleMentor, models.UserStatusActive)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("mentor_average_rating DESC, created_at ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&mentors).Error
	return mentors, total, err
}

// ---------------- Stat mutations ----------------

func (r *userRepository) ApplyMenteeCompletion(menteeID string, hours float64) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", menteeID).
		Updates(map[string]interface{}{
			"mentee_completed_sessions": gorm.Expr("mentee_completed_sessions + 1"),
			"mentee_hours_learned":      gorm.Expr("mentee_hours_learned + ?", hours),
		}).Error
}

func (r *userRepository) IncrementMentorSessions(mentorID string) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", mentorID).
		Update("mentor_total_sessions", gorm.Expr("mentor_total_sessions + 1")).Error
}

func (r *userRepository) UpdateMentorRating(mentorID string, average float64, count int) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", mentorID).
		Updates(map[string]interface{}{
			"mentor_average_rating": average,
			"mentor_total_reviews":  count,
		}).Error
}

func (r *userRepository) UpdateMenteeRating(menteeID string, average float64, count int) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", menteeID).
		Updates(map[string]interface{}{
			"mentee_average_rating": average,
			"mentee_total_reviews":  count,
		}).Error
}

func (r *userRepository) UpdateActiveCounters(mentorID string, activeStudents int, menteeID string, activeMentors int) error {
	if err := r.db.Model(&models.User{}).
		Where("id = ?", mentorID).
		Update("mentor_active_students", activeStudents).Error; err != nil {
		return err
	}
	return r.db.Model(&models.User{}).
		Where("id = ?", menteeID).
		Update("mentee_active_mentors", activeMentors).Error
}

// ---------------- Refresh tokens ----------------

func (r *userRepository) SaveRefreshToken(token *models.RefreshToken) error {
	return r.db.Create(token).Error
}

func (r *userRepository) FindRefreshToken(token string) (*models.RefreshToken, error) {
	var rt models.RefreshToken
	err := r.db.First(&rt, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshTokenNotFound
		}
		return nil, err
	}
	return &rt, nil
}

func (r *userRepository) DeleteRefreshToken(token string) error {
	return r.db.Delete(&models.RefreshToken{}, "token = ?", token).Error
}

func (r *userRepository) DeleteExpiredRefreshTokens() error {
	return r.db.Delete(&models.RefreshToken{}, "expires_at < ?", time.Now()).Error
}
