package models

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	BaseModel
	Name              string     `gorm:"not null" json:"name"`
	Email             string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash      string     `gorm:"not null" json:"-"`
	Role              UserRole   `gorm:"type:varchar(20);not null" json:"role"`
	Status            UserStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	IsVerified        bool       `gorm:"default:false" json:"is_verified"`
	VerificationToken string     `json:"-"`
	ResetToken        string     `json:"-"`
	ResetTokenExp     *time.Time `json:"-"`

	// Role-specific stat substructures. Both live on the user row; only
	// the one matching Role is maintained.
	Mentor MentorProfile `gorm:"embedded;embeddedPrefix:mentor_" json:"mentor"`
	Mentee MenteeProfile `gorm:"embedded;embeddedPrefix:mentee_" json:"mentee"`

	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

// MentorProfile holds mentor-side statistics, mutated by booking
// completion and rating recomputes.
type MentorProfile struct {
	TotalSessions  int            `json:"total_sessions"`
	ActiveStudents int            `json:"active_students"`
	AverageRating  float64        `json:"average_rating"`
	TotalReviews   int            `json:"total_reviews"`
	HourlyRate     float64        `json:"hourly_rate"`
	Bio            string         `json:"bio"`
	Expertise      datatypes.JSON `json:"expertise"`
}

// MenteeProfile holds student-side statistics.
type MenteeProfile struct {
	CompletedSessions int     `json:"completed_sessions"`
	HoursLearned      float64 `json:"hours_learned"`
	AverageRating     float64 `json:"average_rating"`
	TotalReviews      int     `json:"total_reviews"`
	ActiveMentors     int     `json:"active_mentors"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
