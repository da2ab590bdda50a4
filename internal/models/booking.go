package models

import (
	"time"

	"gorm.io/datatypes"
)

// Booking is a scheduled mentorship session between a mentee and a mentor.
// Created pending by the mentee; transitions are mentor/system driven.
// Rating and review may only be set once the booking is completed, and
// only by the owning mentee.
type Booking struct {
	BaseModel
	UserID      string         `gorm:"not null;index" json:"user_id"`   // mentee
	MentorID    string         `gorm:"not null;index" json:"mentor_id"`
	MentorName  string         `json:"mentor_name"`
	SessionType string         `json:"session_type"`
	Duration    string         `json:"duration"` // free text, e.g. "60min" / "1 hour"
	Date        time.Time      `gorm:"index" json:"date"`
	Time        string         `json:"time"`
	Status      BookingStatus  `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	Cost        float64        `json:"cost"`
	Rating      *int           `json:"rating,omitempty"`
	Review      string         `json:"review,omitempty"`
	Topics      datatypes.JSON `json:"topics"`

	User   *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Mentor *User `gorm:"foreignKey:MentorID" json:"mentor,omitempty"`
}
