package dto

import "time"

type CreateBookingRequest struct {
	MentorID    string    `json:"mentor_id" validate:"required,uuid"`
	SessionType string    `json:"session_type" validate:"required"`
	Duration    string    `json:"duration" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
	Time        string    `json:"time"`
	Cost        float64   `json:"cost" validate:"gte=0"`
	Topics      []string  `json:"topics"`
}

type UpdateBookingRequest struct {
	SessionType *string    `json:"session_type,omitempty"`
	Duration    *string    `json:"duration,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Time        *string    `json:"time,omitempty"`
	Topics      []string   `json:"topics,omitempty"`
}

// UpdateStatusRequest carries the requested lifecycle transition. The
// value is checked against the booking status enum before persisting.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type RateBookingRequest struct {
	Rating int    `json:"rating" validate:"required"`
	Review string `json:"review" validate:"max=2000"`
}

// BookingStatusEvent is the payload pushed over the realtime channel
// when a booking changes status.
type BookingStatusEvent struct {
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
}

// SessionRequestEvent is pushed to a mentor when a mentee books a session.
type SessionRequestEvent struct {
	BookingID   string    `json:"booking_id"`
	MenteeID    string    `json:"mentee_id"`
	MenteeName  string    `json:"mentee_name"`
	SessionType string    `json:"session_type"`
	Date        time.Time `json:"date"`
}
