package models

type UserStatus string
type UserRole string
type BookingStatus string
type ChatRequestStatus string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"

	UserRoleMentor  UserRole = "mentor"
	UserRoleStudent UserRole = "student"
	UserRoleAdmin   UserRole = "admin"

	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"

	ChatRequestStatusPending  ChatRequestStatus = "pending"
	ChatRequestStatusApproved ChatRequestStatus = "approved"
	ChatRequestStatusDeclined ChatRequestStatus = "declined"
)

// IsValid reports whether the status belongs to the booking enum. Any
// other value must be rejected before touching the database.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are expected.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusCompleted
}
