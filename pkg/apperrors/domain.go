package apperrors

import (
	"net/http"
)

// Factories and predefined variables for domain errors.

// =========================================================================
// Factories (wrap repository/service errors)
// =========================================================================

// ErrNotFound converts a repository miss (e.g. gorm.ErrRecordNotFound)
// into a 404 AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists maps a uniqueness violation into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the generic 409 factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation is the generic 400 factory for operations the
// current state does not allow.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus is the 400 factory for status values outside an enum.
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// =========================================================================
// Predefined variables (frequent, static errors)
// =========================================================================

// --- Auth & users ---

var ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)
var ErrInvalidToken = New(CodeInvalidToken, "auth", "Invalid or expired token", http.StatusUnauthorized)
var ErrUserNotFound = New(CodeNotFound, "user", "User not found", http.StatusNotFound)
var ErrEmailAlreadyExists = New(CodeAlreadyExists, "user", "Email already exists", http.StatusConflict)
var ErrUserNotVerified = New(CodeForbidden, "user", "User email is not verified", http.StatusForbidden)
var ErrInvalidUserRole = New(CodeInvalidOperation, "user", "Invalid user role for this operation", http.StatusBadRequest)
var ErrInsufficientPermissions = New(CodeForbidden, "auth", "Insufficient permissions", http.StatusForbidden)

// --- Bookings ---

var ErrBookingNotFound = New(CodeNotFound, "booking", "Booking not found", http.StatusNotFound)
var ErrInvalidBookingStatus = New(CodeInvalidStatus, "booking", "Booking status is invalid", http.StatusBadRequest)
var ErrBookingNotCompleted = New(CodeInvalidOperation, "booking", "Booking is not completed", http.StatusBadRequest)
var ErrInvalidRating = New(CodeValidationFailed, "booking", "Rating must be between 1 and 5", http.StatusBadRequest)
var ErrNotBookingOwner = New(CodeForbidden, "booking", "Only the booking mentee can rate this session", http.StatusForbidden)
var ErrBookingAlreadyRated = New(CodeConflict, "booking", "Booking has already been rated", http.StatusConflict)

// --- Chat ---

var ErrChatRequestNotFound = New(CodeNotFound, "chat", "Chat request not found", http.StatusNotFound)
var ErrChatRequestExists = New(CodeAlreadyExists, "chat", "Chat request already exists", http.StatusConflict)
var ErrChatNotApproved = New(CodeForbidden, "chat", "Chat request has not been approved", http.StatusForbidden)
var ErrNotChatReceiver = New(CodeForbidden, "chat", "Only the receiver can respond to a chat request", http.StatusForbidden)
var ErrSelfChatNotAllowed = New(CodeInvalidOperation, "chat", "Cannot open a chat with yourself", http.StatusBadRequest)

// --- Resources & blogs ---

var ErrResourceNotFound = New(CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
var ErrBlogNotFound = New(CodeNotFound, "blog", "Blog post not found", http.StatusNotFound)
var ErrNotAuthor = New(CodeForbidden, "blog", "Only the author can modify this post", http.StatusForbidden)

// --- Uploads ---

var ErrFileTooLarge = New(CodeLimitExceeded, "upload", "File size exceeds the allowed limit", http.StatusRequestEntityTooLarge)
var ErrInvalidFileType = New(CodeValidationFailed, "upload", "The provided file type is not allowed", http.StatusUnsupportedMediaType)
