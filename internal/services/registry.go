package services

// ServiceContainer bundles every service for dependency injection into
// the handler layer.
type ServiceContainer struct {
	Auth     AuthService
	User     UserService
	Booking  BookingService
	Stats    StatsService
	Chat     ChatService
	Blog     BlogService
	Resource ResourceService
}
