package handlers

import (
	"mentorhub_backend/internal/services"
	"mentorhub_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	Auth     *AuthHandler
	User     *UserHandler
	Booking  *BookingHandler
	Chat     *ChatHandler
	Blog     *BlogHandler
	Resource *ResourceHandler
}

// NewAppHandlers wires the handler layer on top of the service container.
func NewAppHandlers(svc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:     NewAuthHandler(base, svc.Auth),
		User:     NewUserHandler(base, svc.User, svc.Stats),
		Booking:  NewBookingHandler(base, svc.Booking),
		Chat:     NewChatHandler(base, svc.Chat),
		Blog:     NewBlogHandler(base, svc.Blog),
		Resource: NewResourceHandler(base, svc.Resource),
	}
}
