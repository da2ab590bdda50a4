package routes

import (
	"github.com/gin-gonic/gin"

	"mentorhub_backend/internal/handlers"
	"mentorhub_backend/internal/middleware"
	"mentorhub_backend/ws"
)

// RegisterRoutes mounts the whole API under /api/v1.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers, wsHandler *ws.Handler) {
	api := router.Group("/api/v1")

	registerAuthRoutes(api, h.Auth)

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware())

	registerUserRoutes(api, authed, h.User)
	registerBookingRoutes(authed, h.Booking)
	registerChatRoutes(authed, h.Chat)
	registerBlogRoutes(api, authed, h.Blog)
	registerResourceRoutes(api, authed, h.Resource)

	authed.GET("/ws", wsHandler.ServeWS)
}

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler) {
	auth := api.Group("/auth")
	auth.POST("/register", h.Register)
	auth.POST("/verify", h.VerifyEmail)
	auth.POST("/login", h.Login)
	auth.POST("/refresh", h.Refresh)
	auth.POST("/logout", h.Logout)
}

func registerUserRoutes(api, authed *gin.RouterGroup, h *handlers.UserHandler) {
	api.GET("/mentors", h.ListMentors)

	authed.GET("/users/me", h.GetMe)
	authed.PUT("/users/me", h.UpdateMe)
	authed.GET("/users/:id", h.GetByID)
	authed.GET("/users/:id/streak", h.GetStreak)
}

func registerBookingRoutes(authed *gin.RouterGroup, h *handlers.BookingHandler) {
	bookings := authed.Group("/bookings")
	bookings.POST("", h.Create)
	bookings.GET("", h.List)
	bookings.GET("/:id", h.GetByID)
	bookings.PUT("/:id", h.Update)
	bookings.PATCH("/:id/status", h.UpdateStatus)
	bookings.POST("/:id/rate", h.Rate)
	bookings.DELETE("/:id", h.Delete)
}

func registerChatRoutes(authed *gin.RouterGroup, h *handlers.ChatHandler) {
	chat := authed.Group("/chat")
	chat.POST("/requests", h.SendRequest)
	chat.GET("/requests/incoming", h.ListIncoming)
	chat.GET("/requests/outgoing", h.ListOutgoing)
	chat.POST("/requests/:id/respond", h.RespondToRequest)
	chat.POST("/messages", h.SendMessage)
	chat.GET("/conversations/:userId", h.GetConversation)
	chat.GET("/unread", h.UnreadCount)
}

func registerBlogRoutes(api, authed *gin.RouterGroup, h *handlers.BlogHandler) {
	api.GET("/blogs", h.List)
	api.GET("/blogs/:id", h.GetByID)
	api.GET("/users/:id/blogs", h.ListByAuthor)

	authed.POST("/blogs", h.Create)
	authed.PUT("/blogs/:id", h.Update)
	authed.DELETE("/blogs/:id", h.Delete)
}

func registerResourceRoutes(api, authed *gin.RouterGroup, h *handlers.ResourceHandler) {
	api.GET("/resources", h.List)
	api.GET("/resources/:id", h.GetByID)
	api.GET("/resources/:id/download", h.Download)

	authed.POST("/resources", h.Upload)
	authed.GET("/resources/mine", h.ListMine)
	authed.DELETE("/resources/:id", h.Delete)
}
