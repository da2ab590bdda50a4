package dto

import "mentorhub_backend/internal/models"

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=mentor student"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID         string                `json:"id"`
	Name       string                `json:"name"`
	Email      string                `json:"email"`
	Role       models.UserRole       `json:"role"`
	Status     models.UserStatus     `json:"status"`
	IsVerified bool                  `json:"is_verified"`
	Mentor     *models.MentorProfile `json:"mentor,omitempty"`
	Mentee     *models.MenteeProfile `json:"mentee,omitempty"`
}

// ToUserResponse strips credentials and the inactive role substructure.
func ToUserResponse(user *models.User) UserResponse {
	resp := UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		Status:     user.Status,
		IsVerified: user.IsVerified,
	}
	switch user.Role {
	case models.UserRoleMentor:
		mentor := user.Mentor
		resp.Mentor = &mentor
	case models.UserRoleStudent:
		mentee := user.Mentee
		resp.Mentee = &mentee
	}
	return resp
}
