package services

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"mentorhub_backend/internal/auth"
	"mentorhub_backend/internal/config"
	"mentorhub_backend/internal/email"
	"mentorhub_backend/internal/logger"
	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req dto.RegisterRequest) (*dto.UserResponse, error)
	VerifyEmail(token string) (*dto.AuthResponse, error)
	Login(req dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(refreshToken string) (*dto.AuthResponse, error)
	Logout(refreshToken string) error
}

type authService struct {
	userRepo repositories.UserRepository
	mailer   email.Provider
}

func NewAuthService(userRepo repositories.UserRepository, mailer email.Provider) AuthService {
	return &authService{userRepo: userRepo, mailer: mailer}
}

// Register creates a pending account and mails the verification token.
// The mail send is best effort; the token can be re-requested.
func (s *authService) Register(req dto.RegisterRequest) (*dto.UserResponse, error) {
	role := models.UserRole(req.Role)
	if role != models.UserRoleMentor && role != models.UserRoleStudent {
		return nil, apperrors.ErrInvalidUserRole
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:              req.Name,
		Email:             req.Email,
		PasswordHash:      hash,
		Role:              role,
		Status:            models.UserStatusPending,
		VerificationToken: uuid.New().String(),
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrEmailAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.mailer.SendVerification(user.Email, user.Name, user.VerificationToken); err != nil {
		logger.SideEffectLog("auth", "send verification email", err)
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// VerifyEmail activates the account matching the token and logs the
// user straight in.
func (s *authService) VerifyEmail(token string) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByVerificationToken(token)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}

	user.IsVerified = true
	user.Status = models.UserStatusActive
	user.VerificationToken = ""
	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokens(user)
}

func (s *authService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsVerified {
		return nil, apperrors.ErrUserNotVerified
	}
	if user.Status == models.UserStatusSuspended {
		return nil, apperrors.NewForbiddenError("Account is suspended")
	}

	return s.issueTokens(user)
}

func (s *authService) Refresh(refreshToken string) (*dto.AuthResponse, error) {
	stored, err := s.userRepo.FindRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}
	if time.Now().After(stored.ExpiresAt) {
		_ = s.userRepo.DeleteRefreshToken(refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(stored.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	// Rotate: the presented token is single use.
	if err := s.userRepo.DeleteRefreshToken(refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.issueTokens(user)
}

func (s *authService) Logout(refreshToken string) error {
	if err := s.userRepo.DeleteRefreshToken(refreshToken); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *authService) issueTokens(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := auth.GenerateToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	cfg := config.GetConfig()
	refreshTTL := time.Duration(cfg.JWT.RefreshTTL) * time.Hour
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}

	refresh := &models.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().Add(refreshTTL),
	}
	if err := s.userRepo.SaveRefreshToken(refresh); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refresh.Token,
		User:         dto.ToUserResponse(user),
	}, nil
}
