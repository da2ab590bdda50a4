package services

import (
	"encoding/json"
	"errors"

	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/pkg/apperrors"
)

type UserService interface {
	GetByID(id string) (*dto.UserResponse, error)
	UpdateProfile(userID string, req dto.UpdateProfileRequest) (*dto.UserResponse, error)
	ListMentors(page, pageSize int) (*dto.MentorListResponse, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetByID(id string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func (s *userService) UpdateProfile(userID string, req dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Bio != nil {
		user.Mentor.Bio = *req.Bio
	}
	if req.HourlyRate != nil {
		if user.Role != models.UserRoleMentor {
			return nil, apperrors.ErrInvalidUserRole
		}
		user.Mentor.HourlyRate = *req.HourlyRate
	}
	if req.Expertise != nil {
		expertise, _ := json.Marshal(req.Expertise)
		user.Mentor.Expertise = expertise
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func (s *userService) ListMentors(page, pageSize int) (*dto.MentorListResponse, error) {
	mentors, total, err := s.userRepo.ListMentors(page, pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.UserResponse, len(mentors))
	for i := range mentors {
		responses[i] = dto.ToUserResponse(&mentors[i])
	}

	return &dto.MentorListResponse{
		Mentors:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
