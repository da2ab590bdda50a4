package dto

type UpdateProfileRequest struct {
	Name       *string  `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Bio        *string  `json:"bio,omitempty" validate:"omitempty,max=2000"`
	HourlyRate *float64 `json:"hourly_rate,omitempty" validate:"omitempty,gte=0"`
	Expertise  []string `json:"expertise,omitempty"`
}

type StreakResponse struct {
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
}

type MentorListResponse struct {
	Mentors  []UserResponse `json:"mentors"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}
