package dto

import (
	"time"

	"contentcraft_backend/internal/models"
)

// RegisterRequest - запрос регистрации
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest - частичное обновление профиля
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,min=1"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,min=1"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

// UserDTO - публичная информация о пользователе
type UserDTO struct {
	ID                 string                    `json:"id"`
	Email              string                    `json:"email"`
	FirstName          string                    `json:"first_name"`
	LastName           string                    `json:"last_name"`
	AvatarURL          *string                   `json:"avatar_url,omitempty"`
	SubscriptionPlan   models.SubscriptionPlan   `json:"subscription_plan"`
	SubscriptionStatus models.SubscriptionStatus `json:"subscription_status"`
	CreatedAt          time.Time                 `json:"created_at"`
}

// AuthResponse - ответ с токеном после register/login/refresh
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      UserDTO   `json:"user"`
}

// NewUserDTO строит публичное представление пользователя.
// PasswordHash никогда не попадает в ответы.
func NewUserDTO(user *models.User) UserDTO {
	return UserDTO{
		ID:                 user.ID,
		Email:              user.Email,
		FirstName:          user.FirstName,
		LastName:           user.LastName,
		AvatarURL:          user.AvatarURL,
		SubscriptionPlan:   user.SubscriptionPlan,
		SubscriptionStatus: user.SubscriptionStatus,
		CreatedAt:          user.CreatedAt,
	}
}
