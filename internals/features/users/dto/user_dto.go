// file: internals/features/users/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	userModel "kampusku_backend/internals/features/users/model"
)

type RegisterRequest struct {
	UserName     string `json:"users_name"     validate:"required,min=3,max=100"`
	UserEmail    string `json:"users_email"    validate:"required,email"`
	UserPassword string `json:"users_password" validate:"required,min=8"`
	UserRole     string `json:"users_role"     validate:"omitempty,oneof=student staff admin"`
}

type LoginRequest struct {
	UserEmail    string `json:"users_email"    validate:"required,email"`
	UserPassword string `json:"users_password" validate:"required"`
}

type UserResponse struct {
	UserId        uuid.UUID `json:"users_id"`
	UserName      string    `json:"users_name"`
	UserEmail     string    `json:"users_email"`
	UserRole      string    `json:"users_role"`
	UserActive    bool      `json:"users_active"`
	UserCreatedAt time.Time `json:"users_created_at"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

func FromUserModel(m userModel.UserModel) UserResponse {
	return UserResponse{
		UserId:        m.UserId,
		UserName:      m.UserName,
		UserEmail:     m.UserEmail,
		UserRole:      m.UserRole,
		UserActive:    m.UserActive,
		UserCreatedAt: m.UserCreatedAt,
	}
}
