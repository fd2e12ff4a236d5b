package dto

import (
	"time"

	"github.com/examforge/examforge/internal/auth"
)

type RegisterRequest struct {
	FirstName string    `json:"first_name" binding:"required,max=100"`
	LastName  string    `json:"last_name" binding:"required,max=100"`
	Email     string    `json:"email" binding:"required,email,max=100"`
	Password  string    `json:"password" binding:"required,min=6"`
	Role      auth.Role `json:"role" binding:"omitempty,oneof=student teacher admin"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      auth.Role `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
