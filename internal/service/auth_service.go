package service

import (
	"errors"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/examforge/examforge/internal/apperr"
	"github.com/examforge/examforge/internal/auth"
	"github.com/examforge/examforge/internal/dto"
	"github.com/examforge/examforge/internal/model"
	"github.com/examforge/examforge/internal/repository"
)

type AuthService interface {
	Register(req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req dto.LoginRequest) (*dto.AuthResponse, error)
	CurrentUser(caller auth.Caller) (*dto.UserResponse, error)
}

type authService struct {
	userRepo  repository.UserRepository
	jwtSecret string
}

func NewAuthService(userRepo repository.UserRepository, jwtSecret string) AuthService {
	return &authService{userRepo: userRepo, jwtSecret: jwtSecret}
}

func (s *authService) Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, apperr.InvalidState("email is already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = auth.RoleStudent
	}

	user := model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Register: failed to create user")
		return nil, err
	}

	return s.authResponse(&user)
}

func (s *authService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindActiveByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.InvalidState("invalid credentials")
		}
		return nil, err
	}
	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, apperr.InvalidState("invalid credentials")
	}
	return s.authResponse(user)
}

func (s *authService) CurrentUser(caller auth.Caller) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(caller.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	var resp dto.UserResponse
	if err := copier.Copy(&resp, user); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *authService) authResponse(user *model.User) (*dto.AuthResponse, error) {
	token, err := auth.NewToken(auth.Caller{UserID: user.ID, Email: user.Email, Role: user.Role}, s.jwtSecret, time.Now())
	if err != nil {
		return nil, err
	}
	var userDTO dto.UserResponse
	if err := copier.Copy(&userDTO, user); err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: userDTO}, nil
}
