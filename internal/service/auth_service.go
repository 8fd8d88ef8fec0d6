package service

import (
	"context"
	"errors"
	"fmt"

	"greenfood-api/internal/model"
	"greenfood-api/internal/repository"
	"greenfood-api/pkg/token"
	"greenfood-api/pkg/validator"

	"github.com/rs/zerolog"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService interface {
	Register(ctx context.Context, req *RegisterRequest) (*model.UserResponse, error)
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	// ResolveUser maps a verified token claim back to the live stored
	// user. The stored role wins over whatever the claim says.
	ResolveUser(ctx context.Context, email string) (*model.User, error)
}

type RegisterRequest struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
}

type LoginResponse struct {
	AccessToken string             `json:"access_token"`
	TokenType   string             `json:"token_type"`
	User        model.UserResponse `json:"user"`
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *token.Manager
	log      zerolog.Logger
}

func NewAuthService(userRepo repository.UserRepository, tokens *token.Manager, log zerolog.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		log:      log,
	}
}

func (s *authService) Register(ctx context.Context, req *RegisterRequest) (*model.UserResponse, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Role:     model.RoleUser, // escalation to admin is an out-of-band operation
		Balance:  0,
		IsActive: true,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}

	// The unique index on email turns a concurrent duplicate registration
	// into ErrDuplicate here instead of a second user sneaking in.
	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	user.ID = id

	s.log.Info().Str("email", user.Email).Msg("user registered")

	resp := user.ToResponse()
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Generate(user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        user.ToResponse(),
	}, nil
}

func (s *authService) ResolveUser(ctx context.Context, email string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	return user, nil
}
