package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"relay-chat/internal/domain/user"
	"relay-chat/internal/repository"
	relay_errors "relay-chat/pkg/errors"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo  repository.UserRepository
	events    EventPublisher
	cost      int
	dummyHash []byte
}

// NewAuthService fails when bcryptCost is outside bcrypt's accepted range;
// zero selects bcrypt.DefaultCost.
func NewAuthService(userRepo repository.UserRepository, publisher EventPublisher, bcryptCost int) (*AuthService, error) {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d outside %d..%d", bcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	// Compared against on unknown logins so both failure paths cost one bcrypt run.
	dummy, err := bcrypt.GenerateFromPassword([]byte("relay-chat-dummy-password"), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("build dummy hash: %w", err)
	}
	return &AuthService{
		userRepo:  userRepo,
		events:    publisherOrNoop(publisher),
		cost:      bcryptCost,
		dummyHash: dummy,
	}, nil
}

type LoginInput struct {
	Login    string
	Password string
}

type CreateUserInput struct {
	Login       string
	Password    string
	DisplayName string
	IsAdmin     bool
}

type UpdateUserInput struct {
	UserID      int64
	DisplayName string
	Password    string
}

// Login verifies credentials and marks the user online. Unknown logins and
// wrong passwords fail with the same error.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (user.User, error) {
	u, err := s.userRepo.GetByLogin(ctx, in.Login)
	if err != nil {
		if errors.Is(err, relay_errors.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(in.Password))
			return user.User{}, relay_errors.ErrInvalidCredentials
		}
		return user.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, relay_errors.ErrInvalidCredentials
	}

	if err := s.userRepo.SetStatus(ctx, u.ID, user.StatusOnline); err != nil {
		return user.User{}, err
	}
	u.Status = user.StatusOnline
	u.PasswordHash = ""
	s.events.PresenceChanged(ctx, u.ID, user.StatusOnline)
	return u, nil
}

// Logout is idempotent: an unknown id is not an error.
func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	if err := s.userRepo.SetStatus(ctx, userID, user.StatusOffline); err != nil {
		return err
	}
	s.events.PresenceChanged(ctx, userID, user.StatusOffline)
	return nil
}

func (s *AuthService) CreateUser(ctx context.Context, in CreateUserInput) (user.User, error) {
	in.Login = strings.TrimSpace(in.Login)
	if in.Login == "" || in.Password == "" || strings.TrimSpace(in.DisplayName) == "" {
		return user.User{}, relay_errors.ErrInvalidInput
	}

	hash, err := s.hash(in.Password)
	if err != nil {
		return user.User{}, err
	}

	u := user.User{
		Login:        in.Login,
		PasswordHash: hash,
		DisplayName:  in.DisplayName,
		IsAdmin:      in.IsAdmin,
	}
	if err := s.userRepo.Create(ctx, &u); err != nil {
		return user.User{}, err
	}
	u.PasswordHash = ""
	return u, nil
}

// UpdateUser always sets the display name. The password changes only when a new one is given.
func (s *AuthService) UpdateUser(ctx context.Context, in UpdateUserInput) (user.User, error) {
	if in.UserID <= 0 || strings.TrimSpace(in.DisplayName) == "" {
		return user.User{}, relay_errors.ErrInvalidInput
	}

	upd := user.ProfileUpdate{UserID: in.UserID, DisplayName: in.DisplayName}
	if in.Password != "" {
		hash, err := s.hash(in.Password)
		if err != nil {
			return user.User{}, err
		}
		upd.PasswordHash = hash
	}
	return s.userRepo.UpdateProfile(ctx, upd)
}

func (s *AuthService) ListUsers(ctx context.Context) ([]user.User, error) {
	return s.userRepo.List(ctx)
}

func (s *AuthService) hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: password too long", relay_errors.ErrInvalidInput)
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}
