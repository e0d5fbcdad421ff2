// File: /services/auth_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"eventease-api/models"
)

var (
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("incorrect email or password")
)

// UserStore is the slice of the durable store holding the user collection.
type UserStore interface {
	GetUsers(ctx context.Context) []models.User
	SaveUsers(ctx context.Context, users []models.User) error
}

// SessionStore holds the current-user record, the singleton pointer that
// marks who is logged in on this device.
type SessionStore interface {
	GetCurrentUser(ctx context.Context) *models.PublicUser
	SaveCurrentUser(ctx context.Context, user *models.PublicUser) error
	ClearCurrentUser(ctx context.Context) error
}

// AuthService implements the local, backend-free authentication flow:
// credentials are checked against the on-device user collection and the
// session is a persisted redacted user record.
type AuthService struct {
	users   UserStore
	session SessionStore
	logger  *zap.Logger
}

func NewAuthService(users UserStore, session SessionStore, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:   users,
		session: session,
		logger:  logger,
	}
}

// Register creates a new account and starts its session. Emails are unique
// within the collection.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (models.PublicUser, error) {
	users := s.users.GetUsers(ctx)
	for _, existing := range users {
		if existing.Email == email {
			return models.PublicUser{}, ErrEmailTaken
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("hashing password: %w", err)
	}

	user := models.User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Password:  string(hashed),
		CreatedAt: time.Now(),
	}

	users = append(users, user)
	if err := s.users.SaveUsers(ctx, users); err != nil {
		return models.PublicUser{}, fmt.Errorf("saving users: %w", err)
	}

	public := user.Public()
	if err := s.session.SaveCurrentUser(ctx, &public); err != nil {
		return models.PublicUser{}, fmt.Errorf("saving session: %w", err)
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID))
	return public, nil
}

// Login checks the credentials against the user collection and persists the
// redacted record as the current user.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.PublicUser, error) {
	var found *models.User
	for _, user := range s.users.GetUsers(ctx) {
		if user.Email == email {
			u := user
			found = &u
			break
		}
	}
	if found == nil {
		return models.PublicUser{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.Password), []byte(password)); err != nil {
		return models.PublicUser{}, ErrInvalidCredentials
	}

	public := found.Public()
	if err := s.session.SaveCurrentUser(ctx, &public); err != nil {
		return models.PublicUser{}, fmt.Errorf("saving session: %w", err)
	}

	return public, nil
}

// Logout clears the current-user record.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.session.ClearCurrentUser(ctx)
}

// CurrentUser returns the persisted current-user record, nil when nobody is
// logged in.
func (s *AuthService) CurrentUser(ctx context.Context) *models.PublicUser {
	return s.session.GetCurrentUser(ctx)
}
