package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"tardis-journal/internal/model"
	"tardis-journal/internal/repository"
	"tardis-journal/pkg/apierror"
)

// AuthService verifies credentials, hands out tokens and resolves bearer
// tokens back to user records.
type AuthService struct {
	users  *repository.UserRepository
	tokens *TokenService
}

func NewAuthService(users *repository.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login checks the credentials and issues a bearer token on success. Unknown
// logins and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username string, password string) (model.TokenResponse, error) {
	user, err := s.users.FindByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return model.TokenResponse{}, apierror.Unauthorized("Incorrect username or password")
		}
		return model.TokenResponse{}, err
	}

	// bcrypt treats a malformed stored hash as a mismatch, never a panic.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return model.TokenResponse{}, apierror.Unauthorized("Incorrect username or password")
	}

	token, err := s.tokens.Issue(user.Login)
	if err != nil {
		return model.TokenResponse{}, err
	}

	return model.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// ResolveUser maps a presented bearer token to the user record it names. A
// valid token whose user no longer exists is unauthenticated, not a server
// error.
func (s *AuthService) ResolveUser(ctx context.Context, token string) (model.User, error) {
	login, err := s.tokens.Validate(token)
	if err != nil {
		return model.User{}, apierror.Unauthorized("Invalid authentication credentials")
	}

	user, err := s.users.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return model.User{}, apierror.Unauthorized("User not found")
		}
		return model.User{}, err
	}

	return user, nil
}
