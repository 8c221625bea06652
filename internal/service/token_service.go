package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tardis-journal/internal/model"
)

// TokenService issues and validates the stateless HMAC bearer tokens. There
// is no revocation list; a token stays valid until its expiry.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying the login as subject, expiring after the
// configured TTL.
func (s *TokenService) Issue(login string) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": login,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	})
	return token.SignedString(s.secret)
}

// Validate checks signature and expiry and returns the subject login.
// Malformed tokens, bad signatures, expired tokens and tokens without a
// subject all come back as ErrInvalidToken.
func (s *TokenService) Validate(tokenString string) (string, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, model.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", model.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", model.ErrInvalidToken
	}

	login, _ := claims["sub"].(string)
	if login == "" {
		return "", model.ErrInvalidToken
	}

	return login, nil
}
