// Package token issues and validates the compact signed session tokens
// handed out at signin. Claims are standard JWT registered claims with
// the user id as subject; nothing is ever persisted.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/miragechat/identity/internal/common"
)

// Service signs and verifies session tokens with a symmetric secret
// supplied once at startup.
type Service struct {
	secret   []byte
	validity time.Duration
}

func NewService(secret []byte, validity time.Duration) *Service {
	return &Service{secret: secret, validity: validity}
}

// Issue returns a signed HS256 token with subject userID, issued now and
// expiring after the configured validity.
func (s *Service) Issue(userID string) (string, error) {
	now := time.Now()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
	})

	return t.SignedString(s.secret)
}

// Parse verifies the token signature and expiry and returns the subject.
// The signature is checked before the timestamps, so a tampered token
// always fails as invalid rather than expired. Outcomes map to
// common.ErrTokenExpired and common.ErrInvalidToken.
func (s *Service) Parse(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !t.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
