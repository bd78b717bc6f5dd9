// Package users contains the server-side identity business logic:
// starting a registration, verifying it with a one-time code, signing
// users in and validating their session tokens. The service itself is
// stateless; every bit of user state lives behind the storage port.
package users

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/miragechat/identity/internal/common"
	"github.com/miragechat/identity/internal/logging"
	"github.com/miragechat/identity/internal/server/models"
	usersrepo "github.com/miragechat/identity/internal/server/repositories/users"
)

const conflictDelimiter = " | "

// Hasher is the credential-hashing dependency.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) (bool, error)
}

// TokenService issues and validates session tokens.
type TokenService interface {
	Issue(userID string) (string, error)
	Parse(token string) (string, error)
}

// Service orchestrates the identity lifecycle. All domain failures are
// returned verbatim as validation-class errors; anything unexpected is
// logged here and replaced by common.ErrorInternal.
type Service struct {
	repo   usersrepo.Repository
	hasher Hasher
	tokens TokenService
	logger logging.Logger
}

func NewService(repo usersrepo.Repository, hasher Hasher, tokens TokenService, logger logging.Logger) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		logger: logger.With("module", "users_service"),
	}
}

// StartRegistration creates a new unverified user unless the email or
// username still collides with an existing record. The verification code
// is stored for the out-of-band mail delivery and never returned to the
// caller.
func (s *Service) StartRegistration(ctx context.Context, name, email, username, pw string) error {
	conflicts, err := s.repo.CheckUniqueness(ctx, email, username)
	if err != nil {
		return s.internal(ctx, "check uniqueness", err)
	}
	if len(conflicts) > 0 {
		return common.NewValidationError(strings.Join(conflicts, conflictDelimiter))
	}

	code, err := generateVerificationCode()
	if err != nil {
		return s.internal(ctx, "generate verification code", err)
	}

	hash, err := s.hasher.Hash(pw)
	if err != nil {
		return s.internal(ctx, "hash password", err)
	}

	user := &models.User{
		Name:             name,
		Email:            email,
		Username:         username,
		PasswordHash:     hash,
		VerificationCode: code,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return s.internal(ctx, "create user", err)
	}

	s.logger.Info(ctx, "registration started", "username", username)
	return nil
}

// VerifyUser completes a registration with the one-time code.
func (s *Service) VerifyUser(ctx context.Context, email, code string) error {
	err := s.repo.MarkVerified(ctx, email, code)
	switch {
	case err == nil:
		s.logger.Info(ctx, "user verified", "email", email)
		return nil
	case errors.Is(err, common.ErrUserNotFound), errors.Is(err, common.ErrWrongVerificationCode):
		return err
	default:
		return s.internal(ctx, "mark verified", err)
	}
}

// Signin checks the identifier/password pair and returns a fresh session
// token on success.
func (s *Service) Signin(ctx context.Context, identifier, pw string) (string, error) {
	userID, hash, err := s.repo.FetchCredential(ctx, identifier)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			return "", err
		}
		return "", s.internal(ctx, "fetch credential", err)
	}

	ok, err := s.hasher.Verify(pw, hash)
	if err != nil {
		return "", s.internal(ctx, "verify password", err)
	}
	if !ok {
		return "", common.ErrWrongPassword
	}

	tok, err := s.tokens.Issue(userID)
	if err != nil {
		return "", s.internal(ctx, "issue token", err)
	}

	s.logger.Info(ctx, "signin", "user_id", userID)
	return tok, nil
}

// VerifySession validates a session token and confirms the subject still
// refers to a verified user. A valid token alone does not authorize.
func (s *Service) VerifySession(ctx context.Context, tok string) error {
	userID, err := s.tokens.Parse(tok)
	if err != nil {
		if common.IsValidation(err) {
			return err
		}
		return s.internal(ctx, "parse token", err)
	}

	exists, err := s.repo.VerifiedUserExists(ctx, userID)
	if err != nil {
		return s.internal(ctx, "lookup user", err)
	}
	if !exists {
		return common.ErrUserNotFound
	}

	return nil
}

func (s *Service) internal(ctx context.Context, op string, err error) error {
	s.logger.Error(ctx, "internal failure", "op", op, "error", err.Error())
	return common.ErrorInternal
}

// generateVerificationCode returns 6 ASCII digits drawn uniformly from
// [100000, 999999].
func generateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
