// Package users persists and queries identity records. It is the single
// owner of user-record durability; the service layer above it keeps no
// state of its own.
package users

import (
	"context"

	"github.com/miragechat/identity/internal/server/models"
)

// Repository is the storage port consumed by the identity service. All
// methods are safe for concurrent use; domain outcomes (not found,
// wrong code, conflicts) are typed results, anything else is a wrapped
// store failure.
type Repository interface {
	// CheckUniqueness returns human-readable conflict messages for the
	// candidate email/username pair. An empty slice means no conflict.
	// Unverified records older than the registration grace period do not
	// count as conflicts.
	CheckUniqueness(ctx context.Context, email, username string) ([]string, error)

	// Create inserts a new unverified record. user.PasswordHash must
	// already be the encoded hash, never a plaintext password.
	Create(ctx context.Context, user *models.User) error

	// MarkVerified looks up the most recent record for email, checks the
	// grace period and the verification code, flips the verified flag and
	// enqueues the user-registered event in the same transaction.
	// Returns common.ErrUserNotFound or common.ErrWrongVerificationCode.
	MarkVerified(ctx context.Context, email, code string) error

	// FetchCredential resolves identifier (email or username, decided by
	// syntactic email validation) to the user id and stored password
	// hash. Returns common.ErrUserNotFound when no record matches.
	FetchCredential(ctx context.Context, identifier string) (userID, passwordHash string, err error)

	// VerifiedUserExists reports whether a verified user with the given
	// id exists.
	VerifiedUserExists(ctx context.Context, userID string) (bool, error)
}
