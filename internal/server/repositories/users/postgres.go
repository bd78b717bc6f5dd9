package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"github.com/miragechat/identity/internal/common"
	"github.com/miragechat/identity/internal/dbx"
	"github.com/miragechat/identity/internal/server/models"
	"github.com/miragechat/identity/internal/server/repositories/outbox"
)

type PostgresRepository struct {
	db          *sql.DB
	gracePeriod time.Duration
}

func NewPostgresRepository(db *sql.DB, gracePeriod time.Duration) *PostgresRepository {
	return &PostgresRepository{db: db, gracePeriod: gracePeriod}
}

func (r *PostgresRepository) CheckUniqueness(ctx context.Context, email, username string) ([]string, error) {
	query :=
		`SELECT email, username, is_verified, created_at FROM users
		 WHERE email = $1 OR username = $2
		 LIMIT 2
		 `

	rows, err := r.db.QueryContext(ctx, query, email, username)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var candidates []candidate
	for rows.Next() {
		var c candidate
		if err := rows.Scan(&c.Email, &c.Username, &c.IsVerified, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return conflictMessages(candidates, email, username, r.gracePeriod, time.Now()), nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO users (id, name, email, username, password_hash, verification_code)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 `

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Email, user.Username, user.PasswordHash, user.VerificationCode)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) MarkVerified(ctx context.Context, email, code string) error {
	query :=
		`SELECT id, name, username, verification_code, is_verified, created_at FROM users
		 WHERE email = $1
		 ORDER BY created_at DESC
		 LIMIT 1
		 `

	var u models.User
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&u.ID, &u.Name, &u.Username, &u.VerificationCode, &u.IsVerified, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrUserNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}

	// The grace check deliberately applies to every record, matching the
	// behavior registration relies on: an expired unverified row is as
	// good as absent.
	if time.Since(u.CreatedAt) > r.gracePeriod {
		return common.ErrUserNotFound
	}
	if u.VerificationCode != code {
		return common.ErrWrongVerificationCode
	}

	event, err := json.Marshal(models.UserRegistered{
		UserID:   u.ID,
		Name:     u.Name,
		Username: u.Username,
	})
	if err != nil {
		return fmt.Errorf("marshal user-registered event: %w", err)
	}

	// Flipping the flag and queueing the cross-context fact must land
	// together.
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx,
			`UPDATE users SET is_verified = TRUE WHERE id = $1`, u.ID); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		return outbox.NewPostgresRepository(tx).Enqueue(ctx, event)
	})
}

func (r *PostgresRepository) FetchCredential(ctx context.Context, identifier string) (string, string, error) {
	column := "username"
	if isEmail(identifier) {
		column = "email"
	}

	query := fmt.Sprintf(
		`SELECT id, password_hash FROM users
		 WHERE %s = $1
		 LIMIT 1
		 `, column)

	var id, hash string
	err := r.db.QueryRowContext(ctx, query, identifier).Scan(&id, &hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", common.ErrUserNotFound
		}
		return "", "", fmt.Errorf("db error: %w", err)
	}

	return id, hash, nil
}

func (r *PostgresRepository) VerifiedUserExists(ctx context.Context, userID string) (bool, error) {
	query :=
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1 AND is_verified)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return exists, nil
}

// isEmail reports whether identifier is a syntactically valid bare email
// address.
func isEmail(identifier string) bool {
	addr, err := mail.ParseAddress(identifier)
	return err == nil && addr.Address == identifier
}
