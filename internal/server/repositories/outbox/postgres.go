package outbox

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/miragechat/identity/internal/dbx"
	"github.com/miragechat/identity/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Enqueue(ctx context.Context, body []byte) error {
	query :=
		`INSERT INTO outbox (id, body)
		 VALUES ($1, $2)
		 `

	if _, err := r.db.ExecContext(ctx, query, uuid.NewString(), body); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetMessageBatch(ctx context.Context, limit int) ([]*models.OutboxMessage, error) {
	query :=
		`UPDATE outbox SET locked = TRUE
		 WHERE id IN (
		     SELECT id FROM outbox
		     WHERE NOT locked
		     ORDER BY created_at
		     LIMIT $1
		     FOR UPDATE SKIP LOCKED
		 )
		 RETURNING id, body
		 `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var batch []*models.OutboxMessage
	for rows.Next() {
		m := &models.OutboxMessage{Locked: true}
		if err := rows.Scan(&m.ID, &m.Body); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		batch = append(batch, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return batch, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM outbox WHERE id = ANY($1)`, ids); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Unlock(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	if _, err := r.db.ExecContext(ctx,
		`UPDATE outbox SET locked = FALSE WHERE id = ANY($1)`, ids); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
