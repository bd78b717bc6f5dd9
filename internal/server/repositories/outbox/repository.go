// Package outbox stores pending cross-context events until the relay
// publishes them to the message queue.
package outbox

import (
	"context"

	"github.com/miragechat/identity/internal/server/models"
)

type Repository interface {
	// Enqueue stores one serialized event.
	Enqueue(ctx context.Context, body []byte) error

	// GetMessageBatch locks and returns up to limit unlocked messages,
	// oldest first. Locked rows are invisible to concurrent batches.
	GetMessageBatch(ctx context.Context, limit int) ([]*models.OutboxMessage, error)

	// Delete removes messages that were published successfully.
	Delete(ctx context.Context, ids []string) error

	// Unlock releases messages whose publish failed so a later batch can
	// retry them.
	Unlock(ctx context.Context, ids []string) error
}
