// Package relay drains the outbox table into the message queue. Rows are
// locked while a batch is in flight: published ones get deleted, failed
// ones get unlocked for a later retry.
package relay

import (
	"context"
	"errors"
	"time"

	"github.com/miragechat/identity/internal/logging"
	"github.com/miragechat/identity/internal/server/metrics"
	"github.com/miragechat/identity/internal/server/models"
	"github.com/miragechat/identity/internal/server/repositories/outbox"
	"golang.org/x/sync/errgroup"
)

type Relay struct {
	repo      outbox.Repository
	publisher Publisher
	logger    logging.Logger
	metrics   *metrics.Metrics

	pollInterval time.Duration
	batchSize    int
}

func NewRelay(repo outbox.Repository, p Publisher, l logging.Logger, m *metrics.Metrics,
	pollInterval time.Duration, batchSize int) *Relay {
	return &Relay{
		repo:         repo,
		publisher:    p,
		logger:       l.With("module", "outbox_relay"),
		metrics:      m,
		pollInterval: pollInterval,
		batchSize:    batchSize,
	}
}

// Run blocks until ctx is cancelled. The pipeline is three stages wired
// by channels: poll locks a batch, publish pushes each message to the
// queue, settle deletes the delivered rows and unlocks the rest.
func (r *Relay) Run(ctx context.Context) error {

	g, ctx := errgroup.WithContext(ctx)

	pending := make(chan *models.OutboxMessage)
	published := make(chan string)
	failed := make(chan string)

	g.Go(func() error { return r.poll(ctx, pending) })
	g.Go(func() error { return r.publish(ctx, pending, published, failed) })
	g.Go(func() error { return r.settle(ctx, published, failed) })

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (r *Relay) poll(ctx context.Context, pending chan<- *models.OutboxMessage) error {
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		batch, err := r.repo.GetMessageBatch(ctx, r.batchSize)
		if err != nil {
			r.logger.Error(ctx, "fetch outbox batch", "error", err.Error())
			continue
		}

		for _, msg := range batch {
			select {
			case pending <- msg:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

func (r *Relay) publish(ctx context.Context, pending <-chan *models.OutboxMessage,
	published, failed chan<- string) error {

	for {
		var msg *models.OutboxMessage
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg = <-pending:
		}

		out := published
		if err := r.publisher.Publish(msg.Body); err != nil {
			r.logger.Error(ctx, "publish outbox message", "id", msg.ID, "error", err.Error())
			out = failed
		}

		select {
		case out <- msg.ID:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (r *Relay) settle(ctx context.Context, published, failed <-chan string) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case id := <-published:
			if err := r.repo.Delete(ctx, []string{id}); err != nil {
				r.logger.Error(ctx, "delete published message", "id", id, "error", err.Error())
				continue
			}
			if r.metrics != nil {
				r.metrics.OutboxPublished.Inc()
			}

		case id := <-failed:
			if err := r.repo.Unlock(ctx, []string{id}); err != nil {
				r.logger.Error(ctx, "unlock failed message", "id", id, "error", err.Error())
				continue
			}
			if r.metrics != nil {
				r.metrics.OutboxFailed.Inc()
			}
		}
	}
}
