package relay

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/miragechat/identity/internal/logging"
	"github.com/miragechat/identity/internal/server/metrics"
	"github.com/miragechat/identity/internal/server/models"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// fakeRepo serves one batch and records what the relay settles.
type fakeRepo struct {
	mu       sync.Mutex
	batch    []*models.OutboxMessage
	deleted  []string
	unlocked []string
	settled  chan string
}

func (f *fakeRepo) Enqueue(ctx context.Context, body []byte) error { return nil }

func (f *fakeRepo) GetMessageBatch(ctx context.Context, limit int) ([]*models.OutboxMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	batch := f.batch
	f.batch = nil
	return batch, nil
}

func (f *fakeRepo) Delete(ctx context.Context, ids []string) error {
	f.mu.Lock()
	f.deleted = append(f.deleted, ids...)
	f.mu.Unlock()
	for _, id := range ids {
		f.settled <- id
	}
	return nil
}

func (f *fakeRepo) Unlock(ctx context.Context, ids []string) error {
	f.mu.Lock()
	f.unlocked = append(f.unlocked, ids...)
	f.mu.Unlock()
	for _, id := range ids {
		f.settled <- id
	}
	return nil
}

// fakePublisher fails for bodies listed in failFor.
type fakePublisher struct {
	mu        sync.Mutex
	failFor   map[string]bool
	published [][]byte
}

func (f *fakePublisher) Publish(body []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor[string(body)] {
		return errors.New("broker unavailable")
	}
	f.published = append(f.published, body)
	return nil
}

func (f *fakePublisher) Close() error { return nil }

func TestRelay_DeliversAndSettles(t *testing.T) {
	repo := &fakeRepo{
		batch: []*models.OutboxMessage{
			{ID: "m1", Body: []byte("ok"), Locked: true},
			{ID: "m2", Body: []byte("bad"), Locked: true},
		},
		settled: make(chan string, 2),
	}
	pub := &fakePublisher{failFor: map[string]bool{"bad": true}}

	r := NewRelay(repo, pub, nopLogger{}, metrics.New(), time.Millisecond, 10)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	for i := 0; i < 2; i++ {
		select {
		case <-repo.settled:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for relay to settle messages")
		}
	}
	cancel()

	if err := <-done; err != nil {
		t.Fatalf("Run returned error after cancel: %v", err)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()
	if len(repo.deleted) != 1 || repo.deleted[0] != "m1" {
		t.Fatalf("deleted = %v, want [m1]", repo.deleted)
	}
	if len(repo.unlocked) != 1 || repo.unlocked[0] != "m2" {
		t.Fatalf("unlocked = %v, want [m2]", repo.unlocked)
	}

	pub.mu.Lock()
	defer pub.mu.Unlock()
	if len(pub.published) != 1 || string(pub.published[0]) != "ok" {
		t.Fatalf("published = %v, want [ok]", pub.published)
	}
}

func TestRelay_StopsOnCancel(t *testing.T) {
	repo := &fakeRepo{settled: make(chan string, 1)}
	r := NewRelay(repo, &fakePublisher{}, nopLogger{}, nil, time.Millisecond, 10)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error after cancel: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("relay did not stop on cancel")
	}
}
