package outbox

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

// stringSliceConverter lets []string batch arguments through sqlmock the
// way the pgx driver accepts them for ANY($1).
type stringSliceConverter struct{}

func (stringSliceConverter) ConvertValue(v any) (driver.Value, error) {
	if s, ok := v.([]string); ok {
		return s, nil
	}
	return driver.DefaultParameterConverter.ConvertValue(v)
}

func newMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.ValueConverterOption(stringSliceConverter{}))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock, db
}

func expectationsMet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestEnqueue(t *testing.T) {
	repo, mock, _ := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox")).
		WithArgs(sqlmock.AnyArg(), []byte(`{"userId":"u1"}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Enqueue(context.Background(), []byte(`{"userId":"u1"}`)); err != nil {
		t.Fatalf("Enqueue error: %v", err)
	}
	expectationsMet(t, mock)
}

func TestGetMessageBatch_LocksAndReturns(t *testing.T) {
	repo, mock, _ := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "body"}).
		AddRow("m1", []byte("a")).
		AddRow("m2", []byte("b"))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE outbox SET locked = TRUE")).
		WithArgs(100).
		WillReturnRows(rows)

	batch, err := repo.GetMessageBatch(context.Background(), 100)
	if err != nil {
		t.Fatalf("GetMessageBatch error: %v", err)
	}
	if len(batch) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(batch))
	}
	if batch[0].ID != "m1" || string(batch[1].Body) != "b" {
		t.Fatalf("unexpected batch: %+v", batch)
	}
	if !batch[0].Locked {
		t.Fatalf("returned messages must be marked locked")
	}
	expectationsMet(t, mock)
}

func TestGetMessageBatch_Empty(t *testing.T) {
	repo, mock, _ := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE outbox SET locked = TRUE")).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "body"}))

	batch, err := repo.GetMessageBatch(context.Background(), 10)
	if err != nil {
		t.Fatalf("GetMessageBatch error: %v", err)
	}
	if len(batch) != 0 {
		t.Fatalf("expected empty batch, got %d", len(batch))
	}
	expectationsMet(t, mock)
}

func TestDelete(t *testing.T) {
	repo, mock, _ := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM outbox WHERE id = ANY($1)")).
		WithArgs([]string{"m1", "m2"}).
		WillReturnResult(sqlmock.NewResult(0, 2))

	if err := repo.Delete(context.Background(), []string{"m1", "m2"}); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	expectationsMet(t, mock)
}

func TestDelete_EmptyIsNoop(t *testing.T) {
	repo, mock, _ := newMockRepo(t)

	if err := repo.Delete(context.Background(), nil); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	expectationsMet(t, mock)
}

func TestUnlock(t *testing.T) {
	repo, mock, _ := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox SET locked = FALSE WHERE id = ANY($1)")).
		WithArgs([]string{"m1"}).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Unlock(context.Background(), []string{"m1"}); err != nil {
		t.Fatalf("Unlock error: %v", err)
	}
	expectationsMet(t, mock)
}
