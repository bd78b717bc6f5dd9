package repomanager

import (
	"context"
	"database/sql"

	"github.com/miragechat/identity/internal/server/repositories/outbox"
	"github.com/miragechat/identity/internal/server/repositories/users"
)

// RepositoryManager bundles the storage backends behind one handle so the
// application wires a single dependency.
type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Outbox() outbox.Repository
	Close() error
}
