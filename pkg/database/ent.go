package database

import (
	"context"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/carlosmariath/painel-clinica-sub001/config"
	"github.com/carlosmariath/painel-clinica-sub001/internal/repo"
)

// NewEntClient opens the application database and wraps it in the
// generated ent client.
func NewEntClient(cfg config.DatabaseConfig) (*repo.Client, error) {
	db, err := openSQLDB(FromCentralConfig(cfg))
	if err != nil {
		return nil, err
	}

	drv := entsql.OpenDB(dialect.Postgres, db)
	return repo.NewClient(repo.Driver(drv)), nil
}

// MigrateEnt applies the schema migration for all entities.
func MigrateEnt(ctx context.Context, client *repo.Client) error {
	return client.Schema.Create(ctx)
}
