package repository

import (
	"context"
	"fmt"

	"microblog/internal/database"
)

var countTablesQuery = map[string]string{
	database.DialectPostgres: `
		SELECT COUNT(*)
		FROM information_schema.tables
		WHERE table_schema = 'public' AND table_name IN ('users', 'posts')
	`,
	database.DialectSQLite: `
		SELECT COUNT(*)
		FROM sqlite_master
		WHERE type = 'table' AND name IN ('users', 'posts')
	`,
}

type tablesRepository struct {
	db *database.DB
}

func NewTablesRepository(db *database.DB) TablesRepository {
	return &tablesRepository{db: db}
}

func (r *tablesRepository) CreateTables(ctx context.Context) error {
	return r.db.RunMigrations(ctx)
}

func (r *tablesRepository) CountTablesDB(ctx context.Context) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, countTablesQuery[r.db.Dialect()])
	if err != nil {
		return 0, fmt.Errorf("count database tables: %w", err)
	}

	return count, nil
}

func (r *tablesRepository) Ping(ctx context.Context) error {
	return r.db.HealthCheck(ctx)
}
