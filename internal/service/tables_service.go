package service

import (
	"context"

	"microblog/internal/repository"
)

type TablesService interface {
	InitDB(ctx context.Context) (int, error)
	Health(ctx context.Context) error
}

type tablesService struct {
	tablesRepo repository.TablesRepository
}

func NewTablesService(tablesRepo repository.TablesRepository) TablesService {
	return &tablesService{tablesRepo: tablesRepo}
}

// InitDB creates any missing tables and reports how many application tables
// exist afterwards.
func (t *tablesService) InitDB(ctx context.Context) (int, error) {
	if err := t.tablesRepo.CreateTables(ctx); err != nil {
		return 0, err
	}

	return t.tablesRepo.CountTablesDB(ctx)
}

func (t *tablesService) Health(ctx context.Context) error {
	return t.tablesRepo.Ping(ctx)
}
