package seeder

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

type Runner struct {
	Seeders []Seeder
	Logger  *zap.Logger
}

// Run executes every seeder in order. Nothing is written when the first
// seeded user already exists.
func (r Runner) Run(ctx context.Context, store Store, ds Dataset) (bool, error) {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if store.Users == nil {
		return false, fmt.Errorf("nil store")
	}

	if len(ds.Users) > 0 {
		exists, err := store.Users.ExistsByEmail(ctx, ds.Users[0].Email)
		if err != nil {
			return false, fmt.Errorf("seed check: %w", err)
		}
		if exists {
			logger.Info("[Seeder] data set already present, skipping")
			return false, nil
		}
	}

	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, store); err != nil {
			return false, fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		logger.Info("[Seeder] done", zap.String("seeder", s.Name()))
	}
	return true, nil
}
