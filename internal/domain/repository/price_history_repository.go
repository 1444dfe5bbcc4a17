package repository

import (
	"context"

	"wizzbot/internal/domain/entity"
)

// PriceHistoryRepository defines the interface for the append-only log
// of successful price checks.
type PriceHistoryRepository interface {
	Save(ctx context.Context, check *entity.PriceCheck) error
	ListBySubscription(ctx context.Context, subscriptionID string, limit int) ([]*entity.PriceCheck, error)
}
