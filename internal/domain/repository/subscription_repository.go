package repository

import (
	"context"

	"wizzbot/internal/domain/entity"
)

// SubscriptionRepository defines the interface for subscription storage.
// UpdatePrice and UpdateBestDates are the only mutations the price
// checker performs; the rest serve the user-facing layer.
type SubscriptionRepository interface {
	GetAll(ctx context.Context) ([]*entity.Subscription, error)
	GetByID(ctx context.Context, id string) (*entity.Subscription, error)
	GetByChatID(ctx context.Context, chatID int64) ([]*entity.Subscription, error)
	Add(ctx context.Context, sub *entity.Subscription) error
	Remove(ctx context.Context, chatID int64, id string) error
	UpdatePrice(ctx context.Context, id string, price float64) error
	UpdateBestDates(ctx context.Context, id string, bestDates []entity.DatePriceInfo, minPrice float64) error
}
