package repository

import (
	"context"
	"time"

	"wizzbot/internal/domain/entity"
	"wizzbot/internal/domain/repository"

	"gorm.io/gorm"
)

// GormPriceHistoryRepository implements the PriceHistoryRepository interface
type GormPriceHistoryRepository struct {
	db *gorm.DB
}

// NewGormPriceHistoryRepository creates a new GORM price history repository
func NewGormPriceHistoryRepository(db *gorm.DB) repository.PriceHistoryRepository {
	return &GormPriceHistoryRepository{
		db: db,
	}
}

// PriceChecks GORM model for database mapping
type PriceChecks struct {
	ID             uint   `gorm:"primaryKey"`
	SubscriptionID string `gorm:"column:subscription_id;index"`
	Origin         string `gorm:"column:origin"`
	Destination    string `gorm:"column:destination"`
	Price          float64
	BestDate       string `gorm:"column:best_date"`
	CheckedAt      time.Time
}

// TableName overrides the default table name
func (PriceChecks) TableName() string {
	return "price_checks"
}

// Save appends one successful check to the history
func (r *GormPriceHistoryRepository) Save(ctx context.Context, check *entity.PriceCheck) error {
	row := PriceChecks{
		SubscriptionID: check.SubscriptionID,
		Origin:         check.Origin,
		Destination:    check.Destination,
		Price:          check.Price,
		BestDate:       check.BestDate,
		CheckedAt:      check.CheckedAt,
	}

	result := r.db.WithContext(ctx).Create(&row)
	if result.Error != nil {
		return result.Error
	}
	check.ID = row.ID
	return nil
}

// ListBySubscription returns the most recent checks for one subscription
func (r *GormPriceHistoryRepository) ListBySubscription(ctx context.Context, subscriptionID string, limit int) ([]*entity.PriceCheck, error) {
	var rows []PriceChecks
	result := r.db.WithContext(ctx).
		Where("subscription_id = ?", subscriptionID).
		Order("checked_at DESC").
		Limit(limit).
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	// Convert GORM models to domain entities
	checks := make([]*entity.PriceCheck, 0, len(rows))
	for _, row := range rows {
		checks = append(checks, &entity.PriceCheck{
			ID:             row.ID,
			SubscriptionID: row.SubscriptionID,
			Origin:         row.Origin,
			Destination:    row.Destination,
			Price:          row.Price,
			BestDate:       row.BestDate,
			CheckedAt:      row.CheckedAt,
		})
	}
	return checks, nil
}
