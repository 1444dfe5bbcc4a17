package usecase

import (
	"context"
	"fmt"
	"time"

	"wizzbot/internal/domain/entity"
	"wizzbot/internal/domain/repository"
	"wizzbot/pkg/logger"
	"wizzbot/pkg/metrics"
	"wizzbot/templates"
)

// PriceChecker drives price checks end-to-end: aggregation, change
// detection, persistence and the notification decision.
type PriceChecker struct {
	subscriptionRepo repository.SubscriptionRepository
	historyRepo      repository.PriceHistoryRepository
	notifier         repository.Notifier
	aggregator       *PriceAggregator
	metrics          *metrics.Metrics
	logger           logger.Logger
	maxDaysToCheck   int
}

// NewPriceChecker creates a new price checker. historyRepo may be nil
// when no history store is configured.
func NewPriceChecker(
	subscriptionRepo repository.SubscriptionRepository,
	historyRepo repository.PriceHistoryRepository,
	notifier repository.Notifier,
	aggregator *PriceAggregator,
	metrics *metrics.Metrics,
	logger logger.Logger,
	maxDaysToCheck int,
) *PriceChecker {
	return &PriceChecker{
		subscriptionRepo: subscriptionRepo,
		historyRepo:      historyRepo,
		notifier:         notifier,
		aggregator:       aggregator,
		metrics:          metrics,
		logger:           logger,
		maxDaysToCheck:   maxDaysToCheck,
	}
}

// CheckOne checks a single subscription, dispatching on its date type.
// Failed checks come back as a result with Success=false; the returned
// error is non-nil only when persisting the outcome failed. A failed
// check never mutates subscription state.
func (pc *PriceChecker) CheckOne(ctx context.Context, sub *entity.Subscription) (*entity.CheckResult, error) {
	switch sub.DateType {
	case entity.DateTypeSingle:
		return pc.checkSingleDate(ctx, sub)
	case entity.DateTypeRange:
		return pc.checkDateRange(ctx, sub)
	default:
		return entity.NewCheckFailure(entity.ResultKind(sub.DateType), "Неизвестный тип подписки"), nil
	}
}

func (pc *PriceChecker) checkSingleDate(ctx context.Context, sub *entity.Subscription) (*entity.CheckResult, error) {
	if sub.Date == "" {
		return entity.NewCheckFailure(entity.ResultKindSingle, "В подписке не указана дата"), nil
	}

	quote, err := pc.aggregator.BestPriceForDate(ctx, sub.Origin, sub.Destination, sub.Date)
	if err != nil {
		pc.logger.Error("Single-date check failed",
			"subscriptionId", sub.ID,
			"error", err)
		return entity.NewCheckFailure(entity.ResultKindSingle, "Не удалось получить информацию о цене"), nil
	}

	oldPrice := sub.LastPrice
	priceChanged := PriceChanged(oldPrice, quote.Price)

	if err := pc.subscriptionRepo.UpdatePrice(ctx, sub.ID, quote.Price); err != nil {
		return nil, fmt.Errorf("failed to persist price for subscription %s: %w", sub.ID, err)
	}
	pc.recordHistory(ctx, sub, quote.Price, "")

	flightInfo := quote.FlightInfo
	flightInfo.Date = sub.Date

	return &entity.CheckResult{
		Kind:         entity.ResultKindSingle,
		Success:      true,
		OldPrice:     oldPrice,
		NewPrice:     quote.Price,
		PriceChanged: priceChanged,
		FlightInfo:   &flightInfo,
	}, nil
}

func (pc *PriceChecker) checkDateRange(ctx context.Context, sub *entity.Subscription) (*entity.CheckResult, error) {
	if sub.StartDate == "" || sub.EndDate == "" {
		return entity.NewCheckFailure(entity.ResultKindRange, "В подписке не указан диапазон дат"), nil
	}

	quote, err := pc.aggregator.BestPricesInRange(ctx, sub.Origin, sub.Destination, sub.StartDate, sub.EndDate, pc.maxDaysToCheck)
	if err != nil {
		pc.logger.Error("Date-range check failed",
			"subscriptionId", sub.ID,
			"error", err)
		return entity.NewCheckFailure(entity.ResultKindRange, "Не удалось получить информацию о ценах в указанном диапазоне"), nil
	}

	oldPrice := sub.LastPrice
	priceChanged := PriceChanged(oldPrice, quote.MinPrice)
	datesChanged := BestDatesChanged(sub.BestDates, quote.BestDates)

	if err := pc.subscriptionRepo.UpdateBestDates(ctx, sub.ID, quote.BestDates, quote.MinPrice); err != nil {
		return nil, fmt.Errorf("failed to persist best dates for subscription %s: %w", sub.ID, err)
	}
	pc.recordHistory(ctx, sub, quote.MinPrice, quote.BestDates[0].Date)

	return &entity.CheckResult{
		Kind:         entity.ResultKindRange,
		Success:      true,
		OldPrice:     oldPrice,
		NewPrice:     quote.MinPrice,
		PriceChanged: priceChanged,
		BestDates:    quote.BestDates,
		DatesChanged: datesChanged,
	}, nil
}

// CheckAll sweeps every subscription sequentially. Each item runs
// inside its own error boundary so one bad subscription cannot stop
// the rest of the sweep.
func (pc *PriceChecker) CheckAll(ctx context.Context) error {
	start := time.Now()

	subs, err := pc.subscriptionRepo.GetAll(ctx)
	if err != nil {
		pc.metrics.ErrorsCount.WithLabelValues("load_subscriptions").Inc()
		return fmt.Errorf("failed to load subscriptions: %w", err)
	}

	pc.logger.Info("Starting price sweep", "subscriptions", len(subs))

	for _, sub := range subs {
		pc.checkSubscription(ctx, sub)
	}

	pc.metrics.SweepDuration.Observe(time.Since(start).Seconds())
	pc.logger.Info("Price sweep completed",
		"subscriptions", len(subs),
		"duration", time.Since(start).String())
	return nil
}

func (pc *PriceChecker) checkSubscription(ctx context.Context, sub *entity.Subscription) {
	defer func() {
		if rec := recover(); rec != nil {
			pc.logger.Error("Panic during subscription check",
				"subscriptionId", sub.ID,
				"panic", rec)
			pc.metrics.ErrorsCount.WithLabelValues("check").Inc()
		}
	}()

	pc.logger.Info("Checking subscription",
		"subscriptionId", sub.ID,
		"origin", sub.Origin,
		"destination", sub.Destination)
	pc.metrics.SubscriptionsChecked.Inc()

	result, err := pc.CheckOne(ctx, sub)
	if err != nil {
		pc.logger.Error("Check failed",
			"subscriptionId", sub.ID,
			"error", err)
		pc.metrics.ErrorsCount.WithLabelValues("persist").Inc()
		return
	}
	if !result.Success {
		pc.logger.Error("Check failed",
			"subscriptionId", sub.ID,
			"message", result.Message)
		pc.metrics.ErrorsCount.WithLabelValues("check").Inc()
		return
	}

	pc.notify(ctx, sub, result)
}

// notify decides whether the result warrants a message and sends it.
func (pc *PriceChecker) notify(ctx context.Context, sub *entity.Subscription, result *entity.CheckResult) {
	var message string

	switch result.Kind {
	case entity.ResultKindSingle:
		if result.PriceChanged && result.OldPrice != nil && result.NewPrice > 0 {
			message = templates.PriceAlertMessage(sub, result.NewPrice, *result.OldPrice, result.FlightInfo)
		}
	case entity.ResultKindRange:
		if result.PriceChanged || result.DatesChanged {
			message = templates.BestDatesAlertMessage(sub, result.BestDates, result.OldPrice, true)
		}
	}

	if message == "" {
		pc.logger.Info("No changes", "subscriptionId", sub.ID)
		return
	}

	if err := pc.notifier.SendMessage(ctx, sub.ChatID, message); err != nil {
		pc.logger.Error("Failed to send notification",
			"subscriptionId", sub.ID,
			"chatId", sub.ChatID,
			"error", err)
		pc.metrics.ErrorsCount.WithLabelValues("notify").Inc()
		return
	}
	pc.metrics.NotificationsSent.Inc()
}

// recordHistory appends the outcome of a successful check; a failure
// here is logged and otherwise ignored.
func (pc *PriceChecker) recordHistory(ctx context.Context, sub *entity.Subscription, price float64, bestDate string) {
	if pc.historyRepo == nil {
		return
	}

	check := &entity.PriceCheck{
		SubscriptionID: sub.ID,
		Origin:         sub.Origin,
		Destination:    sub.Destination,
		Price:          price,
		BestDate:       bestDate,
		CheckedAt:      time.Now(),
	}
	if err := pc.historyRepo.Save(ctx, check); err != nil {
		pc.logger.Error("Failed to save price history",
			"subscriptionId", sub.ID,
			"error", err)
	}
}
