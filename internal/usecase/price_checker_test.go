package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wizzbot/internal/domain/entity"
	"wizzbot/internal/domain/repository"
	"wizzbot/pkg/logger"
	"wizzbot/pkg/metrics"
)

// Shared across the package: promauto registers in the default
// registry, so a second NewMetrics call would panic.
var testMetrics = metrics.NewMetrics("wizzbot_test")

type fakeSubscriptionRepo struct {
	getAll          func(ctx context.Context) ([]*entity.Subscription, error)
	updatePrice     func(ctx context.Context, id string, price float64) error
	updateBestDates func(ctx context.Context, id string, bestDates []entity.DatePriceInfo, minPrice float64) error
}

func (f *fakeSubscriptionRepo) GetAll(ctx context.Context) ([]*entity.Subscription, error) {
	return f.getAll(ctx)
}

func (f *fakeSubscriptionRepo) GetByID(ctx context.Context, id string) (*entity.Subscription, error) {
	return nil, nil
}

func (f *fakeSubscriptionRepo) GetByChatID(ctx context.Context, chatID int64) ([]*entity.Subscription, error) {
	return nil, nil
}

func (f *fakeSubscriptionRepo) Add(ctx context.Context, sub *entity.Subscription) error {
	return nil
}

func (f *fakeSubscriptionRepo) Remove(ctx context.Context, chatID int64, id string) error {
	return nil
}

func (f *fakeSubscriptionRepo) UpdatePrice(ctx context.Context, id string, price float64) error {
	if f.updatePrice == nil {
		return nil
	}
	return f.updatePrice(ctx, id, price)
}

func (f *fakeSubscriptionRepo) UpdateBestDates(ctx context.Context, id string, bestDates []entity.DatePriceInfo, minPrice float64) error {
	if f.updateBestDates == nil {
		return nil
	}
	return f.updateBestDates(ctx, id, bestDates, minPrice)
}

type fakeNotifier struct {
	sent    []string
	chatIDs []int64
	err     error
}

func (f *fakeNotifier) SendMessage(ctx context.Context, chatID int64, text string) error {
	if f.err != nil {
		return f.err
	}
	f.chatIDs = append(f.chatIDs, chatID)
	f.sent = append(f.sent, text)
	return nil
}

type fakeHistoryRepo struct {
	saved []*entity.PriceCheck
}

func (f *fakeHistoryRepo) Save(ctx context.Context, check *entity.PriceCheck) error {
	f.saved = append(f.saved, check)
	return nil
}

func (f *fakeHistoryRepo) ListBySubscription(ctx context.Context, subscriptionID string, limit int) ([]*entity.PriceCheck, error) {
	return f.saved, nil
}

func singlePriceProvider(price float64) *fakeTimetableProvider {
	return &fakeTimetableProvider{
		getTimetable: func(ctx context.Context, origin, destination, windowStart string) (*entity.Timetable, error) {
			return timetableWith(flightOn(origin, destination, windowStart, price)), nil
		},
	}
}

func newTestChecker(provider *fakeTimetableProvider, subRepo *fakeSubscriptionRepo, history *fakeHistoryRepo, notifier *fakeNotifier) *PriceChecker {
	agg := newTestAggregator(provider)
	var historyRepo repository.PriceHistoryRepository
	if history != nil {
		historyRepo = history
	}
	return NewPriceChecker(subRepo, historyRepo, notifier, agg, testMetrics, logger.NewNop(), 7)
}

func singleSub(id string, lastPrice *float64) *entity.Subscription {
	return &entity.Subscription{
		ID:          id,
		ChatID:      42,
		Origin:      "LTN",
		Destination: "EVN",
		DateType:    entity.DateTypeSingle,
		Date:        "20.06.2025",
		LastPrice:   lastPrice,
	}
}

func rangeSub(id string, lastPrice *float64, bestDates []entity.DatePriceInfo) *entity.Subscription {
	return &entity.Subscription{
		ID:          id,
		ChatID:      42,
		Origin:      "LTN",
		Destination: "EVN",
		DateType:    entity.DateTypeRange,
		StartDate:   "18.06.2025",
		EndDate:     "24.06.2025",
		LastPrice:   lastPrice,
		BestDates:   bestDates,
	}
}

func TestCheckOneSingleDateSuccess(t *testing.T) {
	var persistedID string
	var persistedPrice float64
	subRepo := &fakeSubscriptionRepo{
		updatePrice: func(ctx context.Context, id string, price float64) error {
			persistedID = id
			persistedPrice = price
			return nil
		},
	}
	history := &fakeHistoryRepo{}
	checker := newTestChecker(singlePriceProvider(95), subRepo, history, &fakeNotifier{})

	result, err := checker.CheckOne(context.Background(), singleSub("s1", floatPtr(100)))
	require.NoError(t, err)
	require.True(t, result.Success)

	assert.Equal(t, entity.ResultKindSingle, result.Kind)
	assert.Equal(t, 95.0, result.NewPrice)
	require.NotNil(t, result.OldPrice)
	assert.Equal(t, 100.0, *result.OldPrice)
	assert.True(t, result.PriceChanged)
	require.NotNil(t, result.FlightInfo)
	assert.Equal(t, "LTN", result.FlightInfo.OriginCode)
	assert.Equal(t, "EVN", result.FlightInfo.DestinationCode)
	assert.Equal(t, "20.06.2025", result.FlightInfo.Date)

	assert.Equal(t, "s1", persistedID)
	assert.Equal(t, 95.0, persistedPrice)

	require.Len(t, history.saved, 1)
	assert.Equal(t, "s1", history.saved[0].SubscriptionID)
	assert.Equal(t, 95.0, history.saved[0].Price)
	assert.Empty(t, history.saved[0].BestDate)
}

func TestCheckOneSingleDateFirstObservation(t *testing.T) {
	checker := newTestChecker(singlePriceProvider(95), &fakeSubscriptionRepo{}, nil, &fakeNotifier{})

	result, err := checker.CheckOne(context.Background(), singleSub("s1", nil))
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.False(t, result.PriceChanged, "first observation is a baseline, not a change")
	assert.Nil(t, result.OldPrice)
}

func TestCheckOneSingleDateMissingDate(t *testing.T) {
	persisted := false
	subRepo := &fakeSubscriptionRepo{
		updatePrice: func(ctx context.Context, id string, price float64) error {
			persisted = true
			return nil
		},
	}
	checker := newTestChecker(singlePriceProvider(95), subRepo, nil, &fakeNotifier{})

	sub := singleSub("s1", nil)
	sub.Date = ""
	result, err := checker.CheckOne(context.Background(), sub)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "В подписке не указана дата", result.Message)
	assert.False(t, persisted, "a failed check must not mutate the subscription")
}

func TestCheckOneUnknownDateType(t *testing.T) {
	checker := newTestChecker(singlePriceProvider(95), &fakeSubscriptionRepo{}, nil, &fakeNotifier{})

	sub := singleSub("s1", nil)
	sub.DateType = "weird"
	result, err := checker.CheckOne(context.Background(), sub)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Неизвестный тип подписки", result.Message)
}

func TestCheckOneSingleDateProviderFailure(t *testing.T) {
	provider := &fakeTimetableProvider{
		getTimetable: func(ctx context.Context, origin, destination, windowStart string) (*entity.Timetable, error) {
			return nil, errors.New("upstream down")
		},
	}
	persisted := false
	subRepo := &fakeSubscriptionRepo{
		updatePrice: func(ctx context.Context, id string, price float64) error {
			persisted = true
			return nil
		},
	}
	checker := newTestChecker(provider, subRepo, nil, &fakeNotifier{})

	result, err := checker.CheckOne(context.Background(), singleSub("s1", floatPtr(100)))
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Не удалось получить информацию о цене", result.Message)
	assert.False(t, persisted)
}

func TestCheckOneSingleDatePersistError(t *testing.T) {
	subRepo := &fakeSubscriptionRepo{
		updatePrice: func(ctx context.Context, id string, price float64) error {
			return errors.New("mongo down")
		},
	}
	history := &fakeHistoryRepo{}
	checker := newTestChecker(singlePriceProvider(95), subRepo, history, &fakeNotifier{})

	result, err := checker.CheckOne(context.Background(), singleSub("s1", floatPtr(100)))
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Empty(t, history.saved)
}

func TestCheckOneRangeSuccess(t *testing.T) {
	provider := &fakeTimetableProvider{
		getTimetable: func(ctx context.Context, origin, destination, windowStart string) (*entity.Timetable, error) {
			return timetableWith(
				flightOn(origin, destination, "2025-06-19", 80),
				flightOn(origin, destination, "2025-06-20", 150),
				flightOn(origin, destination, "2025-06-22", 80),
			), nil
		},
	}
	var persistedDates []entity.DatePriceInfo
	var persistedMin float64
	subRepo := &fakeSubscriptionRepo{
		updateBestDates: func(ctx context.Context, id string, bestDates []entity.DatePriceInfo, minPrice float64) error {
			persistedDates = bestDates
			persistedMin = minPrice
			return nil
		},
	}
	history := &fakeHistoryRepo{}
	checker := newTestChecker(provider, subRepo, history, &fakeNotifier{})

	old := []entity.DatePriceInfo{{Date: "19.06.2025", Price: 100}}
	result, err := checker.CheckOne(context.Background(), rangeSub("r1", floatPtr(100), old))
	require.NoError(t, err)
	require.True(t, result.Success)

	assert.Equal(t, entity.ResultKindRange, result.Kind)
	assert.Equal(t, 80.0, result.NewPrice)
	assert.True(t, result.PriceChanged)
	assert.True(t, result.DatesChanged)
	require.Len(t, result.BestDates, 2)
	assert.Equal(t, "19.06.2025", result.BestDates[0].Date)
	assert.Equal(t, "22.06.2025", result.BestDates[1].Date)

	assert.Equal(t, 80.0, persistedMin)
	assert.Equal(t, result.BestDates, persistedDates)

	require.Len(t, history.saved, 1)
	assert.Equal(t, 80.0, history.saved[0].Price)
	assert.Equal(t, "19.06.2025", history.saved[0].BestDate)
}

func TestCheckOneRangeMissingDates(t *testing.T) {
	checker := newTestChecker(singlePriceProvider(95), &fakeSubscriptionRepo{}, nil, &fakeNotifier{})

	sub := rangeSub("r1", nil, nil)
	sub.EndDate = ""
	result, err := checker.CheckOne(context.Background(), sub)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "В подписке не указан диапазон дат", result.Message)
}

func TestCheckOneRangeUnchanged(t *testing.T) {
	provider := &fakeTimetableProvider{
		getTimetable: func(ctx context.Context, origin, destination, windowStart string) (*entity.Timetable, error) {
			return timetableWith(flightOn(origin, destination, "2025-06-19", 80)), nil
		},
	}
	persisted := false
	subRepo := &fakeSubscriptionRepo{
		updateBestDates: func(ctx context.Context, id string, bestDates []entity.DatePriceInfo, minPrice float64) error {
			persisted = true
			return nil
		},
	}
	checker := newTestChecker(provider, subRepo, nil, &fakeNotifier{})

	old := []entity.DatePriceInfo{{Date: "19.06.2025", Price: 80, OriginCode: "LTN", DestinationCode: "EVN"}}
	result, err := checker.CheckOne(context.Background(), rangeSub("r1", floatPtr(80), old))
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.False(t, result.PriceChanged)
	assert.False(t, result.DatesChanged)
	assert.True(t, persisted, "state is refreshed even without changes")
}

func TestCheckAllIsolatesFailures(t *testing.T) {
	subs := []*entity.Subscription{
		singleSub("s1", floatPtr(100)),
		singleSub("s2", floatPtr(100)),
		singleSub("s3", floatPtr(100)),
	}
	subRepo := &fakeSubscriptionRepo{
		getAll: func(ctx context.Context) ([]*entity.Subscription, error) {
			return subs, nil
		},
		updatePrice: func(ctx context.Context, id string, price float64) error {
			if id == "s2" {
				panic("storage corrupted")
			}
			return nil
		},
	}
	notifier := &fakeNotifier{}
	checker := newTestChecker(singlePriceProvider(95), subRepo, nil, notifier)

	err := checker.CheckAll(context.Background())
	require.NoError(t, err)

	// s1 and s3 still complete and notify despite s2 blowing up.
	require.Len(t, notifier.sent, 2)
	assert.Equal(t, []int64{42, 42}, notifier.chatIDs)
	assert.Contains(t, notifier.sent[0], "LTN")
	assert.Contains(t, notifier.sent[0], "95")
}

func TestCheckAllSkipsNotificationWithoutChanges(t *testing.T) {
	subs := []*entity.Subscription{singleSub("s1", floatPtr(95))}
	subRepo := &fakeSubscriptionRepo{
		getAll: func(ctx context.Context) ([]*entity.Subscription, error) {
			return subs, nil
		},
	}
	notifier := &fakeNotifier{}
	checker := newTestChecker(singlePriceProvider(95), subRepo, nil, notifier)

	require.NoError(t, checker.CheckAll(context.Background()))
	assert.Empty(t, notifier.sent)
}

func TestCheckAllFirstObservationStaysQuiet(t *testing.T) {
	subs := []*entity.Subscription{singleSub("s1", nil)}
	subRepo := &fakeSubscriptionRepo{
		getAll: func(ctx context.Context) ([]*entity.Subscription, error) {
			return subs, nil
		},
	}
	notifier := &fakeNotifier{}
	checker := newTestChecker(singlePriceProvider(95), subRepo, nil, notifier)

	require.NoError(t, checker.CheckAll(context.Background()))
	assert.Empty(t, notifier.sent)
}

func TestCheckAllRangeNotifiesOnDatesChangeAlone(t *testing.T) {
	provider := &fakeTimetableProvider{
		getTimetable: func(ctx context.Context, origin, destination, windowStart string) (*entity.Timetable, error) {
			return timetableWith(flightOn(origin, destination, "2025-06-22", 80)), nil
		},
	}
	old := []entity.DatePriceInfo{{Date: "19.06.2025", Price: 80}}
	subs := []*entity.Subscription{rangeSub("r1", floatPtr(80), old)}
	subRepo := &fakeSubscriptionRepo{
		getAll: func(ctx context.Context) ([]*entity.Subscription, error) {
			return subs, nil
		},
	}
	notifier := &fakeNotifier{}
	checker := newTestChecker(provider, subRepo, nil, notifier)

	require.NoError(t, checker.CheckAll(context.Background()))
	require.Len(t, notifier.sent, 1)
	assert.Contains(t, notifier.sent[0], "22.06.2025")
	assert.Contains(t, notifier.sent[0], "Обновление лучших дат")
}

func TestCheckAllLoadFailure(t *testing.T) {
	subRepo := &fakeSubscriptionRepo{
		getAll: func(ctx context.Context) ([]*entity.Subscription, error) {
			return nil, errors.New("mongo down")
		},
	}
	checker := newTestChecker(singlePriceProvider(95), subRepo, nil, &fakeNotifier{})

	assert.Error(t, checker.CheckAll(context.Background()))
}

func TestCheckAllSurvivesNotifierFailure(t *testing.T) {
	subs := []*entity.Subscription{
		singleSub("s1", floatPtr(100)),
		singleSub("s2", floatPtr(100)),
	}
	subRepo := &fakeSubscriptionRepo{
		getAll: func(ctx context.Context) ([]*entity.Subscription, error) {
			return subs, nil
		},
	}
	notifier := &fakeNotifier{err: errors.New("telegram unreachable")}
	checker := newTestChecker(singlePriceProvider(95), subRepo, nil, notifier)

	require.NoError(t, checker.CheckAll(context.Background()))
	assert.Empty(t, notifier.sent)
}
