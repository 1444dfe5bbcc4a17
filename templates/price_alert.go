package templates

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"wizzbot/internal/domain/entity"
)

// Changes of at least this share of the old price get the "significant"
// wording and a buy recommendation.
const significantChangePercent = 20

// PriceChange classifies the move between two observed prices.
type PriceChange struct {
	Diff          float64
	PercentDiff   int
	IsDecrease    bool
	IsSignificant bool
}

// CalculatePriceChange computes the absolute and relative move from
// oldPrice to newPrice.
func CalculatePriceChange(oldPrice, newPrice float64) PriceChange {
	diff := math.Abs(oldPrice - newPrice)
	percentDiff := int(math.Round(diff / oldPrice * 100))
	return PriceChange{
		Diff:          diff,
		PercentDiff:   percentDiff,
		IsDecrease:    newPrice < oldPrice,
		IsSignificant: percentDiff >= significantChangePercent,
	}
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

// PriceChangeText renders the one-line summary of a price move.
func PriceChangeText(oldPrice, newPrice float64) string {
	change := CalculatePriceChange(oldPrice, newPrice)

	var b strings.Builder
	if change.IsDecrease {
		if change.IsSignificant {
			fmt.Fprintf(&b, "💹 Значительное снижение: %s USD (-%d%%)! 🔥\n", formatPrice(change.Diff), change.PercentDiff)
			b.WriteString("\nРекомендуем рассмотреть покупку билетов!")
		} else {
			fmt.Fprintf(&b, "💹 Снижение: %s USD (-%d%%)\n", formatPrice(change.Diff), change.PercentDiff)
		}
	} else {
		if change.IsSignificant {
			fmt.Fprintf(&b, "📈 Значительное повышение: %s USD (+%d%%) ⚠️\n", formatPrice(change.Diff), change.PercentDiff)
		} else {
			fmt.Fprintf(&b, "📈 Повышение: %s USD (+%d%%)\n", formatPrice(change.Diff), change.PercentDiff)
		}
	}
	return b.String()
}

// PriceAlertMessage renders the notification for a single-date
// subscription whose price moved.
func PriceAlertMessage(sub *entity.Subscription, newPrice, oldPrice float64, flightInfo *entity.FlightInfo) string {
	var b strings.Builder

	if newPrice < oldPrice {
		b.WriteString("✅ Снижение цены на билеты!\n\n")
	} else {
		b.WriteString("📈 Изменение цены на билеты!\n\n")
	}

	fmt.Fprintf(&b, "%s ➡️ %s\n", sub.Origin, sub.Destination)

	if sub.DateType == entity.DateTypeSingle {
		fmt.Fprintf(&b, "📅 Дата: %s\n", sub.Date)
	} else {
		fmt.Fprintf(&b, "📅 Период: %s - %s\n", sub.StartDate, sub.EndDate)
		if sub.BestDate != "" {
			fmt.Fprintf(&b, "📅 Лучшая дата: %s\n", sub.BestDate)
		}
	}

	if flightInfo != nil {
		fmt.Fprintf(&b, "✈️ Рейс: %s → %s\n", flightInfo.OriginCode, flightInfo.DestinationCode)
	}

	fmt.Fprintf(&b, "\n💰 Старая цена: %s USD\n", formatPrice(oldPrice))
	fmt.Fprintf(&b, "💰 Новая цена: %s USD\n", formatPrice(newPrice))

	b.WriteString(PriceChangeText(oldPrice, newPrice))

	return b.String()
}

// BestDatesAlertMessage renders the notification for a range
// subscription whose price or best-dates set moved.
func BestDatesAlertMessage(sub *entity.Subscription, bestDates []entity.DatePriceInfo, oldPrice *float64, includeRouteInfo bool) string {
	if len(bestDates) == 0 {
		return ""
	}

	newPrice := bestDates[0].Price
	priceChanged := oldPrice != nil && *oldPrice != newPrice

	var title string
	if priceChanged {
		if newPrice < *oldPrice {
			title = "✅ Снижение цены на билеты!"
		} else {
			title = "📈 Изменение цены на билеты!"
		}
	} else {
		title = "📅 Обновление лучших дат для поездки!"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", title)
	fmt.Fprintf(&b, "%s ➡️ %s\n", sub.Origin, sub.Destination)
	fmt.Fprintf(&b, "📅 Период: %s - %s\n\n", sub.StartDate, sub.EndDate)

	if priceChanged {
		fmt.Fprintf(&b, "💰 Новая минимальная цена: %s USD\n", formatPrice(newPrice))
		fmt.Fprintf(&b, "💰 Предыдущая минимальная цена: %s USD\n", formatPrice(*oldPrice))
		b.WriteString(PriceChangeText(*oldPrice, newPrice))
		b.WriteString("\n")
	} else {
		fmt.Fprintf(&b, "💰 Минимальная цена: %s USD\n", formatPrice(newPrice))
	}

	if len(bestDates) == 1 {
		fmt.Fprintf(&b, "\n📅 Лучшая дата: %s", bestDates[0].Date)
		if includeRouteInfo && bestDates[0].OriginCode != "" && bestDates[0].DestinationCode != "" {
			fmt.Fprintf(&b, " (%s → %s)", bestDates[0].OriginCode, bestDates[0].DestinationCode)
		}
		b.WriteString("\n")
	} else {
		fmt.Fprintf(&b, "\n📅 Лучшие даты (%d):\n", len(bestDates))
		for i, item := range bestDates {
			fmt.Fprintf(&b, "   %d. %s", i+1, item.Date)
			if includeRouteInfo && item.OriginCode != "" && item.DestinationCode != "" {
				fmt.Fprintf(&b, " (%s → %s)", item.OriginCode, item.DestinationCode)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// PriceCheckDetailMessage renders the detailed outcome of one check,
// used when a user asks for the current state of a subscription.
// Returns "" for failed checks.
func PriceCheckDetailMessage(sub *entity.Subscription, result *entity.CheckResult, includeRouteInfo bool) string {
	if result == nil || !result.Success {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s ➡️ %s\n", sub.Origin, sub.Destination)

	if sub.DateType == entity.DateTypeSingle {
		fmt.Fprintf(&b, "📅 Дата: %s\n", sub.Date)
	} else {
		fmt.Fprintf(&b, "📅 Период: %s - %s\n", sub.StartDate, sub.EndDate)
	}

	fmt.Fprintf(&b, "💰 Текущая цена: %s USD\n", formatPrice(result.NewPrice))
	if result.OldPrice != nil {
		fmt.Fprintf(&b, "💰 Предыдущая цена: %s USD\n", formatPrice(*result.OldPrice))
		if result.PriceChanged {
			b.WriteString(PriceChangeText(*result.OldPrice, result.NewPrice))
		}
	}

	if result.FlightInfo != nil && includeRouteInfo {
		fmt.Fprintf(&b, "\n✈️ Рейс: %s → %s\n", result.FlightInfo.OriginCode, result.FlightInfo.DestinationCode)
	}

	if len(result.BestDates) > 0 {
		if len(result.BestDates) == 1 {
			fmt.Fprintf(&b, "\n📅 Лучшая дата: %s", result.BestDates[0].Date)
			if includeRouteInfo && result.BestDates[0].OriginCode != "" && result.BestDates[0].DestinationCode != "" {
				fmt.Fprintf(&b, " (%s → %s)", result.BestDates[0].OriginCode, result.BestDates[0].DestinationCode)
			}
			b.WriteString("\n")
		} else {
			b.WriteString("\n📅 Лучшие даты:\n")
			for i, item := range result.BestDates {
				fmt.Fprintf(&b, "   %d. %s", i+1, item.Date)
				if includeRouteInfo && item.OriginCode != "" && item.DestinationCode != "" {
					fmt.Fprintf(&b, " (%s → %s)", item.OriginCode, item.DestinationCode)
				}
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
