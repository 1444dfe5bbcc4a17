package usecase

import "wizzbot/internal/domain/entity"

// PriceChanged reports whether a previously observed price exists and
// differs from the new one. Subscriptions without a stored price never
// count as changed.
func PriceChanged(oldPrice *float64, newPrice float64) bool {
	return oldPrice != nil && *oldPrice != newPrice
}

// BestDatesChanged reports whether the set of best dates moved between
// two checks. The date sets are compared symmetrically: equal
// cardinality plus every old date present in the new set means equal
// sets, so removals are detected even when nothing was added.
func BestDatesChanged(oldDates, newDates []entity.DatePriceInfo) bool {
	if len(oldDates) == 0 {
		return true
	}

	if len(oldDates) != len(newDates) {
		return true
	}

	if oldDates[0].Price != newDates[0].Price {
		return true
	}

	oldSet := make(map[string]struct{}, len(oldDates))
	for _, item := range oldDates {
		oldSet[item.Date] = struct{}{}
	}
	newSet := make(map[string]struct{}, len(newDates))
	for _, item := range newDates {
		newSet[item.Date] = struct{}{}
	}

	if len(oldSet) != len(newSet) {
		return true
	}

	for date := range oldSet {
		if _, ok := newSet[date]; !ok {
			return true
		}
	}

	return false
}
