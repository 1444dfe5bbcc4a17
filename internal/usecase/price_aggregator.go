package usecase

import (
	"context"
	"errors"
	"time"

	"wizzbot/internal/domain/entity"
	"wizzbot/internal/domain/repository"
	"wizzbot/pkg/airports"
	"wizzbot/pkg/logger"
	"wizzbot/pkg/utils"
)

var (
	// ErrNoAirportCodes reports that a location resolved to zero airports.
	ErrNoAirportCodes = errors.New("no airport codes found for location")
	// ErrNoFlights reports that no airport combination yielded a usable price.
	ErrNoFlights = errors.New("no flights found for any airport combination")
)

// PriceAggregator finds the cheapest flight across the cartesian
// product of resolved origin and destination airports. Provider calls
// run one per airport pair; a failed call skips that pair only.
type PriceAggregator struct {
	provider repository.TimetableProvider
	resolver *airports.Resolver
	logger   logger.Logger
}

// NewPriceAggregator creates a new price aggregator
func NewPriceAggregator(provider repository.TimetableProvider, resolver *airports.Resolver, logger logger.Logger) *PriceAggregator {
	return &PriceAggregator{
		provider: provider,
		resolver: resolver,
		logger:   logger,
	}
}

// BestPriceForDate returns the minimum price over all airport pairs
// for one departure date (DD.MM.YYYY; empty means today). On equal
// prices the pair encountered first wins.
func (a *PriceAggregator) BestPriceForDate(ctx context.Context, origin, destination, date string) (*entity.PriceQuote, error) {
	originCodes := a.resolver.ResolveAll(origin)
	destinationCodes := a.resolver.ResolveAll(destination)
	if len(originCodes) == 0 || len(destinationCodes) == 0 {
		a.logger.Error("Could not resolve IATA codes",
			"origin", origin,
			"destination", destination)
		return nil, ErrNoAirportCodes
	}

	if date == "" {
		date = time.Now().Format(utils.DisplayDateLayout)
	}
	isoDate := utils.ConvertDateFormat(date)

	a.logger.Info("Checking price",
		"origin", origin,
		"destination", destination,
		"date", isoDate,
		"originCodes", originCodes,
		"destinationCodes", destinationCodes)

	var quotes []entity.PriceQuote

	for _, originCode := range originCodes {
		for _, destinationCode := range destinationCodes {
			a.logger.Debug("Checking combination", "origin", originCode, "destination", destinationCode)

			timetable, err := a.provider.GetTimetable(ctx, originCode, destinationCode, isoDate)
			if err != nil {
				a.logger.Warn("Timetable query failed",
					"origin", originCode,
					"destination", destinationCode,
					"error", err)
				continue
			}
			if timetable == nil || len(timetable.OutboundFlights) == 0 {
				continue
			}

			flight := findFlightOn(timetable.OutboundFlights, isoDate)
			if flight == nil {
				continue
			}

			a.logger.Info("Found price",
				"price", flight.Price.Amount,
				"origin", originCode,
				"destination", destinationCode,
				"date", isoDate)
			quotes = append(quotes, entity.PriceQuote{
				Price: flight.Price.Amount,
				FlightInfo: entity.FlightInfo{
					OriginCode:      originCode,
					DestinationCode: destinationCode,
				},
			})
		}
	}

	if len(quotes) == 0 {
		a.logger.Info("No price found",
			"origin", origin,
			"destination", destination,
			"date", isoDate)
		return nil, ErrNoFlights
	}

	best := quotes[0]
	for _, quote := range quotes[1:] {
		if quote.Price < best.Price {
			best = quote
		}
	}

	a.logger.Info("Minimum price across combinations",
		"price", best.Price,
		"origin", best.FlightInfo.OriginCode,
		"destination", best.FlightInfo.DestinationCode)
	return &best, nil
}

// BestPricesInRange returns the minimum price over all airport pairs
// and all dates of the window, together with every tied entry at that
// price. Dates are DD.MM.YYYY; the window is capped at maxDays.
func (a *PriceAggregator) BestPricesInRange(ctx context.Context, origin, destination, startDate, endDate string, maxDays int) (*entity.RangeQuote, error) {
	originCodes := a.resolver.ResolveAll(origin)
	destinationCodes := a.resolver.ResolveAll(destination)
	if len(originCodes) == 0 || len(destinationCodes) == 0 {
		a.logger.Error("Could not resolve IATA codes",
			"origin", origin,
			"destination", destination)
		return nil, ErrNoAirportCodes
	}

	startISO := utils.ConvertDateFormat(startDate)
	endISO := utils.ConvertDateFormat(endDate)
	dates := utils.DatesInRange(startISO, endISO, maxDays)

	a.logger.Info("Checking price range",
		"origin", origin,
		"destination", destination,
		"from", startISO,
		"to", endISO,
		"dates", len(dates))

	var allResults []entity.DatePriceInfo

	for _, originCode := range originCodes {
		for _, destinationCode := range destinationCodes {
			a.logger.Debug("Checking combination", "origin", originCode, "destination", destinationCode)

			timetable, err := a.provider.GetTimetable(ctx, originCode, destinationCode, startISO)
			if err != nil {
				a.logger.Warn("Timetable query failed",
					"origin", originCode,
					"destination", destinationCode,
					"error", err)
				continue
			}
			if timetable == nil || len(timetable.OutboundFlights) == 0 {
				continue
			}

			for _, date := range dates {
				flight := findFlightOn(timetable.OutboundFlights, date)
				if flight == nil {
					continue
				}
				allResults = append(allResults, entity.DatePriceInfo{
					Date:            utils.FormatDateForDisplay(date),
					Price:           flight.Price.Amount,
					OriginCode:      originCode,
					DestinationCode: destinationCode,
				})
			}
		}
	}

	if len(allResults) == 0 {
		a.logger.Info("No flights found in range",
			"origin", origin,
			"destination", destination)
		return nil, ErrNoFlights
	}

	minPrice := allResults[0].Price
	for _, result := range allResults[1:] {
		if result.Price < minPrice {
			minPrice = result.Price
		}
	}

	var bestDates []entity.DatePriceInfo
	for _, result := range allResults {
		if result.Price == minPrice {
			bestDates = append(bestDates, result)
		}
	}

	a.logger.Info("Best dates in range",
		"minPrice", minPrice,
		"count", len(bestDates))
	return &entity.RangeQuote{
		BestDates: bestDates,
		MinPrice:  minPrice,
	}, nil
}

// findFlightOn picks the first flight departing on the given ISO date.
func findFlightOn(flights []entity.TimetableFlight, isoDate string) *entity.TimetableFlight {
	for i := range flights {
		if flights[i].DepartureDate == "" {
			continue
		}
		if flights[i].DepartureDay() == isoDate {
			return &flights[i]
		}
	}
	return nil
}
