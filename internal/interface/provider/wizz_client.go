package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"wizzbot/internal/domain/entity"
	"wizzbot/internal/domain/repository"
	"wizzbot/pkg/cache"
	"wizzbot/pkg/logger"
	"wizzbot/pkg/metrics"
	"wizzbot/pkg/utils"
)

// WizzClient queries the Wizzair timetable API. Responses are cached
// per (origin, destination, window) so one provider call can serve
// several subscriptions on the same route within the TTL.
type WizzClient struct {
	apiURL  string
	cache   cache.Cache
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  logger.Logger
	client  *http.Client
}

// NewWizzClient creates a new timetable provider client
func NewWizzClient(apiURL string, cache cache.Cache, ttlMinutes int, metrics *metrics.Metrics, logger logger.Logger) repository.TimetableProvider {
	return &WizzClient{
		apiURL:  apiURL,
		cache:   cache,
		ttl:     time.Duration(ttlMinutes) * time.Minute,
		metrics: metrics,
		logger:  logger,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type timetableFlightQuery struct {
	DepartureStation string `json:"departureStation"`
	ArrivalStation   string `json:"arrivalStation"`
	From             string `json:"from"`
	To               string `json:"to"`
}

type timetableRequest struct {
	FlightList  []timetableFlightQuery `json:"flightList"`
	PriceType   string                 `json:"priceType"`
	AdultCount  int                    `json:"adultCount"`
	ChildCount  int                    `json:"childCount"`
	InfantCount int                    `json:"infantCount"`
}

// GetTimetable fetches the timetable covering the calendar month that
// contains windowStart, filtered to origin -> destination flights.
func (c *WizzClient) GetTimetable(ctx context.Context, origin, destination, windowStart string) (*entity.Timetable, error) {
	start, end, err := utils.CalendarMonthBoundaries(windowStart)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("wizz:timetable:%s:%s:%s", origin, destination, start)

	if cached, err := c.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		var timetable entity.Timetable
		if err := json.Unmarshal([]byte(cached), &timetable); err == nil {
			c.logger.Debug("Timetable cache hit", "key", cacheKey)
			return &timetable, nil
		}
		c.logger.Warn("Failed to unmarshal cached timetable", "key", cacheKey)
	}

	// Both directions are requested the way the wizzair web client does;
	// only the outbound leg is kept.
	requestData := timetableRequest{
		FlightList: []timetableFlightQuery{
			{
				DepartureStation: origin,
				ArrivalStation:   destination,
				From:             start,
				To:               end,
			},
			{
				DepartureStation: destination,
				ArrivalStation:   origin,
				From:             start,
				To:               end,
			},
		},
		PriceType:   "regular",
		AdultCount:  1,
		ChildCount:  0,
		InfantCount: 0,
	}

	jsonData, err := json.Marshal(requestData)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timetable request: %w", err)
	}

	url := fmt.Sprintf("%s/search/timetable", c.apiURL)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.metrics.ProviderRequests.Inc()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query timetable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("timetable API returned status %d", resp.StatusCode)
	}

	var timetable entity.Timetable
	if err := json.NewDecoder(resp.Body).Decode(&timetable); err != nil {
		return nil, fmt.Errorf("failed to decode timetable response: %w", err)
	}

	filtered := make([]entity.TimetableFlight, 0, len(timetable.OutboundFlights))
	for _, flight := range timetable.OutboundFlights {
		if flight.DepartureStation == origin && flight.ArrivalStation == destination {
			filtered = append(filtered, flight)
		}
	}
	timetable.OutboundFlights = filtered

	if data, err := json.Marshal(&timetable); err == nil {
		if err := c.cache.Set(ctx, cacheKey, string(data), c.ttl); err != nil {
			c.logger.Warn("Failed to cache timetable", "key", cacheKey, "error", err)
		}
	}

	return &timetable, nil
}
