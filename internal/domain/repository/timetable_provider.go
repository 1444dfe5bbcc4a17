package repository

import (
	"context"

	"wizzbot/internal/domain/entity"
)

// TimetableProvider defines the interface to the flight-data provider.
// windowStart is an ISO date; implementations must return flights
// spanning at least the calendar month containing it. Any transport or
// provider error comes back as a non-nil error, which callers treat
// the same as "no matching flight".
type TimetableProvider interface {
	GetTimetable(ctx context.Context, origin, destination, windowStart string) (*entity.Timetable, error)
}
