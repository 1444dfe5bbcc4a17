package entity

import "strings"

// FlightPrice is the provider's price object.
type FlightPrice struct {
	Amount       float64 `json:"amount"`
	CurrencyCode string  `json:"currencyCode"`
}

// TimetableFlight is one flight row from the timetable endpoint.
// DepartureDate arrives as an ISO datetime ("2025-06-18T06:40:00").
type TimetableFlight struct {
	DepartureStation string      `json:"departureStation"`
	ArrivalStation   string      `json:"arrivalStation"`
	DepartureDate    string      `json:"departureDate"`
	Price            FlightPrice `json:"price"`
	PriceType        string      `json:"priceType,omitempty"`
}

// DepartureDay returns the date portion of DepartureDate.
func (f TimetableFlight) DepartureDay() string {
	day, _, _ := strings.Cut(f.DepartureDate, "T")
	return day
}

// Timetable is the provider response for one route window.
type Timetable struct {
	OutboundFlights []TimetableFlight `json:"outboundFlights"`
	ReturnFlights   []TimetableFlight `json:"returnFlights,omitempty"`
}
