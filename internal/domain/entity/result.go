package entity

// ResultKind discriminates the two check result shapes. It is set
// deliberately by the producer, never inferred from field presence.
type ResultKind string

const (
	ResultKindSingle ResultKind = "single"
	ResultKindRange  ResultKind = "range"
)

// FlightInfo identifies the concrete airport pair (and date) a quoted
// price belongs to.
type FlightInfo struct {
	OriginCode      string `json:"originCode"`
	DestinationCode string `json:"destinationCode"`
	Date            string `json:"date,omitempty"`
}

// CheckResult is the outcome of checking one subscription. Kind tells
// which optional fields apply: FlightInfo for single-date checks,
// BestDates/DatesChanged for range checks. A failed check carries only
// Kind, Success=false and Message.
type CheckResult struct {
	Kind         ResultKind      `json:"kind"`
	Success      bool            `json:"success"`
	Message      string          `json:"message,omitempty"`
	OldPrice     *float64        `json:"oldPrice,omitempty"`
	NewPrice     float64         `json:"newPrice,omitempty"`
	PriceChanged bool            `json:"priceChanged,omitempty"`
	FlightInfo   *FlightInfo     `json:"flightInfo,omitempty"`
	BestDates    []DatePriceInfo `json:"bestDates,omitempty"`
	DatesChanged bool            `json:"datesChanged,omitempty"`
}

// NewCheckFailure builds the failure variant of a result.
func NewCheckFailure(kind ResultKind, message string) *CheckResult {
	return &CheckResult{
		Kind:    kind,
		Message: message,
	}
}

// PriceQuote is the single-date aggregation outcome: the minimum price
// across all airport-pair combinations and the pair it was found on.
type PriceQuote struct {
	Price      float64
	FlightInfo FlightInfo
}

// RangeQuote is the date-range aggregation outcome: the minimum price
// across all pairs and dates, and every tied entry at that price.
type RangeQuote struct {
	BestDates []DatePriceInfo
	MinPrice  float64
}
