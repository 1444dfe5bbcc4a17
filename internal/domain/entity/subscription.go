package entity

import (
	"time"
)

// DateType says whether a subscription watches one departure date or a
// date range.
type DateType string

const (
	DateTypeSingle DateType = "single"
	DateTypeRange  DateType = "range"
)

// DatePriceInfo is one best-date entry: a display-format (DD.MM.YYYY)
// date plus the airport pair the price was seen on.
type DatePriceInfo struct {
	Date            string  `json:"date" bson:"date"`
	Price           float64 `json:"price" bson:"price"`
	OriginCode      string  `json:"originCode,omitempty" bson:"originCode,omitempty"`
	DestinationCode string  `json:"destinationCode,omitempty" bson:"destinationCode,omitempty"`
}

// Subscription is one watched route. Exactly one of Date (single) or
// StartDate/EndDate (range) is set, per DateType. LastPrice, BestDate
// and BestDates are monitoring state and stay empty until the first
// successful check; only the subscription repository mutates them.
type Subscription struct {
	ID          string          `json:"id" bson:"_id,omitempty"`
	ChatID      int64           `json:"chatId" bson:"chatId"`
	Origin      string          `json:"origin" bson:"origin"`
	Destination string          `json:"destination" bson:"destination"`
	DateType    DateType        `json:"dateType" bson:"dateType"`
	Date        string          `json:"date,omitempty" bson:"date,omitempty"`
	StartDate   string          `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EndDate     string          `json:"endDate,omitempty" bson:"endDate,omitempty"`
	LastPrice   *float64        `json:"lastPrice,omitempty" bson:"lastPrice,omitempty"`
	BestDate    string          `json:"bestDate,omitempty" bson:"bestDate,omitempty"`
	BestDates   []DatePriceInfo `json:"bestDates,omitempty" bson:"bestDates,omitempty"`
	CreatedAt   time.Time       `json:"createdAt" bson:"createdAt"`
}
