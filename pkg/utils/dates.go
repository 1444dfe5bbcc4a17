package utils

import (
	"fmt"
	"strings"
	"time"
)

// Date layouts used across the service. Users enter and read dates as
// DD.MM.YYYY; the provider speaks ISO YYYY-MM-DD.
const (
	ISODateLayout     = "2006-01-02"
	DisplayDateLayout = "02.01.2006"
)

// ConvertDateFormat turns a DD.MM.YYYY date into YYYY-MM-DD.
// Input that is not dot-separated into three parts passes through unchanged.
func ConvertDateFormat(date string) string {
	parts := strings.Split(date, ".")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

// FormatDateForDisplay turns a YYYY-MM-DD date into DD.MM.YYYY.
func FormatDateForDisplay(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "." + parts[1] + "." + parts[0]
}

// DatesInRange expands [startDate, endDate] into consecutive ISO dates,
// ascending, clipped to at most maxDays entries counted from startDate.
// endDate before startDate yields an empty slice.
func DatesInRange(startDate, endDate string, maxDays int) []string {
	start, err := time.Parse(ISODateLayout, startDate)
	if err != nil {
		return nil
	}
	end, err := time.Parse(ISODateLayout, endDate)
	if err != nil {
		return nil
	}

	limit := start.AddDate(0, 0, maxDays-1)
	if end.After(limit) {
		end = limit
	}

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(ISODateLayout))
	}
	return dates
}

// CalendarMonthBoundaries returns the first Monday on or before the
// 1st of the month containing date, and the last Sunday on or after
// its final day. The timetable endpoint wants windows aligned this way.
func CalendarMonthBoundaries(date string) (string, string, error) {
	t, err := time.Parse(ISODateLayout, date)
	if err != nil {
		return "", "", fmt.Errorf("invalid date %q: %w", date, err)
	}

	firstDay := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	sub := int(firstDay.Weekday()) - 1
	if sub < 0 {
		sub = 6
	}
	firstMonday := firstDay.AddDate(0, 0, -sub)

	lastDay := firstDay.AddDate(0, 1, -1)
	add := 0
	if wd := int(lastDay.Weekday()); wd != 0 {
		add = 7 - wd
	}
	lastSunday := lastDay.AddDate(0, 0, add)

	return firstMonday.Format(ISODateLayout), lastSunday.Format(ISODateLayout), nil
}
