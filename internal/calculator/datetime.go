package calculator

import (
	"strings"
	"time"
)

type DateTimeResult struct {
	ISOTimestamp string `json:"iso_timestamp"`
	DateReadable string `json:"date_readable"`
	TimeReadable string `json:"time_readable"`
	DayOfWeek    string `json:"day_of_week"`
	DayOfYear    int    `json:"day_of_year"`
	Month        string `json:"month"`
	Year         int    `json:"year"`
	Timezone     string `json:"timezone"`
}

func DateTime(now time.Time) DateTimeResult {
	return DateTimeResult{
		ISOTimestamp: now.Format("2006-01-02T15:04:05.999999999"),
		DateReadable: now.Format(dateLayout),
		TimeReadable: now.Format("03:04:05 PM"),
		DayOfWeek:    strings.ToUpper(now.Weekday().String()),
		DayOfYear:    now.YearDay(),
		Month:        strings.ToUpper(now.Month().String()),
		Year:         now.Year(),
		Timezone:     zoneName(now),
	}
}

// zoneName prefers the IANA location name and falls back to the zone
// abbreviation when the process only knows it as "Local".
func zoneName(t time.Time) string {
	if name := t.Location().String(); name != "" && name != "Local" {
		return name
	}
	abbr, _ := t.Zone()
	return abbr
}
