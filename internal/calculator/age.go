package calculator

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

type AgeResult struct {
	DateOfBirth string `json:"your date of birth"`
	Age         string `json:"your current age"`
}

// Period is a calendar-aware amount of time between two dates.
type Period struct {
	Years  int
	Months int
	Days   int
}

func (p Period) String() string {
	return fmt.Sprintf("%d years, %d months, and %d days", p.Years, p.Months, p.Days)
}

// ParseDate parses an ISO yyyy-MM-dd calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidDate, s, err)
	}
	return d, nil
}

// Age reports how old someone born on dob is on the date of today.
func Age(dob, today time.Time) AgeResult {
	return AgeResult{
		DateOfBirth: dob.Format(dateLayout),
		Age:         Between(dob, today).String(),
	}
}

// Between computes the period from start to end using month borrow
// arithmetic: a missing day count borrows the length of the month before end,
// with the start day clamped to the end of shorter months.
func Between(start, end time.Time) Period {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()

	totalMonths := monthIndex(ey, em) - monthIndex(sy, sm)
	days := ed - sd
	switch {
	case totalMonths > 0 && days < 0:
		totalMonths--
		y, m, d := plusMonths(sy, sm, sd, totalMonths)
		days = epochDay(ey, em, ed) - epochDay(y, m, d)
	case totalMonths < 0 && days > 0:
		totalMonths++
		days -= daysIn(ey, em)
	}

	return Period{
		Years:  totalMonths / 12,
		Months: totalMonths % 12,
		Days:   days,
	}
}

func monthIndex(y int, m time.Month) int {
	return y*12 + int(m) - 1
}

func plusMonths(y int, m time.Month, d, n int) (int, time.Month, int) {
	idx := monthIndex(y, m) + n
	ny, nm := idx/12, time.Month(idx%12+1)
	if idx < 0 && idx%12 != 0 {
		ny--
		nm = time.Month(idx%12 + 13)
	}
	if last := daysIn(ny, nm); d > last {
		d = last
	}
	return ny, nm, d
}

func daysIn(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func epochDay(y int, m time.Month, d int) int {
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}
