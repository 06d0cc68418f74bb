package date

import (
	"fmt"
	"strings"
)

// Period is a trailing analysis window ending on the last date of a series.
type Period int

const (
	OneWeek Period = iota
	OneMonth
	ThreeMonths
	SixMonths
	OneYear
	ThreeYears
	YearToDate
)

// Periods lists every period in display order.
var Periods = []Period{OneWeek, OneMonth, ThreeMonths, SixMonths, OneYear, ThreeYears, YearToDate}

// windowDays is the length in calendar days of the fixed windows.
var windowDays = map[Period]int{
	OneWeek:     7,
	OneMonth:    30,
	ThreeMonths: 90,
	SixMonths:   180,
	OneYear:     365,
	ThreeYears:  365 * 3,
}

func (p Period) String() string {
	switch p {
	case OneWeek:
		return "1W"
	case OneMonth:
		return "1M"
	case ThreeMonths:
		return "3M"
	case SixMonths:
		return "6M"
	case OneYear:
		return "1Y"
	case ThreeYears:
		return "3Y"
	case YearToDate:
		return "YTD"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// Days returns the window length in calendar days, 0 for YearToDate.
func (p Period) Days() int { return windowDays[p] }

// Cutoff returns the first date included in the window ending on last.
func (p Period) Cutoff(last Date) Date {
	if p == YearToDate {
		return last.YearStart()
	}
	return last.Add(-windowDays[p])
}

// Range returns the window ending on last.
func (p Period) Range(last Date) Range { return Range{From: p.Cutoff(last), To: last} }

func ParsePeriod(p string) (Period, error) {
	switch strings.ToUpper(strings.TrimSpace(p)) {
	case "1W", "WEEK":
		return OneWeek, nil
	case "1M", "MONTH":
		return OneMonth, nil
	case "3M", "QUARTER":
		return ThreeMonths, nil
	case "6M":
		return SixMonths, nil
	case "1Y", "YEAR":
		return OneYear, nil
	case "3Y":
		return ThreeYears, nil
	case "YTD":
		return YearToDate, nil
	default:
		return OneYear, fmt.Errorf("unknown period %q", p)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Period) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Period) UnmarshalText(text []byte) error {
	v, err := ParsePeriod(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
