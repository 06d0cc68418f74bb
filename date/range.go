package date

import "fmt"

// Range represents a range of dates.
type Range struct{ From, To Date }

// LastYear returns the range from one year before to to to.
func LastYear(to Date) Range { return Range{From: New(to.Year()-1, to.Month(), to.Day()), To: to} }

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Days returns the number of calendar days in the range, boundaries included.
func (r Range) Days() int {
	if r.To.Before(r.From) {
		return 0
	}
	return int(r.To.time().Sub(r.From.time()).Hours()/24) + 1
}

// Identifier compute a unique identifier for the Range.
func (r Range) Identifier() string { return fmt.Sprintf("%s_%s", r.From, r.To) }

func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
