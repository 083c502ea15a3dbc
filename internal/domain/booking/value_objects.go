package booking

import (
	"fmt"
	"time"
)

// StayPeriod is a half-open calendar date range [checkIn, checkOut): the
// checkout day itself is not occupied and may start another stay.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	in := toDate(checkIn)
	out := toDate(checkOut)
	if !out.After(in) {
		return StayPeriod{}, ErrInvalidDateRange
	}
	return StayPeriod{checkIn: in, checkOut: out}, nil
}

func (p StayPeriod) CheckIn() time.Time {
	return p.checkIn
}

func (p StayPeriod) CheckOut() time.Time {
	return p.checkOut
}

// Nights is the whole number of calendar nights; at least 1 by construction.
func (p StayPeriod) Nights() int {
	return int(p.checkOut.Sub(p.checkIn).Hours() / 24)
}

// Overlaps implements the half-open interval predicate:
// [a,b) and [c,d) overlap iff a < d && c < b.
func (p StayPeriod) Overlaps(other StayPeriod) bool {
	return p.checkIn.Before(other.checkOut) && other.checkIn.Before(p.checkOut)
}

func (p StayPeriod) String() string {
	return fmt.Sprintf("[%s,%s)", p.checkIn.Format(time.DateOnly), p.checkOut.Format(time.DateOnly))
}

func toDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
