package entity

import "time"

// CheckoutHour is the hour of day at which rooms turn over. A stay ends at
// noon on its end date regardless of the time-of-day supplied by the caller,
// and for overlap purposes a stay begins at noon on its start date.
const CheckoutHour = 12

// TruncateToMinute drops seconds and sub-second precision. All "now" values
// used in comparisons go through this.
func TruncateToMinute(t time.Time) time.Time {
	return t.Truncate(time.Minute)
}

// CheckoutInstant pins t to 12:00:00 UTC on its calendar day. Inputs may
// carry any offset, so the day is read in UTC: two bookings for the same
// calendar day always share one turnover instant.
func CheckoutInstant(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), CheckoutHour, 0, 0, 0, time.UTC)
}

// Overlap reports whether two stays on the same room conflict. Both stays are
// compared as half-open intervals [noon(start day), noon(end day)), so a stay
// starting on another stay's checkout day does not conflict.
func Overlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	aIn, aOut := CheckoutInstant(aStart), CheckoutInstant(aEnd)
	bIn, bOut := CheckoutInstant(bStart), CheckoutInstant(bEnd)
	return aIn.Before(bOut) && aOut.After(bIn)
}

// Nights counts the calendar nights between start and end. A same-day range
// still bills one night.
func Nights(start, end time.Time) int {
	n := int(CheckoutInstant(end).Sub(CheckoutInstant(start)).Hours() / 24)
	if n < 1 {
		return 1
	}
	return n
}
