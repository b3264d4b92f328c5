package scheduling

import (
	apperrors "github.com/doctorconsult/appcore/pkg/errors"
)

// Period is a named segment of the day grouping bookable time ranges
type Period string

const (
	PeriodMorning   Period = "Morning"
	PeriodAfternoon Period = "Afternoon"
	PeriodEvening   Period = "Evening"
)

// The catalog is the single hand-authored partition of the day. Both the
// patient-side booking picker and the doctor-side schedule registration read
// these tables, so the ranges a doctor can offer and the ranges a patient
// can book cannot drift apart.
var (
	periodOrder = []Period{PeriodMorning, PeriodAfternoon, PeriodEvening}

	periodRanges = map[Period][]string{
		PeriodMorning:   {"09-10 AM", "10-11 AM", "11-12 AM"},
		PeriodAfternoon: {"01-02 PM", "02-03 PM", "03-04 PM"},
		PeriodEvening:   {"04-05 PM", "05-06 PM", "06-07 PM"},
	}
)

// Periods returns the ordered period names of the catalog
func Periods() []Period {
	out := make([]Period, len(periodOrder))
	copy(out, periodOrder)
	return out
}

// RangesForPeriod returns the ordered time-range labels owned by the given
// period. An unrecognized period fails with an INVALID_PERIOD error; it is
// never silently defaulted.
func RangesForPeriod(period Period) ([]string, error) {
	ranges, ok := periodRanges[period]
	if !ok {
		return nil, apperrors.NewInvalidPeriodError("unknown period: " + string(period))
	}
	out := make([]string, len(ranges))
	copy(out, ranges)
	return out, nil
}

// AllRanges returns every label of the catalog in day order
func AllRanges() []string {
	var out []string
	for _, p := range periodOrder {
		out = append(out, periodRanges[p]...)
	}
	return out
}
