package scheduling

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/doctorconsult/appcore/pkg/errors"
)

// Slot is a canonical (date, start-time) pair eligible for booking
type Slot struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// EncodeDate converts a (year, zero-based month index, day-of-month)
// selection into the backend's ISO "YYYY-MM-DD" form. No calendar validity
// check is performed: "2025-02-31" encodes fine, and rejecting impossible
// dates is the caller's concern.
func EncodeDate(year, monthIndex, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, monthIndex+1, day)
}

// EncodeStartTime converts a catalog time-range label into the 24-hour
// "HH:00:00" start time of its first boundary. 12 AM maps to 00, 12 PM
// stays 12, other PM hours add 12. A boundary may carry its own AM/PM
// marker or inherit it from the other boundary, so "09-10 AM" and
// "9AM - 10AM" encode identically. Minutes and seconds are always zero.
//
// A label that does not split into exactly two boundaries, or whose first
// boundary has no resolvable hour or meridiem, fails with MALFORMED_LABEL.
func EncodeStartTime(label string) (string, error) {
	parts := strings.Split(label, "-")
	if len(parts) != 2 {
		return "", apperrors.NewMalformedLabelError("expected two hyphen-separated boundaries: " + label)
	}

	startHour, startMeridiem, err := parseBoundary(parts[0])
	if err != nil {
		return "", err
	}
	_, endMeridiem, err := parseBoundary(parts[1])
	if err != nil {
		return "", err
	}

	meridiem := startMeridiem
	if meridiem == "" {
		meridiem = endMeridiem
	}
	if meridiem == "" {
		return "", apperrors.NewMalformedLabelError("no AM/PM marker in label: " + label)
	}

	hour := startHour
	if meridiem == "PM" && hour != 12 {
		hour += 12
	}
	if meridiem == "AM" && hour == 12 {
		hour = 0
	}

	return fmt.Sprintf("%02d:00:00", hour), nil
}

// EncodeSlot combines EncodeDate and EncodeStartTime into the canonical
// slot a booking request carries. Pure: the same selection always yields
// the same slot, so a retried submission is idempotent input-wise.
func EncodeSlot(year, monthIndex, day int, label string) (Slot, error) {
	start, err := EncodeStartTime(label)
	if err != nil {
		return Slot{}, err
	}
	return Slot{
		Date: EncodeDate(year, monthIndex, day),
		Time: start,
	}, nil
}

// parseBoundary extracts the 12-hour value and optional AM/PM marker from
// one side of a range label. A ":MM" component is accepted and ignored;
// starts are always on the hour.
func parseBoundary(s string) (int, string, error) {
	boundary := strings.ToUpper(strings.TrimSpace(s))

	meridiem := ""
	for _, m := range []string{"AM", "PM"} {
		if strings.HasSuffix(boundary, m) {
			meridiem = m
			boundary = strings.TrimSpace(strings.TrimSuffix(boundary, m))
			break
		}
	}

	hourPart := boundary
	if idx := strings.Index(boundary, ":"); idx >= 0 {
		hourPart = boundary[:idx]
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return 0, "", apperrors.NewMalformedLabelError("boundary has no hour: " + s)
	}
	if hour < 1 || hour > 12 {
		return 0, "", apperrors.NewMalformedLabelError("hour out of 12-hour range: " + s)
	}

	return hour, meridiem, nil
}
