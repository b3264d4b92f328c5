package scheduling_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doctorconsult/appcore/internal/domain/scheduling"
	apperrors "github.com/doctorconsult/appcore/pkg/errors"
)

func TestEncodeDate(t *testing.T) {
	// Month comes in zero-based from the picker; June's index encodes as July
	assert.Equal(t, "2025-07-15", scheduling.EncodeDate(2025, 6, 15))
	assert.Equal(t, "2025-01-01", scheduling.EncodeDate(2025, 0, 1))
	assert.Equal(t, "2025-12-31", scheduling.EncodeDate(2025, 11, 31))
	assert.Equal(t, "2026-02-05", scheduling.EncodeDate(2026, 1, 5))
}

func TestEncodeDate_NoCalendarValidation(t *testing.T) {
	// Impossible dates still encode; rejecting them is the caller's job
	assert.Equal(t, "2025-02-31", scheduling.EncodeDate(2025, 1, 31))
}

func TestEncodeStartTime_CatalogLabels(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"09-10 AM", "09:00:00"},
		{"10-11 AM", "10:00:00"},
		{"11-12 AM", "11:00:00"},
		{"01-02 PM", "13:00:00"},
		{"02-03 PM", "14:00:00"},
		{"03-04 PM", "15:00:00"},
		{"04-05 PM", "16:00:00"},
		{"05-06 PM", "17:00:00"},
		{"06-07 PM", "18:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := scheduling.EncodeStartTime(tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeStartTime_PerBoundaryMeridiem(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"9AM - 10AM", "09:00:00"},
		{"12AM - 1AM", "00:00:00"},
		{"12PM - 1PM", "12:00:00"},
		{"11AM - 12PM", "11:00:00"},
		{"1PM - 2PM", "13:00:00"},
		{"3PM - 4PM", "15:00:00"},
		{"11:00 AM - 12:00 PM", "11:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := scheduling.EncodeStartTime(tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeStartTime_Malformed(t *testing.T) {
	labels := []string{
		"",
		"morning",
		"09 AM",
		"09-10-11 AM",
		"aa-bb AM",
		"13-14 PM",
		"0-1 AM",
		"9 - 10",
	}

	for _, label := range labels {
		t.Run(label, func(t *testing.T) {
			_, err := scheduling.EncodeStartTime(label)
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeMalformedLabel))
		})
	}
}

func TestEncodeStartTime_Deterministic(t *testing.T) {
	first, err := scheduling.EncodeStartTime("04-05 PM")
	require.NoError(t, err)
	second, err := scheduling.EncodeStartTime("04-05 PM")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEncodeSlot(t *testing.T) {
	slot, err := scheduling.EncodeSlot(2025, 6, 15, "09-10 AM")
	require.NoError(t, err)
	assert.Equal(t, scheduling.Slot{Date: "2025-07-15", Time: "09:00:00"}, slot)
}

func TestEncodeSlot_MalformedLabel(t *testing.T) {
	_, err := scheduling.EncodeSlot(2025, 6, 15, "whenever")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeMalformedLabel))
}
