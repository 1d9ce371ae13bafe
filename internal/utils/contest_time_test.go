package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSplitDuration(t *testing.T) {
	days, hours, minutes, secs, millis := SplitDuration(99_999.999)
	assert.Equal(t, []int{1, 3, 46, 39, 999}, []int{days, hours, minutes, secs, millis})
}

func TestSplitDuration_Rounding(t *testing.T) {
	_, _, _, secs, millis := SplitDuration(14.0 / 3.0)
	assert.Equal(t, 4, secs)
	assert.Equal(t, 667, millis)

	_, _, _, _, millis = SplitDuration(13.0 / 3.0)
	assert.Equal(t, 333, millis)
}

func TestSplitDuration_OddInputs(t *testing.T) {
	assert.NotPanics(t, func() { SplitDuration(-12.5) })
	assert.NotPanics(t, func() { SplitDuration(1e300) })

	days, hours, minutes, secs, millis := SplitDuration(0)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, []int{days, hours, minutes, secs, millis})
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{3, "0:00:00:03"},
		{10, "0:00:00:10"},
		{63, "0:00:01:03"},
		{663, "0:00:11:03"},
		{3663, "0:01:01:03"},
		{36063, "0:10:01:03"},
		{86403, "1:00:00:03"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatElapsed(tt.seconds))
	}
}

func TestFormatElapsedMillis(t *testing.T) {
	assert.Equal(t, "0:00:00:00.000", FormatElapsedMillis(0))
	assert.Equal(t, "0:00:00:00.500", FormatElapsedMillis(0.5))
	assert.Equal(t, "0:00:00:04.333", FormatElapsedMillis(13.0/3.0))
}

func TestFormatElapsedMillis_RoundingCarry(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0.9996, "0:00:00:01.000"},
		{59.9996, "0:00:01:00.000"},
		{3599.9999, "0:01:00:00.000"},
		{86_399.9999, "1:00:00:00.000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatElapsedMillis(tt.seconds))
	}
}

func TestContestEnd(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)

	end := ContestEnd(2022)
	assert.True(t, end.Equal(time.Date(2022, 12, 31, 23, 59, 59, 999_999_000, est)))
	assert.True(t, end.Equal(time.Date(2023, 1, 1, 4, 59, 59, 999_999_000, time.UTC)))
}

func TestIsContestOver(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"last second in EST", time.Date(2022, 12, 31, 23, 59, 59, 0, est), false},
		{"new year in EST", time.Date(2023, 1, 1, 0, 0, 0, 0, est), true},
		{"last second in UTC", time.Date(2023, 1, 1, 4, 59, 59, 0, time.UTC), false},
		{"new year in UTC", time.Date(2023, 1, 1, 5, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsContestOver(2022, tt.now))
		})
	}
}

func TestIsBeforeCutoff(t *testing.T) {
	end := ContestEnd(2022).Unix()

	assert.True(t, IsBeforeCutoff(2022, end))
	assert.True(t, IsBeforeCutoff(2022, end-1))
	assert.False(t, IsBeforeCutoff(2022, end+1))
}
