package registration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateAgeAcceptedFormats(t *testing.T) {
	today := time.Date(2025, time.August, 29, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		dob  string
		want int
	}{
		{name: "slash DD/MM/YYYY", dob: "15/08/1970", want: 55},
		{name: "dash DD-MM-YYYY", dob: "15-08-1970", want: 55},
		{name: "iso YYYY-MM-DD", dob: "1970-08-15", want: 55},
		{name: "dot DD.MM.YYYY", dob: "15.08.1970", want: 55},
		{name: "birthday later this year", dob: "01/12/1970", want: 54},
		{name: "birthday today", dob: "29/08/1970", want: 55},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			age, err := CalculateAge(tt.dob, today)
			require.NoError(t, err)
			assert.Equal(t, tt.want, age)
		})
	}
}

func TestCalculateAgeUnparseable(t *testing.T) {
	today := time.Date(2025, time.August, 29, 0, 0, 0, 0, time.UTC)

	for _, dob := range []string{"", "not a date", "31/02/1970", "15/08/70", "08/15/1970 extra"} {
		age, err := CalculateAge(dob, today)
		assert.ErrorIs(t, err, ErrUnparseableDate, "input %q", dob)
		assert.Zero(t, age)
	}
}

func TestCalculateAgeEligibilityBoundary(t *testing.T) {
	today := time.Date(2025, time.August, 29, 0, 0, 0, 0, time.UTC)

	// Born exactly 50 years ago today.
	age, err := CalculateAge("29/08/1975", today)
	require.NoError(t, err)
	assert.Equal(t, MinimumAge, age)

	// One day short of 50 years.
	age, err = CalculateAge("30/08/1975", today)
	require.NoError(t, err)
	assert.Equal(t, MinimumAge-1, age)
}

func TestAgeBirthdayNotYetOccurred(t *testing.T) {
	birth := time.Date(1960, time.June, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 64, Age(birth, time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 65, Age(birth, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 65, Age(birth, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 64, Age(birth, time.Date(2025, time.May, 30, 0, 0, 0, 0, time.UTC)))
}

func TestParseBirthDateFixedOrder(t *testing.T) {
	// A value parseable in the first format must not fall through to later
	// layouts.
	got, err := ParseBirthDate("01/02/1960")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1960, time.February, 1, 0, 0, 0, 0, time.UTC), got)
}
