// Package registration holds the eligibility and identifier logic shared by
// the registration service: birth-date parsing, age derivation and
// registration-ID generation.
package registration

import (
	"errors"
	"time"
)

// MinimumAge is the eligibility threshold for enrollment.
const MinimumAge = 50

// ErrUnparseableDate reports a date of birth that matches none of the
// accepted formats. Callers that need the legacy degrade-to-zero behavior
// treat this branch as age 0.
var ErrUnparseableDate = errors.New("date of birth matches no accepted format")

// birthDateFormats are tried in fixed order; the first layout that parses
// wins.
var birthDateFormats = []string{
	"02/01/2006", // DD/MM/YYYY
	"02-01-2006", // DD-MM-YYYY
	"2006-01-02", // YYYY-MM-DD
	"02.01.2006", // DD.MM.YYYY
}

// ParseBirthDate parses a date-of-birth string against the accepted formats.
func ParseBirthDate(s string) (time.Time, error) {
	for _, layout := range birthDateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrUnparseableDate
}

// Age returns the number of whole years between birth and today, counting a
// year only once the birthday has occurred.
func Age(birth, today time.Time) int {
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() ||
		(today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age
}

// CalculateAge derives an age from a date-of-birth string as of today.
// Unparseable input is reported as an error rather than a sentinel zero so a
// genuine age of zero can never be confused with "unparseable".
func CalculateAge(dateOfBirth string, today time.Time) (int, error) {
	birth, err := ParseBirthDate(dateOfBirth)
	if err != nil {
		return 0, err
	}
	return Age(birth, today.UTC()), nil
}
