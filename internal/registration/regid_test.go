package registration

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var regIDPattern = regexp.MustCompile(`^REG\d{4}-[0-9A-F]{4}$`)

func TestNewRegistrationIDFormat(t *testing.T) {
	now := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 100; i++ {
		id := NewRegistrationID(now)
		assert.Regexp(t, regIDPattern, id)
		assert.True(t, strings.HasPrefix(id, "REG2025-"))
	}
}

func TestNewRegistrationIDUsesUTCYear(t *testing.T) {
	// Local time just before midnight on New Year's Eve is already the next
	// year in UTC.
	loc := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2024, time.December, 31, 23, 30, 0, 0, loc)

	id := NewRegistrationID(now)
	assert.True(t, strings.HasPrefix(id, fmt.Sprintf("REG%d-", 2025)), id)
}
