package registration

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewRegistrationID produces a human-readable identifier in the form
// REG<UTC year>-XXXX, where the suffix is the leading 4 hex characters of a
// random UUID, uppercased. Uniqueness is probabilistic only; the store's
// unique index on registration_id is what rejects the rare collision.
func NewRegistrationID(now time.Time) string {
	year := now.UTC().Year()
	suffix := strings.ToUpper(uuid.NewString()[:4])
	return fmt.Sprintf("REG%d-%s", year, suffix)
}
