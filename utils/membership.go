package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewMembershipNumber generates a member's card number, e.g. "MC-2026-7F3A9C".
// The suffix comes from a fresh UUID, unicity is enforced by the database.
func NewMembershipNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("MC-%d-%s", now.Year(), suffix)
}
