package utils

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GenerateOrderReference builds a short human-readable order reference
// that staff can read over the counter, e.g. "CMD-4F7A2C1B". References
// carry a uniqueIndex, so the space must stay large enough that a busy
// bakery never collides in practice.
func GenerateOrderReference() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "CMD-" + strings.ToUpper(uuid.NewString()[:8])
	}
	return fmt.Sprintf("CMD-%X", b)
}

// GeneratePaymentReference returns the reference recorded on a paid order.
func GeneratePaymentReference() string {
	return "PAY-" + strings.ToUpper(uuid.NewString()[:8])
}
