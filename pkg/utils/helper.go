package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateReference creates a payment reference unique enough to key a
// provider transaction.
func GenerateReference() string {
	now := time.Now()

	// Format: HB-YYYYMMDD-HHMMSS-RANDOM
	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%06d", rand.Intn(1000000))

	return fmt.Sprintf("HB-%s-%s-%s", datePart, timePart, randomPart)
}
