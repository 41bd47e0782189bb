package utils

import (
	"crypto/rand"
	"fmt"
)

// GenerateBookingRef returns a short human-readable appointment reference,
// e.g. "APT-5F3A9C21".
func GenerateBookingRef() string {
	b := make([]byte, 4)
	rand.Read(b)
	return fmt.Sprintf("APT-%X", b)
}
