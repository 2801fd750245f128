package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizePhone coerces input to +91 form. 10 digits get the prefix; 12 or
// 13 digits starting with 91 just get a "+". Anything else keeps only its
// last 10 digits — lossy for non-Indian numbers, but that is the contract
// the booking flow relies on.
func NormalizePhone(raw string) string {
	digits := stripNonDigits(raw)
	switch {
	case len(digits) == 10:
		return "+91" + digits
	case len(digits) == 12 && strings.HasPrefix(digits, "91"):
		return "+" + digits
	case len(digits) == 13 && strings.HasPrefix(digits, "91"):
		return "+" + digits
	default:
		if len(digits) > 10 {
			digits = digits[len(digits)-10:]
		}
		return "+91" + digits
	}
}

// ValidatePhone accepts any input that strips down to exactly 10 digits.
func ValidatePhone(raw string) bool {
	return len(stripNonDigits(raw)) == 10
}

// GenerateSessionID returns "session_<epoch-ms>_<16 hex chars>". Not a
// capability token; it only keys chat history lookups.
func GenerateSessionID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return fmt.Sprintf("session_%d_%s", time.Now().UnixMilli(), hex.EncodeToString(buf))
}
