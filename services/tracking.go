package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

const trackingPrefix = "PRCL"

// GenerateTrackingID produces a tracking code of the form
// PRCL-YYYYMMDD-XXXXXX, where the date is the current UTC day and the
// suffix is 3 random bytes hex-encoded uppercase. Codes are not globally
// unique; the per-day collision probability is about 1 in 16.7 million.
func GenerateTrackingID() (string, error) {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	date := time.Now().UTC().Format("20060102")
	return fmt.Sprintf("%s-%s-%s", trackingPrefix, date, strings.ToUpper(hex.EncodeToString(buf))), nil
}
