package services_test

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/rakeebhasan09/ZapShift-server/services"
	"github.com/stretchr/testify/assert"
)

var trackingPattern = regexp.MustCompile(`^PRCL-\d{8}-[0-9A-F]{6}$`)

func TestGenerateTrackingID_Format(t *testing.T) {
	id, err := services.GenerateTrackingID()

	assert.NoError(t, err)
	assert.Regexp(t, trackingPattern, id)
}

func TestGenerateTrackingID_UsesUTCDate(t *testing.T) {
	id, err := services.GenerateTrackingID()

	assert.NoError(t, err)
	date := time.Now().UTC().Format("20060102")
	assert.True(t, strings.HasPrefix(id, "PRCL-"+date+"-"))
}

func TestGenerateTrackingID_Varies(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := services.GenerateTrackingID()
		assert.NoError(t, err)
		seen[id] = true
	}
	// 100 draws from a 16.7M space colliding down to 1 would mean a broken
	// entropy source.
	assert.Greater(t, len(seen), 1)
}
