package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMood(t *testing.T) {
	for _, in := range []string{"good", "Fair", " POOR "} {
		_, err := ParseMood(in)
		assert.NoError(t, err, in)
	}
	_, err := ParseMood("excellent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "excellent")
}

func TestHealthStatusRecord_Row(t *testing.T) {
	ts := time.Date(2026, 3, 1, 9, 30, 0, 0, time.FixedZone("X", 3600))
	row := HealthStatusRecord{
		PatientName:  "Ana",
		PatientPhone: "+15551234567",
		Symptoms:     []string{"cough", "fever"},
		Mood:         MoodFair,
		Notes:        "slept badly",
		Timestamp:    ts,
	}.Row()

	assert.Equal(t, []interface{}{"2026-03-01T08:30:00Z", "Ana", "+15551234567", "cough, fever", "fair", "slept badly"}, row)
}
