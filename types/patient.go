package types

import (
	"fmt"
	"strings"
	"time"
)

// Mood 患者自评状态
type Mood string

const (
	MoodGood Mood = "good"
	MoodFair Mood = "fair"
	MoodPoor Mood = "poor"
)

// Moods lists the accepted values in schema order.
var Moods = []Mood{MoodGood, MoodFair, MoodPoor}

// ParseMood 解析 mood, 大小写不敏感
func ParseMood(s string) (Mood, error) {
	m := Mood(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Moods {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("mood must be one of good, fair, poor (got %q)", s)
}

// HealthStatusRecord is one appended row of the health log.
type HealthStatusRecord struct {
	PatientName  string
	PatientPhone string
	Symptoms     []string
	Mood         Mood
	Notes        string
	Timestamp    time.Time
}

// Row 按表格列顺序输出: timestamp, name, phone, symptoms, mood, notes
func (r HealthStatusRecord) Row() []interface{} {
	return []interface{}{
		r.Timestamp.UTC().Format(time.RFC3339),
		r.PatientName,
		r.PatientPhone,
		strings.Join(r.Symptoms, ", "),
		string(r.Mood),
		r.Notes,
	}
}

// FollowUpRequest asks the voice platform to call the patient back later.
type FollowUpRequest struct {
	PatientName  string
	PatientPhone string
	FollowUpDate time.Time
	Reason       string
}
