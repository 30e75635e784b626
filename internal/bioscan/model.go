package bioscan

import "time"

// Scan is one persisted bio-resonance voice analysis.
type Scan struct {
	ID              string
	UserID          string
	Transcription   string
	Analysis        string
	Frequencies     map[string]string
	Recommendations map[string]string
	VitalityScore   int
	CreatedAt       time.Time
}
