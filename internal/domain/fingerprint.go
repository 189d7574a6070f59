package domain

import "time"

// DeviceFingerprintConfidence é o score atribuído a fingerprints gerados pelo dispositivo
const DeviceFingerprintConfidence = 0.9

type DeviceMetadata struct {
	BrowserName      *string `json:"browser_name"`
	BrowserVersion   *string `json:"browser_version"`
	OSName           *string `json:"os_name"`
	OSVersion        *string `json:"os_version"`
	DeviceType       *string `json:"device_type"`
	ScreenResolution *string `json:"screen_resolution"`
	Timezone         *string `json:"timezone"`
	Language         *string `json:"language"`
}

// Fingerprint ancora uma combinação dispositivo/navegador. Nunca é removido.
type Fingerprint struct {
	ID                string         `json:"id"`
	VisitorID         string         `json:"visitor_id"`
	Device            DeviceMetadata `json:"device"`
	ConfidenceScore   float64        `json:"confidence_score"`
	FirstSeenAt       time.Time      `json:"first_seen_at"`
	LastSeenAt        time.Time      `json:"last_seen_at"`
	TotalVisits       int            `json:"total_visits"`
	ResolvedProfileID *string        `json:"resolved_profile_id"`
}

func (f *Fingerprint) IsResolved() bool {
	return f != nil && f.ResolvedProfileID != nil && *f.ResolvedProfileID != ""
}

// FingerprintUpsert é o resultado do upsert atômico por visitor_id
type FingerprintUpsert struct {
	ID          string
	TotalVisits int
	Created     bool
}
