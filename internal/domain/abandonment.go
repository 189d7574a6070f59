package domain

type AbandonIneligibleReason string

const (
	AbandonNoProfile          AbandonIneligibleReason = "no_profile"
	AbandonProfileNotFound    AbandonIneligibleReason = "profile_not_found"
	AbandonNoIdentifiableData AbandonIneligibleReason = "no_identifiable_data"
)

type AbandonRequest struct {
	FingerprintID string             `json:"fingerprint_db_id"`
	SessionID     *string            `json:"session_db_id"`
	Reason        string             `json:"reason"`
	Signals       *BehavioralSignals `json:"behavioral_signals"`
	Geolocation   *Geolocation       `json:"geolocation"`
	UTM           *UTMParams         `json:"utm_params"`
	ClickIDs      *ClickIDs          `json:"click_ids"`
}

type AbandonOutcome struct {
	Success   bool   `json:"success"`
	ProfileID string `json:"profile_id,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

type AbandonedVisitor struct {
	Email            *string       `json:"email"`
	Phone            *string       `json:"phone"`
	Name             *string       `json:"name"`
	Status           ProfileStatus `json:"status"`
	EnrichmentSource *string       `json:"enrichment_source"`
}

// AbandonedLeadPayload é enviado à automação externa de recuperação
type AbandonedLeadPayload struct {
	ProfileID         string             `json:"profile_id"`
	FingerprintID     string             `json:"fingerprint_id"`
	SessionID         *string            `json:"session_id"`
	Reason            string             `json:"reason"`
	Timestamp         string             `json:"timestamp"`
	LocalTimestamp    string             `json:"local_timestamp"`
	Visitor           AbandonedVisitor   `json:"visitor"`
	BehavioralSignals *BehavioralSignals `json:"behavioral_signals"`
	Geolocation       *Geolocation       `json:"geolocation"`
	UTMParams         *UTMParams         `json:"utm_params"`
	ClickIDs          *ClickIDs          `json:"click_ids"`
}
