package domain

import "time"

type IdentityEventType string

const (
	EventVisitorFirstSeen    IdentityEventType = "visitor_first_seen"
	EventSessionStarted      IdentityEventType = "session_started"
	EventWhatsappClicked     IdentityEventType = "whatsapp_clicked"
	EventFormSubmitted       IdentityEventType = "form_submitted"
	EventEmailCaptured       IdentityEventType = "email_captured"
	EventPhoneCaptured       IdentityEventType = "phone_captured"
	EventURLParamCaptured    IdentityEventType = "url_param_captured"
	EventProfileMerged       IdentityEventType = "profile_merged"
	EventProfileLinkConflict IdentityEventType = "profile_link_conflict"
	EventAnonymousProfile    IdentityEventType = "anonymous_profile_created"
	// o fingerprint segue num perfil anônimo enquanto o contato informado já tem outro perfil
	EventAnonymousProfileStranded IdentityEventType = "anonymous_profile_stranded"
	EventEnrichmentRequested      IdentityEventType = "enrichment_requested"
	EventEnrichmentSuccess        IdentityEventType = "enrichment_success"
	EventEnrichmentFailed         IdentityEventType = "enrichment_failed"
	EventSessionAbandoned         IdentityEventType = "session_abandoned"
	EventConversionRecorded       IdentityEventType = "conversion_recorded"
	EventConversionDispatched     IdentityEventType = "conversion_dispatched"
)

// Origens registradas nos eventos
const (
	SourceTracking             = "tracking"
	SourceInteraction          = "interaction"
	SourceURLParam             = "url_param"
	SourceBehavioralEnrichment = "behavioral_enrichment"
	SourceAbandonmentDetection = "abandonment_detection"
	SourceConversion           = "conversion"
)

// IdentityEvent é o registro de auditoria imutável. Nunca é atualizado ou removido.
type IdentityEvent struct {
	ID            string            `json:"id"`
	FingerprintID *string           `json:"fingerprint_id"`
	ProfileID     *string           `json:"profile_id"`
	EventType     IdentityEventType `json:"event_type"`
	EventData     map[string]any    `json:"event_data"`
	Source        *string           `json:"source"`
	CreatedAt     time.Time         `json:"created_at"`
}
