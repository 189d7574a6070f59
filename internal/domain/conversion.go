package domain

import (
	"encoding/json"
	"time"
)

const (
	ConversionLead          = "lead"
	ConversionContact       = "contact"
	ConversionWhatsappClick = "whatsapp_click"
	ConversionPurchase      = "purchase"
	ConversionFormSubmit    = "form_submit"
)

// AdvancesToConverted indica se o evento move o perfil para "converted"
func AdvancesToConverted(eventName string) bool {
	return eventName == ConversionLead || eventName == ConversionPurchase
}

type Platform string

const (
	PlatformGoogle Platform = "google"
	PlatformMeta   Platform = "meta"
)

// ConversionEvent guarda os fatos de negócio imutáveis e o estado de entrega por plataforma
type ConversionEvent struct {
	ID            string   `json:"id"`
	FingerprintID string   `json:"fingerprint_id"`
	ProfileID     *string  `json:"profile_id"`
	SessionID     *string  `json:"session_id"`
	EventName     string   `json:"event_name"`
	EventValue    *float64 `json:"event_value"`
	ClickIDs
	HashedEmail *string        `json:"hashed_email"`
	HashedPhone *string        `json:"hashed_phone"`
	PagePath    *string        `json:"page_path"`
	VehicleID   *string        `json:"vehicle_id"`
	ClientIP    *string        `json:"client_ip"`
	MetaEventID string         `json:"meta_event_id"`
	Metadata    map[string]any `json:"metadata"`
	Google      DeliveryState  `json:"google"`
	Meta        DeliveryState  `json:"meta"`
	CreatedAt   time.Time      `json:"created_at"`
}

// DeliveryState é o estado de entrega em uma plataforma de anúncios
type DeliveryState struct {
	Sent     bool            `json:"sent"`
	SentAt   *time.Time      `json:"sent_at"`
	Response json.RawMessage `json:"response,omitempty"`
	Attempts int             `json:"attempts"`
}

type ConversionRequest struct {
	FingerprintID string         `json:"fingerprint_db_id"`
	SessionID     *string        `json:"session_db_id"`
	EventName     string         `json:"event_name"`
	EventValue    *float64       `json:"event_value"`
	HashedEmail   *string        `json:"hashed_email"`
	HashedPhone   *string        `json:"hashed_phone"`
	PagePath      *string        `json:"page_path"`
	VehicleID     *string        `json:"vehicle_id"`
	Metadata      map[string]any `json:"metadata"`
	ClientIP      string         `json:"-"`
}

type ConversionResponse struct {
	Success      bool   `json:"success"`
	ConversionID string `json:"conversion_id"`
	SentToGoogle bool   `json:"sent_to_google"`
	SentToMeta   bool   `json:"sent_to_meta"`
}

// DeliveryResult é o resultado de uma tentativa de entrega
type DeliveryResult struct {
	Platform   Platform
	StatusCode int
	Response   json.RawMessage
	// Rejected marca respostas 2xx com falha parcial reportada no corpo
	Rejected bool
}

// Delivered é verdadeiro apenas para respostas 2xx aceitas pela plataforma
func (r DeliveryResult) Delivered() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300 && !r.Rejected
}
