package domain

import "time"

type UTMParams struct {
	Source   *string `json:"utm_source,omitempty"`
	Medium   *string `json:"utm_medium,omitempty"`
	Campaign *string `json:"utm_campaign,omitempty"`
	Content  *string `json:"utm_content,omitempty"`
	Term     *string `json:"utm_term,omitempty"`
}

// ClickIDs guarda no máximo um identificador de clique por plataforma
type ClickIDs struct {
	GCLID  *string `json:"gclid,omitempty"`
	FBCLID *string `json:"fbclid,omitempty"`
	TTCLID *string `json:"ttclid,omitempty"`
}

func (c ClickIDs) IsEmpty() bool {
	return c.GCLID == nil && c.FBCLID == nil && c.TTCLID == nil
}

type Geolocation struct {
	City    string `json:"city,omitempty"`
	Region  string `json:"region,omitempty"`
	Country string `json:"country,omitempty"`
}

type Session struct {
	ID                string       `json:"id"`
	FingerprintID     string       `json:"fingerprint_id"`
	SessionID         string       `json:"session_id"`
	ReferrerURL       *string      `json:"referrer_url"`
	ReferrerDomain    *string      `json:"referrer_domain"`
	UTM               UTMParams    `json:"utm"`
	ClickIDs          ClickIDs     `json:"click_ids"`
	IPAddress         *string      `json:"ip_address"`
	Geolocation       *Geolocation `json:"geolocation,omitempty"`
	ContactedWhatsapp bool         `json:"contacted_whatsapp"`
	SubmittedForm     bool         `json:"submitted_form"`
	UsedCalculator    bool         `json:"used_calculator"`
	PageViewsCount    int          `json:"page_views_count"`
	VehiclesViewed    int          `json:"vehicles_viewed"`
	StartedAt         time.Time    `json:"started_at"`
}

// OpenSessionRequest descreve uma nova visita. Uma nova linha é sempre criada.
type OpenSessionRequest struct {
	FingerprintID  string
	SessionID      string
	ReferrerURL    *string
	ReferrerDomain *string
	UTM            UTMParams
	ClickIDs       ClickIDs
	IPAddress      *string
}

// StartSessionRequest é o payload público de início de sessão
type StartSessionRequest struct {
	VisitorID   string         `json:"visitor_id"`
	SessionID   string         `json:"session_id"`
	Device      DeviceMetadata `json:"device_data"`
	UTM         UTMParams      `json:"utm_params"`
	ClickIDs    ClickIDs       `json:"click_ids"`
	ReferrerURL *string        `json:"referrer_url"`
	ClientIP    string         `json:"-"`
	UserAgent   string         `json:"-"`
}

type StartSessionResponse struct {
	Success       bool   `json:"success"`
	FingerprintID string `json:"fingerprint_db_id"`
	SessionID     string `json:"session_db_id"`
}

const PageTypeVehicle = "vehicle"

type VehicleRefs struct {
	VehicleID    *string  `json:"vehicle_id,omitempty"`
	VehicleSlug  *string  `json:"vehicle_slug,omitempty"`
	VehicleBrand *string  `json:"vehicle_brand,omitempty"`
	VehicleModel *string  `json:"vehicle_model,omitempty"`
	VehiclePrice *float64 `json:"vehicle_price,omitempty"`
}

type PageView struct {
	ID            string  `json:"id"`
	FingerprintID string  `json:"fingerprint_id"`
	SessionID     string  `json:"session_id"`
	PageURL       *string `json:"page_url"`
	PagePath      string  `json:"page_path"`
	PageTitle     *string `json:"page_title"`
	PageType      *string `json:"page_type"`
	VehicleRefs
	ClickedWhatsapp   bool      `json:"clicked_whatsapp"`
	ClickedPhone      bool      `json:"clicked_phone"`
	ClickedForm       bool      `json:"clicked_form"`
	PlayedEngineSound bool      `json:"played_engine_sound"`
	TimeOnPageSeconds *int      `json:"time_on_page_seconds"`
	ViewedAt          time.Time `json:"viewed_at"`
}

// IsProductView indica se a página conta como visualização de produto (veículo)
func (p *PageView) IsProductView() bool {
	return p.PageType != nil && *p.PageType == PageTypeVehicle
}

// PageViewTotals agrega as page views de um ou mais fingerprints
type PageViewTotals struct {
	PageViews        int
	ProductViews     int
	DwellTimeSeconds int
	Sessions         int
	LastActiveAt     *time.Time
}

type PageViewRequest struct {
	FingerprintID string  `json:"fingerprint_db_id"`
	SessionID     string  `json:"session_db_id"`
	PageURL       *string `json:"page_url"`
	PagePath      string  `json:"page_path"`
	PageTitle     *string `json:"page_title"`
	PageType      *string `json:"page_type"`
	VehicleRefs
}

type PageTimeRequest struct {
	SessionID         string `json:"session_db_id"`
	PagePath          string `json:"page_path"`
	TimeOnPageSeconds *int   `json:"time_on_page_seconds"`
}

type InteractionType string

const (
	InteractionWhatsappClick   InteractionType = "whatsapp_click"
	InteractionPhoneClick      InteractionType = "phone_click"
	InteractionFormClick       InteractionType = "form_click"
	InteractionFormSubmit      InteractionType = "form_submit"
	InteractionEngineSoundPlay InteractionType = "engine_sound_play"
	InteractionCalculatorUse   InteractionType = "calculator_use"
)

// SessionFlag nomeia as colunas booleanas da sessão alteradas por interações
type SessionFlag string

const (
	SessionFlagContactedWhatsapp SessionFlag = "contacted_whatsapp"
	SessionFlagSubmittedForm     SessionFlag = "submitted_form"
	SessionFlagUsedCalculator    SessionFlag = "used_calculator"
)

// PageViewFlag nomeia as colunas booleanas da page view alteradas por interações
type PageViewFlag string

const (
	PageViewFlagClickedWhatsapp   PageViewFlag = "clicked_whatsapp"
	PageViewFlagClickedPhone      PageViewFlag = "clicked_phone"
	PageViewFlagClickedForm       PageViewFlag = "clicked_form"
	PageViewFlagPlayedEngineSound PageViewFlag = "played_engine_sound"
)

type InteractionRequest struct {
	FingerprintID string          `json:"fingerprint_db_id"`
	SessionID     string          `json:"session_db_id"`
	Type          InteractionType `json:"type"`
	PagePath      string          `json:"page_path"`
	Metadata      map[string]any  `json:"metadata"`
}
