package domain

import (
	"encoding/json"
	"time"
)

type ProfileStatus string

const (
	ProfileStatusAnonymous  ProfileStatus = "anonymous"
	ProfileStatusIdentified ProfileStatus = "identified"
	ProfileStatusEnriched   ProfileStatus = "enriched"
	ProfileStatusConverted  ProfileStatus = "converted"
)

var profileStatusRank = map[ProfileStatus]int{
	ProfileStatusAnonymous:  0,
	ProfileStatusIdentified: 1,
	ProfileStatusEnriched:   2,
	ProfileStatusConverted:  3,
}

func (s ProfileStatus) IsValid() bool {
	_, ok := profileStatusRank[s]
	return ok
}

// Advance retorna o status mais avançado entre o atual e o alvo. O status nunca regride.
func (s ProfileStatus) Advance(target ProfileStatus) ProfileStatus {
	if profileStatusRank[target] > profileStatusRank[s] {
		return target
	}
	return s
}

// AtLeast indica se o status atual é igual ou posterior ao informado
func (s ProfileStatus) AtLeast(other ProfileStatus) bool {
	return profileStatusRank[s] >= profileStatusRank[other]
}

// Bases legais (LGPD) para manter dados sem consentimento explícito
const (
	BasisExplicitConsent      = "explicit_consent"
	BasisURLParameter         = "url_parameter"
	BasisFormSubmission       = "form_submission"
	BasisBehavioralEngagement = "behavioral_engagement"
)

type Profile struct {
	ID                      string          `json:"id"`
	Status                  ProfileStatus   `json:"status"`
	Email                   *string         `json:"email"`
	Phone                   *string         `json:"phone"`
	NationalIDHash          *string         `json:"-"`
	FullName                *string         `json:"full_name"`
	FirstName               *string         `json:"first_name"`
	LastName                *string         `json:"last_name"`
	ConsentGiven            bool            `json:"consent_given"`
	ConsentAt               *time.Time      `json:"consent_at"`
	LegitimateInterestBasis *string         `json:"legitimate_interest_basis"`
	EnrichmentSource        *string         `json:"enrichment_source"`
	EnrichmentData          json.RawMessage `json:"enrichment_data,omitempty"`
	EnrichedAt              *time.Time      `json:"enriched_at"`
	CompanyName             *string         `json:"company_name"`
	CompanyDomain           *string         `json:"company_domain"`
	CompanyIndustry         *string         `json:"company_industry"`
	CompanySize             *string         `json:"company_size"`
	JobTitle                *string         `json:"job_title"`
	LinkedinURL             *string         `json:"linkedin_url"`
	LeadScore               int             `json:"lead_score"`
	BehavioralCounters
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasContact indica se há algum meio de contato (email ou telefone)
func (p *Profile) HasContact() bool {
	return (p.Email != nil && *p.Email != "") || (p.Phone != nil && *p.Phone != "")
}

// DisplayName retorna o nome completo ou, na falta dele, o primeiro nome
func (p *Profile) DisplayName() *string {
	if p.FullName != nil && *p.FullName != "" {
		return p.FullName
	}
	return p.FirstName
}

type BehavioralCounters struct {
	TotalSessions         int        `json:"total_sessions"`
	TotalPageViews        int        `json:"total_page_views"`
	TotalProductViews     int        `json:"total_product_views"`
	TotalDwellTimeSeconds int        `json:"total_dwell_time_seconds"`
	LastActiveAt          *time.Time `json:"last_active_at"`
}

// IdentifyRequest é o payload público de identificação do visitante
type IdentifyRequest struct {
	FingerprintID   string  `json:"fingerprint_db_id"`
	Source          string  `json:"source"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	Name            *string `json:"name"`
	NationalID      *string `json:"national_id"`
	ExplicitConsent *bool   `json:"consent"`
}

type IdentifyResponse struct {
	Success   bool   `json:"success"`
	ProfileID string `json:"profile_id"`
	WasMerged bool   `json:"was_merged"`
}

// IdentitySignals são os sinais identificadores já normalizados
type IdentitySignals struct {
	Email           *string
	Phone           *string
	FullName        *string
	FirstName       *string
	LastName        *string
	NationalIDHash  *string
	ExplicitConsent bool
	Basis           string
}

// ProfileIdentityPatch preenche apenas colunas nulas e avança o status
type ProfileIdentityPatch struct {
	Email          *string
	Phone          *string
	FullName       *string
	FirstName      *string
	LastName       *string
	NationalIDHash *string
	Status         ProfileStatus
	ConsentAt      *time.Time
	Basis          *string
}

func (p ProfileIdentityPatch) IsEmpty() bool {
	return p.Email == nil && p.Phone == nil && p.FullName == nil && p.FirstName == nil &&
		p.LastName == nil && p.NationalIDHash == nil && p.ConsentAt == nil && p.Basis == nil
}

type ResolveResult struct {
	ProfileID string
	WasMerged bool
	Conflict  bool
}
