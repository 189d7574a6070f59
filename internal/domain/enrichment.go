package domain

// BehavioralSignals são os sinais de engajamento calculados a partir do histórico de navegação
type BehavioralSignals struct {
	PageHistory         []string `json:"pageHistory"`
	TotalDwellTimeMs    int64    `json:"totalDwellTimeMs"`
	VisitCount          int      `json:"visitCount"`
	ProductPagesViewed  int      `json:"productPagesViewed"`
	CurrentSessionPages int      `json:"currentSessionPages"`
}

type EnrichmentThresholds struct {
	MinProductViews int
	MinSessionPages int
	MinDwellTimeMs  int64
}

type EnrichCheckRequest struct {
	FingerprintID string             `json:"fingerprint_db_id"`
	SessionID     *string            `json:"session_db_id"`
	Signals       *BehavioralSignals `json:"behavioral_signals"`
	ClientIP      string             `json:"-"`
}

const ReasonBelowThreshold = "Engagement below threshold"

type EnrichCheckResult struct {
	Success    bool              `json:"success"`
	Triggered  bool              `json:"enrichment_triggered"`
	Reason     string            `json:"reason,omitempty"`
	Thresholds map[string]string `json:"thresholds,omitempty"`
	ProfileID  string            `json:"profile_id,omitempty"`
	SentToN8N  bool              `json:"sent_to_n8n"`
	Error      string            `json:"error,omitempty"`
}

// BehavioralEnrichmentRequest é o payload enviado ao pipeline externo de enriquecimento
type BehavioralEnrichmentRequest struct {
	Type           string             `json:"type"`
	ProfileID      string             `json:"profile_id"`
	FingerprintID  string             `json:"fingerprint_id"`
	IPAddress      string             `json:"ip_address"`
	DeviceSignals  map[string]*string `json:"device_signals"`
	TrafficSignals map[string]*string `json:"traffic_signals"`
	Timestamp      string             `json:"timestamp"`
}

// IdentifyEnrichmentRequest é enviado após uma identificação bem sucedida
type IdentifyEnrichmentRequest struct {
	ProfileID     string  `json:"profile_id"`
	FingerprintID string  `json:"fingerprint_id"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Name          *string `json:"name"`
	Source        string  `json:"source"`
	Timestamp     string  `json:"timestamp"`
}

const (
	ProviderClearbit = "clearbit"
	ProviderSnov     = "snov"
	ProviderBigData  = "bigdata"
)

// EnrichmentResult é o resultado recebido via webhook do pipeline externo
type EnrichmentResult struct {
	ProfileID     string         `json:"profile_id"`
	FingerprintID *string        `json:"fingerprint_id"`
	Source        string         `json:"source"`
	Success       bool           `json:"success"`
	Data          map[string]any `json:"data"`
}

type EnrichmentIngestResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	LeadScore *int   `json:"lead_score,omitempty"`
}

// NormalizedEnrichment é o conjunto comum de campos firmográficos
type NormalizedEnrichment struct {
	CompanyName     *string
	CompanyDomain   *string
	CompanyIndustry *string
	CompanySize     *string
	JobTitle        *string
	LinkedinURL     *string
	FullName        *string
	FirstName       *string
	LastName        *string
}

// Fields lista as colunas com valor não nulo, na ordem do schema
func (n NormalizedEnrichment) Fields() []string {
	fields := make([]string, 0, 9)
	add := func(name string, v *string) {
		if v != nil && *v != "" {
			fields = append(fields, name)
		}
	}
	add("company_name", n.CompanyName)
	add("company_domain", n.CompanyDomain)
	add("company_industry", n.CompanyIndustry)
	add("company_size", n.CompanySize)
	add("job_title", n.JobTitle)
	add("linkedin_url", n.LinkedinURL)
	add("full_name", n.FullName)
	add("first_name", n.FirstName)
	add("last_name", n.LastName)
	return fields
}
