package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

const (
	VisitorFilterAll        = "all"
	VisitorFilterIdentified = "identified"
	VisitorFilterEnriched   = "enriched"
)

type VisitorFilter struct {
	Status string
	Page   int
	Limit  int
}

// Offset calcula o deslocamento da página (1-indexada)
func (f VisitorFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

type VisitorSummary struct {
	Profile
	AggregatedSessions  int `json:"aggregated_sessions"`
	TotalVehiclesViewed int `json:"total_vehicles_viewed"`
}

type TopVehicle struct {
	Slug  string `json:"slug"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Views int    `json:"views"`
}

type VisitorMetrics struct {
	TotalVisitors      int          `json:"total_visitors"`
	IdentifiedVisitors int          `json:"identified_visitors"`
	EnrichedVisitors   int          `json:"enriched_visitors"`
	TotalSessions      int          `json:"total_sessions"`
	TotalPageViews     int          `json:"total_page_views"`
	AvgSessionDuration int          `json:"avg_session_duration"`
	WhatsappClicks     int          `json:"whatsapp_clicks"`
	TopVehicles        []TopVehicle `json:"top_vehicles"`
}

const RoleAdmin = "admin"

// Claims são emitidas pelo CRM para a equipe interna
type Claims struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}
