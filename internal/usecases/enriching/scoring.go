package enriching

import (
	"time"

	"github.com/attraveiculos/visitor-identity-api/internal/domain"
)

const maxLeadScore = 100

// ScoreLead pontua o perfil de 0 a 100 combinando comportamento, completude e recência
func ScoreLead(profile *domain.Profile, now time.Time) int {
	if profile == nil {
		return 0
	}

	score := 0

	score += capped(profile.TotalSessions*5, 20)
	score += capped(profile.TotalPageViews, 20)
	score += capped(profile.TotalProductViews*3, 20)
	score += capped(profile.TotalDwellTimeSeconds/30, 10)

	if present(profile.Email) {
		score += 10
	}
	if present(profile.Phone) {
		score += 10
	}
	if present(profile.CompanyName) {
		score += 5
	}
	if present(profile.JobTitle) {
		score += 5
	}
	if present(profile.LinkedinURL) {
		score += 5
	}

	if profile.LastActiveAt != nil {
		switch since := now.Sub(*profile.LastActiveAt); {
		case since <= 24*time.Hour:
			score += 10
		case since <= 7*24*time.Hour:
			score += 5
		case since <= 30*24*time.Hour:
			score += 2
		}
	}

	return capped(score, maxLeadScore)
}

func capped(value, max int) int {
	if value > max {
		return max
	}
	if value < 0 {
		return 0
	}
	return value
}

func present(v *string) bool {
	return v != nil && *v != ""
}
