package enriching

import (
	"testing"
	"time"

	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	"github.com/attraveiculos/visitor-identity-api/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestScoreLead(t *testing.T) {
	now := fixedNow
	ago := func(d time.Duration) *time.Time {
		ts := now.Add(-d)
		return &ts
	}

	tests := []struct {
		name    string
		profile *domain.Profile
		want    int
	}{
		{"perfil nulo", nil, 0},
		{"perfil vazio", &domain.Profile{}, 0},
		{
			name: "apenas comportamento",
			profile: &domain.Profile{BehavioralCounters: domain.BehavioralCounters{
				TotalSessions:         2,
				TotalPageViews:        8,
				TotalProductViews:     3,
				TotalDwellTimeSeconds: 150,
			}},
			want: 10 + 8 + 9 + 5,
		},
		{
			name: "comportamento limitado por componente",
			profile: &domain.Profile{BehavioralCounters: domain.BehavioralCounters{
				TotalSessions:         50,
				TotalPageViews:        500,
				TotalProductViews:     100,
				TotalDwellTimeSeconds: 100000,
			}},
			want: 70,
		},
		{
			name: "contato e recência de uma semana",
			profile: &domain.Profile{
				Email:              utils.StringPtr("a@b.com"),
				Phone:              utils.StringPtr("11999998888"),
				JobTitle:           utils.StringPtr("Diretor"),
				BehavioralCounters: domain.BehavioralCounters{LastActiveAt: ago(72 * time.Hour)},
			},
			want: 10 + 10 + 5 + 5,
		},
		{
			name:    "recência de um mês",
			profile: &domain.Profile{BehavioralCounters: domain.BehavioralCounters{LastActiveAt: ago(20 * 24 * time.Hour)}},
			want:    2,
		},
		{
			name:    "inativo há mais de um mês",
			profile: &domain.Profile{BehavioralCounters: domain.BehavioralCounters{LastActiveAt: ago(40 * 24 * time.Hour)}},
			want:    0,
		},
		{
			name: "máximo em 100",
			profile: &domain.Profile{
				Email:       utils.StringPtr("a@b.com"),
				Phone:       utils.StringPtr("11999998888"),
				CompanyName: utils.StringPtr("Attra"),
				JobTitle:    utils.StringPtr("Diretor"),
				LinkedinURL: utils.StringPtr("https://linkedin.com/in/x"),
				BehavioralCounters: domain.BehavioralCounters{
					TotalSessions:         10,
					TotalPageViews:        40,
					TotalProductViews:     10,
					TotalDwellTimeSeconds: 600,
					LastActiveAt:          ago(time.Hour),
				},
			},
			want: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreLead(tt.profile, now))
		})
	}
}
