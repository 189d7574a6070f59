package enriching

import (
	"fmt"

	"github.com/attraveiculos/visitor-identity-api/internal/config"
	"github.com/attraveiculos/visitor-identity-api/internal/domain"
)

func ThresholdsFromConfig(cfg config.Tracking) domain.EnrichmentThresholds {
	return domain.EnrichmentThresholds{
		MinProductViews: cfg.MinProductViews,
		MinSessionPages: cfg.MinSessionPages,
		MinDwellTimeMs:  cfg.MinDwellTimeMs,
	}
}

// Qualifies exige os três limites ao mesmo tempo, com limites inclusivos.
// O relatório traz "atual/mínimo" de cada critério.
func Qualifies(signals domain.BehavioralSignals, t domain.EnrichmentThresholds) (bool, map[string]string) {
	report := map[string]string{
		"productPagesViewed":  fmt.Sprintf("%d/%d", signals.ProductPagesViewed, t.MinProductViews),
		"currentSessionPages": fmt.Sprintf("%d/%d", signals.CurrentSessionPages, t.MinSessionPages),
		"totalDwellTimeMs":    fmt.Sprintf("%d/%d", signals.TotalDwellTimeMs, t.MinDwellTimeMs),
	}

	qualifies := signals.ProductPagesViewed >= t.MinProductViews &&
		signals.CurrentSessionPages >= t.MinSessionPages &&
		signals.TotalDwellTimeMs >= t.MinDwellTimeMs

	return qualifies, report
}
