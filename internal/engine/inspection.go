package engine

import (
	"github.com/stovetop-games/brigade/internal/catalog"
	"github.com/stovetop-games/brigade/internal/models"
)

// RunInspection converts a restaurant's current pressures and debts into
// a 0–100 score and a 0–3 star rating. Deterministic and idempotent for
// a given state; the weekly cadence is the caller's concern.
func (e *Engine) RunInspection(rest *models.Restaurant, nh catalog.Neighbourhood) *models.InspectionResult {
	qualityProxy := clamp((rest.Brand*0.45+rest.Consistency*0.30+rest.Standards*0.25)*100, 0, 100)
	score := clamp(qualityProxy*(0.92+nh.Critic*0.06)-rest.StandardsDebt*8-rest.MaintenanceDebt*5, 0, 100)

	stars := e.starsForScore(score)
	rest.Stars = stars

	return &models.InspectionResult{Score: roundTo(score, 1), Stars: stars}
}

// starsForScore maps a score onto stars using the configured thresholds
// (defaults 72/80/88 for 1/2/3).
func (e *Engine) starsForScore(score float64) int {
	t := e.tuning.StarThresholds
	switch {
	case score >= float64(t[2]):
		return 3
	case score >= float64(t[1]):
		return 2
	case score >= float64(t[0]):
		return 1
	default:
		return 0
	}
}
