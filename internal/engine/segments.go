package engine

import "github.com/stovetop-games/brigade/internal/models"

// SegmentScore computes one segment's weighted 0–100 read of a customer
// rubric. Each 1–5 axis rescales linearly onto 0–100 before weighting.
func (e *Engine) SegmentScore(segmentID string, rubric models.CustomerRubric) float64 {
	seg, ok := e.catalog.SegmentByID(segmentID)
	if !ok {
		return 0
	}
	to0100 := func(v int) float64 {
		return (float64(clampInt(v, 1, 5)) - 1) / 4 * 100
	}
	var totW, score float64
	for _, cat := range models.RubricCategories() {
		w, ok := seg.Weights[cat]
		if !ok {
			continue
		}
		totW += w
		score += w * to0100(rubric.Category(cat))
	}
	if totW <= 0 {
		return 0
	}
	return score / totW
}

// updateSegments rolls every segment's satisfaction toward this service's
// score (75/25 exponential smoothing), drifts loyalty and base size, and
// reports review chance and churn risk. A segment missing from persisted
// state picks up the neutral defaults before updating.
func (e *Engine) updateSegments(me *models.Restaurant, rubric models.CustomerRubric) map[string]models.SegmentOutcome {
	out := make(map[string]models.SegmentOutcome, len(e.catalog.SegmentOrder))
	for _, key := range e.catalog.SegmentOrder {
		score := e.SegmentScore(key, rubric)
		seg, ok := me.Segments[key]
		if !ok {
			seg = &models.SegmentStanding{Base: 10, Loyalty: 0.50, Satisfaction: 60}
			me.Segments[key] = seg
		}

		seg.Satisfaction = roundTo(seg.Satisfaction*0.75+score*0.25, 1)

		retentionDelta := (seg.Satisfaction - 60) * e.tuning.RetentionFactor
		seg.Loyalty = clamp(seg.Loyalty+retentionDelta, 0.10, 0.95)

		growth := (seg.Loyalty-0.5)*0.8 + (seg.Satisfaction-60)*0.02
		seg.Base = clamp(seg.Base+growth, 0, 60)

		profile, _ := e.catalog.SegmentByID(key)
		reviewChance := e.tuning.ReviewBase + profile.ReviewTendency*0.5
		if seg.Satisfaction >= 75 {
			reviewChance += (seg.Satisfaction - 75) * e.tuning.ReviewBoost / 2
		}
		reviewChance = clamp(reviewChance, 0.01, e.tuning.ReviewMax)

		churnRisk := 0.0
		if seg.Satisfaction < e.tuning.ChurnSpikeBelow {
			churnRisk = clamp((e.tuning.ChurnSpikeBelow-seg.Satisfaction)/e.tuning.ChurnSpikeBelow, 0, 1)
		}

		out[key] = models.SegmentOutcome{
			Score:        roundTo(score, 1),
			Satisfaction: seg.Satisfaction,
			Loyalty:      roundTo(seg.Loyalty, 3),
			Base:         roundTo(seg.Base, 1),
			ReviewChance: roundTo(reviewChance*100, 1),
			ChurnRisk:    roundTo(churnRisk*100, 1),
		}
	}
	return out
}
