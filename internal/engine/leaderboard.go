package engine

import (
	"sort"

	"github.com/stovetop-games/brigade/internal/models"
)

// bestScore is the cross-restaurant ranking formula: brand momentum,
// average segment satisfaction, a cash proxy, stars, minus debt and a
// high-rent penalty.
func (e *Engine) bestScore(state *models.GameState, rest *models.Restaurant) float64 {
	var satSum float64
	var n int
	for _, key := range e.catalog.SegmentOrder {
		if seg, ok := rest.Segments[key]; ok {
			satSum += seg.Satisfaction
			n++
		}
	}
	satAvg := 0.0
	if n > 0 {
		satAvg = satSum / float64(n)
	}

	debtPenalty := (rest.StandardsDebt + rest.MaintenanceDebt + rest.CultureDebt) * 6
	rent := e.catalog.NeighbourhoodByID(state.City, rest.NeighbourhoodID).Rent
	cashProxy := clamp((rest.CashFloat-500)/2500, -1, 1)

	score := rest.Brand*45 + satAvg*0.35 + cashProxy*10 + float64(rest.Stars)*6 - debtPenalty
	if rent > 1.15 {
		score -= 1.5
	}
	return score
}

// ComputeLeaderboards scores every restaurant (player and rivals), sorts
// descending by score with a stable sort so ties keep their prior order,
// writes dense ranks 1..N back onto the entities, and returns the top N
// entries.
func (e *Engine) ComputeLeaderboards(state *models.GameState) []models.LeaderboardEntry {
	type scored struct {
		rest  *models.Restaurant
		kind  string
		score float64
	}
	all := make([]scored, 0, 1+len(state.Rivals))
	if state.Player != nil {
		all = append(all, scored{state.Player, "You", e.bestScore(state, state.Player)})
	}
	for _, rv := range state.Rivals {
		all = append(all, scored{rv, "Rival", e.bestScore(state, rv)})
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].score > all[j].score })

	entries := make([]models.LeaderboardEntry, 0, len(all))
	for i, s := range all {
		rank := i + 1
		s.rest.BestRank = rank
		entries = append(entries, models.LeaderboardEntry{
			ID:        s.rest.ID,
			Name:      s.rest.Name,
			Kind:      s.kind,
			Stars:     s.rest.Stars,
			BestScore: s.score,
			BestRank:  rank,
		})
	}

	topN := e.tuning.BestRestaurantTopN
	if topN > 0 && len(entries) > topN {
		entries = entries[:topN]
	}
	return entries
}
