package engine

import (
	"fmt"
	"sort"

	"github.com/stovetop-games/brigade/internal/models"
)

// simulateRivals runs the lightweight per-service update for every AI
// competitor: satisfaction drift toward a brand/standards/culture target,
// damped loyalty and base drift, cash and debt drift, a weekly star
// recompute, and a 6% chance per rival of a poach attempt against the
// player.
func (e *Engine) simulateRivals(state *models.GameState, r *Stream) {
	for _, rv := range state.Rivals {
		nh := e.catalog.NeighbourhoodByID(state.City, rv.NeighbourhoodID)

		for _, key := range e.catalog.SegmentOrder {
			seg, ok := rv.Segments[key]
			if !ok {
				seg = &models.SegmentStanding{Base: 10, Loyalty: 0.50, Satisfaction: 60}
				rv.Segments[key] = seg
			}
			target := 55 + rv.Brand*20 + rv.Standards*10 + rv.Culture*8
			noise := (r.Float64() - 0.5) * 6
			seg.Satisfaction = clamp(seg.Satisfaction*0.8+(target+noise)*0.2, 0, 100)
			seg.Loyalty = clamp(seg.Loyalty+(seg.Satisfaction-60)*e.tuning.RetentionFactor*0.6, 0.10, 0.95)
			seg.Base = clamp(seg.Base+(seg.Loyalty-0.5)*0.4, 0, 60)
		}

		rent := e.tuning.RentPerService * nh.Rent
		rv.CashFloat = roundTo(rv.CashFloat+(r.Float64()-0.45)*180-rent*0.2, 0)

		rv.StandardsDebt = clamp(rv.StandardsDebt+0.01+(r.Float64()-0.5)*0.02, 0, 1)
		rv.MaintenanceDebt = clamp(rv.MaintenanceDebt+0.01+(r.Float64()-0.5)*0.02, 0, 1)
		rv.CultureDebt = clamp(rv.CultureDebt+0.008+(r.Float64()-0.5)*0.02, 0, 1)

		if state.Service == models.ServiceDinner && state.Day%e.tuning.InspectionEveryDays == 0 {
			rv.Stars = e.RunInspection(rv, nh).Stars
		}

		if state.Player != nil && r.Float64() < 0.06 {
			e.attemptAIPoach(state, rv, r)
		}
	}
}

// attemptAIPoach has a rival try to lift the player's most poachable
// staff member: lowest loyalty plus freshness. Cooldown and protected
// windows are respected; the cooldown is recorded on every resolved
// attempt, success or not.
func (e *Engine) attemptAIPoach(state *models.GameState, rival *models.Restaurant, r *Stream) {
	me := state.Player
	if len(me.Roster) == 0 {
		return
	}

	candidates := make([]*models.StaffMember, len(me.Roster))
	copy(candidates, me.Roster)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Loyalty+(1-candidates[i].Fatigue) < candidates[j].Loyalty+(1-candidates[j].Fatigue)
	})
	target := candidates[0]

	key := poachKey(rival.ID, target.ID)
	if last, ok := me.PoachHistory[key]; ok {
		if state.ServiceIndex-last.LastAttemptServiceIndex < e.tuning.PoachCooldownServices {
			return
		}
	}
	for _, c := range me.Contracts {
		if c.StaffID == target.ID && state.ServiceIndex < c.LockUntil {
			return
		}
	}

	chance := clamp(
		0.10+(rival.Brand-me.Brand)*0.20+(rival.Culture-me.Culture)*0.15+target.Fatigue*0.10-(target.Loyalty-0.5)*0.35,
		0.02, 0.55)
	if me.PoachHistory == nil {
		me.PoachHistory = make(map[string]models.PoachAttempt)
	}
	me.PoachHistory[key] = models.PoachAttempt{LastAttemptServiceIndex: state.ServiceIndex}

	if r.Float64() < chance {
		roster := me.Roster[:0]
		for _, s := range me.Roster {
			if s.ID != target.ID {
				roster = append(roster, s)
			}
		}
		me.Roster = roster
		contracts := me.Contracts[:0]
		for _, c := range me.Contracts {
			if c.StaffID != target.ID {
				contracts = append(contracts, c)
			}
		}
		me.Contracts = contracts
		state.PushLog(&models.LogEntry{
			System: true,
			Msg:    fmt.Sprintf("A rival (%s) poached your %s.", rival.Name, target.Name),
		})
	} else {
		state.PushLog(&models.LogEntry{
			System: true,
			Msg:    fmt.Sprintf("A rival tried to poach your %s, but they stayed.", target.Name),
		})
	}
}

func poachKey(rivalID, staffID string) string {
	return rivalID + "_" + staffID
}
