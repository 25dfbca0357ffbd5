package engine

import (
	"fmt"
	"sort"

	"github.com/stovetop-games/brigade/internal/models"
)

// RejectReason classifies a business-rule rejection. Rejections are
// ordinary return values, never errors; callers branch on OK.
type RejectReason string

const (
	ReasonInsufficientFunds RejectReason = "insufficient_funds"
	ReasonCooldownActive    RejectReason = "cooldown_active"
	ReasonTargetProtected   RejectReason = "target_protected"
	ReasonMissingEntity     RejectReason = "missing_entity"
)

// ScoutResult reports a scouting run.
type ScoutResult struct {
	OK     bool
	Reason RejectReason
	Report *models.ScoutReport
}

// PoachResult reports a poach attempt. Chance is the success probability
// in percent when the attempt resolved.
type PoachResult struct {
	OK      bool
	Reason  RejectReason
	Chance  float64
	Message string
}

// ScoutRival buys a partial intel report on a rival: stars, top-two
// segment strengths and a hint. Re-scouting overwrites the cached report.
func (e *Engine) ScoutRival(state *models.GameState, rivalID string) (ScoutResult, error) {
	me := state.Player
	if me == nil {
		return ScoutResult{}, ErrNoRestaurant
	}
	rv := findRival(state, rivalID)
	if rv == nil {
		return ScoutResult{Reason: ReasonMissingEntity}, nil
	}
	if me.CashFloat < e.tuning.ScoutCost {
		return ScoutResult{Reason: ReasonInsufficientFunds}, nil
	}
	me.CashFloat -= e.tuning.ScoutCost

	nh := e.catalog.NeighbourhoodByID(state.City, rv.NeighbourhoodID)

	type segSat struct {
		key string
		sat float64
	}
	ranked := make([]segSat, 0, len(e.catalog.SegmentOrder))
	for _, key := range e.catalog.SegmentOrder {
		if seg, ok := rv.Segments[key]; ok {
			ranked = append(ranked, segSat{key, seg.Satisfaction})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].sat > ranked[j].sat })
	strengths := make([]string, 0, 2)
	for i := 0; i < len(ranked) && i < 2; i++ {
		if profile, ok := e.catalog.SegmentByID(ranked[i].key); ok {
			strengths = append(strengths, profile.Name)
		}
	}

	hint := "They’re chasing momentum."
	if rv.Stars > 0 {
		hint = "They’re under scrutiny. Any slip hurts them."
	}

	report := &models.ScoutReport{
		RivalID:            rivalID,
		Name:               rv.Name,
		Neighbourhood:      nh.Name,
		StyleID:            rv.StyleID,
		DiningTypeID:       rv.DiningTypeID,
		Stars:              rv.Stars,
		Strengths:          strengths,
		Hint:               hint,
		SeenAtServiceIndex: state.ServiceIndex,
	}
	if me.ScoutingReports == nil {
		me.ScoutingReports = make(map[string]*models.ScoutReport)
	}
	me.ScoutingReports[rivalID] = report
	return ScoutResult{OK: true, Report: report}, nil
}

// Offer is the package behind a poach attempt. WageBumpPct is clamped to
// [0, 0.6]; DefaultOffer carries the standard 10% bump.
type Offer struct {
	WageBumpPct float64
	Perks       models.Perk
}

// DefaultOffer is the baseline package: a 10% wage bump and training.
func DefaultOffer() Offer {
	return Offer{WageBumpPct: 0.10, Perks: models.PerkTraining}
}

func perkBonus(p models.Perk) float64 {
	switch p {
	case models.PerkCreativeControl:
		return 0.10
	case models.PerkDaysOff:
		return 0.08
	default:
		return 0.06
	}
}

// poachStreamStep and poachStaffStep space the poach roll's stream away
// from the service stream, so a player-initiated poach never perturbs a
// service replay.
const (
	poachStreamStep = 333
	poachStaffStep  = 17
)

// poachChance is the success probability of a player poach, clamped to
// [0.05, 0.70].
func (e *Engine) poachChance(me, rv *models.Restaurant, target *models.StaffMember, wageOffer float64, perks models.Perk) float64 {
	relativeWageGain := (wageOffer - target.Wage) / target.Wage
	base := e.tuning.PoachBaseChance +
		(me.Brand-rv.Brand)*0.12 +
		(me.Culture-rv.Culture)*0.12 +
		relativeWageGain*0.20 +
		perkBonus(perks) -
		(target.Loyalty-0.5)*0.35
	return clamp(base, 0.05, 0.70)
}

// PoachFromRival attempts to move a rival's staff member onto the
// player's roster. The upfront cost is charged once the cooldown,
// protection and funds checks pass, regardless of the roll's outcome,
// and the cooldown is recorded on every resolved attempt.
func (e *Engine) PoachFromRival(state *models.GameState, rivalID, staffID string, offer Offer) (PoachResult, error) {
	me := state.Player
	if me == nil {
		return PoachResult{}, ErrNoRestaurant
	}
	rv := findRival(state, rivalID)
	if rv == nil {
		return PoachResult{Reason: ReasonMissingEntity}, nil
	}

	var target *models.StaffMember
	for _, s := range rv.Roster {
		if s.ID == staffID {
			target = s
			break
		}
	}
	if target == nil {
		return PoachResult{Reason: ReasonMissingEntity}, nil
	}

	key := poachKey(rivalID, staffID)
	if me.PoachHistory == nil {
		me.PoachHistory = make(map[string]models.PoachAttempt)
	}
	if last, ok := me.PoachHistory[key]; ok {
		if state.ServiceIndex-last.LastAttemptServiceIndex < e.tuning.PoachCooldownServices {
			return PoachResult{Reason: ReasonCooldownActive}, nil
		}
	}

	// high-loyalty staff are untouchable during the early protected period
	if target.Loyalty > 0.80 && state.ServiceIndex < e.tuning.ProtectedHireServices {
		return PoachResult{Reason: ReasonTargetProtected}, nil
	}

	bump := clamp(offer.WageBumpPct, 0, 0.6)
	wageOffer := target.Wage * (1 + bump)
	upFrontCost := 80 + bump*120
	if me.CashFloat < upFrontCost {
		return PoachResult{Reason: ReasonInsufficientFunds}, nil
	}

	me.CashFloat -= upFrontCost
	me.PoachHistory[key] = models.PoachAttempt{LastAttemptServiceIndex: state.ServiceIndex}

	chance := e.poachChance(me, rv, target, wageOffer, offer.Perks)
	r := NewStream(state.Seed + int64(state.ServiceIndex)*poachStreamStep + int64(len(staffID))*poachStaffStep)

	if r.Float64() < chance {
		roster := rv.Roster[:0]
		for _, s := range rv.Roster {
			if s.ID != staffID {
				roster = append(roster, s)
			}
		}
		rv.Roster = roster

		// same identity, new terms; the id survives so poach history
		// for this person stays coherent
		hired := *target
		hired.Wage = jsRound(wageOffer)
		hired.Loyalty = clamp(target.Loyalty-0.08, 0.2, 0.9)
		hired.Fatigue = clamp(target.Fatigue+0.05, 0, 1)
		me.Roster = append(me.Roster, &hired)
		me.Contracts = append(me.Contracts, models.Contract{
			StaffID:   hired.ID,
			LockUntil: state.ServiceIndex + e.tuning.ProtectedHireServices,
		})
		return PoachResult{
			OK:      true,
			Chance:  roundTo(chance*100, 1),
			Message: fmt.Sprintf("Success! %s joined you.", target.Name),
		}, nil
	}

	return PoachResult{
		Chance:  roundTo(chance*100, 1),
		Message: fmt.Sprintf("They declined (chance was %.1f%%).", roundTo(chance*100, 1)),
	}, nil
}

func findRival(state *models.GameState, rivalID string) *models.Restaurant {
	for _, rv := range state.Rivals {
		if rv.ID == rivalID {
			return rv
		}
	}
	return nil
}
