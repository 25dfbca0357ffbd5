package engine

import (
	"errors"
	"testing"

	"github.com/stovetop-games/brigade/internal/models"
)

func poachFixture(e *Engine) *models.GameState {
	state := DefaultState(42, e.Catalog())
	e.NewSeason(state, "Sydney")
	e.CreateRestaurant(state, CreateConfig{Name: "Test Kitchen", DiningTypeID: "bistro", StyleID: "modern_aus"})
	// past the protected window so poaching is open
	state.ServiceIndex = 20
	return state
}

func TestScoutRivalRequiresPlayer(t *testing.T) {
	e := newTestEngine()
	state := DefaultState(42, e.Catalog())
	e.NewSeason(state, "Sydney")

	_, err := e.ScoutRival(state, "rival_0")
	if !errors.Is(err, ErrNoRestaurant) {
		t.Fatalf("err = %v, want ErrNoRestaurant", err)
	}
}

func TestScoutRivalChargesAndCaches(t *testing.T) {
	e := newTestEngine()
	state := poachFixture(e)
	before := state.Player.CashFloat

	res, err := e.ScoutRival(state, "rival_0")
	if err != nil {
		t.Fatal(err)
	}
	if !res.OK {
		t.Fatalf("scout rejected: %s", res.Reason)
	}
	if state.Player.CashFloat != before-e.Tuning().ScoutCost {
		t.Fatalf("cash %v, want %v", state.Player.CashFloat, before-e.Tuning().ScoutCost)
	}
	if res.Report == nil || res.Report.RivalID != "rival_0" {
		t.Fatal("report missing or mis-keyed")
	}
	if len(res.Report.Strengths) == 0 || len(res.Report.Strengths) > 2 {
		t.Fatalf("strengths = %v, want top 1-2 segments", res.Report.Strengths)
	}
	if cached := state.Player.ScoutingReports["rival_0"]; cached != res.Report {
		t.Fatal("report not cached on the player")
	}
}

func TestScoutRivalRejections(t *testing.T) {
	e := newTestEngine()

	t.Run("unknown rival", func(t *testing.T) {
		state := poachFixture(e)
		res, err := e.ScoutRival(state, "rival_999")
		if err != nil {
			t.Fatal(err)
		}
		if res.OK || res.Reason != ReasonMissingEntity {
			t.Fatalf("got %+v, want missing_entity rejection", res)
		}
	})

	t.Run("broke player", func(t *testing.T) {
		state := poachFixture(e)
		state.Player.CashFloat = 10
		res, err := e.ScoutRival(state, "rival_0")
		if err != nil {
			t.Fatal(err)
		}
		if res.OK || res.Reason != ReasonInsufficientFunds {
			t.Fatalf("got %+v, want insufficient_funds rejection", res)
		}
		if state.Player.CashFloat != 10 {
			t.Fatalf("rejected scout still charged: %v", state.Player.CashFloat)
		}
	})
}

func TestPoachCooldown(t *testing.T) {
	e := newTestEngine()
	state := poachFixture(e)
	rival := state.Rivals[0]
	target := rival.Roster[0]
	target.Loyalty = 0.5

	first, err := e.PoachFromRival(state, rival.ID, target.ID, DefaultOffer())
	if err != nil {
		t.Fatal(err)
	}
	if first.Reason == ReasonCooldownActive {
		t.Fatal("first attempt hit a cooldown")
	}
	if first.OK {
		// target moved; a repeat poach would be missing_entity, which is
		// not the rule under test
		t.Skip("first attempt succeeded for this seed")
	}

	playerRoster := len(state.Player.Roster)
	rivalRoster := len(rival.Roster)
	cash := state.Player.CashFloat

	second, err := e.PoachFromRival(state, rival.ID, target.ID, DefaultOffer())
	if err != nil {
		t.Fatal(err)
	}
	if second.OK || second.Reason != ReasonCooldownActive {
		t.Fatalf("got %+v, want cooldown_active rejection", second)
	}
	if len(state.Player.Roster) != playerRoster || len(rival.Roster) != rivalRoster {
		t.Fatal("cooldown rejection mutated a roster")
	}
	if state.Player.CashFloat != cash {
		t.Fatal("cooldown rejection charged the player")
	}

	// the cooldown expires after the configured number of services
	state.ServiceIndex += e.Tuning().PoachCooldownServices
	third, err := e.PoachFromRival(state, rival.ID, target.ID, DefaultOffer())
	if err != nil {
		t.Fatal(err)
	}
	if third.Reason == ReasonCooldownActive {
		t.Fatal("cooldown did not expire")
	}
}

func TestPoachTargetProtected(t *testing.T) {
	e := newTestEngine()
	state := poachFixture(e)
	state.ServiceIndex = 2 // inside the early protected period
	rival := state.Rivals[0]
	target := rival.Roster[0]
	target.Loyalty = 0.9

	res, err := e.PoachFromRival(state, rival.ID, target.ID, DefaultOffer())
	if err != nil {
		t.Fatal(err)
	}
	if res.OK || res.Reason != ReasonTargetProtected {
		t.Fatalf("got %+v, want target_protected rejection", res)
	}
}

func TestPoachInsufficientFunds(t *testing.T) {
	e := newTestEngine()
	state := poachFixture(e)
	state.Player.CashFloat = 5
	rival := state.Rivals[0]
	target := rival.Roster[0]
	target.Loyalty = 0.5

	res, err := e.PoachFromRival(state, rival.ID, target.ID, DefaultOffer())
	if err != nil {
		t.Fatal(err)
	}
	if res.OK || res.Reason != ReasonInsufficientFunds {
		t.Fatalf("got %+v, want insufficient_funds rejection", res)
	}
	if state.Player.CashFloat != 5 {
		t.Fatal("rejected poach still charged the player")
	}
	if _, attempted := state.Player.PoachHistory[poachKey(rival.ID, target.ID)]; attempted {
		t.Fatal("rejected poach recorded a cooldown")
	}
}

func TestPoachMissingEntities(t *testing.T) {
	e := newTestEngine()
	state := poachFixture(e)

	res, err := e.PoachFromRival(state, "rival_999", "someone", DefaultOffer())
	if err != nil {
		t.Fatal(err)
	}
	if res.OK || res.Reason != ReasonMissingEntity {
		t.Fatalf("unknown rival: got %+v", res)
	}

	res, err = e.PoachFromRival(state, state.Rivals[0].ID, "nobody", DefaultOffer())
	if err != nil {
		t.Fatal(err)
	}
	if res.OK || res.Reason != ReasonMissingEntity {
		t.Fatalf("unknown staff: got %+v", res)
	}
}

func TestPoachSuccessTransfersStaff(t *testing.T) {
	e := newTestEngine()
	state := poachFixture(e)
	state.Player.Brand = 0.95
	state.Player.Culture = 0.95
	state.Player.CashFloat = 100000
	rival := state.Rivals[0]

	// with a max offer against a demoralized target the chance clamps to
	// 0.70, so a success shows up within a few attempts
	var won bool
	for i := 0; i < 40 && len(rival.Roster) > 0; i++ {
		target := rival.Roster[0]
		target.Loyalty = 0.10
		target.Fatigue = 0.9
		res, err := e.PoachFromRival(state, rival.ID, target.ID, Offer{WageBumpPct: 0.6, Perks: models.PerkCreativeControl})
		if err != nil {
			t.Fatal(err)
		}
		if res.OK {
			won = true
			var hired *models.StaffMember
			for _, s := range state.Player.Roster {
				if s.ID == target.ID {
					hired = s
				}
			}
			if hired == nil {
				t.Fatal("successful poach did not add the target to the player roster")
			}
			for _, s := range rival.Roster {
				if s.ID == target.ID {
					t.Fatal("successful poach left the target on the rival roster")
				}
			}
			var protected bool
			for _, c := range state.Player.Contracts {
				if c.StaffID == hired.ID && c.LockUntil == state.ServiceIndex+e.Tuning().ProtectedHireServices {
					protected = true
				}
			}
			if !protected {
				t.Fatal("new hire has no protection contract")
			}
			if hired.Wage <= target.Wage {
				t.Fatalf("hire kept old wage: %v <= %v", hired.Wage, target.Wage)
			}
			break
		}
		state.ServiceIndex += e.Tuning().PoachCooldownServices
	}
	if !won {
		t.Fatal("no poach succeeded at a 70% clamped chance over 40 attempts")
	}
}

func TestPoachChanceClamped(t *testing.T) {
	e := newTestEngine()
	hopeless := &models.StaffMember{Wage: 150, Loyalty: 0.95}
	sureThing := &models.StaffMember{Wage: 150, Loyalty: 0.10, Fatigue: 1}
	weak := &models.Restaurant{Brand: 0.05, Culture: 0.05}
	strong := &models.Restaurant{Brand: 0.95, Culture: 0.95}

	low := e.poachChance(weak, strong, hopeless, 150, models.PerkTraining)
	if low != 0.05 {
		t.Fatalf("floor = %v, want 0.05", low)
	}
	high := e.poachChance(strong, weak, sureThing, 150*1.6, models.PerkCreativeControl)
	if high != 0.70 {
		t.Fatalf("ceiling = %v, want 0.70", high)
	}
}
