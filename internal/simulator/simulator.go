// Package simulator drives the engine through a full season unattended
// and streams every service result to a pluggable output destination.
package simulator

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/schollz/progressbar/v3"

	"github.com/stovetop-games/brigade/internal/catalog"
	"github.com/stovetop-games/brigade/internal/engine"
	"github.com/stovetop-games/brigade/internal/models"
)

const (
	topicServiceResults = "service_results"
	topicInspections    = "inspections"
	topicLeaderboards   = "leaderboards"
	topicScouting       = "scouting"
)

// Simulator owns the game state and the engine for one run.
type Simulator struct {
	Config  *models.Config
	Catalog *catalog.Catalog
	Engine  *engine.Engine
	State   *models.GameState

	signatureID string
}

// NewSimulator wires the catalog, engine and a fresh state from config.
func NewSimulator(cfg *models.Config) *Simulator {
	cat := catalog.Default()
	eng := engine.New(cat, cfg.Tuning)
	return &Simulator{
		Config:  cfg,
		Catalog: cat,
		Engine:  eng,
		State:   engine.DefaultState(cfg.Seed, cat),
	}
}

// Run plays one season service by service, emitting results as events.
func (s *Simulator) Run() error {
	output, err := s.determineOutputDestination()
	if err != nil {
		return err
	}
	defer func() {
		if err := output.Close(); err != nil {
			log.Printf("Failed to close output: %v", err)
		}
	}()

	s.Engine.NewSeason(s.State, s.Config.CityName)
	s.Engine.CreateRestaurant(s.State, engine.CreateConfig{
		Name:            s.Config.RestaurantName,
		DiningTypeID:    s.Config.DiningTypeID,
		StyleID:         s.Config.StyleID,
		NeighbourhoodID: s.Config.NeighbourhoodID,
	})

	// one signature dish in R&D from day one; it locks mid-season if the
	// services go well
	sig := s.Engine.CreateSignatureDish("grilled_plate", map[string]string{
		"protein": "Fish",
		"sauce":   "Pan Jus",
		"veg":     "Charred Greens",
		"texture": "Crumb",
	}, []string{"grill", "smoke"})
	s.State.Player.RnDQueue = append(s.State.Player.RnDQueue, sig)
	s.signatureID = sig.ID

	tuning := s.Engine.Tuning()
	total := tuning.SeasonDays * tuning.ServicesPerDay
	log.Printf("Season %d in %s: %d services", s.State.Season, s.State.City, total)
	bar := progressbar.Default(int64(total), "season")

	for i := 0; i < total; i++ {
		plan := s.nextPlan()
		result, err := s.Engine.RunService(s.State, plan)
		if err != nil {
			return fmt.Errorf("service %d failed: %w", s.State.ServiceIndex, err)
		}

		board := s.Engine.ComputeLeaderboards(s.State)

		if err := s.writeJSON(output, topicServiceResults, result); err != nil {
			log.Printf("Failed to write service result: %v", err)
		}
		if result.Inspection != nil {
			if err := s.writeJSON(output, topicInspections, inspectionEvent{
				Season: result.Season, Day: result.Day, ServiceIndex: result.ServiceIndex,
				Score: result.Inspection.Score, Stars: result.Inspection.Stars,
			}); err != nil {
				log.Printf("Failed to write inspection: %v", err)
			}
			if err := s.writeJSON(output, topicLeaderboards, leaderboardEvent{
				Season: result.Season, Day: result.Day, ServiceIndex: result.ServiceIndex,
				Entries: board,
			}); err != nil {
				log.Printf("Failed to write leaderboard: %v", err)
			}
		}

		s.maybeScoutAndPoach(output)

		engine.AdvanceService(s.State)
		_ = bar.Add(1)
	}

	me := s.State.Player
	log.Printf("Season complete: rank %d, %d star(s), cash float %.0f", me.BestRank, me.Stars, me.CashFloat)
	return nil
}

// maybeScoutAndPoach periodically spends on intel and tries to hire from
// the scouted rival, exercising the negotiation rules' cooldowns and
// protection windows over a season.
func (s *Simulator) maybeScoutAndPoach(output OutputDestination) {
	idx := s.State.ServiceIndex
	if idx%12 != 0 || len(s.State.Rivals) == 0 {
		return
	}
	rival := s.State.Rivals[(idx/12)%len(s.State.Rivals)]

	scout, err := s.Engine.ScoutRival(s.State, rival.ID)
	if err != nil {
		log.Printf("Scout failed: %v", err)
		return
	}
	if !scout.OK {
		log.Printf("Scouting %s rejected: %s", rival.Name, scout.Reason)
		return
	}
	if werr := s.writeJSON(output, topicScouting, scout.Report); werr != nil {
		log.Printf("Failed to write scout report: %v", werr)
	}

	if len(rival.Roster) == 0 {
		return
	}
	target := rival.Roster[0]
	poach, err := s.Engine.PoachFromRival(s.State, rival.ID, target.ID, engine.DefaultOffer())
	if err != nil {
		log.Printf("Poach failed: %v", err)
		return
	}
	if poach.OK {
		log.Printf("Poached %s from %s (%.1f%% chance)", target.Name, rival.Name, poach.Chance)
	} else if poach.Reason != "" {
		log.Printf("Poach of %s rejected: %s", target.Name, poach.Reason)
	} else {
		log.Printf("Poach of %s declined (%.1f%% chance)", target.Name, poach.Chance)
	}
}

type inspectionEvent struct {
	Season       int     `json:"season"`
	Day          int     `json:"day"`
	ServiceIndex int     `json:"service_index"`
	Score        float64 `json:"score"`
	Stars        int     `json:"stars"`
}

type leaderboardEvent struct {
	Season       int                       `json:"season"`
	Day          int                       `json:"day"`
	ServiceIndex int                       `json:"service_index"`
	Entries      []models.LeaderboardEntry `json:"entries"`
}

func (s *Simulator) writeJSON(output OutputDestination, topic string, v interface{}) error {
	msg, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize %s event: %w", topic, err)
	}
	return output.WriteMessage(topic, msg)
}
