// Package engine is the simulation core of the restaurant-management
// game. Given a player's establishment, a roster of AI rivals and a
// per-service plan, RunService resolves one service of operation —
// covers, customer reactions, financial outcome, staff and competitor
// dynamics, periodic inspections — and evolves the persistent state.
//
// The engine is single-threaded and deterministic: a RunService call from
// an identical (state, plan, seed, serviceIndex) produces an identical
// result. All randomness flows through a Stream seeded per tick. If a
// concurrent host is layered on top, each restaurant's state must be
// owned exclusively for the duration of one service tick.
package engine

import (
	"math/rand"
	"strconv"

	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"

	"github.com/stovetop-games/brigade/internal/catalog"
	"github.com/stovetop-games/brigade/internal/models"
)

// Engine binds the immutable reference catalogs and tuning constants.
// It carries no game state of its own; all state lives in the
// models.GameState passed to each call.
type Engine struct {
	catalog *catalog.Catalog
	tuning  models.Tuning
}

// New builds an engine over read-only reference data.
func New(cat *catalog.Catalog, tuning models.Tuning) *Engine {
	return &Engine{catalog: cat, tuning: tuning}
}

// Catalog exposes the reference tables for the presentation layer.
func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// Tuning exposes the balance constants.
func (e *Engine) Tuning() models.Tuning { return e.tuning }

// DefaultState returns an empty game tree for the given seed. No player
// restaurant or rivals exist until NewSeason and CreateRestaurant run.
func DefaultState(seed int64, cat *catalog.Catalog) *models.GameState {
	return &models.GameState{
		Version:      1,
		Seed:         seed,
		Season:       1,
		City:         cat.CityRotation[0],
		Day:          1,
		Service:      models.ServiceLunch,
		ServiceIndex: 1,
		Rivals:       []*models.Restaurant{},
		Log:          []*models.LogEntry{},
	}
}

// NewSeason advances to the next season in the given city (or the next
// rotation city when the name is unknown), clears the player slot and
// history, and generates a fresh rival field.
func (e *Engine) NewSeason(state *models.GameState, cityName string) *models.GameState {
	city := cityName
	if _, ok := e.catalog.Cities[city]; !ok {
		city = e.catalog.CityRotation[(state.Season-1)%len(e.catalog.CityRotation)]
		if _, ok := e.catalog.Cities[city]; !ok {
			city = e.catalog.CityRotation[0]
		}
	}
	state.Season++
	state.City = city
	state.Day = 1
	state.Service = models.ServiceLunch
	state.ServiceIndex = 1
	state.Log = []*models.LogEntry{}
	state.Player = nil
	state.Rivals = e.makeRivals(state)
	return state
}

// CreateConfig names the player's new restaurant.
type CreateConfig struct {
	Name            string
	DiningTypeID    string
	StyleID         string
	NeighbourhoodID string
}

// CreateRestaurant installs the player's restaurant into the state.
func (e *Engine) CreateRestaurant(state *models.GameState, cfg CreateConfig) *models.GameState {
	nh := e.catalog.NeighbourhoodByID(state.City, cfg.NeighbourhoodID)
	dt := e.catalog.DiningTypeByID(cfg.DiningTypeID)
	style := e.catalog.StyleByID(cfg.StyleID)

	segments := make(map[string]*models.SegmentStanding, len(e.catalog.SegmentOrder))
	for _, key := range e.catalog.SegmentOrder {
		p, ok := nh.Segments[key]
		if !ok {
			p = 10
		}
		segments[key] = &models.SegmentStanding{Base: p, Loyalty: 0.50, Satisfaction: 60}
	}

	roster := e.seedRoster(state.Seed, true)
	contracts := make([]models.Contract, 0, len(roster))
	for _, s := range roster {
		contracts = append(contracts, models.Contract{
			StaffID:   s.ID,
			LockUntil: state.ServiceIndex + e.tuning.ProtectedHireServices,
		})
	}

	name := cfg.Name
	if name == "" {
		name = "My Restaurant"
	}

	state.Player = &models.Restaurant{
		ID:              "player",
		Name:            name,
		DiningTypeID:    dt.ID,
		StyleID:         style.ID,
		NeighbourhoodID: nh.ID,

		Cash:        0.55 + dt.Base.Cash,
		Consistency: 0.50 + dt.Base.Consistency,
		Standards:   0.55 + dt.Base.Standards,
		Throughput:  0.50 + dt.Base.Throughput,
		Culture:     0.55 + dt.Base.Warmth,
		Brand:       0.50 + dt.Base.Brand,

		StandardsDebt:   0.10,
		MaintenanceDebt: 0.10,
		CultureDebt:     0.06,

		CashFloat: 1200,
		Debt:      500,

		Segments:  segments,
		Roster:    roster,
		Contracts: contracts,

		LibraryMenu:     []string{},
		SignatureDishes: []*models.SignatureDish{},
		RnDQueue:        []*models.SignatureDish{},

		ScoutingReports: make(map[string]*models.ScoutReport),
		PoachHistory:    make(map[string]models.PoachAttempt),
	}
	return state
}

// seedRoster builds a starting crew: lead, sous, FOH, dish, two line
// cooks, plus pastry at 55% and cold section at 25%. Hires get a 20%
// chance of a one-point skill bump. Display names come from a faker
// seeded alongside the roster stream, so they replay too.
func (e *Engine) seedRoster(seed int64, isPlayer bool) []*models.StaffMember {
	offset := int64(123)
	if isPlayer {
		offset = 999
	}
	r := NewStream(seed + offset)
	fake := faker.NewWithSeed(rand.NewSource(seed + offset))

	pick := func(id string) *models.StaffMember {
		base := e.catalog.ArchetypeByID(id)
		skill := base.Skill
		if r.Float64() < 0.2 {
			skill++
		}
		return &models.StaffMember{
			ID:          cuid.New(),
			ArchetypeID: base.ID,
			Name:        base.Name,
			DisplayName: fake.Person().Name(),
			Role:        base.Role,
			Skill:       skill,
			Stress:      base.Stress,
			Comm:        base.Comm,
			Wage:        base.Wage,
			Trait:       base.Trait,
			Fatigue:     0.10 + r.Float64()*0.10,
			Loyalty:     0.55 + r.Float64()*0.20,
		}
	}

	roster := []*models.StaffMember{
		pick("headchef"), pick("sous"), pick("foh"), pick("dish"), pick("grill"), pick("saute"),
	}
	if r.Float64() < 0.55 {
		roster = append(roster, pick("pastry"))
	}
	if r.Float64() < 0.25 {
		roster = append(roster, pick("cold"))
	}
	return roster
}

var (
	rivalNameFirst = []string{
		"Corner", "House", "Studio", "Market", "Salt", "Smoke", "Fern", "Lantern", "Nori",
		"Brick", "Harbour", "Noodle", "Cinder", "Field", "Supper", "Sake", "Pearl", "Lime",
	}
	rivalNameSecond = []string{
		"Kitchen", "Bar", "Table", "Club", "Room", "Canteen", "Bistro", "Atelier",
		"Izakaya", "Grill", "Deli", "Seafood", "Pasta", "Bakery",
	}
)

func randomName(r *Stream) string {
	return rivalNameFirst[r.Intn(len(rivalNameFirst))] + " " + rivalNameSecond[r.Intn(len(rivalNameSecond))]
}

func (e *Engine) makeRivals(state *models.GameState) []*models.Restaurant {
	city := e.catalog.CityByName(state.City)
	r := NewStream(state.Seed + int64(state.Season)*10007)
	rivals := make([]*models.Restaurant, 0, e.tuning.AIRivals)

	for i := 0; i < e.tuning.AIRivals; i++ {
		nh := city.Neighbourhoods[r.Intn(len(city.Neighbourhoods))]
		dt := e.catalog.DiningTypes[r.Intn(len(e.catalog.DiningTypes))]
		st := e.catalog.Styles[r.Intn(len(e.catalog.Styles))]
		roster := e.seedRoster(state.Seed+int64(i)*97, false)

		segments := make(map[string]*models.SegmentStanding, len(e.catalog.SegmentOrder))
		for _, key := range e.catalog.SegmentOrder {
			p, ok := nh.Segments[key]
			if !ok {
				p = 10
			}
			segments[key] = &models.SegmentStanding{
				Base:         p,
				Loyalty:      0.50 + r.Float64()*0.10,
				Satisfaction: 58 + r.Float64()*8,
			}
		}

		rivals = append(rivals, &models.Restaurant{
			ID:              "rival_" + strconv.Itoa(i),
			Name:            randomName(r),
			DiningTypeID:    dt.ID,
			StyleID:         st.ID,
			NeighbourhoodID: nh.ID,

			Cash:        clamp(0.50+dt.Base.Cash+r.Float64()*0.12, 0.1, 0.9),
			Consistency: clamp(0.48+dt.Base.Consistency+r.Float64()*0.12, 0.1, 0.9),
			Standards:   clamp(0.52+dt.Base.Standards+r.Float64()*0.12, 0.1, 0.9),
			Throughput:  clamp(0.50+dt.Base.Throughput+r.Float64()*0.12, 0.1, 0.9),
			Culture:     clamp(0.50+dt.Base.Warmth+r.Float64()*0.12, 0.1, 0.9),
			Brand:       clamp(0.45+dt.Base.Brand+r.Float64()*0.18, 0.1, 0.95),

			StandardsDebt:   0.10 + r.Float64()*0.18,
			MaintenanceDebt: 0.08 + r.Float64()*0.18,
			CultureDebt:     0.05 + r.Float64()*0.14,

			CashFloat: 900 + r.Float64()*900,
			Debt:      400 + r.Float64()*900,

			Segments: segments,
			Roster:   roster,
			KnownFor: []string{},
		})
	}
	return rivals
}

// AdvanceService moves Lunch→Dinner→next day's Lunch and bumps the
// service index.
func AdvanceService(state *models.GameState) *models.GameState {
	if state.Service == models.ServiceLunch {
		state.Service = models.ServiceDinner
	} else {
		state.Service = models.ServiceLunch
		state.Day++
	}
	state.ServiceIndex++
	return state
}

// PlanDefaults is the plan a service runs with when the player commits
// nothing.
func PlanDefaults() models.ServicePlan {
	return models.ServicePlan{
		Priority: models.PriorityQuality,
		Prep:     models.PrepBalanced,
		Manager:  models.MoveMaintenance,
		Call:     models.CallSimplifyPlating,
		MenuIDs:  []string{},
	}
}
