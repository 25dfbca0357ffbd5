// Package catalog holds the immutable reference tables the simulation core
// reads: cities and neighbourhoods, customer segments, dining types, staff
// archetypes, the dish library and the problem catalog. The tables are
// built once at process start and passed by read-only pointer; nothing in
// the core mutates them.
package catalog

import "github.com/stovetop-games/brigade/internal/models"

// Neighbourhood multiplies a restaurant's economics and carries the local
// segment mix (base size points per segment).
type Neighbourhood struct {
	ID       string
	Name     string
	Rent     float64
	Demand   float64
	Critic   float64
	Segments map[string]float64
}

// City is a named set of neighbourhoods.
type City struct {
	Name           string
	Neighbourhoods []Neighbourhood
}

// SegmentProfile is one customer archetype: how it weighs the customer
// rubric and how likely it is to review.
type SegmentProfile struct {
	ID             string
	Name           string
	ReviewTendency float64
	Influence      float64
	Weights        map[models.RubricCategory]float64
}

// PressureBase shifts a new restaurant's starting pressures by dining type.
type PressureBase struct {
	Cash        float64
	Consistency float64
	Standards   float64
	Throughput  float64
	Warmth      float64
	Brand       float64
	Value       float64
	Identity    float64
}

// DiningType is a service format (bistro, fine dining, ...).
type DiningType struct {
	ID   string
	Name string
	Base PressureBase
}

// Style is a cuisine direction; cosmetic to the core but persisted.
type Style struct {
	ID   string
	Name string
}

// StaffArchetype is a hireable role template.
type StaffArchetype struct {
	ID     string
	Name   string
	Role   models.StaffRole
	Skill  float64
	Stress float64
	Comm   float64
	Wage   float64
	Trait  string
}

// LibraryDish is a ready-made menu dish.
type LibraryDish struct {
	ID         string
	Name       string
	Station    string
	Margin     int
	Complexity int
	Prep       int
	Hold       int
	Identity   int
}

// DishTemplate is the skeleton a signature dish is built from.
type DishTemplate struct {
	ID    string
	Name  string
	Slots []string
	Base  models.DishStats
}

// TechniqueMod shifts a template's base stats.
type TechniqueMod struct {
	Prep       int
	Complexity int
	Hold       int
	Identity   int
	Value      int
}

// Technique is a named cooking technique applied while building a dish.
type Technique struct {
	ID   string
	Name string
	Mod  TechniqueMod
}

// ProblemEffects are the partial deltas a drawn problem applies. Rate
// fields are fractions; debt/pressure fields are direct deltas.
type ProblemEffects struct {
	Ticket        float64
	Mistakes      float64
	Waste         float64
	Quality       float64
	Demand        float64
	Capacity      float64
	Stress        float64
	StandardsDebt float64
	Brand         float64
	Culture       float64
}

// Problem is a catalog entry; drawn, never mutated.
type Problem struct {
	ID       string
	Title    string
	Severity int
	Effects  ProblemEffects
}

// Catalog bundles every reference table.
type Catalog struct {
	CityRotation []string
	Cities       map[string]City

	// SegmentOrder fixes iteration order over Segments so every walk of
	// the segment table is deterministic.
	SegmentOrder []string
	Segments     map[string]SegmentProfile

	DiningTypes []DiningType
	Styles      []Style
	StaffPool   []StaffArchetype

	Library    []LibraryDish
	Templates  []DishTemplate
	Components map[string][]string
	Techniques []Technique

	Problems []Problem
}

// CityByName returns the named city, falling back to the rotation head.
func (c *Catalog) CityByName(name string) City {
	if city, ok := c.Cities[name]; ok {
		return city
	}
	return c.Cities[c.CityRotation[0]]
}

// NeighbourhoodByID resolves a neighbourhood within a city, falling back
// to the city's first neighbourhood.
func (c *Catalog) NeighbourhoodByID(cityName, id string) Neighbourhood {
	city := c.CityByName(cityName)
	for _, nh := range city.Neighbourhoods {
		if nh.ID == id {
			return nh
		}
	}
	return city.Neighbourhoods[0]
}

// DiningTypeByID resolves a dining type, falling back to the bistro slot.
func (c *Catalog) DiningTypeByID(id string) DiningType {
	for _, dt := range c.DiningTypes {
		if dt.ID == id {
			return dt
		}
	}
	return c.DiningTypes[1]
}

// StyleByID resolves a style, falling back to the first.
func (c *Catalog) StyleByID(id string) Style {
	for _, st := range c.Styles {
		if st.ID == id {
			return st
		}
	}
	return c.Styles[0]
}

// ArchetypeByID resolves a staff archetype, falling back to the first.
func (c *Catalog) ArchetypeByID(id string) StaffArchetype {
	for _, a := range c.StaffPool {
		if a.ID == id {
			return a
		}
	}
	return c.StaffPool[0]
}

// LibraryDishByID resolves a library dish; ok is false when unknown.
func (c *Catalog) LibraryDishByID(id string) (LibraryDish, bool) {
	for _, d := range c.Library {
		if d.ID == id {
			return d, true
		}
	}
	return LibraryDish{}, false
}

// TemplateByID resolves a dish template, falling back to the first.
func (c *Catalog) TemplateByID(id string) DishTemplate {
	for _, t := range c.Templates {
		if t.ID == id {
			return t
		}
	}
	return c.Templates[0]
}

// TechniqueByID resolves a technique; ok is false when unknown.
func (c *Catalog) TechniqueByID(id string) (Technique, bool) {
	for _, t := range c.Techniques {
		if t.ID == id {
			return t, true
		}
	}
	return Technique{}, false
}

// SegmentByID resolves a segment profile; ok is false when unknown.
func (c *Catalog) SegmentByID(id string) (SegmentProfile, bool) {
	seg, ok := c.Segments[id]
	return seg, ok
}
