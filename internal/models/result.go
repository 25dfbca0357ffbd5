package models

// RubricCategory names one of the six customer-experience axes.
type RubricCategory string

const (
	RubricFlow     RubricCategory = "flow"
	RubricRecovery RubricCategory = "recovery"
	RubricWarmth   RubricCategory = "warmth"
	RubricTrust    RubricCategory = "trust"
	RubricValue    RubricCategory = "value"
	RubricIdentity RubricCategory = "identity"
)

// RubricCategories returns the axes in their canonical order.
func RubricCategories() []RubricCategory {
	return []RubricCategory{RubricFlow, RubricRecovery, RubricWarmth, RubricTrust, RubricValue, RubricIdentity}
}

// CustomerRubric scores one service 1..5 on each axis.
type CustomerRubric struct {
	Flow     int `json:"flow"`
	Recovery int `json:"recovery"`
	Warmth   int `json:"warmth"`
	Trust    int `json:"trust"`
	Value    int `json:"value"`
	Identity int `json:"identity"`
}

// Category returns the score for one axis. A zero (missing in persisted
// data) reads as the neutral 3.
func (c CustomerRubric) Category(cat RubricCategory) int {
	var v int
	switch cat {
	case RubricFlow:
		v = c.Flow
	case RubricRecovery:
		v = c.Recovery
	case RubricWarmth:
		v = c.Warmth
	case RubricTrust:
		v = c.Trust
	case RubricValue:
		v = c.Value
	case RubricIdentity:
		v = c.Identity
	}
	if v == 0 {
		return 3
	}
	return v
}

// Total sums the six axes (6..30).
func (c CustomerRubric) Total() int {
	total := 0
	for _, cat := range RubricCategories() {
		total += c.Category(cat)
	}
	return total
}

// SegmentOutcome is one segment's snapshot after a service.
type SegmentOutcome struct {
	Score        float64 `json:"score"`
	Satisfaction float64 `json:"satisfaction"`
	Loyalty      float64 `json:"loyalty"`
	Base         float64 `json:"base"`
	ReviewChance float64 `json:"review_chance"` // percent
	ChurnRisk    float64 `json:"churn_risk"`    // percent
}

// InspectionResult is the weekly quality assessment.
type InspectionResult struct {
	Score float64 `json:"score"`
	Stars int     `json:"stars"`
}

// ServiceResult is everything one resolved service produced.
type ServiceResult struct {
	Season         int                       `json:"season"`
	Day            int                       `json:"day"`
	Service        ServiceSlot               `json:"service"`
	ServiceIndex   int                       `json:"service_index"`
	Covers         int                       `json:"covers"`
	TicketTime     float64                   `json:"ticket_time"`
	SendBackPct    float64                   `json:"send_back_pct"`
	ColdPlatePct   float64                   `json:"cold_plate_pct"`
	FQI            float64                   `json:"fqi"`
	CustomerRubric CustomerRubric            `json:"customer_rubric"`
	CustomerTotal  int                       `json:"customer_total"`
	Segments       map[string]SegmentOutcome `json:"segments"`
	Profit         float64                   `json:"profit"`
	CashFloat      float64                   `json:"cash_float"`
	Problems       []string                  `json:"problems"`
	Inspection     *InspectionResult         `json:"inspection,omitempty"`
}

// LeaderboardEntry is one ranked restaurant.
type LeaderboardEntry struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Kind      string  `json:"kind"` // "You" or "Rival"
	Stars     int     `json:"stars"`
	BestScore float64 `json:"best_score"`
	BestRank  int     `json:"best_rank"`
}

// EventMessage is a serialized event ready for an output destination.
type EventMessage struct {
	Topic   string
	Message []byte
}
