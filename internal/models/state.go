package models

// SegmentStanding is one customer segment's relationship with a restaurant.
type SegmentStanding struct {
	Base         float64 `json:"base"`         // 0..60 size points
	Loyalty      float64 `json:"loyalty"`      // 0.10..0.95
	Satisfaction float64 `json:"satisfaction"` // 0..100
}

// PoachAttempt records the last poach attempt on a (rival, staff) pair.
type PoachAttempt struct {
	LastAttemptServiceIndex int `json:"last_attempt_service_index"`
}

// ScoutReport is the paid intel a scout run reveals about a rival.
type ScoutReport struct {
	RivalID            string   `json:"rival_id"`
	Name               string   `json:"name"`
	Neighbourhood      string   `json:"neighbourhood"`
	StyleID            string   `json:"style_id"`
	DiningTypeID       string   `json:"dining_type_id"`
	Stars              int      `json:"stars"`
	Strengths          []string `json:"strengths"`
	Hint               string   `json:"hint"`
	SeenAtServiceIndex int      `json:"seen_at_service_index"`
}

// Restaurant is the full persistent state of one establishment, player or
// rival. Pressures live in [0.05, 0.95] and debts in [0, 1]; every mutation
// clamps at the site.
type Restaurant struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DiningTypeID    string `json:"dining_type_id"`
	StyleID         string `json:"style_id"`
	NeighbourhoodID string `json:"neighbourhood_id"`

	// pressures
	Cash        float64 `json:"cash"`
	Consistency float64 `json:"consistency"`
	Standards   float64 `json:"standards"`
	Throughput  float64 `json:"throughput"`
	Culture     float64 `json:"culture"`
	Brand       float64 `json:"brand"`

	// debts
	StandardsDebt   float64 `json:"standards_debt"`
	MaintenanceDebt float64 `json:"maintenance_debt"`
	CultureDebt     float64 `json:"culture_debt"`

	CashFloat float64 `json:"cash_float"`
	Debt      float64 `json:"debt"`

	Segments map[string]*SegmentStanding `json:"segments"`

	Roster    []*StaffMember `json:"roster"`
	Contracts []Contract     `json:"contracts"`

	LibraryMenu     []string         `json:"library_menu"`
	SignatureDishes []*SignatureDish `json:"signature_dishes"`
	RnDQueue        []*SignatureDish `json:"rnd_queue"`

	Stars    int      `json:"stars"`
	BestRank int      `json:"best_rank"` // 0 = unranked
	KnownFor []string `json:"known_for,omitempty"`

	ScoutingReports map[string]*ScoutReport `json:"scouting_reports,omitempty"`
	PoachHistory    map[string]PoachAttempt `json:"poach_history,omitempty"`
}

// LogEntry is one line of the bounded history log, either a resolved
// service or a system message.
type LogEntry struct {
	System bool           `json:"system,omitempty"`
	Msg    string         `json:"msg,omitempty"`
	Result *ServiceResult `json:"result,omitempty"`
}

// HistoryCap bounds the log length.
const HistoryCap = 60

// GameState is the whole serializable game tree.
type GameState struct {
	Version      int           `json:"version"`
	Seed         int64         `json:"seed"`
	Season       int           `json:"season"`
	City         string        `json:"city"`
	Day          int           `json:"day"`
	Service      ServiceSlot   `json:"service"`
	ServiceIndex int           `json:"service_index"`
	Player       *Restaurant   `json:"player,omitempty"`
	Rivals       []*Restaurant `json:"rivals"`
	Log          []*LogEntry   `json:"log"`
}

// PushLog prepends an entry and trims the log to HistoryCap.
func (g *GameState) PushLog(entry *LogEntry) {
	g.Log = append([]*LogEntry{entry}, g.Log...)
	if len(g.Log) > HistoryCap {
		g.Log = g.Log[:HistoryCap]
	}
}

// ApplyDefaults normalizes a state loaded from persisted data: nil maps
// and slices are allocated and range fields pulled back into bounds, so a
// missing optional field never propagates into a formula.
func (g *GameState) ApplyDefaults() {
	if g.Service == "" {
		g.Service = ServiceLunch
	}
	if g.ServiceIndex < 1 {
		g.ServiceIndex = 1
	}
	if g.Day < 1 {
		g.Day = 1
	}
	if g.Season < 1 {
		g.Season = 1
	}
	if g.Player != nil {
		g.Player.applyDefaults()
	}
	for _, rv := range g.Rivals {
		rv.applyDefaults()
	}
}

func (r *Restaurant) applyDefaults() {
	if r.Segments == nil {
		r.Segments = make(map[string]*SegmentStanding)
	}
	for _, seg := range r.Segments {
		seg.Base = clampRange(seg.Base, 0, 60)
		seg.Loyalty = clampRange(seg.Loyalty, 0.10, 0.95)
		seg.Satisfaction = clampRange(seg.Satisfaction, 0, 100)
	}
	if r.ScoutingReports == nil {
		r.ScoutingReports = make(map[string]*ScoutReport)
	}
	if r.PoachHistory == nil {
		r.PoachHistory = make(map[string]PoachAttempt)
	}
	r.Cash = clampRange(r.Cash, 0.05, 0.95)
	r.Consistency = clampRange(r.Consistency, 0.05, 0.95)
	r.Standards = clampRange(r.Standards, 0.05, 0.95)
	r.Throughput = clampRange(r.Throughput, 0.05, 0.95)
	r.Culture = clampRange(r.Culture, 0.05, 0.95)
	r.Brand = clampRange(r.Brand, 0.05, 0.95)
	r.StandardsDebt = clampRange(r.StandardsDebt, 0, 1)
	r.MaintenanceDebt = clampRange(r.MaintenanceDebt, 0, 1)
	r.CultureDebt = clampRange(r.CultureDebt, 0, 1)
	for _, s := range r.Roster {
		s.Fatigue = clampRange(s.Fatigue, 0, 1)
		s.Loyalty = clampRange(s.Loyalty, 0.10, 0.95)
	}
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
