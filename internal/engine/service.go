package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/stovetop-games/brigade/internal/catalog"
	"github.com/stovetop-games/brigade/internal/models"
)

// ErrNoRestaurant is a precondition fault: RunService was called before
// CreateRestaurant. Callers must not retry without fixing that.
var ErrNoRestaurant = errors.New("no player restaurant; create one first")

// ErrInvalidPlan marks a service plan naming a value outside the known
// enums. Zero-value fields fall back to PlanDefaults instead.
var ErrInvalidPlan = errors.New("invalid service plan")

func normalizePlan(plan models.ServicePlan) (models.ServicePlan, error) {
	def := PlanDefaults()
	if plan.Priority == "" {
		plan.Priority = def.Priority
	} else if !plan.Priority.Valid() {
		return plan, fmt.Errorf("%w: unknown priority %q", ErrInvalidPlan, plan.Priority)
	}
	if plan.Prep == "" {
		plan.Prep = def.Prep
	} else if !plan.Prep.Valid() {
		return plan, fmt.Errorf("%w: unknown prep level %q", ErrInvalidPlan, plan.Prep)
	}
	if plan.Manager == "" {
		plan.Manager = def.Manager
	} else if !plan.Manager.Valid() {
		return plan, fmt.Errorf("%w: unknown manager move %q", ErrInvalidPlan, plan.Manager)
	}
	if plan.Call == "" {
		plan.Call = def.Call
	} else if !plan.Call.Valid() {
		return plan, fmt.Errorf("%w: unknown call %q", ErrInvalidPlan, plan.Call)
	}
	return plan, nil
}

// serviceStreamStep spaces the per-tick stream seeds apart.
const serviceStreamStep = 777

// RunService resolves one service as an atomic transaction against the
// state. Steps run in a fixed order because later steps read pressures
// and debts mutated by earlier ones. The returned result is also pushed
// onto the bounded history log.
func (e *Engine) RunService(state *models.GameState, plan models.ServicePlan) (*models.ServiceResult, error) {
	if state.Player == nil {
		return nil, ErrNoRestaurant
	}
	plan, err := normalizePlan(plan)
	if err != nil {
		return nil, err
	}

	r := NewStream(state.Seed + int64(state.ServiceIndex)*serviceStreamStep)
	me := state.Player
	nh := e.catalog.NeighbourhoodByID(state.City, me.NeighbourhoodID)

	// rivals move first; they may poach from the player's roster
	e.simulateRivals(state, r)

	e.applyManagerMove(me, plan.Manager)

	// resolve the plan's menu against the library, plus the optional signature
	menu := make([]catalog.LibraryDish, 0, len(plan.MenuIDs))
	for i, id := range plan.MenuIDs {
		if i >= models.MaxMenuDishes {
			break
		}
		if d, ok := e.catalog.LibraryDishByID(id); ok {
			menu = append(menu, d)
		}
	}
	var signature *models.SignatureDish
	if plan.SignatureID != "" {
		signature = findDish(me.SignatureDishes, plan.SignatureID)
		if signature == nil {
			signature = findDish(me.RnDQueue, plan.SignatureID)
		}
	}

	menuIdentity := 0.0
	for _, d := range menu {
		menuIdentity += float64(d.Identity)
	}
	if signature != nil {
		menuIdentity += float64(signature.Stats.Identity)
	}

	// demand and capacity
	demandMod := nh.Demand * (0.85 + me.Brand*0.6)
	prepMod := 1.0
	switch plan.Prep {
	case models.PrepAggressive:
		prepMod = 1.10
	case models.PrepConservative:
		prepMod = 0.92
	case models.PrepBalanced:
		prepMod = 1.0
	}
	staffSkill := 0.0
	for _, s := range me.Roster {
		staffSkill += s.Skill
	}
	staffSkill /= math.Max(1, float64(len(me.Roster)))
	staffMod := 0.85 + (staffSkill/10)*0.4
	throughputMod := 0.85 + me.Throughput*0.5

	demand := e.tuning.BaseDemand * demandMod
	if plan.Priority == models.PriorityCost {
		demand *= 0.96
	}
	if plan.Priority == models.PriorityHygiene {
		demand *= 0.98
	}

	capacity := e.tuning.BaseCapacity * staffMod * throughputMod * prepMod
	if plan.Priority == models.PriorityQuality {
		capacity *= 0.95
	}
	if plan.Priority == models.PriorityHygiene {
		capacity *= 0.92
	}

	// menu complexity reduces capacity, raises mistakes and ticket time
	itemCount := len(menu)
	if signature != nil {
		itemCount++
	}
	complexitySum := 0.0
	for _, d := range menu {
		complexitySum += float64(d.Complexity)
	}
	if signature != nil {
		complexitySum += float64(signature.Stats.Complexity)
	}
	complexity := complexitySum / math.Max(1, float64(itemCount))
	capacity *= clamp(1.08-(complexity-3)*0.06, 0.75, 1.10)

	stress := clamp(0.15+me.StandardsDebt*0.35+me.MaintenanceDebt*0.25+me.CultureDebt*0.20, 0, 1)
	demand *= 1 + (me.Brand-0.5)*0.10
	capacity *= 1 - me.MaintenanceDebt*0.10

	problems := e.drawProblems(r, stress, me.StandardsDebt)

	var ticketPenalty, mistakePenalty, wastePenalty, demandDelta, capacityDelta float64
	for _, p := range problems {
		eff := p.Effects
		ticketPenalty += eff.Ticket
		mistakePenalty += eff.Mistakes - eff.Quality
		wastePenalty += eff.Waste
		demandDelta += eff.Demand
		capacityDelta += eff.Capacity
		me.StandardsDebt = clamp(me.StandardsDebt+eff.StandardsDebt, 0, 1)
		me.Brand = clamp(me.Brand+eff.Brand, 0.05, 0.95)
		me.Culture = clamp(me.Culture+eff.Culture, 0.05, 0.95)
	}
	demand *= 1 + demandDelta
	capacity *= 1 + capacityDelta

	e.applyCall(me, plan.Call)

	covers := int(math.Max(0, math.Floor(math.Min(demand, capacity))))

	ticketTime := (18 + complexity*2.5) * (1 + ticketPenalty)
	if plan.Priority == models.PrioritySpeed {
		ticketTime *= 0.88
	}
	if plan.Priority == models.PriorityQuality {
		ticketTime *= 1.06
	}
	if plan.Manager == models.MovePacing {
		ticketTime *= 0.92
	}
	ticketTime = roundTo(ticketTime, 1)

	mistakeRate := 0.04 + (complexity-3)*0.015 + me.StandardsDebt*0.06 + me.CultureDebt*0.03 + mistakePenalty
	if plan.Priority == models.PriorityQuality {
		mistakeRate *= 0.78
	}
	if plan.Priority == models.PrioritySpeed {
		mistakeRate *= 1.15
	}
	mistakeRate = clamp(mistakeRate, 0.01, 0.25)

	sendBackPct := roundTo(mistakeRate*100*0.55, 1)
	coldPlatePct := roundTo(clamp((ticketTime-20)*0.9, 0, 30), 1)

	// food quality index, with the R&D roll for an unlocked signature
	avgDish := 6.6 + (menuIdentity/math.Max(1, float64(itemCount)))*0.25
	if signature != nil {
		avgDish += float64(signature.Mastery) * 0.15
		if !signature.Locked {
			rndRisk := 0.6 - float64(signature.Mastery)*0.08
			if r.Float64() < rndRisk {
				avgDish -= 0.9
				me.Consistency = clamp(me.Consistency-0.02, 0.05, 0.95)
				me.CultureDebt = clamp(me.CultureDebt+0.04, 0, 1)
			} else {
				signature.RnD.Successes++
				signature.Mastery = clampInt(signature.Mastery+1, 0, 5)
				if signature.RnD.Successes >= signature.RnD.Required {
					signature.Locked = true
				}
			}
		}
	}
	fqi := roundTo(avgDish-0.5*sendBackPct-0.2*coldPlatePct, 2)

	rubric := deriveCustomerRubric(rubricInputs{
		TicketTime:  ticketTime,
		SendBackPct: sendBackPct,
		FQI:         fqi,
		Priority:    plan.Priority,
		Rent:        nh.Rent,
		Restaurant:  me,
	})
	customerTotal := rubric.Total()

	segOut := e.updateSegments(me, rubric)

	// financial settlement
	avgSpend := 32 + me.Brand*18 + (me.Cash-0.5)*10
	revenue := float64(covers) * avgSpend
	labour := 0.0
	for _, s := range me.Roster {
		labour += s.Wage * e.tuning.WageScale
	}
	rent := e.tuning.RentPerService * nh.Rent
	cogs := revenue * clamp(0.32-(me.Cash-0.5)*0.06+wastePenalty, 0.22, 0.45)
	comps := 0.0
	if plan.Call == models.CallCompTable {
		comps = revenue * 0.03
	}
	profit := revenue - (labour + rent + cogs + comps)
	me.CashFloat = roundTo(me.CashFloat+profit, 0)

	// pressure drift
	cashDrift := -0.02
	if profit > 0 {
		cashDrift = 0.01
	}
	if plan.Priority == models.PriorityCost {
		cashDrift += 0.01
	}
	me.Cash = clamp(me.Cash+cashDrift, 0.05, 0.95)

	if ticketTime < 22 {
		me.Throughput = clamp(me.Throughput+0.01, 0.05, 0.95)
	} else {
		me.Throughput = clamp(me.Throughput-0.01, 0.05, 0.95)
	}

	consistencyDrift := -0.02
	if sendBackPct < 4 {
		consistencyDrift = 0.01
	}
	if signature != nil && signature.Locked {
		consistencyDrift += 0.005
	}
	me.Consistency = clamp(me.Consistency+consistencyDrift, 0.05, 0.95)

	standardsDrift := -0.005
	if plan.Priority == models.PriorityHygiene {
		standardsDrift = 0.01
	}
	me.Standards = clamp(me.Standards+standardsDrift-me.StandardsDebt*0.004, 0.05, 0.95)

	cultureDrift := -0.004
	if plan.Priority == models.PriorityCulture {
		cultureDrift = 0.01
	}
	me.Culture = clamp(me.Culture+cultureDrift-me.CultureDebt*0.003, 0.05, 0.95)

	brandDrift := -0.01
	if customerTotal >= 22 {
		brandDrift = 0.01
	}
	if fqi > 6.8 {
		brandDrift += 0.008
	} else {
		brandDrift -= 0.004
	}
	me.Brand = clamp(me.Brand+brandDrift, 0.05, 0.95)

	// debt drift
	maintenanceRelief := 0.0
	if plan.Manager == models.MoveMaintenance {
		maintenanceRelief = 0.06
	}
	me.MaintenanceDebt = clamp(me.MaintenanceDebt+0.01-maintenanceRelief, 0, 1)

	standardsLoad := 0.0
	if plan.Prep == models.PrepAggressive {
		standardsLoad += 0.02
	}
	if plan.Manager == models.MoveDeepClean {
		standardsLoad -= 0.10
	}
	if plan.Priority == models.PriorityHygiene {
		standardsLoad -= 0.02
	}
	me.StandardsDebt = clamp(me.StandardsDebt+standardsLoad, 0, 1)

	cultureLoad := 0.008
	if plan.Priority == models.PriorityCulture {
		cultureLoad -= 0.02
	}
	if plan.Call == models.CallCompTable {
		cultureLoad -= 0.01
	}
	me.CultureDebt = clamp(me.CultureDebt+cultureLoad, 0, 1)

	// staff fatigue and loyalty
	for _, s := range me.Roster {
		fatigueDrift := stress * 0.03
		if plan.Priority == models.PrioritySpeed {
			fatigueDrift += 0.02
		}
		if plan.Priority == models.PriorityCulture {
			fatigueDrift -= 0.01
		}
		s.Fatigue = clamp(s.Fatigue+fatigueDrift, 0, 1)
		s.Loyalty = clamp(s.Loyalty+(me.Culture-0.5)*0.01-(s.Fatigue-0.5)*0.01, 0.10, 0.95)
	}

	var inspection *models.InspectionResult
	if state.Service == models.ServiceDinner && state.Day%e.tuning.InspectionEveryDays == 0 {
		inspection = e.RunInspection(me, nh)
	}

	titles := make([]string, 0, len(problems))
	for _, p := range problems {
		titles = append(titles, p.Title)
	}

	result := &models.ServiceResult{
		Season:         state.Season,
		Day:            state.Day,
		Service:        state.Service,
		ServiceIndex:   state.ServiceIndex,
		Covers:         covers,
		TicketTime:     ticketTime,
		SendBackPct:    sendBackPct,
		ColdPlatePct:   coldPlatePct,
		FQI:            fqi,
		CustomerRubric: rubric,
		CustomerTotal:  customerTotal,
		Segments:       segOut,
		Profit:         roundTo(profit, 0),
		CashFloat:      me.CashFloat,
		Problems:       titles,
		Inspection:     inspection,
	}
	state.PushLog(&models.LogEntry{Result: result})
	return result, nil
}

func findDish(dishes []*models.SignatureDish, id string) *models.SignatureDish {
	for _, d := range dishes {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// drawProblems pulls 0–2 catalog problems. The draw chance rises with
// stress and standards debt; a drawn service splits 50/50 between one and
// two problems.
func (e *Engine) drawProblems(r *Stream, stress, standardsDebt float64) []catalog.Problem {
	count := 0
	if r.Float64() < 0.35+stress*0.55+standardsDebt*0.35 {
		if r.Float64() < 0.5 {
			count = 2
		} else {
			count = 1
		}
	}
	out := make([]catalog.Problem, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, e.catalog.Problems[r.Intn(len(e.catalog.Problems))])
	}
	return out
}

func (e *Engine) applyManagerMove(me *models.Restaurant, move models.ManagerMove) {
	switch move {
	case models.MoveMaintenance:
		me.MaintenanceDebt = clamp(me.MaintenanceDebt-0.06, 0, 1)
		me.CashFloat -= 30
	case models.MoveTraining:
		// skill bump for the weakest hand
		var lowest *models.StaffMember
		for _, s := range me.Roster {
			if lowest == nil || s.Skill < lowest.Skill {
				lowest = s
			}
		}
		if lowest != nil {
			lowest.Skill = clamp(lowest.Skill+0.2, 1, 8)
		}
		me.CashFloat -= 45
		me.CultureDebt = clamp(me.CultureDebt-0.01, 0, 1)
	case models.MoveDeepClean:
		me.StandardsDebt = clamp(me.StandardsDebt-0.10, 0, 1)
		me.CashFloat -= 20
	case models.MoveSupplierCall:
		me.CashFloat -= 40
		me.StandardsDebt = clamp(me.StandardsDebt-0.02, 0, 1)
	case models.MovePacing:
		me.CashFloat -= 10
	}
}

func (e *Engine) applyCall(me *models.Restaurant, call models.CallAction) {
	switch call {
	case models.CallSimplifyPlating:
		me.StandardsDebt = clamp(me.StandardsDebt+0.03, 0, 1)
		me.Brand = clamp(me.Brand-0.004, 0.05, 0.95)
	case models.CallEightySix:
		me.Brand = clamp(me.Brand-0.006, 0.05, 0.95)
		me.Consistency = clamp(me.Consistency+0.004, 0.05, 0.95)
	case models.CallCompTable:
		me.Culture = clamp(me.Culture+0.006, 0.05, 0.95)
	case models.CallPauseWalkins:
		me.Brand = clamp(me.Brand-0.003, 0.05, 0.95)
		me.Throughput = clamp(me.Throughput+0.003, 0.05, 0.95)
	case models.CallCasual:
		me.CashFloat -= 60
		me.Consistency = clamp(me.Consistency-0.01, 0.05, 0.95)
	}
}
