package models

// ServiceSlot is the half-day a service runs in.
type ServiceSlot string

const (
	ServiceLunch  ServiceSlot = "Lunch"
	ServiceDinner ServiceSlot = "Dinner"
)

// Priority is the single focus the kitchen commits to for one service.
type Priority string

const (
	PrioritySpeed   Priority = "speed"
	PriorityQuality Priority = "quality"
	PriorityCost    Priority = "cost"
	PriorityCulture Priority = "culture"
	PriorityHygiene Priority = "hygiene"
)

// PrepLevel is how hard the mise en place is pushed before doors open.
type PrepLevel string

const (
	PrepConservative PrepLevel = "conservative"
	PrepBalanced     PrepLevel = "balanced"
	PrepAggressive   PrepLevel = "aggressive"
)

// ManagerMove is the one back-office action taken per service.
type ManagerMove string

const (
	MoveMaintenance  ManagerMove = "maintenance"
	MoveTraining     ManagerMove = "training"
	MoveDeepClean    ManagerMove = "deep_clean"
	MoveSupplierCall ManagerMove = "supplier_call"
	MovePacing       ManagerMove = "pacing"
)

// CallAction is the one mid-service call the pass makes.
type CallAction string

const (
	CallSimplifyPlating CallAction = "simplify_plating"
	CallEightySix       CallAction = "eighty_six"
	CallCompTable       CallAction = "comp_table"
	CallPauseWalkins    CallAction = "pause_walkins"
	CallCasual          CallAction = "call_casual"
)

// Perk sweetens a poach offer.
type Perk string

const (
	PerkTraining        Perk = "training"
	PerkDaysOff         Perk = "days_off"
	PerkCreativeControl Perk = "creative_control"
)

// MaxMenuDishes caps how many catalog dishes a single service plan may carry.
const MaxMenuDishes = 6

// ServicePlan is the player's commitment for one service.
type ServicePlan struct {
	Priority    Priority    `json:"priority" mapstructure:"priority"`
	Prep        PrepLevel   `json:"prep" mapstructure:"prep"`
	Manager     ManagerMove `json:"manager" mapstructure:"manager"`
	Call        CallAction  `json:"call" mapstructure:"call"`
	MenuIDs     []string    `json:"menu_ids" mapstructure:"menu_ids"`
	SignatureID string      `json:"signature_id,omitempty" mapstructure:"signature_id"`
}

func Priorities() []Priority {
	return []Priority{PrioritySpeed, PriorityQuality, PriorityCost, PriorityCulture, PriorityHygiene}
}

func (p Priority) Valid() bool {
	switch p {
	case PrioritySpeed, PriorityQuality, PriorityCost, PriorityCulture, PriorityHygiene:
		return true
	}
	return false
}

func (p PrepLevel) Valid() bool {
	switch p {
	case PrepConservative, PrepBalanced, PrepAggressive:
		return true
	}
	return false
}

func (m ManagerMove) Valid() bool {
	switch m {
	case MoveMaintenance, MoveTraining, MoveDeepClean, MoveSupplierCall, MovePacing:
		return true
	}
	return false
}

func (c CallAction) Valid() bool {
	switch c {
	case CallSimplifyPlating, CallEightySix, CallCompTable, CallPauseWalkins, CallCasual:
		return true
	}
	return false
}

func PrepLevels() []PrepLevel {
	return []PrepLevel{PrepConservative, PrepBalanced, PrepAggressive}
}

func ManagerMoves() []ManagerMove {
	return []ManagerMove{MoveMaintenance, MoveTraining, MoveDeepClean, MoveSupplierCall, MovePacing}
}

func CallActions() []CallAction {
	return []CallAction{CallSimplifyPlating, CallEightySix, CallCompTable, CallPauseWalkins, CallCasual}
}
