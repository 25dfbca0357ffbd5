package models

// StaffRole is the station a staff member covers.
type StaffRole string

const (
	RoleLead    StaffRole = "lead"
	RoleSous    StaffRole = "sous"
	RoleLine    StaffRole = "line"
	RolePastry  StaffRole = "pastry"
	RoleFOH     StaffRole = "foh"
	RoleSupport StaffRole = "support"
)

// StaffMember belongs to exactly one roster at a time. A successful poach
// removes it from the source roster and inserts a mutated copy into the
// destination roster under a fresh protection window.
type StaffMember struct {
	ID          string    `json:"id"`
	ArchetypeID string    `json:"archetype_id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name,omitempty"`
	Role        StaffRole `json:"role"`
	Skill       float64   `json:"skill"`
	Stress      float64   `json:"stress"`
	Comm        float64   `json:"comm"`
	Wage        float64   `json:"wage"`
	Trait       string    `json:"trait,omitempty"`
	Fatigue     float64   `json:"fatigue"` // 0..1
	Loyalty     float64   `json:"loyalty"` // 0.10..0.95
}

// Contract marks a hire as protected from poaching until LockUntil
// (a service index, exclusive).
type Contract struct {
	StaffID   string `json:"staff_id"`
	LockUntil int    `json:"lock_until"`
}
