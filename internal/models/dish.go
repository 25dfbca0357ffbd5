package models

// DishStats are the derived numbers a signature dish plays with in service.
type DishStats struct {
	Prep       int     `json:"prep"`       // 1..8
	Complexity int     `json:"complexity"` // 1..8
	Hold       int     `json:"hold"`       // 1..5
	Identity   int     `json:"identity"`   // 1..5
	Margin     float64 `json:"margin"`
}

// RnDProgress tracks how close an unlocked dish is to stability.
type RnDProgress struct {
	Level     int `json:"level"`
	Successes int `json:"successes"`
	Required  int `json:"required"`
}

// SignatureDish is built once from a template and then earns mastery in
// service. Until it locks, every service it appears in carries a failure
// risk; once successes reach the requirement it locks permanently.
type SignatureDish struct {
	ID         string            `json:"id"`
	TemplateID string            `json:"template_id"`
	Name       string            `json:"name"`
	Picks      map[string]string `json:"picks"`
	Techniques []string          `json:"techniques"`
	Stats      DishStats         `json:"stats"`
	Mastery    int               `json:"mastery"` // 0..5
	RnD        RnDProgress       `json:"rnd"`
	Locked     bool              `json:"locked"`
}
