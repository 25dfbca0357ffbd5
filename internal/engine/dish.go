package engine

import (
	"strings"

	"github.com/lucsky/cuid"

	"github.com/stovetop-games/brigade/internal/models"
)

// rndRequiredSuccesses is how many successful services lock a signature
// dish.
const rndRequiredSuccesses = 4

// CreateSignatureDish builds a dish from a template, component picks and
// up to two techniques. Pure: the same inputs always produce the same
// stats (the instance id is the only fresh value).
func (e *Engine) CreateSignatureDish(templateID string, picks map[string]string, techniqueIDs []string) *models.SignatureDish {
	t := e.catalog.TemplateByID(templateID)

	ids := make([]string, 0, 2)
	for _, id := range techniqueIDs {
		if len(ids) == 2 {
			break
		}
		if tc, ok := e.catalog.TechniqueByID(id); ok {
			ids = append(ids, tc.ID)
		}
	}

	prep := t.Base.Prep
	complexity := t.Base.Complexity
	hold := t.Base.Hold
	identity := t.Base.Identity
	for _, id := range ids {
		tc, _ := e.catalog.TechniqueByID(id)
		prep += tc.Mod.Prep
		complexity += tc.Mod.Complexity
		hold += tc.Mod.Hold
		identity += tc.Mod.Identity
	}
	prep = clampInt(prep, 1, 8)
	complexity = clampInt(complexity, 1, 8)
	hold = clampInt(hold, 1, 5)
	identity = clampInt(identity, 1, 5)

	return &models.SignatureDish{
		ID:         cuid.New(),
		TemplateID: t.ID,
		Name:       e.buildDishName(t.Name, picks, ids),
		Picks:      picks,
		Techniques: ids,
		Stats: models.DishStats{
			Prep:       prep,
			Complexity: complexity,
			Hold:       hold,
			Identity:   identity,
			Margin:     4 + float64(identity-2)*0.2,
		},
		Mastery: 0,
		RnD:     models.RnDProgress{Level: 1, Successes: 0, Required: rndRequiredSuccesses},
		Locked:  false,
	}
}

// buildDishName assembles a display name from the hero pick, the sauce
// pick and the template's leading word; smoked dishes get the prefix.
func (e *Engine) buildDishName(templateName string, picks map[string]string, techniqueIDs []string) string {
	main := picks["protein"]
	if main == "" {
		main = picks["hero"]
	}
	if main == "" {
		main = picks["pasta"]
	}
	if main == "" {
		main = "Dish"
	}
	sauce := picks["sauce"]
	if sauce == "" {
		sauce = picks["creamy"]
	}

	tag := ""
	for _, id := range techniqueIDs {
		if id == "smoke" {
			tag = "Smoked "
			break
		}
	}

	name := tag + main
	if sauce != "" {
		name += " + " + sauce
	}
	return name + " (" + strings.SplitN(templateName, " ", 2)[0] + ")"
}
