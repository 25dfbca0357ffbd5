package engine

import (
	"testing"
)

func TestCreateSignatureDishStats(t *testing.T) {
	e := newTestEngine()
	picks := map[string]string{"protein": "Fish", "sauce": "Pan Jus", "veg": "Charred Greens", "texture": "Crumb"}

	dish := e.CreateSignatureDish("grilled_plate", picks, []string{"grill", "smoke"})

	base := e.Catalog().TemplateByID("grilled_plate").Base
	grill, _ := e.Catalog().TechniqueByID("grill")
	smoke, _ := e.Catalog().TechniqueByID("smoke")

	wantPrep := clampInt(base.Prep+grill.Mod.Prep+smoke.Mod.Prep, 1, 8)
	wantComplexity := clampInt(base.Complexity+grill.Mod.Complexity+smoke.Mod.Complexity, 1, 8)
	wantHold := clampInt(base.Hold+grill.Mod.Hold+smoke.Mod.Hold, 1, 5)
	wantIdentity := clampInt(base.Identity+grill.Mod.Identity+smoke.Mod.Identity, 1, 5)

	if dish.Stats.Prep != wantPrep || dish.Stats.Complexity != wantComplexity ||
		dish.Stats.Hold != wantHold || dish.Stats.Identity != wantIdentity {
		t.Fatalf("stats = %+v, want prep %d complexity %d hold %d identity %d",
			dish.Stats, wantPrep, wantComplexity, wantHold, wantIdentity)
	}
	if want := 4 + float64(wantIdentity-2)*0.2; dish.Stats.Margin != want {
		t.Fatalf("margin = %v, want %v", dish.Stats.Margin, want)
	}
	if dish.Locked {
		t.Fatal("new dish must start unlocked")
	}
	if dish.RnD.Required != rndRequiredSuccesses || dish.RnD.Successes != 0 {
		t.Fatalf("rnd progress = %+v", dish.RnD)
	}
}

func TestCreateSignatureDishLimitsTechniques(t *testing.T) {
	e := newTestEngine()

	dish := e.CreateSignatureDish("grilled_plate", map[string]string{"protein": "Lamb"},
		[]string{"grill", "sear", "braise", "fry"})

	if len(dish.Techniques) != 2 {
		t.Fatalf("kept %d techniques, want 2", len(dish.Techniques))
	}
	if dish.Techniques[0] != "grill" || dish.Techniques[1] != "sear" {
		t.Fatalf("techniques = %v, want the first two valid ids", dish.Techniques)
	}
}

func TestCreateSignatureDishIgnoresUnknownTechniques(t *testing.T) {
	e := newTestEngine()

	dish := e.CreateSignatureDish("pasta_bowl", map[string]string{"pasta": "Pappardelle"},
		[]string{"sous_vide", "pickle"})

	if len(dish.Techniques) != 1 || dish.Techniques[0] != "pickle" {
		t.Fatalf("techniques = %v, want just pickle", dish.Techniques)
	}
}

func TestCreateSignatureDishUnknownTemplateFallsBack(t *testing.T) {
	e := newTestEngine()

	dish := e.CreateSignatureDish("molecular", map[string]string{"protein": "Duck"}, nil)

	if dish.TemplateID != e.Catalog().Templates[0].ID {
		t.Fatalf("template = %s, want the first catalog template", dish.TemplateID)
	}
}

func TestBuildDishName(t *testing.T) {
	e := newTestEngine()
	tests := []struct {
		name       string
		template   string
		picks      map[string]string
		techniques []string
		want       string
	}{
		{
			name:       "protein and sauce",
			template:   "Grilled Protein + Sauce + Veg",
			picks:      map[string]string{"protein": "Fish", "sauce": "Pan Jus"},
			techniques: []string{"grill"},
			want:       "Fish + Pan Jus (Grilled)",
		},
		{
			name:       "smoked prefix",
			template:   "Grilled Protein + Sauce + Veg",
			picks:      map[string]string{"protein": "Brisket"},
			techniques: []string{"smoke"},
			want:       "Smoked Brisket (Grilled)",
		},
		{
			name:     "pasta hero with creamy sauce",
			template: "Pasta Bowl",
			picks:    map[string]string{"pasta": "Rigatoni", "creamy": "Pecorino Cream"},
			want:     "Rigatoni + Pecorino Cream (Pasta)",
		},
		{
			name:     "no picks at all",
			template: "Cold Starter (Acid+Crunch+Creamy)",
			picks:    map[string]string{},
			want:     "Dish (Cold)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.buildDishName(tt.template, tt.picks, tt.techniques); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}
