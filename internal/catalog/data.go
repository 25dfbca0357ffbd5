package catalog

import "github.com/stovetop-games/brigade/internal/models"

// Default builds the shipped reference tables. Callers share one instance;
// the tables are never written after construction.
func Default() *Catalog {
	return &Catalog{
		CityRotation: []string{"Sydney", "Melbourne", "Seoul", "Tokyo", "Singapore", "Paris"},
		Cities: map[string]City{
			"Sydney": {
				Name: "Sydney",
				Neighbourhoods: []Neighbourhood{
					{ID: "syd_cbd", Name: "CBD", Rent: 1.25, Demand: 1.15, Critic: 1.2,
						Segments: map[string]float64{"locals": 18, "families": 10, "foodies": 25, "highend": 22, "corporate": 18, "tourists": 7}},
					{ID: "syd_surry", Name: "Surry Hills", Rent: 1.15, Demand: 1.10, Critic: 1.15,
						Segments: map[string]float64{"locals": 22, "families": 8, "foodies": 28, "highend": 18, "corporate": 10, "tourists": 14}},
					{ID: "syd_newtown", Name: "Newtown", Rent: 1.00, Demand: 1.05, Critic: 1.00,
						Segments: map[string]float64{"locals": 30, "families": 12, "foodies": 24, "highend": 8, "corporate": 8, "tourists": 18}},
					{ID: "syd_suburbs", Name: "North Shore Suburbs", Rent: 1.10, Demand: 1.05, Critic: 0.95,
						Segments: map[string]float64{"locals": 28, "families": 22, "foodies": 16, "highend": 10, "corporate": 14, "tourists": 10}},
				},
			},
			"Melbourne": {
				Name: "Melbourne",
				Neighbourhoods: []Neighbourhood{
					{ID: "mel_cbd", Name: "CBD", Rent: 1.20, Demand: 1.12, Critic: 1.20,
						Segments: map[string]float64{"locals": 18, "families": 10, "foodies": 28, "highend": 20, "corporate": 18, "tourists": 6}},
					{ID: "mel_fitzroy", Name: "Fitzroy", Rent: 1.05, Demand: 1.08, Critic: 1.10,
						Segments: map[string]float64{"locals": 24, "families": 8, "foodies": 30, "highend": 14, "corporate": 10, "tourists": 14}},
					{ID: "mel_stkilda", Name: "St Kilda", Rent: 1.00, Demand: 1.06, Critic: 0.95,
						Segments: map[string]float64{"locals": 24, "families": 14, "foodies": 18, "highend": 10, "corporate": 10, "tourists": 24}},
					{ID: "mel_suburbs", Name: "Inner Suburbs", Rent: 1.02, Demand: 1.03, Critic: 0.90,
						Segments: map[string]float64{"locals": 32, "families": 20, "foodies": 16, "highend": 8, "corporate": 14, "tourists": 10}},
				},
			},
			"Seoul": {
				Name: "Seoul",
				Neighbourhoods: []Neighbourhood{
					{ID: "seo_gangnam", Name: "Gangnam", Rent: 1.25, Demand: 1.12, Critic: 1.20,
						Segments: map[string]float64{"locals": 16, "families": 10, "foodies": 22, "highend": 26, "corporate": 18, "tourists": 8}},
					{ID: "seo_hongdae", Name: "Hongdae", Rent: 1.00, Demand: 1.10, Critic: 1.00,
						Segments: map[string]float64{"locals": 22, "families": 8, "foodies": 30, "highend": 10, "corporate": 10, "tourists": 20}},
					{ID: "seo_jongno", Name: "Jongno", Rent: 1.05, Demand: 1.08, Critic: 1.05,
						Segments: map[string]float64{"locals": 26, "families": 14, "foodies": 20, "highend": 12, "corporate": 10, "tourists": 18}},
					{ID: "seo_suburbs", Name: "Suburbs", Rent: 0.95, Demand: 1.02, Critic: 0.85,
						Segments: map[string]float64{"locals": 34, "families": 22, "foodies": 14, "highend": 6, "corporate": 14, "tourists": 10}},
				},
			},
		},

		SegmentOrder: []string{"locals", "families", "foodies", "highend", "corporate", "tourists"},
		Segments: map[string]SegmentProfile{
			"locals": {ID: "locals", Name: "Locals", ReviewTendency: 0.06, Influence: 0.7,
				Weights: map[models.RubricCategory]float64{models.RubricFlow: 15, models.RubricRecovery: 15, models.RubricWarmth: 20, models.RubricTrust: 15, models.RubricValue: 25, models.RubricIdentity: 10}},
			"families": {ID: "families", Name: "Families", ReviewTendency: 0.05, Influence: 0.6,
				Weights: map[models.RubricCategory]float64{models.RubricFlow: 30, models.RubricRecovery: 15, models.RubricWarmth: 15, models.RubricTrust: 15, models.RubricValue: 20, models.RubricIdentity: 5}},
			"foodies": {ID: "foodies", Name: "Foodies", ReviewTendency: 0.14, Influence: 1.2,
				Weights: map[models.RubricCategory]float64{models.RubricFlow: 15, models.RubricRecovery: 15, models.RubricWarmth: 10, models.RubricTrust: 15, models.RubricValue: 5, models.RubricIdentity: 40}},
			"highend": {ID: "highend", Name: "High-end / Star Chasers", ReviewTendency: 0.10, Influence: 1.0,
				Weights: map[models.RubricCategory]float64{models.RubricFlow: 15, models.RubricRecovery: 20, models.RubricWarmth: 10, models.RubricTrust: 30, models.RubricValue: 5, models.RubricIdentity: 20}},
			"corporate": {ID: "corporate", Name: "Corporate", ReviewTendency: 0.04, Influence: 0.5,
				Weights: map[models.RubricCategory]float64{models.RubricFlow: 30, models.RubricRecovery: 20, models.RubricWarmth: 10, models.RubricTrust: 15, models.RubricValue: 15, models.RubricIdentity: 10}},
			"tourists": {ID: "tourists", Name: "Tourists", ReviewTendency: 0.12, Influence: 1.0,
				Weights: map[models.RubricCategory]float64{models.RubricFlow: 20, models.RubricRecovery: 15, models.RubricWarmth: 10, models.RubricTrust: 10, models.RubricValue: 10, models.RubricIdentity: 35}},
		},

		DiningTypes: []DiningType{
			{ID: "fast_casual", Name: "Fast Casual", Base: PressureBase{Value: 0.10, Throughput: 0.10, Brand: -0.03, Standards: -0.03}},
			{ID: "bistro", Name: "Bistro", Base: PressureBase{Warmth: 0.06, Consistency: 0.05, Brand: 0.02}},
			{ID: "fine_dining", Name: "Fine Dining", Base: PressureBase{Brand: 0.08, Standards: 0.10, Throughput: -0.08, Cash: -0.04}},
			{ID: "wine_bar", Name: "Wine Bar", Base: PressureBase{Identity: 0.07, Warmth: 0.04, Cash: 0.02}},
			{ID: "izakaya", Name: "Izakaya", Base: PressureBase{Throughput: 0.05, Identity: 0.05, Standards: -0.02}},
		},

		Styles: []Style{
			{ID: "modern_aus", Name: "Modern Australian"},
			{ID: "italian", Name: "Italian"},
			{ID: "korean", Name: "Korean"},
			{ID: "japanese", Name: "Japanese"},
			{ID: "seafood", Name: "Seafood Focus"},
			{ID: "bbq", Name: "Woodfire / Grill"},
		},

		StaffPool: []StaffArchetype{
			{ID: "headchef", Name: "Head Chef", Role: models.RoleLead, Skill: 7, Stress: 6, Comm: 6, Wage: 220, Trait: "Standards-first"},
			{ID: "sous", Name: "Sous Chef", Role: models.RoleSous, Skill: 6, Stress: 6, Comm: 7, Wage: 180, Trait: "Systems builder"},
			{ID: "grill", Name: "Grill Cook", Role: models.RoleLine, Skill: 5, Stress: 5, Comm: 5, Wage: 150, Trait: "Heat calm"},
			{ID: "saute", Name: "Sauté Cook", Role: models.RoleLine, Skill: 5, Stress: 5, Comm: 5, Wage: 150, Trait: "Pickup speed"},
			{ID: "cold", Name: "Cold Section", Role: models.RoleLine, Skill: 4, Stress: 5, Comm: 5, Wage: 140, Trait: "Precision prep"},
			{ID: "pastry", Name: "Pastry", Role: models.RolePastry, Skill: 6, Stress: 4, Comm: 5, Wage: 160, Trait: "Brand lift"},
			{ID: "foh", Name: "FOH Captain", Role: models.RoleFOH, Skill: 4, Stress: 5, Comm: 7, Wage: 150, Trait: "Pacing control"},
			{ID: "dish", Name: "Dish/Prep", Role: models.RoleSupport, Skill: 3, Stress: 6, Comm: 5, Wage: 120, Trait: "Standards guard"},
		},

		Library: []LibraryDish{
			{ID: "beef_sandwich", Name: "Beef Sandwich", Station: "cold", Margin: 3, Complexity: 2, Prep: 2, Hold: 3, Identity: 1},
			{ID: "pasta_ragu", Name: "Pasta Ragù", Station: "saute", Margin: 4, Complexity: 4, Prep: 4, Hold: 2, Identity: 2},
			{ID: "seasonal_fish", Name: "Seasonal Fish", Station: "grill", Margin: 4, Complexity: 5, Prep: 3, Hold: 1, Identity: 3},
			{ID: "roast_chicken", Name: "Roast Chicken", Station: "grill", Margin: 4, Complexity: 3, Prep: 3, Hold: 2, Identity: 1},
			{ID: "house_salad", Name: "House Salad", Station: "cold", Margin: 3, Complexity: 2, Prep: 2, Hold: 3, Identity: 1},
			{ID: "steak_frites", Name: "Steak Frites", Station: "grill", Margin: 5, Complexity: 5, Prep: 4, Hold: 1, Identity: 2},
			{ID: "soup_day", Name: "Soup of the Day", Station: "prep", Margin: 3, Complexity: 2, Prep: 3, Hold: 4, Identity: 1},
			{ID: "choc_cake", Name: "Chocolate Cake", Station: "pastry", Margin: 4, Complexity: 3, Prep: 4, Hold: 4, Identity: 2},
		},

		Templates: []DishTemplate{
			{ID: "grilled_plate", Name: "Grilled Protein + Sauce + Veg", Slots: []string{"protein", "sauce", "veg", "texture"},
				Base: models.DishStats{Prep: 3, Complexity: 4, Hold: 2, Identity: 2}},
			{ID: "saute_plate", Name: "Sauté Plate (Pan Roast)", Slots: []string{"protein", "sauce", "veg", "texture"},
				Base: models.DishStats{Prep: 3, Complexity: 5, Hold: 2, Identity: 2}},
			{ID: "braise_bowl", Name: "Braise + Purée + Pickle", Slots: []string{"protein", "puree", "pickle", "texture"},
				Base: models.DishStats{Prep: 5, Complexity: 3, Hold: 3, Identity: 2}},
			{ID: "pasta_bowl", Name: "Pasta Bowl", Slots: []string{"pasta", "sauce", "garnish", "texture"},
				Base: models.DishStats{Prep: 4, Complexity: 5, Hold: 1, Identity: 2}},
			{ID: "cold_starter", Name: "Cold Starter (Acid+Crunch+Creamy)", Slots: []string{"hero", "acid", "creamy", "crunch"},
				Base: models.DishStats{Prep: 3, Complexity: 3, Hold: 3, Identity: 2}},
		},

		Components: map[string][]string{
			"protein": {"Fish", "Chicken", "Lamb", "Beef", "Mushroom"},
			"sauce":   {"Pan Jus", "Emulsion", "Brown Butter", "Broth", "Purée Sauce"},
			"veg":     {"Charred Greens", "Roast Root Veg", "Pickled Veg", "Salad Garnish"},
			"texture": {"Crumb", "Crisp", "Seed", "Chip"},
			"puree":   {"Potato Purée", "Cauliflower Purée", "Carrot Purée"},
			"pickle":  {"Quick Pickle", "Fermented Pickle", "Citrus Relish"},
			"pasta":   {"Rigatoni", "Spaghetti", "Gnocchi"},
			"garnish": {"Herbs", "Citrus Zest", "Chilli Oil", "Onion Crisp"},
			"hero":    {"Oyster", "Tuna", "Tomato", "Cucumber", "Beetroot"},
			"acid":    {"Citrus", "Vinegar", "Yuzu"},
			"creamy":  {"Labneh", "Aioli", "Cream"},
			"crunch":  {"Crouton", "Fried Shallot", "Seed Mix"},
		},

		Techniques: []Technique{
			{ID: "grill", Name: "Grill", Mod: TechniqueMod{Complexity: 1, Hold: -1, Identity: 1}},
			{ID: "sear", Name: "Pan-sear", Mod: TechniqueMod{Complexity: 1, Hold: -1}},
			{ID: "braise", Name: "Braise", Mod: TechniqueMod{Prep: 2, Hold: 1, Complexity: -1}},
			{ID: "fry", Name: "Fry", Mod: TechniqueMod{Complexity: 1, Hold: -1, Value: 1}},
			{ID: "pickle", Name: "Pickle", Mod: TechniqueMod{Prep: 1, Identity: 1}},
			{ID: "smoke", Name: "Smoke", Mod: TechniqueMod{Prep: 1, Identity: 2, Complexity: 1}},
		},

		Problems: []Problem{
			{ID: "pos_lag", Title: "POS Lag", Severity: 2, Effects: ProblemEffects{Ticket: 0.12, Culture: -0.02}},
			{ID: "coolroom_drift", Title: "Coolroom Temp Drift", Severity: 3, Effects: ProblemEffects{StandardsDebt: 0.18, Waste: 0.06}},
			{ID: "dishwasher_sick", Title: "Dishwasher Calls In Sick", Severity: 3, Effects: ProblemEffects{Capacity: -0.10, StandardsDebt: 0.12, Culture: -0.03}},
			{ID: "walkin_surge", Title: "Walk-in Surge", Severity: 3, Effects: ProblemEffects{Demand: 0.18, Ticket: 0.10, Stress: 0.12}},
			{ID: "allergen_near_miss", Title: "Allergen Near-Miss", Severity: 4, Effects: ProblemEffects{StandardsDebt: 0.22, Culture: -0.05, Brand: -0.04}},
			{ID: "station_conflict", Title: "Station Conflict", Severity: 2, Effects: ProblemEffects{Culture: -0.05, Ticket: 0.05}},
			{ID: "late_delivery", Title: "Delivery Late", Severity: 2, Effects: ProblemEffects{Ticket: 0.07, Culture: -0.02}},
			{ID: "fryer_oil_due", Title: "Fryer Oil Overdue", Severity: 2, Effects: ProblemEffects{Ticket: 0.08, Quality: -0.06, StandardsDebt: 0.05}},
		},
	}
}
