package catalog

import (
	"testing"

	"github.com/stovetop-games/brigade/internal/models"
)

func TestDefaultCatalogShape(t *testing.T) {
	c := Default()

	if len(c.CityRotation) == 0 {
		t.Fatal("empty city rotation")
	}
	if _, ok := c.Cities[c.CityRotation[0]]; !ok {
		t.Fatalf("rotation head %s has no city tables", c.CityRotation[0])
	}
	for name, city := range c.Cities {
		if len(city.Neighbourhoods) == 0 {
			t.Fatalf("city %s has no neighbourhoods", name)
		}
	}
	if len(c.SegmentOrder) != len(c.Segments) {
		t.Fatalf("segment order lists %d keys for %d segments", len(c.SegmentOrder), len(c.Segments))
	}
	for _, key := range c.SegmentOrder {
		profile, ok := c.Segments[key]
		if !ok {
			t.Fatalf("segment order names unknown segment %s", key)
		}
		for _, cat := range models.RubricCategories() {
			if _, ok := profile.Weights[cat]; !ok {
				t.Errorf("segment %s has no weight for %s", key, cat)
			}
		}
	}
	if len(c.DiningTypes) < 2 {
		t.Fatal("dining type fallback expects at least two entries")
	}
	if len(c.Problems) == 0 || len(c.Templates) == 0 || len(c.Techniques) == 0 || len(c.Library) == 0 {
		t.Fatal("a reference table is empty")
	}
}

func TestLookupFallbacks(t *testing.T) {
	c := Default()

	if city := c.CityByName("Atlantis"); city.Name != c.CityRotation[0] {
		t.Fatalf("city fallback = %s, want %s", city.Name, c.CityRotation[0])
	}
	sydney := c.CityByName("Sydney")
	if nh := c.NeighbourhoodByID("Sydney", "nowhere"); nh.ID != sydney.Neighbourhoods[0].ID {
		t.Fatalf("neighbourhood fallback = %s", nh.ID)
	}
	if dt := c.DiningTypeByID("ghost_kitchen"); dt.ID != "bistro" {
		t.Fatalf("dining type fallback = %s, want bistro", dt.ID)
	}
	if st := c.StyleByID("fusion"); st.ID != c.Styles[0].ID {
		t.Fatalf("style fallback = %s", st.ID)
	}
	if a := c.ArchetypeByID("sommelier"); a.ID != c.StaffPool[0].ID {
		t.Fatalf("archetype fallback = %s", a.ID)
	}
	if _, ok := c.LibraryDishByID("lobster_roll"); ok {
		t.Fatal("unknown library dish reported ok")
	}
	if _, ok := c.TechniqueByID("sous_vide"); ok {
		t.Fatal("unknown technique reported ok")
	}
	if _, ok := c.SegmentByID("regulars"); ok {
		t.Fatal("unknown segment reported ok")
	}
	if tpl := c.TemplateByID("molecular"); tpl.ID != c.Templates[0].ID {
		t.Fatalf("template fallback = %s", tpl.ID)
	}
}

func TestTemplateSlotsMatchComponents(t *testing.T) {
	c := Default()
	for _, tpl := range c.Templates {
		for _, slot := range tpl.Slots {
			if opts, ok := c.Components[slot]; !ok || len(opts) == 0 {
				t.Errorf("template %s slot %s has no component options", tpl.ID, slot)
			}
		}
	}
}
