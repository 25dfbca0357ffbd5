package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigAppliesTuningDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	payload := `{
        "seed": 99,
        "city_name": "Melbourne",
        "output_destination": "json",
        "tuning": {
            "season_days": 14,
            "star_thresholds": [70, 78, 86]
        }
    }`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Seed != 99 || cfg.CityName != "Melbourne" || cfg.OutputDestination != "json" {
		t.Fatalf("explicit values lost: %+v", cfg)
	}
	if cfg.Tuning.SeasonDays != 14 {
		t.Fatalf("season_days = %d, want the configured 14", cfg.Tuning.SeasonDays)
	}
	if cfg.Tuning.StarThresholds[0] != 70 {
		t.Fatalf("star thresholds = %v", cfg.Tuning.StarThresholds)
	}
	// unset keys fall back to the shipped balance
	def := DefaultTuning()
	if cfg.Tuning.ServicesPerDay != def.ServicesPerDay {
		t.Fatalf("services_per_day = %d, want default %d", cfg.Tuning.ServicesPerDay, def.ServicesPerDay)
	}
	if cfg.Tuning.PoachBaseChance != def.PoachBaseChance {
		t.Fatalf("poach_base_chance = %v, want default %v", cfg.Tuning.PoachBaseChance, def.PoachBaseChance)
	}
}

func TestLoadConfigRejectsBadThresholds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	payload := `{"tuning": {"star_thresholds": [70, 78]}}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("two thresholds accepted; exactly three are required")
	}
}
