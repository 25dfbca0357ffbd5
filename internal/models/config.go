package models

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Tuning holds the game-balance constants. The values are hand-tuned for
// feel; they are configuration, not derived quantities.
type Tuning struct {
	SeasonDays     int `mapstructure:"season_days"`
	ServicesPerDay int `mapstructure:"services_per_day"`
	AIRivals       int `mapstructure:"ai_rivals"`

	// customer system
	RetentionFactor float64 `mapstructure:"retention_factor"`
	ReviewBase      float64 `mapstructure:"review_base"`
	ReviewBoost     float64 `mapstructure:"review_boost"`
	ReviewMax       float64 `mapstructure:"review_max"`
	ChurnSpikeBelow float64 `mapstructure:"churn_spike_below"`

	// operations
	BaseDemand     float64 `mapstructure:"base_demand"`
	BaseCapacity   float64 `mapstructure:"base_capacity"`
	RentPerService float64 `mapstructure:"rent_per_service"`
	WageScale      float64 `mapstructure:"wage_scale"`

	// inspections
	InspectionEveryDays int   `mapstructure:"inspection_every_days"`
	StarThresholds      []int `mapstructure:"star_thresholds"` // 1/2/3 stars, 0..100
	BestRestaurantTopN  int   `mapstructure:"best_restaurant_top_n"`

	// poaching and scouting
	ScoutCost             float64 `mapstructure:"scout_cost"`
	PoachBaseChance       float64 `mapstructure:"poach_base_chance"`
	PoachCooldownServices int     `mapstructure:"poach_cooldown_services"`
	ProtectedHireServices int     `mapstructure:"protected_hire_services"`
}

// DefaultTuning returns the shipped balance.
func DefaultTuning() Tuning {
	return Tuning{
		SeasonDays:     28,
		ServicesPerDay: 2,
		AIRivals:       24,

		RetentionFactor: 0.004,
		ReviewBase:      0.02,
		ReviewBoost:     0.006,
		ReviewMax:       0.25,
		ChurnSpikeBelow: 45,

		BaseDemand:     80,
		BaseCapacity:   85,
		RentPerService: 120,
		WageScale:      1.0,

		InspectionEveryDays: 7,
		StarThresholds:      []int{72, 80, 88},
		BestRestaurantTopN:  50,

		ScoutCost:             40,
		PoachBaseChance:       0.30,
		PoachCooldownServices: 4,
		ProtectedHireServices: 6,
	}
}

// CloudStorageConfig selects a cloud target for parquet archives.
type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	Region     string `mapstructure:"region"`
	BucketName string `mapstructure:"bucket_name"`
}

// DatabaseConfig is the postgres sink connection.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// Config is everything the driver needs to play a season.
type Config struct {
	Seed     int64  `mapstructure:"seed"`
	CityName string `mapstructure:"city_name"`

	RestaurantName  string `mapstructure:"restaurant_name"`
	DiningTypeID    string `mapstructure:"dining_type"`
	StyleID         string `mapstructure:"style"`
	NeighbourhoodID string `mapstructure:"neighbourhood"`

	OutputDestination string `mapstructure:"output_destination"` // console|json|parquet|kafka|postgres
	OutputPath        string `mapstructure:"output_path"`
	OutputFolder      string `mapstructure:"output_folder"`

	KafkaEnabled    bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList string `mapstructure:"kafka_broker_list"`

	CloudStorage CloudStorageConfig `mapstructure:"cloud_storage"`
	Database     DatabaseConfig     `mapstructure:"database"`

	Tuning Tuning `mapstructure:"tuning"`
}

// LoadConfig initializes and reads the configuration using viper.
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv()

	setTuningDefaults(DefaultTuning())

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(dc *mapstructure.DecoderConfig) {
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			dc.DecodeHook,
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if len(config.Tuning.StarThresholds) != 3 {
		return nil, fmt.Errorf("tuning.star_thresholds must have exactly 3 entries, got %d", len(config.Tuning.StarThresholds))
	}

	return &config, nil
}

func setTuningDefaults(t Tuning) {
	viper.SetDefault("tuning.season_days", t.SeasonDays)
	viper.SetDefault("tuning.services_per_day", t.ServicesPerDay)
	viper.SetDefault("tuning.ai_rivals", t.AIRivals)
	viper.SetDefault("tuning.retention_factor", t.RetentionFactor)
	viper.SetDefault("tuning.review_base", t.ReviewBase)
	viper.SetDefault("tuning.review_boost", t.ReviewBoost)
	viper.SetDefault("tuning.review_max", t.ReviewMax)
	viper.SetDefault("tuning.churn_spike_below", t.ChurnSpikeBelow)
	viper.SetDefault("tuning.base_demand", t.BaseDemand)
	viper.SetDefault("tuning.base_capacity", t.BaseCapacity)
	viper.SetDefault("tuning.rent_per_service", t.RentPerService)
	viper.SetDefault("tuning.wage_scale", t.WageScale)
	viper.SetDefault("tuning.inspection_every_days", t.InspectionEveryDays)
	viper.SetDefault("tuning.star_thresholds", t.StarThresholds)
	viper.SetDefault("tuning.best_restaurant_top_n", t.BestRestaurantTopN)
	viper.SetDefault("tuning.scout_cost", t.ScoutCost)
	viper.SetDefault("tuning.poach_base_chance", t.PoachBaseChance)
	viper.SetDefault("tuning.poach_cooldown_services", t.PoachCooldownServices)
	viper.SetDefault("tuning.protected_hire_services", t.ProtectedHireServices)
}
