package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stovetop-games/brigade/internal/models"
	"github.com/stovetop-games/brigade/internal/simulator"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "brigade",
	Short: "Simulates a season of restaurant service data",
	Long:  `brigade plays an unattended season of restaurant management - prep decisions, service resolution, rival restaurants, staff poaching and weekly inspections - and streams the results to a configurable destination.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		sim := simulator.NewSimulator(cfg)
		if err := sim.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Simulation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.brigade.yaml)")

	rootCmd.Flags().Int64("seed", 42, "Random seed for the season")
	rootCmd.Flags().String("city-name", "Sydney", "City the restaurant opens in")
	rootCmd.Flags().String("restaurant-name", "The Copper Pan", "Name of the player restaurant")
	rootCmd.Flags().String("dining-type", "bistro", "Dining type id")
	rootCmd.Flags().String("style", "modern_aus", "Cooking style id")
	rootCmd.Flags().String("neighbourhood", "", "Neighbourhood id (city default if empty)")
	rootCmd.Flags().String("output-destination", "console", "Output destination (console, json, parquet, kafka, postgres)")
	rootCmd.Flags().String("output-path", "output", "Base path for file outputs")
	rootCmd.Flags().String("output-folder", "season", "Folder name under the base path")
	rootCmd.Flags().Bool("kafka-enabled", false, "Enable Kafka output")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")

	// flag names are kebab-case, config keys are snake_case
	bindings := map[string]string{
		"seed":               "seed",
		"city_name":          "city-name",
		"restaurant_name":    "restaurant-name",
		"dining_type":        "dining-type",
		"style":              "style",
		"neighbourhood":      "neighbourhood",
		"output_destination": "output-destination",
		"output_path":        "output-path",
		"output_folder":      "output-folder",
		"kafka_enabled":      "kafka-enabled",
		"kafka_broker_list":  "kafka-broker-list",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, rootCmd.Flags().Lookup(flag)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding flag %s: %v\n", flag, err)
			os.Exit(1)
		}
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".brigade")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
