package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// DefaultWorkingDaysInYear is the working-day convention applied to
	// daily/freelance THR proration when a request does not supply one.
	// 260 matches the 5-day-week convention used by the payroll review flow.
	DefaultWorkingDaysInYear int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("DEFAULT_WORKING_DAYS_IN_YEAR", 260)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.DefaultWorkingDaysInYear = viper.GetInt("DEFAULT_WORKING_DAYS_IN_YEAR")
	if cfg.DefaultWorkingDaysInYear <= 0 {
		cfg.DefaultWorkingDaysInYear = 260
		log.Printf("Warning: Invalid DEFAULT_WORKING_DAYS_IN_YEAR. Defaulting to %d.\n", cfg.DefaultWorkingDaysInYear)
	}

	return cfg, nil
}
