package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	IsProduction  bool
	EnableDBCheck bool

	// EnableAccountingBackbone is the global kill switch for ledger posting
	// and reporting. Off means every posting call is a silent no-op.
	EnableAccountingBackbone bool

	// StartupCheckCompanyID, when set, runs a trial balance for that company
	// at startup and logs the result.
	StartupCheckCompanyID string
}

// LoadConfig loads configuration from environment variables.
// It looks for a .env file first.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("FEATURE_ACCOUNTING_BACKBONE", false)
	v.SetDefault("LEDGER_COMPANY_ID", "")

	dbURL := v.GetString("PGSQL_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("PGSQL_URL environment variable is required")
	}

	return &Config{
		DatabaseURL:              dbURL,
		IsProduction:             v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:            v.GetBool("ENABLE_DB_CHECK"),
		EnableAccountingBackbone: v.GetBool("FEATURE_ACCOUNTING_BACKBONE"),
		StartupCheckCompanyID:    v.GetString("LEDGER_COMPANY_ID"),
	}, nil
}
