package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Port       string `env:"PORT" env-default:"8000"`
	Env        string `env:"ENV" env-default:"development"`
	DB         DBConfig
	Simulation SimulationConfig
}

// DBConfig holds the postgres connection settings
type DBConfig struct {
	Host     string `env:"DB_HOST" env-default:"localhost"`
	Port     string `env:"DB_PORT" env-default:"5432"`
	User     string `env:"DB_USER" env-default:"postgres"`
	Password string `env:"DB_PASSWORD" env-default:"postgres"`
	Name     string `env:"DB_NAME" env-default:"paysphere"`
}

// SimulationConfig carries the settlement-simulation knobs. It is read once
// at startup and passed by value into the payment processor, so a request
// never consults ambient process state.
type SimulationConfig struct {
	UPISuccessRate  float64 `env:"UPI_SUCCESS_RATE" env-default:"0.90"`
	CardSuccessRate float64 `env:"CARD_SUCCESS_RATE" env-default:"0.95"`
	// TestMode pins both delay and outcome for reproducible runs.
	TestMode    bool          `env:"TEST_MODE" env-default:"false"`
	TestDelay   time.Duration `env:"TEST_PROCESSING_DELAY" env-default:"1s"`
	TestSuccess bool          `env:"TEST_PAYMENT_SUCCESS" env-default:"true"`
	DelayMin    time.Duration `env:"PROCESSING_DELAY_MIN" env-default:"5s"`
	DelayMax    time.Duration `env:"PROCESSING_DELAY_MAX" env-default:"10s"`
}

// App is the loaded process configuration, set by LoadConfig.
var App *Config

// LoadConfig loads configuration from the environment. A .env file is read
// first when present.
func LoadConfig() (*Config, error) {
	// Missing .env is fine in deployed environments.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}

	App = cfg
	return cfg, nil
}
