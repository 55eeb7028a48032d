package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Scenario      string `env:"KIDS_SCENARIO"`                  // Scenario file; the built-in scenario is used when empty
	ReferenceYear int    `env:"KIDS_REFERENCE_YEAR"`            // Overrides the scenario's reference year when not zero
	Format        string `env:"KIDS_FORMAT" envDefault:"table"` // Output format: table, csv or json
	Output        string `env:"KIDS_OUTPUT"`                    // Output file; standard output when empty
	Wait          bool   `env:"KIDS_WAIT" envDefault:"false"`   // Wait for ENTER before exiting
}

// Loads the .env files (missing files are ignored) and then the environment variables
func Load(dotEnvFiles ...string) (Config, error) {
	for _, file := range dotEnvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %v: %w", file, err)
		}
	}

	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return config, nil
}
