package main

import (
	"fmt"
	"os"
	"strconv"
)

// config holds defaults that flags fall back to.
type config struct {
	Variant   string
	ReportDir string
	Trials    int
}

// loadConfig reads defaults from environment variables
func loadConfig() config {
	return config{
		Variant:   getEnv("NARROWWAY_VARIANT", "256"),
		ReportDir: getEnv("NARROWWAY_REPORT_DIR", "narrowway_reports"),
		Trials:    getEnvInt("NARROWWAY_TRIALS", 1000),
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func (c config) String() string {
	return fmt.Sprintf("variant=%s report_dir=%s trials=%d", c.Variant, c.ReportDir, c.Trials)
}
