package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Check defaults
	if cfg.Env != "development" {
		t.Errorf("Expected Env to be development, got %s", cfg.Env)
	}

	if cfg.Engine.NumSimulations != 10000 {
		t.Errorf("Expected NumSimulations to be 10000, got %d", cfg.Engine.NumSimulations)
	}

	if cfg.Engine.TimeHorizon != 10 {
		t.Errorf("Expected TimeHorizon to be 10, got %d", cfg.Engine.TimeHorizon)
	}

	if cfg.Engine.Seed != 42 {
		t.Errorf("Expected Seed to be 42, got %d", cfg.Engine.Seed)
	}

	if cfg.Engine.ConfidenceLevel != 0.95 {
		t.Errorf("Expected ConfidenceLevel to be 0.95, got %v", cfg.Engine.ConfidenceLevel)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Setenv("ENV", "production")
	os.Setenv("ENGINE_NUM_SIMULATIONS", "5000")
	os.Setenv("ENGINE_CONFIDENCE_LEVEL", "0.99")
	os.Setenv("LOG_LEVEL", "debug")

	defer func() {
		os.Unsetenv("ENV")
		os.Unsetenv("ENGINE_NUM_SIMULATIONS")
		os.Unsetenv("ENGINE_CONFIDENCE_LEVEL")
		os.Unsetenv("LOG_LEVEL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Env != "production" {
		t.Errorf("Expected Env to be production, got %s", cfg.Env)
	}

	if cfg.Engine.NumSimulations != 5000 {
		t.Errorf("Expected NumSimulations to be 5000, got %d", cfg.Engine.NumSimulations)
	}

	if cfg.Engine.ConfidenceLevel != 0.99 {
		t.Errorf("Expected ConfidenceLevel to be 0.99, got %v", cfg.Engine.ConfidenceLevel)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("Expected LogLevel to be debug, got %s", cfg.LogLevel)
	}
}

func TestLoad_InvalidEnv(t *testing.T) {
	os.Setenv("ENV", "weird")
	defer os.Unsetenv("ENV")

	if _, err := Load(); err == nil {
		t.Error("Expected validation error for invalid ENV")
	}
}

func TestLoad_InvalidEngineValues(t *testing.T) {
	os.Setenv("ENGINE_NUM_SIMULATIONS", "0")
	defer os.Unsetenv("ENGINE_NUM_SIMULATIONS")

	if _, err := Load(); err == nil {
		t.Error("Expected validation error for ENGINE_NUM_SIMULATIONS=0")
	}
}

func TestGetEnvAsFloat_Fallback(t *testing.T) {
	os.Setenv("TEST_FLOAT_KEY", "not-a-number")
	defer os.Unsetenv("TEST_FLOAT_KEY")

	if got := getEnvAsFloat("TEST_FLOAT_KEY", 0.25); got != 0.25 {
		t.Errorf("Expected fallback 0.25, got %v", got)
	}
}
