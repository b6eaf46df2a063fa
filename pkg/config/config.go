package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// ⭐ SSOT: 모든 환경변수는 여기서만 읽음
type Config struct {
	Env string // development, staging, production

	// Engine defaults (CLI 플래그로 덮어쓰기 가능)
	Engine EngineConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// EngineConfig holds default parameters for the risk engines
type EngineConfig struct {
	NumSimulations  int     // Monte Carlo 시뮬레이션 횟수
	TimeHorizon     int     // 분석 기간 (년)
	ConfidenceLevel float64 // 신뢰수준 (0.90/0.95/0.99/0.999)
	Seed            int64   // 재현성용 시드

	CorrelationFactor  float64 // 자산간 기본 상관계수
	ClimateCorrelation float64 // 시장-기후 팩터 상관계수
}

// Load reads configuration from environment variables
// ⭐ SSOT: 이 함수만 os.Getenv()를 호출함
func Load() (*Config, error) {
	// Try multiple paths for .env file
	loadEnvFile()

	cfg := &Config{
		Env: getEnv("ENV", "development"),

		Engine: EngineConfig{
			NumSimulations:     getEnvAsInt("ENGINE_NUM_SIMULATIONS", 10000),
			TimeHorizon:        getEnvAsInt("ENGINE_TIME_HORIZON", 10),
			ConfidenceLevel:    getEnvAsFloat("ENGINE_CONFIDENCE_LEVEL", 0.95),
			Seed:               int64(getEnvAsInt("ENGINE_SEED", 42)),
			CorrelationFactor:  getEnvAsFloat("ENGINE_CORRELATION_FACTOR", 0.3),
			ClimateCorrelation: getEnvAsFloat("ENGINE_CLIMATE_CORRELATION", 0.25),
		},

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Engine.NumSimulations < 1 {
		return fmt.Errorf("ENGINE_NUM_SIMULATIONS must be >= 1")
	}
	if c.Engine.TimeHorizon < 1 {
		return fmt.Errorf("ENGINE_TIME_HORIZON must be >= 1")
	}
	if c.Engine.ConfidenceLevel <= 0 || c.Engine.ConfidenceLevel >= 1 {
		return fmt.Errorf("ENGINE_CONFIDENCE_LEVEL must be between 0 and 1")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	// Try paths in order of priority
	paths := []string{
		".env", // Current directory
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}
