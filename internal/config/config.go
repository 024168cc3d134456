package config

import (
	"os"
	"strconv"
)

// Config 应用配置
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string

	// DurationCeiling 出行时长上限（秒），超过视为异常值
	DurationCeiling float64

	// SRSSampleSize 默认简单随机抽样样本量
	SRSSampleSize int
}

// Load 加载配置
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/trips/trips.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	ceiling := 86400.0 // 一天
	if v := os.Getenv("DURATION_CEILING_SECONDS"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			ceiling = parsed
		}
	}

	srsSampleSize := 1000
	if v := os.Getenv("SRS_SAMPLE_SIZE"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			srsSampleSize = parsed
		}
	}

	return &Config{
		Port:            port,
		DBPath:          dbPath,
		JWTSecret:       jwtSecret,
		DurationCeiling: ceiling,
		SRSSampleSize:   srsSampleSize,
	}
}
