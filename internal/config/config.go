package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Artifact ArtifactConfig
	Search   SearchConfig
	Geocoder GeocoderConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	GeocodeCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

// ArtifactConfig - пути к артефактам подготовительного этапа.
// Все три артефакта соответствуют одной версии набора данных и
// загружаются только вместе.
type ArtifactConfig struct {
	FacilitiesPath string
	VectorizerPath string
	WeightsPath    string
}

// SearchConfig - параметры поиска. Радиус задаётся единственным значением
// в метрах и используется всеми вызывающими сторонами.
type SearchConfig struct {
	RadiusM float64
	City    string
}

type GeocoderConfig struct {
	BaseURL        string
	UserAgent      string
	RequestTimeout time.Duration
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			GeocodeCacheTTL: time.Duration(viper.GetInt("GEOCODE_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Artifact: ArtifactConfig{
			FacilitiesPath: viper.GetString("FACILITIES_CSV_PATH"),
			VectorizerPath: viper.GetString("VECTORIZER_PATH"),
			WeightsPath:    viper.GetString("WEIGHTS_PATH"),
		},
		Search: SearchConfig{
			RadiusM: viper.GetFloat64("SEARCH_RADIUS_M"),
			City:    viper.GetString("CITY"),
		},
		Geocoder: GeocoderConfig{
			BaseURL:        viper.GetString("NOMINATIM_URL"),
			UserAgent:      viper.GetString("GEOCODER_USER_AGENT"),
			RequestTimeout: time.Duration(viper.GetInt("GEOCODER_TIMEOUT")) * time.Second,
		},
	}

	// Set default values if not provided
	if cfg.Artifact.FacilitiesPath == "" {
		cfg.Artifact.FacilitiesPath = "artifacts/ahmedabad_odor_sources_cleaned.csv"
	}
	if cfg.Artifact.VectorizerPath == "" {
		cfg.Artifact.VectorizerPath = "artifacts/tfidf_vectorizer.json"
	}
	if cfg.Artifact.WeightsPath == "" {
		cfg.Artifact.WeightsPath = "artifacts/feature_matrix.json"
	}
	if cfg.Search.RadiusM == 0 {
		cfg.Search.RadiusM = 5000
	}
	if cfg.Search.City == "" {
		cfg.Search.City = "Ahmedabad"
	}
	if cfg.Geocoder.BaseURL == "" {
		cfg.Geocoder.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if cfg.Geocoder.UserAgent == "" {
		cfg.Geocoder.UserAgent = "OdourDetectionApp/1.0 (contact@example.com)"
	}
	if cfg.Geocoder.RequestTimeout == 0 {
		cfg.Geocoder.RequestTimeout = 10 * time.Second
	}
	if cfg.Cache.GeocodeCacheTTL == 0 {
		cfg.Cache.GeocodeCacheTTL = 24 * time.Hour
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
