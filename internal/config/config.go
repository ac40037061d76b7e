package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Store drivers
const (
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
)

// Media providers
const (
	MediaProviderCloudinary = "cloudinary"
	MediaProviderMinIO      = "minio"
	MediaProviderGCS        = "gcs"
)

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Media      MediaConfig
	Cloudinary CloudinaryConfig
	MinIO      MinIOConfig
	GCS        GCSConfig
}

type AppConfig struct {
	Name        string `env:"APP_NAME" envDefault:"Gallery API"`
	Environment string `env:"APP_ENV" envDefault:"development"` // development, production
	Version     string `env:"APP_VERSION" envDefault:"1.0.0"`
}

type DatabaseConfig struct {
	Driver         string        `env:"STORE_DRIVER" envDefault:"postgres"`
	URL            string        `env:"DATABASE_URL"`
	LegacyURL      string        `env:"MONGO_URL"` // older deployments only set this one
	MaxConns       int32         `env:"DB_MAX_CONNS" envDefault:"25"`
	MinConns       int32         `env:"DB_MIN_CONNS" envDefault:"5"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"10s"`
}

// ConnectionString trả về DATABASE_URL, fallback sang MONGO_URL
func (d DatabaseConfig) ConnectionString() string {
	if d.URL != "" {
		return d.URL
	}
	return d.LegacyURL
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"` // empty = cache disabled
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"5m"`
}

// Enabled reports whether a Redis address was configured.
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type MediaConfig struct {
	Provider string `env:"MEDIA_PROVIDER" envDefault:"cloudinary"`
}

type CloudinaryConfig struct {
	CloudName string `env:"CLOUD_NAME"`
	APIKey    string `env:"API_KEY"`
	APISecret string `env:"API_SECRET"`
	Folder    string `env:"CLOUDINARY_FOLDER" envDefault:"uploads"`
}

type MinIOConfig struct {
	Endpoint  string `env:"MINIO_ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string `env:"MINIO_ACCESS_KEY"`
	SecretKey string `env:"MINIO_SECRET_KEY"`
	Bucket    string `env:"MINIO_BUCKET" envDefault:"gallery"`
	UseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`
}

type GCSConfig struct {
	Bucket string `env:"GCS_BUCKET"`
}

// Load đọc .env (nếu có) rồi parse environment variables
func Load() (*Config, error) {
	// Missing .env is fine, production dùng system environment variables
	_ = godotenv.Load()

	return Parse()
}

// Parse chỉ đọc process environment, không đụng tới .env
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case StoreDriverPostgres, StoreDriverSQLite:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.Database.Driver)
	}
	conn := c.Database.ConnectionString()
	if conn == "" {
		return fmt.Errorf("DATABASE_URL must be set")
	}
	// MONGO_URL chỉ được nhận khi nó đã trỏ sang store mới
	if lower := strings.ToLower(conn); strings.HasPrefix(lower, "mongodb://") || strings.HasPrefix(lower, "mongodb+srv://") {
		return fmt.Errorf("DATABASE_URL/MONGO_URL is a MongoDB URI; set a %s connection string instead", c.Database.Driver)
	}

	switch c.Media.Provider {
	case MediaProviderCloudinary:
		if c.Cloudinary.CloudName == "" || c.Cloudinary.APIKey == "" || c.Cloudinary.APISecret == "" {
			return fmt.Errorf("CLOUD_NAME, API_KEY and API_SECRET must be set for cloudinary")
		}
	case MediaProviderMinIO:
		if c.MinIO.AccessKey == "" || c.MinIO.SecretKey == "" {
			return fmt.Errorf("MINIO_ACCESS_KEY and MINIO_SECRET_KEY must be set for minio")
		}
	case MediaProviderGCS:
		if c.GCS.Bucket == "" {
			return fmt.Errorf("GCS_BUCKET must be set for gcs")
		}
	default:
		return fmt.Errorf("unsupported MEDIA_PROVIDER %q", c.Media.Provider)
	}

	return nil
}
