package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/foodandtravelmag/mag-backend/pkg/mailer"
	"github.com/foodandtravelmag/mag-backend/pkg/storage"
)

// Config is the full application configuration, loaded from
// configs/config.<APP_ENV>.yaml with environment-variable overrides for
// secrets.
type Config struct {
	App      AppConfig        `yaml:"app"`
	Server   ServerConfig     `yaml:"server"`
	Database DatabaseConfig   `yaml:"database"`
	Redis    RedisConfig      `yaml:"redis"`
	JWT      JWTConfig        `yaml:"jwt"`
	CORS     CORSConfig       `yaml:"cors"`
	Storage  StorageConfig    `yaml:"storage"`
	SMTP     mailer.Config    `yaml:"smtp"`
}

// AppConfig holds site-level settings
type AppConfig struct {
	Env        string `yaml:"env"`
	SiteURL    string `yaml:"site_url"`
	OwnerEmail string `yaml:"owner_email"` // the editor account; sole full admin
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port int `yaml:"port"`
}

// DatabaseConfig holds MySQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// DSN builds the MySQL connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

// JWTConfig holds API token settings
type JWTConfig struct {
	Secret    string        `yaml:"secret"`
	ExpiresIn time.Duration `yaml:"expires_in"`
}

// CORSConfig holds allowed origins (comma-separated)
type CORSConfig struct {
	AllowOrigins string `yaml:"allow_origins"`
}

// StorageConfig selects the upload backend. S3 wins when enabled, then FTP,
// then local disk.
type StorageConfig struct {
	S3Enabled bool              `yaml:"s3_enabled"`
	S3        storage.S3Config  `yaml:"s3"`
	FTP       storage.FTPConfig `yaml:"ftp"`
	LocalDir  string            `yaml:"local_dir"`
}

// Load reads the yaml config at path and applies env overrides
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	cfg.applyDefaults()
	return cfg, nil
}

// applyEnvOverrides lets env vars win over yaml, mainly for secrets
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("APP_ENV"); v != "" {
		c.App.Env = v
	}
	if v := os.Getenv("SITE_URL"); v != "" {
		c.App.SiteURL = v
	}
	if v := os.Getenv("OWNER_EMAIL"); v != "" {
		c.App.OwnerEmail = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		c.Redis.Host = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.JWT.Secret = v
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		c.SMTP.Host = v
	}
	if v := os.Getenv("SMTP_USER"); v != "" {
		c.SMTP.User = v
	}
	if v := os.Getenv("SMTP_PASS"); v != "" {
		c.SMTP.Password = v
	}
	if v := os.Getenv("FTP_HOST"); v != "" {
		c.Storage.FTP.Host = v
	}
	if v := os.Getenv("FTP_PASSWORD"); v != "" {
		c.Storage.FTP.Password = v
	}
	if v := os.Getenv("S3_ACCESS_KEY_ID"); v != "" {
		c.Storage.S3.AccessKeyID = v
	}
	if v := os.Getenv("S3_SECRET_ACCESS_KEY"); v != "" {
		c.Storage.S3.SecretAccessKey = v
	}
}

func (c *Config) applyDefaults() {
	if c.App.Env == "" {
		c.App.Env = "local"
	}
	if c.App.SiteURL == "" {
		c.App.SiteURL = "http://localhost:3000"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Database.Port == 0 {
		c.Database.Port = 3306
	}
	if c.Redis.Port == 0 {
		c.Redis.Port = 6379
	}
	if c.Redis.PoolSize == 0 {
		c.Redis.PoolSize = 10
	}
	if c.JWT.ExpiresIn == 0 {
		c.JWT.ExpiresIn = 24 * time.Hour
	}
	if c.Storage.LocalDir == "" {
		c.Storage.LocalDir = "public"
	}
}

// IsDevelopment reports whether the app runs in a dev-like environment
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "local" || c.App.Env == "dev" || c.App.Env == "development"
}
