// internal/config/config.go
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		Host       string
		Port       string
		User       string
		Password   string
		Name       string
		SSLMode    string
		SearchPath string
	}
	JWT struct {
		Secret       string
		ExpiryPeriod time.Duration
	}
	Server struct {
		Port         string
		ReadTimeout  time.Duration
		WriteTimeout time.Duration
	}
	Sendgrid struct {
		APIKey string
		From   string
	}
	SMTP struct {
		Host     string
		Port     int
		Username string
		Password string
		From     string
	}
	BaseURL string
}

// Load reads configuration from the environment via viper. Keys use the
// BACKOFFICE_ prefix with underscores (BACKOFFICE_DB_HOST, ...).
func Load() *Config {
	v := viper.New()
	v.SetEnvPrefix("BACKOFFICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "backoffice")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.schema", "public")
	v.SetDefault("jwt.secret", "change-me")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("sendgrid.api_key", "")
	v.SetDefault("sendgrid.from", "")
	v.SetDefault("smtp.host", "")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.username", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.from", "")
	v.SetDefault("base_url", "http://localhost:8080")

	cfg := &Config{}
	cfg.Database.Host = v.GetString("db.host")
	cfg.Database.Port = v.GetString("db.port")
	cfg.Database.User = v.GetString("db.user")
	cfg.Database.Password = v.GetString("db.password")
	cfg.Database.Name = v.GetString("db.name")
	cfg.Database.SSLMode = v.GetString("db.sslmode")
	cfg.Database.SearchPath = v.GetString("db.schema")
	cfg.JWT.Secret = v.GetString("jwt.secret")
	cfg.JWT.ExpiryPeriod = v.GetDuration("jwt.expiry")
	cfg.Server.Port = v.GetString("server.port")
	cfg.Server.ReadTimeout = v.GetDuration("server.read_timeout")
	cfg.Server.WriteTimeout = v.GetDuration("server.write_timeout")
	cfg.Sendgrid.APIKey = v.GetString("sendgrid.api_key")
	cfg.Sendgrid.From = v.GetString("sendgrid.from")
	cfg.SMTP.Host = v.GetString("smtp.host")
	cfg.SMTP.Port = v.GetInt("smtp.port")
	cfg.SMTP.Username = v.GetString("smtp.username")
	cfg.SMTP.Password = v.GetString("smtp.password")
	cfg.SMTP.From = v.GetString("smtp.from")
	cfg.BaseURL = v.GetString("base_url")

	return cfg
}

// DSN returns the keyword/value postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
		c.Database.SearchPath,
	)
}
