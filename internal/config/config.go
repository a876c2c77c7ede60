package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host    string `yaml:"host"`
		Port    int    `yaml:"port"`
		Env     string `yaml:"env"`
		Version string `yaml:"version"`
	} `yaml:"server"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUser     string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		AdminEmail   string `yaml:"admin_email"` // contact alerts go here
		Enabled      bool   `yaml:"enabled"`
	} `yaml:"email"`

	Storage struct {
		BasePath string `yaml:"base_path"` // root for record files and uploaded binaries
	} `yaml:"storage"`

	Upload struct {
		MaxTotalSize       int64    `yaml:"max_total_size"` // ceiling across all parts of one submission
		AllowedTypes       []string `yaml:"allowed_types"`
		DefaultProjectName string   `yaml:"default_project_name"`
		DefaultUploadedBy  string   `yaml:"default_uploaded_by"`
	} `yaml:"upload"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
}

// Load reads configuration from CONFIG_PATH (default config/config.yaml)
// when present, then applies environment-variable overrides. A missing
// config file is fine: defaults plus environment cover local runs and tests.
func Load() (*Config, error) {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	cfg := defaultConfig()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	if f, err := os.Open(configPath); err == nil {
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file at %s: %w", configPath, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to open config file at %s: %w", configPath, err)
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 5000
	cfg.Server.Env = "development"
	cfg.Server.Version = "1.0"

	cfg.Email.SMTPPort = 587
	cfg.Email.FromName = "Portfolio"

	cfg.Storage.BasePath = "./uploads"

	cfg.Upload.MaxTotalSize = 100 * 1024 * 1024 // 100 MiB
	// Matches the archive/document intent of the site. The trailing
	// octet-stream entry accepts effectively arbitrary binaries and is kept
	// only for parity with the deployed frontend; see receiver.go.
	cfg.Upload.AllowedTypes = []string{
		"application/zip",
		"application/x-rar-compressed",
		"application/pdf",
		"application/msword",
		"application/octet-stream",
	}
	cfg.Upload.DefaultProjectName = "Student Result Management System"
	cfg.Upload.DefaultUploadedBy = "jaya@gmail.com"

	cfg.CORS.AllowedOrigins = []string{"*"}

	return cfg
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SERVER_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("EMAIL_HOST"); v != "" {
		cfg.Email.SMTPHost = v
	}
	if v := os.Getenv("EMAIL_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Email.SMTPPort = port
		}
	}
	if v := os.Getenv("EMAIL_USER"); v != "" {
		cfg.Email.SMTPUser = v
		if cfg.Email.FromEmail == "" {
			cfg.Email.FromEmail = v
		}
		if cfg.Email.AdminEmail == "" {
			cfg.Email.AdminEmail = v
		}
	}
	if v := os.Getenv("EMAIL_PASSWORD"); v != "" {
		cfg.Email.SMTPPassword = v
	}
	if v := os.Getenv("EMAIL_ADMIN"); v != "" {
		cfg.Email.AdminEmail = v
	}
	if v := os.Getenv("STORAGE_PATH"); v != "" {
		cfg.Storage.BasePath = v
	}
	if v := os.Getenv("UPLOAD_MAX_TOTAL_SIZE"); v != "" {
		if size, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Upload.MaxTotalSize = size
		}
	}
	if v := os.Getenv("UPLOAD_ALLOWED_TYPES"); v != "" {
		cfg.Upload.AllowedTypes = splitAndTrim(v)
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORS.AllowedOrigins = splitAndTrim(v)
	}
	// SMTP credentials present means sending is intended
	if cfg.Email.SMTPHost != "" && cfg.Email.SMTPUser != "" {
		cfg.Email.Enabled = true
	}
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
