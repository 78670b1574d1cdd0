package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Render   RenderConfig   `mapstructure:"render"`
	Report   ReportConfig   `mapstructure:"report"`
	Autosave AutosaveConfig `mapstructure:"autosave"`
	Logger   LoggerConfig   `mapstructure:"logger"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	CORSOrigins  []string      `mapstructure:"cors_origins"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Path            string        `mapstructure:"path"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// AuthConfig holds token signing configuration
type AuthConfig struct {
	JWTSecret        string `mapstructure:"jwt_secret"`
	TokenExpireHours int    `mapstructure:"token_expire_hours"`
}

// StorageConfig holds object storage configuration
type StorageConfig struct {
	BaseDir     string `mapstructure:"base_dir"`
	MaxUploadMB int    `mapstructure:"max_upload_mb"`
}

// RenderConfig holds the external report-rendering service endpoints. These
// are always injected here, never hard-coded at call sites.
type RenderConfig struct {
	BaseURL  string        `mapstructure:"base_url"`
	PDFPath  string        `mapstructure:"pdf_path"`
	HTMLPath string        `mapstructure:"html_path"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// ReportConfig holds report assembly settings
type ReportConfig struct {
	CompanyName string `mapstructure:"company_name"`
}

// AutosaveConfig holds the debounce delay for worksheet persistence
type AutosaveConfig struct {
	Delay time.Duration `mapstructure:"delay"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	bindEnvVars()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.cors_origins", []string{"*"})

	viper.SetDefault("database.path", "data/claims.db")
	viper.SetDefault("database.max_open_conns", 25)
	viper.SetDefault("database.max_idle_conns", 5)
	viper.SetDefault("database.conn_max_lifetime", 5*time.Minute)

	viper.SetDefault("auth.token_expire_hours", 24)

	viper.SetDefault("storage.base_dir", "data/uploads")
	viper.SetDefault("storage.max_upload_mb", 25)

	viper.SetDefault("render.pdf_path", "/render/pdf")
	viper.SetDefault("render.html_path", "/render/html")
	viper.SetDefault("render.timeout", 60*time.Second)

	viper.SetDefault("report.company_name", "Claim Portal")

	viper.SetDefault("autosave.delay", 2*time.Second)

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.output_path", "stdout")
	viper.SetDefault("logger.format", "json")
}

func bindEnvVars() {
	viper.BindEnv("auth.jwt_secret", "JWT_SECRET")
	viper.BindEnv("database.path", "DATABASE_PATH")
	viper.BindEnv("render.base_url", "RENDER_BASE_URL")
	viper.BindEnv("storage.base_dir", "STORAGE_BASE_DIR")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}
	if c.Render.BaseURL == "" {
		return fmt.Errorf("render.base_url is required")
	}
	if c.Storage.MaxUploadMB <= 0 {
		return fmt.Errorf("storage.max_upload_mb must be positive")
	}
	if c.Autosave.Delay <= 0 {
		return fmt.Errorf("autosave.delay must be positive")
	}
	return nil
}
