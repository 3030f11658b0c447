package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	sharedConfig "jellyfix/internal/shared/config"
)

type Config struct {
	Server   sharedConfig.ServerConfig   `mapstructure:"server"`
	Database sharedConfig.DatabaseConfig `mapstructure:"database"`
	Logger   sharedConfig.LoggerConfig   `mapstructure:"logger"`
	App      sharedConfig.AppConfig      `mapstructure:"app"`
	Email    sharedConfig.EmailConfig    `mapstructure:"email"`
}

// Load builds the configuration from environment variables and an
// optional config file. The result is an immutable snapshot passed
// explicitly to the components that need it; there is no global access.
func Load(env string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.SetEnvPrefix("JELLYFIX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindLegacyEnv(v)
	setDefaults(v)

	// The config file is optional: a bare container only sets env vars.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	normalize(&config)

	return &config, nil
}

// bindLegacyEnv keeps the environment variable names the original
// deployment used working alongside the JELLYFIX_-prefixed ones.
func bindLegacyEnv(v *viper.Viper) {
	_ = v.BindEnv("app.root_path", "JELLYFIX_APP_ROOT_PATH", "ROOT_PATH")
	_ = v.BindEnv("app.language", "JELLYFIX_APP_LANGUAGE", "LANGUAGE")
	_ = v.BindEnv("app.admin_id", "JELLYFIX_APP_ADMIN_ID", "JELLYFIN_ADMIN_ID")
	_ = v.BindEnv("email.smtp_host", "JELLYFIX_EMAIL_SMTP_HOST", "SMTP_SERVER")
	_ = v.BindEnv("email.smtp_port", "JELLYFIX_EMAIL_SMTP_PORT", "SMTP_PORT")
	_ = v.BindEnv("email.smtp_user", "JELLYFIX_EMAIL_SMTP_USER", "SMTP_USER")
	_ = v.BindEnv("email.smtp_password", "JELLYFIX_EMAIL_SMTP_PASSWORD", "SMTP_PASSWORD")
	_ = v.BindEnv("email.from_address", "JELLYFIX_EMAIL_FROM_ADDRESS", "EMAIL_FROM")
	_ = v.BindEnv("email.to_address", "JELLYFIX_EMAIL_TO_ADDRESS", "EMAIL_TO")
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")

	// Database defaults
	v.SetDefault("database.path", "tickets.db")

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	// App defaults
	v.SetDefault("app.root_path", "/jellyfix")
	v.SetDefault("app.language", "EN")
	v.SetDefault("app.admin_id", "")

	// Email defaults (unconfigured credentials disable notifications)
	v.SetDefault("email.smtp_host", "")
	v.SetDefault("email.smtp_port", 587)
	v.SetDefault("email.smtp_user", "")
	v.SetDefault("email.smtp_password", "")
	v.SetDefault("email.from_address", "")
	v.SetDefault("email.to_address", "")
}

func normalize(cfg *Config) {
	cfg.App.Language = strings.ToUpper(cfg.App.Language)
	if cfg.App.Language != "EN" && cfg.App.Language != "FR" {
		cfg.App.Language = "EN"
	}

	if cfg.Email.FromAddress == "" {
		cfg.Email.FromAddress = cfg.Email.SMTPUser
	}
	if cfg.Email.ToAddress == "" {
		cfg.Email.ToAddress = cfg.Email.SMTPUser
	}

	if !strings.HasPrefix(cfg.App.RootPath, "/") && cfg.App.RootPath != "" {
		cfg.App.RootPath = "/" + cfg.App.RootPath
	}
	cfg.App.RootPath = strings.TrimSuffix(cfg.App.RootPath, "/")
}
