package config

import "fmt"

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// GetAddr returns the listen address in host:port form.
func (c ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig holds the sqlite database settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// AppConfig holds settings specific to the issue tracker itself.
type AppConfig struct {
	// RootPath is the URL prefix all routes are mounted under, so the
	// service can live behind the media server's reverse proxy.
	RootPath string `mapstructure:"root_path"`
	// Language selects the EN or FR text bundle. Unknown values fall
	// back to EN.
	Language string `mapstructure:"language"`
	// AdminID is the Jellyfin user id the dashboard gate compares
	// against. Empty means any logged-in user passes.
	AdminID string `mapstructure:"admin_id"`
}

// EmailConfig holds SMTP notification settings. Notifications are
// disabled when User or Password is empty.
type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	ToAddress    string `mapstructure:"to_address"`
}

// Enabled reports whether SMTP credentials are configured.
func (c EmailConfig) Enabled() bool {
	return c.SMTPUser != "" && c.SMTPPassword != ""
}
