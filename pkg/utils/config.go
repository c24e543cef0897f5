package utils

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

// VIPRule selects which seat classification the customer grid honors.
// "geometry" follows the positional rule (center of rows 4-7), "seat_type"
// follows the per-seat type stored by the admin seat editor. The two are
// never reconciled; the server prices bookings by the stored type.
const (
	VIPRuleGeometry = "geometry"
	VIPRuleSeatType = "seat_type"
)

type Config struct {
	App   AppConfig
	API   APIConfig
	Guest GuestConfig
	QR    QRConfig
}

type AppConfig struct {
	Name    string
	Debug   bool
	LogPath string
	VIPRule string
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type GuestConfig struct {
	Name  string
	Phone string
}

type QRConfig struct {
	MaxRetries int
	RetryDelay time.Duration
	SavePath   string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "cinema-client")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("VIP_RULE", VIPRuleGeometry)
	viper.SetDefault("API_BASE_URL", "http://localhost:8000")
	viper.SetDefault("API_TIMEOUT_SECONDS", 15)
	viper.SetDefault("GUEST_NAME", "Guest")
	viper.SetDefault("GUEST_PHONE", "+70000000000")
	viper.SetDefault("QR_MAX_RETRIES", 4)
	viper.SetDefault("QR_RETRY_DELAY_MS", 1500)
	viper.SetDefault("QR_SAVE_PATH", "tickets/")

	// Missing .env is fine, env vars still apply
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	viper.AutomaticEnv()

	rule := viper.GetString("VIP_RULE")
	if rule != VIPRuleGeometry && rule != VIPRuleSeatType {
		rule = VIPRuleGeometry
	}

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
			VIPRule: rule,
		},
		API: APIConfig{
			BaseURL: viper.GetString("API_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("API_TIMEOUT_SECONDS")) * time.Second,
		},
		Guest: GuestConfig{
			Name:  viper.GetString("GUEST_NAME"),
			Phone: viper.GetString("GUEST_PHONE"),
		},
		QR: QRConfig{
			MaxRetries: viper.GetInt("QR_MAX_RETRIES"),
			RetryDelay: time.Duration(viper.GetInt("QR_RETRY_DELAY_MS")) * time.Millisecond,
			SavePath:   viper.GetString("QR_SAVE_PATH"),
		},
	}

	return config, nil
}
