package config

import (
	"strings"

	"github.com/spf13/viper"
)

// HotelConfig identifies the hotel this process operates.
type HotelConfig struct {
	ID       string
	Name     string
	Location string
}

// ServiceConfig holds all configuration for the reservation service.
type ServiceConfig struct {
	Port        string
	AppEnv      string
	CORSOrigins []string
	Hotel       HotelConfig
}

// Load reads configuration from RESERVATION_-prefixed environment variables
// with sensible defaults for local development.
func Load() (*ServiceConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("RESERVATION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("SERVICE_PORT", ":8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("HOTEL_ID", "HOTEL001")
	v.SetDefault("HOTEL_NAME", "Grand Plaza")
	v.SetDefault("HOTEL_LOCATION", "New York")

	port := v.GetString("SERVICE_PORT")
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	return &ServiceConfig{
		Port:        port,
		AppEnv:      v.GetString("APP_ENV"),
		CORSOrigins: strings.Split(v.GetString("CORS_ORIGINS"), ","),
		Hotel: HotelConfig{
			ID:       v.GetString("HOTEL_ID"),
			Name:     v.GetString("HOTEL_NAME"),
			Location: v.GetString("HOTEL_LOCATION"),
		},
	}, nil
}
