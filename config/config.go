package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"weather-widget/datasource"

	"github.com/joho/godotenv"
)

// Duration is a time.Duration that reads "5s" style strings from JSON
type Duration time.Duration

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("duration must be a string like \"5s\": %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Config represents the application configuration
type Config struct {
	OpenWeatherMap struct {
		APIKey  string `json:"apiKey"`
		BaseURL string `json:"baseURL"`
	} `json:"openWeatherMap"`

	// Port the web surface listens on
	Port int `json:"port"`

	// Directory holding the icon images. Empty serves the embedded set
	AssetsDir string `json:"assetsDir"`

	// Zero means requests are never timed out
	RequestTimeout Duration `json:"requestTimeout"`

	// Drop responses from superseded lookups instead of letting the last
	// response to arrive win
	DiscardStale bool `json:"discardStale"`
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	config := &Config{}
	config.OpenWeatherMap.BaseURL = datasource.DefaultBaseURL
	config.Port = 8080
	return config
}

// LoadConfig loads configuration from a JSON file on top of the defaults
func LoadConfig(filename string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	return config, nil
}

// Load reads the optional JSON file, then .env, then the environment.
// Later sources win
func Load(filename string) (*Config, error) {
	config, err := LoadConfig(filename)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("No config file at %s, using defaults", filename)
		config = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) applyEnv() error {
	c.OpenWeatherMap.APIKey = getEnv("OPENWEATHERMAP_API_KEY", c.OpenWeatherMap.APIKey)
	c.OpenWeatherMap.BaseURL = getEnv("OPENWEATHERMAP_BASE_URL", c.OpenWeatherMap.BaseURL)
	c.AssetsDir = getEnv("ASSETS_DIR", c.AssetsDir)

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		c.Port = p
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
