package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config holds the configuration for the sunpaper daemon
type Config struct {
	// Location (positional arguments)
	City   string
	Folder string

	// Render loop configuration
	RateMinutes int
	TempPath    string
	DuskIndex   int
	Command     string
	NoInitial   bool

	// Explicit coordinates bypass the city lookup
	Latitude  float64
	Longitude float64
	CoordsSet bool

	// MQTT telemetry (disabled unless a broker is configured)
	MQTTBroker   string
	MQTTPort     int
	MQTTUser     string
	MQTTPassword string
	MQTTClientID string

	// Service configuration
	ServiceName string
	HealthPort  int
	LogLevel    string
	ConfigFile  string
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		RateMinutes: 10,
		TempPath:    "/tmp/wallpaper.png",
		DuskIndex:   13,
		Command:     "feh --bg-scale {}",
		NoInitial:   false,
		MQTTBroker:  "",
		MQTTPort:    1883,
		ServiceName: "sunpaper",
		HealthPort:  0,
		LogLevel:    "info",
	}
}

// fileConfig mirrors Config for the YAML config file. Pointer fields
// distinguish "absent" from zero values so the file only overrides what
// it actually sets.
type fileConfig struct {
	City        *string  `yaml:"city"`
	Folder      *string  `yaml:"folder"`
	RateMinutes *int     `yaml:"rate"`
	TempPath    *string  `yaml:"temp"`
	DuskIndex   *int     `yaml:"dusk_id"`
	Command     *string  `yaml:"command"`
	NoInitial   *bool    `yaml:"no_initial"`
	Latitude    *float64 `yaml:"latitude"`
	Longitude   *float64 `yaml:"longitude"`

	MQTT struct {
		Broker   *string `yaml:"broker"`
		Port     *int    `yaml:"port"`
		User     *string `yaml:"user"`
		Password *string `yaml:"password"`
		ClientID *string `yaml:"client_id"`
	} `yaml:"mqtt"`

	HealthPort *int    `yaml:"health_port"`
	LogLevel   *string `yaml:"log_level"`
}

// FileFromArgs returns the config file path from the command line
// (--config PATH or --config=PATH) or the SUNPAPER_CONFIG environment
// variable. The file is applied before env and flags so both still win.
func FileFromArgs(args []string) string {
	for i, arg := range args {
		if arg == "--config" && i+1 < len(args) {
			return args[i+1]
		}
		if strings.HasPrefix(arg, "--config=") {
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return os.Getenv("SUNPAPER_CONFIG")
}

// LoadFromFile loads configuration from a YAML file
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fc.City != nil {
		c.City = *fc.City
	}
	if fc.Folder != nil {
		c.Folder = *fc.Folder
	}
	if fc.RateMinutes != nil {
		c.RateMinutes = *fc.RateMinutes
	}
	if fc.TempPath != nil {
		c.TempPath = *fc.TempPath
	}
	if fc.DuskIndex != nil {
		c.DuskIndex = *fc.DuskIndex
	}
	if fc.Command != nil {
		c.Command = *fc.Command
	}
	if fc.NoInitial != nil {
		c.NoInitial = *fc.NoInitial
	}
	if fc.Latitude != nil && fc.Longitude != nil {
		c.Latitude = *fc.Latitude
		c.Longitude = *fc.Longitude
		c.CoordsSet = true
	}
	if fc.MQTT.Broker != nil {
		c.MQTTBroker = *fc.MQTT.Broker
	}
	if fc.MQTT.Port != nil {
		c.MQTTPort = *fc.MQTT.Port
	}
	if fc.MQTT.User != nil {
		c.MQTTUser = *fc.MQTT.User
	}
	if fc.MQTT.Password != nil {
		c.MQTTPassword = *fc.MQTT.Password
	}
	if fc.MQTT.ClientID != nil {
		c.MQTTClientID = *fc.MQTT.ClientID
	}
	if fc.HealthPort != nil {
		c.HealthPort = *fc.HealthPort
	}
	if fc.LogLevel != nil {
		c.LogLevel = *fc.LogLevel
	}

	c.ConfigFile = path
	return nil
}

// LoadFromEnv loads configuration from environment variables with SUNPAPER_ prefix
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("SUNPAPER_CITY"); v != "" {
		c.City = v
	}
	if v := os.Getenv("SUNPAPER_FOLDER"); v != "" {
		c.Folder = v
	}
	if v := os.Getenv("SUNPAPER_RATE"); v != "" {
		if rate, err := strconv.Atoi(v); err == nil {
			c.RateMinutes = rate
		}
	}
	if v := os.Getenv("SUNPAPER_TEMP"); v != "" {
		c.TempPath = v
	}
	if v := os.Getenv("SUNPAPER_DUSK_ID"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			c.DuskIndex = id
		}
	}
	if v := os.Getenv("SUNPAPER_COMMAND"); v != "" {
		c.Command = v
	}
	if v := os.Getenv("SUNPAPER_NO_INITIAL"); v != "" {
		if skip, err := strconv.ParseBool(v); err == nil {
			c.NoInitial = skip
		}
	}

	// Coordinates only count when both are present
	lat, latOK := os.LookupEnv("SUNPAPER_LATITUDE")
	lon, lonOK := os.LookupEnv("SUNPAPER_LONGITUDE")
	if latOK && lonOK {
		latF, latErr := strconv.ParseFloat(lat, 64)
		lonF, lonErr := strconv.ParseFloat(lon, 64)
		if latErr == nil && lonErr == nil {
			c.Latitude = latF
			c.Longitude = lonF
			c.CoordsSet = true
		}
	}

	// MQTT configuration
	if v := os.Getenv("SUNPAPER_MQTT_BROKER"); v != "" {
		c.MQTTBroker = v
	}
	if v := os.Getenv("SUNPAPER_MQTT_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.MQTTPort = port
		}
	}
	if v := os.Getenv("SUNPAPER_MQTT_USER"); v != "" {
		c.MQTTUser = v
	}
	if v := os.Getenv("SUNPAPER_MQTT_PASSWORD"); v != "" {
		c.MQTTPassword = v
	}
	if v := os.Getenv("SUNPAPER_MQTT_CLIENT_ID"); v != "" {
		c.MQTTClientID = v
	}

	// Service configuration
	if v := os.Getenv("SUNPAPER_HEALTH_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.HealthPort = port
		}
	}
	if v := os.Getenv("SUNPAPER_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// LoadFromFlags parses command-line flags and overrides config values.
// The two positional arguments are the city name and the image folder.
func (c *Config) LoadFromFlags() {
	pflag.IntVarP(&c.RateMinutes, "rate", "r", c.RateMinutes, "Refresh rate in minutes")
	pflag.StringVarP(&c.TempPath, "temp", "t", c.TempPath, "Rendered wallpaper output path")
	pflag.IntVarP(&c.DuskIndex, "dusk-id", "i", c.DuskIndex, "Index of the image aligned with dusk")
	pflag.StringVarP(&c.Command, "command", "c", c.Command, `Wallpaper command, "{}" is replaced with the rendered path`)
	pflag.BoolVar(&c.NoInitial, "no-initial", c.NoInitial, "Skip setting the middle image at startup")

	lat := pflag.Float64("latitude", c.Latitude, "Geographic latitude, bypasses the city lookup")
	lon := pflag.Float64("longitude", c.Longitude, "Geographic longitude, bypasses the city lookup")

	pflag.StringVar(&c.MQTTBroker, "mqtt-broker", c.MQTTBroker, "MQTT broker hostname (empty disables telemetry)")
	pflag.IntVar(&c.MQTTPort, "mqtt-port", c.MQTTPort, "MQTT broker port")
	pflag.StringVar(&c.MQTTUser, "mqtt-user", c.MQTTUser, "MQTT username")
	pflag.StringVar(&c.MQTTPassword, "mqtt-password", c.MQTTPassword, "MQTT password")
	pflag.StringVar(&c.MQTTClientID, "mqtt-client-id", c.MQTTClientID, "MQTT client ID")

	pflag.IntVar(&c.HealthPort, "health-port", c.HealthPort, "Health check HTTP port (0 disables)")
	pflag.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (debug, info, warn, error)")
	pflag.StringVar(&c.ConfigFile, "config", c.ConfigFile, "YAML config file path")

	pflag.Parse()

	if pflag.CommandLine.Changed("latitude") && pflag.CommandLine.Changed("longitude") {
		c.Latitude = *lat
		c.Longitude = *lon
		c.CoordsSet = true
	}

	args := pflag.Args()
	if len(args) > 0 {
		c.City = args[0]
	}
	if len(args) > 1 {
		c.Folder = args[1]
	}
}

// Validate checks that required configuration values are set
func (c *Config) Validate() error {
	if c.City == "" && !c.CoordsSet {
		return fmt.Errorf("city is required (or pass --latitude and --longitude)")
	}
	if c.Folder == "" {
		return fmt.Errorf("image folder is required")
	}
	if c.RateMinutes < 1 {
		return fmt.Errorf("rate must be at least 1 minute")
	}
	if c.DuskIndex < 0 {
		return fmt.Errorf("dusk image index must not be negative")
	}
	if c.TempPath == "" {
		return fmt.Errorf("output path is required")
	}
	if c.Command != "" && !strings.Contains(c.Command, "{}") {
		return fmt.Errorf(`wallpaper command must contain the "{}" placeholder`)
	}
	if c.MQTTBroker != "" && (c.MQTTPort <= 0 || c.MQTTPort > 65535) {
		return fmt.Errorf("MQTT port must be between 1 and 65535")
	}
	if c.HealthPort < 0 || c.HealthPort > 65535 {
		return fmt.Errorf("health port must be between 0 and 65535")
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// MQTTAddress returns the full MQTT broker address
func (c *Config) MQTTAddress() string {
	return fmt.Sprintf("tcp://%s:%d", c.MQTTBroker, c.MQTTPort)
}

// MQTTEnabled reports whether a telemetry broker is configured
func (c *Config) MQTTEnabled() bool {
	return c.MQTTBroker != ""
}

// HealthEnabled reports whether the health endpoint is configured
func (c *Config) HealthEnabled() bool {
	return c.HealthPort > 0
}
