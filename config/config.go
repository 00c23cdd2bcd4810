package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Log     LogConfig     `yaml:"log"`
	Redis   RedisConfig   `yaml:"redis"`
	Kafka   KafkaConfig   `yaml:"kafka"`
	Booking BookingConfig `yaml:"booking"`
	Catalog CatalogConfig `yaml:"catalog"`
}

type HTTPConfig struct {
	Address        string   `yaml:"address"`
	SwaggerDir     string   `yaml:"swagger_dir"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingTopic       string   `yaml:"booking_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type BookingConfig struct {
	SubmissionLockSeconds int `yaml:"submission_lock_seconds"`
	RoutesCacheTTL        int `yaml:"routes_cache_ttl_seconds"`
}

type CatalogConfig struct {
	Routes []RouteConfig `yaml:"routes"`
}

type RouteConfig struct {
	Route       string `yaml:"route"`
	VanPriceLKR int64  `yaml:"van_price_lkr"`
	CarPriceLKR int64  `yaml:"car_price_lkr"`
}

// DefaultRoutes is the published price table used when the config file has none.
var DefaultRoutes = []RouteConfig{
	{Route: "Trinco to Sigiriya", VanPriceLKR: 22000, CarPriceLKR: 14000},
	{Route: "Trinco to Kandy", VanPriceLKR: 30000, CarPriceLKR: 24000},
	{Route: "Trinco to Colombo", VanPriceLKR: 46000, CarPriceLKR: 30000},
	{Route: "Trinco to Jaffna", VanPriceLKR: 35000, CarPriceLKR: 26000},
	{Route: "Trinco to Yala", VanPriceLKR: 50000, CarPriceLKR: 35000},
	{Route: "Trinco to Arugambay", VanPriceLKR: 45000, CarPriceLKR: 28000},
	{Route: "Airport Pickup and Dropping", VanPriceLKR: 36000, CarPriceLKR: 27000},
	{Route: "City Tour", VanPriceLKR: 18000, CarPriceLKR: 17000},
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML config bytes and fills in defaults for anything left unset.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Booking.SubmissionLockSeconds <= 0 {
		c.Booking.SubmissionLockSeconds = 30
	}
	if c.Booking.RoutesCacheTTL <= 0 {
		c.Booking.RoutesCacheTTL = 300
	}
	if len(c.Catalog.Routes) == 0 {
		c.Catalog.Routes = append([]RouteConfig(nil), DefaultRoutes...)
	}
}
