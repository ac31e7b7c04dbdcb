package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults applied when the matching environment variable is unset.
const (
	DefaultAppAddr        = ":8080"
	DefaultStylesheetPath = "/static/css/globals.css"
	DefaultFontSans       = "Inter"
	DefaultFontMono       = "Roboto Mono"
)

// Provider exposes configuration values to the rest of the application.
// Services depend on this interface rather than the concrete Config so tests
// can substitute their own values.
type Provider interface {
	GetAppAddr() string
	GetAppBaseURL() string
	GetContentPath() string
	GetContentHotReload() bool
	GetStylesheetPath() string
	GetFontSans() string
	GetFontMono() string
}

// Config holds all configuration for the application.
type Config struct {
	AppAddr          string
	AppBaseURL       string
	ContentPath      string
	ContentHotReload bool
	StylesheetPath   string
	FontSans         string
	FontMono         string
}

var _ Provider = (*Config)(nil)

// New loads configuration from a .env file (if present) and the environment.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() *Config {
	return &Config{
		AppAddr:          getEnv("APP_ADDR", DefaultAppAddr),
		AppBaseURL:       os.Getenv("APP_BASE_URL"),
		ContentPath:      os.Getenv("CONTENT_PATH"),
		ContentHotReload: getBool("CONTENT_HOT_RELOAD", false),
		StylesheetPath:   getEnv("STYLESHEET_PATH", DefaultStylesheetPath),
		FontSans:         getEnv("FONT_SANS", DefaultFontSans),
		FontMono:         getEnv("FONT_MONO", DefaultFontMono),
	}
}

func (c *Config) GetAppAddr() string        { return c.AppAddr }
func (c *Config) GetAppBaseURL() string     { return c.AppBaseURL }
func (c *Config) GetContentPath() string    { return c.ContentPath }
func (c *Config) GetContentHotReload() bool { return c.ContentHotReload }
func (c *Config) GetStylesheetPath() string { return c.StylesheetPath }
func (c *Config) GetFontSans() string       { return c.FontSans }
func (c *Config) GetFontMono() string       { return c.FontMono }

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("Invalid boolean for %s=%q, using %t", key, raw, fallback)
		return fallback
	}
	return v
}
