package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Config carries every recognized plugin option. It is built once in main and
// passed into services at construction time; nothing reads the environment
// after startup.
type Config struct {
	TablePrefix string
	SiteURL     string

	Search     SearchConfig
	Properties PropertiesConfig
	Currency   CurrencyConfig

	// Recognized for compatibility with existing installs; no code path
	// consults these yet.
	CacheSearchResults   bool
	CacheDurationSeconds int
}

type SearchConfig struct {
	DefaultPerPage   int
	MaxPerPage       int
	SearchableFields []string
	DefaultSort      string
}

type PropertiesConfig struct {
	RequiredFields []string

	EnableTenure       bool
	EnableAgentFields  bool
	EnableSEOFields    bool
	EnableCoordinates  bool
	EnableVirtualTours bool

	Images ImageConfig
}

type ImageConfig struct {
	Path              string
	MaxSizeKB         int
	AllowedExtensions []string
}

type CurrencyConfig struct {
	Default            string
	Supported          map[string]CurrencyInfo
	Decimals           int
	DecimalSeparator   string
	ThousandsSeparator string
}

type CurrencyInfo struct {
	Symbol string
	Name   string
}

// Load builds the configuration from defaults and environment overrides.
func Load() *Config {
	return &Config{
		TablePrefix: envOrDefault("REALESTATE_TABLE_PREFIX", "real_estate_"),
		SiteURL:     envOrDefault("SITE_URL", "http://localhost:8080"),
		Search: SearchConfig{
			DefaultPerPage: envIntOrDefault("SEARCH_PER_PAGE", 12),
			MaxPerPage:     envIntOrDefault("SEARCH_MAX_PER_PAGE", 50),
			SearchableFields: envListOrDefault("SEARCH_FIELDS", []string{
				"title", "description", "address", "city", "state",
				"zip_code", "agent_name", "meta_title", "meta_description",
			}),
			DefaultSort: envOrDefault("SEARCH_DEFAULT_SORT", "latest"),
		},
		Properties: PropertiesConfig{
			RequiredFields: envListOrDefault("PROPERTY_REQUIRED_FIELDS", []string{
				"title", "property_type_id", "price", "address", "city",
			}),
			EnableTenure:       envBoolOrDefault("ENABLE_TENURE", true),
			EnableAgentFields:  envBoolOrDefault("ENABLE_AGENT_FIELDS", true),
			EnableSEOFields:    envBoolOrDefault("ENABLE_SEO_FIELDS", true),
			EnableCoordinates:  envBoolOrDefault("ENABLE_COORDINATES", true),
			EnableVirtualTours: envBoolOrDefault("ENABLE_VIRTUAL_TOURS", true),
			Images: ImageConfig{
				Path:              envOrDefault("IMAGE_PATH", "properties"),
				MaxSizeKB:         envIntOrDefault("IMAGE_MAX_SIZE_KB", 2048),
				AllowedExtensions: envListOrDefault("IMAGE_ALLOWED_TYPES", []string{"jpg", "jpeg", "png", "webp"}),
			},
		},
		Currency: CurrencyConfig{
			Default: envOrDefault("DEFAULT_CURRENCY", "USD"),
			Supported: map[string]CurrencyInfo{
				"USD": {Symbol: "$", Name: "US Dollar"},
				"SGD": {Symbol: "S$", Name: "Singapore Dollar"},
				"EUR": {Symbol: "€", Name: "Euro"},
				"GBP": {Symbol: "£", Name: "British Pound"},
				"AUD": {Symbol: "A$", Name: "Australian Dollar"},
				"CAD": {Symbol: "C$", Name: "Canadian Dollar"},
			},
			Decimals:           envIntOrDefault("CURRENCY_DECIMALS", 2),
			DecimalSeparator:   envOrDefault("CURRENCY_DECIMAL_SEP", "."),
			ThousandsSeparator: envOrDefault("CURRENCY_THOUSANDS_SEP", ","),
		},
		CacheSearchResults:   envBoolOrDefault("CACHE_SEARCH_RESULTS", false),
		CacheDurationSeconds: envIntOrDefault("CACHE_DURATION", 3600),
	}
}

// FormatPrice renders an amount with the currency symbol and the configured
// separators, e.g. 1234567.5 USD -> "$1,234,567.50".
func (c *Config) FormatPrice(amount decimal.Decimal, currency string) string {
	if currency == "" {
		currency = c.Currency.Default
	}
	symbol := "$"
	if info, ok := c.Currency.Supported[currency]; ok {
		symbol = info.Symbol
	}

	fixed := amount.StringFixed(int32(c.Currency.Decimals))
	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart := fixed
	fracPart := ""
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		intPart, fracPart = fixed[:i], fixed[i+1:]
	}

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteString(c.Currency.ThousandsSeparator)
		}
		grouped.WriteRune(digit)
	}

	out := symbol + grouped.String()
	if neg {
		out = "-" + out
	}
	if fracPart != "" {
		out += c.Currency.DecimalSeparator + fracPart
	}
	return out
}

// SupportedCurrency reports whether the code is in the configured set.
func (c *Config) SupportedCurrency(code string) bool {
	_, ok := c.Currency.Supported[code]
	return ok
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envIntOrDefault(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

func envBoolOrDefault(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return b
}

func envListOrDefault(key string, def []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
