package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// CartConfig holds the cart storage settings supplied by the environment.
type CartConfig struct {
	CookieKey    string
	CookieMaxAge int
	CookieSecure bool
	KeyPrefix    string
	KVTTL        time.Duration

	ItemBaseURL       string
	ItemLookupTimeout time.Duration
	ItemCacheSize     int
	ItemCacheTTL      time.Duration
}

func LoadEnv() error {
	// Try to load .env file if it exists (for local development)
	// In production the variables are set directly on the process
	err := godotenv.Load()
	if err != nil {
		// .env file not found is not an error
		return nil
	}
	return nil
}

// ValidateEnv checks that critical environment variables are set.
// Returns an error if any critical variable is missing.
func ValidateEnv() error {
	var missing []string

	// Critical variables - application cannot function without these
	for _, key := range []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"CART_COOKIE_KEY",
		"CART_COOKIE_MAXAGE",
		"CART_KEY_PREFIX",
		"ITEM_BASE_URL",
	} {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("critical environment variables not set: %v", missing)
	}

	// Non-critical variables - log warnings but don't fail
	if os.Getenv("FRONTEND_URL") == "" {
		log.Println("WARNING: FRONTEND_URL not set - CORS may not work correctly")
	}
	if os.Getenv("ITEM_CACHE_SIZE") == "" {
		log.Println("WARNING: ITEM_CACHE_SIZE not set - every new cart line hits the item service")
	}

	return nil
}

// LoadCartConfig reads the cart settings. The cookie name, cookie max-age,
// key prefix and item base URL have no defaults; the rest are optional.
func LoadCartConfig() (CartConfig, error) {
	cfg := CartConfig{
		CookieKey:   os.Getenv("CART_COOKIE_KEY"),
		KeyPrefix:   os.Getenv("CART_KEY_PREFIX"),
		ItemBaseURL: os.Getenv("ITEM_BASE_URL"),
	}
	if cfg.CookieKey == "" || cfg.KeyPrefix == "" || cfg.ItemBaseURL == "" {
		return CartConfig{}, fmt.Errorf("CART_COOKIE_KEY, CART_KEY_PREFIX and ITEM_BASE_URL are required")
	}

	maxAge, err := strconv.Atoi(os.Getenv("CART_COOKIE_MAXAGE"))
	if err != nil {
		return CartConfig{}, fmt.Errorf("invalid CART_COOKIE_MAXAGE: %w", err)
	}
	cfg.CookieMaxAge = maxAge

	if cfg.CookieSecure, err = strconv.ParseBool(GetEnv("CART_COOKIE_SECURE", "false")); err != nil {
		return CartConfig{}, fmt.Errorf("invalid CART_COOKIE_SECURE: %w", err)
	}
	if cfg.KVTTL, err = time.ParseDuration(GetEnv("CART_KV_TTL", "0s")); err != nil {
		return CartConfig{}, fmt.Errorf("invalid CART_KV_TTL: %w", err)
	}
	if cfg.ItemLookupTimeout, err = time.ParseDuration(GetEnv("ITEM_LOOKUP_TIMEOUT", "5s")); err != nil {
		return CartConfig{}, fmt.Errorf("invalid ITEM_LOOKUP_TIMEOUT: %w", err)
	}
	if cfg.ItemCacheSize, err = strconv.Atoi(GetEnv("ITEM_CACHE_SIZE", "0")); err != nil {
		return CartConfig{}, fmt.Errorf("invalid ITEM_CACHE_SIZE: %w", err)
	}
	if cfg.ItemCacheTTL, err = time.ParseDuration(GetEnv("ITEM_CACHE_TTL", "1m")); err != nil {
		return CartConfig{}, fmt.Errorf("invalid ITEM_CACHE_TTL: %w", err)
	}

	return cfg, nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
