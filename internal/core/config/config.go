package config

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Redis holds the session-store connection settings.
	Redis RedisConfig `mapstructure:",squash"`

	// Checkout holds the pricing and payment-gateway settings.
	Checkout CheckoutConfig `mapstructure:",squash"`
}

// RedisConfig holds the settings for the Redis-backed session store.
type RedisConfig struct {
	// URL is the Redis connection string, e.g. redis://localhost:6379/0.
	URL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379/0"`
	// SessionTTLMinutes is how long idle carts and wishlists live, in minutes.
	// 0 means no expiration.
	SessionTTLMinutes int `mapstructure:"SESSION_TTL_MINUTES" default:"1440"`
}

// CheckoutConfig holds the shipping, tax and payment-gateway knobs.
type CheckoutConfig struct {
	// FreeShippingThreshold is the subtotal at which shipping becomes free.
	FreeShippingThreshold float64 `mapstructure:"FREE_SHIPPING_THRESHOLD" default:"500"`
	// BaseShippingFee is the flat fee charged below the free threshold.
	BaseShippingFee float64 `mapstructure:"BASE_SHIPPING_FEE" default:"15"`
	// PerItemShippingFee is added per cart item below the free threshold.
	PerItemShippingFee float64 `mapstructure:"PER_ITEM_SHIPPING_FEE" default:"2"`
	// MaxShippingFee caps the computed shipping cost.
	MaxShippingFee float64 `mapstructure:"MAX_SHIPPING_FEE" default:"50"`
	// TaxRate is the flat tax fraction applied to the subtotal.
	TaxRate float64 `mapstructure:"TAX_RATE" default:"0.08"`

	// GatewayMode selects the payment gateway: "simulated" or "http".
	GatewayMode string `mapstructure:"PAYMENT_GATEWAY_MODE" default:"simulated"`
	// GatewayURL is the charge endpoint for the http gateway mode.
	GatewayURL string `mapstructure:"PAYMENT_GATEWAY_URL"`
	// FailureRate is the simulated gateway's decline probability (0..1).
	FailureRate float64 `mapstructure:"PAYMENT_FAILURE_RATE" default:"0.05"`
	// LatencyMinMs is the lower bound of the simulated gateway latency.
	LatencyMinMs int `mapstructure:"PAYMENT_LATENCY_MIN_MS" default:"2000"`
	// LatencyMaxMs is the upper bound of the simulated gateway latency.
	LatencyMaxMs int `mapstructure:"PAYMENT_LATENCY_MAX_MS" default:"5000"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	if err := validateCheckout(&config.Checkout); err != nil {
		return nil, err
	}

	return &config, nil
}

// validateCheckout rejects values the pricing and gateway code cannot work with.
func validateCheckout(c *CheckoutConfig) error {
	if c.TaxRate < 0 || c.TaxRate >= 1 {
		return fmt.Errorf("TAX_RATE must be in [0,1): got %v", c.TaxRate)
	}
	if c.FailureRate < 0 || c.FailureRate > 1 {
		return fmt.Errorf("PAYMENT_FAILURE_RATE must be in [0,1]: got %v", c.FailureRate)
	}
	if c.LatencyMinMs < 0 || c.LatencyMaxMs < c.LatencyMinMs {
		return fmt.Errorf("invalid latency window: min=%d max=%d", c.LatencyMinMs, c.LatencyMaxMs)
	}
	if c.GatewayMode != "simulated" && c.GatewayMode != "http" {
		return fmt.Errorf("PAYMENT_GATEWAY_MODE must be simulated or http: got %q", c.GatewayMode)
	}
	if c.GatewayMode == "http" && c.GatewayURL == "" {
		return errors.New("PAYMENT_GATEWAY_URL is required when PAYMENT_GATEWAY_MODE=http")
	}
	return nil
}

// processTags iterates over the struct fields and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			v.BindEnv(key)
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		required := field.Tag.Get("required")
		if required == "true" {
			value := val.Field(i)
			if isZero(value) {
				key := field.Tag.Get("mapstructure")
				return fmt.Errorf("missing required configuration: %s", key)
			}
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
