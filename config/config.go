package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server        ServerConfig
	Stripe        StripeConfig
	Form          FormConfig
	EventTriggers EventTriggerConfig
	Logging       LoggingConfig
}

type ServerConfig struct {
	Port           string
	GinMode        string
	AppEnv         string
	BaseURL        string
	AllowedOrigins []string
}

type StripeConfig struct {
	LiveSecretKey       string
	LivePublishableKey  string
	TestSecretKey       string
	TestPublishableKey  string
	TestMode            bool
	Locale              string
	CurrencyScale       int64
	StatementDescriptor string
}

type FormConfig struct {
	PresetAmounts     []string
	DefaultAmount     string
	AmountsAsSelect   bool
	AllowCustomAmount bool
	AllowMonthly      bool
	MonthlyNote       string
	SuccessMessage    string
	MinDonationAmount float64
	FieldsDisplayed   []string
	FieldsRequired    []string
	AddressFields     []string
	CustomAmountLabel string
}

type EventTriggerConfig struct {
	DonationCompletedTriggerURL string
}

type LoggingConfig struct {
	Level string
	Dir   string
}

const defaultMonthlyNote = "We will automatically receive your gift each month. " +
	"If you ever wish to change the frequency or amount of your gift, please contact us."

const defaultSuccessMessage = "<p>Donation received. Thank you for your contribution!</p>"

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("PORT", "8081")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("BASE_URL", "https://donate.madcollective.com")
	v.SetDefault("ALLOWED_CORS_ORIGINS", "https://madcollective.com,https://www.madcollective.com")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "/app/logs")

	v.SetDefault("STRIPE_TEST_MODE", false)
	v.SetDefault("STRIPE_LOCALE", "en-US")
	v.SetDefault("STRIPE_CURRENCY_SCALE", 100)
	v.SetDefault("STRIPE_STATEMENT_DESCRIPTOR", "Donation")

	v.SetDefault("FORM_PRESET_AMOUNTS", "25,150,500,1000")
	v.SetDefault("FORM_DEFAULT_AMOUNT", "150")
	v.SetDefault("FORM_AMOUNTS_AS_SELECT", false)
	v.SetDefault("FORM_ALLOW_CUSTOM_AMOUNT", true)
	v.SetDefault("FORM_ALLOW_MONTHLY_DONATION", true)
	v.SetDefault("FORM_MONTHLY_NOTE", defaultMonthlyNote)
	v.SetDefault("FORM_SUCCESS_MESSAGE", defaultSuccessMessage)
	v.SetDefault("FORM_MIN_DONATION_AMOUNT", 1.0)
	v.SetDefault("FORM_FIELDS_DISPLAYED", "name,email,phone")
	v.SetDefault("FORM_FIELDS_REQUIRED", "name,email")
	v.SetDefault("FORM_ADDRESS_FIELDS", "")
	v.SetDefault("FORM_CUSTOM_AMOUNT_LABEL", "")

	// Automatically read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	_ = v.ReadInConfig() //nolint:errcheck // Ignore error if .env file doesn't exist

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("PORT"),
			GinMode:        v.GetString("GIN_MODE"),
			AppEnv:         v.GetString("APP_ENV"),
			BaseURL:        v.GetString("BASE_URL"),
			AllowedOrigins: splitList(v.GetString("ALLOWED_CORS_ORIGINS")),
		},
		Stripe: StripeConfig{
			LiveSecretKey:       v.GetString("STRIPE_LIVE_SECRET_KEY"),
			LivePublishableKey:  v.GetString("STRIPE_LIVE_PUBLISHABLE_KEY"),
			TestSecretKey:       v.GetString("STRIPE_TEST_SECRET_KEY"),
			TestPublishableKey:  v.GetString("STRIPE_TEST_PUBLISHABLE_KEY"),
			TestMode:            v.GetBool("STRIPE_TEST_MODE"),
			Locale:              v.GetString("STRIPE_LOCALE"),
			CurrencyScale:       v.GetInt64("STRIPE_CURRENCY_SCALE"),
			StatementDescriptor: v.GetString("STRIPE_STATEMENT_DESCRIPTOR"),
		},
		Form: FormConfig{
			PresetAmounts:     splitList(v.GetString("FORM_PRESET_AMOUNTS")),
			DefaultAmount:     v.GetString("FORM_DEFAULT_AMOUNT"),
			AmountsAsSelect:   v.GetBool("FORM_AMOUNTS_AS_SELECT"),
			AllowCustomAmount: v.GetBool("FORM_ALLOW_CUSTOM_AMOUNT"),
			AllowMonthly:      v.GetBool("FORM_ALLOW_MONTHLY_DONATION"),
			MonthlyNote:       v.GetString("FORM_MONTHLY_NOTE"),
			SuccessMessage:    v.GetString("FORM_SUCCESS_MESSAGE"),
			MinDonationAmount: v.GetFloat64("FORM_MIN_DONATION_AMOUNT"),
			FieldsDisplayed:   splitList(v.GetString("FORM_FIELDS_DISPLAYED")),
			FieldsRequired:    splitList(v.GetString("FORM_FIELDS_REQUIRED")),
			AddressFields:     splitList(v.GetString("FORM_ADDRESS_FIELDS")),
			CustomAmountLabel: v.GetString("FORM_CUSTOM_AMOUNT_LABEL"),
		},
		EventTriggers: EventTriggerConfig{
			DonationCompletedTriggerURL: v.GetString("DONATION_COMPLETED_TRIGGER_URL"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			Dir:   v.GetString("LOG_DIR"),
		},
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// splitList parses a comma-separated value into a slice, dropping blanks.
func splitList(value string) []string {
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	// Stripe keys for the active mode
	if c.Stripe.TestMode {
		if c.Stripe.TestSecretKey == "" {
			return fmt.Errorf("STRIPE_TEST_SECRET_KEY is required in test mode")
		}
		if c.Stripe.TestPublishableKey == "" {
			return fmt.Errorf("STRIPE_TEST_PUBLISHABLE_KEY is required in test mode")
		}
	} else {
		if c.Stripe.LiveSecretKey == "" {
			return fmt.Errorf("STRIPE_LIVE_SECRET_KEY is required")
		}
		if c.Stripe.LivePublishableKey == "" {
			return fmt.Errorf("STRIPE_LIVE_PUBLISHABLE_KEY is required")
		}
	}

	if c.Stripe.CurrencyScale <= 0 {
		return fmt.Errorf("STRIPE_CURRENCY_SCALE must be positive")
	}

	if len(c.Form.PresetAmounts) == 0 && !c.Form.AllowCustomAmount {
		return fmt.Errorf("FORM_PRESET_AMOUNTS is required when custom amounts are disabled")
	}

	// Server configuration
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Server.BaseURL == "" {
		return fmt.Errorf("BASE_URL is required")
	}
	if len(c.Server.AllowedOrigins) == 0 {
		return fmt.Errorf("ALLOWED_CORS_ORIGINS is required")
	}

	return nil
}

// StripeSecretKey returns the secret key for the configured mode
func (c *Config) StripeSecretKey() string {
	if c.Stripe.TestMode {
		return c.Stripe.TestSecretKey
	}
	return c.Stripe.LiveSecretKey
}

// StripePublishableKey returns the publishable key for the configured mode
func (c *Config) StripePublishableKey() string {
	if c.Stripe.TestMode {
		return c.Stripe.TestPublishableKey
	}
	return c.Stripe.LivePublishableKey
}

// StatementDescriptor returns the configured descriptor truncated to the
// 22-character limit Stripe enforces on card statements.
func (c *Config) StatementDescriptor() string {
	descriptor := c.Stripe.StatementDescriptor
	if len(descriptor) > 22 {
		return descriptor[:22]
	}
	return descriptor
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development" || c.Server.GinMode == "debug"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.AppEnv == "production"
}
