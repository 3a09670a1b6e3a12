package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/paologalligit/seatrank/constant"
)

// Config is the runtime configuration of a seatrank run.
type Config struct {
	ShowingsFile string `mapstructure:"SHOWINGS_FILE" validate:"required"`
	SeatLogFile  string `mapstructure:"SEAT_LOG_FILE"`
	TopN         int    `mapstructure:"TOP_N" validate:"gte=0"`
	Workers      int    `mapstructure:"WORKERS" validate:"gte=1,lte=64"`
	LogPath      string `mapstructure:"LOG_PATH"`
	Debug        bool   `mapstructure:"DEBUG"`
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	SchemaFile   string `mapstructure:"SCHEMA_FILE" validate:"required"`
}

var validate = validator.New()

// New returns a viper instance with every key defaulted and bound to the
// environment.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("SHOWINGS_FILE", constant.DEFAULT_SHOWINGS_FILE)
	v.SetDefault("SEAT_LOG_FILE", constant.DEFAULT_SEAT_LOG_FILE)
	v.SetDefault("TOP_N", constant.DEFAULT_TOP_N)
	v.SetDefault("WORKERS", constant.DEFAULT_WORKERS)
	v.SetDefault("LOG_PATH", constant.DEFAULT_LOG_PATH)
	v.SetDefault("DEBUG", false)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("SCHEMA_FILE", constant.DEFAULT_SCHEMA_FILE)
	v.AutomaticEnv()
	return v
}

// Load reads .env (if present), the optional config file and the
// environment into v, then decodes and validates the result.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	_ = godotenv.Load() // Load .env if present, ignore error

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cfg and reports every invalid field at once.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("invalid config: %w", err)
	}
	msgs := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field(), simpleErrorMessage(fe)))
	}
	sort.Strings(msgs)
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func simpleErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "gte":
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("Must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("Invalid %s field", fe.Field())
	}
}
