package configs

import (
	"fmt"
	"strings"

	"log-report/internal/shared/validators"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps command line flag names to config keys.
var flagKeys = map[string]string{
	"log-level":        "log.level",
	"top":              "report.top_limit",
	"user-agents":      "report.show_user_agents",
	"metrics-textfile": "metrics.textfile",
}

// LoadConfig builds the configuration from defaults, an optional yaml file and
// the flags that were explicitly set, then validates it.
// An empty configPath skips the file entirely; flags may be nil.
var LoadConfig = func(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Read from file
	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	// Flags win over file values, but only when given on the command line
	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil || !flag.Changed {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %q: %w", name, err)
			}
		}
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its validate tags.
func Validate(cfg *Config) error {
	validate := validators.New()
	if err := validate.Struct(cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("report.logfile", DefaultLogFile)
	v.SetDefault("report.top_limit", 3)
	v.SetDefault("report.show_user_agents", false)
	v.SetDefault("metrics.textfile", "")
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path (e.g., "report.toplimit")
	if e.StructNamespace() != "" {
		// Extract nested field path (e.g., "Config.Report.TopLimit" -> "report.toplimit")
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			// Skip "Config" prefix, convert to lowercase with dots
			field = strings.ToLower(strings.Join(parts[1:], "."))
		}
	}

	var msg string
	switch tag {
	case "required":
		msg = fmt.Sprintf("%s (required)", field)
	case "min":
		msg = fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "loglevel":
		msg = fmt.Sprintf("%s (unknown log level %q)", field, e.Value())
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}
