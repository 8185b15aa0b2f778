package configs

import (
	"fmt"
	"strings"

	"log-viewer/internal/shared/validators"

	"github.com/spf13/viper"
)

// LoadConfig reads configuration from file and validates it.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	setDefaults(v)

	// Environment overrides, e.g. LOG_VIEWER_LOG_STORAGE_ROOT_DIR
	v.SetEnvPrefix("log_viewer")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read from file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.format", "json")
	v.SetDefault("log_storage.access_file", "access.log")
	v.SetDefault("log_storage.error_file", "error.log")
	v.SetDefault("log_storage.timezone", "Local")
	v.SetDefault("query.default_page_size", 50)
	v.SetDefault("query.max_page_size", 1000)
	v.SetDefault("query.safety_margin", 1000)
	v.SetDefault("tail.poll_interval_ms", 2000)
	v.SetDefault("tail.debounce_ms", 100)
	v.SetDefault("user_agent.cache_size", 4096)
	v.SetDefault("stream.partitions", 2)
	v.SetDefault("stream.buffer", 256)
	v.SetDefault("stream.subscriber_buffer", 64)
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path (e.g., "server.port")
	if e.StructNamespace() != "" {
		// Extract nested field path (e.g., "Config.Server.Port" -> "server.port")
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			// Skip "Config" prefix, convert to lowercase with dots
			fieldPath := strings.ToLower(strings.Join(parts[1:], "."))
			field = fieldPath
		}
	}

	var msg string
	switch tag {
	case "required":
		msg = fmt.Sprintf("%s (required)", field)
	case "min":
		msg = fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		msg = fmt.Sprintf("%s (max=%s)", field, e.Param())
	case "oneof":
		msg = fmt.Sprintf("%s (oneof=%s)", field, e.Param())
	case validators.TagLogFileName:
		msg = fmt.Sprintf("%s (must be a file name inside root_dir)", field)
	case "gtefield":
		msg = fmt.Sprintf("%s (gtefield=%s)", field, strings.ToLower(e.Param()))
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}
