package configs

// Config holds all configuration for the application.
type Config struct {
	Server     ServerConfig     `mapstructure:"server" validate:"required"`
	Log        LogConfig        `mapstructure:"log" validate:"required"`
	LogStorage LogStorageConfig `mapstructure:"log_storage" validate:"required"`
	Query      QueryConfig      `mapstructure:"query" validate:"required"`
	Tail       TailConfig       `mapstructure:"tail" validate:"required"`
	UserAgent  UserAgentConfig  `mapstructure:"user_agent" validate:"required"`
	Stream     StreamConfig     `mapstructure:"stream" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=json console"`
}

// LogStorageConfig points at the directory holding the live and rotated log files.
type LogStorageConfig struct {
	RootDir    string `mapstructure:"root_dir" validate:"required"`
	AccessFile string `mapstructure:"access_file" validate:"required,logfilename"`
	ErrorFile  string `mapstructure:"error_file" validate:"required,logfilename"`
	Timezone   string `mapstructure:"timezone" validate:"required"` // IANA name or "Local"
}

// QueryConfig holds pagination and scan-bounding configuration.
type QueryConfig struct {
	DefaultPageSize int `mapstructure:"default_page_size" validate:"required,min=1"`
	MaxPageSize     int `mapstructure:"max_page_size" validate:"required,gtefield=DefaultPageSize"`
	SafetyMargin    int `mapstructure:"safety_margin" validate:"min=0"`
}

// TailConfig holds live-file follower configuration.
type TailConfig struct {
	PollIntervalMs int `mapstructure:"poll_interval_ms" validate:"required,min=100"`
	DebounceMs     int `mapstructure:"debounce_ms" validate:"min=0"`
}

// UserAgentConfig holds user-agent classification configuration.
type UserAgentConfig struct {
	CacheSize int `mapstructure:"cache_size" validate:"required,min=1"`
}

// StreamConfig holds push channel configuration.
type StreamConfig struct {
	Partitions       int `mapstructure:"partitions" validate:"required,min=1"`
	Buffer           int `mapstructure:"buffer" validate:"required,min=1"`
	SubscriberBuffer int `mapstructure:"subscriber_buffer" validate:"required,min=1"`
}
