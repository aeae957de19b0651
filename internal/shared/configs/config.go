package configs

const DefaultLogFile = "programming-task-example-data.log"

// Config holds all configuration for the application.
type Config struct {
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Report  ReportConfig  `mapstructure:"report" validate:"required"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,loglevel"`
}

// ReportConfig holds report configuration.
type ReportConfig struct {
	LogFile        string `mapstructure:"logfile" validate:"required"`
	TopLimit       int    `mapstructure:"top_limit" validate:"required,min=1"`
	ShowUserAgents bool   `mapstructure:"show_user_agents"`
}

// MetricsConfig holds metrics export configuration.
type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"` // empty disables the export
}
