package config

const (
	defaultLogLevel     = "info"
	defaultLogFormat    = "auto"
	defaultOutputFormat = "text"
	projectConfigName   = "sermonref.toml"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
	}
}
