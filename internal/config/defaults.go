package config

const (
	defaultConfigPath   = "~/.config/wordcounter/config.toml"
	defaultDataDir      = "~/.local/share/wordcounter"
	defaultHistoryFile  = "history.db"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultSummaryLimit = 20
)

// Environment variables that override file values when set.
const (
	EnvDataDir   = "WORDCOUNTER_DATA_DIR"
	EnvLogLevel  = "WORDCOUNTER_LOG_LEVEL"
	EnvLogFormat = "WORDCOUNTER_LOG_FORMAT"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Report: Report{
			SummaryLimit: defaultSummaryLimit,
		},
	}
}
