package config

// Common constants shared across the CLI
const (
	// ConfigDirName is the name of the config directory within XDG_CONFIG_HOME
	ConfigDirName = "huedo"

	// ConfigFilename is the base filename for the config file
	ConfigFilename = "huedo.yaml"

	// EnvPrefix is the prefix for environment variable overrides
	EnvPrefix = "HUEDO"
)

// Light state constraints, as enforced by the bridge
const (
	// MinBrightness is the minimum allowed brightness value
	MinBrightness = 1

	// MaxBrightness is the maximum allowed brightness value
	MaxBrightness = 254

	// MinHue is the minimum allowed hue value
	MinHue = 0

	// MaxHue is the maximum allowed hue value
	MaxHue = 65535

	// MinSaturation is the minimum allowed saturation value
	MinSaturation = 0

	// MaxSaturation is the maximum allowed saturation value
	MaxSaturation = 254
)

// Logging constants
const (
	// LogLevelDebug represents debug log level
	LogLevelDebug = "debug"

	// LogLevelInfo represents info log level
	LogLevelInfo = "info"

	// LogLevelWarn represents warning log level
	LogLevelWarn = "warn"

	// LogLevelError represents error log level
	LogLevelError = "error"

	// LogFormatText represents text log format
	LogFormatText = "text"

	// LogFormatJSON represents JSON log format
	LogFormatJSON = "json"
)
