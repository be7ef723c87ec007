package config

// Supported batch encodings.
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatText  = "text"
	FormatProto = "proto"
)

// InputConfig contains batch decoding configuration
type InputConfig struct {
	Format string `yaml:"format" validate:"omitempty,oneof=json yaml text"`
}

// OutputConfig contains answer encoding configuration
type OutputConfig struct {
	Format string `yaml:"format" validate:"omitempty,oneof=json yaml proto text"`
	Indent bool   `yaml:"indent"`
}

// StatsConfig contains route statistics configuration
type StatsConfig struct {
	// CurvatureDigits rounds the reported curvature; negative disables rounding.
	CurvatureDigits *int `yaml:"curvatureDigits" validate:"omitempty,gte=-1,lte=15"`
	CacheStats      bool `yaml:"cacheStats"`
}

// LoggingConfig contains log output configuration
type LoggingConfig struct {
	// Output is stderr or stdout. Answers go to stdout, so stderr is the default.
	Output       string `yaml:"output" validate:"omitempty,oneof=stdout stderr"`
	Microseconds bool   `yaml:"microseconds"`
	Prefix       string `yaml:"prefix" validate:"omitempty,max=32"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Stats   StatsConfig   `yaml:"stats"`
	Logging LoggingConfig `yaml:"logging"`
}

// Digits returns the configured curvature precision, 6 when unset.
func (s StatsConfig) Digits() int {
	if s.CurvatureDigits == nil {
		return DefaultCurvatureDigits
	}
	return *s.CurvatureDigits
}
