package config

import "time"

// Config is the root configuration for the judge panel client.
type Config struct {
	API     APIConfig     `mapstructure:"api" yaml:"api" validate:"required"`
	Judging JudgingConfig `mapstructure:"judging" yaml:"judging"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// APIConfig describes the judging backend and the judge's credential.
// The token is required: the client fails closed instead of substituting a
// placeholder credential.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url" yaml:"base_url" validate:"required,url"`
	Token   string        `mapstructure:"token" yaml:"token" validate:"required"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout" validate:"min=1s"`
}

// JudgingConfig contains panel-wide judging settings.
type JudgingConfig struct {
	// Round is the fixed round identifier attached to every submission.
	Round string `mapstructure:"round" yaml:"round" validate:"required"`
}

// LoggingConfig contains logging configuration. The TUI owns the terminal,
// so logs always go to a file.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=json text"`
	File   string `mapstructure:"file" yaml:"file"`
}
