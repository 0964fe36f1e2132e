package settings

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type Config struct {
	Logger Logger `mapstructure:"logger"`
	Pump   Pump   `mapstructure:"pump"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" validate:"min=0"`
	MaxAge      int    `mapstructure:"max_age" validate:"min=0"`
	MaxSize     int    `mapstructure:"max_size" validate:"min=0"`
	Compress    bool   `mapstructure:"compress"`
}

// Pump is the configuration for mq/pump drainers
type Pump struct {
	BatchSize int `mapstructure:"batch_size" validate:"min=0"`
	Workers   int `mapstructure:"workers" validate:"min=0"`
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "settings: invalid config")
	}
	return nil
}
