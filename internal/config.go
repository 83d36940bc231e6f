package internal

import (
	"fmt"

	"github.com/spf13/viper"
)

type ChronosConfig struct {
	AppName string `mapstructure:"app_name"`

	Execution struct {
		DefaultTimezone string `mapstructure:"default_timezone"`
		MaxBatchRows    int    `mapstructure:"max_batch_rows"`
	} `mapstructure:"execution"`

	Log struct {
		Level string `mapstructure:"level"`
		Debug bool   `mapstructure:"debug"`
	} `mapstructure:"log"`
}

func LoadConfig(path string) (*ChronosConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("execution.default_timezone", "UTC")
	v.SetDefault("execution.max_batch_rows", 65536)
	v.SetDefault("log.level", "info")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg ChronosConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
