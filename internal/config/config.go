package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/wheelibin/hapi/internal/constants"
)

var ErrMissingBridge = errors.New("bridgeIp and userId must both be configured")

type Config struct {
	BridgeIP string        `mapstructure:"bridgeIp"`
	UserID   string        `mapstructure:"userId"`
	Timeout  time.Duration `mapstructure:"timeout"`
	LogLevel string        `mapstructure:"logLevel"`
	LogFile  string        `mapstructure:"logFile"`
}

func (c Config) Validate() error {
	if c.BridgeIP == "" || c.UserID == "" {
		return ErrMissingBridge
	}
	return nil
}

// NewFlagSet returns the flags that can override config values.
func NewFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("hapi", pflag.ContinueOnError)
	flags.String("config", "", "path to a config file")
	flags.String("bridge-ip", "", "address of the hue bridge")
	flags.String("user-id", "", "api user id issued by the bridge")
	flags.Duration("timeout", 0, "request timeout, 0 waits forever")
	flags.String("log-level", constants.DefaultLogLevel, "debug, info, warn or error")
	flags.String("log-file", "", "write logs to this file instead of stderr")
	return flags
}

// ReadConfig merges flags, HAPI_* environment variables and the config file,
// in that order of precedence. A missing config file is not an error unless
// one was asked for with --config.
func ReadConfig(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("bridgeIp", "")
	v.SetDefault("userId", "")
	v.SetDefault("timeout", time.Duration(0))
	v.SetDefault("logLevel", constants.DefaultLogLevel)
	v.SetDefault("logFile", "")

	v.SetEnvPrefix("hapi")
	v.AutomaticEnv()

	bindings := map[string]string{
		"bridgeIp": "bridge-ip",
		"userId":   "user-id",
		"timeout":  "timeout",
		"logLevel": "log-level",
		"logFile":  "log-file",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("error binding flag %s: %w", flag, err)
		}
	}

	configFile, _ := flags.GetString("config")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")              // name of config file (without extension)
		v.AddConfigPath("/etc/hapi/")          // path to look for the config file in
		v.AddConfigPath("$HOME/.config/hapi/") // call multiple times to add many search paths
		v.AddConfigPath(".")                   // optionally look for config in the working directory
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return &cfg, nil
}
