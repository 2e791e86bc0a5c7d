package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/ardanlabs/conf"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	DefaultConfigPath = "config/config.toml"
	ConfigFileName    = "config.toml"
	ServiceName       = "buggy-website"
	ConfigExtension   = ".toml"

	DefaultCrashPath = "/api/crash"

	EnvironmentDev  Environment = "dev"
	EnvironmentTest Environment = "test"
	EnvironmentProd Environment = "prod"

	ConfigPath EnvironmentVariable = "CONFIG_PATH"
)

type (
	Environment         string
	EnvironmentVariable string
)

func (e EnvironmentVariable) String() string {
	return string(e)
}

type CrashServiceConfig struct {
	conf.Version
	Server ServerConfig `toml:"server"`
}

// ServerConfig represents configurable properties for the HTTP server
type ServerConfig struct {
	Environment        Environment   `toml:"env" conf:"default:dev" validate:"required,oneof=dev test prod"`
	APIHost            string        `toml:"api_host" conf:"default:0.0.0.0:3000" validate:"required"`
	DebugHost          string        `toml:"debug_host" conf:"default:0.0.0.0:4000"`
	JaegerHost         string        `toml:"jaeger_host" conf:"default:http://jaeger:14268/api/traces"`
	JaegerEnabled      bool          `toml:"jaeger_enabled" conf:"default:false"`
	ReadTimeout        time.Duration `toml:"read_timeout" conf:"default:5s" validate:"gt=0"`
	WriteTimeout       time.Duration `toml:"write_timeout" conf:"default:5s" validate:"gt=0"`
	ShutdownTimeout    time.Duration `toml:"shutdown_timeout" conf:"default:5s" validate:"gt=0"`
	LogLocation        string        `toml:"log_location" conf:"default:log"`
	LogLevel           string        `toml:"log_level" conf:"default:info" validate:"omitempty,oneof=trace debug info warn warning error fatal panic"`
	EnableAllowAllCORS bool          `toml:"enable_allow_all_cors" conf:"default:false"`
	CrashPath          string        `toml:"crash_path" conf:"default:/api/crash" validate:"required,startswith=/"`
}

// LoadConfig attempts to load a TOML config file from the given path, and coerce it into our object model.
// Before loading, defaults are applied on certain properties, which are overwritten if specified in the TOML file.
func LoadConfig(path string) (*CrashServiceConfig, error) {
	loadDefaultConfig, err := checkValidConfigPath(path)
	if err != nil {
		return nil, errors.Wrap(err, "validate config path")
	}

	var config CrashServiceConfig
	shouldExit, err := parseAndApplyDefaults(&config)
	if err != nil {
		return nil, errors.Wrap(err, "parse and apply defaults")
	}
	// help or version was requested, there is nothing to run
	if shouldExit {
		return nil, nil
	}

	if !loadDefaultConfig {
		if err = loadTOMLConfig(path, &config); err != nil {
			return nil, errors.Wrap(err, "load toml config")
		}
	}

	if err = Validate(config); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}

	return &config, nil
}

func checkValidConfigPath(path string) (bool, error) {
	// no path, load default config
	defaultConfig := false
	if path == "" {
		logrus.Info("no config path provided, loading default config...")
		defaultConfig = true
	} else if filepath.Ext(path) != ConfigExtension {
		return false, fmt.Errorf("path<%s> did not match the expected TOML format", path)
	}

	return defaultConfig, nil
}

func parseAndApplyDefaults(config *CrashServiceConfig) (bool, error) {
	err := conf.Parse(os.Args[1:], ServiceName, config)
	if err == nil {
		return false, nil
	}

	switch {
	case errors.Is(err, conf.ErrHelpWanted):
		usage, err := conf.Usage(ServiceName, config)
		if err != nil {
			return false, errors.Wrap(err, "parsing config")
		}
		fmt.Println(usage)
		return true, nil

	case errors.Is(err, conf.ErrVersionWanted):
		version, err := conf.VersionString(ServiceName, config)
		if err != nil {
			return false, errors.Wrap(err, "generating config version")
		}
		fmt.Println(version)
		return true, nil
	}

	return false, errors.Wrap(err, "parsing config")
}

func loadTOMLConfig(path string, config *CrashServiceConfig) error {
	if _, err := toml.DecodeFile(path, config); err != nil {
		return errors.Wrapf(err, "could not load config: %s", path)
	}

	if config.Server.CrashPath == "" {
		config.Server.CrashPath = DefaultCrashPath
	}
	return nil
}
