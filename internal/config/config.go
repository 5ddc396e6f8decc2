package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds the overall configuration for the deployer.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
	Networks  []NetworkNode   `yaml:"networks"`
	Runtime   RuntimeConfig   `yaml:"runtime"`
	RpcClient RpcClientConfig `yaml:"rpcClient"`
	Cache     CacheConfig     `yaml:"cache"`
}

// ServerConfig holds the server-specific configuration.
type ServerConfig struct {
	Port               string   `yaml:"port"`
	ReadTimeout        int      `yaml:"readTimeout"`
	WriteTimeout       int      `yaml:"writeTimeout"`
	IdleTimeout        int      `yaml:"idleTimeout"`
	ShutdownTimeout    int      `yaml:"shutdownTimeout"`
	CORSAllowedOrigins []string `yaml:"corsAllowedOrigins"`
}

// NetworkNode overrides or extends a predefined network definition.
type NetworkNode struct {
	Name         string   `yaml:"name"` // network identifier, e.g. "mantleSepolia"
	DisplayName  string   `yaml:"displayName"`
	ChainID      uint64   `yaml:"chainID"`
	NativeSymbol string   `yaml:"nativeSymbol"`
	Endpoint     string   `yaml:"endpoint"`
	Fallbacks    []string `yaml:"fallbacks"`
	Explorer     string   `yaml:"explorer"`
	Testnet      bool     `yaml:"testnet"`
}

// LoggingConfig holds the configuration for logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // e.g., "debug", "info", "warn", "error"
}

// RuntimeConfig controls how the runtime environment is built for a network.
type RuntimeConfig struct {
	VerifyChainID bool `yaml:"verifyChainId"`
	MaxConcurrent int  `yaml:"maxConcurrent"`
}

// RpcClientConfig holds configuration for RPC clients.
type RpcClientConfig struct {
	DialTimeoutMs    int64 `yaml:"dialTimeoutMs"`
	DefaultTimeoutMs int64 `yaml:"defaultTimeoutMs"`
	RateLimit        int   `yaml:"rateLimit"`
	BurstLimit       int   `yaml:"burstLimit"`
}

// CacheConfig holds configuration for caching.
type CacheConfig struct {
	DefaultExpirationMinutes int `yaml:"defaultExpirationMinutes"`
	CleanupIntervalMinutes   int `yaml:"cleanupIntervalMinutes"`
}

// LoadConfig loads configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	logrus.Infof("Loading configuration from path: %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Errorf("Failed to read config file %s: %v", path, err)
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		logrus.Errorf("Failed to unmarshal config data from %s: %v", path, err)
		return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
	}

	logrus.Info("Configuration loaded successfully.")
	return cfg, nil
}

// Parse decodes YAML config data and applies defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns a configuration with every default applied and no network overrides.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) validate() error {
	seen := make(map[string]struct{}, len(cfg.Networks))
	for i, network := range cfg.Networks {
		if network.Name == "" {
			return fmt.Errorf("networks[%d]: name is required", i)
		}
		if _, dup := seen[network.Name]; dup {
			return fmt.Errorf("networks[%d]: duplicate network name %q", i, network.Name)
		}
		seen[network.Name] = struct{}{}
	}
	return nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
		logrus.Debugf("Server.Port not set, defaulting to %s", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout <= 0 {
		cfg.Server.WriteTimeout = 10
	}
	if cfg.Server.IdleTimeout <= 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		cfg.Server.ShutdownTimeout = 5
	}
	if len(cfg.Server.CORSAllowedOrigins) == 0 {
		cfg.Server.CORSAllowedOrigins = []string{"*"}
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	if cfg.Runtime.MaxConcurrent <= 0 {
		cfg.Runtime.MaxConcurrent = 4
		logrus.Debugf("Runtime.MaxConcurrent not set, defaulting to %d", cfg.Runtime.MaxConcurrent)
	}

	if cfg.RpcClient.DialTimeoutMs <= 0 {
		cfg.RpcClient.DialTimeoutMs = 10000
	}
	if cfg.RpcClient.DefaultTimeoutMs <= 0 {
		cfg.RpcClient.DefaultTimeoutMs = 10000
		logrus.Debugf("RpcClient.DefaultTimeoutMs not set, defaulting to %d ms", cfg.RpcClient.DefaultTimeoutMs)
	}
	if cfg.RpcClient.RateLimit <= 0 {
		cfg.RpcClient.RateLimit = 5
	}
	if cfg.RpcClient.BurstLimit <= 0 {
		cfg.RpcClient.BurstLimit = cfg.RpcClient.RateLimit
	}

	if cfg.Cache.DefaultExpirationMinutes <= 0 {
		cfg.Cache.DefaultExpirationMinutes = 30
	}
	if cfg.Cache.CleanupIntervalMinutes <= 0 {
		cfg.Cache.CleanupIntervalMinutes = 10
	}
}
