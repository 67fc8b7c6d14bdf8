package config

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/caarlos0/env/v6"
)

// Config is the global config.
type Config struct {
	LogLevel string `env:"ANCHOR_LOG_LEVEL" envDefault:"info"`
	// "console","json"
	LogFormat string `env:"ANCHOR_LOG_FORMAT" envDefault:"console"`
}

// ConnectorConfig defines the transaction lookup connector config
type ConnectorConfig struct {
	// NetworkName defines the bitcoin network name, "mainnet" or "testnet"
	NetworkName string `env:"ANCHOR_BITCOIN_NETWORK" envDefault:"mainnet"`
	// Provider defines the explorer API the connector queries
	Provider string `env:"ANCHOR_CONNECTOR_PROVIDER" envDefault:"blockr.io"`
	// HTTPTimeout defines the provider round trip timeout, 0 disables it
	HTTPTimeout time.Duration `env:"ANCHOR_CONNECTOR_HTTP_TIMEOUT" envDefault:"30s"`
}

// HTTPConfig defines the lookup http service config
type HTTPConfig struct {
	// ListenAddr defines the address the http service listens on
	ListenAddr string `env:"ANCHOR_HTTP_LISTEN_ADDR" envDefault:":8080"`
	// CORSOrigins defines the allowed cross origins
	CORSOrigins []string `env:"ANCHOR_HTTP_CORS_ORIGINS" envDefault:"*"`
	// RequestTimeout defines the per request deadline
	RequestTimeout time.Duration `env:"ANCHOR_HTTP_REQUEST_TIMEOUT" envDefault:"60s"`
}

// LoadConfig loads the global config from environment variables.
func LoadConfig() (*Config, error) {
	config := Config{}

	if err := env.Parse(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadConnectorConfig loads the connector config from environment variables.
func LoadConnectorConfig() (*ConnectorConfig, error) {
	config := ConnectorConfig{}

	if err := env.Parse(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadHTTPConfig loads the http service config from environment variables.
func LoadHTTPConfig() (*HTTPConfig, error) {
	config := HTTPConfig{}

	if err := env.Parse(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// ChainParams maps a bitcoin network name to its chain params. Only the
// networks the lookup providers serve are accepted; other names yield nil.
// An empty name selects mainnet.
func ChainParams(network string) *chaincfg.Params {
	switch network {
	case chaincfg.MainNetParams.Name, "":
		return &chaincfg.MainNetParams
	case chaincfg.TestNet3Params.Name, "testnet":
		return &chaincfg.TestNet3Params
	default:
		return nil
	}
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "console",
	}
}

func DefaultConnectorConfig() *ConnectorConfig {
	return &ConnectorConfig{
		NetworkName: "mainnet",
		Provider:    "blockr.io",
		HTTPTimeout: 30 * time.Second,
	}
}

func DefaultHTTPConfig() *HTTPConfig {
	return &HTTPConfig{
		ListenAddr:     ":8080",
		CORSOrigins:    []string{"*"},
		RequestTimeout: 60 * time.Second,
	}
}
