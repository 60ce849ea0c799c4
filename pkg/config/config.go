package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Ledger backends.
const (
	LedgerMemory = "memory"
	LedgerEVM    = "evm"
)

// Config represents the application configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Logging    LoggingConfig    `yaml:"logging"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Engine     EngineConfig     `yaml:"engine"`
	Auth       AuthConfig       `yaml:"auth"`
	Ledger     LedgerConfig     `yaml:"ledger"`
	Sweeper    SweeperConfig    `yaml:"sweeper"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" default:"30s"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host" default:"localhost" validate:"required_if=Enabled true"`
	Port     int    `yaml:"port" default:"5432" validate:"min=1,max=65535"`
	User     string `yaml:"user" validate:"required_if=Enabled true"`
	Password string `yaml:"password"`
	Database string `yaml:"database" default:"htlc" validate:"required_if=Enabled true"`
	SSLMode  string `yaml:"ssl_mode" default:"disable" validate:"oneof=disable require verify-ca verify-full"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled bool `yaml:"enabled"`
}

// EngineConfig holds escrow engine settings.
type EngineConfig struct {
	Owner                        string `yaml:"owner" validate:"required"`
	RequireResolverForCompletion bool   `yaml:"require_resolver_for_completion"`
	// MaxAmount caps a single escrow, order or request. Empty means uncapped.
	MaxAmount string `yaml:"max_amount" validate:"omitempty,numeric"`
	// SettlementWait is how long a payout response waits for the transfer to settle.
	SettlementWait time.Duration `yaml:"settlement_wait" default:"5s"`
	PayoutTimeout  time.Duration `yaml:"payout_timeout" default:"2m"`
}

// AuthConfig holds bearer token settings. With auth disabled the caller is
// taken from the X-Account header.
type AuthConfig struct {
	Enabled      bool          `yaml:"enabled"`
	HMACSecret   string        `yaml:"hmac_secret"`
	JWKSURL      string        `yaml:"jwks_url" validate:"omitempty,url"`
	Issuer       string        `yaml:"issuer"`
	AccountClaim string        `yaml:"account_claim" default:"sub"`
	ClockSkew    time.Duration `yaml:"clock_skew" default:"1m"`
}

// LedgerConfig selects and configures the home ledger used for payouts.
type LedgerConfig struct {
	Type   string             `yaml:"type" default:"memory" validate:"oneof=memory evm"`
	Memory MemoryLedgerConfig `yaml:"memory"`
	EVM    EVMLedgerConfig    `yaml:"evm"`
}

// MemoryLedgerConfig seeds the in-memory ledger.
type MemoryLedgerConfig struct {
	// VaultBalance is the value held by the engine vault at startup.
	VaultBalance string            `yaml:"vault_balance" default:"0" validate:"numeric"`
	Balances     map[string]string `yaml:"balances" validate:"dive,numeric"`
}

// EVMLedgerConfig contains Ethereum client settings for native value payouts
type EVMLedgerConfig struct {
	RPCURL          string        `yaml:"rpc_url"`
	ChainID         int64         `yaml:"chain_id"`
	VaultPrivateKey string        `yaml:"vault_private_key"`
	GasLimit        uint64        `yaml:"gas_limit" default:"21000"`
	MaxGasPrice     string        `yaml:"max_gas_price" validate:"omitempty,numeric"`
	ReceiptPolling  time.Duration `yaml:"receipt_polling" default:"2s"`
}

// SweeperConfig controls the periodic expiry sweep.
type SweeperConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Interval  time.Duration `yaml:"interval" default:"1m"`
	BatchSize int           `yaml:"batch_size" default:"100" validate:"min=0"`
	// Account is the identity the sweep runs as. Defaults to the engine owner.
	Account string `yaml:"sweeper_account"`
}

// RateLimitConfig bounds mutating requests per client.
type RateLimitConfig struct {
	Enabled           bool    `yaml:"enabled"`
	RequestsPerMinute float64 `yaml:"requests_per_minute" default:"120" validate:"gte=0"`
	Burst             int     `yaml:"burst" default:"20" validate:"gte=0"`
}

// ListenAddr returns host:port for the HTTP server.
func (c ServerConfig) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads configuration from a YAML file. ${VAR} references are expanded
// from the environment before decoding; unset fields take their defaults.
func Load(configPath string) (*Config, error) {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes, defaults and validates a YAML document.
func Parse(raw []byte) (*Config, error) {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(raw))), cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return err
	}

	if cfg.Auth.Enabled && cfg.Auth.HMACSecret == "" && cfg.Auth.JWKSURL == "" {
		return errors.New("auth.hmac_secret or auth.jwks_url is required when auth is enabled")
	}

	if cfg.Ledger.Type == LedgerEVM {
		evm := cfg.Ledger.EVM
		if evm.RPCURL == "" {
			return errors.New("ledger.evm.rpc_url is required")
		}
		if evm.ChainID <= 0 {
			return errors.New("ledger.evm.chain_id must be positive")
		}
		if evm.VaultPrivateKey == "" {
			return errors.New("ledger.evm.vault_private_key is required")
		}
	}

	if cfg.Sweeper.Enabled && cfg.Sweeper.Interval <= 0 {
		return errors.New("sweeper.interval must be positive")
	}
	return nil
}

// SweeperAccount is the caller identity the sweeper uses.
func (c *Config) SweeperAccount() string {
	if c.Sweeper.Account != "" {
		return c.Sweeper.Account
	}
	return c.Engine.Owner
}
