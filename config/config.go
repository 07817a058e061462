package config

import (
	"os"
	"strings"
	"time"

	"github.com/hellodex/dbot-mcp/apperr"
	"github.com/hellodex/dbot-mcp/logger"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"
)

const (
	EnvPrefix       = "DBOT_"
	WalletEnvPrefix = "DBOT_WALLET_ID_"
	ConfigPathEnv   = "DBOT_CONFIG"

	DefaultBaseURL     = "https://api-bot-v1.dbotx.com"
	DefaultSecurityURL = "https://servapi.dbotx.com"
	DefaultDocsURL     = "https://dbotx.com/docs"
	DefaultTimeout     = 30 * time.Second
)

type Config struct {
	API struct {
		Key         string        `yaml:"key"`
		BaseURL     string        `yaml:"base_url"`
		SecurityURL string        `yaml:"security_url"`
		DocsURL     string        `yaml:"docs_url"`
		Timeout     time.Duration `yaml:"timeout"`
	} `yaml:"api"`

	Log struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"log"`

	Defaults Defaults `yaml:"defaults"`

	// Wallets is keyed by the upper-case suffix of DBOT_WALLET_ID_<KEY>.
	Wallets map[string]string `yaml:"wallets"`
}

// Defaults feeds the parameter schemas. Each field can be overridden by the
// DBOT_* variable named in envTable.
type Defaults struct {
	Chain                  string  `yaml:"chain"`
	CustomFeeAndTip        bool    `yaml:"custom_fee_and_tip"`
	PriorityFee            string  `yaml:"priority_fee"`
	JitoEnabled            bool    `yaml:"jito_enabled"`
	JitoTip                float64 `yaml:"jito_tip"`
	ExpireDelta            int     `yaml:"expire_delta"`
	LimitExpireDelta       int     `yaml:"limit_expire_delta"`
	MaxSlippage            float64 `yaml:"max_slippage"`
	ConcurrentNodes        int     `yaml:"concurrent_nodes"`
	Retries                int     `yaml:"retries"`
	MinDevSellPercent      float64 `yaml:"min_dev_sell_percent"`
	GasFeeDelta            int     `yaml:"gas_fee_delta"`
	MaxFeePerGas           int     `yaml:"max_fee_per_gas"`
	AmountOrPercent        float64 `yaml:"amount_or_percent"`
	MigrateSellPercent     float64 `yaml:"migrate_sell_percent"`
	DevSellPercent         float64 `yaml:"dev_sell_percent"`
	PnlOrderExpireDelta    int     `yaml:"pnl_order_expire_delta"`
	PnlOrderExpireExecute  bool    `yaml:"pnl_order_expire_execute"`
	PnlOrderUseMidPrice    bool    `yaml:"pnl_order_use_mid_price"`
	PnlCustomConfigEnabled bool    `yaml:"pnl_custom_config_enabled"`
}

func Default() *Config {
	cfg := &Config{
		Defaults: Defaults{
			Chain:                  "solana",
			PriorityFee:            "0.0001",
			JitoEnabled:            true,
			JitoTip:                0.001,
			ExpireDelta:            360000000,
			LimitExpireDelta:       432000000,
			MaxSlippage:            0.1,
			ConcurrentNodes:        2,
			Retries:                1,
			MinDevSellPercent:      0.5,
			GasFeeDelta:            5,
			MaxFeePerGas:           100,
			AmountOrPercent:        0.001,
			MigrateSellPercent:     1,
			DevSellPercent:         1,
			PnlOrderExpireDelta:    43200000,
			PnlCustomConfigEnabled: true,
		},
		Wallets: map[string]string{},
	}
	cfg.API.BaseURL = DefaultBaseURL
	cfg.API.SecurityURL = DefaultSecurityURL
	cfg.API.DocsURL = DefaultDocsURL
	cfg.API.Timeout = DefaultTimeout
	cfg.Log.Level = "info"
	return cfg
}

// Load builds the configuration from defaults, the optional yaml file and the
// process environment.
func Load(filename string) (*Config, error) {
	return LoadFrom(filename, os.Environ())
}

func LoadFrom(filename string, environ []string) (*Config, error) {
	cfg := Default()
	env := parseEnviron(environ)

	if filename == "" {
		filename = env[ConfigPathEnv]
	}
	if filename != "" {
		if err := cfg.loadFile(filename); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv(env)
	return cfg, nil
}

func (c *Config) loadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return apperr.Wrap(apperr.CodeConfig, "read config file", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return apperr.Wrap(apperr.CodeConfig, "parse config file "+filename, err)
	}

	wallets := make(map[string]string, len(c.Wallets))
	for k, v := range c.Wallets {
		if v != "" {
			wallets[strings.ToUpper(k)] = v
		}
	}
	c.Wallets = wallets
	return nil
}

func (c *Config) applyEnv(env map[string]string) {
	for _, entry := range envTable(c) {
		raw, ok := env[entry.name]
		if !ok {
			continue
		}
		if err := entry.set(raw); err != nil {
			log.Warn().Func(logger.WithCategory(logger.CategoryConfig)).
				Str("env", entry.name).Str("value", raw).Err(err).
				Msg("invalid value, keeping default")
		}
	}

	if c.Wallets == nil {
		c.Wallets = map[string]string{}
	}
	for k, v := range env {
		if !strings.HasPrefix(k, WalletEnvPrefix) || v == "" {
			continue
		}
		c.Wallets[strings.TrimPrefix(k, WalletEnvPrefix)] = v
	}
}

// Validate reports configuration that makes every call fail.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.API.Key) == "" {
		return apperr.New(apperr.CodeConfig, "DBOT_API_KEY environment variable is required")
	}
	if c.API.BaseURL == "" || c.API.SecurityURL == "" {
		return apperr.New(apperr.CodeConfig, "api base_url and security_url must not be empty")
	}
	if c.API.Timeout <= 0 {
		return apperr.Newf(apperr.CodeConfig, "api timeout must be positive, got %s", c.API.Timeout)
	}
	return nil
}

// DocsOr returns docs when the upstream provided a link, else the configured fallback.
func (c *Config) DocsOr(docs string) string {
	if docs != "" {
		return docs
	}
	return c.API.DocsURL
}

func parseEnviron(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(k, EnvPrefix) {
			continue
		}
		env[k] = v
	}
	return env
}
