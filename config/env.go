package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
)

type envEntry struct {
	name string
	set  func(raw string) error
}

func envTable(c *Config) []envEntry {
	d := &c.Defaults
	return []envEntry{
		{"DBOT_API_KEY", str(&c.API.Key)},
		{"DBOT_BASE_URL", str(&c.API.BaseURL)},
		{"DBOT_SECURITY_URL", str(&c.API.SecurityURL)},
		{"DBOT_DOCS_URL", str(&c.API.DocsURL)},
		{"DBOT_TIMEOUT", duration(&c.API.Timeout)},
		{"DBOT_LOG_LEVEL", str(&c.Log.Level)},
		{"DBOT_LOG_PRETTY", boolean(&c.Log.Pretty)},

		{"DBOT_CHAIN", str(&d.Chain)},
		{"DBOT_CUSTOM_FEE_AND_TIP", boolean(&d.CustomFeeAndTip)},
		{"DBOT_PRIORITY_FEE", str(&d.PriorityFee)},
		{"DBOT_JITO_ENABLED", boolean(&d.JitoEnabled)},
		{"DBOT_JITO_TIP", float(&d.JitoTip)},
		{"DBOT_EXPIRE_DELTA", integer(&d.ExpireDelta)},
		{"DBOT_LIMIT_EXPIRE_DELTA", integer(&d.LimitExpireDelta)},
		{"DBOT_MAX_SLIPPAGE", float(&d.MaxSlippage)},
		{"DBOT_CONCURRENT_NODES", integer(&d.ConcurrentNodes)},
		{"DBOT_RETRIES", integer(&d.Retries)},
		{"DBOT_MIN_DEV_SELL_PERCENT", float(&d.MinDevSellPercent)},
		{"DBOT_GAS_FEE_DELTA", integer(&d.GasFeeDelta)},
		{"DBOT_MAX_FEE_PER_GAS", integer(&d.MaxFeePerGas)},
		{"DBOT_AMOUNT_OR_PERCENT", float(&d.AmountOrPercent)},
		{"DBOT_MIGRATE_SELL_PERCENT", float(&d.MigrateSellPercent)},
		{"DBOT_DEV_SELL_PERCENT", float(&d.DevSellPercent)},
		{"DBOT_PNL_ORDER_EXPIRE_DELTA", integer(&d.PnlOrderExpireDelta)},
		{"DBOT_PNL_ORDER_EXPIRE_EXECUTE", boolean(&d.PnlOrderExpireExecute)},
		{"DBOT_PNL_ORDER_USE_MID_PRICE", boolean(&d.PnlOrderUseMidPrice)},
		{"DBOT_PNL_CUSTOM_CONFIG_ENABLED", boolean(&d.PnlCustomConfigEnabled)},
	}
}

func str(dst *string) func(string) error {
	return func(raw string) error {
		*dst = raw
		return nil
	}
}

func boolean(dst *bool) func(string) error {
	return func(raw string) error {
		v, err := cast.ToBoolE(strings.TrimSpace(raw))
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

func float(dst *float64) func(string) error {
	return func(raw string) error {
		v, err := cast.ToFloat64E(strings.TrimSpace(raw))
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

func integer(dst *int) func(string) error {
	return func(raw string) error {
		f, err := cast.ToFloat64E(strings.TrimSpace(raw))
		if err != nil {
			return err
		}
		if f != float64(int(f)) {
			return fmt.Errorf("%q is not an integer", raw)
		}
		*dst = int(f)
		return nil
	}
}

func duration(dst *time.Duration) func(string) error {
	return func(raw string) error {
		v, err := cast.ToDurationE(strings.TrimSpace(raw))
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}
