package handler

import (
	"github.com/hellodex/dbot-mcp/config"
	s "github.com/hellodex/dbot-mcp/schema"
)

var allChains = []string{"solana", "ethereum", "base", "bsc", "tron"}

const walletIDDesc = "Wallet ID to use, This parameter is optional. You do not need to ask user to provide this parameter in most cases."

func chainParam(def string, chains ...string) *s.Field {
	return s.String(chainField).Enum(chains...).Default(def).
		Desc("Chain, defaults to " + def + " if not specified")
}

func walletParam() *s.Field {
	return s.String(walletIDField).NonEmpty().Desc(walletIDDesc)
}

func idParam() *s.Field {
	return s.String("id").NonEmpty().Require()
}

// feeParams are the execution knobs shared by every order kind, defaulted from config.
func feeParams(d *config.Defaults) []*s.Field {
	return []*s.Field{
		s.Bool("customFeeAndTip").Default(d.CustomFeeAndTip).
			Desc(`"true" means both priority fee and tip are valid, "false" means only one of them applies depending on mode`),
		s.String("priorityFee").Default(d.PriorityFee).
			Desc("Priority fee (SOL), valid for Solana, empty string means using auto priority fee"),
		s.Integer("gasFeeDelta").Min(0).Default(d.GasFeeDelta).
			Desc("Additional gas (Gwei), valid for EVM chains"),
		s.Integer("maxFeePerGas").Min(0).Default(d.MaxFeePerGas).
			Desc("Will not trade if base gas exceeds this value (Gwei), valid for EVM chains"),
		s.Bool("jitoEnabled").Default(d.JitoEnabled).
			Desc("Whether to enable anti-sandwich mode (Solana & Ethereum & Bsc)"),
		s.Number("jitoTip").Min(0).Default(d.JitoTip).
			Desc("Tip used in anti-sandwich mode (Solana)"),
		s.Number("maxSlippage").Range(0, 1).Default(d.MaxSlippage).
			Desc("Maximum slippage (0.00-1.00)"),
		s.Integer("concurrentNodes").Range(1, 3).Default(d.ConcurrentNodes).
			Desc("Number of concurrent nodes (1-3)"),
		s.Integer("retries").Range(0, 10).Default(d.Retries).
			Desc("Number of retries after failure (0-10)"),
	}
}

// optionalFeeParams are feeParams without defaults, for partial edits.
func optionalFeeParams() []*s.Field {
	return []*s.Field{
		s.Bool("customFeeAndTip"),
		s.String("priorityFee"),
		s.Integer("gasFeeDelta").Min(0),
		s.Integer("maxFeePerGas").Min(0),
		s.Bool("jitoEnabled"),
		s.Number("jitoTip").Min(0),
		s.Number("maxSlippage").Range(0, 1),
		s.Integer("concurrentNodes").Range(1, 3),
		s.Integer("retries").Range(0, 10),
	}
}

func pnlGroup(maxPrice float64, exclusive bool) *s.Field {
	price := s.Number("pricePercent").Min(0).Require().Desc("Price change ratio that triggers this rung")
	if exclusive {
		price.Below(maxPrice)
	} else {
		price.Max(maxPrice)
	}
	return s.Object("",
		price,
		s.Number("amountPercent").Range(0, 1).Require().Desc("Share of the position sold (0.00-1.00)"),
	)
}

// pnlParams are the take-profit and stop-loss fields. earnMax bounds the
// take-profit rungs, which may exceed 100% on swaps.
func pnlParams(d *config.Defaults, earnMax float64) []*s.Field {
	return []*s.Field{
		s.Number("stopEarnPercent").Min(0).Desc("Take profit percentage (0.00 and above), optional"),
		s.Number("stopLossPercent").Range(0, 1).Desc("Stop loss percentage (0.00-1.00), optional"),
		s.Array("stopEarnGroup", pnlGroup(earnMax, false)).Count(0, 6).
			Desc("Take profit group settings, maximum 6 groups, optional"),
		s.Array("stopLossGroup", pnlGroup(1, false)).Count(0, 6).
			Desc("Stop loss group settings, maximum 6 groups, optional"),
		s.Array("trailingStopGroup", pnlGroup(1, true)).Count(0, 1).
			Desc("Trailing stop settings, maximum 1 group, optional"),
		s.Integer("pnlOrderExpireDelta").Range(0, 432000000).Default(d.PnlOrderExpireDelta).
			Desc("Take profit/stop loss order valid duration (milliseconds), maximum value is 432000000"),
		s.Bool("pnlOrderExpireExecute").Default(d.PnlOrderExpireExecute).
			Desc("Whether to execute when take profit/stop loss order expires"),
		s.Bool("pnlOrderUseMidPrice").Default(d.PnlOrderUseMidPrice).
			Desc("Whether take profit/stop loss order uses mid price"),
	}
}

func pageParams(defSize, maxSize int) []*s.Field {
	return []*s.Field{
		s.Integer("page").Min(0).Default(0).Desc("Page number, starting from 0"),
		s.Integer("size").Range(1, float64(maxSize)).Default(defSize).Desc("Items per page"),
	}
}

func fields(groups ...[]*s.Field) []*s.Field {
	var out []*s.Field
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
