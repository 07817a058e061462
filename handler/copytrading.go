package handler

import (
	"github.com/hellodex/dbot-mcp/api"
	"github.com/hellodex/dbot-mcp/config"
	"github.com/hellodex/dbot-mcp/model"
	s "github.com/hellodex/dbot-mcp/schema"
	"github.com/hellodex/dbot-mcp/template"
)

const createCopyTradingDesc = `Create multi-chain copy trading tasks - automatically follow the trading behavior of specified wallet addresses for buying and selling operations.
Request example:
{
  "enabled": true,
  "name": "Follow xxx",
  "chain": "solana",
  "targetIds": ["xxx"],
  "buySettings": {"enabled": true, "maxBuyAmountUI": "0.1"},
  "sellSettings": {"enabled": true}
}`

const editCopyTradingDesc = `Edit a copy trading task. Provide the fields to be modified and the required fields (id, enabled, name, chain, targetIds, buySettings, sellSettings). You don't need to re-enter all fields.`

func hourParams() []*s.Field {
	return []*s.Field{
		s.Integer("startHour").Range(0, 23).Default(0).
			Desc("Enable time (UTC hour, 0-23). Follow trades only execute after this time each day"),
		s.Integer("endHour").Range(0, 23).Default(23).
			Desc("Disable time (UTC hour, 0-23). Follow trades only execute before this time each day"),
	}
}

func targetAmountParams() []*s.Field {
	return []*s.Field{
		s.Number("targetMinAmountUI").Min(0).Default(0).Desc("Ignore target trades smaller than this amount"),
		s.Number("targetMaxAmountUI").Min(0).Default(999999).Desc("Ignore target trades larger than this amount"),
	}
}

func buySettingsParam(d *config.Defaults) *s.Field {
	return s.Object("buySettings", fields(
		[]*s.Field{s.Bool("enabled").Default(true).Desc("Buy task enabled status")},
		hourParams(),
		[]*s.Field{
			s.String("buyAmountType").Enum("fixed_amount", "fixed_ratio", "follow_amount").Default("follow_amount").
				Desc("fixed_amount buys maxBuyAmountUI, fixed_ratio buys buyRatio times the target, follow_amount buys the same amount"),
			s.String("maxBuyAmountUI").NonEmpty().Require().Desc("Maximum amount per buy (ETH/SOL/BNB/TRX)"),
			s.Number("buyRatio").Range(0, 10).Default(1).Desc("Ratio of the target's buy amount, used by fixed_ratio"),
			s.Number("maxBalanceUI").Min(0).Default(100).Desc("Stop buying when the wallet balance exceeds this value"),
			s.Number("reservedAmountUI").Min(0).Default(0.01).Desc("Balance kept aside for fees"),
		},
		targetAmountParams(),
		[]*s.Field{
			s.Number("minTokenMCUSD").Min(0).Default(0).Desc("Minimum token market cap (USD)"),
			s.Number("maxTokenMCUSD").Min(0).Default(999999999).Desc("Maximum token market cap (USD)"),
			s.Number("maxBuyTax").Range(0, 1).Desc("Skip tokens whose buy tax exceeds this ratio, optional"),
			s.Number("maxSellTax").Range(0, 1).Desc("Skip tokens whose sell tax exceeds this ratio, optional"),
			s.Bool("customFeeAndTip").Default(false),
			s.String("priorityFee").Default(""),
			s.Integer("gasFeeDelta").Min(0).Default(d.GasFeeDelta),
			s.Integer("maxFeePerGas").Min(0).Default(d.MaxFeePerGas),
			s.Bool("jitoEnabled").Default(true),
			s.Number("jitoTip").Min(0).Default(0.001),
			s.Number("maxSlippage").Range(0, 1).Default(0.1),
			s.Bool("skipFreezableToken").Default(false),
			s.Bool("skipMintableToken").Default(false),
			s.Bool("skipDelegatedToken").Default(false),
			s.Bool("skipNotOpensource").Default(false),
			s.Bool("skipHoneyPot").Default(false),
			s.Bool("skipTargetIncreasePosition").Default(false),
			s.Number("minBurnedLp").Range(0, 1).Default(0).Desc("Minimum burned or locked LP ratio"),
			s.Number("minLpUsd").Min(0).Default(0).Desc("Minimum pool liquidity (USD)"),
			s.Number("minTokenAgeMs").Min(0).Default(0).Desc("Minimum token age (milliseconds)"),
			s.Number("maxTokenAgeMs").Min(0).Default(999999999999).Desc("Maximum token age (milliseconds)"),
			s.Number("maxTopHoldPercent").Range(0, 1).Default(1).Desc("Maximum share held by the top 10 holders"),
			s.Integer("maxBuyTimesPerToken").Min(1).Default(999).Desc("Maximum number of buys per token"),
			s.Number("maxBuyAmountPerToken").Min(0).Default(999999).Desc("Maximum total buy amount per token"),
			s.Bool("buyExist").Default(false).Desc("Whether to buy tokens already held"),
			s.Bool("buyOncePerWallet").Default(false).Desc("Buy each token only once per followed wallet"),
			s.Integer("concurrentNodes").Range(1, 3).Default(2),
			s.Integer("retries").Range(0, 10).Default(1),
		},
	)...).Require().Desc("Buy-related settings")
}

func sellSettingsParam(d *config.Defaults) *s.Field {
	return s.Object("sellSettings", fields(
		[]*s.Field{s.Bool("enabled").Default(true).Desc("Sell task enabled status")},
		hourParams(),
		[]*s.Field{
			s.String("mode").Enum("mixed", "only_copy", "only_pnl").Default("mixed").
				Desc("mixed follows sells and applies take profit/stop loss, only_copy only follows, only_pnl only applies take profit/stop loss"),
			s.String("sellAmountType").Enum("all", "follow_ratio", "x_target_ratio").Default("all"),
			s.Number("xTargetRatio").Range(0, 100).Default(1).Desc("Multiple of the target's sell ratio, used by x_target_ratio"),
			s.String("sellSpeedType").Enum("fast", "accurate").Default("accurate"),
		},
		targetAmountParams(),
		[]*s.Field{
			s.Number("stopEarnPercent").Min(0).Desc("Take profit percentage, optional"),
			s.Number("stopLossPercent").Min(0).Desc("Stop loss percentage, optional"),
			s.Array("stopEarnGroup", pnlGroup(1, false)).Count(0, 6).Desc("Take profit groups, maximum 6, optional"),
			s.Array("stopLossGroup", pnlGroup(1, false)).Count(0, 6).Desc("Stop loss groups, maximum 6, optional"),
			s.Array("trailingStopGroup", pnlGroup(1, true)).Count(0, 1).Desc("Trailing stop, maximum 1 group, optional"),
			s.Integer("pnlOrderExpireDelta").Range(0, 432000000).Default(d.PnlOrderExpireDelta),
			s.Bool("pnlOrderExpireExecute").Default(false),
			s.Bool("pnlOrderUseMidPrice").Default(false),
			s.String("sellMode").Enum("smart", "normal").Default("smart"),
			s.Number("migrateSellPercent").Range(0, 1).Default(0).Desc("Ratio sold when the token migrates"),
			s.Number("minDevSellPercent").Range(0, 1).Default(0.5).Desc("Developer sell ratio that triggers a sell"),
			s.Number("devSellPercent").Range(0, 1).Default(1).Desc("Ratio sold when the developer sells"),
			s.Bool("customFeeAndTip").Default(false),
			s.String("priorityFee").Default(""),
			s.Integer("gasFeeDelta").Min(0).Default(d.GasFeeDelta),
			s.Integer("maxFeePerGas").Min(0).Default(d.MaxFeePerGas),
			s.Bool("jitoEnabled").Default(true),
			s.Number("jitoTip").Min(0).Default(0.001),
			s.Number("maxSlippage").Range(0, 1).Default(0.1),
			s.Integer("concurrentNodes").Range(1, 3).Default(2),
			s.Integer("retries").Range(0, 10).Default(1),
		},
	)...).Require().Desc("Sell-related settings")
}

// copyTradingFields describes a whole task. An edit replaces the task, so it
// must state enabled and chain instead of inheriting creation defaults.
func copyTradingFields(d *config.Defaults, edit bool) []*s.Field {
	enabled := s.Bool("enabled").Desc("Task enabled status, true/false")
	chain := chainParam("solana", allChains...)
	if edit {
		enabled.Require()
		chain = s.String(chainField).Enum(allChains...).Require().Desc("Chain of the task")
	} else {
		enabled.Default(true)
	}

	return []*s.Field{
		enabled,
		s.String("name").NonEmpty().Require().Desc("Name of the copy trading task"),
		chain,
		s.Array("dexFilter", s.String("")).
			Desc("DEXs to follow, null means all, specifying names means only follow trades on those DEXs"),
		s.Array("targetIds", s.String("")).Count(1, 10).Require().
			Desc("Wallet addresses to copy trade (up to 10)"),
		s.Array("tokenBlacklist", s.String("")).Count(0, 20).
			Desc("Blacklisted token addresses (up to 20), buying and selling of these tokens will be skipped"),
		walletParam(),
		s.String("groupId").Desc("Group ID"),
		buySettingsParam(d),
		sellSettingsParam(d),
	}
}

func copyTradingOperations(d *config.Defaults) []*Operation {
	return []*Operation{
		newOperation("create_copy_trading", "Create copy trading task", createCopyTradingDesc,
			WalletSingle, s.Params(copyTradingFields(d, false)...),
			(*api.Client).CreateCopyTrading,
			func(dp *Dispatcher, req *model.CopyTradingRequest, env *model.Envelope) (string, error) {
				return template.CopyTradingCreated(decodeID(env), req, dp.docs(env))
			}),

		newOperation("edit_copy_trading", "Edit copy trading task", editCopyTradingDesc,
			WalletSingle, s.Params(append([]*s.Field{idParam()}, copyTradingFields(d, true)...)...),
			(*api.Client).EditCopyTrading,
			func(dp *Dispatcher, req *model.EditCopyTradingRequest, env *model.Envelope) (string, error) {
				return template.CopyTradingEdited(req, dp.docs(env))
			}),

		newOperation("switch_copy_trading", "Switch copy trading task", "Enable/disable a copy trading task",
			WalletNone, s.Params(
				idParam(),
				s.Bool("enabled").Require().Desc("true to enable, false to disable"),
				s.Bool("closePnlOrder").Default(false).Desc("Whether to close the take profit/stop loss orders of this task"),
			),
			(*api.Client).SwitchCopyTrading,
			func(dp *Dispatcher, req *model.SwitchCopyTradingRequest, env *model.Envelope) (string, error) {
				return template.CopyTradingSwitched(req, dp.docs(env))
			}),

		newOperation("delete_copy_trading", "Delete copy trading task", "Delete a copy trading task",
			WalletNone, s.Params(
				idParam(),
				s.Bool("deletePnlOrder").Default(false).Desc("Whether to delete the take profit/stop loss orders of this task"),
			),
			(*api.Client).DeleteCopyTrading,
			func(dp *Dispatcher, req *model.DeleteCopyTradingRequest, env *model.Envelope) (string, error) {
				return template.CopyTradingDeleted(req, dp.docs(env))
			}),

		newOperation("get_copy_trading_tasks", "Get copy trading tasks", "Get the list of copy trading tasks",
			WalletNone, s.Params(pageParams(20, 100)...),
			(*api.Client).CopyTradingTasks,
			func(dp *Dispatcher, req *model.PageRequest, env *model.Envelope) (string, error) {
				var tasks []model.CopyTradingTask
				if err := decodeList(env, &tasks, "list", "tasks"); err != nil {
					return "", err
				}
				return template.CopyTradingTasks(tasks, req, dp.docs(env))
			}),
	}
}
