package handler

import (
	"github.com/hellodex/dbot-mcp/api"
	"github.com/hellodex/dbot-mcp/config"
	"github.com/hellodex/dbot-mcp/model"
	s "github.com/hellodex/dbot-mcp/schema"
	"github.com/hellodex/dbot-mcp/template"
	"github.com/samber/lo"
)

const fastSwapDesc = "Create fast buy/sell trading orders, supporting multi-chain trading (solana/ethereum/base/bsc/tron), supporting take profit and stop loss settings for both buy and sell"

// overrideDefaults replaces the defaults of the named fields in place.
func overrideDefaults(fs []*s.Field, defs map[string]any) []*s.Field {
	for _, f := range fs {
		if v, ok := defs[f.Name()]; ok {
			f.Default(v)
		}
	}
	return fs
}

func pnlCustomParams(d *config.Defaults) []*s.Field {
	return []*s.Field{
		s.Bool("pnlCustomConfigEnabled").Default(d.PnlCustomConfigEnabled).
			Desc("Whether to enable custom take profit/stop loss configuration"),
		s.Object("pnlCustomConfig", feeParams(d)...).
			Desc("Custom take profit/stop loss configuration, optional"),
	}
}

func swapTradeParams() []*s.Field {
	return []*s.Field{
		chainParam("solana", allChains...),
		s.String("pair").NonEmpty().Require().Desc("Token address or trading pair address to buy/sell"),
	}
}

func fastSwapParams(d *config.Defaults) *s.Field {
	return s.Params(fields(
		swapTradeParams(),
		[]*s.Field{
			s.String(walletIDField).NonEmpty().Require().Desc(walletIDDesc),
			s.String("type").Enum("buy", "sell").Require().Desc("Transaction type, value is buy or sell"),
			s.Number("amountOrPercent").Min(0).Default(d.AmountOrPercent).
				Desc("For buy type, fill in buy amount (ETH/SOL/BNB/TRX), for sell type, fill in sell percentage (0.00-1.00)"),
		},
		feeParams(d),
		[]*s.Field{
			s.Number("migrateSellPercent").Range(0, 1).Default(d.MigrateSellPercent).Desc("Migration sell percentage (0.00-1.00)"),
			s.Number("minDevSellPercent").Range(0, 1).Default(d.MinDevSellPercent).Desc("Minimum developer sell percentage (0.00-1.00)"),
			s.Number("devSellPercent").Range(0, 1).Default(d.DevSellPercent).Desc("Developer sell percentage (0.00-1.00)"),
		},
		pnlParams(d, 10),
		pnlCustomParams(d),
	)...)
}

func fastSwapsParams(d *config.Defaults) *s.Field {
	return s.Params(fields(
		swapTradeParams(),
		[]*s.Field{
			s.Array(walletIDListField, s.String("").NonEmpty()).Count(1, 5).Require().
				Desc("List of wallet IDs to use, maximum 5 wallets, optional"),
			s.String("type").Enum("buy", "sell").Require().Desc("Transaction type, value is buy or sell"),
		},
		overrideDefaults(feeParams(d), map[string]any{
			"customFeeAndTip": false,
			"priorityFee":     "",
			"jitoEnabled":     false,
		}),
		[]*s.Field{
			s.Number("minAmount").Min(0).Desc("Minimum buy amount (ETH/SOL/BNB/TRX), optional"),
			s.Number("maxAmount").Min(0).Desc("Maximum buy amount (ETH/SOL/BNB/TRX), optional"),
			s.Number("sellPercent").Range(0, 1).Default(1.0).Desc("Sell percentage (0.00-1.00)"),
		},
		pnlParams(d, 10),
		pnlCustomParams(d),
	)...)
}

func fastSwapOperations(d *config.Defaults) []*Operation {
	return []*Operation{
		newOperation("create_fast_swap", "Create fast swap", fastSwapDesc,
			WalletSingle, fastSwapParams(d),
			(*api.Client).CreateFastSwap,
			func(dp *Dispatcher, req *model.FastSwapRequest, env *model.Envelope) (string, error) {
				return template.FastSwapCreated(decodeID(env), req, dp.docs(env))
			}),

		newOperation("create_fast_swaps", "Create fast swaps",
			fastSwapDesc+", using multiple wallets to trade simultaneously",
			WalletList, fastSwapsParams(d),
			(*api.Client).CreateFastSwaps,
			func(dp *Dispatcher, req *model.FastSwapsRequest, env *model.Envelope) (string, error) {
				var res []model.IDResult
				if err := decodeList(env, &res, "list", "orders"); err != nil {
					return "", err
				}
				ids := lo.Map(res, func(r model.IDResult, _ int) string { return idOrUnknown(r.ID) })
				return template.FastSwapsCreated(ids, req, dp.docs(env))
			}),

		newOperation("get_swap_order_info", "Get swap order info", "Query fast buy/sell order information",
			WalletNone, s.Params(
				s.String("ids").NonEmpty().Require().Desc("List of order IDs, multiple IDs separated by commas"),
			),
			(*api.Client).SwapOrderInfo,
			func(dp *Dispatcher, req *model.SwapOrderInfoRequest, env *model.Envelope) (string, error) {
				var orders []model.SwapOrderInfo
				if err := env.Decode(&orders); err != nil {
					return "", err
				}
				return template.SwapOrderInfo(orders, dp.docs(env))
			}),

		newOperation("get_swap_records", "Get swap records", "Get all fast buy/sell records for the user",
			WalletNone, s.Params(fields(pageParams(10, 20), []*s.Field{
				s.String(chainField).Enum(allChains...).Desc("Filter by chain, optional"),
			})...),
			(*api.Client).SwapRecords,
			func(dp *Dispatcher, req *model.SwapRecordsRequest, env *model.Envelope) (string, error) {
				var records []model.SwapRecord
				if err := decodeList(env, &records, "list", "records"); err != nil {
					return "", err
				}
				return template.SwapRecords(records, dp.docs(env))
			}),

		newOperation("swap_tpsl_tasks", "Get take profit/stop loss tasks",
			"Get all take profit/stop loss tasks created by fast buy/sell. Note: All parameters are optional, you can query the first 20 tasks without any parameters",
			WalletNone, s.Params(fields(pageParams(20, 100), []*s.Field{
				s.String(chainField).Enum(allChains...).Desc("Filter by chain, optional"),
				s.String("state").Enum("init", "done", "expired", "canceled").Default("init").Desc("Filter by task state"),
				s.String("sourceId").Default("").Desc("Fast swap order id the tasks were created from"),
				s.String("token").Default("").Desc("Filter by token address"),
				s.String("sortBy").Default(""),
				s.Integer("sort").Default(-1).Desc("1 ascending, -1 descending"),
			})...),
			(*api.Client).SwapTpslTasks,
			func(dp *Dispatcher, req *model.TpslTasksRequest, env *model.Envelope) (string, error) {
				var tasks []model.TpslTask
				if err := decodeList(env, &tasks, "list", "orders"); err != nil {
					return "", err
				}
				return template.TpslTasks(tasks, dp.docs(env))
			}),

		newOperation("edit_fastswap_tpsl_order", "Edit take profit/stop loss order",
			"Edit take profit/stop loss orders created by fast buy/sell, can modify trigger price, transaction amount, slippage and other parameters. Only generate parameters that user wants to modify and required parameters, do not pass parameters that are not specified or null.",
			WalletNone, editLimitParams(),
			(*api.Client).EditLimitOrder,
			tpslChanged[model.EditLimitOrderRequest](template.TpslEdited)),

		newOperation("enable_fastswap_tpsl_order", "Enable take profit/stop loss order",
			"Enable/disable take profit/stop loss orders created by fast buy/sell",
			WalletNone, switchParams(),
			(*api.Client).SwitchLimitOrder,
			tpslChanged[model.ToggleRequest](template.TpslToggled)),

		newOperation("delete_fastswap_tpsl_order", "Delete take profit/stop loss order",
			"Delete take profit/stop loss orders created by fast buy/sell",
			WalletNone, s.Params(idParam()),
			func(c *api.Client, req *model.DeleteRequest) (*model.Envelope, error) {
				return c.DeleteLimitOrder(req.ID)
			},
			tpslChanged[model.DeleteRequest](template.TpslDeleted)),
	}
}

func tpslChanged[Req any](action template.TpslAction) func(*Dispatcher, *Req, *model.Envelope) (string, error) {
	return func(_ *Dispatcher, _ *Req, env *model.Envelope) (string, error) {
		return template.TpslChanged(action, env.Res)
	}
}
