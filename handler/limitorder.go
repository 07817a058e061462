package handler

import (
	"github.com/hellodex/dbot-mcp/api"
	"github.com/hellodex/dbot-mcp/config"
	"github.com/hellodex/dbot-mcp/model"
	s "github.com/hellodex/dbot-mcp/schema"
	"github.com/hellodex/dbot-mcp/template"
)

const createLimitOrderDesc = `Create multi-chain limit buy and limit sell orders. Supports creating multiple limit orders in one call.

Example: create a single buy order
{
  "chain": "solana",
  "pair": "xxx",
  "settings": [{"tradeType": "buy", "triggerPriceUsd": "0.001", "triggerDirection": "down", "currencyAmountUI": 0.1}]
}`

const editLimitOrderDesc = `Edit a limit order, only generate parameters the user wants to modify along with required parameters. Unspecified or null parameters are not included.`

func limitSettingParam(d *config.Defaults) *s.Field {
	return s.Object("", fields(
		[]*s.Field{
			s.Bool("enabled").Default(true).Desc("Whether the order is enabled"),
			s.String("tradeType").Enum("buy", "sell").Require().Desc("Trade type"),
			s.String("triggerPriceUsd").NonEmpty().Require().Desc("Trigger price (USD)"),
			s.String("triggerDirection").Enum("up", "down").Require().
				Desc("up triggers when the price rises to the trigger price, down when it falls to it"),
			s.Decimal("currencyAmountUI").Min(0).Require().
				Desc("For buy, the amount to spend (ETH/SOL/BNB/TRX), for sell, the share of the position (0.00-1.00)"),
		},
		feeParams(d),
		[]*s.Field{
			s.Integer("expireDelta").Range(0, 432000000).Default(d.LimitExpireDelta).
				Desc("Order valid duration (milliseconds), maximum value is 432000000"),
			s.Bool("expireExecute").Default(d.PnlOrderExpireExecute).Desc("Whether to execute when the order expires"),
			s.Bool("useMidPrice").Default(d.PnlOrderUseMidPrice).Desc("Whether the order uses mid price"),
		},
	)...)
}

// editLimitParams are shared by limit orders and the take-profit/stop-loss
// orders created by fast swaps, which live behind the same endpoint.
func editLimitParams() *s.Field {
	return s.Params(fields(
		[]*s.Field{
			idParam(),
			s.Bool("enabled"),
			s.String("groupId"),
			s.String("triggerPriceUsd").NonEmpty().Desc("Trigger price (USD)"),
			s.String("triggerDirection").Enum("up", "down"),
			s.Number("currencyAmountUI").Min(0),
		},
		optionalFeeParams(),
		[]*s.Field{
			s.Integer("expireDelta").Range(0, 432000000),
			s.Bool("expireExecute"),
			s.Bool("useMidPrice"),
		},
	)...)
}

func switchParams() *s.Field {
	return s.Params(idParam(), s.Bool("enabled").Require().Desc("true to enable, false to disable"))
}

func limitOrderOperations(d *config.Defaults) []*Operation {
	return []*Operation{
		newOperation("create_limit_order", "Create limit order", createLimitOrderDesc,
			WalletSingle, s.Params(
				chainParam("solana", allChains...),
				s.String("pair").NonEmpty().Require().Desc("Token address or trading pair address"),
				walletParam(),
				s.String("groupId").Desc("Group ID, optional"),
				s.Array("settings", limitSettingParam(d)).Count(1, -1).Require().Desc("One entry per limit order"),
			),
			(*api.Client).CreateLimitOrders,
			func(dp *Dispatcher, req *model.CreateLimitOrdersRequest, env *model.Envelope) (string, error) {
				var res model.IDsResult
				if err := env.Decode(&res); err != nil {
					return "", err
				}
				return template.LimitOrdersCreated(res.IDs, req, dp.docs(env))
			}),

		newOperation("edit_limit_order", "Edit limit order", editLimitOrderDesc,
			WalletNone, editLimitParams(),
			(*api.Client).EditLimitOrder,
			func(dp *Dispatcher, req *model.EditLimitOrderRequest, env *model.Envelope) (string, error) {
				return template.LimitOrderEdited(req.ID, dp.docs(env))
			}),

		newOperation("switch_limit_order", "Switch limit order",
			"Enable/disable a specified limit order. Can be used to pause or resume execution of a limit order.",
			WalletNone, switchParams(),
			(*api.Client).SwitchLimitOrder,
			func(dp *Dispatcher, req *model.ToggleRequest, env *model.Envelope) (string, error) {
				return template.LimitOrderSwitched(req.ID, req.Enabled, dp.docs(env))
			}),

		newOperation("delete_limit_order", "Delete limit order", "Delete a specific limit order",
			WalletNone, s.Params(idParam()),
			func(c *api.Client, req *model.DeleteRequest) (*model.Envelope, error) {
				return c.DeleteLimitOrder(req.ID)
			},
			func(dp *Dispatcher, req *model.DeleteRequest, env *model.Envelope) (string, error) {
				return template.LimitOrderDeleted(req.ID, dp.docs(env))
			}),

		newOperation("delete_limit_orders", "Batch delete limit orders", "Batch delete specified limit orders",
			WalletNone, s.Params(
				s.Array("ids", s.String("").NonEmpty()).Count(1, -1).Require().Desc("Limit order ids to delete"),
			),
			(*api.Client).DeleteLimitOrders,
			func(dp *Dispatcher, req *model.DeleteManyRequest, env *model.Envelope) (string, error) {
				return template.LimitOrdersDeleted(req.IDs, dp.docs(env))
			}),

		newOperation("delete_all_limit_order", "Delete all limit orders",
			"Delete all limit orders (regardless of in progress/completed/expired)",
			WalletNone, s.Params(
				s.String("source").Enum("normal", "pnl_for_follow", "pnl_for_swap").Default("normal").
					Desc("normal: manually created orders, pnl_for_follow: take profit/stop loss orders created by following, pnl_for_swap: take profit/stop loss orders created by quick swap"),
			),
			(*api.Client).DeleteAllLimitOrders,
			func(dp *Dispatcher, req *model.DeleteAllRequest, env *model.Envelope) (string, error) {
				return template.AllLimitOrdersDeleted(req.Source, dp.docs(env))
			}),

		newOperation("limit_orders", "Get limit orders", "Get all limit orders for user.",
			WalletNone, s.Params(fields(pageParams(20, 20), []*s.Field{
				chainParam("solana", allChains...),
				s.String("pair").Desc("Filter by token or pair address"),
				s.String("state").Enum("init", "done", "expired", "canceled").Default("init").Desc("Filter by order state"),
				s.Bool("enabled").Desc("Filter by enabled status"),
				s.String("groupId").Default(""),
				s.String("token").Default(""),
				s.String("sortBy").Default(""),
				s.Integer("sort").Default(-1).Desc("1 ascending, -1 descending"),
			})...),
			(*api.Client).LimitOrders,
			func(dp *Dispatcher, req *model.ListLimitOrdersRequest, env *model.Envelope) (string, error) {
				var orders []model.LimitOrderInfo
				if err := decodeList(env, &orders, "list", "orders"); err != nil {
					return "", err
				}
				return template.LimitOrders(orders, dp.docs(env))
			}),
	}
}
