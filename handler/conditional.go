package handler

import (
	"strings"

	"github.com/hellodex/dbot-mcp/api"
	"github.com/hellodex/dbot-mcp/config"
	"github.com/hellodex/dbot-mcp/model"
	s "github.com/hellodex/dbot-mcp/schema"
	"github.com/hellodex/dbot-mcp/template"
)

func conditionalOrderFields(d *config.Defaults, dev bool) []*s.Field {
	out := []*s.Field{
		chainParam(d.Chain, "solana"),
		s.String("pairType").Enum("pump", "raydium_amm").Default("pump").Desc("Pair type"),
		s.String("pair").NonEmpty().Require().Desc("Token address or trading pair address"),
		s.String(walletIDField).NonEmpty().Require().Desc(walletIDDesc),
		s.String("tradeType").Enum("sell").Default("sell").Desc("Trade type, only sell is supported"),
		s.Number("amountOrPercent").Range(0, 1).Require().Desc("Sell ratio (0.00-1.00)"),
	}
	if dev {
		out = append(out, s.Number("minDevSellPercent").Range(0, 1).Default(d.MinDevSellPercent).
			Desc("Trigger when the developer has sold more than this ratio (0.00-1.00)"))
	}
	return append(out,
		s.Bool("customFeeAndTip").Default(d.CustomFeeAndTip).
			Desc(`"true" means both priority fee and tip are valid, "false" means only one of them applies depending on mode`),
		s.String("priorityFee").Default(d.PriorityFee).
			Desc("Priority fee (SOL), empty string means using auto priority fee"),
		s.Bool("jitoEnabled").Default(d.JitoEnabled).Desc("Whether to enable anti-sandwich mode"),
		s.Number("jitoTip").Min(0).Default(d.JitoTip).Desc("Tip used in anti-sandwich mode (SOL)"),
		s.Integer("expireDelta").Range(0, 432000000).Default(d.ExpireDelta).
			Desc("Task valid duration (milliseconds), maximum value is 432000000"),
		s.Number("maxSlippage").Range(0, 1).Default(d.MaxSlippage).Desc("Maximum slippage (0.00-1.00)"),
		s.Integer("concurrentNodes").Range(1, 3).Default(d.ConcurrentNodes).Desc("Number of concurrent nodes (1-3)"),
		s.Integer("retries").Range(0, 10).Default(d.Retries).Desc("Number of retries after failure (0-10)"),
	)
}

func listOrderParams(d *config.Defaults) *s.Field {
	return s.Params(fields(pageParams(20, 100), []*s.Field{
		chainParam(d.Chain, "solana"),
		s.String("state").Enum("init", "processing", "done", "fail", "expired").Desc("Filter by task state"),
		s.String("source").Desc("Filter by task source"),
	})...)
}

func conditionalTitle(action string, kind template.OrderKind) string {
	return action + " " + strings.ToLower(kind.Title())
}

func conditionalView(kind template.OrderKind, id string, o *model.ConditionalOrder, minDev float64, docs string) template.ConditionalView {
	return template.ConditionalView{
		Kind:              kind,
		ID:                id,
		Chain:             o.Chain,
		Pair:              o.Pair,
		AmountOrPercent:   o.AmountOrPercent,
		MinDevSellPercent: minDev,
		Docs:              docs,
	}
}

func conditionalOrderOperations(d *config.Defaults) []*Operation {
	migrate, dev := template.MigrateOrder, template.DevOrder

	return []*Operation{
		newOperation("create_migrate_order", conditionalTitle("Create", migrate),
			"Create a sell-on-open task - automatically sells when a token opens on Raydium (migrates from Pump).",
			WalletSingle, s.Params(conditionalOrderFields(d, false)...),
			(*api.Client).CreateMigrateOrder,
			func(dp *Dispatcher, req *model.MigrateOrderRequest, env *model.Envelope) (string, error) {
				return template.ConditionalCreated(conditionalView(migrate, decodeID(env), &req.ConditionalOrder, 0, dp.docs(env)))
			}),

		newOperation("create_dev_order", conditionalTitle("Create", dev),
			"Create a follow-dev-sell task - automatically sells when the developer's sell volume reaches a specified ratio.",
			WalletSingle, s.Params(conditionalOrderFields(d, true)...),
			(*api.Client).CreateDevOrder,
			func(dp *Dispatcher, req *model.DevOrderRequest, env *model.Envelope) (string, error) {
				return template.ConditionalCreated(conditionalView(dev, decodeID(env), &req.ConditionalOrder, req.MinDevSellPercent, dp.docs(env)))
			}),

		newOperation("update_migrate_order", conditionalTitle("Edit", migrate),
			"Edit a sell-on-open task.",
			WalletSingle, s.Params(append([]*s.Field{idParam()}, conditionalOrderFields(d, false)...)...),
			(*api.Client).UpdateMigrateOrder,
			func(dp *Dispatcher, req *model.UpdateMigrateOrderRequest, env *model.Envelope) (string, error) {
				return template.ConditionalEdited(conditionalView(migrate, req.ID, &req.ConditionalOrder, 0, dp.docs(env)))
			}),

		newOperation("update_dev_order", conditionalTitle("Edit", dev),
			"Edit a follow-dev-sell task.",
			WalletSingle, s.Params(append([]*s.Field{idParam()}, conditionalOrderFields(d, true)...)...),
			(*api.Client).UpdateDevOrder,
			func(dp *Dispatcher, req *model.UpdateDevOrderRequest, env *model.Envelope) (string, error) {
				return template.ConditionalEdited(conditionalView(dev, req.ID, &req.ConditionalOrder, req.MinDevSellPercent, dp.docs(env)))
			}),

		toggleOperation("toggle_migrate_order", migrate, "Enable/disable a sell-on-open task.", (*api.Client).ToggleMigrateOrder),
		toggleOperation("toggle_dev_order", dev, "Enable/disable a follow-dev-sell task.", (*api.Client).ToggleDevOrder),
		deleteOperation("delete_migrate_order", migrate, "Delete a sell-on-open task.", (*api.Client).DeleteMigrateOrder),
		deleteOperation("delete_dev_order", dev, "Delete a follow-dev-sell task.", (*api.Client).DeleteDevOrder),
		listOperation(d, "get_migrate_orders", migrate, "Get the list of sell-on-open tasks.", (*api.Client).MigrateOrders),
		listOperation(d, "get_dev_orders", dev, "Get the list of follow-dev-sell tasks.", (*api.Client).DevOrders),
	}
}

func toggleOperation(name string, kind template.OrderKind, desc string,
	call func(*api.Client, *model.ToggleRequest) (*model.Envelope, error)) *Operation {
	return newOperation(name, conditionalTitle("Toggle", kind), desc, WalletNone,
		s.Params(idParam(), s.Bool("enabled").Require().Desc("true to enable, false to disable")),
		call,
		func(dp *Dispatcher, req *model.ToggleRequest, env *model.Envelope) (string, error) {
			return template.ConditionalToggled(kind, req.ID, req.Enabled, dp.docs(env))
		})
}

func deleteOperation(name string, kind template.OrderKind, desc string,
	call func(*api.Client, string) (*model.Envelope, error)) *Operation {
	return newOperation(name, conditionalTitle("Delete", kind), desc, WalletNone,
		s.Params(idParam()),
		func(c *api.Client, req *model.DeleteRequest) (*model.Envelope, error) {
			return call(c, req.ID)
		},
		func(dp *Dispatcher, req *model.DeleteRequest, env *model.Envelope) (string, error) {
			return template.ConditionalDeleted(kind, req.ID, dp.docs(env))
		})
}

func listOperation(d *config.Defaults, name string, kind template.OrderKind, desc string,
	call func(*api.Client, *model.ListOrdersRequest) (*model.Envelope, error)) *Operation {
	return newOperation(name, conditionalTitle("Get", kind)+" list", desc, WalletNone,
		listOrderParams(d),
		call,
		func(dp *Dispatcher, req *model.ListOrdersRequest, env *model.Envelope) (string, error) {
			page, err := api.ParseOrderPage(env, req)
			if err != nil {
				return "", err
			}
			return template.ConditionalList(kind, page, dp.docs(env))
		})
}
