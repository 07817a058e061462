package template

import (
	"encoding/json"
	"fmt"

	"github.com/flosch/pongo2/v6"
	"github.com/hellodex/dbot-mcp/model"
	"github.com/hellodex/dbot-mcp/util"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const fastSwapCreatedTemplate = `✅ Trade order created successfully!

Order ID: {{ id }}
Chain: {{ req.Chain }}
Transaction Type: {{ req.Type }}
Token: {{ req.Pair }}

⚠️ Note: Please immediately use get_swap_order_info tool with order ID to check order status and transaction result.

Documentation: {{ docs }}`

const fastSwapsCreatedTemplate = `✅ Batch trade orders created successfully!

Order ID List: {{ ids|join:", " }}
Chain: {{ req.Chain }}
Trade Type: {{ req.Type }}
Token: {{ req.Pair }}

⚠️ Note: Please use get_swap_order_info tool with order IDs immediately to check order status and transaction results.

Docs: {{ docs }}`

const swapOrderInfoTemplate = `📊 Order Information Query Results ({{ orders|length }} orders in total):

{% for o in orders %}{{ forloop.Counter }}. Order ID: {{ o.ID }}
   Status: {{ o.State }}
   Chain: {{ o.Chain }}
   Type: {{ o.TradeType }}
{% if o.TxPriceUsd %}   Price: ${{ o.TxPriceUsd }}
{% endif %}{% if o.SwapHash %}   Transaction Hash: {{ o.SwapHash }}
{% endif %}{% if o.ErrorCode or o.ErrorMessage %}   Error: {{ o.ErrorCode }} - {{ o.ErrorMessage }}
{% endif %}
{% endfor %}
Docs: {{ docs }}`

const swapRecordsTemplate = `📜 Fast Buy/Sell Records ({{ records|length }} records in total):

{% for r in records %}[{{ forloop.Counter }}] {{ r.CreateAt|datetime }}
  Order ID: {{ r.ID }}
  Status: {{ r.State }} | Chain: {{ r.Chain }} | Type: {{ r.Type }}
  Trading Pair: {{ r.Pair }}
{% if r.Trade %}  Trade: {{ r.Trade }}
{% endif %}{% if r.ErrorMessage %}  Error: {{ r.ErrorMessage }}
{% endif %}
{% empty %}No records found.
{% endfor %}
Docs: {{ docs }}`

const tpslTasksTemplate = `📈 Take Profit/Stop Loss Task List ({{ tasks|length }} tasks in total, showing {{ tasks|length }}):

{% for t in tasks %}{{ forloop.Counter }}. Task ID: {{ t.ID }}
   Status: {{ t.State }} {{ t.Enabled|yesno:"(Enabled),(Disabled)" }}
   Chain: {{ t.Chain }}
   Token: {{ t.Pair }}
   Trade Type: {{ t.TradeType }}
   Trigger Direction: {% if t.TriggerDirection == "up" %}When price rises{% else %}When price falls{% endif %}
   Trigger Price: ${{ t.TriggerPriceUsd }}
   Take Profit/Stop Loss Percentage: {{ t.TriggerPercent|pct2 }}
{% if t.BasePriceUsd %}   Buy Price: ${{ t.BasePriceUsd }}
{% endif %}{% if t.TxPriceUsd %}   Transaction Price: ${{ t.TxPriceUsd }}
{% endif %}{% if t.WalletName %}   Wallet: {{ t.WalletName }}
{% endif %}   Source: {% if t.Source == "swap_order" %}Fast Buy/Sell{% else %}Copy Trade{% endif %}
{% if t.ErrorCode or t.ErrorMessage %}   Error: {{ t.ErrorCode }} - {{ t.ErrorMessage }}
{% endif %}
{% empty %}No take profit/stop loss tasks

{% endfor %}
Docs: {{ docs }}`

const tpslChangedTemplate = `✅ Successfully {{ action }} take profit/stop loss order: {{ result }}

Please print result status.`

// TpslAction names the change applied to a take-profit/stop-loss order.
type TpslAction string

const (
	TpslEdited  TpslAction = "edited"
	TpslToggled TpslAction = "enabled/disabled"
	TpslDeleted TpslAction = "deleted"
)

type swapRecordView struct {
	model.SwapRecord
	Trade string
}

func FastSwapCreated(id string, req *model.FastSwapRequest, docs string) (string, error) {
	return render(fastSwapCreatedTemplate, pongo2.Context{"id": id, "req": req, "docs": docs})
}

func FastSwapsCreated(ids []string, req *model.FastSwapsRequest, docs string) (string, error) {
	return render(fastSwapsCreatedTemplate, pongo2.Context{"ids": ids, "req": req, "docs": docs})
}

func SwapOrderInfo(orders []model.SwapOrderInfo, docs string) (string, error) {
	return render(swapOrderInfoTemplate, pongo2.Context{"orders": orders, "docs": docs})
}

func SwapRecords(records []model.SwapRecord, docs string) (string, error) {
	views := lo.Map(records, func(r model.SwapRecord, _ int) swapRecordView {
		return swapRecordView{SwapRecord: r, Trade: tradeLine(r.Send, r.Receive)}
	})
	return render(swapRecordsTemplate, pongo2.Context{"records": views, "docs": docs})
}

func TpslTasks(tasks []model.TpslTask, docs string) (string, error) {
	return render(tpslTasksTemplate, pongo2.Context{"tasks": tasks, "docs": docs})
}

func TpslChanged(action TpslAction, res json.RawMessage) (string, error) {
	return render(tpslChangedTemplate, pongo2.Context{
		"action": string(action),
		"result": util.PrettyRaw(res),
	})
}

// tradeLine renders "1.50 SOL -> 1200.00 BONK" from raw on-chain amounts.
func tradeLine(send, receive *model.TokenAmount) string {
	if send == nil || receive == nil || send.Info == nil || receive.Info == nil {
		return ""
	}
	return fmt.Sprintf("%s %s -> %s %s",
		uiAmount(send), send.Info.Symbol, uiAmount(receive), receive.Info.Symbol)
}

func uiAmount(a *model.TokenAmount) string {
	d, err := decimal.NewFromString(a.Amount.String())
	if err != nil {
		d = decimal.Zero
	}
	return d.Shift(-a.Info.Decimals).StringFixed(2)
}
