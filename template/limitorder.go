package template

import (
	"github.com/flosch/pongo2/v6"
	"github.com/hellodex/dbot-mcp/model"
)

// DeleteSources maps delete_all sources to what they remove.
var DeleteSources = map[string]string{
	"normal":         "Manually created limit orders",
	"pnl_for_follow": "Take profit/stop loss orders created by following",
	"pnl_for_swap":   "Take profit/stop loss orders created by quick swap",
}

const limitOrdersCreatedTemplate = `✅ Limit orders created successfully!

Created {{ orders|length }} limit orders
Chain: {{ req.Chain }}
Token: {{ req.Pair }}

{% for o in orders %}{% if not forloop.First %}

{% endif %}Order ID: {{ o.ID }}
- Trade Type: {{ o.Setting.TradeType }}
- Trigger Price: ${{ o.Setting.TriggerPriceUsd }}
- Trigger Direction: {{ o.Setting.TriggerDirection }}
- Trade Amount: {{ o.Setting.CurrencyAmountUI|num }}
- Status: {{ o.Setting.Enabled|yesno:"Enabled,Disabled" }}{% endfor %}

Docs: {{ docs }}`

const limitOrderChangedTemplate = `✅ Limit order {{ action }} successfully!

Order ID: {{ id }}
{% if status %}New Status: {{ status }}
{% endif %}
Docs: {{ docs }}`

const limitOrdersDeletedTemplate = `✅ Batch delete limit orders successful!

Order IDs: {{ ids|join:", " }}

Docs: {{ docs }}`

const allLimitOrdersDeletedTemplate = `✅ Delete limit orders successful!

Deleted Type: {{ source }}

Docs: {{ docs }}`

const limitOrdersTemplate = `📊 Limit Orders List ({{ orders|length }} orders total):

{% for o in orders %}{{ forloop.Counter }}. Order ID: {{ o.ID }}
   Chain: {{ o.Chain }}
   Trading Pair: {{ o.Pair }}
   Pair Type: {{ o.PairType }}
   Trade Type: {{ o.TradeType }}
   State: {{ o.State }}
   Enabled: {{ o.Enabled|yesno:"Yes,No" }}
   Trigger Price: ${{ o.TriggerPriceUsd }}
   Trigger Direction: {{ o.TriggerDirection }}
   Amount: {{ o.CurrencyAmountUI }}
   Wallet: {{ o.WalletName }} ({{ o.WalletAddress }})
   Group ID: {{ o.GroupID }}
   Expiry Time: {{ o.ExpireAt|datetime }}
   Max Slippage: {{ o.MaxSlippage|pct1 }}
   Jito Enabled: {{ o.JitoEnabled|yesno:"Yes,No" }}
{% if o.JitoEnabled %}   Jito Fee: {{ o.JitoTip|num }} SOL
{% endif %}{% if o.ErrorMessage %}   Error Message: {{ o.ErrorMessage }}
{% endif %}{% if o.TokenInfo %}   Token Name: {{ o.TokenInfo.Name }} ({{ o.TokenInfo.Symbol }})
{% endif %}
{% empty %}No limit orders

{% endfor %}Docs: {{ docs }}`

type createdLimitOrder struct {
	ID      string
	Setting model.LimitOrderSetting
}

// LimitOrdersCreated pairs each submitted setting with the id returned at the same index.
func LimitOrdersCreated(ids []string, req *model.CreateLimitOrdersRequest, docs string) (string, error) {
	orders := make([]createdLimitOrder, len(req.Settings))
	for i, setting := range req.Settings {
		orders[i] = createdLimitOrder{ID: "Unknown", Setting: setting}
		if i < len(ids) && ids[i] != "" {
			orders[i].ID = ids[i]
		}
	}
	return render(limitOrdersCreatedTemplate, pongo2.Context{
		"orders": orders,
		"req":    req,
		"docs":   docs,
	})
}

func LimitOrderEdited(id, docs string) (string, error) {
	return limitOrderChanged("edited", id, "", docs)
}

func LimitOrderSwitched(id string, enabled bool, docs string) (string, error) {
	status := "Disabled"
	if enabled {
		status = "Enabled"
	}
	return limitOrderChanged("status switched", id, status, docs)
}

func LimitOrderDeleted(id, docs string) (string, error) {
	return limitOrderChanged("deleted", id, "", docs)
}

func limitOrderChanged(action, id, status, docs string) (string, error) {
	return render(limitOrderChangedTemplate, pongo2.Context{
		"action": action,
		"id":     id,
		"status": status,
		"docs":   docs,
	})
}

func LimitOrdersDeleted(ids []string, docs string) (string, error) {
	return render(limitOrdersDeletedTemplate, pongo2.Context{"ids": ids, "docs": docs})
}

func AllLimitOrdersDeleted(source, docs string) (string, error) {
	label, ok := DeleteSources[source]
	if !ok {
		label = source
	}
	return render(allLimitOrdersDeletedTemplate, pongo2.Context{"source": label, "docs": docs})
}

func LimitOrders(orders []model.LimitOrderInfo, docs string) (string, error) {
	return render(limitOrdersTemplate, pongo2.Context{"orders": orders, "docs": docs})
}
