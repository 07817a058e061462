package template

import (
	"github.com/flosch/pongo2/v6"
	"github.com/hellodex/dbot-mcp/model"
)

// OrderKind tells the two conditional order families apart.
type OrderKind int

const (
	MigrateOrder OrderKind = iota
	DevOrder
)

// Title is the human name of the task family, "Sell-on-open task" or "Follow-dev-sell task".
func (k OrderKind) Title() string {
	if k == DevOrder {
		return "Follow-dev-sell task"
	}
	return "Sell-on-open task"
}

func (k OrderKind) plural() string {
	if k == DevOrder {
		return "follow-dev-sell tasks"
	}
	return "sell-on-open tasks"
}

// ConditionalView is what the create and edit texts echo back.
type ConditionalView struct {
	Kind              OrderKind
	ID                string
	Chain             string
	Pair              string
	AmountOrPercent   float64
	MinDevSellPercent float64
	Docs              string
}

const conditionalCreatedTemplate = `✅ {{ title }} created successfully!

Task ID: {{ v.ID }}
Chain: {{ v.Chain }}
Token: {{ v.Pair }}
{% if dev %}Trigger Ratio: {{ v.MinDevSellPercent|pct1 }}
{% endif %}Sell Ratio: {{ v.AmountOrPercent|pct1 }}

{% if dev %}💡 When the developer sells over {{ v.MinDevSellPercent|pct1 }}, the system will automatically sell {{ v.AmountOrPercent|pct1 }} of your tokens.{% else %}💡 The system will automatically execute the sell when the token migrates from Pump to Raydium.{% endif %}

Docs: {{ v.Docs }}`

const conditionalEditedTemplate = `✅ {{ title }} edited successfully!

Task ID: {{ v.ID }}
Chain: {{ v.Chain }}
Token: {{ v.Pair }}
{% if dev %}Trigger Ratio: {{ v.MinDevSellPercent|pct1 }}
{% endif %}Sell Ratio: {{ v.AmountOrPercent|pct1 }}

Docs: {{ v.Docs }}`

const conditionalToggledTemplate = `✅ {{ title }} status updated successfully!

Task ID: {{ id }}
Status: {{ enabled|yesno:"Enabled,Disabled" }}

Docs: {{ docs }}`

const conditionalDeletedTemplate = `✅ {{ title }} deleted successfully!

Task ID: {{ id }}

Docs: {{ docs }}`

const conditionalListTemplate = `✅ {{ title }} list retrieved successfully!

📊 Statistics:
- Total tasks: {{ page.Total }}
- Current page: {{ page.Page + 1 }}
- Page size: {{ page.Size }}

{% if page.Orders %}📋 Task List:
{% for o in page.Orders %}
{{ forloop.Counter }}. Task ID: {{ o.ID }}
   - Token: {{ o.Pair }}
{% if dev %}   - Trigger Ratio: {{ o.MinDevSellPercent|pct1 }}
{% endif %}   - Sell Ratio: {{ o.AmountOrPercent|pct1 }}
   - Status: {{ o.State|default:"unknown" }}
   - Enabled: {{ o.Enabled|yesno:"Yes,No" }}
{% if o.CreatedAt %}   - Created At: {{ o.CreatedAt }}
{% endif %}{% endfor %}{% else %}📋 No {{ plural }} found.
{% endif %}
📚 Docs: {{ docs }}`

func ConditionalCreated(v ConditionalView) (string, error) {
	return render(conditionalCreatedTemplate, conditionalContext(v))
}

func ConditionalEdited(v ConditionalView) (string, error) {
	return render(conditionalEditedTemplate, conditionalContext(v))
}

func ConditionalToggled(kind OrderKind, id string, enabled bool, docs string) (string, error) {
	return render(conditionalToggledTemplate, pongo2.Context{
		"title":   kind.Title(),
		"id":      id,
		"enabled": enabled,
		"docs":    docs,
	})
}

func ConditionalDeleted(kind OrderKind, id string, docs string) (string, error) {
	return render(conditionalDeletedTemplate, pongo2.Context{
		"title": kind.Title(),
		"id":    id,
		"docs":  docs,
	})
}

func ConditionalList(kind OrderKind, page *model.OrderPage, docs string) (string, error) {
	return render(conditionalListTemplate, pongo2.Context{
		"title":  kind.Title(),
		"plural": kind.plural(),
		"dev":    kind == DevOrder,
		"page":   page,
		"docs":   docs,
	})
}

func conditionalContext(v ConditionalView) pongo2.Context {
	return pongo2.Context{
		"title": v.Kind.Title(),
		"dev":   v.Kind == DevOrder,
		"v":     v,
	}
}
