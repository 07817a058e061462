package template

import (
	"github.com/flosch/pongo2/v6"
	"github.com/hellodex/dbot-mcp/model"
	"github.com/hellodex/dbot-mcp/util"
)

const copyTradingSavedTemplate = `✅ Copy trading task {{ action }} successfully!

📋 Task Information:
- Task ID: {{ id }}
- Task Name: {{ req.Name }}
- Chain: {{ req.Chain }}
- Target Addresses: {{ req.TargetIDs|join:", " }}
- Status: {{ req.Enabled|yesno:"Enabled,Disabled" }}
- Wallet ID: {{ wallet }}
{% if req.GroupID %}- Group ID: {{ req.GroupID }}
{% endif %}
🛒 Buy Settings:
- Enabled: {{ req.BuySettings.Enabled|yesno:"Yes,No" }}
- Max Buy Amount: {{ req.BuySettings.MaxBuyAmountUI }}
- Buy Amount Type: {{ req.BuySettings.BuyAmountType|default:"follow_amount" }}

💰 Sell Settings:
- Enabled: {{ req.SellSettings.Enabled|yesno:"Yes,No" }}
- Mode: {{ req.SellSettings.Mode|default:"mixed" }}

Docs: {{ docs }}`

const copyTradingSwitchedTemplate = `✅ Copy trading task status switched successfully!

📋 Task Information:
- Task ID: {{ req.ID }}
- New Status: {{ req.Enabled|yesno:"Enabled,Disabled" }}
{% if req.ClosePnlOrder %}- Also closed all take-profit/stop-loss orders
{% endif %}
Docs: {{ docs }}`

const copyTradingDeletedTemplate = `✅ Copy trading task deleted successfully!

📋 Deletion Information:
- Task ID: {{ req.ID }}
{% if req.DeletePnlOrder %}- Also deleted all associated take-profit/stop-loss orders{% else %}- Kept associated take-profit/stop-loss orders{% endif %}

Docs: {{ docs }}`

const copyTradingTasksTemplate = `📋 Copy Trading Tasks ({{ tasks|length }} tasks, page {{ page.Page + 1 }}, size {{ page.Size }}):

{% for t in tasks %}{{ forloop.Counter }}. Task ID: {{ t.ID }}
   Name: {{ t.Name }}
   Chain: {{ t.Chain }}
   Status: {{ t.Enabled|yesno:"Enabled,Disabled" }}
   Target Addresses: {{ t.TargetIDs|join:", " }}
   Wallet ID: {{ t.WalletID }}
{% if t.GroupID %}   Group ID: {{ t.GroupID }}
{% endif %}   Buy: {{ t.BuySettings.Enabled|yesno:"Yes,No" }} ({{ t.BuySettings.BuyAmountType|default:"follow_amount" }}, max {{ t.BuySettings.MaxBuyAmountUI|default:"-" }})
   Sell: {{ t.SellSettings.Enabled|yesno:"Yes,No" }} ({{ t.SellSettings.Mode|default:"mixed" }})
{% if t.CreatedAt %}   Created At: {{ t.CreatedAt|datetime }}
{% endif %}
{% empty %}No copy trading tasks found.

{% endfor %}Docs: {{ docs }}`

// CopyTradingCreated and CopyTradingEdited echo the saved task. The wallet id is masked.
func CopyTradingCreated(id string, req *model.CopyTradingRequest, docs string) (string, error) {
	return copyTradingSaved("created", id, req, docs)
}

func CopyTradingEdited(req *model.EditCopyTradingRequest, docs string) (string, error) {
	return copyTradingSaved("edited", req.ID, &req.CopyTradingRequest, docs)
}

func copyTradingSaved(action, id string, req *model.CopyTradingRequest, docs string) (string, error) {
	return render(copyTradingSavedTemplate, pongo2.Context{
		"action": action,
		"id":     id,
		"req":    req,
		"wallet": util.MaskWalletID(req.WalletID),
		"docs":   docs,
	})
}

func CopyTradingSwitched(req *model.SwitchCopyTradingRequest, docs string) (string, error) {
	return render(copyTradingSwitchedTemplate, pongo2.Context{"req": req, "docs": docs})
}

func CopyTradingDeleted(req *model.DeleteCopyTradingRequest, docs string) (string, error) {
	return render(copyTradingDeletedTemplate, pongo2.Context{"req": req, "docs": docs})
}

func CopyTradingTasks(tasks []model.CopyTradingTask, page *model.PageRequest, docs string) (string, error) {
	for i := range tasks {
		tasks[i].WalletID = util.MaskWalletID(tasks[i].WalletID)
	}
	return render(copyTradingTasksTemplate, pongo2.Context{
		"tasks": tasks,
		"page":  page,
		"docs":  docs,
	})
}
