package template

import (
	"strings"
	"time"

	"github.com/flosch/pongo2/v6"
	"github.com/hellodex/dbot-mcp/model"
	"github.com/hellodex/dbot-mcp/util"
)

const NotFoundTokenInfo = "❌ Token information not found"

const walletListTemplate = `{% for w in wallets %}{{ forloop.Counter }}. Wallet ID: {{ w.ID }}
   Name: {{ w.Name }}
   Type: {{ w.Type }}
   Address: {{ w.Address }}

{% endfor %}`

const allWalletsTemplate = `💳 User Wallets Query Results ({{ total }} wallets total):

{% if total == 0 %}No wallets found
{% else %}{% if solana %}🔶 Solana Wallets ({{ solana|length }}):
{{ solanaList }}{% endif %}{% if evm %}🔷 EVM Wallets ({{ evm|length }}):
{{ evmList }}{% endif %}{% endif %}
📚 Documentation: {{ docs }}`

const typedWalletsTemplate = `💳 User Wallets Query Results ({{ wallets|length }} {{ type }} wallets):

{% if wallets %}{{ list }}{% else %}No wallets found
{% endif %}
📚 Documentation: {{ docs }}`

const tokenSecurityTemplate = `📌 {{ v.Symbol }}
{{ v.Contract }}

⚖️ Trading
┣ Price: {{ v.Price|price }}
┣ Market Cap: {{ v.MarketCap|mcap }}
┣ Token Created: {{ v.TokenCreated }}
┣ Pool Created: {{ v.PoolCreated }}
┣ DEX: {{ v.Exchange }}
┣ Pair: {{ v.Symbol }}/{{ v.Currency }}
┗ {{ v.Currency }} in Pool: {{ v.Reserve|fixed:2 }} {{ v.Currency }}

🔎 Security
┣ {% if v.CanMint %}❌ Mint Authority Not Revoked{% else %}✅ Mint Authority Revoked{% endif %} {% if v.CanFrozen %}❌ Freeze Authority Not Revoked{% else %}✅ Freeze Authority Revoked{% endif %}
┗ {% if v.Top10 < 0.3 %}✅{% else %}❌{% endif %} Top 10 Holders ({{ v.Top10|pct2 }})

🔗 Links
┗ {{ v.Links|join:" | " }}
`

type securityView struct {
	Symbol       string
	Contract     string
	Price        float64
	MarketCap    float64
	TokenCreated string
	PoolCreated  string
	Exchange     string
	Currency     string
	Reserve      string
	CanMint      bool
	CanFrozen    bool
	Top10        float64
	Links        []string
}

// Wallets renders the merged solana and evm listing used when no type was asked for.
func Wallets(solana, evm []model.WalletInfo, docs string) (string, error) {
	solanaList, err := render(walletListTemplate, pongo2.Context{"wallets": solana})
	if err != nil {
		return "", err
	}
	evmList, err := render(walletListTemplate, pongo2.Context{"wallets": evm})
	if err != nil {
		return "", err
	}

	return render(allWalletsTemplate, pongo2.Context{
		"total":      len(solana) + len(evm),
		"solana":     solana,
		"evm":        evm,
		"solanaList": solanaList,
		"evmList":    evmList,
		"docs":       docs,
	})
}

func WalletsOfType(walletType string, wallets []model.WalletInfo, docs string) (string, error) {
	list, err := render(walletListTemplate, pongo2.Context{"wallets": wallets})
	if err != nil {
		return "", err
	}

	return render(typedWalletsTemplate, pongo2.Context{
		"type":    walletType,
		"wallets": wallets,
		"list":    list,
		"docs":    docs,
	})
}

// TokenSecurity renders the trading and safety card of a pool. Ages are relative to now.
func TokenSecurity(info *model.TokenSecurityInfo, chain string, now time.Time) (string, error) {
	if info == nil {
		return NotFoundTokenInfo, nil
	}

	reserve := info.PoolSafetyInfo.CurrencyReserveUI.String()
	if reserve == "" {
		reserve = info.CurrencyReserve.String()
	}

	v := securityView{
		Symbol:       info.TokenInfo.Symbol,
		Contract:     info.TokenInfo.Contract,
		Price:        info.TokenPriceUsd.Float(),
		MarketCap:    info.TokenMcUsd.Float(),
		TokenCreated: util.FormatTimeAgo(info.TokenCreateAt.Int(), now),
		PoolCreated:  util.FormatTimeAgo(info.PoolCreateAt.Int(), now),
		Exchange:     info.Exchange,
		Currency:     info.CurrencyInfo.Symbol,
		Reserve:      reserve,
		CanMint:      info.PoolSafetyInfo.CanMint,
		CanFrozen:    info.PoolSafetyInfo.CanFrozen,
		Top10:        info.PoolSafetyInfo.Top10Percent.Float(),
		Links:        securityLinks(info, chain),
	}
	return render(tokenSecurityTemplate, pongo2.Context{"v": v})
}

func securityLinks(info *model.TokenSecurityInfo, chain string) []string {
	var links []string
	if info.Links.Website != "" {
		links = append(links, "[Website]("+info.Links.Website+")")
	}
	if info.Links.Twitter != "" {
		links = append(links, "[Twitter]("+info.Links.Twitter+")")
	}
	if info.Links.Telegram != "" {
		links = append(links, "[Telegram]("+info.Links.Telegram+")")
	}
	if strings.EqualFold(chain, "solana") {
		contract := info.TokenInfo.Contract
		links = append(links,
			"[Birdeye](https://birdeye.so/token/"+contract+")",
			"[Jupiter](https://jup.ag/swap/SOL-"+contract+")",
		)
	}
	return links
}
