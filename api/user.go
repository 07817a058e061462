package api

import (
	"net/http"

	"github.com/hellodex/dbot-mcp/model"
)

const (
	walletsPath = "/account/wallets"

	WalletTypeSolana = "solana"
	WalletTypeEVM    = "evm"
)

// Wallets lists the account's wallets of one type, solana when unset.
func (c *Client) Wallets(req *model.WalletsRequest) (*model.Envelope, error) {
	q := *req
	if q.Type == "" {
		q.Type = WalletTypeSolana
	}
	return c.call(http.MethodGet, walletsPath, queryOf(&q), nil)
}
