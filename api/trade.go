package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/hellodex/dbot-mcp/model"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
)

const (
	swapOrderPath     = "/automation/swap_order"
	swapOrdersPath    = "/automation/swap_orders"
	swapTradesPath    = "/account/swap_trades"
	swapPnlOrdersPath = "/automation/pnl_orders_from_swap_order"
)

func (c *Client) CreateFastSwap(req *model.FastSwapRequest) (*model.Envelope, error) {
	return c.call(http.MethodPost, swapOrderPath, nil, req)
}

func (c *Client) CreateFastSwaps(req *model.FastSwapsRequest) (*model.Envelope, error) {
	return c.call(http.MethodPost, swapOrdersPath, nil, req)
}

// SwapOrderInfo fetches orders by comma separated ids. On success res is
// rewritten to a list of model.SwapOrderInfo with camelCase keys.
func (c *Client) SwapOrderInfo(req *model.SwapOrderInfoRequest) (*model.Envelope, error) {
	env, err := c.call(http.MethodGet, swapOrdersPath, ordersQuery(splitIDs(req.IDs)), nil)
	if err != nil || env.Err {
		return env, err
	}

	raw, err := json.Marshal(NormalizeSwapOrders(env.Res))
	if err != nil {
		return nil, err
	}
	env.Res = raw
	return env, nil
}

func (c *Client) SwapRecords(req *model.SwapRecordsRequest) (*model.Envelope, error) {
	return c.call(http.MethodGet, swapTradesPath, queryOf(req), nil)
}

func (c *Client) SwapTpslTasks(req *model.TpslTasksRequest) (*model.Envelope, error) {
	return c.call(http.MethodGet, swapPnlOrdersPath, queryOf(req), nil)
}

// NormalizeSwapOrders accepts a list or a single record, keyed in either camelCase or snake_case.
func NormalizeSwapOrders(raw []byte) []model.SwapOrderInfo {
	res := gjson.ParseBytes(raw)
	var items []gjson.Result
	switch {
	case res.IsArray():
		items = res.Array()
	case res.IsObject():
		items = []gjson.Result{res}
	}

	return lo.Map(items, func(o gjson.Result, _ int) model.SwapOrderInfo {
		return model.SwapOrderInfo{
			ID:           pick(o, "id").String(),
			State:        pick(o, "state").String(),
			Chain:        pick(o, "chain").String(),
			TradeType:    pick(o, "tradeType", "trade_type").String(),
			TxPriceUsd:   model.Text(pick(o, "txPriceUsd", "tx_price_usd").String()),
			SwapHash:     pick(o, "swapHash", "swap_hash").String(),
			ErrorCode:    pick(o, "errorCode", "error_code").String(),
			ErrorMessage: pick(o, "errorMessage", "error_message").String(),
		}
	})
}

// pick returns the first key holding a non-empty value.
func pick(o gjson.Result, keys ...string) gjson.Result {
	for _, key := range keys {
		v := o.Get(key)
		if v.Exists() && v.Type != gjson.Null && v.String() != "" {
			return v
		}
	}
	return gjson.Result{}
}

func splitIDs(ids string) []string {
	return lo.Compact(lo.Map(strings.Split(ids, ","), func(id string, _ int) string {
		return strings.TrimSpace(id)
	}))
}

func ordersQuery(ids []string) url.Values {
	return url.Values{"ids": {strings.Join(ids, ",")}}
}
