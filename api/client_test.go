package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hellodex/dbot-mcp/config"
	"github.com/hellodex/dbot-mcp/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	method string
	path   string
	query  string
	apiKey string
	body   map[string]any
}

func newTestClient(t *testing.T, status int, reply string) (*Client, *captured) {
	t.Helper()
	got := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.path = r.URL.Path
		got.query = r.URL.RawQuery
		got.apiKey = r.Header.Get(HeaderAPIKey)
		if data, _ := io.ReadAll(r.Body); len(data) > 0 {
			_ = json.Unmarshal(data, &got.body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.API.Key = "test-key"
	cfg.API.BaseURL = srv.URL
	cfg.API.SecurityURL = srv.URL
	cfg.API.Timeout = 5 * time.Second
	return New(cfg), got
}

func TestCreateMigrateOrder(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `{"err":false,"res":{"id":"abc"},"docs":"https://docs"}`)

	req := &model.MigrateOrderRequest{}
	req.Chain = "solana"
	req.Pair = "TOKEN123"
	req.WalletID = "wallet-1"
	req.AmountOrPercent = 0.5

	env, err := c.CreateMigrateOrder(req)
	require.NoError(t, err)
	assert.False(t, env.Err)
	assert.Equal(t, "https://docs", env.Docs)

	var id model.IDResult
	require.NoError(t, env.Decode(&id))
	assert.Equal(t, "abc", id.ID)

	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/automation/migrate_order", got.path)
	assert.Equal(t, "test-key", got.apiKey)
	assert.Equal(t, "TOKEN123", got.body["pair"])
	assert.Equal(t, 0.5, got.body["amountOrPercent"])
}

func TestLogicalErrorIsNotGoError(t *testing.T) {
	c, _ := newTestClient(t, http.StatusOK, `{"err":true,"res":{"message":"bad pair"},"docs":""}`)

	env, err := c.DeleteDevOrder("x1")
	require.NoError(t, err)
	assert.True(t, env.Err)
	assert.JSONEq(t, `{"message":"bad pair"}`, string(env.Res))
}

func TestHTTPError(t *testing.T) {
	c, got := newTestClient(t, http.StatusNotFound, `{"message":"missing"}`)

	_, err := c.DeleteLimitOrder("id/1")
	require.Error(t, err)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 404, httpErr.StatusCode)
	assert.Equal(t, "Not Found", httpErr.Status)
	assert.JSONEq(t, `{"message":"missing"}`, string(httpErr.Body))
	assert.True(t, IsTransport(err))
	assert.Equal(t, http.MethodDelete, got.method)
	assert.Equal(t, "/automation/limit_order/id/1", got.path)
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	cfg := config.Default()
	cfg.API.BaseURL = url
	cfg.API.Timeout = time.Second

	_, err := New(cfg).CopyTradingTasks(&model.PageRequest{Page: 0, Size: 10})
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, "/automation/follow_orders", netErr.Route)
	assert.True(t, IsTransport(err))
}

func TestInvalidEnvelope(t *testing.T) {
	c, _ := newTestClient(t, http.StatusOK, `<html>gateway</html>`)

	_, err := c.SwapRecords(&model.SwapRecordsRequest{Page: 0, Size: 10, Chain: "solana"})
	require.ErrorIs(t, err, ErrInvalidEnvelope)
	assert.True(t, IsTransport(err))
}

func TestListQuery(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `{"err":false,"res":[]}`)

	_, err := c.MigrateOrders(&model.ListOrdersRequest{Page: 1, Size: 20, Chain: "solana"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, got.method)
	assert.Equal(t, "chain=solana&page=1&size=20", got.query)
	assert.Nil(t, got.body)

	enabled := false
	_, err = c.LimitOrders(&model.ListLimitOrdersRequest{Page: 0, Size: 5, Chain: "bsc", State: "init", Enabled: &enabled})
	require.NoError(t, err)
	assert.Equal(t, "chain=bsc&enabled=false&groupId=&page=0&size=5&sort=0&sortBy=&state=init&token=", got.query)
}

func TestDeleteCopyTradingQuery(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `{"err":false,"res":{}}`)

	_, err := c.DeleteCopyTrading(&model.DeleteCopyTradingRequest{ID: "task-9", DeletePnlOrder: true})
	require.NoError(t, err)
	assert.Equal(t, "/automation/follow_order/task-9", got.path)
	assert.Equal(t, "deletePnlOrder=true", got.query)
}

func TestWalletsDefaultsToSolana(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `{"err":false,"res":[]}`)

	_, err := c.Wallets(&model.WalletsRequest{Page: 0, Size: 20})
	require.NoError(t, err)
	assert.Equal(t, "/account/wallets", got.path)
	assert.Equal(t, "page=0&size=20&type=solana", got.query)
}

func TestTokenSecurityUsesSecurityHost(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `{"err":false,"res":null}`)

	env, err := c.TokenSecurity(&model.TokenSecurityRequest{Chain: "solana", Pair: "P1"})
	require.NoError(t, err)
	assert.Equal(t, "/dex/poolinfo", got.path)
	assert.Equal(t, "chain=solana&pair=P1", got.query)
	assert.Equal(t, "null", string(env.Res))
}

func TestSwapOrderInfoNormalizesKeys(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `{"err":false,"res":[
		{"id":"o1","state":"done","chain":"solana","trade_type":"buy","tx_price_usd":0.0012,"swap_hash":"h1"},
		{"id":"o2","state":"fail","chain":"bsc","tradeType":"sell","error_code":"E1","errorMessage":"slippage"},
		null
	]}`)

	env, err := c.SwapOrderInfo(&model.SwapOrderInfoRequest{IDs: "o1, o2,"})
	require.NoError(t, err)
	assert.Equal(t, "ids=o1%2Co2", got.query)

	var orders []model.SwapOrderInfo
	require.NoError(t, env.Decode(&orders))
	require.Len(t, orders, 3)
	assert.Equal(t, "buy", orders[0].TradeType)
	assert.Equal(t, "0.0012", orders[0].TxPriceUsd.String())
	assert.Equal(t, "h1", orders[0].SwapHash)
	assert.Equal(t, "sell", orders[1].TradeType)
	assert.Equal(t, "E1", orders[1].ErrorCode)
	assert.Equal(t, "slippage", orders[1].ErrorMessage)
	assert.Empty(t, orders[2].ID)
}

func TestNormalizeSingleRecord(t *testing.T) {
	orders := NormalizeSwapOrders([]byte(`{"id":"x","swapHash":"","swap_hash":"h"}`))
	require.Len(t, orders, 1)
	assert.Equal(t, "h", orders[0].SwapHash)
	assert.Empty(t, NormalizeSwapOrders([]byte(`"nope"`)))
}

func TestParseOrderPage(t *testing.T) {
	req := &model.ListOrdersRequest{Page: 2, Size: 10}

	page, err := ParseOrderPage(&model.Envelope{Res: []byte(`{"orders":[{"id":"a"},{"id":"b"}],"total":12,"page":3}`)}, req)
	require.NoError(t, err)
	assert.Len(t, page.Orders, 2)
	assert.Equal(t, 12, page.Total)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 10, page.Size)

	page, err = ParseOrderPage(&model.Envelope{Res: []byte(`[{"id":"a","createdAt":1700000000000}]`)}, req)
	require.NoError(t, err)
	require.Len(t, page.Orders, 1)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, int64(1700000000000), page.Orders[0].CreatedAt.Int())

	page, err = ParseOrderPage(&model.Envelope{}, req)
	require.NoError(t, err)
	assert.Empty(t, page.Orders)
	assert.Zero(t, page.Total)
}
