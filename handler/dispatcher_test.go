package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/hellodex/dbot-mcp/apperr"
	"github.com/hellodex/dbot-mcp/config"
	"github.com/hellodex/dbot-mcp/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const solanaWallet = "wallet-solana-0001"

type recorded struct {
	Method string
	Path   string
	Query  url.Values
	Body   map[string]any
}

type upstream struct {
	mu       sync.Mutex
	requests []recorded
}

func (u *upstream) all() []recorded {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]recorded(nil), u.requests...)
}

func (u *upstream) last(t *testing.T) recorded {
	t.Helper()
	reqs := u.all()
	require.NotEmpty(t, reqs)
	return reqs[len(reqs)-1]
}

// newTestDispatcher points both hosts at one server; reply picks the answer per request.
func newTestDispatcher(t *testing.T, adapter string, wallets map[string]string,
	reply func(r *http.Request) (int, string)) (*Dispatcher, *upstream) {
	t.Helper()
	return newConfiguredDispatcher(t, adapter, wallets, reply, nil)
}

func newConfiguredDispatcher(t *testing.T, adapter string, wallets map[string]string,
	reply func(r *http.Request) (int, string), configure func(*config.Config)) (*Dispatcher, *upstream) {
	t.Helper()
	up := &upstream{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recorded{Method: r.Method, Path: r.URL.Path, Query: r.URL.Query()}
		if data, _ := io.ReadAll(r.Body); len(data) > 0 {
			_ = json.Unmarshal(data, &rec.Body)
		}
		up.mu.Lock()
		up.requests = append(up.requests, rec)
		up.mu.Unlock()

		status, body := reply(r)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.API.Key = "test-key"
	cfg.API.BaseURL = srv.URL
	cfg.API.SecurityURL = srv.URL
	cfg.API.Timeout = 5 * time.Second
	cfg.Wallets = wallets
	if configure != nil {
		configure(cfg)
	}

	d, err := NewDispatcher(cfg, adapter)
	require.NoError(t, err)
	d.now = func() time.Time { return time.UnixMilli(1_700_000_000_000) }
	return d, up
}

func fixed(status int, body string) func(*http.Request) (int, string) {
	return func(*http.Request) (int, string) { return status, body }
}

func solanaOnly() map[string]string {
	return map[string]string{"SOLANA": solanaWallet}
}

func TestAdapterCatalogs(t *testing.T) {
	want := map[string][]string{
		"conditional-order": {
			"create_migrate_order", "create_dev_order", "update_migrate_order", "update_dev_order",
			"toggle_migrate_order", "toggle_dev_order", "delete_migrate_order", "delete_dev_order",
			"get_migrate_orders", "get_dev_orders",
		},
		"copy-trading": {
			"create_copy_trading", "edit_copy_trading", "switch_copy_trading", "delete_copy_trading",
			"get_copy_trading_tasks",
		},
		"fast-swap": {
			"create_fast_swap", "create_fast_swaps", "get_swap_order_info", "get_swap_records",
			"swap_tpsl_tasks", "edit_fastswap_tpsl_order", "enable_fastswap_tpsl_order", "delete_fastswap_tpsl_order",
		},
		"limit-order": {
			"create_limit_order", "edit_limit_order", "switch_limit_order", "delete_limit_order",
			"delete_limit_orders", "delete_all_limit_order", "limit_orders",
		},
	}
	assert.Equal(t, []string{"conditional-order", "copy-trading", "fast-swap", "limit-order"}, AdapterNames())

	for adapter, names := range want {
		t.Run(adapter, func(t *testing.T) {
			d, _ := newTestDispatcher(t, adapter, solanaOnly(), fixed(http.StatusOK, `{"err":false}`))
			var got []string
			for _, op := range d.Operations() {
				got = append(got, op.Name)
				assert.NotEmpty(t, op.Description, op.Name)
				assert.NotEmpty(t, op.Params.RawJSONSchema(), op.Name)
			}
			assert.Equal(t, append(names, "get_user_wallets", "get_token_security_info"), got)
		})
	}
}

func TestUnknownAdapter(t *testing.T) {
	_, err := NewDispatcher(config.Default(), "spot")
	assert.True(t, apperr.Is(err, apperr.CodeUsage))
	assert.ErrorContains(t, err, "conditional-order")
}

func TestCreateMigrateOrderResolvesWallet(t *testing.T) {
	d, up := newTestDispatcher(t, "conditional-order", solanaOnly(),
		fixed(http.StatusOK, `{"err":false,"res":{"id":"abc"},"docs":"https://docs.example"}`))

	text, err := d.Handle(context.Background(), "create_migrate_order",
		map[string]any{"pair": "TOKEN123", "amountOrPercent": 0.5})
	require.NoError(t, err)
	assert.Contains(t, text, "Task ID: abc")
	assert.Contains(t, text, "Sell Ratio: 50.0%")
	assert.Contains(t, text, "Docs: https://docs.example")

	req := up.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/automation/migrate_order", req.Path)
	assert.Equal(t, "solana", req.Body["chain"])
	assert.Equal(t, "pump", req.Body["pairType"])
	assert.Equal(t, "sell", req.Body["tradeType"])
	assert.Equal(t, solanaWallet, req.Body["walletId"])
	assert.Equal(t, 360000000.0, req.Body["expireDelta"])
	assert.Equal(t, 0.1, req.Body["maxSlippage"])
}

func TestCreateMigrateOrderLogicalFailure(t *testing.T) {
	d, _ := newTestDispatcher(t, "conditional-order", solanaOnly(),
		fixed(http.StatusOK, `{"err":true,"res":{"message":"insufficient balance"}}`))

	text, err := d.Handle(context.Background(), "create_migrate_order",
		map[string]any{"pair": "TOKEN123", "amountOrPercent": 0.5})
	require.NoError(t, err)
	assert.Contains(t, text, "❌ Create sell-on-open task failed:")
	assert.Contains(t, text, "insufficient balance")
	assert.Contains(t, text, "wallet-s***")
	assert.NotContains(t, text, solanaWallet)
}

func TestTransportFailureIsText(t *testing.T) {
	d, _ := newTestDispatcher(t, "conditional-order", solanaOnly(),
		fixed(http.StatusUnauthorized, `{"message":"bad key"}`))

	text, err := d.Handle(context.Background(), "toggle_dev_order", map[string]any{"id": "o1", "enabled": true})
	require.NoError(t, err)
	assert.Contains(t, text, "❌ Toggle follow-dev-sell task failed:")
	assert.Contains(t, text, "HTTP Status: 401 Unauthorized")
	assert.Contains(t, text, "bad key")
	assert.Contains(t, text, "Check if the API key is correct.")
}

func TestUnknownTool(t *testing.T) {
	d, _ := newTestDispatcher(t, "limit-order", solanaOnly(), fixed(http.StatusOK, `{"err":false}`))

	_, err := d.Handle(context.Background(), "create_migrate_order", nil)
	assert.True(t, apperr.Is(err, apperr.CodeMethodNotFound))
	assert.EqualError(t, err, "Unknown tool: create_migrate_order")
}

func TestValidationErrorNamesField(t *testing.T) {
	d, up := newTestDispatcher(t, "conditional-order", solanaOnly(), fixed(http.StatusOK, `{"err":false}`))

	_, err := d.Handle(context.Background(), "create_migrate_order",
		map[string]any{"pair": "TOKEN123", "amountOrPercent": 1.5})
	require.True(t, apperr.Is(err, apperr.CodeValidation))

	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"amountOrPercent"}, verr.Fields())
	assert.Empty(t, up.all())
}

func TestMissingWalletIsConfigError(t *testing.T) {
	d, up := newTestDispatcher(t, "fast-swap", map[string]string{"TRON": "tron-wallet"}, fixed(http.StatusOK, `{"err":false}`))

	_, err := d.Handle(context.Background(), "create_fast_swap",
		map[string]any{"chain": "base", "pair": "0xabc", "type": "buy"})
	require.True(t, apperr.Is(err, apperr.CodeConfig))
	assert.ErrorContains(t, err, "DBOT_WALLET_ID_EVM")
	assert.Empty(t, up.all())
}

func TestExplicitWalletIsKept(t *testing.T) {
	d, up := newTestDispatcher(t, "limit-order", nil,
		fixed(http.StatusOK, `{"err":false,"res":{"ids":["l1","l2"]}}`))

	text, err := d.Handle(context.Background(), "create_limit_order", map[string]any{
		"chain":    "bsc",
		"pair":     "0xpair",
		"walletId": "my-wallet",
		"settings": []any{
			map[string]any{"tradeType": "buy", "triggerPriceUsd": "0.01", "triggerDirection": "down", "currencyAmountUI": 0.1},
			map[string]any{"tradeType": "sell", "triggerPriceUsd": "0.02", "triggerDirection": "up", "currencyAmountUI": 1.0},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, text, "Created 2 limit orders")
	assert.Contains(t, text, "Order ID: l2")

	req := up.last(t)
	assert.Equal(t, "/automation/limit_orders", req.Path)
	assert.Equal(t, "my-wallet", req.Body["walletId"])
	settings := req.Body["settings"].([]any)
	first := settings[0].(map[string]any)
	assert.Equal(t, true, first["enabled"])
	assert.Equal(t, 432000000.0, first["expireDelta"])
	assert.Equal(t, "0.0001", first["priorityFee"])
}

func TestCreateFastSwapsFillsWalletList(t *testing.T) {
	d, up := newTestDispatcher(t, "fast-swap", map[string]string{"EVM": "evm-wallet-42"},
		fixed(http.StatusOK, `{"err":false,"res":[{"id":"s1"}]}`))

	text, err := d.Handle(context.Background(), "create_fast_swaps", map[string]any{
		"chain": "ethereum", "pair": "0xpair", "type": "sell", "walletIdList": []any{},
	})
	require.NoError(t, err)
	assert.Contains(t, text, "s1")

	req := up.last(t)
	assert.Equal(t, "/automation/swap_orders", req.Path)
	assert.Equal(t, []any{"evm-wallet-42"}, req.Body["walletIdList"])
	assert.Equal(t, false, req.Body["jitoEnabled"])
	assert.Equal(t, "", req.Body["priorityFee"])
	assert.Equal(t, 1.0, req.Body["sellPercent"])
	assert.NotContains(t, req.Body, "pnlCustomConfig")
}

func TestFastSwapGroupBounds(t *testing.T) {
	d, _ := newTestDispatcher(t, "fast-swap", solanaOnly(), fixed(http.StatusOK, `{"err":false,"res":{"id":"x"}}`))

	group := map[string]any{"pricePercent": 0.5, "amountPercent": 0.2}
	six := []any{group, group, group, group, group, group}

	_, err := d.Handle(context.Background(), "create_fast_swap", map[string]any{
		"pair": "TOKEN", "type": "buy", "stopEarnGroup": six,
	})
	require.NoError(t, err)

	_, err = d.Handle(context.Background(), "create_fast_swap", map[string]any{
		"pair": "TOKEN", "type": "buy", "stopEarnGroup": append(six, group),
	})
	assert.True(t, apperr.Is(err, apperr.CodeValidation))

	_, err = d.Handle(context.Background(), "create_fast_swap", map[string]any{
		"pair": "TOKEN", "type": "buy",
		"trailingStopGroup": []any{map[string]any{"pricePercent": 1.0, "amountPercent": 1.0}},
	})
	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"trailingStopGroup[0].pricePercent"}, verr.Fields())
}

func TestUserWalletsPartialFailure(t *testing.T) {
	d, up := newTestDispatcher(t, "copy-trading", solanaOnly(), func(r *http.Request) (int, string) {
		if r.URL.Query().Get("type") == "solana" {
			return http.StatusInternalServerError, `{"message":"boom"}`
		}
		return http.StatusOK, `{"err":false,"res":[{"id":"e1","name":"hot","type":"evm","address":"0xE1"}]}`
	})

	text, err := d.Handle(context.Background(), "get_user_wallets", map[string]any{})
	require.NoError(t, err)
	assert.Contains(t, text, "(1 wallets total)")
	assert.Contains(t, text, "🔷 EVM Wallets (1):")
	assert.Contains(t, text, "Wallet ID: e1")
	assert.NotContains(t, text, "Solana Wallets")

	types := []string{}
	for _, r := range up.all() {
		assert.Equal(t, "/account/wallets", r.Path)
		types = append(types, r.Query.Get("type"))
	}
	assert.ElementsMatch(t, []string{"solana", "evm"}, types)
}

func TestUserWalletsDoubleFailure(t *testing.T) {
	d, _ := newTestDispatcher(t, "copy-trading", solanaOnly(),
		fixed(http.StatusOK, `{"err":true,"res":{"message":"rate limited"}}`))

	text, err := d.Handle(context.Background(), "get_user_wallets", map[string]any{"size": 5})
	require.NoError(t, err)
	assert.Contains(t, text, "❌ Query user wallets failed:")
	assert.Contains(t, text, "rate limited")
	assert.Contains(t, text, `"type": "all"`)
}

func TestUserWalletsOfType(t *testing.T) {
	d, up := newTestDispatcher(t, "limit-order", solanaOnly(),
		fixed(http.StatusOK, `{"err":false,"res":[{"id":"e1","name":"hot","type":"evm","address":"0xE1"}]}`))

	text, err := d.Handle(context.Background(), "get_user_wallets", map[string]any{"type": "evm"})
	require.NoError(t, err)
	assert.Contains(t, text, "(1 evm wallets)")
	require.Len(t, up.all(), 1)
	assert.Equal(t, "evm", up.last(t).Query.Get("type"))
	assert.Equal(t, "20", up.last(t).Query.Get("size"))
}

func TestTokenSecurityNotFound(t *testing.T) {
	d, up := newTestDispatcher(t, "fast-swap", solanaOnly(), fixed(http.StatusOK, `{"err":false,"res":null}`))

	text, err := d.Handle(context.Background(), "get_token_security_info", map[string]any{"pair": "PAIR"})
	require.NoError(t, err)
	assert.Equal(t, "❌ Token information not found", text)

	req := up.last(t)
	assert.Equal(t, "/dex/poolinfo", req.Path)
	assert.Equal(t, "solana", req.Query.Get("chain"))
	assert.Equal(t, "PAIR", req.Query.Get("pair"))
}

func TestConditionalListBareArray(t *testing.T) {
	d, up := newTestDispatcher(t, "conditional-order", solanaOnly(), fixed(http.StatusOK,
		`{"err":false,"res":[{"id":"d1","pair":"P1","amountOrPercent":0.25,"minDevSellPercent":0.5,"enabled":true,"state":"init"}]}`))

	text, err := d.Handle(context.Background(), "get_dev_orders", map[string]any{"state": ""})
	require.NoError(t, err)
	assert.Contains(t, text, "- Total tasks: 1")
	assert.Contains(t, text, "1. Task ID: d1")
	assert.Contains(t, text, "Trigger Ratio: 50.0%")

	q := up.last(t).Query
	assert.Equal(t, "0", q.Get("page"))
	assert.Equal(t, "20", q.Get("size"))
	assert.False(t, q.Has("state"))
}

func TestCopyTradingCreateDefaults(t *testing.T) {
	d, up := newTestDispatcher(t, "copy-trading", solanaOnly(),
		fixed(http.StatusOK, `{"err":false,"res":{"id":"ct1"}}`))

	text, err := d.Handle(context.Background(), "create_copy_trading", map[string]any{
		"name":         "Follow whale",
		"targetIds":    []any{"Target1"},
		"buySettings":  map[string]any{"maxBuyAmountUI": "0.1"},
		"sellSettings": map[string]any{},
	})
	require.NoError(t, err)
	assert.Contains(t, text, "ct1")
	assert.NotContains(t, text, solanaWallet)

	req := up.last(t)
	assert.Equal(t, "/automation/follow_order", req.Path)
	assert.Equal(t, solanaWallet, req.Body["walletId"])
	buy := req.Body["buySettings"].(map[string]any)
	assert.Equal(t, "follow_amount", buy["buyAmountType"])
	assert.Equal(t, 23.0, buy["endHour"])
	sell := req.Body["sellSettings"].(map[string]any)
	assert.Equal(t, "mixed", sell["mode"])
	assert.Equal(t, 43200000.0, sell["pnlOrderExpireDelta"])
}

func TestTpslToggleUsesLimitOrderEndpoint(t *testing.T) {
	d, up := newTestDispatcher(t, "fast-swap", solanaOnly(), fixed(http.StatusOK, `{"err":false,"res":{"ok":true}}`))

	text, err := d.Handle(context.Background(), "enable_fastswap_tpsl_order", map[string]any{"id": "t1", "enabled": false})
	require.NoError(t, err)
	assert.Contains(t, text, "Successfully enabled/disabled take profit/stop loss order")

	req := up.last(t)
	assert.Equal(t, http.MethodPatch, req.Method)
	assert.Equal(t, "/automation/limit_order", req.Path)
	assert.Equal(t, map[string]any{"id": "t1", "enabled": false}, req.Body)
}

func TestValidateWallets(t *testing.T) {
	d, _ := newTestDispatcher(t, "limit-order", nil, fixed(http.StatusOK, `{}`))
	assert.True(t, apperr.Is(d.ValidateWallets(), apperr.CodeConfig))

	d, _ = newTestDispatcher(t, "limit-order", map[string]string{"BSC": "b"}, fixed(http.StatusOK, `{}`))
	assert.NoError(t, d.ValidateWallets())
}

func TestUpdateDevOrderKeepsID(t *testing.T) {
	d, up := newTestDispatcher(t, "conditional-order", solanaOnly(), fixed(http.StatusOK, `{"err":false,"res":{}}`))

	text, err := d.Handle(context.Background(), "update_dev_order", map[string]any{
		"id": "d7", "pair": "TOKEN123", "amountOrPercent": 0.3, "minDevSellPercent": 0.8,
	})
	require.NoError(t, err)
	assert.Contains(t, text, "Follow-dev-sell task edited successfully!")
	assert.Contains(t, text, "Task ID: d7")
	assert.Contains(t, text, "Trigger Ratio: 80.0%")

	req := up.last(t)
	assert.Equal(t, http.MethodPatch, req.Method)
	assert.Equal(t, "/automation/dev_order", req.Path)
	assert.Equal(t, "d7", req.Body["id"])
	assert.Equal(t, solanaWallet, req.Body["walletId"])
}

func TestToggleAndDeleteMigrateOrder(t *testing.T) {
	d, up := newTestDispatcher(t, "conditional-order", solanaOnly(), fixed(http.StatusOK, `{"err":false,"res":{}}`))

	text, err := d.Handle(context.Background(), "toggle_migrate_order", map[string]any{"id": "m1", "enabled": false})
	require.NoError(t, err)
	assert.Contains(t, text, "Status: Disabled")
	req := up.last(t)
	assert.Equal(t, http.MethodPatch, req.Method)
	assert.Equal(t, map[string]any{"id": "m1", "enabled": false}, req.Body)

	text, err = d.Handle(context.Background(), "delete_migrate_order", map[string]any{"id": "m1"})
	require.NoError(t, err)
	assert.Contains(t, text, "Sell-on-open task deleted successfully!")
	req = up.last(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/automation/migrate_order/m1", req.Path)
}

func TestEditCopyTradingRequiresEnabledAndChain(t *testing.T) {
	d, up := newTestDispatcher(t, "copy-trading", solanaOnly(), fixed(http.StatusOK, `{"err":false,"res":{}}`))

	args := func() map[string]any {
		return map[string]any{
			"id":           "ct1",
			"enabled":      false,
			"name":         "Follow whale",
			"chain":        "bsc",
			"targetIds":    []any{"Target1"},
			"buySettings":  map[string]any{"maxBuyAmountUI": "0.1"},
			"sellSettings": map[string]any{},
		}
	}

	for _, missing := range []string{"enabled", "chain"} {
		t.Run(missing, func(t *testing.T) {
			a := args()
			delete(a, missing)
			_, err := d.Handle(context.Background(), "edit_copy_trading", a)
			require.True(t, apperr.Is(err, apperr.CodeValidation), "err = %v", err)

			var verr *schema.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields(), missing)
		})
	}
	assert.Empty(t, up.all())

	_, err := d.Handle(context.Background(), "edit_copy_trading", args())
	require.NoError(t, err)
	req := up.last(t)
	assert.Equal(t, false, req.Body["enabled"])
	assert.Equal(t, "bsc", req.Body["chain"])
}

func TestWrongTypedWalletIsRejected(t *testing.T) {
	d, up := newTestDispatcher(t, "conditional-order", solanaOnly(), fixed(http.StatusOK, `{"err":false,"res":{"id":"abc"}}`))

	_, err := d.Handle(context.Background(), "create_migrate_order",
		map[string]any{"pair": "TOKEN123", "amountOrPercent": 0.5, "walletId": 12345.0})
	require.True(t, apperr.Is(err, apperr.CodeValidation), "err = %v", err)
	assert.ErrorContains(t, err, "walletId: expected string, received number")

	d, _ = newTestDispatcher(t, "fast-swap", solanaOnly(), fixed(http.StatusOK, `{"err":false,"res":[]}`))
	_, err = d.Handle(context.Background(), "create_fast_swaps",
		map[string]any{"pair": "TOKEN123", "type": "buy", "walletIdList": "wallet-a"})
	require.True(t, apperr.Is(err, apperr.CodeValidation), "err = %v", err)
	assert.ErrorContains(t, err, "walletIdList: expected array, received string")

	assert.Empty(t, up.all())
}

func TestConditionalChainDefaultsFromConfig(t *testing.T) {
	d, up := newConfiguredDispatcher(t, "conditional-order", map[string]string{"SOLANA": solanaWallet, "EVM": "evm"},
		fixed(http.StatusOK, `{"err":false,"res":{"id":"abc"}}`),
		func(c *config.Config) { c.Defaults.Chain = "ethereum" })

	op, ok := d.Operation("create_migrate_order")
	require.True(t, ok)
	assert.Equal(t, "ethereum", op.Params.Property("chain").DefaultValue())

	// Only solana is served here, so a misconfigured default surfaces instead of being swapped.
	_, err := d.Handle(context.Background(), "create_migrate_order",
		map[string]any{"pair": "TOKEN123", "amountOrPercent": 0.5, "walletId": solanaWallet})
	require.True(t, apperr.Is(err, apperr.CodeValidation), "err = %v", err)
	assert.ErrorContains(t, err, "chain")

	_, err = d.Handle(context.Background(), "create_migrate_order",
		map[string]any{"pair": "TOKEN123", "amountOrPercent": 0.5, "chain": "solana"})
	require.NoError(t, err)
	assert.Equal(t, solanaWallet, up.last(t).Body["walletId"])
}

func TestLimitOrderAmountAcceptsDecimalString(t *testing.T) {
	d, up := newTestDispatcher(t, "limit-order", solanaOnly(),
		fixed(http.StatusOK, `{"err":false,"res":{"ids":["l1","l2"]}}`))

	text, err := d.Handle(context.Background(), "create_limit_order", map[string]any{
		"pair": "TOKEN123",
		"settings": []any{
			map[string]any{"tradeType": "buy", "triggerPriceUsd": "0.01", "triggerDirection": "down", "currencyAmountUI": "0.1"},
			map[string]any{"tradeType": "sell", "triggerPriceUsd": "0.02", "triggerDirection": "up", "currencyAmountUI": 0.5},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, text, "- Trade Amount: 0.1\n")
	assert.Contains(t, text, "- Trade Amount: 0.5\n")

	settings := up.last(t).Body["settings"].([]any)
	assert.Equal(t, "0.1", settings[0].(map[string]any)["currencyAmountUI"])
	assert.Equal(t, 0.5, settings[1].(map[string]any)["currencyAmountUI"])

	_, err = d.Handle(context.Background(), "create_limit_order", map[string]any{
		"pair": "TOKEN123",
		"settings": []any{
			map[string]any{"tradeType": "buy", "triggerPriceUsd": "0.01", "triggerDirection": "down", "currencyAmountUI": "a lot"},
		},
	})
	require.True(t, apperr.Is(err, apperr.CodeValidation), "err = %v", err)
	assert.ErrorContains(t, err, "settings[0].currencyAmountUI")
}
