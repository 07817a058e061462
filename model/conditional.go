package model

// ConditionalOrder holds the fields shared by sell-on-migration and
// follow-dev-sell orders.
type ConditionalOrder struct {
	Chain           string  `json:"chain"`
	PairType        string  `json:"pairType"`
	Pair            string  `json:"pair"`
	WalletID        string  `json:"walletId"`
	TradeType       string  `json:"tradeType"`
	AmountOrPercent float64 `json:"amountOrPercent"`
	CustomFeeAndTip bool    `json:"customFeeAndTip"`
	PriorityFee     string  `json:"priorityFee"`
	JitoEnabled     bool    `json:"jitoEnabled"`
	JitoTip         float64 `json:"jitoTip"`
	ExpireDelta     int64   `json:"expireDelta"`
	MaxSlippage     float64 `json:"maxSlippage"`
	ConcurrentNodes int     `json:"concurrentNodes"`
	Retries         int     `json:"retries"`
}

type MigrateOrderRequest struct {
	ConditionalOrder
}

type DevOrderRequest struct {
	ConditionalOrder
	MinDevSellPercent float64 `json:"minDevSellPercent"`
}

type UpdateMigrateOrderRequest struct {
	ID string `json:"id"`
	ConditionalOrder
}

type UpdateDevOrderRequest struct {
	ID string `json:"id"`
	ConditionalOrder
	MinDevSellPercent float64 `json:"minDevSellPercent"`
}

type ToggleRequest struct {
	ID      string `json:"id"`
	Enabled bool   `json:"enabled"`
}

type DeleteRequest struct {
	ID string `json:"id"`
}

type ListOrdersRequest struct {
	Page   int    `json:"page"`
	Size   int    `json:"size"`
	Chain  string `json:"chain"`
	State  string `json:"state,omitempty"`
	Source string `json:"source,omitempty"`
}

type OrderInfo struct {
	ID                string  `json:"id"`
	Chain             string  `json:"chain"`
	PairType          string  `json:"pairType"`
	Pair              string  `json:"pair"`
	WalletID          string  `json:"walletId"`
	TradeType         string  `json:"tradeType"`
	AmountOrPercent   float64 `json:"amountOrPercent"`
	MinDevSellPercent float64 `json:"minDevSellPercent"`
	Enabled           bool    `json:"enabled"`
	State             string  `json:"state"`
	CreatedAt         Text    `json:"createdAt"`
	UpdatedAt         Text    `json:"updatedAt"`
	ErrorCode         string  `json:"errorCode"`
	ErrorMessage      string  `json:"errorMessage"`
}

// OrderPage is a list result. The API answers either with this object or a bare array.
type OrderPage struct {
	Orders []OrderInfo
	Total  int
	Page   int
	Size   int
}
