package model

type LimitOrderSetting struct {
	Enabled          bool    `json:"enabled"`
	TradeType        string  `json:"tradeType"`
	TriggerPriceUsd  string  `json:"triggerPriceUsd"`
	TriggerDirection string  `json:"triggerDirection"`
	CurrencyAmountUI Amount  `json:"currencyAmountUI"`
	CustomFeeAndTip  bool    `json:"customFeeAndTip"`
	PriorityFee      string  `json:"priorityFee"`
	GasFeeDelta      int     `json:"gasFeeDelta"`
	MaxFeePerGas     int     `json:"maxFeePerGas"`
	JitoEnabled      bool    `json:"jitoEnabled"`
	JitoTip          float64 `json:"jitoTip"`
	ExpireDelta      int64   `json:"expireDelta"`
	ExpireExecute    bool    `json:"expireExecute"`
	UseMidPrice      bool    `json:"useMidPrice"`
	MaxSlippage      float64 `json:"maxSlippage"`
	ConcurrentNodes  int     `json:"concurrentNodes"`
	Retries          int     `json:"retries"`
}

type CreateLimitOrdersRequest struct {
	Chain    string              `json:"chain"`
	Pair     string              `json:"pair"`
	WalletID string              `json:"walletId"`
	GroupID  string              `json:"groupId,omitempty"`
	Settings []LimitOrderSetting `json:"settings"`
}

// EditLimitOrderRequest only sends what the caller set; the remote side keeps the rest.
type EditLimitOrderRequest struct {
	ID               string   `json:"id"`
	Enabled          *bool    `json:"enabled,omitempty"`
	GroupID          *string  `json:"groupId,omitempty"`
	TriggerPriceUsd  *string  `json:"triggerPriceUsd,omitempty"`
	TriggerDirection *string  `json:"triggerDirection,omitempty"`
	CurrencyAmountUI *float64 `json:"currencyAmountUI,omitempty"`
	CustomFeeAndTip  *bool    `json:"customFeeAndTip,omitempty"`
	PriorityFee      *string  `json:"priorityFee,omitempty"`
	GasFeeDelta      *int     `json:"gasFeeDelta,omitempty"`
	MaxFeePerGas     *int     `json:"maxFeePerGas,omitempty"`
	JitoEnabled      *bool    `json:"jitoEnabled,omitempty"`
	JitoTip          *float64 `json:"jitoTip,omitempty"`
	ExpireDelta      *int64   `json:"expireDelta,omitempty"`
	ExpireExecute    *bool    `json:"expireExecute,omitempty"`
	UseMidPrice      *bool    `json:"useMidPrice,omitempty"`
	MaxSlippage      *float64 `json:"maxSlippage,omitempty"`
	ConcurrentNodes  *int     `json:"concurrentNodes,omitempty"`
	Retries          *int     `json:"retries,omitempty"`
}

type DeleteManyRequest struct {
	IDs []string `json:"ids"`
}

type DeleteAllRequest struct {
	Source string `json:"source"`
}

type ListLimitOrdersRequest struct {
	Page    int    `json:"page"`
	Size    int    `json:"size"`
	Chain   string `json:"chain"`
	State   string `json:"state"`
	GroupID string `json:"groupId"`
	Token   string `json:"token"`
	SortBy  string `json:"sortBy"`
	Sort    int    `json:"sort"`
	Pair    string `json:"pair,omitempty"`
	Enabled *bool  `json:"enabled,omitempty"`
}

type LimitOrderInfo struct {
	ID               string  `json:"id"`
	Enabled          bool    `json:"enabled"`
	GroupID          string  `json:"groupId"`
	State            string  `json:"state"`
	Chain            string  `json:"chain"`
	TradeType        string  `json:"tradeType"`
	TriggerDirection string  `json:"triggerDirection"`
	TriggerPriceUsd  Text    `json:"triggerPriceUsd"`
	CurrencyAmountUI Text    `json:"currencyAmountUI"`
	Pair             string  `json:"pair"`
	PairType         string  `json:"pairType"`
	WalletName       string  `json:"walletName"`
	WalletAddress    string  `json:"walletAddress"`
	JitoEnabled      bool    `json:"jitoEnabled"`
	JitoTip          float64 `json:"jitoTip"`
	MaxSlippage      float64 `json:"maxSlippage"`
	ExpireAt         Text    `json:"expireAt"`
	ErrorMessage     string  `json:"errorMessage"`
	TokenInfo        *struct {
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
	} `json:"tokenInfo"`
}
