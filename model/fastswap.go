package model

// FeeSettings are the execution knobs shared by every order kind.
type FeeSettings struct {
	CustomFeeAndTip bool    `json:"customFeeAndTip"`
	PriorityFee     string  `json:"priorityFee"`
	GasFeeDelta     int     `json:"gasFeeDelta"`
	MaxFeePerGas    int     `json:"maxFeePerGas"`
	JitoEnabled     bool    `json:"jitoEnabled"`
	JitoTip         float64 `json:"jitoTip"`
	MaxSlippage     float64 `json:"maxSlippage"`
	ConcurrentNodes int     `json:"concurrentNodes"`
	Retries         int     `json:"retries"`
}

// PnlSettings attach take-profit and stop-loss orders to a swap.
type PnlSettings struct {
	StopEarnPercent        *float64     `json:"stopEarnPercent,omitempty"`
	StopLossPercent        *float64     `json:"stopLossPercent,omitempty"`
	StopEarnGroup          []PnlGroup   `json:"stopEarnGroup,omitempty"`
	StopLossGroup          []PnlGroup   `json:"stopLossGroup,omitempty"`
	TrailingStopGroup      []PnlGroup   `json:"trailingStopGroup,omitempty"`
	PnlOrderExpireDelta    int64        `json:"pnlOrderExpireDelta"`
	PnlOrderExpireExecute  bool         `json:"pnlOrderExpireExecute"`
	PnlOrderUseMidPrice    bool         `json:"pnlOrderUseMidPrice"`
	PnlCustomConfigEnabled bool         `json:"pnlCustomConfigEnabled"`
	PnlCustomConfig        *FeeSettings `json:"pnlCustomConfig,omitempty"`
}

type FastSwapRequest struct {
	Chain    string `json:"chain"`
	Pair     string `json:"pair"`
	WalletID string `json:"walletId"`
	Type     string `json:"type"`
	FeeSettings
	AmountOrPercent    float64 `json:"amountOrPercent"`
	MigrateSellPercent float64 `json:"migrateSellPercent"`
	MinDevSellPercent  float64 `json:"minDevSellPercent"`
	DevSellPercent     float64 `json:"devSellPercent"`
	PnlSettings
}

type FastSwapsRequest struct {
	Chain        string   `json:"chain"`
	Pair         string   `json:"pair"`
	WalletIDList []string `json:"walletIdList"`
	Type         string   `json:"type"`
	FeeSettings
	MinAmount   *float64 `json:"minAmount,omitempty"`
	MaxAmount   *float64 `json:"maxAmount,omitempty"`
	SellPercent float64  `json:"sellPercent"`
	PnlSettings
}

type SwapOrderInfoRequest struct {
	IDs string `json:"ids"`
}

// SwapOrderInfo is normalized by the client from camelCase or snake_case keys.
type SwapOrderInfo struct {
	ID           string `json:"id"`
	State        string `json:"state"`
	Chain        string `json:"chain"`
	TradeType    string `json:"tradeType"`
	TxPriceUsd   Text   `json:"txPriceUsd,omitempty"`
	SwapHash     string `json:"swapHash,omitempty"`
	ErrorCode    string `json:"errorCode,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

type SwapRecordsRequest struct {
	Page  int    `json:"page"`
	Size  int    `json:"size"`
	Chain string `json:"chain"`
}

type TokenAmount struct {
	Amount Text `json:"amount"`
	Info   *struct {
		Symbol   string `json:"symbol"`
		Decimals int32  `json:"decimals"`
	} `json:"info"`
}

type SwapRecord struct {
	ID           string       `json:"id"`
	CreateAt     Text         `json:"createAt"`
	State        string       `json:"state"`
	Chain        string       `json:"chain"`
	Type         string       `json:"type"`
	Pair         string       `json:"pair"`
	Send         *TokenAmount `json:"send"`
	Receive      *TokenAmount `json:"receive"`
	ErrorMessage string       `json:"errorMessage"`
}

type TpslTasksRequest struct {
	Page     int    `json:"page"`
	Size     int    `json:"size"`
	Chain    string `json:"chain"`
	State    string `json:"state"`
	SourceID string `json:"sourceId"`
	Token    string `json:"token"`
	SortBy   string `json:"sortBy"`
	Sort     int    `json:"sort"`
}

type TpslTask struct {
	ID               string  `json:"id"`
	Enabled          bool    `json:"enabled"`
	State            string  `json:"state"`
	Chain            string  `json:"chain"`
	Pair             string  `json:"pair"`
	TradeType        string  `json:"tradeType"`
	TriggerDirection string  `json:"triggerDirection"`
	TriggerPriceUsd  Text    `json:"triggerPriceUsd"`
	TriggerPercent   float64 `json:"triggerPercent"`
	BasePriceUsd     Text    `json:"basePriceUsd"`
	TxPriceUsd       Text    `json:"txPriceUsd"`
	WalletName       string  `json:"walletName"`
	Source           string  `json:"source"`
	ErrorCode        string  `json:"errorCode"`
	ErrorMessage     string  `json:"errorMessage"`
}
