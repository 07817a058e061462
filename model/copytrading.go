package model

// PnlGroup is one rung of a take-profit, stop-loss or trailing-stop ladder.
type PnlGroup struct {
	PricePercent  float64 `json:"pricePercent"`
	AmountPercent float64 `json:"amountPercent"`
}

type BuySettings struct {
	Enabled                    bool     `json:"enabled"`
	StartHour                  int      `json:"startHour"`
	EndHour                    int      `json:"endHour"`
	BuyAmountType              string   `json:"buyAmountType"`
	MaxBuyAmountUI             string   `json:"maxBuyAmountUI"`
	BuyRatio                   float64  `json:"buyRatio"`
	MaxBalanceUI               float64  `json:"maxBalanceUI"`
	ReservedAmountUI           float64  `json:"reservedAmountUI"`
	TargetMinAmountUI          float64  `json:"targetMinAmountUI"`
	TargetMaxAmountUI          float64  `json:"targetMaxAmountUI"`
	MinTokenMCUSD              float64  `json:"minTokenMCUSD"`
	MaxTokenMCUSD              float64  `json:"maxTokenMCUSD"`
	MaxBuyTax                  *float64 `json:"maxBuyTax,omitempty"`
	MaxSellTax                 *float64 `json:"maxSellTax,omitempty"`
	CustomFeeAndTip            bool     `json:"customFeeAndTip"`
	PriorityFee                string   `json:"priorityFee"`
	GasFeeDelta                int      `json:"gasFeeDelta"`
	MaxFeePerGas               int      `json:"maxFeePerGas"`
	JitoEnabled                bool     `json:"jitoEnabled"`
	JitoTip                    float64  `json:"jitoTip"`
	MaxSlippage                float64  `json:"maxSlippage"`
	SkipFreezableToken         bool     `json:"skipFreezableToken"`
	SkipMintableToken          bool     `json:"skipMintableToken"`
	SkipDelegatedToken         bool     `json:"skipDelegatedToken"`
	SkipNotOpensource          bool     `json:"skipNotOpensource"`
	SkipHoneyPot               bool     `json:"skipHoneyPot"`
	SkipTargetIncreasePosition bool     `json:"skipTargetIncreasePosition"`
	MinBurnedLp                float64  `json:"minBurnedLp"`
	MinLpUsd                   float64  `json:"minLpUsd"`
	MinTokenAgeMs              float64  `json:"minTokenAgeMs"`
	MaxTokenAgeMs              float64  `json:"maxTokenAgeMs"`
	MaxTopHoldPercent          float64  `json:"maxTopHoldPercent"`
	MaxBuyTimesPerToken        int      `json:"maxBuyTimesPerToken"`
	MaxBuyAmountPerToken       float64  `json:"maxBuyAmountPerToken"`
	BuyExist                   bool     `json:"buyExist"`
	BuyOncePerWallet           bool     `json:"buyOncePerWallet"`
	ConcurrentNodes            int      `json:"concurrentNodes"`
	Retries                    int      `json:"retries"`
}

type SellSettings struct {
	Enabled               bool       `json:"enabled"`
	StartHour             int        `json:"startHour"`
	EndHour               int        `json:"endHour"`
	Mode                  string     `json:"mode"`
	SellAmountType        string     `json:"sellAmountType"`
	XTargetRatio          float64    `json:"xTargetRatio"`
	SellSpeedType         string     `json:"sellSpeedType"`
	TargetMinAmountUI     float64    `json:"targetMinAmountUI"`
	TargetMaxAmountUI     float64    `json:"targetMaxAmountUI"`
	StopEarnPercent       *float64   `json:"stopEarnPercent,omitempty"`
	StopLossPercent       *float64   `json:"stopLossPercent,omitempty"`
	StopEarnGroup         []PnlGroup `json:"stopEarnGroup,omitempty"`
	StopLossGroup         []PnlGroup `json:"stopLossGroup,omitempty"`
	TrailingStopGroup     []PnlGroup `json:"trailingStopGroup,omitempty"`
	PnlOrderExpireDelta   int64      `json:"pnlOrderExpireDelta"`
	PnlOrderExpireExecute bool       `json:"pnlOrderExpireExecute"`
	PnlOrderUseMidPrice   bool       `json:"pnlOrderUseMidPrice"`
	SellMode              string     `json:"sellMode"`
	MigrateSellPercent    float64    `json:"migrateSellPercent"`
	MinDevSellPercent     float64    `json:"minDevSellPercent"`
	DevSellPercent        float64    `json:"devSellPercent"`
	CustomFeeAndTip       bool       `json:"customFeeAndTip"`
	PriorityFee           string     `json:"priorityFee"`
	GasFeeDelta           int        `json:"gasFeeDelta"`
	MaxFeePerGas          int        `json:"maxFeePerGas"`
	JitoEnabled           bool       `json:"jitoEnabled"`
	JitoTip               float64    `json:"jitoTip"`
	MaxSlippage           float64    `json:"maxSlippage"`
	ConcurrentNodes       int        `json:"concurrentNodes"`
	Retries               int        `json:"retries"`
}

type CopyTradingRequest struct {
	Enabled        bool         `json:"enabled"`
	Name           string       `json:"name"`
	Chain          string       `json:"chain"`
	DexFilter      []string     `json:"dexFilter,omitempty"`
	TargetIDs      []string     `json:"targetIds"`
	TokenBlacklist []string     `json:"tokenBlacklist,omitempty"`
	WalletID       string       `json:"walletId,omitempty"`
	GroupID        string       `json:"groupId,omitempty"`
	BuySettings    BuySettings  `json:"buySettings"`
	SellSettings   SellSettings `json:"sellSettings"`
}

type EditCopyTradingRequest struct {
	ID string `json:"id"`
	CopyTradingRequest
}

type SwitchCopyTradingRequest struct {
	ID            string `json:"id"`
	Enabled       bool   `json:"enabled"`
	ClosePnlOrder bool   `json:"closePnlOrder"`
}

type DeleteCopyTradingRequest struct {
	ID             string `json:"id"`
	DeletePnlOrder bool   `json:"deletePnlOrder"`
}

type PageRequest struct {
	Page int `json:"page"`
	Size int `json:"size"`
}

type CopyTradingTask struct {
	ID             string   `json:"id"`
	Enabled        bool     `json:"enabled"`
	Name           string   `json:"name"`
	Chain          string   `json:"chain"`
	TargetIDs      []string `json:"targetIds"`
	TokenBlacklist []string `json:"tokenBlacklist"`
	WalletID       string   `json:"walletId"`
	GroupID        string   `json:"groupId"`
	BuySettings    struct {
		Enabled        bool   `json:"enabled"`
		BuyAmountType  string `json:"buyAmountType"`
		MaxBuyAmountUI Text   `json:"maxBuyAmountUI"`
	} `json:"buySettings"`
	SellSettings struct {
		Enabled bool   `json:"enabled"`
		Mode    string `json:"mode"`
	} `json:"sellSettings"`
	CreatedAt Text `json:"createdAt"`
}
