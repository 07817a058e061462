package model

type WalletsRequest struct {
	Type string `json:"type,omitempty"`
	Page int    `json:"page"`
	Size int    `json:"size"`
}

type WalletInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Address string `json:"address"`
}

type TokenSecurityRequest struct {
	Chain string `json:"chain"`
	Pair  string `json:"pair"`
}

type TokenMeta struct {
	Contract string `json:"contract"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
	Icon     string `json:"icon"`
	PriceUsd Text   `json:"priceUsd"`
}

type PoolSafetyInfo struct {
	Type              string   `json:"type"`
	CanMint           bool     `json:"canMint"`
	CanFrozen         bool     `json:"canFrozen"`
	TotalSupplyUI     Text     `json:"totalSupplyUI"`
	IsDelegated       *bool    `json:"isDelegated"`
	TokenReserveUI    Text     `json:"tokenReserveUI"`
	CurrencyReserveUI Text     `json:"currencyReserveUI"`
	BurnedLpPercent   *float64 `json:"burnedOrLockedLpPercent"`
	Top10Percent      Text     `json:"top10Percent"`
}

type TokenSecurityInfo struct {
	Type             string         `json:"type"`
	Pair             string         `json:"pair"`
	TokenReserve     Text           `json:"tokenReserve"`
	CurrencyReserve  Text           `json:"currencyReserve"`
	TokenPriceUsd    Text           `json:"tokenPriceUsd"`
	CurrencyPriceUsd Text           `json:"currencyPriceUsd"`
	Exchange         string         `json:"exchange"`
	TokenInfo        TokenMeta      `json:"tokenInfo"`
	CurrencyInfo     TokenMeta      `json:"currencyInfo"`
	PoolSafetyInfo   PoolSafetyInfo `json:"poolSafetyInfo"`
	LiquidityUsd     Text           `json:"liquidityUsd"`
	TokenMcUsd       Text           `json:"tokenMcUsd"`
	TokenCreateAt    Text           `json:"tokenCreateAt"`
	PoolCreateAt     Text           `json:"poolCreateAt"`
	Links            struct {
		Website  string `json:"website"`
		Twitter  string `json:"twitter"`
		Telegram string `json:"telegram"`
	} `json:"links"`
}
