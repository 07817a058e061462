package handler

import "github.com/hellodex/dbot-mcp/config"

// Adapters maps an adapter name to its operation table. Every adapter also
// carries the shared wallet and token security operations.
var Adapters = map[string]func(*config.Defaults) []*Operation{
	"conditional-order": conditionalOrderOperations,
	"copy-trading":      copyTradingOperations,
	"fast-swap":         fastSwapOperations,
	"limit-order":       limitOrderOperations,
}
