// Package wallet picks the wallet id used when a caller leaves it out.
package wallet

import (
	"strings"

	"github.com/hellodex/dbot-mcp/apperr"
	"github.com/samber/lo"
)

const (
	KeySolana   = "SOLANA"
	KeyEVM      = "EVM"
	KeyTron     = "TRON"
	KeyBase     = "BASE"
	KeyArbitrum = "ARBITRUM"
	KeyBSC      = "BSC"

	envPrefix = "DBOT_WALLET_ID_"
)

// RecognizedKeys are the slots the startup check accepts.
var RecognizedKeys = []string{KeySolana, KeyEVM, KeyTron, KeyBase, KeyArbitrum, KeyBSC}

// RecognizedVars lists RecognizedKeys as environment variable names.
func RecognizedVars() []string {
	return lo.Map(RecognizedKeys, func(k string, _ int) string { return envPrefix + k })
}

type Resolver struct {
	table map[string]string
}

// NewResolver copies table, keyed by upper-case chain or family name.
func NewResolver(table map[string]string) *Resolver {
	t := make(map[string]string, len(table))
	for k, v := range table {
		if v != "" {
			t[strings.ToUpper(k)] = v
		}
	}
	return &Resolver{table: t}
}

// Resolve returns the chain-specific wallet, then the chain family's.
func (r *Resolver) Resolve(chain string) (string, error) {
	chain = strings.ToLower(strings.TrimSpace(chain))
	if id, ok := r.table[strings.ToUpper(chain)]; ok {
		return id, nil
	}
	if id, ok := r.table[familyKey(chain)]; ok {
		return id, nil
	}
	return "", apperr.Newf(apperr.CodeConfig,
		"No wallet ID configured for chain %s. Please configure at least one of the following environment variables: %s",
		chain, strings.Join(RecognizedVars(), ", "))
}

// ValidateConfig fails when none of the recognized slots is filled.
func (r *Resolver) ValidateConfig() error {
	if lo.SomeBy(RecognizedKeys, func(k string) bool { return r.table[k] != "" }) {
		return nil
	}
	return apperr.Newf(apperr.CodeConfig,
		"At least one wallet ID must be configured. Please set one of the following environment variables: %s",
		strings.Join(RecognizedVars(), ", "))
}

func familyKey(chain string) string {
	switch chain {
	case "solana":
		return KeySolana
	case "tron":
		return KeyTron
	default:
		// ethereum, base, bsc, arbitrum and anything unknown share the EVM slot
		return KeyEVM
	}
}
