package handler

import (
	"context"

	"github.com/hellodex/dbot-mcp/api"
	"github.com/hellodex/dbot-mcp/apperr"
	"github.com/hellodex/dbot-mcp/config"
	"github.com/hellodex/dbot-mcp/logger"
	"github.com/hellodex/dbot-mcp/model"
	s "github.com/hellodex/dbot-mcp/schema"
	"github.com/hellodex/dbot-mcp/template"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	walletsTitle  = "Query user wallets"
	securityTitle = "Query token security info"
)

const walletsDesc = "Query user's wallets for a specific chain type. If no type is specified, it will query all types (solana and evm). The tool returns formatted data in English, but you should present the results to the user in their preferred language. Please print details."

const securityDesc = "Get token security information and pool safety details. **Important: Please call this tool before making any trading transactions to check token security factors. If unsafe factors are detected, warn the user instead of proceeding with other trading tools.** The tool returns formatted data in English, but you should present the results to the user in their preferred language. Please print details. (For numbers with many decimal places, they will be simplified, e.g. 0.0₄1234 means 0.00001234)"

// allWalletsRequest is what a failed fan-out echoes back.
type allWalletsRequest struct {
	Type string `json:"type"`
	Page int    `json:"page"`
	Size int    `json:"size"`
}

type walletsResult struct {
	env     *model.Envelope
	err     error
	wallets []model.WalletInfo
}

func (r *walletsResult) ok() bool {
	return r.err == nil && r.env != nil && !r.env.Err
}

func sharedOperations(d *config.Defaults) []*Operation {
	return []*Operation{
		{
			Name:        "get_user_wallets",
			Description: walletsDesc,
			Params: s.Params(fields([]*s.Field{
				s.String("type").Enum(api.WalletTypeSolana, api.WalletTypeEVM).
					Desc("Wallet type, solana or evm. Leave empty to query both"),
			}, pageParams(20, 20))...),
			run: runWallets,
		},

		newOperation("get_token_security_info", securityTitle, securityDesc,
			WalletNone, s.Params(
				chainParam(d.Chain, allChains...),
				s.String("pair").NonEmpty().Require().Desc("Token address or trading pair address"),
			),
			(*api.Client).TokenSecurity,
			func(dp *Dispatcher, req *model.TokenSecurityRequest, env *model.Envelope) (string, error) {
				var info *model.TokenSecurityInfo
				if err := env.Decode(&info); err != nil {
					return "", err
				}
				return template.TokenSecurity(info, req.Chain, dp.now())
			}),
	}
}

func runWallets(ctx context.Context, d *Dispatcher, args map[string]any) (string, error) {
	req, err := s.Decode[model.WalletsRequest](args)
	if err != nil {
		return "", apperr.Wrap(apperr.CodeInternal, "decode arguments", err)
	}

	if req.Type != "" {
		r := d.fetchWallets(req)
		switch {
		case r.err != nil:
			return d.transportFailure(walletsTitle, r.err, req)
		case r.env.Err:
			return template.FormatAPIError(walletsTitle, r.env, req, d.cfg.API.DocsURL)
		}
		return template.WalletsOfType(req.Type, r.wallets, d.docs(r.env))
	}
	return d.allWallets(ctx, req)
}

// allWallets queries solana and evm concurrently. One failing side is
// logged and rendered as an empty list.
func (d *Dispatcher) allWallets(ctx context.Context, req *model.WalletsRequest) (string, error) {
	types := []string{api.WalletTypeSolana, api.WalletTypeEVM}
	results := make([]*walletsResult, len(types))

	var g errgroup.Group
	for i, t := range types {
		g.Go(func() error {
			q := *req
			q.Type = t
			results[i] = d.fetchWallets(&q)
			return nil
		})
	}
	_ = g.Wait()

	solana, evm := results[0], results[1]
	if !solana.ok() && !evm.ok() {
		all := &allWalletsRequest{Type: "all", Page: req.Page, Size: req.Size}
		for _, r := range results {
			if r.err == nil {
				return template.FormatAPIError(walletsTitle, r.env, all, d.cfg.API.DocsURL)
			}
		}
		return d.transportFailure(walletsTitle, solana.err, all)
	}

	l := zerolog.Ctx(ctx)
	for i, r := range results {
		if !r.ok() {
			l.Warn().Str(logger.CategoryField, logger.CategoryAPI).Str("type", types[i]).Err(r.err).
				Msg("wallet query failed, listing the other type only")
		}
	}

	docsFrom := solana.env
	if !solana.ok() {
		docsFrom = evm.env
	}
	return template.Wallets(solana.wallets, evm.wallets, d.docs(docsFrom))
}

func (d *Dispatcher) fetchWallets(req *model.WalletsRequest) *walletsResult {
	env, err := d.client.Wallets(req)
	r := &walletsResult{env: env, err: err}
	if !r.ok() {
		return r
	}
	if err := decodeList(env, &r.wallets, "list", "wallets"); err != nil {
		r.err = err
	}
	return r
}
