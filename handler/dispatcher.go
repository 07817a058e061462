// Package handler turns tool calls into API requests and rendered texts.
package handler

import (
	"context"
	"encoding/json"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hellodex/dbot-mcp/api"
	"github.com/hellodex/dbot-mcp/apperr"
	"github.com/hellodex/dbot-mcp/config"
	"github.com/hellodex/dbot-mcp/logger"
	"github.com/hellodex/dbot-mcp/model"
	"github.com/hellodex/dbot-mcp/schema"
	"github.com/hellodex/dbot-mcp/template"
	"github.com/hellodex/dbot-mcp/wallet"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
)

type WalletMode int

const (
	// WalletNone leaves arguments untouched.
	WalletNone WalletMode = iota
	// WalletSingle fills walletId from the chain when it is missing or empty.
	WalletSingle
	// WalletList fills walletIdList with one resolved id when it is missing or empty.
	WalletList
)

const (
	walletIDField     = "walletId"
	walletIDListField = "walletIdList"
	chainField        = "chain"
)

type runFunc func(ctx context.Context, d *Dispatcher, args map[string]any) (string, error)

// Operation is one tool: its public contract plus how to execute it.
type Operation struct {
	Name        string
	Description string
	Params      *schema.Field
	Wallet      WalletMode

	run runFunc
}

// newOperation builds the common shape: decode, call, then render the
// envelope or the failure. title names the action in failure texts.
func newOperation[Req any](
	name, title, description string,
	mode WalletMode,
	params *schema.Field,
	call func(c *api.Client, req *Req) (*model.Envelope, error),
	success func(d *Dispatcher, req *Req, env *model.Envelope) (string, error),
) *Operation {
	return &Operation{
		Name:        name,
		Description: description,
		Params:      params,
		Wallet:      mode,
		run: func(ctx context.Context, d *Dispatcher, args map[string]any) (string, error) {
			req, err := schema.Decode[Req](args)
			if err != nil {
				return "", apperr.Wrap(apperr.CodeInternal, "decode arguments", err)
			}
			env, err := call(d.client, req)
			if err != nil {
				return d.transportFailure(title, err, req)
			}
			if env.Err {
				return template.FormatAPIError(title, env, req, d.cfg.API.DocsURL)
			}
			return success(d, req, env)
		},
	}
}

type Dispatcher struct {
	cfg      *config.Config
	client   *api.Client
	resolver *wallet.Resolver
	ops      []*Operation
	byName   map[string]*Operation
	now      func() time.Time
}

// NewDispatcher builds the operation table of one adapter.
func NewDispatcher(cfg *config.Config, adapter string) (*Dispatcher, error) {
	build, ok := Adapters[adapter]
	if !ok {
		return nil, apperr.Newf(apperr.CodeUsage, "unknown adapter %q, expected one of: %s",
			adapter, strings.Join(AdapterNames(), ", "))
	}

	d := &Dispatcher{
		cfg:      cfg,
		client:   api.New(cfg),
		resolver: wallet.NewResolver(cfg.Wallets),
		byName:   map[string]*Operation{},
		now:      time.Now,
	}
	d.ops = append(build(&cfg.Defaults), sharedOperations(&cfg.Defaults)...)
	for _, op := range d.ops {
		if _, dup := d.byName[op.Name]; dup {
			return nil, apperr.Newf(apperr.CodeInternal, "operation %s registered twice", op.Name)
		}
		d.byName[op.Name] = op
	}

	for _, op := range d.ops {
		log.Debug().Str(logger.CategoryField, logger.CategoryTool).Str("tool", op.Name).Msg("operation loaded")
	}
	return d, nil
}

// ValidateWallets fails when no wallet slot is configured at all.
func (d *Dispatcher) ValidateWallets() error {
	return d.resolver.ValidateConfig()
}

func (d *Dispatcher) Operations() []*Operation {
	return d.ops
}

func (d *Dispatcher) Operation(name string) (*Operation, bool) {
	op, ok := d.byName[name]
	return op, ok
}

// Handle runs one tool call. Upstream failures come back as text; the error
// return is reserved for unknown tools, bad arguments, missing wallets and bugs.
func (d *Dispatcher) Handle(ctx context.Context, name string, args map[string]any) (string, error) {
	start := time.Now()
	l := log.With().
		Str(logger.CategoryField, logger.CategoryTool).
		Str(logger.RequestIDField, uuid.NewString()).
		Str("tool", name).
		Logger()
	ctx = l.WithContext(ctx)

	text, err := d.handle(ctx, name, args)

	var e *zerolog.Event
	if err != nil {
		e = l.Warn().Err(err)
	} else {
		e = l.Info()
	}
	e.Dur("duration", time.Since(start)).Msg("tool call")
	return text, err
}

func (d *Dispatcher) handle(ctx context.Context, name string, args map[string]any) (string, error) {
	op, ok := d.byName[name]
	if !ok {
		return "", apperr.Newf(apperr.CodeMethodNotFound, "Unknown tool: %s", name)
	}

	args = cloneArgs(args)
	if err := d.fillWallet(op, args); err != nil {
		return "", err
	}

	normalized, err := schema.Validate(op.Params, args)
	if err != nil {
		return "", apperr.Wrap(apperr.CodeValidation, "Invalid parameters", err)
	}
	return op.run(ctx, d, normalized)
}

func (d *Dispatcher) fillWallet(op *Operation, args map[string]any) error {
	switch op.Wallet {
	case WalletSingle:
		if !unset(args[walletIDField]) {
			return nil
		}
		id, err := d.resolveFor(op, args)
		if err != nil {
			return err
		}
		args[walletIDField] = id

	case WalletList:
		if !unset(args[walletIDListField]) {
			return nil
		}
		id, err := d.resolveFor(op, args)
		if err != nil {
			return err
		}
		args[walletIDListField] = []any{id}
	}
	return nil
}

// unset reports a wallet argument the caller left out. Anything else, even of
// the wrong type, is kept for validation to judge.
func unset(v any) bool {
	switch v := v.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []any:
		return len(v) == 0
	case []string:
		return len(v) == 0
	}
	return false
}

// resolveFor picks the wallet for the requested chain, else the schema's default chain.
func (d *Dispatcher) resolveFor(op *Operation, args map[string]any) (string, error) {
	chain, _ := args[chainField].(string)
	if chain == "" {
		if f := op.Params.Property(chainField); f != nil {
			chain, _ = f.DefaultValue().(string)
		}
	}
	if chain == "" {
		chain = d.cfg.Defaults.Chain
	}

	id, err := d.resolver.Resolve(chain)
	if err != nil {
		log.Warn().Str(logger.CategoryField, logger.CategoryWallet).Str(chainField, chain).Msg("no wallet configured")
		return "", err
	}
	return id, nil
}

func (d *Dispatcher) transportFailure(title string, err error, req any) (string, error) {
	if !api.IsTransport(err) {
		return "", apperr.Wrap(apperr.CodeInternal, title, err)
	}
	return template.FormatNetworkError(title, err, req)
}

func (d *Dispatcher) docs(env *model.Envelope) string {
	return d.cfg.DocsOr(env.Docs)
}

// AdapterNames lists the adapters in a stable order.
func AdapterNames() []string {
	names := lo.Keys(Adapters)
	slices.Sort(names)
	return names
}

func cloneArgs(args map[string]any) map[string]any {
	out := make(map[string]any, len(args)+1)
	for k, v := range args {
		out[k] = v
	}
	return out
}

func idOrUnknown(id string) string {
	if id == "" {
		return "Unknown"
	}
	return id
}

func decodeID(env *model.Envelope) string {
	return idOrUnknown(gjson.GetBytes(env.Res, "id").String())
}

// decodeList accepts res as a bare array or as an object holding the array under one of keys.
func decodeList(env *model.Envelope, out any, keys ...string) error {
	res := gjson.ParseBytes(env.Res)
	if res.IsObject() {
		for _, k := range keys {
			if v := res.Get(k); v.IsArray() {
				return json.Unmarshal([]byte(v.Raw), out)
			}
		}
		return nil
	}
	return env.Decode(out)
}
