package template

import (
	"errors"
	"strconv"
	"time"

	"github.com/flosch/pongo2/v6"
	"github.com/hellodex/dbot-mcp/util"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
)

var ErrRender = errors.New("failed to render tool result")

// price filter
var _ = func() interface{} {
	pongo2.RegisterFilter("price", func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return pongo2.AsValue(util.FormatPrice(toFloat(in))), nil
	})
	return nil
}()

// mcap filter
var _ = func() interface{} {
	pongo2.RegisterFilter("mcap", func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return pongo2.AsValue(util.FormatMarketCap(toFloat(in))), nil
	})
	return nil
}()

// pct1 and pct2 render a ratio as a percentage
var _ = func() interface{} {
	pongo2.RegisterFilter("pct1", func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return pongo2.AsValue(util.FormatPercent(toFloat(in), 1)), nil
	})
	pongo2.RegisterFilter("pct2", func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return pongo2.AsValue(util.FormatPercent(toFloat(in), 2)), nil
	})
	return nil
}()

// num writes a number in its shortest form
var _ = func() interface{} {
	pongo2.RegisterFilter("num", func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return pongo2.AsValue(cast.ToString(in.Interface())), nil
	})
	return nil
}()

// fixed:N
var _ = func() interface{} {
	pongo2.RegisterFilter("fixed", func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		places := 2
		if param != nil && !param.IsNil() {
			places = param.Integer()
		}
		return pongo2.AsValue(util.FormatFixed(toFloat(in), int32(places))), nil
	})
	return nil
}()

// datetime renders a millisecond timestamp; anything else passes through
var _ = func() interface{} {
	pongo2.RegisterFilter("datetime", func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		s := in.String()
		ms, err := strconv.ParseInt(s, 10, 64)
		if err != nil || ms <= 0 {
			return pongo2.AsValue(s), nil
		}
		return pongo2.AsValue(time.UnixMilli(ms).UTC().Format(time.DateTime)), nil
	})
	return nil
}()

// json pretty prints a payload
var _ = func() interface{} {
	pongo2.RegisterFilter("json", func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return pongo2.AsValue(util.PrettyJSON(in.Interface())), nil
	})
	return nil
}()

func toFloat(in *pongo2.Value) float64 {
	if in == nil || in.IsNil() {
		return 0
	}
	if f, err := cast.ToFloat64E(in.Interface()); err == nil {
		return f
	}
	return cast.ToFloat64(in.String())
}

// render compiles body and executes it. Payloads and addresses are written verbatim.
func render(body string, ctx pongo2.Context) (string, error) {
	tpl, err := pongo2.FromString("{% autoescape off %}" + body + "{% endautoescape %}")
	if err != nil {
		log.Error().Err(err).Send()
		return "", ErrRender
	}

	out, err := tpl.Execute(ctx)
	if err != nil {
		log.Error().Err(err).Send()
		return "", ErrRender
	}
	return out, nil
}
