package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

const (
	CategoryField  = "category"
	RequestIDField = "request_id"
)

const (
	CategoryTool   = "tool"
	CategoryAPI    = "api"
	CategoryConfig = "config"
	CategoryWallet = "wallet"
)

func WithCategory(category string) func(e *zerolog.Event) {
	return func(e *zerolog.Event) {
		e.Str(CategoryField, category)
	}
}

func WithAPICategory(e *zerolog.Event) *zerolog.Event {
	return e.Str(CategoryField, CategoryAPI)
}

// Setup installs the global logger. stdout is reserved for the tool
// protocol, so everything goes to w (stderr in production).
func Setup(w io.Writer, level string, pretty bool) {
	zerolog.TimeFieldFormat = time.DateTime
	zerolog.SetGlobalLevel(ParseLevel(level))

	if w == nil {
		w = os.Stderr
	}
	if pretty {
		w = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    true,
			TimeFormat: time.DateTime,
			FormatFieldName: func(i interface{}) string {
				return fmt.Sprintf("%s: ", i)
			},
			FieldsOrder: []string{CategoryField, RequestIDField, "tool", "route"},
		}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

// ParseLevel maps a config string to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// NewStdLog dumps one upstream exchange at debug level.
func NewStdLog(route string, req []byte, result []byte) {
	e := log.Debug()
	if !e.Enabled() {
		return
	}
	WithAPICategory(e).Str("route", route)
	if gjson.ValidBytes(req) {
		e.RawJSON("request", req)
	}
	if gjson.ValidBytes(result) {
		e.RawJSON("response", result)
	} else {
		e.Bytes("response", result)
	}
	e.Send()
}
