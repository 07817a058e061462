package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

const (
	day    = int64(24 * time.Hour / time.Millisecond)
	hour   = int64(time.Hour / time.Millisecond)
	minute = int64(time.Minute / time.Millisecond)
)

var subscriptDigits = []rune("₀₁₂₃₄₅₆₇₈₉")

// FormatPrice renders a USD price. Prices below 0.0001 collapse their leading
// zeros into a subscript count: 0.00000132 becomes $0.0₅132.
func FormatPrice(price float64) string {
	if s, ok := nonFinite(price); ok {
		return "$" + s
	}

	switch {
	case price >= 1:
		return "$" + decimal.NewFromFloat(price).StringFixed(2)
	case price >= 0.0001:
		return "$" + decimal.NewFromFloat(price).StringFixed(4)
	case price > 0:
		fraction := strings.TrimPrefix(decimal.NewFromFloat(price).String(), "0.")
		significant := strings.TrimLeft(fraction, "0")
		zeros := len(fraction) - len(significant)
		if len(significant) > 4 {
			significant = significant[:4]
		}
		return "$0.0" + Subscript(zeros) + significant
	default:
		return "$" + Exponential(price, 2)
	}
}

// FormatMarketCap abbreviates to B, M or K with two decimals.
func FormatMarketCap(mcap float64) string {
	if s, ok := nonFinite(mcap); ok {
		return "$" + s
	}

	d := decimal.NewFromFloat(mcap)
	switch {
	case mcap >= 1e9:
		return "$" + d.Shift(-9).StringFixed(2) + "B"
	case mcap >= 1e6:
		return "$" + d.Shift(-6).StringFixed(2) + "M"
	case mcap >= 1e3:
		return "$" + d.Shift(-3).StringFixed(2) + "K"
	default:
		return "$" + d.StringFixed(2)
	}
}

// FormatTimeAgo renders the age of a millisecond timestamp as "2d 3h 4m".
// Zero day and hour parts are dropped; minutes always show when nothing else does.
func FormatTimeAgo(timestampMs int64, now time.Time) string {
	diff := now.UnixMilli() - timestampMs
	if diff < 0 {
		diff = 0
	}

	days := diff / day
	hours := (diff % day) / hour
	minutes := (diff % hour) / minute

	var b strings.Builder
	if days > 0 {
		fmt.Fprintf(&b, "%dd ", days)
	}
	if hours > 0 {
		fmt.Fprintf(&b, "%dh ", hours)
	}
	if minutes > 0 || b.Len() == 0 {
		fmt.Fprintf(&b, "%dm", minutes)
	}
	return strings.TrimSpace(b.String())
}

// FormatPercent renders a ratio as a percentage with the given decimals: 0.5 -> "50.0%".
func FormatPercent(ratio any, places int32) string {
	f, err := cast.ToFloat64E(ratio)
	if err != nil {
		f = 0
	}
	if s, ok := nonFinite(f); ok {
		return s + "%"
	}
	return decimal.NewFromFloat(f).Shift(2).StringFixed(places) + "%"
}

// FormatFixed renders a number with a fixed count of decimals. Strings are parsed.
func FormatFixed(v any, places int32) string {
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return "NaN"
	}
	if s, ok := nonFinite(f); ok {
		return s
	}
	return decimal.NewFromFloat(f).StringFixed(places)
}

// Subscript writes n with unicode subscript digits.
func Subscript(n int) string {
	s := strconv.Itoa(n)
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(subscriptDigits[r-'0'])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Exponential formats like 1.23e-5, with no padding on the exponent.
func Exponential(v float64, places int) string {
	s := strconv.FormatFloat(v, 'e', places, 64)
	mantissa, exp, ok := strings.Cut(s, "e")
	if !ok || exp == "" {
		return s
	}
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}

func nonFinite(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "Infinity", true
	case math.IsInf(v, -1):
		return "-Infinity", true
	}
	return "", false
}
