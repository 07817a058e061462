package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Envelope wraps every response of the trading API.
type Envelope struct {
	Err  bool            `json:"err"`
	Res  json.RawMessage `json:"res"`
	Docs string          `json:"docs"`
}

// Decode unmarshals Res into out. An absent or null payload leaves out untouched.
func (e *Envelope) Decode(out any) error {
	if e == nil || len(e.Res) == 0 || bytes.Equal(bytes.TrimSpace(e.Res), []byte("null")) {
		return nil
	}
	return json.Unmarshal(e.Res, out)
}

// Text accepts a JSON string, number or boolean and keeps its literal form.
// The API is inconsistent about quoting amounts, prices and timestamps.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*t = ""
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
	default:
		*t = Text(b)
	}
	return nil
}

func (t Text) String() string { return string(t) }

// Float parses the value, returning 0 when it is not numeric.
func (t Text) Float() float64 {
	f, err := strconv.ParseFloat(string(t), 64)
	if err != nil {
		return 0
	}
	return f
}

// Int parses the value as an integer, truncating fractions.
func (t Text) Int() int64 {
	return int64(t.Float())
}

// Amount is a quantity given either as a JSON number or as a decimal string.
// It is forwarded in the form it arrived.
type Amount json.RawMessage

func (a Amount) MarshalJSON() ([]byte, error) {
	if len(a) == 0 {
		return []byte("null"), nil
	}
	return a, nil
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	*a = append((*a)[:0], b...)
	return nil
}

// String is the amount without JSON quoting.
func (a Amount) String() string {
	var s string
	if err := json.Unmarshal(a, &s); err == nil {
		return s
	}
	return string(a)
}

type IDResult struct {
	ID string `json:"id"`
}

type IDsResult struct {
	IDs []string `json:"ids"`
}
