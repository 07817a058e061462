package util

import (
	"bytes"
	"encoding/json"

	"github.com/samber/lo"
)

const maskKeep = 8

// MaskWalletID keeps the first eight characters of a wallet id.
func MaskWalletID(id string) string {
	if id == "" {
		return ""
	}
	r := []rune(id)
	if len(r) > maskKeep {
		r = r[:maskKeep]
	}
	return string(r) + "***"
}

// MaskRequest returns a JSON-shaped copy of req with walletId and
// walletIdList masked. Numbers keep their literal form.
func MaskRequest(req any) any {
	raw, err := json.Marshal(req)
	if err != nil {
		return req
	}
	var m map[string]any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&m); err != nil {
		// not an object; nothing to mask
		return req
	}

	if id, ok := m["walletId"].(string); ok && id != "" {
		m["walletId"] = MaskWalletID(id)
	}
	if list, ok := m["walletIdList"].([]any); ok {
		m["walletIdList"] = lo.Map(list, func(item any, _ int) any {
			if s, ok := item.(string); ok {
				return MaskWalletID(s)
			}
			return item
		})
	}
	return m
}

// MaskJSON masks wallet ids inside an encoded request body.
func MaskJSON(body []byte) []byte {
	if len(body) == 0 {
		return body
	}
	masked, err := json.Marshal(MaskRequest(json.RawMessage(body)))
	if err != nil {
		return body
	}
	return masked
}

// PrettyJSON indents v the way the error texts show payloads.
func PrettyJSON(v any) string {
	if raw, ok := v.(json.RawMessage); ok {
		return PrettyRaw(raw)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "null"
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

// PrettyRaw indents an encoded payload, keeping key order. Bodies that are not
// JSON come back as a quoted string.
func PrettyRaw(raw []byte) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "null"
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, trimmed, "", "  "); err != nil {
		q, _ := json.Marshal(string(trimmed))
		return string(q)
	}
	return buf.String()
}
