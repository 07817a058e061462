package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type Issue struct {
	Path    string
	Message string
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// ValidationError carries every issue found in one argument object.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	return strings.Join(lo.Map(e.Issues, func(i Issue, _ int) string { return i.String() }), "; ")
}

// Fields lists the paths of the failing fields.
func (e *ValidationError) Fields() []string {
	return lo.Uniq(lo.Map(e.Issues, func(i Issue, _ int) string { return i.Path }))
}

// Validate checks args against an object schema and returns a copy with
// defaults filled in. Nothing is clamped or coerced.
func Validate(params *Field, args map[string]any) (map[string]any, error) {
	if args == nil {
		args = map[string]any{}
	}
	var issues []Issue
	out := params.check("", args, &issues)
	if len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}
	m, _ := out.(map[string]any)
	return m, nil
}

// Decode converts validated arguments into the typed request T.
func Decode[T any](args map[string]any) (*T, error) {
	raw, err := json.Marshal(args)
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (f *Field) check(path string, v any, issues *[]Issue) any {
	report := func(format string, args ...any) any {
		*issues = append(*issues, Issue{Path: path, Message: fmt.Sprintf(format, args...)})
		return nil
	}

	switch f.kind {
	case KindString:
		s, ok := v.(string)
		if !ok {
			return report("expected string, received %s", typeName(v))
		}
		if f.minLength > 0 && utf8.RuneCountInString(s) < f.minLength {
			return report("must contain at least %d character(s)", f.minLength)
		}
		if len(f.enum) > 0 && !lo.Contains(f.enum, s) {
			return report("invalid value %q, expected one of: %s", s, strings.Join(f.enum, ", "))
		}
		return s

	case KindNumber, KindInteger:
		n, ok := toFloat(v)
		if !ok {
			return report("expected number, received %s", typeName(v))
		}
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return report("expected a finite number")
		}
		if f.kind == KindInteger && n != math.Trunc(n) {
			return report("expected integer, received %s", formatNum(n))
		}
		if msg := f.boundsIssue(n); msg != "" {
			return report("%s", msg)
		}
		if f.kind == KindInteger {
			return int64(n)
		}
		return n

	case KindDecimal:
		if str, isStr := v.(string); isStr {
			d, err := decimal.NewFromString(str)
			if err != nil {
				return report("expected a decimal number, received %q", str)
			}
			if msg := f.boundsIssue(d.InexactFloat64()); msg != "" {
				return report("%s", msg)
			}
			return str
		}
		n, ok := toFloat(v)
		if !ok {
			return report("expected number or string, received %s", typeName(v))
		}
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return report("expected a finite number")
		}
		if msg := f.boundsIssue(n); msg != "" {
			return report("%s", msg)
		}
		return n

	case KindBoolean:
		b, ok := v.(bool)
		if !ok {
			return report("expected boolean, received %s", typeName(v))
		}
		return b

	case KindArray:
		list, ok := v.([]any)
		if !ok {
			if strs, isStrs := v.([]string); isStrs {
				list = lo.Map(strs, func(s string, _ int) any { return s })
			} else {
				return report("expected array, received %s", typeName(v))
			}
		}
		if len(list) < f.minItems {
			return report("must contain at least %d element(s)", f.minItems)
		}
		if f.hasMaxItems && len(list) > f.maxItems {
			return report("must contain at most %d element(s)", f.maxItems)
		}
		out := make([]any, 0, len(list))
		for i, item := range list {
			out = append(out, f.items.check(fmt.Sprintf("%s[%d]", path, i), item, issues))
		}
		return out

	case KindObject:
		m, ok := v.(map[string]any)
		if !ok {
			return report("expected object, received %s", typeName(v))
		}
		return f.checkObject(path, m, issues)
	}
	return report("unsupported field kind %q", f.kind)
}

func (f *Field) checkObject(path string, m map[string]any, issues *[]Issue) map[string]any {
	out := make(map[string]any, len(f.properties))

	unknown := lo.Filter(lo.Keys(m), func(k string, _ int) bool { return f.Property(k) == nil })
	slices.Sort(unknown)
	for _, k := range unknown {
		*issues = append(*issues, Issue{Path: join(path, k), Message: "unrecognized field"})
	}

	for _, p := range f.properties {
		childPath := join(path, p.name)
		v, present := m[p.name]
		if v == nil || (p.kind == KindString && len(p.enum) > 0 && !p.required && v == "") {
			present = false
		}

		if !present {
			switch {
			case p.hasDef:
				out[p.name] = p.check(childPath, p.def, issues)
			case p.required:
				*issues = append(*issues, Issue{Path: childPath, Message: "required"})
			}
			continue
		}
		out[p.name] = p.check(childPath, v, issues)
	}
	return out
}

func (f *Field) boundsIssue(n float64) string {
	if f.min != nil && n < *f.min {
		return "must be greater than or equal to " + formatNum(*f.min)
	}
	if f.max != nil {
		if f.exclMax && n >= *f.max {
			return "must be less than " + formatNum(*f.max)
		}
		if !f.exclMax && n > *f.max {
			return "must be less than or equal to " + formatNum(*f.max)
		}
	}
	return ""
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int64, int32, json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}
