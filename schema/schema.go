// Package schema declares tool parameters once and derives both the JSON
// schema shown to callers and the validator applied to their arguments.
package schema

type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindInteger Kind = "integer"
	KindBoolean Kind = "boolean"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
	// KindDecimal takes a JSON number or a string holding a decimal number.
	KindDecimal Kind = "decimal"
)

type Field struct {
	name        string
	kind        Kind
	description string
	required    bool

	enum      []string
	min, max  *float64
	exclMax   bool
	minLength int

	minItems, maxItems int
	hasMaxItems        bool

	def    any
	hasDef bool

	items      *Field
	properties []*Field
}

func newField(name string, kind Kind) *Field {
	return &Field{name: name, kind: kind}
}

func String(name string) *Field  { return newField(name, KindString) }
func Number(name string) *Field  { return newField(name, KindNumber) }
func Integer(name string) *Field { return newField(name, KindInteger) }
func Bool(name string) *Field    { return newField(name, KindBoolean) }
func Decimal(name string) *Field { return newField(name, KindDecimal) }

func Array(name string, items *Field) *Field {
	f := newField(name, KindArray)
	f.items = items
	return f
}

func Object(name string, props ...*Field) *Field {
	f := newField(name, KindObject)
	f.properties = props
	return f
}

// Params is the top-level object of a tool's arguments.
func Params(props ...*Field) *Field {
	return Object("", props...)
}

func (f *Field) Name() string { return f.name }
func (f *Field) Kind() Kind   { return f.kind }

// DefaultValue is the declared default, nil when there is none.
func (f *Field) DefaultValue() any { return f.def }

func (f *Field) Desc(d string) *Field {
	f.description = d
	return f
}

func (f *Field) Require() *Field {
	f.required = true
	return f
}

func (f *Field) Enum(values ...string) *Field {
	f.enum = values
	return f
}

func (f *Field) Min(v float64) *Field {
	f.min = &v
	return f
}

func (f *Field) Max(v float64) *Field {
	f.max = &v
	f.exclMax = false
	return f
}

// Below sets an exclusive upper bound.
func (f *Field) Below(v float64) *Field {
	f.max = &v
	f.exclMax = true
	return f
}

func (f *Field) Range(min, max float64) *Field {
	return f.Min(min).Max(max)
}

func (f *Field) NonEmpty() *Field {
	f.minLength = 1
	return f
}

// Count bounds an array's length. max < 0 leaves it unbounded.
func (f *Field) Count(min, max int) *Field {
	f.minItems = min
	if max >= 0 {
		f.maxItems = max
		f.hasMaxItems = true
	}
	return f
}

func (f *Field) Default(v any) *Field {
	f.def = v
	f.hasDef = true
	return f
}

// With appends properties to an object field and returns it.
func (f *Field) With(props ...*Field) *Field {
	f.properties = append(f.properties, props...)
	return f
}

// Property looks up a direct child of an object field.
func (f *Field) Property(name string) *Field {
	for _, p := range f.properties {
		if p.name == name {
			return p
		}
	}
	return nil
}

// Properties returns the declared children in order.
func (f *Field) Properties() []*Field {
	return f.properties
}
