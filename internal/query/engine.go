package query

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// All is the categorical value that leaves a field unconstrained.
const All = "all"

// Direction is a sort order.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Range bounds a number field with Min/Max or a time field with From/To.
// Bounds are inclusive and each is optional. Null values never match.
type Range struct {
	Field string     `json:"field"`
	Min   *float64   `json:"min,omitempty"`
	Max   *float64   `json:"max,omitempty"`
	From  *time.Time `json:"from,omitempty"`
	To    *time.Time `json:"to,omitempty"`
}

// Predicates is a declarative filter. Zero value matches everything.
type Predicates struct {
	// Text is matched case-insensitively as a substring of any searchable
	// field. Surrounding whitespace is ignored.
	Text string `json:"text,omitempty"`
	// SearchFields narrows Text to a subset of the schema's searchable fields.
	SearchFields []string `json:"searchFields,omitempty"`
	// Categorical maps a string field to an exact value, or to "all".
	Categorical map[string]string `json:"categorical,omitempty"`
	Range       *Range            `json:"range,omitempty"`
}

// Order names the sort key and direction. An empty Key keeps input order.
type Order struct {
	Key       string    `json:"key"`
	Direction Direction `json:"direction"`
}

// Query is a filter followed by a sort.
type Query struct {
	Filter Predicates `json:"filter"`
	Order  Order      `json:"order"`
}

type compiledFilter[T any] struct {
	text        string
	search      []func(T) string
	categorical []categorical[T]
	rng         *compiledRange[T]
}

type categorical[T any] struct {
	get   func(T) string
	value string
}

type compiledRange[T any] struct {
	field    Field[T]
	min, max *float64
	from, to *time.Time
}

func compile[T any](schema *Schema[T], p Predicates) (*compiledFilter[T], error) {
	cf := &compiledFilter[T]{}

	fold := cases.Fold()
	cf.text = fold.String(strings.TrimSpace(p.Text))

	names := p.SearchFields
	if len(names) == 0 {
		names = schema.searchOrder
	}
	for _, name := range names {
		fn, ok := schema.searchable[name]
		if !ok {
			return nil, configErr(name, "not a searchable field")
		}
		cf.search = append(cf.search, fn)
	}

	// map order is irrelevant, every constraint must hold
	for name, value := range p.Categorical {
		f, ok := schema.fields[name]
		if !ok {
			return nil, configErr(name, "unknown filter field")
		}
		if f.Kind != KindString {
			return nil, configErr(name, "categorical filter needs a string field, got %s", f.Kind)
		}
		if value == "" || value == All {
			continue
		}
		cf.categorical = append(cf.categorical, categorical[T]{get: f.str, value: value})
	}

	if p.Range != nil {
		r, err := compileRange(schema, *p.Range)
		if err != nil {
			return nil, err
		}
		cf.rng = r
	}
	return cf, nil
}

func compileRange[T any](schema *Schema[T], r Range) (*compiledRange[T], error) {
	f, ok := schema.fields[r.Field]
	if !ok {
		return nil, configErr(r.Field, "unknown range field")
	}
	switch f.Kind {
	case KindNumber:
		if r.From != nil || r.To != nil {
			return nil, configErr(r.Field, "number range takes min/max")
		}
		if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
			return nil, configErr(r.Field, "min %v greater than max %v", *r.Min, *r.Max)
		}
	case KindTime:
		if r.Min != nil || r.Max != nil {
			return nil, configErr(r.Field, "time range takes from/to")
		}
		if r.From != nil && r.To != nil && r.From.After(*r.To) {
			return nil, configErr(r.Field, "from %s after to %s", r.From.Format(time.RFC3339), r.To.Format(time.RFC3339))
		}
	default:
		return nil, configErr(r.Field, "range filter needs a number or time field, got %s", f.Kind)
	}
	return &compiledRange[T]{field: f, min: r.Min, max: r.Max, from: r.From, to: r.To}, nil
}

func (cf *compiledFilter[T]) match(r T, fold cases.Caser) bool {
	for _, c := range cf.categorical {
		if c.get(r) != c.value {
			return false
		}
	}
	if cf.rng != nil && !cf.rng.match(r) {
		return false
	}
	if cf.text == "" {
		return true
	}
	for _, get := range cf.search {
		if strings.Contains(fold.String(get(r)), cf.text) {
			return true
		}
	}
	return false
}

func (cr *compiledRange[T]) match(r T) bool {
	if cr.field.Kind == KindNumber {
		v, ok := cr.field.number(r)
		if !ok {
			return false
		}
		return (cr.min == nil || v >= *cr.min) && (cr.max == nil || v <= *cr.max)
	}
	v, ok := cr.field.instant(r)
	if !ok {
		return false
	}
	return (cr.from == nil || !v.Before(*cr.from)) && (cr.to == nil || !v.After(*cr.to))
}

// Filter returns the records matching p, in their original relative order.
// The input slice and its elements are never modified.
func Filter[T any](records []T, schema *Schema[T], p Predicates) ([]T, error) {
	cf, err := compile(schema, p)
	if err != nil {
		return nil, err
	}
	// Caser carries state and is not safe for concurrent use.
	fold := cases.Fold()
	out := make([]T, 0, len(records))
	for _, r := range records {
		if cf.match(r, fold) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Sort returns a stably sorted copy of records. Strings compare
// case-insensitively with English collation, numbers numerically and times by
// instant. Null values sort first in ascending order. Equal keys keep their
// input order in both directions.
func Sort[T any](records []T, schema *Schema[T], o Order) ([]T, error) {
	out := slices.Clone(records)
	if out == nil {
		out = []T{}
	}
	if o.Key == "" {
		if o.Direction != "" && o.Direction != Asc && o.Direction != Desc {
			return nil, configErr("", "invalid sort direction %q", o.Direction)
		}
		return out, nil
	}
	f, ok := schema.fields[o.Key]
	if !ok {
		return nil, configErr(o.Key, "unknown sort field")
	}
	sign := 1
	switch o.Direction {
	case Asc, "":
	case Desc:
		sign = -1
	default:
		return nil, configErr(o.Key, "invalid sort direction %q", o.Direction)
	}

	compare := comparator(f)
	slices.SortStableFunc(out, func(a, b T) int {
		return sign * compare(a, b)
	})
	return out, nil
}

func comparator[T any](f Field[T]) func(a, b T) int {
	switch f.Kind {
	case KindNumber:
		return func(a, b T) int {
			av, aok := f.number(a)
			bv, bok := f.number(b)
			if c := nullsFirst(aok, bok); c != 0 || !aok {
				return c
			}
			return cmp.Compare(av, bv)
		}
	case KindTime:
		return func(a, b T) int {
			av, aok := f.instant(a)
			bv, bok := f.instant(b)
			if c := nullsFirst(aok, bok); c != 0 || !aok {
				return c
			}
			return av.Compare(bv)
		}
	default:
		// Collator is not safe for concurrent use; one per sort.
		col := collate.New(language.English, collate.IgnoreCase)
		return func(a, b T) int {
			return col.CompareString(f.str(a), f.str(b))
		}
	}
}

func nullsFirst(aok, bok bool) int {
	switch {
	case aok == bok:
		return 0
	case !aok:
		return -1
	default:
		return 1
	}
}

// Run filters then sorts.
func Run[T any](records []T, schema *Schema[T], q Query) ([]T, error) {
	filtered, err := Filter(records, schema, q.Filter)
	if err != nil {
		return nil, err
	}
	return Sort(filtered, schema, q.Order)
}

// Clone returns a deep copy of q.
func (q Query) Clone() Query {
	out := q
	out.Filter.SearchFields = slices.Clone(q.Filter.SearchFields)
	if q.Filter.Categorical != nil {
		out.Filter.Categorical = make(map[string]string, len(q.Filter.Categorical))
		for k, v := range q.Filter.Categorical {
			out.Filter.Categorical[k] = v
		}
	}
	if r := q.Filter.Range; r != nil {
		c := *r
		if r.Min != nil {
			v := *r.Min
			c.Min = &v
		}
		if r.Max != nil {
			v := *r.Max
			c.Max = &v
		}
		if r.From != nil {
			v := *r.From
			c.From = &v
		}
		if r.To != nil {
			v := *r.To
			c.To = &v
		}
		out.Filter.Range = &c
	}
	return out
}
