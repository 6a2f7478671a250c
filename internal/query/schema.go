package query

import "time"

// Kind is the comparison domain of a field.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindTime:
		return "time"
	default:
		return "unknown"
	}
}

// Field extracts one typed value from a record. Number and time accessors
// report false for null values.
type Field[T any] struct {
	Name    string
	Kind    Kind
	str     func(T) string
	number  func(T) (float64, bool)
	instant func(T) (time.Time, bool)
}

// StringField declares a string-valued field.
func StringField[T any](name string, fn func(T) string) Field[T] {
	return Field[T]{Name: name, Kind: KindString, str: fn}
}

// NumberField declares a non-nullable numeric field.
func NumberField[T any](name string, fn func(T) float64) Field[T] {
	return Field[T]{Name: name, Kind: KindNumber, number: func(r T) (float64, bool) { return fn(r), true }}
}

// NullableNumberField declares a numeric field that may be absent.
func NullableNumberField[T any](name string, fn func(T) (float64, bool)) Field[T] {
	return Field[T]{Name: name, Kind: KindNumber, number: fn}
}

// TimeField declares an instant-valued field that may be absent.
func TimeField[T any](name string, fn func(T) (time.Time, bool)) Field[T] {
	return Field[T]{Name: name, Kind: KindTime, instant: fn}
}

// Schema declares, for one record type, which fields free text searches and
// which typed fields may be filtered and sorted on.
type Schema[T any] struct {
	searchOrder []string
	searchable  map[string]func(T) string
	fields      map[string]Field[T]
}

// NewSchema returns an empty schema.
func NewSchema[T any]() *Schema[T] {
	return &Schema[T]{
		searchable: make(map[string]func(T) string),
		fields:     make(map[string]Field[T]),
	}
}

// Searchable adds a field matched by free-text queries.
func (s *Schema[T]) Searchable(name string, fn func(T) string) *Schema[T] {
	if _, ok := s.searchable[name]; !ok {
		s.searchOrder = append(s.searchOrder, name)
	}
	s.searchable[name] = fn
	return s
}

// With adds typed fields usable for categorical filters, ranges and sorting.
func (s *Schema[T]) With(fields ...Field[T]) *Schema[T] {
	for _, f := range fields {
		s.fields[f.Name] = f
	}
	return s
}

// Field looks up a typed field.
func (s *Schema[T]) Field(name string) (Field[T], bool) {
	f, ok := s.fields[name]
	return f, ok
}

// SearchFields returns the declared searchable field names in declaration order.
func (s *Schema[T]) SearchFields() []string {
	return append([]string(nil), s.searchOrder...)
}
