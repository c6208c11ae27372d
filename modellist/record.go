package modellist

import (
	"math"
	"reflect"

	"github.com/google/uuid"
)

// EUID is the process-local surrogate id of a record. It is its own type so
// that it never compares equal to a primary key held in the same table.
type EUID string

// NewEUID returns a fresh surrogate id.
func NewEUID() EUID {
	return EUID(uuid.NewString())
}

// Record is a value that can be stored in a ModelList. Implementations must
// be comparable with ==, which pointer types always are. A ModelList skips
// records that are not.
type Record interface {
	// EUID returns the surrogate id. It must not change while the record is
	// stored in a list.
	EUID() EUID
	// PrimaryKey returns the application key and whether one is present. The
	// key must be comparable (a string, a number, a struct of those...). A
	// record whose key is not is stored without a key binding.
	PrimaryKey() (any, bool)
	// Headless reports whether another record already held this record's
	// primary key when it was added.
	Headless() bool
	SetHeadless(headless bool)
}

// DefaultPrimaryKey is the attribute name used as primary key by Model.
const DefaultPrimaryKey = "id"

// Model is a Record backed by an attribute map.
type Model struct {
	euid       EUID
	headless   bool
	primaryKey string
	attributes map[string]any
}

// NewModel returns a model holding attrs keyed by the "id" attribute.
func NewModel(attrs map[string]any) *Model {
	return NewModelWithKey(DefaultPrimaryKey, attrs)
}

// NewModelWithKey returns a model whose primary key is the attribute named
// field. An empty field disables the primary key.
func NewModelWithKey(field string, attrs map[string]any) *Model {
	if attrs == nil {
		attrs = map[string]any{}
	}
	return &Model{
		euid:       NewEUID(),
		primaryKey: field,
		attributes: attrs,
	}
}

func (m *Model) EUID() EUID {
	return m.euid
}

// PrimaryKeyField returns the name of the attribute used as primary key.
func (m *Model) PrimaryKeyField() string {
	return m.primaryKey
}

func (m *Model) PrimaryKey() (any, bool) {
	if m.primaryKey == "" {
		return nil, false
	}
	v := m.attributes[m.primaryKey]
	if v == nil {
		return nil, false
	}
	return v, true
}

func (m *Model) Headless() bool {
	return m.headless
}

func (m *Model) SetHeadless(headless bool) {
	m.headless = headless
}

// Get returns the attribute named field, or nil.
func (m *Model) Get(field string) any {
	return m.attributes[field]
}

// Set assigns an attribute. Changing the primary key of a model that is
// stored in a list leaves the list's index pointing at the old key.
func (m *Model) Set(field string, value any) *Model {
	m.attributes[field] = value
	return m
}

// normalizeKey folds numeric kinds together so that 1, int64(1) and 1.0
// address the same record. It reports false for keys that cannot index a
// map.
func normalizeKey(key any) (any, bool) {
	switch k := key.(type) {
	case nil:
		return nil, false
	case int:
		return int64(k), true
	case int8:
		return int64(k), true
	case int16:
		return int64(k), true
	case int32:
		return int64(k), true
	case uint:
		return uintKey(uint64(k)), true
	case uint8:
		return int64(k), true
	case uint16:
		return int64(k), true
	case uint32:
		return int64(k), true
	case uint64:
		return uintKey(k), true
	case float32:
		return floatKey(float64(k)), true
	case float64:
		return floatKey(k), true
	}
	return key, isComparable(key)
}

// isComparable reports whether v can be compared with == without panicking.
func isComparable(v any) bool {
	return v != nil && reflect.ValueOf(v).Comparable()
}

func uintKey(v uint64) any {
	if v > math.MaxInt64 {
		return v
	}
	return int64(v)
}

func floatKey(v float64) any {
	if v == math.Trunc(v) && v >= math.MinInt64 && v < math.MaxInt64 {
		return int64(v)
	}
	return v
}
