// Package modellist provides an ordered collection of records indexed both
// by surrogate id and by primary key.
//
// A record whose primary key is already held by a different record is still
// accepted but marked headless: it can be found by its EUID, never by its
// key, and the original key holder keeps its binding.
package modellist

import (
	"fmt"
	"slices"

	"github.com/ayn2op/vlist/internal/logger"
)

// ModelList is an ordered sequence of records with an EUID and primary-key
// lookup table. It is not safe for concurrent use.
type ModelList struct {
	records   []Record
	table     map[any]Record
	observers []Observer
	logger    logger.Logger
}

// Option configures a ModelList.
type Option func(*ModelList)

// WithLogger sets the logger used to report key conflicts.
func WithLogger(l logger.Logger) Option {
	return func(m *ModelList) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithObserver subscribes o to change notifications.
func WithObserver(o Observer) Option {
	return func(m *ModelList) {
		m.Observe(o)
	}
}

// New returns an empty list.
func New(options ...Option) *ModelList {
	m := &ModelList{
		table:  map[any]Record{},
		logger: logger.Noop(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Observe subscribes o to change notifications.
func (m *ModelList) Observe(o Observer) *ModelList {
	if o != nil {
		m.observers = append(m.observers, o)
	}
	return m
}

// Unobserve removes a subscription added with Observe.
func (m *ModelList) Unobserve(o Observer) *ModelList {
	m.observers = slices.DeleteFunc(m.observers, func(x Observer) bool {
		return x == o
	})
	return m
}

// Len returns the number of records.
func (m *ModelList) Len() int {
	return len(m.records)
}

// At returns the record at index i, or nil when i is out of range.
func (m *ModelList) At(i int) Record {
	if i < 0 || i >= len(m.records) {
		return nil
	}
	return m.records[i]
}

// Records returns the live sequence. Callers must not modify it; it may be
// passed back to Remove to empty the list.
func (m *ModelList) Records() []Record {
	return m.records
}

// IndexOf returns the position of r, or -1.
func (m *ModelList) IndexOf(r Record) int {
	if !isComparable(r) {
		return -1
	}
	return slices.Index(m.records, r)
}

// Add inserts the records not already present (by EUID) at position at,
// clamped to [0, Len()], keeping their relative order. It returns the records
// actually inserted.
func (m *ModelList) Add(at int, records ...Record) []Record {
	added := make([]Record, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		if !isComparable(r) {
			m.logger.Warn("record is not comparable, skipped", logger.F("type", fmt.Sprintf("%T", r)))
			continue
		}
		euid := r.EUID()
		if _, ok := m.table[euid]; ok {
			continue
		}

		if raw, ok := r.PrimaryKey(); ok {
			m.bindKey(r, raw)
		}

		m.table[euid] = r
		added = append(added, r)
	}

	if len(added) == 0 {
		return added
	}

	at = min(max(at, 0), len(m.records))
	m.records = slices.Insert(m.records, at, added...)

	for _, o := range m.observers {
		o.ItemsAdded(added, at)
	}
	return added
}

// Remove deletes the given records and returns those actually removed, in
// input order. The input is walked backwards so that Remove(m.Records()...)
// empties the list.
func (m *ModelList) Remove(records ...Record) []Record {
	if len(records) == 0 {
		return []Record{}
	}

	self := len(records) == len(m.records) && &records[0] == &m.records[0]
	removed := make([]Record, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		r := records[i]
		if !isComparable(r) {
			continue
		}
		m.unbind(r)

		idx := i
		if !self {
			idx = m.IndexOf(r)
		}
		if idx < 0 {
			continue
		}
		m.records = slices.Delete(m.records, idx, idx+1)
		removed = append(removed, r)
	}
	slices.Reverse(removed)

	if len(removed) > 0 {
		for _, o := range m.observers {
			o.ItemsRemoved(removed)
		}
	}
	return removed
}

// bindKey binds the primary key of r unless another record holds it, in
// which case r becomes headless.
func (m *ModelList) bindKey(r Record, raw any) {
	key, valid := normalizeKey(raw)
	if !valid {
		m.logger.Warn("primary key is not comparable, record has no key binding",
			logger.F("euid", r.EUID()), logger.F("type", fmt.Sprintf("%T", raw)))
		return
	}
	if holder, bound := m.table[key]; bound && holder != r {
		r.SetHeadless(true)
		m.logger.Warn("primary key already bound, record is headless",
			logger.F("key", key), logger.F("euid", r.EUID()), logger.F("holder", holder.EUID()))
		return
	}
	m.table[key] = r
	r.SetHeadless(false)
}

func (m *ModelList) unbind(r Record) {
	euid := r.EUID()
	if m.table[euid] == r {
		delete(m.table, euid)
	}
	if raw, ok := r.PrimaryKey(); ok {
		if key, valid := normalizeKey(raw); valid && m.table[key] == r {
			delete(m.table, key)
		}
	}
}

// Reset replaces the whole content with records and notifies observers with
// CollectionReset instead of add/remove notifications.
func (m *ModelList) Reset(records ...Record) *ModelList {
	observers := m.observers
	m.observers = nil
	m.records = nil
	m.table = map[any]Record{}
	m.Add(0, records...)
	m.observers = observers

	for _, o := range m.observers {
		o.CollectionReset()
	}
	return m
}

// Has reports whether identity is bound. Identity may be a Record, an EUID or
// a primary key value.
func (m *ModelList) Has(identity any) bool {
	switch id := identity.(type) {
	case nil:
		return false
	case Record:
		return isComparable(id) && m.table[id.EUID()] == id
	}
	key, valid := normalizeKey(identity)
	if !valid {
		return false
	}
	_, ok := m.table[key]
	return ok
}

// Resolve returns the record bound to an EUID or primary key. A Record is
// returned unchanged. It returns nil when nothing is bound.
func (m *ModelList) Resolve(identity any) Record {
	switch id := identity.(type) {
	case nil:
		return nil
	case Record:
		return id
	}
	key, valid := normalizeKey(identity)
	if !valid {
		return nil
	}
	return m.table[key]
}

// Slice returns a copy of the records in [from, to), clamped to the list.
func (m *ModelList) Slice(from, to int) []Record {
	from = min(max(from, 0), len(m.records))
	to = min(max(to, from), len(m.records))
	return slices.Clone(m.records[from:to])
}

// Find returns the first record matching fn, or nil.
func (m *ModelList) Find(fn func(Record) bool) Record {
	if i := m.FindIndex(fn); i >= 0 {
		return m.records[i]
	}
	return nil
}

// FindIndex returns the position of the first record matching fn, or -1.
func (m *ModelList) FindIndex(fn func(Record) bool) int {
	return slices.IndexFunc(m.records, fn)
}

// Filter returns the records matching fn, in order.
func (m *ModelList) Filter(fn func(Record) bool) []Record {
	var out []Record
	for _, r := range m.records {
		if fn(r) {
			out = append(out, r)
		}
	}
	return out
}

// Sort orders the records with cmp, keeping equal records in place, and
// notifies observers with CollectionReset.
func (m *ModelList) Sort(cmp func(a, b Record) int) *ModelList {
	slices.SortStableFunc(m.records, cmp)
	for _, o := range m.observers {
		o.CollectionReset()
	}
	return m
}

// Clone returns a copy sharing the records but not the observers.
func (m *ModelList) Clone() *ModelList {
	c := &ModelList{
		records: slices.Clone(m.records),
		table:   make(map[any]Record, len(m.table)),
		logger:  m.logger,
	}
	for k, v := range m.table {
		c.table[k] = v
	}
	return c
}
