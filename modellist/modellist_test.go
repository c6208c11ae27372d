package modellist

import (
	"strings"
	"testing"

	. "github.com/fulldump/biff"
)

func models(ids ...any) []Record {
	out := make([]Record, 0, len(ids))
	for _, id := range ids {
		out = append(out, NewModel(map[string]any{"id": id}))
	}
	return out
}

type recordingObserver struct {
	added   [][]Record
	at      []int
	removed [][]Record
	resets  int
}

func (o *recordingObserver) ItemsAdded(records []Record, at int) {
	o.added = append(o.added, records)
	o.at = append(o.at, at)
}

func (o *recordingObserver) ItemsRemoved(records []Record) {
	o.removed = append(o.removed, records)
}

func (o *recordingObserver) CollectionReset() {
	o.resets++
}

func TestAdd(t *testing.T) {
	Alternative("empty list", func(a *A) {
		l := New()

		a.Alternative("nothing to add", func(a *A) {
			added := l.Add(0)
			a.AssertEqual(len(added), 0)
			a.AssertEqual(l.Len(), 0)
		})

		a.Alternative("nil records are skipped", func(a *A) {
			added := l.Add(0, nil, nil)
			a.AssertEqual(len(added), 0)
			a.AssertEqual(l.Len(), 0)
		})

		a.Alternative("index is clamped", func(a *A) {
			rs := models(1, 2)
			l.Add(99, rs...)
			a.AssertEqual(l.Records(), rs)

			more := models(3)
			l.Add(-5, more...)
			a.AssertEqual(l.At(0), more[0])
		})

		a.Alternative("duplicates are ignored", func(a *A) {
			rs := models(1)
			a.AssertEqual(len(l.Add(0, rs...)), 1)
			a.AssertEqual(len(l.Add(0, rs...)), 0)
			a.AssertEqual(len(l.Add(0, rs[0], rs[0])), 0)
			a.AssertEqual(l.Len(), 1)
		})
	})
}

func TestAddPreservesOrder(t *testing.T) {
	l := New()
	existing := models("a", "b", "c", "d")
	l.Add(0, existing...)

	added := models("x", "y", "z")
	result := l.Add(2, added...)

	AssertEqual(result, added)
	AssertEqual(l.Len(), 7)
	AssertEqual(l.Slice(2, 5), added)
	AssertEqual(l.Slice(0, 2), existing[:2])
	AssertEqual(l.Slice(5, 7), existing[2:])
}

func TestDuplicatePrimaryKey(t *testing.T) {
	l := New()
	rs := models(1, 1)

	added := l.Add(0, rs...)

	AssertEqual(len(added), 2)
	AssertEqual(l.Len(), 2)
	AssertEqual(l.Resolve(1), rs[0])
	AssertFalse(rs[0].Headless())
	AssertTrue(rs[1].Headless())
	AssertEqual(l.Resolve(rs[1].EUID()), rs[1])

	Alternative("removing the headless record keeps the key holder", func(a *A) {
		l.Remove(rs[1])
		a.AssertEqual(l.Resolve(1), rs[0])
		a.AssertTrue(l.Has(1))
	})
}

func TestHeadlessIsLogged(t *testing.T) {
	buf := &strings.Builder{}
	l := New(WithLogger(newTestLogger(buf)))
	l.Add(0, models("k", "k")...)
	AssertTrue(strings.Contains(buf.String(), "headless"))
}

func TestNumericKeysAreNormalized(t *testing.T) {
	l := New()
	rs := models(int32(7), 8.0)
	l.Add(0, rs...)

	AssertEqual(l.Resolve(7), rs[0])
	AssertEqual(l.Resolve(int64(7)), rs[0])
	AssertEqual(l.Resolve(7.0), rs[0])
	AssertEqual(l.Resolve(uint(8)), rs[1])
	AssertNil(l.Resolve("7"))
}

func TestEUIDDoesNotCollideWithKeys(t *testing.T) {
	l := New()
	first := NewModel(nil)
	l.Add(0, first)

	// A record whose primary key is the textual form of another EUID.
	second := NewModel(map[string]any{"id": string(first.EUID())})
	l.Add(0, second)

	AssertFalse(second.Headless())
	AssertEqual(l.Resolve(first.EUID()), Record(first))
	AssertEqual(l.Resolve(string(first.EUID())), Record(second))
}

func TestRemove(t *testing.T) {
	Alternative("populated list", func(a *A) {
		l := New()
		rs := models(1, 2, 3, 4)
		l.Add(0, rs...)

		a.Alternative("remove some", func(a *A) {
			removed := l.Remove(rs[3], rs[1])
			a.AssertEqual(removed, []Record{rs[3], rs[1]})
			a.AssertEqual(l.Records(), []Record{rs[0], rs[2]})
			a.AssertFalse(l.Has(2))
			a.AssertFalse(l.Has(rs[1].EUID()))
			a.AssertFalse(l.Has(rs[1]))
		})

		a.Alternative("remove the sequence itself", func(a *A) {
			removed := l.Remove(l.Records()...)
			a.AssertEqual(removed, rs)
			a.AssertEqual(l.Len(), 0)
			for _, r := range rs {
				a.AssertFalse(l.Has(r.EUID()))
			}
		})

		a.Alternative("remove a copy of the sequence", func(a *A) {
			removed := l.Remove(l.Slice(0, l.Len())...)
			a.AssertEqual(len(removed), 4)
			a.AssertEqual(l.Len(), 0)
		})

		a.Alternative("remove unknown record", func(a *A) {
			removed := l.Remove(models(99)...)
			a.AssertEqual(len(removed), 0)
			a.AssertEqual(l.Len(), 4)
		})

		a.Alternative("remove nothing", func(a *A) {
			a.AssertEqual(len(l.Remove()), 0)
			a.AssertEqual(len(l.Remove(nil)), 0)
		})
	})
}

func TestLookup(t *testing.T) {
	l := New()
	rs := models("a", nil, "c")
	l.Add(0, rs...)

	for _, r := range rs {
		AssertTrue(l.Has(r.EUID()))
		AssertEqual(l.Resolve(r.EUID()), r)
		AssertTrue(l.Has(r))
	}
	AssertFalse(l.Has(nil))
	AssertNil(l.Resolve(nil))
	AssertEqual(l.Resolve(rs[1]), rs[1])
	AssertFalse(l.Has("b"))
}

func TestObservers(t *testing.T) {
	o := &recordingObserver{}
	l := New(WithObserver(o))
	rs := models(1, 2, 3)

	l.Add(0, rs[:2]...)
	l.Add(1, rs[2])
	l.Add(0, rs[0])
	l.Remove(rs[1])
	l.Remove(models(9)...)
	l.Reset(rs...)

	AssertEqual(len(o.added), 2)
	AssertEqual(o.at, []int{0, 1})
	AssertEqual(o.removed, [][]Record{{rs[1]}})
	AssertEqual(o.resets, 1)
	AssertEqual(l.Records(), rs)

	l.Unobserve(o)
	l.Add(0, models(4)...)
	AssertEqual(len(o.added), 2)
}

func TestCollectionHelpers(t *testing.T) {
	l := New()
	rs := models(3, 1, 2)
	l.Add(0, rs...)

	key := func(r Record) int64 {
		k, _ := r.PrimaryKey()
		return int64(k.(int))
	}

	AssertEqual(l.Find(func(r Record) bool { return key(r) == 1 }), rs[1])
	AssertEqual(l.FindIndex(func(r Record) bool { return key(r) == 2 }), 2)
	AssertNil(l.Find(func(r Record) bool { return false }))
	AssertEqual(len(l.Filter(func(r Record) bool { return key(r) > 1 })), 2)

	c := l.Clone()
	l.Sort(func(a, b Record) int { return int(key(a) - key(b)) })
	AssertEqual(l.Records(), []Record{rs[1], rs[2], rs[0]})
	AssertEqual(c.Records(), rs)
	AssertEqual(c.Resolve(3), rs[0])
}

func TestPrimaryKeyField(t *testing.T) {
	Alternative("default field", func(a *A) {
		a.AssertEqual(NewModel(nil).PrimaryKeyField(), DefaultPrimaryKey)
	})

	Alternative("keyed by another attribute", func(a *A) {
		l := New()
		x := NewModelWithKey("code", map[string]any{"code": "x", "id": 1})
		y := NewModelWithKey("code", map[string]any{"code": "y", "id": 1})
		l.Add(0, x, y)

		a.AssertEqual(x.PrimaryKeyField(), "code")
		a.AssertFalse(x.Headless())
		a.AssertFalse(y.Headless())
		a.AssertEqual(l.Resolve("x"), Record(x))
		a.AssertEqual(l.Resolve("y"), Record(y))
		a.AssertFalse(l.Has(1))

		a.Alternative("same code is headless", func(a *A) {
			z := NewModelWithKey("code", map[string]any{"code": "x"})
			l.Add(0, z)
			a.AssertTrue(z.Headless())
			a.AssertEqual(l.Resolve("x"), Record(x))
		})
	})

	Alternative("empty field disables the key", func(a *A) {
		l := New()
		first := NewModelWithKey("", map[string]any{"id": 1})
		second := NewModelWithKey("", map[string]any{"id": 1})
		l.Add(0, first, second)

		a.AssertEqual(first.PrimaryKeyField(), "")
		a.AssertEqual(l.Len(), 2)
		a.AssertFalse(first.Headless())
		a.AssertFalse(second.Headless())
		a.AssertFalse(l.Has(1))
		a.AssertEqual(l.Resolve(first.EUID()), Record(first))
		a.AssertEqual(l.Resolve(second.EUID()), Record(second))
	})
}

func TestObserverFuncs(t *testing.T) {
	Alternative("only added", func(a *A) {
		var at []int
		l := New(WithObserver(ObserverFuncs{
			Added: func(records []Record, index int) { at = append(at, index) },
		}))
		rs := models(1, 2)
		l.Add(0, rs...)
		l.Remove(rs[0])
		l.Reset(rs...)
		l.Sort(func(a, b Record) int { return 0 })

		a.AssertEqual(at, []int{0})
		a.AssertEqual(l.Len(), 2)
	})

	Alternative("every callback", func(a *A) {
		var added, removed, resets int
		l := New(WithObserver(ObserverFuncs{
			Added:   func(records []Record, index int) { added += len(records) },
			Removed: func(records []Record) { removed += len(records) },
			Reset:   func() { resets++ },
		}))
		rs := models(1, 2, 3)
		l.Add(0, rs...)
		l.Remove(rs[1], rs[2])
		l.Reset(rs...)

		a.AssertEqual(added, 3)
		a.AssertEqual(removed, 2)
		a.AssertEqual(resets, 1)
	})
}

// taggedRecord is a Record whose dynamic type cannot be compared.
type taggedRecord struct {
	*Model
	tags []string
}

func TestUncomparableValues(t *testing.T) {
	Alternative("slice primary key", func(a *A) {
		buf := &strings.Builder{}
		l := New(WithLogger(newTestLogger(buf)))
		r := NewModel(map[string]any{"id": []int{1}})

		a.AssertEqual(l.Add(0, r), []Record{r})
		a.AssertFalse(r.Headless())
		a.AssertTrue(l.Has(r))
		a.AssertFalse(l.Has([]int{1}))
		a.AssertNil(l.Resolve([]int{1}))
		a.AssertFalse(l.Has(map[string]int{}))
		a.AssertTrue(strings.Contains(buf.String(), "not comparable"))

		a.Alternative("remove", func(a *A) {
			a.AssertEqual(l.Remove(r), []Record{r})
			a.AssertEqual(l.Len(), 0)
		})
	})

	Alternative("record of an uncomparable type", func(a *A) {
		l := New()
		r := taggedRecord{Model: NewModel(map[string]any{"id": 1}), tags: []string{"a"}}

		a.AssertEqual(len(l.Add(0, r)), 0)
		a.AssertEqual(l.Len(), 0)
		a.AssertFalse(l.Has(r))
		a.AssertEqual(l.IndexOf(r), -1)
		a.AssertEqual(len(l.Remove(r)), 0)
	})
}
