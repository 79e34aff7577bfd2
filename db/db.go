package db

import (
	"fmt"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/model"
)

// Database is the insertion-ordered chord table built by one conversion
// run. Keys are unique.
type Database struct {
	keys    []string
	entries map[string]model.ChordEntry
}

func New() *Database {
	return &Database{entries: make(map[string]model.ChordEntry)}
}

func FromEntries(entries []model.ChordEntry) *Database {
	d := New()
	for _, e := range entries {
		d.insert(e)
	}
	return d
}

func (d *Database) Has(key string) bool {
	_, ok := d.entries[key]
	return ok
}

func (d *Database) Get(key string) (model.ChordEntry, bool) {
	e, ok := d.entries[key]
	return e, ok
}

func (d *Database) Len() int {
	return len(d.keys)
}

// Keys returns the keys in insertion order.
func (d *Database) Keys() []string {
	res := make([]string, len(d.keys))
	copy(res, d.keys)
	return res
}

func (d *Database) Entries() []model.ChordEntry {
	res := make([]model.ChordEntry, 0, len(d.keys))
	for _, k := range d.keys {
		res = append(res, d.entries[k])
	}
	return res
}

// UniqueKey picks the key a shape with the given base name and lowest fret
// is stored under: base, then base[minFret], then base[minFret-1],
// base[minFret-2], ...
func (d *Database) UniqueKey(base string, minFret int) string {
	if !d.Has(base) {
		return base
	}
	key := fmt.Sprintf("%s[%d]", base, minFret)
	if !d.Has(key) {
		return key
	}
	counter := 1
	for d.Has(fmt.Sprintf("%s[%d-%d]", base, minFret, counter)) {
		counter += 1
	}
	return fmt.Sprintf("%s[%d-%d]", base, minFret, counter)
}

// Assign stores a shape under a fresh unique key and returns the entry.
func (d *Database) Assign(base string, shape model.ChordShape) model.ChordEntry {
	e := model.ChordEntry{
		Key:        d.UniqueKey(base, shape.MinFret),
		Base:       base,
		Value:      shape.Format(),
		MinFret:    shape.MinFret,
		MaxFret:    shape.MaxFret,
		Normalized: chord.Normalized(shape),
	}
	d.insert(e)
	return e
}

func (d *Database) insert(e model.ChordEntry) {
	if d.Has(e.Key) {
		panic("duplicate chord key: " + e.Key)
	}
	d.keys = append(d.keys, e.Key)
	d.entries[e.Key] = e
}
