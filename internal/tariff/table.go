// Package tariff holds the in-memory, read-only tariff table.
package tariff

import (
	"strings"
	"sync/atomic"

	"logistics/internal/domain"
)

// Table is a case-insensitive lookup over an ordered set of tariff records.
// A loaded snapshot is never mutated; Load swaps in a new one.
type Table struct {
	snap atomic.Pointer[snapshot]
}

type snapshot struct {
	records []domain.TariffRecord
	// index maps a lower-cased destination to its first position in records.
	index map[string]int
}

// NewTable returns an empty table. Every lookup misses until Load is called.
func NewTable() *Table {
	t := &Table{}
	t.snap.Store(&snapshot{index: map[string]int{}})
	return t
}

// Load replaces the table contents with records, preserving their order.
// It returns the destinations that repeat an earlier one case-insensitively;
// those records stay in the dump but lookups resolve to the first occurrence.
func (t *Table) Load(records []domain.TariffRecord) []string {
	s := &snapshot{
		records: make([]domain.TariffRecord, len(records)),
		index:   make(map[string]int, len(records)),
	}
	copy(s.records, records)

	var duplicates []string
	for i, r := range s.records {
		key := normalize(r.Destination)
		if _, exists := s.index[key]; exists {
			duplicates = append(duplicates, r.Destination)
			continue
		}
		s.index[key] = i
	}

	t.snap.Store(s)
	return duplicates
}

// FindByDestination returns the first record whose destination equals name, ignoring case.
func (t *Table) FindByDestination(name string) (domain.TariffRecord, bool) {
	s := t.snap.Load()
	i, ok := s.index[normalize(name)]
	if !ok {
		return domain.TariffRecord{}, false
	}
	return s.records[i], true
}

// Size returns the number of loaded records, duplicates included.
func (t *Table) Size() int {
	return len(t.snap.Load().records)
}

// Records returns a copy of all records in table order.
func (t *Table) Records() []domain.TariffRecord {
	s := t.snap.Load()
	out := make([]domain.TariffRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Destinations returns every destination name in table order.
func (t *Table) Destinations() []string {
	s := t.snap.Load()
	out := make([]string, len(s.records))
	for i, r := range s.records {
		out[i] = r.Destination
	}
	return out
}

func normalize(name string) string {
	return strings.ToLower(name)
}
