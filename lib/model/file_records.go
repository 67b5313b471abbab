package model

import (
	"sort"
)

// FileRecords is an append-only list of per-path records plus a pathname
// registry mapping each name to its slot. The registry holds slot indexes,
// not records, so the list stays the single owner of the data.
type FileRecords struct {
	records []*FileRecord
	slots   map[string]int
}

func NewFileRecords() *FileRecords {
	return &FileRecords{
		slots: map[string]int{},
	}
}

func (l *FileRecords) GetOrCreate(name string) *FileRecord {
	if len(name) == 0 {
		panic("empty path not supported")
	}

	slot, ok := l.slots[name]

	if !ok {
		slot = len(l.records)
		l.records = append(l.records, NewFileRecord(name))
		l.slots[name] = slot
	}

	return l.records[slot]
}

func (l *FileRecords) Get(name string) *FileRecord {
	slot, ok := l.slots[name]
	if !ok {
		return nil
	}

	return l.records[slot]
}

func (l *FileRecords) List() []*FileRecord {
	return l.records
}

func (l *FileRecords) Len() int {
	return len(l.records)
}

// SortByName orders the records byte-wise ascending. The two diff passes each
// emit in their own order, so the merged list must be re-sorted once at the
// end. Slots are invalid afterwards, so the registry is dropped here.
func (l *FileRecords) SortByName() {
	for name := range l.slots {
		delete(l.slots, name)
	}

	sort.Slice(l.records, func(i, j int) bool {
		return l.records[i].Name < l.records[j].Name
	})
}

// Reset empties the list and the registry, keeping allocated capacity for the
// next run.
func (l *FileRecords) Reset() {
	for name := range l.slots {
		delete(l.slots, name)
	}

	for i := range l.records {
		l.records[i] = nil
	}
	l.records = l.records[:0]
}
