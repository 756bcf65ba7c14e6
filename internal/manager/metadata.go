package manager

import "sync"

// MetadataEntry is one (value, count) pair of a tracked attribute's
// frequency table. Count is always positive while the entry is present.
type MetadataEntry struct {
	Value any
	Count int
}

// MetadataTable is the live frequency table of one tracked attribute:
// one entry per distinct non-empty value currently present across the
// collection, ordered by first occurrence. Exported read methods take the
// manager's mutex and hand out value copies, so they are safe to call while
// the engine mutates the table from other goroutines.
type MetadataTable struct {
	mu      *sync.Mutex
	entries []*MetadataEntry
}

func newMetadataTable(mu *sync.Mutex) *MetadataTable {
	return &MetadataTable{mu: mu}
}

// All returns a snapshot of the current entries in insertion order.
func (t *MetadataTable) All() []MetadataEntry {
	t.lock()
	defer t.unlock()

	out := make([]MetadataEntry, len(t.entries))
	for i, e := range t.entries {
		out[i] = *e
	}
	return out
}

// Count returns the count recorded for value, or 0 if the value is not
// present.
func (t *MetadataTable) Count(value any) int {
	t.lock()
	defer t.unlock()

	if e := t.find(value); e != nil {
		return e.Count
	}
	return 0
}

func (t *MetadataTable) lock() {
	if t.mu != nil {
		t.mu.Lock()
	}
}

func (t *MetadataTable) unlock() {
	if t.mu != nil {
		t.mu.Unlock()
	}
}

// The mutators below assume the caller already holds the manager's mutex.

func (t *MetadataTable) find(value any) *MetadataEntry {
	for _, e := range t.entries {
		if e.Value == value {
			return e
		}
	}
	return nil
}

// recordCreate counts one occurrence of value. Empty values are never
// tracked.
func (t *MetadataTable) recordCreate(value any) {
	if isEmptyValue(value) {
		return
	}

	if e := t.find(value); e != nil {
		e.Count++
		return
	}
	t.entries = append(t.entries, &MetadataEntry{Value: value, Count: 1})
}

// recordDelete uncounts one occurrence of value, removing the entry when
// its count reaches zero.
func (t *MetadataTable) recordDelete(value any) {
	if isEmptyValue(value) {
		return
	}

	for i, e := range t.entries {
		if e.Value != value {
			continue
		}
		e.Count--
		if e.Count <= 0 {
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
		}
		return
	}
}

// recordUpdate moves one occurrence from old to new. Equal values net to
// no change. The caller is responsible for resolving old from the tracked
// item before mutating it; updates for untracked items must not reach the
// table at all.
func (t *MetadataTable) recordUpdate(old, new any) {
	if old == new {
		return
	}
	t.recordDelete(old)
	t.recordCreate(new)
}

// isEmptyValue reports whether v is one of the "empty" values that are
// never tracked in metadata: nil, empty string, false, or numeric zero.
// Tracked attributes are expected to hold scalars.
func isEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case float64:
		return val == 0
	case float32:
		return val == 0
	case int:
		return val == 0
	case int64:
		return val == 0
	default:
		return false
	}
}
