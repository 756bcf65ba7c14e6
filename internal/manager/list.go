package manager

import (
	"sync"

	"github.com/MKhiriev/region-mirror/models"
)

// List is an ordered, identity-stable view of items. A *List handle stays
// valid for the lifetime of its manager; the engine mutates its contents in
// place and never replaces the handle. Exported read methods take the
// manager's mutex so they are safe to call while the engine mutates the list
// from other goroutines; use Snapshot to also read item attributes safely.
type List struct {
	mu    *sync.Mutex
	items []*models.Item
}

func newList(mu *sync.Mutex) *List {
	return &List{mu: mu}
}

// Len returns the number of items currently in the list.
func (l *List) Len() int {
	l.lock()
	defer l.unlock()
	return len(l.items)
}

// At returns the item at index i.
func (l *List) At(i int) *models.Item {
	l.lock()
	defer l.unlock()
	return l.items[i]
}

// All returns a copy of the current backing slice. The entries are the
// tracked item objects themselves; their attributes may still be mutated by
// the engine, so renderers reading attributes should prefer Snapshot.
func (l *List) All() []*models.Item {
	l.lock()
	defer l.unlock()
	return append([]*models.Item(nil), l.items...)
}

// Snapshot returns value copies of the current items with copied attribute
// maps, safe to read without further synchronization.
func (l *List) Snapshot() []models.Item {
	l.lock()
	defer l.unlock()

	out := make([]models.Item, len(l.items))
	for i, it := range l.items {
		attrs := make(map[string]any, len(it.Attrs))
		for k, v := range it.Attrs {
			attrs[k] = v
		}
		out[i] = models.Item{Attrs: attrs, Selected: it.Selected}
	}
	return out
}

func (l *List) lock() {
	if l.mu != nil {
		l.mu.Lock()
	}
}

func (l *List) unlock() {
	if l.mu != nil {
		l.mu.Unlock()
	}
}

// The unexported accessors below assume the caller already holds the
// manager's mutex.

func (l *List) size() int {
	return len(l.items)
}

func (l *List) at(i int) *models.Item {
	return l.items[i]
}

func (l *List) append(it *models.Item) {
	l.items = append(l.items, it)
}

func (l *List) removeAt(i int) {
	l.items = append(l.items[:i], l.items[i+1:]...)
}

// indexOf returns the index of the item whose pkField value equals pk,
// or -1 if absent.
func (l *List) indexOf(pkField string, pk any) int {
	for i, it := range l.items {
		if it.PK(pkField) == pk {
			return i
		}
	}
	return -1
}

// indexOfItem returns the index of the exact item object, or -1.
func (l *List) indexOfItem(item *models.Item) int {
	for i, it := range l.items {
		if it == item {
			return i
		}
	}
	return -1
}
