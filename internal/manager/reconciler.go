// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package manager

import "github.com/MKhiriev/region-mirror/models"

// mergeItemLocked inserts attrs as a new unselected item, or copies them
// onto the existing item with the same primary key in place. The returned
// pointer is the tracked object either way. Metadata registration happens in
// the same step, so data and metadata can never drift apart.
func (m *entityManager) mergeItemLocked(attrs map[string]any) *models.Item {
	pk := attrs[m.cfg.PKField]

	if idx := m.items.indexOf(m.cfg.PKField, pk); idx >= 0 {
		existing := m.items.at(idx)
		m.applyAttrsLocked(existing, attrs)
		return existing
	}

	it := &models.Item{Attrs: attrs, Selected: false}
	m.items.append(it)
	for _, attr := range m.cfg.TrackedAttrs {
		m.metadata[attr].recordCreate(attrs[attr])
	}
	return it
}

// updateItemLocked copies attrs onto the item with the matching primary key.
// Unknown keys are a no-op: an update for an item the mirror does not know
// about is treated as already converged, and contributes no metadata change.
func (m *entityManager) updateItemLocked(attrs map[string]any) *models.Item {
	idx := m.items.indexOf(m.cfg.PKField, attrs[m.cfg.PKField])
	if idx < 0 {
		return nil
	}

	existing := m.items.at(idx)
	m.applyAttrsLocked(existing, attrs)
	return existing
}

// applyAttrsLocked mutates the existing item object: the snapshot's
// attributes are copied over key by key, never by replacing the object or
// its map, so references held by the selection list and by callers stay
// valid. The "old" metadata values are resolved from the tracked item
// before the copy.
func (m *entityManager) applyAttrsLocked(existing *models.Item, attrs map[string]any) {
	old := make(map[string]any, len(m.cfg.TrackedAttrs))
	for _, attr := range m.cfg.TrackedAttrs {
		old[attr] = existing.Attrs[attr]
	}

	for k, v := range attrs {
		existing.Attrs[k] = v
	}

	for _, attr := range m.cfg.TrackedAttrs {
		m.metadata[attr].recordUpdate(old[attr], existing.Attrs[attr])
	}
}

// removeItemLocked removes the item with the given primary key from the
// collection, the selection, and the metadata tables. Reports whether an
// item was removed.
func (m *entityManager) removeItemLocked(pk any) bool {
	idx := m.items.indexOf(m.cfg.PKField, pk)
	if idx < 0 {
		return false
	}

	it := m.items.at(idx)
	for _, attr := range m.cfg.TrackedAttrs {
		m.metadata[attr].recordDelete(it.Attrs[attr])
	}
	m.items.removeAt(idx)

	if it.Selected {
		it.Selected = false
		if selIdx := m.selected.indexOfItem(it); selIdx >= 0 {
			m.selected.removeAt(selIdx)
		}
	}
	return true
}

// reconcileSnapshotLocked makes the collection reflect a complete server
// snapshot: items missing from the snapshot are removed, the rest is merged
// item by item (inserting or updating in place).
func (m *entityManager) reconcileSnapshotLocked(snapshot []map[string]any) {
	want := make(map[any]struct{}, len(snapshot))
	for _, attrs := range snapshot {
		want[attrs[m.cfg.PKField]] = struct{}{}
	}

	for i := m.items.size() - 1; i >= 0; i-- {
		pk := m.items.at(i).PK(m.cfg.PKField)
		if _, ok := want[pk]; !ok {
			m.removeItemLocked(pk)
		}
	}

	for _, attrs := range snapshot {
		m.mergeItemLocked(attrs)
	}
}
