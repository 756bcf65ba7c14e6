// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package manager

import (
	"context"
	"time"

	"github.com/MKhiriev/region-mirror/models"
)

// Manager defines the contract of one mirrored collection.
type Manager interface {
	// Load performs the initial batched load of the collection. If an
	// initial load has already completed, it defers to Reload instead.
	// Notifications arriving during the load are buffered and applied
	// once it finishes. Returns the live item list on success. On failure
	// the error of the failing page request is returned, already merged
	// pages are kept, and a later Load will fetch from scratch again.
	Load(ctx context.Context) (*List, error)

	// Reload fetches a complete fresh snapshot of the collection and
	// reconciles the local mirror against it: absent items are inserted,
	// vanished items are removed (dropping them from the selection), and
	// matching items have their attributes copied onto the existing
	// objects in place, preserving identity and selection.
	Reload(ctx context.Context) (*List, error)

	// GetItem fetches a single item from the region and merges the result
	// into the mirror. Returns the tracked item object.
	GetItem(ctx context.Context, pk any) (*models.Item, error)

	// UpdateItem sends the item's attributes to the region and merges the
	// region's response back into the mirror. The selection marker is
	// client-owned and is never part of the request. Returns the tracked
	// item object.
	UpdateItem(ctx context.Context, item *models.Item) (*models.Item, error)

	// DeleteItem deletes the item on the region and removes it from the
	// mirror.
	DeleteItem(ctx context.Context, item *models.Item) error

	// Items returns the live item list. The returned handle is stable for
	// the lifetime of the manager and observes all future mutations; its
	// read methods are synchronized with engine mutations, and Snapshot
	// additionally copies attribute maps for lock-free rendering.
	Items() *List

	// SelectedItems returns the live list of selected items. Entries are
	// the same objects as in Items, never copies.
	SelectedItems() *List

	// Metadata returns the live frequency table for a tracked attribute,
	// or nil if the attribute is not tracked.
	Metadata(attr string) *MetadataTable

	// Select marks the item with the given primary key as selected.
	// Idempotent; unknown keys are ignored.
	Select(pk any)

	// Unselect clears the selection marker of the item with the given
	// primary key. Idempotent; unknown keys are ignored.
	Unselect(pk any)

	// IsSelected reports whether the item with the given primary key is
	// currently selected.
	IsSelected(pk any) bool

	// Loaded reports whether an initial load has ever completed.
	Loaded() bool

	// EnableAutoReload subscribes the manager to the transport's
	// connection-open event so the mirror is reloaded after every
	// reconnect. Idempotent.
	EnableAutoReload()

	// DisableAutoReload removes the connection-open subscription.
	// Idempotent.
	DisableAutoReload()
}

// ReloadJob defines the contract for a background worker that periodically
// reloads a mirrored collection, for regions whose notify channel is not
// authoritative.
type ReloadJob interface {
	// Start launches the background reload goroutine. It reloads every
	// interval, defaulting to 5 minutes if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}
