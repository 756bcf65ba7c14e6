// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package manager implements the client-side mirror engine: it keeps an
// in-memory copy of one server-owned collection up to date using the
// region's batched list protocol for initial load and reload, and its
// notify channel for live incremental updates.
//
// One [Manager] is created per entity kind (machines, devices, ...); the
// entity kind is pure configuration — the RPC handler name, the primary-key
// field, and the set of attributes aggregated into frequency tables.
//
// The engine maintains three views that callers may hold references to for
// the lifetime of the manager: the item list, the selection list, and the
// per-attribute metadata tables. All three are mutated in place; an item
// object is never replaced while its primary key stays in the collection,
// so captured *models.Item pointers remain valid across reloads.
//
// Bulk loads and incremental notifications are serialized through a single
// loading gate: notifications arriving while a load or reload is fetching
// pages are buffered and applied, in arrival order, once the bulk operation
// has finished. This prevents a stale page fetched concurrently from
// clobbering a fresher incremental update.
package manager
