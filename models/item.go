// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Item is one mirrored record of a server-owned collection.
//
// Attrs holds the server-reported attributes keyed by field name, exactly as
// decoded from the wire. Selected is owned by the client for UI bookkeeping
// and is never serialized back to the server.
type Item struct {
	// Attrs maps attribute names to their server-reported values.
	Attrs map[string]any

	// Selected marks the item as part of the current UI selection.
	Selected bool
}

// PK returns the value of the given primary-key field, or nil if the item
// does not carry it. The field is expected to hold a scalar (string or JSON
// number) so that values are comparable.
func (it *Item) PK(field string) any {
	if it == nil || it.Attrs == nil {
		return nil
	}
	return it.Attrs[field]
}
