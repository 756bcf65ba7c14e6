// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Notify actions pushed by the region over a collection's notify channel.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Notification is one push event for a collection.
// For ActionCreate and ActionUpdate, Data is the full dehydrated item; for
// ActionDelete it is the bare primary-key value.
type Notification struct {
	Action string
	Data   json.RawMessage
}
