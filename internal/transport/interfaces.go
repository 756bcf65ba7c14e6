// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package transport provides the duplex connection to the region controller.
//
// The primary abstraction is [Transport], which decouples the mirror engine
// from the underlying protocol. The package ships a websocket implementation
// ([Dial]) speaking the region's JSON envelope protocol, plus the HTTP
// session login ([Login]) that produces the cookie required by the dial.
//
// Error values defined in errors.go let callers use [errors.Is] for
// transport-agnostic error handling; errors reported by the region itself are
// surfaced as [*ServerError] with the server's message verbatim.
package transport

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/region-mirror/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// NotifyFunc receives one push notification for a collection channel.
type NotifyFunc func(n models.Notification)

// EventFunc receives one connection lifecycle event.
type EventFunc func()

// Connection lifecycle events observable via [Transport.RegisterHandler].
const (
	// EventOpen fires after every successful dial, including redials.
	EventOpen = "open"
	// EventClose fires when the connection is lost.
	EventClose = "close"
)

// Transport defines protocol-agnostic communication with the region
// controller. Implementations are responsible for serialisation, request
// correlation, and delivery of push notifications in arrival order.
type Transport interface {
	// Call performs one RPC round-trip. method is "<handler>.<verb>" with
	// verb in {list, get, update, delete}; params is serialized as the
	// request parameters. Returns the raw result payload, a [*ServerError]
	// if the region reported an error, or a transport error if the
	// connection failed or ctx expired.
	Call(ctx context.Context, method string, params any) (json.RawMessage, error)

	// RegisterNotifier subscribes fn to push notifications for the named
	// collection channel. Notifications are delivered in arrival order.
	// Registration is permanent for the lifetime of the transport.
	RegisterNotifier(name string, fn NotifyFunc)

	// RegisterHandler subscribes fn to a connection lifecycle event
	// ([EventOpen] or [EventClose]) and returns a subscription id for
	// UnregisterHandler. Handlers run on their own goroutine so they may
	// call back into the transport.
	RegisterHandler(event string, fn EventFunc) int64

	// UnregisterHandler removes a subscription previously created by
	// RegisterHandler. Unknown ids are ignored.
	UnregisterHandler(event string, id int64)

	// Close tears down the connection and fails all in-flight calls with
	// [ErrClosed]. The transport cannot be reused afterwards.
	Close() error
}
