// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires session login, the websocket transport, the machine mirror, the
// periodic reload job, and the terminal UI into a single process lifecycle.
package client
