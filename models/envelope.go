package models

import "encoding/json"

// MessageType discriminates websocket envelopes exchanged with the region.
type MessageType int

const (
	// MessageRequest is a client-to-region RPC request.
	MessageRequest MessageType = iota
	// MessageResponse is a region-to-client RPC response.
	MessageResponse
	// MessageNotify is a region-to-client push notification.
	MessageNotify
)

// Envelope is the wire frame for the region websocket protocol. A request
// carries Method/Params and a RequestID the response echoes back; a notify
// carries the channel Name, the Action, and the payload Data.
type Envelope struct {
	Type      MessageType `json:"type"`
	RequestID string      `json:"request_id,omitempty"`

	// Request fields.
	Method string `json:"method,omitempty"`
	Params any    `json:"params,omitempty"`

	// Response fields.
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`

	// Notify fields.
	Name   string          `json:"name,omitempty"`
	Action string          `json:"action,omitempty"`
	Data   json.RawMessage `json:"data,omitempty"`
}
