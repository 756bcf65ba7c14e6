package models

// Credentials are the username/password pair used for the HTTP session login
// that precedes the websocket dial.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Session is the authenticated HTTP session handed to the websocket dialer.
type Session struct {
	// Cookie is the raw Cookie header value carrying the session id.
	Cookie string
}
