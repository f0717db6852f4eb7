// Package api defines the request and response messages of the Split Karo
// RPC services and the JSON codec they travel with.
//
// Field names are snake_case on the wire. Money is a decimal string
// ("33.34") so clients never round-trip amounts through floats.
package api

import (
	"encoding/json"
	"fmt"
)

// CodecName is the Connect codec name; requests use Content-Type application/json.
const CodecName = "json"

// Codec marshals plain Go structs as JSON for Connect handlers and clients.
type Codec struct{}

func (Codec) Name() string { return CodecName }

func (Codec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

// Unmarshal treats an empty body as an empty message.
func (Codec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("invalid JSON message: %w", err)
	}
	return nil
}
