// Package payload is the JSON boundary codec for screen payloads. The
// navigation layer itself only deals in structured values; serialization
// happens exactly once, at the host channel boundary.
package payload

import "encoding/json"

// Payload is the structured value handed between screens and the host.
type Payload map[string]any

// Marshal serializes a payload for transport. A nil payload serializes as
// the empty object, never as JSON null: the host contract always receives
// an object.
func Marshal(p Payload) (string, error) {
	if p == nil {
		p = Payload{}
	}
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Unmarshal parses a transported payload. The empty string is treated as
// the empty object.
func Unmarshal(s string) (Payload, error) {
	if s == "" {
		return Payload{}, nil
	}
	var p Payload
	if err := json.Unmarshal([]byte(s), &p); err != nil {
		return nil, err
	}
	if p == nil {
		p = Payload{}
	}
	return p, nil
}
