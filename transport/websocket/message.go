package websocket

import "encoding/json"

const (
	actionMove  = "game:move"
	actionState = "game:state"
	actionError = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func newMessage(action string, payload any) Message {
	data, err := json.Marshal(payload)
	if err != nil {
		// payloads are plain dto structs
		panic(err)
	}

	return Message{Action: action, Payload: data}
}
