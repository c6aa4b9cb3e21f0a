package messages

import "github.com/bytedance/sonic"

// Message types
const (
	TypeInfo   = "info"
	TypeAnswer = "answer"
	TypeError  = "error"
)

// ChatRequest is the only inbound frame shape on the chat channel.
type ChatRequest struct {
	Question string `json:"question"`
}

// ServerMessage is the outbound frame shape on the chat channel. Exactly one
// of Message or Answer is set, depending on Type.
type ServerMessage struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
	Answer  string `json:"answer,omitempty"`
}

// NewInfoMessage creates an informational message
func NewInfoMessage(message string) *ServerMessage {
	return &ServerMessage{Type: TypeInfo, Message: message}
}

// NewAnswerMessage creates an answer message
func NewAnswerMessage(answer string) *ServerMessage {
	return &ServerMessage{Type: TypeAnswer, Answer: answer}
}

// NewErrorMessage creates an error message
func NewErrorMessage(message string) *ServerMessage {
	return &ServerMessage{Type: TypeError, Message: message}
}

// DecodeChatRequest parses an inbound text frame.
func DecodeChatRequest(data []byte) (*ChatRequest, error) {
	var req ChatRequest
	if err := sonic.Unmarshal(data, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// Encode serializes the message for the wire.
func (m *ServerMessage) Encode() ([]byte, error) {
	return sonic.Marshal(m)
}
