package messages

import (
	"strings"
	"testing"
)

func TestDecodeChatRequest(t *testing.T) {
	req, err := DecodeChatRequest([]byte(`{"question": "Do you fix fences?"}`))
	if err != nil {
		t.Fatalf("DecodeChatRequest error: %v", err)
	}
	if req.Question != "Do you fix fences?" {
		t.Errorf("Unexpected question: %q", req.Question)
	}
}

func TestDecodeChatRequestInvalid(t *testing.T) {
	if _, err := DecodeChatRequest([]byte(`{"question": `)); err == nil {
		t.Fatal("Expected error for truncated JSON, got nil")
	}
}

func TestEncodeOmitsEmptyFields(t *testing.T) {
	data, err := NewAnswerMessage("Yes we do.").Encode()
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, `"type":"answer"`) || !strings.Contains(s, `"answer":"Yes we do."`) {
		t.Errorf("Unexpected encoding: %s", s)
	}
	if strings.Contains(s, `"message"`) {
		t.Errorf("Answer message should omit the message field: %s", s)
	}
}
