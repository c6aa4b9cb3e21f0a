package completion

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func fakeAPI(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewClientWithBaseURL("test-key", "gpt-4o-mini", ts.URL+"/v1")
}

func TestCompleteReturnsFirstChoice(t *testing.T) {
	client := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "cmpl-1",
			"object": "chat.completion",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "We serve Springfield."}}]
		}`))
	})

	answer, err := client.Complete(context.Background(), "system", "user", 0.3)
	if err != nil {
		t.Fatalf("Complete() error: %v", err)
	}
	if answer != "We serve Springfield." {
		t.Errorf("Unexpected answer: %q", answer)
	}
}

func TestCompleteFallsBackOnEmptyChoices(t *testing.T) {
	client := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "cmpl-2", "object": "chat.completion", "choices": []}`))
	})

	answer, err := client.Complete(context.Background(), "system", "user", 0.3)
	if err != nil {
		t.Fatalf("Complete() error: %v", err)
	}
	if answer != fallbackAnswer {
		t.Errorf("Expected fallback sentence, got %q", answer)
	}
}

func TestCompleteReturnsUpstreamError(t *testing.T) {
	client := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": {"message": "backend exploded", "type": "server_error"}}`))
	})

	_, err := client.Complete(context.Background(), "system", "user", 0.4)
	if err == nil {
		t.Fatal("Expected error for 500 response, got nil")
	}

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("Expected UpstreamError, got %T: %v", err, err)
	}
	if upstream.Status != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", upstream.Status)
	}
	if !strings.Contains(upstream.Body, "backend exploded") {
		t.Errorf("Expected raw body detail, got %q", upstream.Body)
	}
}
