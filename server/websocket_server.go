package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/brightfix/handyline/messages"
	"github.com/brightfix/handyline/prompt"
)

const chatTemperature = 0.3

const (
	welcomeText      = `Connected to the handyman assistant. Send {"question": "..."} to ask about services, pricing, or scheduling.`
	invalidJSONText  = `Invalid JSON. Send {"question": "..."}.`
	missingFieldText = "Missing 'question' field. Send a non-empty question."
	chatRetryText    = "Sorry, something went wrong answering that. Please try again in a moment, or call us directly."
)

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	connID := uuid.New().String()
	atomic.AddInt64(&s.activeConns, 1)
	defer atomic.AddInt64(&s.activeConns, -1)
	log.Info().Str("conn", connID).Msg("chat connection opened")

	// gorilla/websocket allows only one concurrent writer per connection.
	var writeMu sync.Mutex
	send := func(msg *messages.ServerMessage) {
		data, err := msg.Encode()
		if err != nil {
			log.Error().Err(err).Str("conn", connID).Msg("failed to encode message")
			return
		}
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Debug().Err(err).Str("conn", connID).Msg("failed to write message")
		}
	}

	send(messages.NewInfoMessage(welcomeText))

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			log.Info().Str("conn", connID).Msg("chat connection closed")
			return
		}

		// Each question gets its own completion call. No ordering is imposed
		// across pipelined questions on one connection; the channel is
		// low-volume and replies carry full context.
		go func(payload []byte) {
			send(s.answerChat(r.Context(), connID, payload))
		}(payload)
	}
}

// answerChat handles one inbound chat frame and always produces a response
// message: parse errors and upstream failures come back as typed errors, and
// an unconfigured completion client yields a canned answer with the business
// phone number.
func (s *Server) answerChat(ctx context.Context, connID string, payload []byte) *messages.ServerMessage {
	req, err := messages.DecodeChatRequest(payload)
	if err != nil {
		return messages.NewErrorMessage(invalidJSONText)
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		return messages.NewErrorMessage(missingFieldText)
	}

	s.stats.RecordChat(ctx, question)

	if s.completions == nil {
		return messages.NewAnswerMessage(fmt.Sprintf(
			"Thanks for reaching out! A member of our team will follow up shortly. For anything urgent, call us at %s.",
			s.kb.ContactPhone))
	}

	systemPrompt := prompt.BuildSystemPrompt(s.kb, prompt.ChannelChat)
	answer, err := s.completions.Complete(ctx, systemPrompt, question, chatTemperature)
	if err != nil {
		log.Error().Err(err).Str("conn", connID).Msg("completion call failed")
		return messages.NewErrorMessage(chatRetryText)
	}

	return messages.NewAnswerMessage(answer)
}
