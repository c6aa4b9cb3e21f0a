package server

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/brightfix/handyline/completion"
	"github.com/brightfix/handyline/config"
	"github.com/brightfix/handyline/knowledge"
	"github.com/brightfix/handyline/stats"
)

const serviceName = "handyman-ai-phone-assistant"

// Server hosts the chat channel, the Twilio voice webhook, and the health
// endpoint on a single port.
type Server struct {
	httpServer  *http.Server
	upgrader    websocket.Upgrader
	config      *config.Config
	kb          *knowledge.Record
	completions *completion.Client // nil when no API key is configured
	stats       *stats.Recorder
	activeConns int64
}

// New builds the server. completions may be nil; every handler then answers
// with its canned fallback.
func New(cfg *config.Config, kb *knowledge.Record, completions *completion.Client, recorder *stats.Recorder) *Server {
	s := &Server{
		config:      cfg,
		kb:          kb,
		completions: completions,
		stats:       recorder,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 4 * 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				for _, allowed := range cfg.AllowedOrigins {
					if allowed == "*" || allowed == origin {
						return true
					}
				}
				return false
			},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/twilio-voice", s.handleTwilioVoice)
	mux.HandleFunc("/health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: mux,
		// No ReadTimeout/WriteTimeout — they interfere with long-lived
		// WebSocket connections on /ws.
	}

	return s
}

// Start begins listening for connections
func (s *Server) Start() error {
	log.Info().Int("port", s.config.Port).Msg("server starting")
	log.Info().Msgf("chat endpoint: ws://localhost:%d/ws", s.config.Port)
	log.Info().Msgf("voice webhook: http://localhost:%d/twilio-voice", s.config.Port)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("shutting down server")
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the route table, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	conns := atomic.LoadInt64(&s.activeConns)
	if s.stats.Enabled() {
		chat, voice := s.stats.Totals(r.Context())
		fmt.Fprintf(w, `{"status":"ok","service":%q,"connections":%d,"chat_requests":%d,"voice_requests":%d}`,
			serviceName, conns, chat, voice)
		return
	}
	fmt.Fprintf(w, `{"status":"ok","service":%q,"connections":%d}`, serviceName, conns)
}
