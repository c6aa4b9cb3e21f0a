package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/brightfix/handyline/completion"
	"github.com/brightfix/handyline/config"
	"github.com/brightfix/handyline/knowledge"
	"github.com/brightfix/handyline/server"
	"github.com/brightfix/handyline/stats"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Loaded once; read-only for the rest of the process lifetime.
	kb := knowledge.Load(cfg.KnowledgePath)

	recorder := stats.NewRecorder(cfg)
	defer recorder.Close()

	var completions *completion.Client
	if cfg.OpenAIKey != "" {
		completions = completion.NewClient(cfg.OpenAIKey, cfg.Model)
	} else {
		log.Warn().Msg("OPENAI_API_KEY not set, answering with canned fallbacks")
	}

	srv := server.New(cfg, kb, completions, recorder)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info().Msg("received shutdown signal")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown error")
		}
	}()

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server error")
	}

	log.Info().Msg("server stopped")
}
