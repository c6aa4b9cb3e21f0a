package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/brightfix/handyline/prompt"
)

const (
	voiceTemperature = 0.4
	voiceWebhookPath = "/twilio-voice"
)

// turn is the voice-webhook state, computed once per request from the
// trimmed SpeechResult field. There is no server-side call session: Twilio
// drives the second turn by re-POSTing this same path as the Gather action
// once it has captured speech.
type turn int

const (
	turnGreeting turn = iota
	turnAnswer
)

func classifyTurn(speech string) turn {
	if speech == "" {
		return turnGreeting
	}
	return turnAnswer
}

// handleTwilioVoice accepts any HTTP method; Twilio is configured with POST
// but retries and console tests sometimes arrive as GET.
func (s *Server) handleTwilioVoice(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		// An unreadable body is treated as a first call: the caller still
		// hears the greeting instead of a dropped call.
		log.Warn().Err(err).Msg("failed to parse voice webhook form")
	}

	caller := r.FormValue("From")
	speech := strings.TrimSpace(r.FormValue("SpeechResult"))

	var doc string
	switch classifyTurn(speech) {
	case turnGreeting:
		doc = s.greetingDocument()
	case turnAnswer:
		doc = s.answerDocument(r.Context(), caller, speech)
	}

	w.Header().Set("Content-Type", "text/xml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(doc)); err != nil {
		log.Error().Err(err).Msg("failed to write voice response")
	}
}

// greetingDocument welcomes the caller and gathers speech. The trailing
// utterance only plays if Twilio's gather times out without capturing
// anything; a successful capture re-POSTs the webhook instead.
func (s *Server) greetingDocument() string {
	return newTwiML().
		Say(fmt.Sprintf("Thank you for calling %s.", s.kb.BusinessName)).
		Pause(1).
		Gather(voiceWebhookPath,
			"How can we help today? You can say things like, I have a leaky faucet, or, do you install ceiling fans?").
		Say("Sorry, we didn't catch that. Please call back and we'll be happy to help.").
		Document()
}

// answerDocument answers the transcribed question and always ends the call
// cleanly, whatever the completion API does.
func (s *Server) answerDocument(ctx context.Context, caller, speech string) string {
	s.stats.RecordVoice(ctx, speech)

	if s.completions == nil {
		return newTwiML().
			Say(fmt.Sprintf(
				"I'm sorry, our assistant is unavailable right now. Please call us at %s and we'll be happy to help.",
				s.kb.ContactPhone)).
			Hangup().
			Document()
	}

	systemPrompt := prompt.BuildSystemPrompt(s.kb, prompt.ChannelPhone)
	userContent := fmt.Sprintf("Caller phone number: %s\nCaller said: %s", caller, speech)

	answer, err := s.completions.Complete(ctx, systemPrompt, userContent, voiceTemperature)
	if err != nil {
		log.Error().Err(err).Str("caller", caller).Msg("voice completion call failed")
		return newTwiML().
			Say("I'm sorry, we're having trouble answering right now. Please call again in a few minutes.").
			Hangup().
			Document()
	}

	return newTwiML().
		Say(answer).
		Pause(1).
		Say("A member of our team will follow up to confirm the details and scheduling. Thanks for calling!").
		Hangup().
		Document()
}
