package server

import (
	"fmt"
	"strings"
)

// xmlEscaper covers every character Twilio's TwiML parser treats specially.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func xmlEscape(s string) string {
	return xmlEscaper.Replace(s)
}

// twiml accumulates a voice-markup response document. Every text argument is
// XML-escaped here, so callers pass raw strings.
type twiml struct {
	b strings.Builder
}

func newTwiML() *twiml {
	t := &twiml{}
	t.b.WriteString(`<?xml version="1.0" encoding="UTF-8"?><Response>`)
	return t
}

// Say adds a spoken utterance.
func (t *twiml) Say(text string) *twiml {
	t.b.WriteString("<Say>")
	t.b.WriteString(xmlEscape(text))
	t.b.WriteString("</Say>")
	return t
}

// Pause adds a silence of the given length in seconds.
func (t *twiml) Pause(seconds int) *twiml {
	fmt.Fprintf(&t.b, `<Pause length="%d"/>`, seconds)
	return t
}

// Gather adds a speech-capture directive that re-POSTs the transcript to
// action, speaking prompt while listening starts.
func (t *twiml) Gather(action, prompt string) *twiml {
	fmt.Fprintf(&t.b, `<Gather input="speech" action="%s" method="POST" speechTimeout="auto">`, xmlEscape(action))
	t.b.WriteString("<Say>")
	t.b.WriteString(xmlEscape(prompt))
	t.b.WriteString("</Say></Gather>")
	return t
}

// Hangup ends the call.
func (t *twiml) Hangup() *twiml {
	t.b.WriteString("<Hangup/>")
	return t
}

// Document closes and returns the response body.
func (t *twiml) Document() string {
	return t.b.String() + "</Response>"
}
