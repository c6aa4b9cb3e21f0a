package prompt

import (
	"strings"

	"github.com/brightfix/handyline/knowledge"
)

// Channel selects the style rules applied to the system prompt.
type Channel int

const (
	// ChannelChat targets the WebSocket text channel.
	ChannelChat Channel = iota
	// ChannelPhone targets the Twilio voice channel; answers are spoken
	// aloud, so the style rules forbid anything that only works on a screen.
	ChannelPhone
)

const chatStyle = `STYLE GUIDELINES
- You are answering in a text chat. Short paragraphs and bullet points are fine.
- Keep answers brief and to the point.
- If the request is outside our service area or not something we handle, decline politely and suggest calling us to talk it through.
- Always remind the customer that a team member will follow up to confirm details and scheduling.`

const phoneStyle = `STYLE GUIDELINES
- You are speaking to a caller on the phone. Use natural, conversational prose that sounds right read aloud.
- No bullet points, no lists, no markdown, no URLs. One to three short sentences.
- If the request is outside our service area or not something we handle, decline politely and suggest what the caller could try instead.
- Always remind the caller that a team member will follow up to confirm details and scheduling.`

// BuildSystemPrompt serializes the knowledge record into the system
// instruction for the completion API. It is pure: the same record and channel
// always produce byte-identical output. Empty list fields render as empty
// sections rather than failing.
func BuildSystemPrompt(kb *knowledge.Record, ch Channel) string {
	var b strings.Builder

	b.WriteString("You are the AI assistant for ")
	b.WriteString(kb.BusinessName)
	b.WriteString(", a handyman service based in ")
	b.WriteString(kb.Location)
	b.WriteString(".\n\n")

	b.WriteString("You answer customer questions about:\n")
	b.WriteString("- the services we offer\n")
	b.WriteString("- our service area\n")
	b.WriteString("- business hours\n")
	b.WriteString("- pricing\n")
	b.WriteString("- how to book a job\n\n")

	b.WriteString("BUSINESS KNOWLEDGE\n")
	b.WriteString("About: ")
	b.WriteString(kb.Summary)
	b.WriteString("\n")
	b.WriteString("Service area: ")
	b.WriteString(strings.Join(kb.ServiceArea, ", "))
	b.WriteString("\n")
	b.WriteString("Hours: ")
	b.WriteString(kb.Hours)
	b.WriteString("\n")
	b.WriteString("Services: ")
	b.WriteString(strings.Join(kb.Services, "; "))
	b.WriteString("\n")
	b.WriteString("Pricing: ")
	b.WriteString(strings.Join(kb.PricingNotes, "; "))
	b.WriteString("\n")
	b.WriteString("Booking: ")
	b.WriteString(strings.Join(kb.BookingProcess, "; "))
	b.WriteString("\n\n")

	b.WriteString("FREQUENTLY ASKED QUESTIONS\n")
	for i, faq := range kb.FAQs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("Q: ")
		b.WriteString(faq.Question)
		b.WriteString("\nA: ")
		b.WriteString(faq.Answer)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if ch == ChannelPhone {
		b.WriteString(phoneStyle)
	} else {
		b.WriteString(chatStyle)
	}
	b.WriteString("\n")

	return b.String()
}
