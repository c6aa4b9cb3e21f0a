package prompt

import (
	"strings"
	"testing"

	"github.com/brightfix/handyline/knowledge"
)

func TestBuildSystemPromptIsPure(t *testing.T) {
	kb := knowledge.Default()

	first := BuildSystemPrompt(kb, ChannelPhone)
	second := BuildSystemPrompt(kb, ChannelPhone)
	if first != second {
		t.Error("Expected byte-identical output for identical inputs")
	}
}

func TestBuildSystemPromptChannelsDiffer(t *testing.T) {
	kb := knowledge.Default()

	chat := BuildSystemPrompt(kb, ChannelChat)
	phone := BuildSystemPrompt(kb, ChannelPhone)

	if chat == phone {
		t.Error("Expected chat and phone prompts to differ")
	}
	if !strings.Contains(phone, "No bullet points") {
		t.Error("Phone prompt should forbid bullet points")
	}
	if !strings.Contains(chat, "bullet points are fine") {
		t.Error("Chat prompt should permit bullet points")
	}
	// Both channels share the decline and follow-up instructions.
	for name, p := range map[string]string{"chat": chat, "phone": phone} {
		if !strings.Contains(p, "decline politely") {
			t.Errorf("%s prompt should instruct polite declines", name)
		}
		if !strings.Contains(p, "follow up to confirm") {
			t.Errorf("%s prompt should promise a human follow-up", name)
		}
	}
}

func TestBuildSystemPromptSections(t *testing.T) {
	kb := &knowledge.Record{
		BusinessName: "Acme Repairs",
		Location:     "Riverdale",
		Summary:      "Fixes things.",
		ServiceArea:  []string{"Riverdale", "Midvale"},
		Hours:        "Weekdays 9-5",
		Services:     []string{"plumbing", "painting"},
		PricingNotes: []string{"free estimates", "hourly rate"},
		FAQs: []knowledge.FAQ{
			{Question: "Q1", Answer: "A1"},
			{Question: "Q2", Answer: "A2"},
		},
	}

	p := BuildSystemPrompt(kb, ChannelChat)

	if !strings.Contains(p, "Acme Repairs") || !strings.Contains(p, "Riverdale") {
		t.Error("Prompt should carry the business identity line")
	}
	if !strings.Contains(p, "Service area: Riverdale, Midvale") {
		t.Error("Service area should be joined with \", \"")
	}
	if !strings.Contains(p, "Services: plumbing; painting") {
		t.Error("Services should be joined with \"; \"")
	}
	if !strings.Contains(p, "Pricing: free estimates; hourly rate") {
		t.Error("Pricing notes should be joined with \"; \"")
	}
	if !strings.Contains(p, "Q: Q1\nA: A1") || !strings.Contains(p, "Q: Q2\nA: A2") {
		t.Error("FAQs should render as Q/A pairs")
	}
	if !strings.Contains(p, "A: A1\n\nQ: Q2") {
		t.Error("FAQ pairs should be separated by a blank line")
	}
}

func TestBuildSystemPromptEmptyListsRenderEmptySections(t *testing.T) {
	kb := &knowledge.Record{BusinessName: "Acme", Location: "Nowhere"}

	p := BuildSystemPrompt(kb, ChannelPhone)

	if !strings.Contains(p, "Services: \n") {
		t.Error("Missing services should render as an empty section")
	}
	if !strings.Contains(p, "Service area: \n") {
		t.Error("Missing service area should render as an empty section")
	}
}
