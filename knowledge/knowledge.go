package knowledge

import (
	"os"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
)

// FAQ is one question/answer pair from the knowledge file.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Record holds the business facts injected into every generated prompt.
// It is loaded once at startup and read-only afterwards.
type Record struct {
	BusinessName   string   `json:"business_name"`
	Location       string   `json:"location"`
	Summary        string   `json:"summary"`
	ServiceArea    []string `json:"service_area"`
	Hours          string   `json:"hours"`
	Services       []string `json:"services"`
	PricingNotes   []string `json:"pricing_notes"`
	BookingProcess []string `json:"booking_process"`
	FAQs           []FAQ    `json:"faqs"`
	ContactPhone   string   `json:"contact_phone"`
}

// Load reads the knowledge file at path. A missing or malformed file is not
// fatal: a warning is logged and the built-in placeholder record is returned
// so the assistant keeps answering in a degraded mode.
func Load(path string) *Record {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("knowledge file unavailable, using built-in record")
		return Default()
	}

	var rec Record
	if err := sonic.Unmarshal(data, &rec); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("knowledge file malformed, using built-in record")
		return Default()
	}

	rec.normalize()
	return &rec
}

// Default returns the placeholder record used when no knowledge file can be
// loaded.
func Default() *Record {
	return &Record{
		BusinessName: "Hometown Handyman",
		Location:     "Springfield",
		Summary:      "A local handyman service handling home repairs, installations, and small remodeling jobs.",
		ServiceArea:  []string{"Springfield", "Shelbyville", "Capital City"},
		Hours:        "Monday to Saturday, 8 AM to 6 PM",
		Services: []string{
			"plumbing repairs",
			"electrical fixture installation",
			"drywall patching and painting",
			"door and window repair",
			"furniture assembly",
			"general home maintenance",
		},
		PricingNotes: []string{
			"free estimates for most jobs",
			"hourly rate with a one-hour minimum",
			"materials billed at cost",
		},
		BookingProcess: []string{
			"describe the job over phone or chat",
			"we confirm a time window",
			"a technician follows up before arrival",
		},
		FAQs: []FAQ{
			{Question: "Are you licensed and insured?", Answer: "Yes, fully licensed and insured."},
			{Question: "Do you offer same-day service?", Answer: "Often, depending on the schedule. Call early in the day for the best chance."},
		},
		ContactPhone: "(555) 012-3456",
	}
}

// normalize replaces nil slices with empty ones so templates never see null
// sections.
func (r *Record) normalize() {
	if r.ServiceArea == nil {
		r.ServiceArea = []string{}
	}
	if r.Services == nil {
		r.Services = []string{}
	}
	if r.PricingNotes == nil {
		r.PricingNotes = []string{}
	}
	if r.BookingProcess == nil {
		r.BookingProcess = []string{}
	}
	if r.FAQs == nil {
		r.FAQs = []FAQ{}
	}
}
