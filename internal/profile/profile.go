// Package profile implements the visitor profile domain: the accumulated,
// validated answers for one consultation run and the per-question input
// validation rules that guard it.
package profile

import (
	"encoding/json"

	"github.com/mcatur/sol/internal/catalog"
)

// Answer is a single validated answer keyed under a question identifier.
// Text carries the normalized value for text and choice questions; Number
// carries the parsed value for number questions. Sentinel marks the
// guidance placeholder answer.
type Answer struct {
	Kind     catalog.Kind
	Text     string
	Number   float64
	Sentinel bool
}

// Display returns the answer as visitor-facing text.
func (a Answer) Display() string {
	if a.Kind == catalog.KindNumber {
		return trimFloat(a.Number)
	}
	return a.Text
}

// Profile accumulates validated answers for one session. The needs-guidance
// flag is set when the visitor records the guidance sentinel for any
// question and is never cleared within a single run.
type Profile struct {
	answers       map[string]Answer
	needsGuidance bool
}

// New creates an empty Profile.
func New() *Profile {
	return &Profile{
		answers: make(map[string]Answer),
	}
}

// Set records a validated answer, replacing any prior answer for the same
// question. A sentinel answer marks the profile as needing guidance.
func (p *Profile) Set(questionID string, a Answer) {
	p.answers[questionID] = a
	if a.Sentinel {
		p.needsGuidance = true
	}
}

// Get returns the answer recorded for a question, if any.
func (p *Profile) Get(questionID string) (Answer, bool) {
	a, ok := p.answers[questionID]
	return a, ok
}

// Len returns the number of recorded answers.
func (p *Profile) Len() int {
	return len(p.answers)
}

// NeedsGuidance reports whether the visitor asked for guidance at any step.
func (p *Profile) NeedsGuidance() bool {
	return p.needsGuidance
}

// Complete reports whether the profile holds exactly one answer for every
// question in the catalog.
func (p *Profile) Complete(questions []catalog.QuestionDef) bool {
	if len(p.answers) != len(questions) {
		return false
	}
	for _, q := range questions {
		if _, ok := p.answers[q.ID]; !ok {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the profile, used to snapshot the
// completed answers before handing them to the generation adapter.
func (p *Profile) Clone() *Profile {
	clone := New()
	for id, a := range p.answers {
		clone.answers[id] = a
	}
	clone.needsGuidance = p.needsGuidance
	return clone
}

// Typed accessors for the canonical questions. Missing answers yield zero
// values so callers degrade gracefully with partial or custom catalogs.

func (p *Profile) Name() string        { return p.text(catalog.QuestionName) }
func (p *Profile) Period() string      { return p.text(catalog.QuestionPeriod) }
func (p *Profile) Priority() string    { return p.text(catalog.QuestionPriority) }
func (p *Profile) Route() string       { return p.text(catalog.QuestionRoute) }
func (p *Profile) Cabin() string       { return p.text(catalog.QuestionCabin) }
func (p *Profile) Experience() string  { return p.text(catalog.QuestionExperience) }
func (p *Profile) TravelParty() string { return p.text(catalog.QuestionProfile) }

// Budget returns the total trip budget in reais.
func (p *Profile) Budget() float64 {
	return p.answers[catalog.QuestionBudget].Number
}

// PeopleCount returns the traveler count, never below 1.
func (p *Profile) PeopleCount() int {
	n := int(p.answers[catalog.QuestionPeople].Number)
	if n < 1 {
		return 1
	}
	return n
}

func (p *Profile) text(questionID string) string {
	return p.answers[questionID].Text
}

// MarshalJSON renders the profile as the flat lead document sent to the
// generation capability.
func (p *Profile) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"name":          p.Name(),
		"budget":        p.Budget(),
		"peopleCount":   p.PeopleCount(),
		"period":        p.Period(),
		"priority":      p.Priority(),
		"route":         p.Route(),
		"cabin":         p.Cabin(),
		"experience":    p.Experience(),
		"profile":       p.TravelParty(),
		"needsGuidance": p.NeedsGuidance(),
	})
}
