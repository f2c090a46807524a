package outreach_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/mcatur/sol/internal/catalog"
	"github.com/mcatur/sol/internal/offers"
	"github.com/mcatur/sol/internal/outreach"
	"github.com/mcatur/sol/internal/profile"
)

func testProfile(guidance bool) *profile.Profile {
	p := profile.New()
	p.Set(catalog.QuestionName, profile.Answer{Kind: catalog.KindText, Text: "Ana"})
	p.Set(catalog.QuestionBudget, profile.Answer{Kind: catalog.KindNumber, Number: 6800})
	p.Set(catalog.QuestionPeople, profile.Answer{Kind: catalog.KindNumber, Number: 2})
	p.Set(catalog.QuestionPeriod, profile.Answer{Kind: catalog.KindChoice, Text: "Verão (Dez a Mar)"})
	p.Set(catalog.QuestionPriority, profile.Answer{Kind: catalog.KindChoice, Text: "Gastronomia"})
	p.Set(catalog.QuestionRoute, profile.Answer{Kind: catalog.KindChoice, Text: "Nordeste Brasileiro"})
	p.Set(catalog.QuestionExperience, profile.Answer{Kind: catalog.KindChoice, Text: "Primeira vez"})
	p.Set(catalog.QuestionProfile, profile.Answer{Kind: catalog.KindChoice, Text: "Casal"})

	cabin := profile.Answer{Kind: catalog.KindChoice, Text: "Varanda"}
	if guidance {
		cabin = profile.Answer{Kind: catalog.KindChoice, Text: profile.GuidanceSentinel, Sentinel: true}
	}
	p.Set(catalog.QuestionCabin, cabin)
	return p
}

func TestParseAudience(t *testing.T) {
	for _, raw := range []string{"agent", "companion"} {
		if _, err := outreach.ParseAudience(raw); err != nil {
			t.Errorf("ParseAudience(%q) error: %v", raw, err)
		}
	}

	if _, err := outreach.ParseAudience("manager"); !errors.Is(err, outreach.ErrUnknownAudience) {
		t.Errorf("ParseAudience(manager) error = %v, want ErrUnknownAudience", err)
	}
}

func TestComposeAgent(t *testing.T) {
	consultation := offers.Fallback("Ana")

	t.Run("includes the full profile summary", func(t *testing.T) {
		text := outreach.Compose(testProfile(false), consultation, "Luxo Supremo Yacht Club", outreach.AudienceAgent)

		for _, want := range []string{
			"Ana",
			"2 pessoas (Casal)",
			"Verão (Dez a Mar)",
			"Nordeste Brasileiro",
			"Gastronomia",
			"Varanda",
			"R$ 6.800,00",
			"Primeira vez",
			"Luxo Supremo Yacht Club",
		} {
			if !strings.Contains(text, want) {
				t.Errorf("agent message missing %q", want)
			}
		}
	})

	t.Run("falls back to the recommended offer", func(t *testing.T) {
		text := outreach.Compose(testProfile(false), consultation, "", outreach.AudienceAgent)
		if !strings.Contains(text, consultation.Recommended().Name) {
			t.Error("agent message without chosen name does not mention the recommended offer")
		}
	})

	t.Run("unknown chosen name falls back to the recommendation", func(t *testing.T) {
		text := outreach.Compose(testProfile(false), consultation, "Oferta Fantasma", outreach.AudienceAgent)
		if !strings.Contains(text, consultation.Recommended().Name) {
			t.Error("agent message with unknown offer does not mention the recommended offer")
		}
	})

	t.Run("appends a guidance note only when flagged", func(t *testing.T) {
		flagged := outreach.Compose(testProfile(true), consultation, "", outreach.AudienceAgent)
		if !strings.Contains(flagged, "ainda estou decidindo") {
			t.Error("guidance note missing for flagged profile")
		}

		plain := outreach.Compose(testProfile(false), consultation, "", outreach.AudienceAgent)
		if strings.Contains(plain, "ainda estou decidindo") {
			t.Error("guidance note present for unflagged profile")
		}
	})
}

func TestComposeCompanion(t *testing.T) {
	consultation := offers.Fallback("Ana")
	chosen := "Luxo Supremo Yacht Club"

	text := outreach.Compose(testProfile(false), consultation, chosen, outreach.AudienceCompanion)

	t.Run("carries the chosen offer teaser", func(t *testing.T) {
		for _, want := range []string{chosen, "MSC Grandiosa", "R$ 12.500"} {
			if !strings.Contains(text, want) {
				t.Errorf("companion message missing %q", want)
			}
		}
	})

	t.Run("omits the visitor's profile fields", func(t *testing.T) {
		for _, leak := range []string{
			"R$ 6.800,00",
			"Nordeste Brasileiro",
			"Varanda",
			"Ana",
			"Casal",
		} {
			if strings.Contains(text, leak) {
				t.Errorf("companion message leaks %q", leak)
			}
		}
	})
}

func TestLink(t *testing.T) {
	t.Run("agent destination and encoding", func(t *testing.T) {
		url := outreach.Link("5511981366140", "Olá Sol! Vamos navegar?")
		if !strings.HasPrefix(url, "https://wa.me/5511981366140?text=") {
			t.Errorf("url = %q, want wa.me agent prefix", url)
		}
		if strings.Contains(url, " ") || strings.Contains(url, "+") {
			t.Errorf("url contains unencoded spaces: %q", url)
		}
		if !strings.Contains(url, "%20") {
			t.Errorf("url spaces not percent-encoded: %q", url)
		}
	})

	t.Run("companion has no destination", func(t *testing.T) {
		url := outreach.Link("", "Olha o que a Sol encontrou!")
		if !strings.HasPrefix(url, "https://wa.me/?text=") {
			t.Errorf("url = %q, want destination-less prefix", url)
		}
	})
}

func TestConfigDefaults(t *testing.T) {
	cfg := &outreach.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if cfg.AgentNumber != "5511981366140" {
		t.Errorf("AgentNumber = %q, want default", cfg.AgentNumber)
	}

	bad := &outreach.Config{AgentNumber: "+55 11 98136-6140"}
	if err := bad.Finalize(nil); err == nil {
		t.Error("expected error for non-digit agent number")
	}
}
