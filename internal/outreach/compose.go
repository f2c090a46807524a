// Package outreach implements the outbound message composer: pure mapping
// of (profile, consultation, chosen offer, audience) to prefilled text and
// the messaging hand-off link carrying it.
package outreach

import (
	"fmt"
	"strings"

	"github.com/mcatur/sol/internal/offers"
	"github.com/mcatur/sol/internal/profile"
	"github.com/mcatur/sol/pkg/formatting"
)

// Audience is the intended recipient of a composed outbound message.
type Audience string

// Valid audiences. The agent receives the full lead summary; the companion
// receives a short shareable teaser.
const (
	AudienceAgent     Audience = "agent"
	AudienceCompanion Audience = "companion"
)

// ParseAudience validates an audience tag received over the wire.
func ParseAudience(raw string) (Audience, error) {
	switch Audience(raw) {
	case AudienceAgent, AudienceCompanion:
		return Audience(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAudience, raw)
	}
}

// Compose renders the outbound message for one audience. It never fails:
// a missing or unknown chosen name falls back to the recommended offer.
func Compose(p *profile.Profile, c *offers.Consultation, chosenName string, audience Audience) string {
	chosen := c.Recommended()
	if chosenName != "" {
		if offer, ok := c.Find(chosenName); ok {
			chosen = offer
		}
	}
	if audience == AudienceCompanion {
		return composeCompanion(chosen)
	}
	return composeAgent(p, chosen)
}

// composeAgent builds the full structured lead summary sent to the selling
// agent, with a guidance note appended when the visitor asked for help
// choosing at any step.
func composeAgent(p *profile.Profile, chosen *offers.Offer) string {
	var b strings.Builder

	b.WriteString("Olá Sol! 🚢 Acabei de finalizar minha consultoria digital e estou muito animado(a) para navegar!\n\n")
	b.WriteString("Aqui está o resumo do meu *Projeto de Viagem*:\n\n")
	fmt.Fprintf(&b, "👤 *Viajante:* %s\n", p.Name())
	fmt.Fprintf(&b, "👥 *Passageiros:* %d pessoas (%s)\n", p.PeopleCount(), p.TravelParty())
	fmt.Fprintf(&b, "📅 *Período:* %s\n", p.Period())
	fmt.Fprintf(&b, "📍 *Destino:* %s\n", p.Route())
	fmt.Fprintf(&b, "💎 *Foco:* %s\n", p.Priority())
	fmt.Fprintf(&b, "🛌 *Cabine:* %s\n", p.Cabin())
	fmt.Fprintf(&b, "💰 *Orçamento:* %s\n", formatting.FormatBRL(p.Budget()))
	fmt.Fprintf(&b, "⚓ *Experiência:* %s\n\n", p.Experience())
	b.WriteString("⭐ *MINHA PREFERÊNCIA:*\n")
	fmt.Fprintf(&b, "*%s*\n\n", chosen.Name)
	b.WriteString("Quero garantir meus *Bônus de Ação Rápida* e as condições especiais que você encontrou para mim! Como prosseguimos com a reserva?")

	if p.NeedsGuidance() {
		b.WriteString("\n\nℹ️ Fiquei com dúvida em alguma etapa e marquei que ainda estou decidindo. Pode me ajudar a escolher?")
	}
	return b.String()
}

// composeCompanion builds the shareable teaser. It carries only the chosen
// offer's name, ship, and price, never the visitor's own profile fields.
func composeCompanion(chosen *offers.Offer) string {
	var b strings.Builder

	b.WriteString("Olha o que a Sol encontrou para nossa viagem! 🚢\n\n")
	fmt.Fprintf(&b, "Opção: %s\n", chosen.Name)
	fmt.Fprintf(&b, "Navio: %s\n", chosen.Ship)
	fmt.Fprintf(&b, "Valor aproximado: %s\n\n", chosen.Price)
	b.WriteString("Achei que combina muito com a gente. O que acha?")
	return b.String()
}
