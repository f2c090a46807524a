package flow

import (
	"fmt"
	"time"

	"github.com/mcatur/sol/internal/catalog"
	"github.com/mcatur/sol/internal/offers"
)

// socialProofs rotate on the results screen. Presentational only; rotation
// is derived from the clock so no per-session ticker is needed.
var socialProofs = []SocialProof{
	{Name: "Mariana", City: "Curitiba", Action: "garantiu o bônus de cabine"},
	{Name: "Carlos", City: "São Paulo", Action: "reservou o MSC Grandiosa"},
	{Name: "Beatriz", City: "Belo Horizonte", Action: "acaba de falar com a Sol"},
	{Name: "Ricardo", City: "Porto Alegre", Action: "escolheu a cabine com varanda"},
	{Name: "Fernanda", City: "Brasília", Action: "recebeu o upgrade Yacht Club"},
	{Name: "André", City: "Salvador", Action: "economizou R$ 1.200 na reserva"},
}

const (
	socialProofPeriod  = 12 * time.Second
	socialProofVisible = 5 * time.Second
)

// SocialProof is one rotating recent-activity notice.
type SocialProof struct {
	Name   string `json:"name"`
	City   string `json:"city"`
	Action string `json:"action"`
}

// View is the rendering-layer projection of one session. Exactly one of
// Question and Results is set outside the Intro phase.
type View struct {
	ID        string        `json:"id"`
	Phase     Phase         `json:"phase"`
	Question  *QuestionView `json:"question,omitempty"`
	Rejection string        `json:"rejection,omitempty"`
	Results   *ResultsView  `json:"results,omitempty"`
}

// QuestionView presents the current questionnaire step with progress.
type QuestionView struct {
	Index    int                  `json:"index"`
	Total    int                  `json:"total"`
	Question *catalog.QuestionDef `json:"question"`
	Answered int                  `json:"answered"`
}

// ResultsView presents the consultation plus the presentational state
// around it: countdown, preference subphase, and social-proof rotation.
type ResultsView struct {
	Consultation     *offers.Consultation `json:"consultation"`
	Selected         string               `json:"selected,omitempty"`
	Subphase         Subphase             `json:"subphase"`
	CountdownSeconds int                  `json:"countdownSeconds"`
	CountdownDisplay string               `json:"countdownDisplay"`
	SocialProof      *SocialProof         `json:"socialProof,omitempty"`
}

// rotatingProof returns the social proof visible at the given instant, or
// nil during the quiet part of each rotation window.
func rotatingProof(now time.Time) *SocialProof {
	elapsed := now.Unix()
	if elapsed%int64(socialProofPeriod/time.Second) >= int64(socialProofVisible/time.Second) {
		return nil
	}
	idx := (elapsed / int64(socialProofPeriod/time.Second)) % int64(len(socialProofs))
	return &socialProofs[idx]
}

func formatCountdown(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
