package offers

import (
	"fmt"
	"slices"

	"github.com/mcatur/sol/pkg/formatting"
)

// Wire types mirror the JSON contract requested from the generation
// capability. They are deliberately loose: every field is re-validated
// before conversion into the internal model.

type wireConsultation struct {
	SolIntro           string      `json:"solIntro"`
	TradeOffs          string      `json:"tradeOffs"`
	TypicalDay         string      `json:"typicalDay"`
	ConversionTrigger  string      `json:"conversionTrigger"`
	FastActionBonus    string      `json:"fastActionBonus"`
	PreferenceQuestion string      `json:"preferenceQuestion"`
	Recommendations    []wireOffer `json:"recommendations"`
}

type wireOffer struct {
	Type           string      `json:"type"`
	IsRecommended  bool        `json:"isRecommended"`
	MagneticName   string      `json:"magneticName"`
	Ship           string      `json:"ship"`
	Duration       string      `json:"duration"`
	Itinerary      string      `json:"itinerary"`
	CabinType      string      `json:"cabinType"`
	EstimatedPrice string      `json:"estimatedPrice"`
	TotalValue     string      `json:"totalValue"`
	WhyThis        string      `json:"whyThis"`
	ImageURL       string      `json:"imageUrl"`
	Guarantee      string      `json:"guarantee"`
	BonusStack     []wireBonus `json:"bonusStack"`
}

type wireBonus struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// Reconcile validates and normalizes a raw generation response into the
// internal Consultation model. Acceptance is all-or-nothing: any missing
// field, wrong offer count, unknown tier, recommendation ambiguity, or
// empty bonus stack rejects the entire response with ErrInvalid, and the
// caller substitutes the fallback consultation.
func Reconcile(content string) (*Consultation, error) {
	parsed, err := formatting.Parse[wireConsultation](content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if err := validateFraming(&parsed); err != nil {
		return nil, err
	}

	if len(parsed.Recommendations) != OfferCount {
		return nil, fmt.Errorf("%w: expected %d offers, got %d", ErrInvalid, OfferCount, len(parsed.Recommendations))
	}

	recommended := 0
	result := &Consultation{
		Intro:              parsed.SolIntro,
		TradeOffs:          parsed.TradeOffs,
		TypicalDay:         parsed.TypicalDay,
		ConversionTrigger:  parsed.ConversionTrigger,
		FastActionBonus:    parsed.FastActionBonus,
		PreferenceQuestion: parsed.PreferenceQuestion,
		Offers:             make([]Offer, 0, OfferCount),
	}

	for i, w := range parsed.Recommendations {
		offer, err := reconcileOffer(i, w)
		if err != nil {
			return nil, err
		}
		if offer.Recommended {
			recommended++
		}
		result.Offers = append(result.Offers, *offer)
	}

	if recommended != 1 {
		return nil, fmt.Errorf("%w: expected exactly 1 recommended offer, got %d", ErrInvalid, recommended)
	}

	return result, nil
}

func validateFraming(w *wireConsultation) error {
	framing := map[string]string{
		"solIntro":           w.SolIntro,
		"tradeOffs":          w.TradeOffs,
		"typicalDay":         w.TypicalDay,
		"conversionTrigger":  w.ConversionTrigger,
		"fastActionBonus":    w.FastActionBonus,
		"preferenceQuestion": w.PreferenceQuestion,
	}
	for field, value := range framing {
		if value == "" {
			return fmt.Errorf("%w: missing %s", ErrInvalid, field)
		}
	}
	return nil
}

func reconcileOffer(index int, w wireOffer) (*Offer, error) {
	tier := Tier(w.Type)
	if !slices.Contains(tiers, tier) {
		return nil, fmt.Errorf("%w: offer %d: %s", ErrInvalidTier, index, w.Type)
	}

	required := map[string]string{
		"magneticName":   w.MagneticName,
		"ship":           w.Ship,
		"duration":       w.Duration,
		"cabinType":      w.CabinType,
		"estimatedPrice": w.EstimatedPrice,
		"totalValue":     w.TotalValue,
		"whyThis":        w.WhyThis,
		"imageUrl":       w.ImageURL,
		"guarantee":      w.Guarantee,
	}
	for field, value := range required {
		if value == "" {
			return nil, fmt.Errorf("%w: offer %d: missing %s", ErrInvalid, index, field)
		}
	}

	if len(w.BonusStack) == 0 {
		return nil, fmt.Errorf("%w: offer %d: empty bonus stack", ErrInvalid, index)
	}

	bonuses := make([]BonusItem, 0, len(w.BonusStack))
	for j, b := range w.BonusStack {
		if b.Name == "" || b.Value == "" || b.Description == "" {
			return nil, fmt.Errorf("%w: offer %d: incomplete bonus %d", ErrInvalid, index, j)
		}
		bonuses = append(bonuses, BonusItem(b))
	}

	return &Offer{
		Tier:        tier,
		Recommended: w.IsRecommended,
		Name:        w.MagneticName,
		Ship:        w.Ship,
		Duration:    w.Duration,
		Itinerary:   w.Itinerary,
		CabinType:   w.CabinType,
		Price:       w.EstimatedPrice,
		AnchorPrice: w.TotalValue,
		Rationale:   w.WhyThis,
		ImageURL:    w.ImageURL,
		Guarantee:   w.Guarantee,
		Bonuses:     bonuses,
	}, nil
}
