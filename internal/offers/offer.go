// Package offers implements the offer domain: the internal consultation
// model, reconciliation of untrusted remote responses into it, and the
// deterministic fallback consultation.
package offers

import (
	"encoding/json"
	"slices"
)

// Tier classifies an offer's positioning within the three-option set.
type Tier string

// Valid offer tiers. Ordering is significant for display only.
const (
	TierEconomy Tier = "ECONOMY"
	TierIdeal   Tier = "IDEAL"
	TierUpgrade Tier = "UPGRADE"
)

var tiers = []Tier{
	TierEconomy,
	TierIdeal,
	TierUpgrade,
}

// UnmarshalJSON validates that the decoded string is a known tier value.
func (t *Tier) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Tier(raw)
	if !slices.Contains(tiers, v) {
		return ErrInvalidTier
	}
	*t = v
	return nil
}

// OfferCount is the fixed number of offers in every consultation.
const OfferCount = 3

// BonusItem is one entry of an offer's value stack. Values are display-only
// strings, never summed.
type BonusItem struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// Offer is one marketed travel package.
type Offer struct {
	Tier        Tier        `json:"tier"`
	Recommended bool        `json:"recommended"`
	Name        string      `json:"name"`
	Ship        string      `json:"ship"`
	Duration    string      `json:"duration"`
	Itinerary   string      `json:"itinerary,omitempty"`
	CabinType   string      `json:"cabinType"`
	Price       string      `json:"price"`
	AnchorPrice string      `json:"anchorPrice"`
	Rationale   string      `json:"rationale"`
	ImageURL    string      `json:"imageUrl"`
	Guarantee   string      `json:"guarantee"`
	Bonuses     []BonusItem `json:"bonuses"`
}

// Consultation is the complete generation result: exactly three offers plus
// the framing text rendered around them.
type Consultation struct {
	Intro              string  `json:"intro"`
	TradeOffs          string  `json:"tradeOffs"`
	TypicalDay         string  `json:"typicalDay"`
	ConversionTrigger  string  `json:"conversionTrigger"`
	FastActionBonus    string  `json:"fastActionBonus"`
	PreferenceQuestion string  `json:"preferenceQuestion"`
	Offers             []Offer `json:"offers"`
}

// Recommended returns the offer flagged as the consultant's pick. Every
// reconciled or fallback consultation has exactly one.
func (c *Consultation) Recommended() *Offer {
	for i := range c.Offers {
		if c.Offers[i].Recommended {
			return &c.Offers[i]
		}
	}
	return &c.Offers[0]
}

// Find returns the offer with the given marketing name, if present.
func (c *Consultation) Find(name string) (*Offer, bool) {
	for i := range c.Offers {
		if c.Offers[i].Name == name {
			return &c.Offers[i], true
		}
	}
	return nil, false
}
