package offers

import "fmt"

// Fallback returns the deterministic consultation used whenever the remote
// generation capability is unreachable or returns an invalid response. The
// visitor's name is interpolated into the framing so the hand-off still
// reads personal. The result always satisfies the consultation invariants:
// three tiered offers, exactly one recommended, no empty bonus stacks.
func Fallback(visitorName string) *Consultation {
	if visitorName == "" {
		visitorName = "viajante"
	}

	return &Consultation{
		Intro: fmt.Sprintf(
			"Olá, %s! O sistema da IA está sobrecarregado pelo alto volume de buscas, mas não se preocupe! "+
				"Acessei nosso banco de dados offline e selecionei manualmente 3 opções incríveis para você.",
			visitorName,
		),
		TradeOffs:          "Foquei em maximizar seu orçamento priorizando navios com melhor infraestrutura de lazer.",
		TypicalDay:         "Imagine acordar com vista para o mar, curtir piscinas infinitas e terminar o dia com um jantar de gala.",
		ConversionTrigger:  "⚠️ Últimas cabines disponíveis nesta tarifa.",
		FastActionBonus:    "🎁 BÔNUS DE CONTINGÊNCIA: 5% OFF extra se chamar no WhatsApp agora.",
		PreferenceQuestion: fmt.Sprintf("Dessas opções manuais, %s, qual delas te fez sonhar mais alto?", visitorName),
		Offers: []Offer{
			{
				Tier:        TierEconomy,
				Name:        "Escapada Smart no Costa Favolosa",
				Ship:        "Costa Favolosa",
				Duration:    "4 Noites",
				Itinerary:   "Santos, Balneário Camboriú, Santos",
				CabinType:   "Interna Premium",
				Price:       "R$ 3.200",
				AnchorPrice: "R$ 4.500",
				Rationale:   "A opção mais inteligente para caber no bolso sem perder a diversão.",
				ImageURL:    "https://images.unsplash.com/photo-1599640845513-2627a3a4af75?auto=format&fit=crop&w=800&q=80",
				Guarantee:   "Menor preço garantido da temporada.",
				Bonuses: []BonusItem{
					{
						Name:        "E-book: Malas Inteligentes",
						Value:       "R$ 97",
						Description: "O que levar sem excesso de peso.",
					},
				},
			},
			{
				Tier:        TierIdeal,
				Recommended: true,
				Name:        fmt.Sprintf("A Experiência Sol para %s no MSC Seaview", visitorName),
				Ship:        "MSC Seaview",
				Duration:    "7 Noites",
				Itinerary:   "Santos, Salvador, Ilhéus, Santos",
				CabinType:   "Varanda Fantastica",
				Price:       "R$ 6.800",
				AnchorPrice: "R$ 8.900",
				Rationale:   "O equilíbrio perfeito entre o luxo do navio e o roteiro dos sonhos.",
				ImageURL:    "https://images.unsplash.com/photo-1548574505-5e239809ee19?auto=format&fit=crop&w=800&q=80",
				Guarantee:   "Satisfação total ou upgrade na próxima viagem.",
				Bonuses: []BonusItem{
					{
						Name:        "Consultoria VIP de Passeios",
						Value:       "R$ 250",
						Description: "Os melhores pontos turísticos sem filas.",
					},
					{
						Name:        "Voucher de Drinks",
						Value:       "R$ 150",
						Description: "Crédito para seus primeiros brindes.",
					},
				},
			},
			{
				Tier:        TierUpgrade,
				Name:        "Luxo Supremo Yacht Club",
				Ship:        "MSC Grandiosa",
				Duration:    "7 Noites",
				Itinerary:   "Roteiro Nordeste Premium",
				CabinType:   "Suíte Yacht Club",
				Price:       "R$ 12.500",
				AnchorPrice: "R$ 15.000",
				Rationale:   "Para quem não aceita nada menos que a perfeição e exclusividade.",
				ImageURL:    "https://images.unsplash.com/photo-1632943792072-3c0ae076e0eb?auto=format&fit=crop&w=800&q=80",
				Guarantee:   "Atendimento de Mordomo 24h.",
				Bonuses: []BonusItem{
					{
						Name:        "Acesso Termal SPA",
						Value:       "R$ 800",
						Description: "Relaxamento total incluso.",
					},
				},
			},
		},
	}
}
