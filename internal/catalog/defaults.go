package catalog

// Canonical question identifiers. The profile accessors and the advisor
// prompt rely on these IDs being present in any loaded catalog.
const (
	QuestionName       = "name"
	QuestionBudget     = "budget"
	QuestionPeople     = "peopleCount"
	QuestionPeriod     = "period"
	QuestionPriority   = "priority"
	QuestionRoute      = "route"
	QuestionCabin      = "cabin"
	QuestionExperience = "experience"
	QuestionProfile    = "profile"
)

// Default returns the built-in consultation questionnaire: nine steps
// covering identity, budget, party size, and travel preferences, with
// guidance cards attached to the cabin question.
func Default() []QuestionDef {
	return []QuestionDef{
		{
			ID:          QuestionName,
			Prompt:      "Para começar, como posso te chamar?",
			Description: "Quero te tratar pelo nome durante nossa consultoria.",
			Kind:        KindText,
			Role:        RoleName,
			Placeholder: "Digite seu nome aqui",
		},
		{
			ID:          QuestionBudget,
			Prompt:      "Qual é o seu orçamento total para a cabine?",
			Description: "Investimento total planejado para a viagem.",
			Kind:        KindNumber,
			Role:        RoleBudget,
			Placeholder: "Ex: 8000",
			Unit:        "R$",
		},
		{
			ID:          QuestionPeople,
			Prompt:      "Para quantas pessoas?",
			Kind:        KindNumber,
			Role:        RolePeople,
			Placeholder: "Ex: 2",
			Unit:        "Pessoas",
		},
		{
			ID:     QuestionPeriod,
			Prompt: "Qual período você prefere navegar?",
			Kind:   KindChoice,
			Options: []string{
				"Verão (Dez a Mar)",
				"Baixa Temporada (Abr a Nov)",
				"Feriados / Datas Especiais",
			},
		},
		{
			ID:     QuestionPriority,
			Prompt: "O que você mais valoriza vivenciar a bordo?",
			Kind:   KindChoice,
			Options: []string{
				"Alta Gastronomia",
				"Festas e Agito",
				"Relaxamento e SPA",
				"Atividades para Crianças",
			},
		},
		{
			ID:     QuestionRoute,
			Prompt: "Qual roteiro faz seus olhos brilharem?",
			Kind:   KindChoice,
			Options: []string{
				"Praias do Nordeste",
				"Litoral Catarinense / Uruguai",
				"Mini-Cruzeiro (Sudeste)",
			},
		},
		{
			ID:     QuestionCabin,
			Prompt: "Qual o seu nível de exigência com a cabine?",
			Kind:   KindChoice,
			Options: []string{
				"Preço (Interna)",
				"Vista Mar (Janela)",
				"Conforto (Varanda)",
			},
			Guidance: &GuidancePayload{
				Title: "Qual cabine combina com você?",
				Cards: []GuidanceCard{
					{
						Title:       "Interna",
						Description: "Cabine sem janela, localizada na parte interna do navio. O menor preço a bordo, com acesso a toda a estrutura de lazer.",
						FitFor:      "Quem passa o dia fora da cabine e quer economizar para gastar nos passeios.",
					},
					{
						Title:       "Vista Mar (Janela)",
						Description: "Cabine com janela panorâmica fixa. Luz natural e vista para o oceano sem o custo de uma varanda.",
						FitFor:      "Quem gosta de acordar vendo o mar mas não faz questão de área externa privativa.",
					},
					{
						Title:       "Varanda",
						Description: "Cabine com sacada privativa. Café da manhã ao ar livre e pôr do sol reservado só para você.",
						FitFor:      "Casais e famílias que valorizam conforto e momentos privativos durante a navegação.",
					},
				},
			},
		},
		{
			ID:     QuestionExperience,
			Prompt: "Você já viajou de cruzeiro antes?",
			Kind:   KindChoice,
			Options: []string{
				"Primeira vez",
				"Já viajei de cruzeiro",
			},
		},
		{
			ID:     QuestionProfile,
			Prompt: "Com quem você pretende viajar?",
			Kind:   KindChoice,
			Options: []string{
				"Casal",
				"Família com crianças",
				"Grupo de Amigos",
				"Viajante Solo",
			},
		},
	}
}
