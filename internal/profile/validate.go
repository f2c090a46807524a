package profile

import (
	"strconv"
	"strings"

	"github.com/mcatur/sol/internal/catalog"
	"github.com/mcatur/sol/pkg/formatting"
)

// GuidanceSentinel is the distinguished placeholder answer recorded when a
// visitor asks for guidance instead of picking a choice. It satisfies the
// current question while flagging the profile for human follow-up.
const GuidanceSentinel = "Ainda estou decidindo"

// MinimumBudget is the smallest accepted trip budget in reais.
const MinimumBudget = 2000

// Visitor-facing rejection reasons.
const (
	reasonNameRequired  = "Por favor, me diga como te chamar!"
	reasonInvalidNumber = "Por favor, informe um valor válido."
	reasonBudgetTooLow  = "Cruzeiros nacionais exigem um investimento mínimo para uma boa experiência. Ajuste seu orçamento."
	reasonInvalidChoice = "Escolha uma das opções apresentadas."
)

// Input is the raw, untrusted submission for one question. Guidance signals
// that the visitor invoked the guidance path instead of answering directly.
type Input struct {
	Value    string
	Guidance bool
}

// Rejection is an expected, visitor-correctable validation failure. It is a
// value, not an error: rejections never propagate as failures.
type Rejection struct {
	Reason string
}

// Validate normalizes raw input against a question definition. It returns
// either the validated answer or a rejection with a visitor-facing reason;
// it never panics or errors for expected bad input.
func Validate(q *catalog.QuestionDef, input Input) (Answer, *Rejection) {
	switch q.Kind {
	case catalog.KindText:
		return validateText(input)
	case catalog.KindNumber:
		if q.Role == catalog.RoleBudget {
			return validateBudget(input)
		}
		return validateNumber(input)
	case catalog.KindChoice:
		return validateChoice(q, input)
	default:
		return Answer{}, &Rejection{Reason: reasonInvalidChoice}
	}
}

func validateText(input Input) (Answer, *Rejection) {
	value := strings.TrimSpace(input.Value)
	if value == "" {
		return Answer{}, &Rejection{Reason: reasonNameRequired}
	}
	return Answer{Kind: catalog.KindText, Text: value}, nil
}

func validateNumber(input Input) (Answer, *Rejection) {
	value := strings.TrimSpace(input.Value)
	n, err := strconv.ParseFloat(value, 64)
	if err != nil || n <= 0 {
		return Answer{}, &Rejection{Reason: reasonInvalidNumber}
	}
	return Answer{Kind: catalog.KindNumber, Number: n}, nil
}

func validateBudget(input Input) (Answer, *Rejection) {
	amount, err := formatting.ParseBRL(input.Value)
	if err != nil {
		return Answer{}, &Rejection{Reason: reasonInvalidNumber}
	}
	if amount < MinimumBudget {
		return Answer{}, &Rejection{Reason: reasonBudgetTooLow}
	}
	return Answer{Kind: catalog.KindNumber, Number: amount}, nil
}

func validateChoice(q *catalog.QuestionDef, input Input) (Answer, *Rejection) {
	if input.Guidance {
		// Only questions that carry a guidance payload accept the sentinel.
		// For those, guidance bypasses the membership check: the sentinel is
		// recorded as a concrete answer and the profile is flagged for
		// follow-up.
		if q.Guidance == nil {
			return Answer{}, &Rejection{Reason: reasonInvalidChoice}
		}
		return Answer{Kind: catalog.KindChoice, Text: GuidanceSentinel, Sentinel: true}, nil
	}

	value := strings.TrimSpace(input.Value)
	if !q.HasOption(value) {
		return Answer{}, &Rejection{Reason: reasonInvalidChoice}
	}
	return Answer{Kind: catalog.KindChoice, Text: value}, nil
}

func trimFloat(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
