// Package catalog implements the question catalog domain: the ordered,
// immutable list of questionnaire steps the flow controller walks through.
package catalog

import "slices"

// Kind classifies how a question's answer is captured and validated.
type Kind string

// Valid question kinds.
const (
	KindText   Kind = "text"
	KindNumber Kind = "number"
	KindChoice Kind = "choice"
)

var kinds = []Kind{
	KindText,
	KindNumber,
	KindChoice,
}

// UnmarshalText validates that the decoded string is a known kind, so both
// TOML and JSON catalog sources reject unknown values at load time.
func (k *Kind) UnmarshalText(data []byte) error {
	v := Kind(data)
	if !slices.Contains(kinds, v) {
		return ErrInvalidKind
	}
	*k = v
	return nil
}

// Role marks questions that carry extra validation or prompt semantics
// beyond their kind.
type Role string

// Valid question roles. RoleGeneric is the zero value.
const (
	RoleGeneric Role = ""
	RoleName    Role = "name"
	RoleBudget  Role = "budget"
	RolePeople  Role = "people"
)

// QuestionDef describes a single questionnaire step. Definitions are loaded
// once at startup and never mutated.
type QuestionDef struct {
	ID          string           `toml:"id" json:"id"`
	Prompt      string           `toml:"prompt" json:"prompt"`
	Description string           `toml:"description,omitempty" json:"description,omitempty"`
	Kind        Kind             `toml:"kind" json:"kind"`
	Role        Role             `toml:"role,omitempty" json:"role,omitempty"`
	Options     []string         `toml:"options,omitempty" json:"options,omitempty"`
	Placeholder string           `toml:"placeholder,omitempty" json:"placeholder,omitempty"`
	Unit        string           `toml:"unit,omitempty" json:"unit,omitempty"`
	Guidance    *GuidancePayload `toml:"guidance,omitempty" json:"guidance,omitempty"`
}

// HasOption reports whether value is one of the question's allowed choices.
func (q *QuestionDef) HasOption(value string) bool {
	return slices.Contains(q.Options, value)
}

// GuidancePayload is auxiliary explanatory content attached to a choice
// question for visitors who ask for help before answering.
type GuidancePayload struct {
	Title string         `toml:"title" json:"title"`
	Cards []GuidanceCard `toml:"cards" json:"cards"`
}

// GuidanceCard explains one choice and who it suits.
type GuidanceCard struct {
	Title       string `toml:"title" json:"title"`
	Description string `toml:"description" json:"description"`
	FitFor      string `toml:"fit_for" json:"fitFor"`
}
