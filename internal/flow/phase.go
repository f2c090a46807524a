package flow

// Phase is the coarse state of one consultation session.
type Phase string

// Valid session phases, in flow order.
const (
	PhaseIntro       Phase = "intro"
	PhaseQuestioning Phase = "questioning"
	PhaseGenerating  Phase = "generating"
	PhaseResults     Phase = "results"
)

// Subphase refines the Results phase around the preference interaction.
type Subphase string

// Valid results subphases. Choosing is the initial state; drafting covers
// the short window after a choice while the outreach text is "written";
// chosen means the hand-off button is armed.
const (
	SubphaseChoosing Subphase = "choosing"
	SubphaseDrafting Subphase = "drafting"
	SubphaseChosen   Subphase = "chosen"
)
