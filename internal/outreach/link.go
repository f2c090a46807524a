package outreach

import (
	"net/url"
	"strings"
)

// Link builds the messaging hand-off URI for a composed text. The
// destination is the agent's number for agent messages and empty for
// companion messages, which carry no fixed recipient.
func Link(destination, text string) string {
	// wa.me renders "+" literally, so spaces must be percent-encoded.
	encoded := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return "https://wa.me/" + destination + "?text=" + encoded
}
