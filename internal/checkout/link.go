package checkout

import (
	"net/url"
	"strings"
)

// Linker builds click-to-chat deep links to the shop's WhatsApp number
type Linker struct {
	baseURL string
	number  string
}

// NewLinker creates a Linker for number, e.g. "919876543210", under baseURL ("https://wa.me")
func NewLinker(baseURL, number string) *Linker {
	return &Linker{
		baseURL: strings.TrimRight(baseURL, "/"),
		number:  strings.TrimPrefix(strings.TrimSpace(number), "+"),
	}
}

// Link returns a deep link that opens a chat prefilled with text.
// Spaces are encoded as %20, never "+".
func (l *Linker) Link(text string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return l.baseURL + "/" + l.number + "?text=" + escaped
}
