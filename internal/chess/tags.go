package chess

import "golang.org/x/exp/maps"

// Tag names recognized in movetext headers.
const (
	EventTag  = "Event"
	SiteTag   = "Site"
	DateTag   = "Date"
	RoundTag  = "Round"
	WhiteTag  = "White"
	BlackTag  = "Black"
	ResultTag = "Result"

	// FENTag is not part of the roster; it seeds the starting layout.
	FENTag = "FEN"
)

// SevenTagRoster contains the seven recognized header tags in order.
var SevenTagRoster = []string{
	EventTag,
	SiteTag,
	DateTag,
	RoundTag,
	WhiteTag,
	BlackTag,
	ResultTag,
}

// IsSevenTagRosterTag returns true if the tag is one of the seven recognized tags.
func IsSevenTagRosterTag(tag string) bool {
	for _, t := range SevenTagRoster {
		if t == tag {
			return true
		}
	}
	return false
}

// Headers maps the seven roster tags to their values. Every roster key is
// present; a tag missing from the movetext holds "".
type Headers map[string]string

// NewHeaders creates a header map with every roster key set to "".
func NewHeaders() Headers {
	h := make(Headers, len(SevenTagRoster))
	for _, tag := range SevenTagRoster {
		h[tag] = ""
	}
	return h
}

// Get returns the tag value, or "" if the tag is absent.
func (h Headers) Get(tag string) string {
	return h[tag]
}

// Copy returns an independent copy of the headers.
func (h Headers) Copy() Headers {
	out := make(Headers, len(h))
	maps.Copy(out, h)
	return out
}
