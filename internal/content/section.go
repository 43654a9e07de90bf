package content

// #region imports
import (
	"encoding/json"
	"fmt"
)

// #endregion imports

// #region section

// Section is one content variant for a named slot of a document.
// The engine never inspects Content; it only hashes it. The actual field
// shape belongs to the presentation layer.
type Section struct {
	Slot    string          `json:"slot"`
	Content json.RawMessage `json:"content"`
}

// #endregion section

// #region document

// Document is an ordered list of sections for one page, tagged with the
// audience segment it was authored for.
type Document struct {
	ID       string    `json:"id,omitempty"`
	Segment  string    `json:"segment"`
	Sections []Section `json:"sections"`
}

// SectionFor returns the section occupying the named slot, if any.
func (d Document) SectionFor(slot string) (Section, bool) {
	for _, sec := range d.Sections {
		if sec.Slot == slot {
			return sec, true
		}
	}
	return Section{}, false
}

// #endregion document

// #region validate

// Validate checks that a section carries a slot name and well-formed content.
func (s Section) Validate() error {
	if s.Slot == "" {
		return fmt.Errorf("section has no slot name")
	}
	if len(s.Content) == 0 {
		return fmt.Errorf("section %q has no content", s.Slot)
	}
	if !json.Valid(s.Content) {
		return fmt.Errorf("section %q content is not valid JSON", s.Slot)
	}
	return nil
}

// Validate checks that a document carries at least one section, that every
// section is valid, and that no slot name repeats.
func (d Document) Validate() error {
	if len(d.Sections) == 0 {
		return fmt.Errorf("document %q has no sections", d.ID)
	}
	seen := make(map[string]bool, len(d.Sections))
	for _, sec := range d.Sections {
		if err := sec.Validate(); err != nil {
			return fmt.Errorf("document %q: %w", d.ID, err)
		}
		if seen[sec.Slot] {
			return fmt.Errorf("document %q repeats slot %q", d.ID, sec.Slot)
		}
		seen[sec.Slot] = true
	}
	return nil
}

// #endregion validate
