package form

import "strings"

// DefaultInterestOptions are the suggestions offered by the interests selector.
var DefaultInterestOptions = []string{
	"museums",
	"nightlife",
	"nature",
	"hiking",
	"beaches",
	"food",
	"shopping",
	"history",
	"art",
	"architecture",
	"local culture",
	"day trips",
}

// Selector is the checklist dropdown for interests. It only tracks whether it
// is open; the selection itself belongs to the caller.
type Selector struct {
	Options []string `json:"options"`
	Open    bool     `json:"open"`
}

// NewSelector returns a closed selector over the given options.
func NewSelector(options []string) Selector {
	return Selector{Options: clone(options)}
}

func (s *Selector) ToggleOpen() { s.Open = !s.Open }

func (s *Selector) Close() { s.Open = false }

// PointerDown reacts to a pointer interaction. Anything outside the
// selector closes it.
func (s *Selector) PointerDown(inside bool) {
	if !inside {
		s.Close()
	}
}

// Toggle appends opt when it is not selected and removes it otherwise.
// Existing selection order is preserved and selected is not modified.
func (s *Selector) Toggle(selected []string, opt string) []string {
	next := make([]string, 0, len(selected)+1)
	found := false
	for _, v := range selected {
		if v == opt {
			found = true
			continue
		}
		next = append(next, v)
	}
	if !found {
		next = append(next, opt)
	}
	return next
}

// SelectAll returns every option, in option order.
func (s *Selector) SelectAll() []string {
	return clone(s.Options)
}

// Clear returns an empty selection.
func (s *Selector) Clear() []string {
	return []string{}
}

// Checked reports whether opt is in the selection.
func Checked(selected []string, opt string) bool {
	for _, v := range selected {
		if v == opt {
			return true
		}
	}
	return false
}

// Summary is the text shown on the collapsed selector button.
func Summary(selected []string) string {
	if len(selected) == 0 {
		return "Select interests"
	}
	return strings.Join(selected, ", ")
}
