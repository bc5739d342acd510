package movie

import "github.com/moviegraph/moviegraph/internal/apperr"

// Session holds the single "last selected movie" slot. The detail action
// writes it, the export action reads it; both run on the one console
// goroutine, so no locking is involved.
type Session struct {
	selected *DetailRecord
}

func NewSession() *Session {
	return &Session{}
}

// Select replaces the current selection.
func (s *Session) Select(rec *DetailRecord) {
	s.selected = rec
}

// Selected returns the live selection, or a STATE error when none exists.
func (s *Session) Selected() (*DetailRecord, error) {
	if s.selected == nil {
		return nil, apperr.New(apperr.CodeState, "nothing selected yet")
	}
	return s.selected, nil
}

// Clear drops the selection.
func (s *Session) Clear() {
	s.selected = nil
}
