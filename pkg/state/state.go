// Package state persists the user's pinned styles and copy history.
//
// State lives in a single JSON file, by default
// $XDG_CONFIG_HOME/fontify/state.json (~/.config/fontify/state.json when
// the variable is unset):
//
//	{
//	  "pinned": ["script-normal", "got-core-bold"],
//	  "history": ["ℋℴ𝓁𝒶", "MMXXV"]
//	}
//
// [FileStore] serializes writers within a process with a mutex and across
// processes with a lock file next to the state file, so two shells pinning
// at once do not lose an update.
package state

import (
	"slices"
)

// DefaultHistorySize is how many copied texts are remembered.
const DefaultHistorySize = 10

// State is the persisted user state.
type State struct {
	// Pinned holds style ids in the order they were pinned. Ids are not
	// checked against a registry; unknown ones are ignored when rendering.
	Pinned []string `json:"pinned"`

	// History holds copied texts, newest first, without duplicates.
	History []string `json:"history"`
}

// IsPinned reports whether id is pinned.
func (s *State) IsPinned(id string) bool {
	return slices.Contains(s.Pinned, id)
}

// Pin adds id to the pinned list. It reports whether the list changed.
func (s *State) Pin(id string) bool {
	if s.IsPinned(id) {
		return false
	}
	s.Pinned = append(s.Pinned, id)
	return true
}

// Unpin removes id from the pinned list. It reports whether the list changed.
func (s *State) Unpin(id string) bool {
	i := slices.Index(s.Pinned, id)
	if i < 0 {
		return false
	}
	s.Pinned = slices.Delete(s.Pinned, i, i+1)
	return true
}

// TogglePin pins id if it is not pinned and unpins it otherwise.
// It returns the new pinned state.
func (s *State) TogglePin(id string) bool {
	if s.Unpin(id) {
		return false
	}
	s.Pin(id)
	return true
}

// AddHistory records text as the newest entry. An existing equal entry
// moves to the front; the list is truncated to limit entries (limit <= 0
// means DefaultHistorySize). Empty text is not recorded.
func (s *State) AddHistory(text string, limit int) {
	if text == "" {
		return
	}
	if limit <= 0 {
		limit = DefaultHistorySize
	}
	h := make([]string, 0, min(len(s.History)+1, limit))
	h = append(h, text)
	for _, old := range s.History {
		if len(h) == limit {
			break
		}
		if old != text {
			h = append(h, old)
		}
	}
	s.History = h
}

// ClearHistory forgets every copied text.
func (s *State) ClearHistory() {
	s.History = nil
}

func (s *State) normalize() {
	if s.Pinned == nil {
		s.Pinned = []string{}
	}
	if s.History == nil {
		s.History = []string{}
	}
}
