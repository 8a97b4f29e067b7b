package state

import (
	"slices"
	"strconv"
	"testing"
)

func TestTogglePin(t *testing.T) {
	var s State
	if !s.TogglePin("script-normal") {
		t.Error("first toggle should pin")
	}
	if !s.TogglePin("fb-mono") {
		t.Error("toggle of a new id should pin")
	}
	if s.TogglePin("script-normal") {
		t.Error("second toggle should unpin")
	}
	if !slices.Equal(s.Pinned, []string{"fb-mono"}) {
		t.Errorf("Pinned = %v", s.Pinned)
	}
}

func TestPinUnpin(t *testing.T) {
	var s State
	if !s.Pin("a") || s.Pin("a") {
		t.Error("Pin should change the list once")
	}
	if s.Unpin("b") {
		t.Error("Unpin of a missing id should not change the list")
	}
	if !s.Unpin("a") || s.IsPinned("a") {
		t.Error("Unpin should remove the id")
	}
}

func TestAddHistory(t *testing.T) {
	var s State
	s.AddHistory("uno", 3)
	s.AddHistory("dos", 3)
	s.AddHistory("uno", 3) // moves to the front
	if want := []string{"uno", "dos"}; !slices.Equal(s.History, want) {
		t.Errorf("History = %v, want %v", s.History, want)
	}

	s.AddHistory("", 3)
	if len(s.History) != 2 {
		t.Error("empty text should not be recorded")
	}

	s.AddHistory("tres", 3)
	s.AddHistory("cuatro", 3)
	if want := []string{"cuatro", "tres", "uno"}; !slices.Equal(s.History, want) {
		t.Errorf("History = %v, want %v", s.History, want)
	}
}

func TestAddHistoryDefaultCap(t *testing.T) {
	var s State
	for i := range 25 {
		s.AddHistory(strconv.Itoa(i), 0)
	}
	if len(s.History) != DefaultHistorySize {
		t.Fatalf("len = %d, want %d", len(s.History), DefaultHistorySize)
	}
	if s.History[0] != "24" || s.History[DefaultHistorySize-1] != "15" {
		t.Errorf("History = %v", s.History)
	}
}

func TestClearHistory(t *testing.T) {
	s := State{Pinned: []string{"a"}, History: []string{"x"}}
	s.ClearHistory()
	if len(s.History) != 0 || len(s.Pinned) != 1 {
		t.Errorf("after clear = %+v", s)
	}
}
