package cli

import (
	"context"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/fontify/pkg/pipeline"
	"github.com/matzehuels/fontify/pkg/state"
	"github.com/matzehuels/fontify/pkg/style"
)

func newTestModel(t *testing.T, text string) (*generatorModel, *state.FileStore) {
	t.Helper()
	store := state.NewFileStore(filepath.Join(t.TempDir(), "state.json"), 0)
	opts := pipeline.Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	m := newGeneratorModel(context.Background(), pipeline.NewRunner(nil, nil), store, opts, text)
	m.refresh()
	return m, store
}

func typeText(m *generatorModel, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestGeneratorTyping(t *testing.T) {
	m, _ := newTestModel(t, "")
	if !m.result.Placeholder {
		t.Fatal("empty input should show the placeholder")
	}

	typeText(m, "Hola")
	if m.result.Placeholder || m.result.Input != "Hola" {
		t.Errorf("Input = %q", m.result.Input)
	}
	if got := m.result.Items[0].Output; got != "ℋℴ𝓁𝒶" {
		t.Errorf("first output = %q", got)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if m.result.Input != "Hol" {
		t.Errorf("after backspace Input = %q", m.result.Input)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	if !m.result.Placeholder {
		t.Error("ctrl+u should clear the input")
	}
}

func TestGeneratorPlaceholderRotates(t *testing.T) {
	m, _ := newTestModel(t, "")
	first := m.result.Input
	_, cmd := m.Update(placeholderTickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.result.Input == first {
		t.Errorf("placeholder did not rotate from %q", first)
	}
}

func TestGeneratorSettings(t *testing.T) {
	m, _ := newTestModel(t, "Paz")

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.opts.Category != style.CategoryCursive {
		t.Errorf("tab: category = %q, want cursivas", m.opts.Category)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.opts.Category != style.CategoryAmino {
		t.Errorf("shift+tab wraps: category = %q, want amino", m.opts.Category)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	if m.opts.Decoration != style.DecorationSparkles {
		t.Errorf("ctrl+d: decoration = %q", m.opts.Decoration)
	}
	if out := m.result.Items[0].Output; !strings.HasPrefix(out, "✨ ") {
		t.Errorf("decorated output = %q", out)
	}

	// Gothic does not offer sparkles.
	for m.opts.Category != style.CategoryGothic {
		m.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	if m.opts.Decoration != style.DecorationNone {
		t.Errorf("decoration %q kept across categories", m.opts.Decoration)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.opts.Case != "upper" {
		t.Errorf("ctrl+t: case = %q", m.opts.Case)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.opts.MinReadability != style.ReadabilityMedium {
		t.Errorf("ctrl+r: readability = %q", m.opts.MinReadability)
	}
}

func TestGeneratorNavigation(t *testing.T) {
	m, _ := newTestModel(t, "Arte")
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want clamped at 0", m.cursor)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	if m.cursor != m.height {
		t.Errorf("cursor = %d, want %d", m.cursor, m.height)
	}
	if m.offset == 0 {
		t.Error("list should scroll")
	}

	// Letters type in the input but navigate in the list.
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	before := m.cursor
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if m.cursor != before+1 || m.result.Input != "Arte" {
		t.Errorf("j in list: cursor %d, input %q", m.cursor, m.result.Input)
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Error("q in list should quit")
	}
}

func TestGeneratorPinAndCopy(t *testing.T) {
	m, store := newTestModel(t, "Hola")
	var copied string
	m.copy = func(s string) error {
		copied = s
		return nil
	}

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	id := m.result.Items[1].ID

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	if cmd == nil {
		t.Fatal("ctrl+p returned no command")
	}
	m.Update(cmd())
	if !slices.Contains(m.pinned, id) {
		t.Fatalf("pinned = %v, want %s", m.pinned, id)
	}
	if m.result.Items[0].ID != id || !m.result.Items[0].Pinned {
		t.Errorf("pinned style %s not listed first", id)
	}

	m.cursor = 0
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter returned no command")
	}
	m.Update(cmd())
	if copied != m.result.Items[0].Output {
		t.Errorf("copied %q, want %q", copied, m.result.Items[0].Output)
	}
	if !strings.HasPrefix(m.status, "Copied") {
		t.Errorf("status = %q", m.status)
	}

	st, err := store.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(st.Pinned, []string{id}) || len(st.History) != 1 {
		t.Errorf("state = %+v", st)
	}
}

func TestGeneratorCopyZeroState(t *testing.T) {
	m, _ := newTestModel(t, "")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("nothing should be copied in the zero state")
	}
}

func TestGeneratorView(t *testing.T) {
	m, _ := newTestModel(t, "Hola")
	view := m.View()
	for _, want := range []string{"Letras Bonitas", "Hola", "Cursiva (Normal)", "ℋℴ𝓁𝒶"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
