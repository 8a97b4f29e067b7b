package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fontify/pkg/convert"
	"github.com/matzehuels/fontify/pkg/errors"
	"github.com/matzehuels/fontify/pkg/pipeline"
	"github.com/matzehuels/fontify/pkg/state"
	"github.com/matzehuels/fontify/pkg/style"
	"github.com/matzehuels/fontify/pkg/symbols"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	inputStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorCyan).Padding(0, 1)
	inputBlurredStyle = inputStyle.BorderForeground(colorDim)
)

// placeholderInterval is how long each preview word shows while the
// input is empty.
const placeholderInterval = 2 * time.Second

// tuiCommand creates the interactive generator command.
func (c *CLI) tuiCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "tui [text...]",
		Short: "Interactive generator",
		Long: `Interactive generator: type text and watch it rendered in every style.

  typing        edit the text          esc        switch between text and list
  ↑/↓ pgup/pgdn move through styles    enter      copy the selected style
  tab/shift+tab change category        ctrl+p, p  pin or unpin (p in list)
  ctrl+d        next decoration        ctrl+t     next case
  ctrl+r        next readability       ctrl+c, q  quit (q in list)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			opts, _, seed := c.options(&flags)
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			runner, err := c.newRunner(seed)
			if err != nil {
				return err
			}

			m := newGeneratorModel(cmd.Context(), runner, c.newStore(), opts, text)
			m.pinned = c.loadState(cmd).Pinned
			m.copy = func(s string) error { return copyToClipboard(cmd.ErrOrStderr(), s) }
			m.refresh()

			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			if err != nil && cmd.Context().Err() != nil {
				return cmd.Context().Err()
			}
			return err
		},
	}
	flags.register(cmd, true)
	return cmd
}

// =============================================================================
// generatorModel - Interactive text styling
// =============================================================================

type focus int

const (
	focusInput focus = iota
	focusList
)

// generatorModel is the bubbletea model behind "fontify tui".
type generatorModel struct {
	ctx    context.Context
	runner *pipeline.Runner
	store  *state.FileStore
	copy   func(string) error

	input       []rune
	opts        pipeline.Options
	pinned      []string
	placeholder int

	result *pipeline.Result
	cursor int
	offset int
	height int
	width  int
	focus  focus
	status string
}

type placeholderTickMsg struct{}

type copiedMsg struct {
	name string
	err  error
}

type pinnedMsg struct {
	id     string
	pinned bool
	err    error
}

func newGeneratorModel(ctx context.Context, runner *pipeline.Runner, store *state.FileStore, opts pipeline.Options, text string) *generatorModel {
	return &generatorModel{
		ctx:    ctx,
		runner: runner,
		store:  store,
		copy:   func(string) error { return nil },
		input:  []rune(text),
		opts:   opts,
		height: 12,
		width:  80,
	}
}

func (m *generatorModel) Init() tea.Cmd {
	return placeholderTick()
}

func placeholderTick() tea.Cmd {
	return tea.Tick(placeholderInterval, func(time.Time) tea.Msg { return placeholderTickMsg{} })
}

// refresh re-runs the pipeline for the current text and settings.
func (m *generatorModel) refresh() {
	opts := m.opts
	opts.Pinned = m.pinned
	opts.Placeholder = m.placeholder
	res, err := m.runner.Run(m.ctx, string(m.input), opts)
	if err != nil {
		m.status = errors.UserMessage(err)
		return
	}
	m.result = res
	if m.cursor >= len(res.Items) {
		m.cursor = max(len(res.Items)-1, 0)
	}
	m.scroll()
}

func (m *generatorModel) scroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

func (m *generatorModel) selected() (pipeline.Item, bool) {
	if m.result == nil || m.cursor >= len(m.result.Items) {
		return pipeline.Item{}, false
	}
	return m.result.Items[m.cursor], true
}

func (m *generatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = max(msg.Height-12, 3)
		m.scroll()

	case placeholderTickMsg:
		if len(m.input) == 0 {
			m.placeholder = (m.placeholder + 1) % symbols.Placeholders()
			m.refresh()
		}
		return m, placeholderTick()

	case copiedMsg:
		if msg.err != nil {
			m.status = "copy failed: " + errors.UserMessage(msg.err)
		} else {
			m.status = "Copied " + msg.name
		}

	case pinnedMsg:
		if msg.err != nil {
			m.status = "pin failed: " + errors.UserMessage(msg.err)
			break
		}
		if msg.pinned {
			m.pinned = append(m.pinned, msg.id)
			m.status = "Pinned " + msg.id
		} else {
			m.pinned = slices.DeleteFunc(m.pinned, func(id string) bool { return id == msg.id })
			m.status = "Unpinned " + msg.id
		}
		m.refresh()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *generatorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.focus == focusInput {
			m.focus = focusList
		} else {
			m.focus = focusInput
		}
		return m, nil
	case "up":
		m.move(-1)
		return m, nil
	case "down":
		m.move(1)
		return m, nil
	case "pgup":
		m.move(-m.height)
		return m, nil
	case "pgdown":
		m.move(m.height)
		return m, nil
	case "tab", "shift+tab":
		m.cycleCategory(msg.String() == "tab")
		return m, nil
	case "ctrl+d":
		m.opts.Decoration = m.opts.Decoration.Next(m.opts.Category)
		m.refresh()
		return m, nil
	case "ctrl+t":
		m.opts.Case = next(convert.Cases(), m.opts.Case)
		m.refresh()
		return m, nil
	case "ctrl+r":
		m.opts.MinReadability = next(
			[]style.Readability{style.ReadabilityLow, style.ReadabilityMedium, style.ReadabilityHigh},
			m.opts.MinReadability)
		m.refresh()
		return m, nil
	case "ctrl+p":
		return m, m.togglePin()
	case "enter":
		return m, m.copySelected()
	}

	if m.focus == focusList {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "k":
			m.move(-1)
		case "j":
			m.move(1)
		case "p":
			return m, m.togglePin()
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		m.input = append(m.input, msg.Runes...)
		if msg.Type == tea.KeySpace && len(msg.Runes) == 0 {
			m.input = append(m.input, ' ')
		}
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeyCtrlU:
		m.input = nil
	default:
		return m, nil
	}
	m.status = ""
	m.refresh()
	return m, nil
}

func (m *generatorModel) move(delta int) {
	if m.result == nil || len(m.result.Items) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.result.Items)-1)
	m.scroll()
}

func (m *generatorModel) cycleCategory(forward bool) {
	cats := style.Categories()
	i := slices.Index(cats, m.opts.Category)
	if forward {
		i = (i + 1) % len(cats)
	} else {
		i = (i - 1 + len(cats)) % len(cats)
	}
	m.opts.Category = cats[i]
	// Keep the decoration only if the new category offers it.
	if !slices.Contains(style.DecorationsFor(m.opts.Category), m.opts.Decoration) {
		m.opts.Decoration = style.DecorationNone
	}
	m.cursor, m.offset = 0, 0
	m.refresh()
}

func (m *generatorModel) togglePin() tea.Cmd {
	it, ok := m.selected()
	if !ok {
		return nil
	}
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		pinned, err := store.TogglePin(ctx, it.ID)
		return pinnedMsg{id: it.ID, pinned: pinned, err: err}
	}
}

// copySelected copies the selected rendering. In the zero state there is
// nothing of the user's to copy.
func (m *generatorModel) copySelected() tea.Cmd {
	it, ok := m.selected()
	if !ok || m.result.Placeholder || it.Output == "" {
		m.status = "type something first"
		return nil
	}
	ctx, store, copyFn := m.ctx, m.store, m.copy
	return func() tea.Msg {
		if err := copyFn(it.Output); err != nil {
			return copiedMsg{err: err}
		}
		if err := store.AddHistory(ctx, it.Output); err != nil {
			return copiedMsg{name: it.Name, err: err}
		}
		return copiedMsg{name: it.Name}
	}
}

func next[T comparable](cycle []T, cur T) T {
	i := slices.Index(cycle, cur)
	return cycle[(i+1)%len(cycle)]
}

// =============================================================================
// View
// =============================================================================

func (m *generatorModel) View() string {
	var b strings.Builder

	title := "fontify"
	if m.result != nil {
		title += " · " + m.result.Category.Label()
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")

	box := inputStyle
	if m.focus == focusList {
		box = inputBlurredStyle
	}
	text := string(m.input)
	if text == "" {
		text = listDimStyle.Render(symbols.Placeholder(m.placeholder))
	} else if m.focus == focusInput {
		text += "▏"
	}
	b.WriteString(box.Width(max(m.width-4, 20)).Render(text))
	b.WriteString("\n")

	b.WriteString(listDimStyle.Render(fmt.Sprintf("case %s · decoration %s · readability %s",
		m.opts.Case, styleDecoration.Render(string(m.opts.Decoration)), m.opts.MinReadability)))
	b.WriteString("\n\n")

	if m.result != nil {
		end := min(m.offset+m.height, len(m.result.Items))
		nameWidth := 26
		outWidth := max(m.width-nameWidth-6, 10)
		for i := m.offset; i < end; i++ {
			it := m.result.Items[i]
			cursor := "  "
			if i == m.cursor {
				cursor = "▸ "
			}
			pin := " "
			if it.Pinned {
				pin = stylePin.Render(iconPin)
			}
			name := runewidth.FillRight(runewidth.Truncate(it.Name, nameWidth, "…"), nameWidth)
			line := cursor + pin + " " + name + " " + truncate(it.Output, outWidth)
			if i == m.cursor {
				b.WriteString(listSelectedStyle.Render(line))
			} else {
				b.WriteString(listNormalStyle.Render(line))
			}
			b.WriteString("\n")
		}
		if len(m.result.Items) == 0 {
			b.WriteString(listDimStyle.Render("  no styles match"))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", min(m.cursor+1, len(m.result.Items)), len(m.result.Items))))
	}

	if m.status != "" {
		b.WriteString("  ")
		b.WriteString(StyleSuccess.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("esc focus  ⏎ copy  tab category  ctrl+d decoration  ctrl+t case  ctrl+r readability  ctrl+p pin  ctrl+c quit"))

	return b.String()
}
