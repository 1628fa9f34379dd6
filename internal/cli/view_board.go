package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/davidmoss/plank/internal/cli/formatter"
	"github.com/davidmoss/plank/internal/domain"
)

// column is one droppable board region. Its status is fixed at construction
// and determines both which projects it lists and the status applied when a
// carried card is dropped on it.
type column struct {
	status domain.Status
	items  []domain.Project
}

// apply is the column's store listener: it discards the previous view and
// re-derives the filtered list from the full snapshot.
func (c *column) apply(snapshot []domain.Project) {
	c.items = c.items[:0]
	for _, p := range snapshot {
		if p.Status == c.status {
			c.items = append(c.items, p)
		}
	}
}

const noColumn = -1

// carryState is the card side of the move protocol: grabbing a card
// attaches its project ID as the payload, which travels with column focus
// until it is dropped on a column or the carry is cancelled.
type carryState struct {
	active    bool
	payload   string // carried project ID
	title     string
	accepting int // column currently marked as the drop target
}

// boardView renders the two status columns and runs the grab/carry/drop
// protocol between them.
type boardView struct {
	state   *SharedState
	columns [2]*column
	focus   int
	cursor  [2]int
	carry   carryState
}

func newBoardView(state *SharedState) *boardView {
	v := &boardView{
		state: state,
		carry: carryState{accepting: noColumn},
	}
	v.columns[0] = &column{status: domain.StatusActive}
	v.columns[1] = &column{status: domain.StatusFinished}

	// Each column subscribes independently and filters every snapshot by
	// its own status. The store may already hold seeded projects, so apply
	// the current snapshot up front as well.
	for _, c := range v.columns {
		state.App.Store.Subscribe(c.apply)
		c.apply(state.App.Store.Snapshot())
	}

	return v
}

func (v *boardView) ID() ViewID    { return ViewBoard }
func (v *boardView) Title() string { return "Board" }

func (v *boardView) ShortHelp() []key.Binding {
	if v.carry.active {
		return []key.Binding{
			key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "aim")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new project")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "grab")),
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "column")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *boardView) Init() tea.Cmd { return nil }

func (v *boardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if v.cursor[v.focus] > 0 {
			v.cursor[v.focus]--
		}
	case "down", "j":
		if v.cursor[v.focus] < len(v.columns[v.focus].items)-1 {
			v.cursor[v.focus]++
		}
	case "left", "h":
		v.focusColumn(0)
	case "right", "l":
		v.focusColumn(1)
	case "tab":
		v.focusColumn(1 - v.focus)
	case "enter", " ":
		if v.carry.active {
			return v, v.drop()
		}
		v.grab()
	case "esc":
		// Carry ends without a status change.
		if v.carry.active {
			v.carry = carryState{accepting: noColumn}
		}
	case "n":
		if !v.carry.active {
			return v, pushView(newProjectFormView(v.state))
		}
	}

	return v, nil
}

// focusColumn moves column focus. While carrying, entering a column marks
// it as the accepting drop target; the mark on the previous column clears
// unconditionally on leave.
func (v *boardView) focusColumn(i int) {
	v.focus = i
	if v.carry.active {
		v.carry.accepting = i
	}
	v.clampCursor(i)
}

// grab picks up the card under the cursor, attaching its ID as the payload.
func (v *boardView) grab() {
	v.clampCursor(v.focus)
	items := v.columns[v.focus].items
	if len(items) == 0 {
		return
	}
	p := items[v.cursor[v.focus]]
	v.carry = carryState{
		active:    true,
		payload:   p.ID,
		title:     p.Title,
		accepting: v.focus,
	}
}

// drop hands the carried ID to the store with the target column's status.
// Both columns observe the change via their subscriptions before this
// returns. The accepting mark is cleared here too, not only on leave.
func (v *boardView) drop() tea.Cmd {
	target := v.columns[v.focus]
	title := v.carry.title

	v.state.App.Store.Move(v.carry.payload, target.status)

	v.carry = carryState{accepting: noColumn}
	v.clampCursor(0)
	v.clampCursor(1)

	return statusCmd(formatter.StyleGreen.Render("✔") + " " +
		formatter.Bold(title) + formatter.Dim(" → "+target.status.Label()))
}

func (v *boardView) clampCursor(i int) {
	if v.cursor[i] > len(v.columns[i].items)-1 {
		v.cursor[i] = len(v.columns[i].items) - 1
	}
	if v.cursor[i] < 0 {
		v.cursor[i] = 0
	}
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *boardView) View() string {
	colWidth := (v.state.Width - 6) / 2
	if colWidth < 24 {
		colWidth = 24
	}
	if colWidth > 44 {
		colWidth = 44
	}

	cols := make([]string, 0, len(v.columns))
	for i, c := range v.columns {
		cols = append(cols, v.renderColumn(i, c, colWidth))
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	footer := ""
	if v.carry.active {
		footer = "\n " + formatter.StyleYellow.Render("⇅ ") +
			formatter.Bold(v.carry.title) +
			formatter.Dim("  carried — aim with ←/→, drop with enter")
	}

	return "\n" + board + footer
}

func (v *boardView) renderColumn(i int, c *column, width int) string {
	focused := v.focus == i
	accepting := v.carry.active && v.carry.accepting == i

	headStyle := formatter.StyleDim
	if focused {
		headStyle = formatter.StyleHeader
	}
	head := headStyle.Render(strings.ToUpper(c.status.Label())) + " " +
		formatter.StatusStyle(c.status).Render(fmt.Sprintf("(%d)", len(c.items)))
	if accepting {
		head += " " + formatter.StyleYellow.Render("▾ drop")
	}

	lines := []string{head, ""}
	if len(c.items) == 0 {
		lines = append(lines, formatter.Dim("  — empty —"))
	}
	for j, p := range c.items {
		lines = append(lines, v.renderCard(i, j, p, width-4)...)
	}

	borderColor := formatter.ColorDim
	if accepting {
		borderColor = formatter.ColorYellow
	} else if focused {
		borderColor = formatter.ColorHeader
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(width).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

func (v *boardView) renderCard(col, row int, p domain.Project, width int) []string {
	cursor := "  "
	titleStyle := formatter.StyleFg
	if v.focus == col && v.cursor[col] == row {
		cursor = formatter.StyleGreen.Render("▸ ")
		titleStyle = formatter.StyleBold
	}
	if v.carry.active && v.carry.payload == p.ID {
		cursor = formatter.StyleYellow.Render("⇅ ")
		titleStyle = formatter.StyleYellow
	}

	meta := p.PeopleLabel()
	if p.Description != "" {
		meta += " · " + p.Description
	}

	return []string{
		cursor + titleStyle.Render(formatter.Truncate(p.Title, width)),
		"  " + formatter.Dim(formatter.Truncate(meta, width)),
	}
}
