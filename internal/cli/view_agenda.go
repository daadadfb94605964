package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dfontes/prazo/internal/cli/formatter"
	"github.com/dfontes/prazo/internal/domain"
	"github.com/dfontes/prazo/internal/engine"
)

// agendaFilterCycle is the tab order of filters in the interactive agenda.
var agendaFilterCycle = []domain.FilterKind{
	domain.FilterOverdue,
	domain.FilterDueToday,
	domain.FilterFuture,
	domain.FilterReport,
	domain.FilterAll,
	domain.FilterCompleted,
	domain.FilterPending,
}

// agendaLoadedMsg signals that the task rows for the current filter arrived.
type agendaLoadedMsg struct {
	rows []engine.AnnotatedTask
	err  error
}

// agendaActionMsg signals the outcome of a mutate action (toggle/delete).
type agendaActionMsg struct {
	status string
	err    error
}

// agendaModel browses annotated tasks with cursor navigation, filter
// cycling and inline complete/reopen/delete.
type agendaModel struct {
	app     *App
	scope   engine.Scope
	kind    domain.FilterKind
	date    string
	rows    []engine.AnnotatedTask
	cursor  int
	loading bool
	status  string
	err     error

	keyUp     key.Binding
	keyDown   key.Binding
	keyToggle key.Binding
	keyDelete key.Binding
	keyFilter key.Binding
	keyReload key.Binding
	keyQuit   key.Binding
}

func newAgendaModel(app *App, scope engine.Scope, kind domain.FilterKind, date string) *agendaModel {
	return &agendaModel{
		app:     app,
		scope:   scope,
		kind:    kind,
		date:    date,
		loading: true,

		keyUp:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		keyDown:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		keyToggle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle done")),
		keyDelete: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		keyFilter: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next filter")),
		keyReload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		keyQuit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (m *agendaModel) Init() tea.Cmd {
	return m.load()
}

func (m *agendaModel) load() tea.Cmd {
	scope, kind, date := m.scope, m.kind, m.date
	return func() tea.Msg {
		rows, err := m.app.Query.FilterTasks(context.Background(), scope, kind, date)
		return agendaLoadedMsg{rows: rows, err: err}
	}
}

func (m *agendaModel) toggle(row engine.AnnotatedTask) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if row.Completed {
			if err := m.app.Tasks.Reopen(ctx, row.ClientCode, row.ID); err != nil {
				return agendaActionMsg{err: err}
			}
			return agendaActionMsg{status: "Task reopened."}
		}
		if err := m.app.Tasks.Complete(ctx, row.ClientCode, row.ID); err != nil {
			return agendaActionMsg{err: err}
		}
		return agendaActionMsg{status: "Task completed."}
	}
}

func (m *agendaModel) remove(row engine.AnnotatedTask) tea.Cmd {
	return func() tea.Msg {
		if err := m.app.Tasks.Delete(context.Background(), row.ClientCode, row.ID); err != nil {
			return agendaActionMsg{err: err}
		}
		return agendaActionMsg{status: "Task deleted."}
	}
}

func (m *agendaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case agendaLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.rows = msg.rows
		if m.cursor >= len(m.rows) {
			m.cursor = len(m.rows) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case agendaActionMsg:
		m.err = msg.err
		m.status = msg.status
		if msg.err == nil {
			m.loading = true
			return m, m.load()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyQuit):
			return m, tea.Quit
		case key.Matches(msg, m.keyUp):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keyDown):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keyFilter):
			m.kind = nextFilter(m.kind)
			m.status = ""
			m.loading = true
			return m, m.load()
		case key.Matches(msg, m.keyReload):
			m.status = ""
			m.loading = true
			return m, m.load()
		case key.Matches(msg, m.keyToggle):
			if m.cursor < len(m.rows) {
				return m, m.toggle(m.rows[m.cursor])
			}
		case key.Matches(msg, m.keyDelete):
			if m.cursor < len(m.rows) {
				return m, m.remove(m.rows[m.cursor])
			}
		}
	}
	return m, nil
}

func nextFilter(kind domain.FilterKind) domain.FilterKind {
	for i, k := range agendaFilterCycle {
		if k == kind {
			return agendaFilterCycle[(i+1)%len(agendaFilterCycle)]
		}
	}
	return agendaFilterCycle[0]
}

func (m *agendaModel) View() string {
	var b strings.Builder

	title := formatter.FilterTitles[m.kind]
	if m.date != "" {
		title = fmt.Sprintf("%s on %s", title, domain.FormatDateBR(m.date))
	}
	b.WriteString(formatter.StyleHeader.Render(title) + "\n\n")

	switch {
	case m.loading:
		b.WriteString(formatter.Dim("Loading…") + "\n")
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	case len(m.rows) == 0:
		b.WriteString(formatter.Dim("No tasks found for this filter.") + "\n")
	default:
		now := m.app.now()
		for i, row := range m.rows {
			cursor := "  "
			if i == m.cursor {
				cursor = formatter.StyleHeader.Render("> ")
			}
			status := engine.Classify(row.Task, now)
			due := domain.FormatDateBR(row.DueDate)
			if row.DueTime != "" {
				due += " " + row.DueTime
			}
			line := fmt.Sprintf("%s%s  %s  %s  %s",
				cursor,
				formatter.StatusPill(status),
				formatter.StatusColor(status).Render(due),
				formatter.Bold(row.ClientCode),
				formatter.StyleFg.Render(row.Description),
			)
			b.WriteString(line + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + formatter.StyleGreen.Render(m.status) + "\n")
	}

	help := []key.Binding{m.keyToggle, m.keyDelete, m.keyFilter, m.keyReload, m.keyQuit}
	parts := make([]string, 0, len(help))
	for _, h := range help {
		parts = append(parts, fmt.Sprintf("%s %s", h.Help().Key, h.Help().Desc))
	}
	b.WriteString("\n" + formatter.Dim(strings.Join(parts, " · ")) + "\n")
	return b.String()
}

// runAgendaView starts the interactive agenda browser.
func runAgendaView(app *App, scope engine.Scope, kind domain.FilterKind, date string) error {
	if kind == domain.FilterAll && date == "" {
		kind = domain.FilterDueToday
	}
	_, err := tea.NewProgram(newAgendaModel(app, scope, kind, date)).Run()
	return err
}
