package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mhennig/kalender/internal/cli/formatter"
	"github.com/mhennig/kalender/internal/domain"
)

// editorKeys are the list editor key bindings.
type editorKeys struct {
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Delete key.Binding
	Quit   key.Binding
}

var defaultEditorKeys = editorKeys{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Delete: key.NewBinding(key.WithKeys("x", "d"), key.WithHelp("x", "delete")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// itemsLoadedMsg carries a freshly loaded option list.
type itemsLoadedMsg struct {
	items []string
	err   error
}

// mutationDoneMsg signals a completed add or remove.
type mutationDoneMsg struct {
	status string
	err    error
}

// editorModel is a bubbletea model that edits one option list in place.
type editorModel struct {
	app   *App
	kind  domain.OptionKind
	title string
	keys  editorKeys

	items  []string
	cursor int

	input  textinput.Model
	adding bool

	status string
	err    error
}

func newEditorModel(app *App, kind domain.OptionKind) editorModel {
	input := textinput.New()
	input.Placeholder = "new entry"
	input.CharLimit = 80

	return editorModel{
		app:   app,
		kind:  kind,
		title: optionListTitles[kind],
		keys:  defaultEditorKeys,
		input: input,
	}
}

func (m editorModel) Init() tea.Cmd {
	return m.loadItems()
}

func (m editorModel) loadItems() tea.Cmd {
	app, kind := m.app, m.kind
	return func() tea.Msg {
		items, err := app.Settings.Options(context.Background(), kind)
		return itemsLoadedMsg{items: items, err: err}
	}
}

func (m editorModel) addItem(value string) tea.Cmd {
	app, kind := m.app, m.kind
	return func() tea.Msg {
		if err := app.Settings.AddOption(context.Background(), kind, value); err != nil {
			return mutationDoneMsg{err: err}
		}
		return mutationDoneMsg{status: fmt.Sprintf("added %q", value)}
	}
}

func (m editorModel) removeItem(index int) tea.Cmd {
	app, kind := m.app, m.kind
	return func() tea.Msg {
		removed, err := app.Settings.RemoveOptionAt(context.Background(), kind, index)
		if err != nil {
			return mutationDoneMsg{err: err}
		}
		return mutationDoneMsg{status: fmt.Sprintf("removed %q", removed)}
	}
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case itemsLoadedMsg:
		m.err = msg.err
		m.items = msg.items
		if m.cursor >= len(m.items) {
			m.cursor = len(m.items) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case mutationDoneMsg:
		m.err = msg.err
		m.status = msg.status
		return m, m.loadItems()

	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		return m.updateBrowsing(msg)
	}

	return m, nil
}

func (m editorModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Add):
		m.adding = true
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Delete):
		if len(m.items) > 0 {
			return m, m.removeItem(m.cursor)
		}
	}
	return m, nil
}

func (m editorModel) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		m.adding = false
		m.input.Blur()
		if value == "" {
			return m, nil
		}
		return m, m.addItem(value)

	case tea.KeyEsc:
		m.adding = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m editorModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header(m.title))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(formatter.Dim("(empty)") + "\n")
	}
	for i, item := range m.items {
		cursor := "  "
		line := formatter.StyleFg.Render(item)
		if i == m.cursor && !m.adding {
			cursor = formatter.StyleHeader.Render("▸ ")
			line = formatter.Bold(item)
		}
		b.WriteString(cursor + line + "\n")
	}

	if m.adding {
		b.WriteString("\n" + m.input.View() + "\n")
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render(m.err.Error()) + "\n")
	case m.status != "":
		b.WriteString(formatter.Dim(m.status) + "\n")
	}

	help := []string{}
	for _, binding := range []key.Binding{m.keys.Up, m.keys.Down, m.keys.Add, m.keys.Delete, m.keys.Quit} {
		h := binding.Help()
		help = append(help, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	b.WriteString(formatter.Dim(strings.Join(help, " · ")) + "\n")

	return b.String()
}
