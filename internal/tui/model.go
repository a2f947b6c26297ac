// Package tui is a terminal service directory browser built on bubbletea.
package tui

import (
	"fmt"
	"strings"

	"service_directory"
	"service_directory/internal/directory"
	"service_directory/internal/service"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type focus int

const (
	focusSearch focus = iota
	focusResults
	focusFilters
)

// Model is the browser state. Every interaction becomes a session event, so
// the listing always reflects the current filter state.
type Model struct {
	session *service.ViewSession
	view    service_directory.DirectoryView

	input  textinput.Model
	keys   KeyMap
	styles Styles

	focus        focus
	cursor       int
	filterCursor int
	err          error
	width        int
}

// New creates a browser over an open view session.
func New(session *service.ViewSession) Model {
	ti := textinput.New()
	ti.Placeholder = "Search services..."
	ti.CharLimit = 128
	ti.Width = 40
	ti.Focus()

	return Model{
		session: session,
		view:    session.View(),
		input:   ti,
		keys:    DefaultKeyMap(),
		styles:  DefaultStyles(),
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles one message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case m.view.Selected != nil:
		// the detail overlay swallows everything but closing it
		if key.Matches(msg, m.keys.Back, m.keys.Select) {
			m.apply(directory.Event{Type: directory.EventDismiss})
		}
		return m, nil
	case key.Matches(msg, m.keys.Focus):
		m.setFocus((m.focus + 1) % 3)
		return m, nil
	case key.Matches(msg, m.keys.Reset):
		m.input.SetValue("")
		m.apply(directory.Event{Type: directory.EventReset})
		return m, nil
	case key.Matches(msg, m.keys.Layout):
		next := service_directory.ViewList
		if m.view.View == service_directory.ViewList {
			next = service_directory.ViewGrid
		}
		m.apply(directory.Event{Type: service.EventView, Value: next})
		return m, nil
	}

	switch m.focus {
	case focusResults:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.cursor = max(0, m.cursor-1)
		case key.Matches(msg, m.keys.Down):
			m.cursor = max(0, min(len(m.view.Services)-1, m.cursor+1))
		case key.Matches(msg, m.keys.Select):
			if len(m.view.Services) > 0 {
				m.apply(directory.Event{Type: directory.EventSelect, Value: m.view.Services[m.cursor].ID})
			}
		case key.Matches(msg, m.keys.Back):
			m.setFocus(focusSearch)
		}
		return m, nil
	case focusFilters:
		tags := m.filterTags()
		switch {
		case key.Matches(msg, m.keys.Up):
			m.filterCursor = max(0, m.filterCursor-1)
		case key.Matches(msg, m.keys.Down):
			m.filterCursor = min(len(tags)-1, m.filterCursor+1)
		case key.Matches(msg, m.keys.Select, m.keys.Toggle):
			m.apply(directory.Event{Type: directory.EventToggleFilter, Value: tags[m.filterCursor]})
		case key.Matches(msg, m.keys.Back):
			m.setFocus(focusSearch)
		}
		return m, nil
	}

	// search box
	if key.Matches(msg, m.keys.Select, m.keys.Down) {
		m.setFocus(focusResults)
		return m, nil
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.apply(directory.Event{Type: directory.EventSearch, Value: m.input.Value()})
	}
	return m, cmd
}

func (m *Model) apply(ev directory.Event) {
	m.view, m.err = m.session.Apply(ev)
	if m.cursor >= len(m.view.Services) {
		m.cursor = max(0, len(m.view.Services)-1)
	}
}

func (m *Model) setFocus(f focus) {
	m.focus = f
	if f == focusSearch {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m Model) filterTags() []string {
	var tags []string
	for _, g := range m.view.FilterGroups {
		for _, o := range g.Options {
			tags = append(tags, o.Tag)
		}
	}
	return tags
}

// View renders the browser.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.view.Heading))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render(m.view.Subheading))
	b.WriteString("\n\n")

	if m.view.Selected != nil {
		b.WriteString(m.renderDetail(*m.view.Selected))
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("esc/enter close • ctrl+c quit"))
		return b.String()
	}

	b.WriteString(m.box(focusSearch).Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.styles.Count.Render(fmt.Sprintf("%s • %s view", m.view.CountLabel, m.view.View)))
	b.WriteString("\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.box(focusResults).Render(m.renderResults()),
		m.box(focusFilters).Render(m.renderFilters()),
	))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.styles.Error.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("tab focus • enter details/toggle • ctrl+l grid/list • ctrl+r reset • ctrl+c quit"))
	return b.String()
}

func (m Model) box(f focus) lipgloss.Style {
	if m.focus == f {
		return m.styles.Focused
	}
	return m.styles.Blurred
}

func (m Model) renderResults() string {
	if len(m.view.Services) == 0 {
		return m.styles.Count.Render("No services match.")
	}
	var b strings.Builder
	for i, card := range m.view.Services {
		line := card.Name
		if card.Popular {
			line += " ★"
		}
		if i == m.cursor && m.focus == focusResults {
			b.WriteString(m.styles.Cursor.Render("> " + line))
		} else {
			b.WriteString(m.styles.Item.Render(line))
		}
		b.WriteString("\n")
		if len(card.Features) > 0 {
			b.WriteString(m.styles.Feature.Render(strings.Join(card.Features, " · ")))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderFilters() string {
	var b strings.Builder
	i := 0
	for _, g := range m.view.FilterGroups {
		b.WriteString(m.styles.Group.Render(g.Name))
		b.WriteString("\n")
		for _, o := range g.Options {
			mark := "[ ]"
			if o.Checked {
				mark = "[x]"
			}
			line := mark + " " + o.Tag
			if i == m.filterCursor && m.focus == focusFilters {
				b.WriteString(m.styles.Cursor.Render(line))
			} else {
				b.WriteString(m.styles.Item.Render(line))
			}
			b.WriteString("\n")
			i++
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderDetail(d service_directory.ServiceDetail) string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(d.Name))
	b.WriteString("\n")
	b.WriteString(d.Description)
	b.WriteString("\n\n")
	if d.Price != "" {
		b.WriteString("Price: " + d.Price + "\n")
	}
	if d.TimeEstimate != "" {
		b.WriteString("Time estimate: " + d.TimeEstimate + "\n")
	}
	if len(d.Features) > 0 {
		b.WriteString("\nFeatures:\n")
		for _, f := range d.Features {
			b.WriteString("  • " + f + "\n")
		}
	}
	return m.styles.Detail.Render(strings.TrimRight(b.String(), "\n"))
}
