/*
Copyright © 2025 Daniel Rivas <danielrivasmd@gmail.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

// Package browse is the terminal rendering of the catalogue and update feed.
package browse

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DanielRivasMD/Razor/data"
	"github.com/DanielRivasMD/Razor/feed"
	"github.com/DanielRivasMD/Razor/view"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

type tab int

const (
	tabCommands tab = iota
	tabUpdates
)

// chrome is the number of lines around the viewport: title, tabs, search, blank, help.
const chrome = 5

// expireMsg hands a scheduled highlight removal back to the update loop.
type expireMsg struct {
	exp view.Expiry
}

// ReloadMsg swaps in freshly loaded data. Search, expansion and the found
// command carry over; categories that disappeared simply stop rendering.
type ReloadMsg struct {
	Bundle data.Bundle
}

// Model is the bubbletea program state. It is also the view.Surface the
// highlighter scrolls and marks.
type Model struct {
	title   string
	pipe    view.Pipeline
	entries []feed.Entry
	state   view.State

	hl       *view.Highlighter
	lit      map[string]bool
	schedule func(view.Expiry) tea.Cmd

	keys  keyMap
	help  help.Model
	input textinput.Model
	vp    viewport.Model

	tab     tab
	cursor  int
	anchors map[string]int
	heads   []int
}

// New builds a browser over b. Nothing is expanded until the user opens a
// category or a search finds something.
func New(title string, b data.Bundle) Model {
	in := textinput.New()
	in.Prompt = "🔍 "
	in.Placeholder = "Search commands, descriptions, or usage..."

	m := Model{
		title:   title,
		pipe:    view.NewPipeline(b.Catalog()),
		entries: b.Entries(),
		state:   view.NewState(),
		hl:      view.NewHighlighter(view.HighlightDuration),
		lit:     make(map[string]bool),
		keys:    defaultKeys(),
		help:    help.New(),
		input:   in,
		vp:      viewport.New(80, 20),
	}
	m.schedule = func(exp view.Expiry) tea.Cmd {
		return tea.Tick(exp.After, func(time.Time) tea.Msg { return expireMsg{exp: exp} })
	}
	m.layout()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.vp.Width = msg.Width
		m.vp.Height = max(1, msg.Height-chrome)
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case ReloadMsg:
		m.pipe = view.NewPipeline(msg.Bundle.Catalog())
		m.entries = msg.Bundle.Entries()
		m.layout()
		return m, nil

	case expireMsg:
		if m.hl.Clear(&m, msg.exp) {
			m.layout()
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.forceQuit) {
			return m, tea.Quit
		}
		if m.input.Focused() {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.clear):
		m.input.SetValue("")
		return m, m.dispatch(view.ClearSearch{})
	case key.Matches(msg, m.keys.blur):
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, tea.Batch(cmd, m.dispatch(view.SetSearch{Term: m.input.Value()}))
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.tab):
		if m.tab == tabCommands {
			m.tab = tabUpdates
		} else {
			m.tab = tabCommands
		}
		m.vp.GotoTop()
		m.layout()
		return m, nil
	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.tab != tabCommands {
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.search):
		m.tab = tabCommands
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.clear):
		m.input.SetValue("")
		return m, m.dispatch(view.ClearSearch{})
	case key.Matches(msg, m.keys.up):
		m.moveCursor(-1)
		return m, nil
	case key.Matches(msg, m.keys.down):
		m.moveCursor(1)
		return m, nil
	case key.Matches(msg, m.keys.toggle):
		sections := m.pipe.Sections(m.state)
		if m.cursor < len(sections) {
			return m, m.dispatch(view.ToggleCategory{Name: sections[m.cursor].Category.Name})
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// dispatch runs ev through the pipeline, redraws, and applies reveal effects.
// Each reveal comes back as a scheduled expireMsg.
func (m *Model) dispatch(ev view.Event) tea.Cmd {
	var effects []view.Effect
	m.state, effects = m.pipe.Dispatch(m.state, ev)
	m.layout()

	var cmds []tea.Cmd
	for _, exp := range m.hl.Apply(m, effects) {
		cmds = append(cmds, m.schedule(exp))
	}
	if len(cmds) > 0 {
		m.layout()
	}
	return tea.Batch(cmds...)
}

func (m *Model) moveCursor(delta int) {
	n := len(m.heads)
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), n-1)
	m.layout()

	line := m.heads[m.cursor]
	if line < m.vp.YOffset || line >= m.vp.YOffset+m.vp.Height {
		m.vp.SetYOffset(line)
	}
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// ScrollIntoView centres the line of command id in the viewport.
func (m *Model) ScrollIntoView(id string) bool {
	line, ok := m.anchors[id]
	if !ok {
		return false
	}
	m.vp.SetYOffset(max(0, line-m.vp.Height/2))
	return true
}

func (m *Model) SetHighlight(id string, on bool) {
	if on {
		m.lit[id] = true
		return
	}
	delete(m.lit, id)
}

// Highlighted reports whether id is currently marked.
func (m Model) Highlighted(id string) bool {
	return m.lit[id]
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("  ")
	b.WriteString(mutedStyle.Render(m.counts()))
	b.WriteString("\n")

	for i, name := range []string{"Commands", "Updates"} {
		style := tabStyle
		if tab(i) == m.tab {
			style = activeTabStyle
		}
		b.WriteString(style.Render(name))
	}
	b.WriteString("\n")

	if m.tab == tabCommands {
		b.WriteString(m.input.View())
	}
	b.WriteString("\n\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) counts() string {
	c := m.pipe.Catalog()
	out := fmt.Sprintf("%d categories · %d commands", len(c.Categories), c.Total())
	if m.state.Search() != "" {
		out += fmt.Sprintf(" · %d found", c.Visible(m.state.Search()))
	}
	return out
}

// layout rebuilds the viewport content and the line index of every
// category header and rendered command.
func (m *Model) layout() {
	m.anchors = make(map[string]int)
	m.heads = nil

	if m.tab == tabUpdates {
		m.vp.SetContent(renderFeed(m.entries, m.vp.Width))
		return
	}

	var lines []string
	sections := m.pipe.Sections(m.state)
	if m.cursor >= len(sections) {
		m.cursor = max(0, len(sections)-1)
	}

	for i, sec := range sections {
		expanded := m.state.Expanded(sec.Category.Name)
		m.heads = append(m.heads, len(lines))
		lines = append(lines, renderHeader(sec, expanded, i == m.cursor))

		if !expanded {
			continue
		}
		for _, cmd := range sec.Commands {
			m.anchors[cmd.Name] = len(lines)
			lines = append(lines, renderCommand(cmd, m.lit[cmd.Name])...)
		}
	}

	if m.pipe.Empty(m.state) {
		lines = append(lines,
			emptyStyle.Render(fmt.Sprintf("No Commands Found. Nothing matches %q.", m.state.Search())),
			mutedStyle.Render("Press ctrl+u to clear the search."),
		)
	}

	m.vp.SetContent(strings.Join(lines, "\n"))
}

////////////////////////////////////////////////////////////////////////////////////////////////////
