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
package browse

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"github.com/charmbracelet/lipgloss"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

var (
	accent = lipgloss.Color("#7C5CFF")
	muted  = lipgloss.Color("245")

	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(accent)
	mutedStyle     = lipgloss.NewStyle().Foreground(muted)
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(muted)
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(accent)
	categoryStyle  = lipgloss.NewStyle().Bold(true)
	cursorStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	commandStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#60A5FA"))
	permStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	highlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(accent)
	latestStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(accent).Padding(0, 1)
	emptyStyle     = lipgloss.NewStyle().Foreground(muted).Italic(true).PaddingTop(1)
)

// changeColors maps feed color names onto terminal colors.
var changeColors = map[string]lipgloss.Color{
	"blue":   lipgloss.Color("#3B82F6"),
	"green":  lipgloss.Color("#22C55E"),
	"purple": lipgloss.Color("#A855F7"),
	"red":    lipgloss.Color("#EF4444"),
	"gray":   lipgloss.Color("#6B7280"),
}

func changeStyle(color string) lipgloss.Style {
	c, ok := changeColors[color]
	if !ok {
		c = muted
	}
	return lipgloss.NewStyle().Foreground(c)
}

////////////////////////////////////////////////////////////////////////////////////////////////////
