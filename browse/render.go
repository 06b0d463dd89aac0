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
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/DanielRivasMD/Razor/catalog"
	"github.com/DanielRivasMD/Razor/feed"
	"github.com/DanielRivasMD/Razor/glyph"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

func renderHeader(sec catalog.Section, expanded, selected bool) string {
	marker, arrow := "  ", "▸"
	if selected {
		marker = cursorStyle.Render("› ")
	}
	if expanded {
		arrow = "▾"
	}
	return fmt.Sprintf("%s%s %s %s %s",
		marker,
		arrow,
		glyph.Lookup(sec.Category.Icon),
		categoryStyle.Render(sec.Category.Name),
		mutedStyle.Render(fmt.Sprintf("(%d commands) %s", len(sec.Commands), sec.Category.Description)),
	)
}

// renderCommand returns the lines of one command. Its first line is the anchor.
func renderCommand(cmd catalog.Command, lit bool) []string {
	name := commandStyle.Render(cmd.Name)
	if lit {
		name = highlightStyle.Render(cmd.Name)
	}

	lines := []string{fmt.Sprintf("      %s  %s", name, cmd.Description)}
	if len(cmd.Permissions) > 0 {
		lines = append(lines, "        "+permStyle.Render(glyph.Lookup("shield")+" "+strings.Join(cmd.Permissions, ", ")))
	}
	lines = append(lines, "        "+mutedStyle.Render("usage: "+cmd.Usage))
	for _, ex := range cmd.Examples {
		lines = append(lines, "        "+mutedStyle.Render("e.g.  "+ex))
	}
	return lines
}

func renderFeed(entries []feed.Entry, width int) string {
	if len(entries) == 0 {
		return emptyStyle.Render("No updates yet.")
	}

	body := lipgloss.NewStyle().Width(max(20, width-4))
	var blocks []string
	for _, e := range entries {
		head := fmt.Sprintf("%s %s %s %s",
			glyph.Lookup(e.Icon),
			categoryStyle.Render(e.Title),
			mutedStyle.Render(e.Version),
			mutedStyle.Render(glyph.Lookup("clock")+" "+e.Date),
		)
		if e.Latest {
			head += " " + latestStyle.Render("Latest")
		}

		lines := []string{head}
		if e.Description != "" {
			lines = append(lines, body.Render(e.Description))
		}
		for _, ch := range e.Changes {
			st := feed.StyleFor(ch.Type)
			lines = append(lines, fmt.Sprintf("  %s %s",
				changeStyle(st.Color).Render(glyph.Lookup(st.Icon)+" "+string(ch.Type.Kind())),
				ch.Description,
			))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

////////////////////////////////////////////////////////////////////////////////////////////////////
