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
package cmd

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/ttacon/chalk"

	"github.com/DanielRivasMD/Razor/feed"
	"github.com/DanielRivasMD/Razor/glyph"
	"github.com/DanielRivasMD/Razor/view"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

const (
	formatTable    = "table"
	formatMarkdown = "markdown"
	formatCSV      = "csv"
)

var formats = []string{formatTable, formatMarkdown, formatCSV}

func completeFormat(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return formats, cobra.ShellCompDirectiveNoFileComp
}

func checkFormat(format string) error {
	if !lo.Contains(formats, format) {
		return fmt.Errorf("unknown format %q, expected one of %s", format, strings.Join(formats, ", "))
	}
	return nil
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// rowMarks is the printed catalogue as a reveal surface: only rows of
// expanded categories exist, and a highlighted row gets a marker.
type rowMarks struct {
	rows map[string]bool
	lit  map[string]bool
}

func (r *rowMarks) ScrollIntoView(id string) bool { return r.rows[id] }

func (r *rowMarks) SetHighlight(id string, on bool) { r.lit[id] = on }

////////////////////////////////////////////////////////////////////////////////////////////////////

// writeCatalog prints state s of the catalogue. Collapsed categories print as a
// single summary row; the revealed command is marked with an arrow.
func writeCatalog(w io.Writer, pipe view.Pipeline, s view.State, effects []view.Effect, format string) error {
	if err := checkFormat(format); err != nil {
		return err
	}

	c := pipe.Catalog()
	if pipe.Empty(s) {
		fmt.Fprintln(w, chalk.Red.Color("No Commands Found"))
		fmt.Fprintf(w, "We couldn't find any commands matching %q. Try adjusting your search terms.\n", s.Search())
		return nil
	}

	sections := pipe.Sections(s)
	marks := &rowMarks{rows: make(map[string]bool), lit: make(map[string]bool)}
	for _, sec := range sections {
		if !s.Expanded(sec.Category.Name) {
			continue
		}
		for _, cmd := range sec.Commands {
			marks.rows[cmd.Name] = true
		}
	}
	view.NewHighlighter(view.HighlightDuration).Apply(marks, effects)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Category", "Command", "Description", "Usage", "Permissions"})

	for _, sec := range sections {
		label := fmt.Sprintf("%s %s (%d)", glyph.Lookup(sec.Category.Icon), sec.Category.Name, len(sec.Commands))
		if !s.Expanded(sec.Category.Name) {
			t.AppendRow(table.Row{label, "▸", sec.Category.Description, "", ""})
			t.AppendSeparator()
			continue
		}
		for i, cmd := range sec.Commands {
			cat := ""
			if i == 0 {
				cat = label
			}
			name := cmd.Name
			if marks.lit[cmd.Name] {
				name = "→ " + name
			}
			t.AppendRow(table.Row{cat, name, cmd.Description, cmd.Usage, strings.Join(cmd.Permissions, ", ")})
		}
		t.AppendSeparator()
	}

	switch format {
	case formatMarkdown:
		t.RenderMarkdown()
		return nil
	case formatCSV:
		t.RenderCSV()
		return nil
	}

	t.SetStyle(table.StyleLight)
	t.Render()

	summary := fmt.Sprintf("%d categories · %d commands", len(c.Categories), c.Total())
	if s.Search() != "" {
		summary += fmt.Sprintf(" · %d found", c.Visible(s.Search()))
	}
	fmt.Fprintln(w, chalk.Dim.TextStyle(summary))
	return nil
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// writeFeed prints the update feed newest first. compact keeps the first
// feed.WidgetChanges notes of each entry, like the home page widget.
// Markdown output is the full changelog document and ignores compact.
func writeFeed(w io.Writer, entries []feed.Entry, compact bool, format string) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	if format == formatMarkdown {
		return feed.WriteMarkdown(w, lo.Map(entries, func(e feed.Entry, _ int) feed.Update { return e.Update }))
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "No updates yet.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Version", "Date", "Title", "Changes"})

	for _, e := range entries {
		limit := -1
		if compact {
			limit = feed.WidgetChanges
		}
		shown, more := e.Compact(limit)

		notes := lo.Map(shown, func(ch feed.Change, _ int) string {
			return fmt.Sprintf("%s %s: %s", glyph.Lookup(feed.StyleFor(ch.Type).Icon), ch.Type.Kind(), ch.Description)
		})
		if more > 0 {
			notes = append(notes, fmt.Sprintf("+%d more", more))
		}

		title := glyph.Lookup(e.Icon) + " " + e.Title
		if e.Latest {
			title += " [latest]"
		}
		t.AppendRow(table.Row{e.Version, e.Date, title, strings.Join(notes, "\n")})
		t.AppendSeparator()
	}

	if format == formatCSV {
		t.RenderCSV()
		return nil
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

////////////////////////////////////////////////////////////////////////////////////////////////////
