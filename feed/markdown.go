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
package feed

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

// WriteMarkdown emits the feed as a changelog document, newest first.
func WriteMarkdown(w io.Writer, updates []Update) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# Changelog")
	for _, e := range Entries(updates) {
		fmt.Fprintln(bw)

		heading := e.Version
		if e.Title != "" {
			heading += " - " + e.Title
		}
		if e.Date != "" {
			heading += " (" + e.Date + ")"
		}
		if e.Latest {
			heading += " `latest`"
		}
		fmt.Fprintf(bw, "## %s\n", heading)

		if desc := strings.TrimSpace(e.Description); desc != "" {
			fmt.Fprintf(bw, "\n%s\n", desc)
		}
		if len(e.Changes) > 0 {
			fmt.Fprintln(bw)
		}
		for _, c := range e.Changes {
			fmt.Fprintf(bw, "- **%s** %s\n", c.Type.Kind(), c.Description)
		}
	}

	return bw.Flush()
}

////////////////////////////////////////////////////////////////////////////////////////////////////
