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
	"strings"

	"github.com/DanielRivasMD/horus"
	"github.com/spf13/cobra"
	"github.com/ttacon/chalk"

	"github.com/DanielRivasMD/Razor/data"
	"github.com/DanielRivasMD/Razor/feed"
	"github.com/DanielRivasMD/Razor/glyph"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

var checkCmd = &cobra.Command{
	Use:     "check",
	Aliases: []string{"lint"},
	Short:   "Validate data files",
	Long:    helpCheck,
	Example: exampleCheck,

	Run: runCheck,
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVarP(&flags.strict, "strict", "", false, "Treat warnings as errors")
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// runCheck relies on openStore for the hard failures: unreadable files,
// unknown keys, duplicate or empty names. What remains are warnings.
func runCheck(cmd *cobra.Command, args []string) {
	b := openStore("check").Current()
	out := cmd.OutOrStdout()

	for _, src := range b.Sources {
		fmt.Fprintf(out, "%s %s\n", chalk.Green.Color("ok"), src)
	}

	warnings := lint(b)
	for _, w := range warnings {
		fmt.Fprintf(out, "%s %s\n", chalk.Yellow.Color("warn"), w)
	}

	c := b.Catalog()
	fmt.Fprintf(out, "%d categories, %d commands, %d updates, %d warnings\n",
		len(c.Categories), c.Total(), len(b.Updates), len(warnings))

	if flags.strict && len(warnings) > 0 {
		horus.CheckErr(
			fmt.Errorf("%d warnings", len(warnings)),
			horus.WithOp("check"),
			horus.WithMessage(fmt.Sprintf("%d warnings in strict mode", len(warnings))),
			horus.WithExitCode(1),
			horus.WithFormatter(func(he *horus.Herror) string { return onelineErr(he.Message) }),
		)
	}
}

// lint flags data that loads but renders poorly.
func lint(b data.Bundle) []string {
	var out []string

	for _, cat := range b.Categories {
		if cat.Icon != "" && !glyph.Known(cat.Icon) {
			out = append(out, fmt.Sprintf("category %q: unknown icon %q", cat.Name, cat.Icon))
		}
		if len(cat.Commands) == 0 {
			out = append(out, fmt.Sprintf("category %q: no commands", cat.Name))
		}
		for _, cmd := range cat.Commands {
			if strings.TrimSpace(cmd.Usage) == "" {
				out = append(out, fmt.Sprintf("command %q: no usage", cmd.Name))
			}
			if strings.TrimSpace(cmd.Description) == "" {
				out = append(out, fmt.Sprintf("command %q: no description", cmd.Name))
			}
		}
	}

	for i, u := range b.Updates {
		id := u.Version
		if id == "" {
			id = fmt.Sprintf("#%d", i)
			out = append(out, fmt.Sprintf("update %s: no version", id))
		}
		if u.Icon != "" && !glyph.Known(u.Icon) {
			out = append(out, fmt.Sprintf("update %s: unknown icon %q", id, u.Icon))
		}
		for _, ch := range u.Changes {
			if ch.Type.Kind() == feed.Other && !strings.EqualFold(strings.TrimSpace(string(ch.Type)), string(feed.Other)) {
				out = append(out, fmt.Sprintf("update %s: change type %q shown as other", id, ch.Type))
			}
		}
	}

	return out
}

////////////////////////////////////////////////////////////////////////////////////////////////////
