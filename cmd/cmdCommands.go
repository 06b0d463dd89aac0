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
	"github.com/DanielRivasMD/horus"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/DanielRivasMD/Razor/catalog"
	"github.com/DanielRivasMD/Razor/view"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

var commandsCmd = &cobra.Command{
	Use:     "commands",
	Aliases: []string{"ls"},
	Short:   "Search & print the command catalogue",
	Long:    helpCommands,
	Example: exampleCommands,

	PreRun: preFormat,
	Run:    runCommands,
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func init() {
	rootCmd.AddCommand(commandsCmd)

	commandsCmd.Flags().StringVarP(&flags.search, "search", "s", "", "Filter by name, description or usage")
	commandsCmd.Flags().StringSliceVarP(&flags.open, "open", "o", nil, "Categories to expand before searching")
	commandsCmd.Flags().BoolVarP(&flags.all, "all", "a", false, "Expand every category")
	commandsCmd.Flags().StringVarP(&flags.format, "format", "F", formatTable, "Output format: table, markdown, csv")

	horus.CheckErr(
		commandsCmd.RegisterFlagCompletionFunc("format", completeFormat),
		horus.WithOp("commands.init"),
		horus.WithMessage("registering completion for flag format"),
	)
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func preFormat(cmd *cobra.Command, args []string) {
	if err := checkFormat(flags.format); err != nil {
		horus.CheckErr(
			err,
			horus.WithOp(cmd.Name()),
			horus.WithMessage(err.Error()),
			horus.WithExitCode(2),
			horus.WithFormatter(func(he *horus.Herror) string { return onelineErr(he.Message) }),
		)
	}
}

// runCommands runs the same pipeline as the site: the search finds the first
// match, opens its category and marks it.
func runCommands(cmd *cobra.Command, args []string) {
	b := openStore("commands").Current()
	pipe := view.NewPipeline(b.Catalog())

	open := flags.open
	if flags.all {
		open = lo.Map(b.Categories, func(c catalog.Category, _ int) string { return c.Name })
	}

	state, effects := pipe.Dispatch(view.NewState(open...), view.SetSearch{Term: flags.search})
	horus.CheckErr(
		writeCatalog(cmd.OutOrStdout(), pipe, state, effects, flags.format),
		horus.WithOp("commands"),
		horus.WithMessage("rendering catalogue"),
	)
}

////////////////////////////////////////////////////////////////////////////////////////////////////
