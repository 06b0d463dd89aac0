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
	"github.com/spf13/cobra"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

var updatesCmd = &cobra.Command{
	Use:     "updates",
	Aliases: []string{"changelog"},
	Short:   "Print the update feed",
	Long:    helpUpdates,
	Example: exampleUpdates,

	PreRun: preFormat,
	Run:    runUpdates,
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func init() {
	rootCmd.AddCommand(updatesCmd)

	updatesCmd.Flags().BoolVarP(&flags.compact, "compact", "C", false, "Only the first change notes of each entry")
	updatesCmd.Flags().StringVarP(&flags.format, "format", "F", formatTable, "Output format: table, markdown (changelog), csv")

	horus.CheckErr(
		updatesCmd.RegisterFlagCompletionFunc("format", completeFormat),
		horus.WithOp("updates.init"),
		horus.WithMessage("registering completion for flag format"),
	)
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func runUpdates(cmd *cobra.Command, args []string) {
	b := openStore("updates").Current()
	horus.CheckErr(
		writeFeed(cmd.OutOrStdout(), b.Entries(), flags.compact, flags.format),
		horus.WithOp("updates"),
		horus.WithMessage("rendering update feed"),
	)
}

////////////////////////////////////////////////////////////////////////////////////////////////////
