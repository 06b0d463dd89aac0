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
	"path/filepath"

	"github.com/DanielRivasMD/horus"
	"github.com/spf13/cobra"
	"github.com/ttacon/chalk"
	"go.uber.org/zap"

	"github.com/DanielRivasMD/Razor/site"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

var buildCmd = &cobra.Command{
	Use:     "build",
	Short:   "Export the site as static files",
	Long:    helpBuild,
	Example: exampleBuild,

	Run: runBuild,
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVarP(&flags.out, "out", "o", "public", "Output directory")
	buildCmd.Flags().StringVarP(&flags.hook, "hook", "", "", "Shell command to run after export, {out} is replaced by the output directory")
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func runBuild(cmd *cobra.Command, args []string) {
	b := openStore("build").Current()

	written, err := site.Export(cmd.Context(), fsys, cfg.Build.Out, cfg.Site, b)
	if err != nil {
		horus.CheckErr(
			err,
			horus.WithOp("build.export"),
			horus.WithCategory("export_error"),
			horus.WithMessage(err.Error()),
			horus.WithDetails(map[string]any{"out": cfg.Build.Out}),
			horus.WithFormatter(func(he *horus.Herror) string {
				return "failed to export: " + chalk.Red.Color(he.Message)
			}),
		)
	}

	for _, rel := range written {
		logger.Debug("wrote", zap.String("path", filepath.Join(cfg.Build.Out, rel)))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d files to %s\n", chalk.Green.Color("exported"), len(written), cfg.Build.Out)

	if cfg.Build.Hook != "" {
		hf := newHookConfig(cfg.Build.Hook, Replace("{out}", cfg.Build.Out))
		logger.Info("running build hook", zap.String("command", hf.Cmd()))
		hookForging("build.hook", hf)
	}
}

////////////////////////////////////////////////////////////////////////////////////////////////////
