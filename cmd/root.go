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
	"strings"

	"github.com/DanielRivasMD/domovoi"
	"github.com/DanielRivasMD/horus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/DanielRivasMD/Razor/config"
	"github.com/DanielRivasMD/Razor/data"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

var rootCmd = &cobra.Command{
	Use:     "razor",
	Long:    helpRoot,
	Example: exampleRoot,

	PersistentPreRun:  persistentPreRun,
	PersistentPostRun: persistentPostRun,
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func Execute() {
	horus.CheckErr(rootCmd.Execute())
}

////////////////////////////////////////////////////////////////////////////////////////////////////

type razorFlags struct {
	verbose    bool
	rootDir    string
	dataFile   string
	configFile string

	search string
	open   []string
	all    bool
	format string

	compact bool

	addr  string
	watch bool

	out  string
	hook string

	strict bool
}

var (
	flags  razorFlags
	cfg    config.Config
	logger = zap.NewNop()
)

////////////////////////////////////////////////////////////////////////////////////////////////////

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose diagnostics")
	rootCmd.PersistentFlags().StringVarP(&flags.rootDir, "root", "R", defaultRootDir(), "Data root (recurses "+strings.Join(data.Formats(), ", ")+" files)")
	rootCmd.PersistentFlags().StringVarP(&flags.dataFile, "file", "f", "", "Single data file, overrides --root")
	rootCmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "Settings file (default ./razor.toml or ~/.razor/razor.toml)")
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// persistentPreRun resolves settings once for every subcommand: flags over
// RAZOR_* variables over razor.toml over defaults.
func persistentPreRun(cmd *cobra.Command, args []string) {
	var err error
	logger, err = newLogger(flags.verbose)
	horus.CheckErr(err, horus.WithOp("root.logger"), horus.WithMessage("building logger"))

	home, err := domovoi.FindHome(false)
	horus.CheckErr(err, horus.WithCategory("init_error"), horus.WithMessage("getting home directory"))

	v := config.New(home)
	bindFlags(v, cmd, map[string]string{
		"root":         "root",
		"file":         "file",
		"server.addr":  "addr",
		"server.watch": "watch",
		"build.out":    "out",
		"build.hook":   "hook",
	})

	if err := config.Read(v, flags.configFile); err != nil {
		horus.CheckErr(
			err,
			horus.WithOp("root.config"),
			horus.WithCategory("config_error"),
			horus.WithMessage(err.Error()),
			horus.WithExitCode(2),
			horus.WithFormatter(func(he *horus.Herror) string { return onelineErr(he.Message) }),
		)
	}

	cfg, err = config.Decode(v)
	if err != nil {
		horus.CheckErr(
			err,
			horus.WithOp("root.config"),
			horus.WithCategory("config_error"),
			horus.WithMessage(err.Error()),
			horus.WithExitCode(2),
			horus.WithFormatter(func(he *horus.Herror) string { return onelineErr(he.Message) }),
		)
	}

	logger.Debug("settings resolved",
		zap.String("config", v.ConfigFileUsed()),
		zap.String("root", cfg.Root),
		zap.String("file", cfg.File),
	)
}

func persistentPostRun(cmd *cobra.Command, args []string) {
	_ = logger.Sync()
}

// bindFlags ties viper keys to the flags the running command actually has.
func bindFlags(v *viper.Viper, cmd *cobra.Command, keys map[string]string) {
	for key, name := range keys {
		fl := cmd.Flags().Lookup(name)
		if fl == nil {
			continue
		}
		horus.CheckErr(v.BindPFlag(key, fl), horus.WithOp("root.bind"), horus.WithMessage(name))
	}
}

////////////////////////////////////////////////////////////////////////////////////////////////////
