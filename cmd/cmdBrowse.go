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
	"context"
	"errors"

	"github.com/DanielRivasMD/horus"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/DanielRivasMD/Razor/browse"
	"github.com/DanielRivasMD/Razor/data"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

var browseCmd = &cobra.Command{
	Use:     "browse",
	Aliases: []string{"tui"},
	Short:   "Browse commands & updates in the terminal",
	Long:    helpBrowse,
	Example: exampleBrowse,

	Run: runBrowse,
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "Reload data files when they change")
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func runBrowse(cmd *cobra.Command, args []string) {
	store := openStore("browse")

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	p := tea.NewProgram(browse.New(cfg.Site.Title, store.Current()), tea.WithAltScreen(), tea.WithContext(ctx))

	var watchErr error
	done := make(chan struct{})
	if cfg.Server.Watch {
		go func() {
			defer close(done)
			// log lines would tear the alt screen
			watchErr = data.Watch(ctx, store, zap.NewNop(), func(b data.Bundle) {
				p.Send(browse.ReloadMsg{Bundle: b})
			})
			if watchErr != nil {
				p.Send(tea.Quit())
			}
		}()
	} else {
		close(done)
	}

	_, err := p.Run()
	cancel()
	<-done

	if err := errors.Join(err, watchErr); err != nil {
		horus.CheckErr(err, horus.WithOp("browse"), horus.WithMessage("running terminal browser"))
	}
}

////////////////////////////////////////////////////////////////////////////////////////////////////
