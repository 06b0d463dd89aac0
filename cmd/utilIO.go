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
	"path/filepath"

	"github.com/DanielRivasMD/domovoi"
	"github.com/DanielRivasMD/horus"
	"github.com/spf13/afero"
	"github.com/ttacon/chalk"
	"go.uber.org/zap"

	"github.com/DanielRivasMD/Razor/config"
	"github.com/DanielRivasMD/Razor/data"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

// fsys is the filesystem every command reads data from and exports to.
var fsys = afero.NewOsFs()

func defaultRootDir() string {
	return rootDirUnder(domovoi.FindHome(false))
}

// rootDirUnder leaves the root empty without a home directory, so --file still works
// and config.Decode reports a missing data source.
func rootDirUnder(home string, err error) string {
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, config.Dir, "data")
}

// openStore loads --file or every data file under --root, exiting on failure.
func openStore(op string) *data.Store {
	store, err := data.Open(fsys, cfg.File, cfg.Root)
	if err != nil {
		horus.CheckErr(
			err,
			horus.WithOp(op),
			horus.WithCategory("data_error"),
			horus.WithMessage(err.Error()),
			horus.WithExitCode(2),
			horus.WithDetails(map[string]any{
				"root": cfg.Root,
				"file": cfg.File,
			}),
			horus.WithFormatter(func(he *horus.Herror) string {
				return "failed to load data: " + chalk.Red.Color(he.Message)
			}),
		)
	}

	b := store.Current()
	logger.Debug("data loaded",
		zap.String("op", op),
		zap.Strings("sources", b.Sources),
		zap.Int("categories", len(b.Categories)),
		zap.Int("updates", len(b.Updates)),
	)
	return store
}

////////////////////////////////////////////////////////////////////////////////////////////////////
