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

// Package site renders the catalogue and update feed as HTML, served live or exported.
package site

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"embed"
	"io/fs"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

//go:embed templates/*.html static/*
var assets embed.FS

// staticFS is the static/ directory, served under /static/ and copied by Export.
func staticFS() fs.FS {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

////////////////////////////////////////////////////////////////////////////////////////////////////
