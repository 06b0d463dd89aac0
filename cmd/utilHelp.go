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
	"github.com/ttacon/chalk"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

var helpRoot = domovoi.FormatHelp(
	"Daniel Rivas",
	"danielrivasmd@gmail.com",
	"Command catalogue & update feed for a Discord bot",
)

var helpCommands = domovoi.FormatHelp(
	"Daniel Rivas",
	"<danielrivasmd@gmail.com>",
	"Search the command catalogue & print it as a table",
)

var helpUpdates = domovoi.FormatHelp(
	"Daniel Rivas",
	"<danielrivasmd@gmail.com>",
	"Print the update feed, newest first",
)

var helpServe = domovoi.FormatHelp(
	"Daniel Rivas",
	"<danielrivasmd@gmail.com>",
	"Serve the documentation site over HTTP",
)

var helpBuild = domovoi.FormatHelp(
	"Daniel Rivas",
	"<danielrivasmd@gmail.com>",
	"Export the documentation site as static files",
)

var helpBrowse = domovoi.FormatHelp(
	"Daniel Rivas",
	"<danielrivasmd@gmail.com>",
	"Browse commands & updates in the terminal",
)

var helpCheck = domovoi.FormatHelp(
	"Daniel Rivas",
	"<danielrivasmd@gmail.com>",
	"Validate data files",
)

////////////////////////////////////////////////////////////////////////////////////////////////////

var (
	exampleRoot = formatExample("razor", "help")

	exampleCommands = strings.Join([]string{
		formatExample("razor", "commands"),
		formatExample("razor", "commands", "--search", "ban"),
		formatExample("razor", "commands", "--all", "--format", "markdown"),
	}, "\n")

	exampleUpdates = strings.Join([]string{
		formatExample("razor", "updates"),
		formatExample("razor", "updates", "--compact"),
		formatExample("razor", "updates", "--format", "markdown", ">", "CHANGELOG.md"),
	}, "\n")

	exampleServe = strings.Join([]string{
		formatExample("razor", "serve"),
		formatExample("razor", "serve", "--addr", ":3000", "--watch"),
	}, "\n")

	exampleBuild = strings.Join([]string{
		formatExample("razor", "build", "--out", "public"),
		formatExample("razor", "build", "--hook", "'rsync -a {out}/ host:/srv/www'"),
	}, "\n")

	exampleBrowse = formatExample("razor", "browse", "--root", "~/.razor/data")

	exampleCheck = strings.Join([]string{
		formatExample("razor", "check"),
		formatExample("razor", "check", "--strict"),
	}, "\n")
)

// formatExample colors the binary, the subcommand and any flags.
func formatExample(bin string, parts ...string) string {
	out := chalk.Cyan.Color(bin)
	for _, p := range parts {
		switch {
		case strings.HasPrefix(p, "-"):
			out += " " + chalk.Italic.TextStyle(p)
		case out == chalk.Cyan.Color(bin):
			out += " " + chalk.Yellow.Color(p)
		default:
			out += " " + p
		}
	}
	return out
}

func onelineErr(msg string) string {
	return chalk.Bold.TextStyle(chalk.Red.Color("error: ")) + msg
}

////////////////////////////////////////////////////////////////////////////////////////////////////
