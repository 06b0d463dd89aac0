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
)

////////////////////////////////////////////////////////////////////////////////////////////////////

type hookReplace struct {
	old string
	new string
}

// hookForge is a post-build shell command with {placeholders} filled in.
type hookForge struct {
	command  string
	replaces []hookReplace
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func newHookConfig(command string, replaces ...hookReplace) hookForge {
	return hookForge{
		command:  command,
		replaces: replaces,
	}
}

func hookForging(op string, hf hookForge) {
	horus.CheckErr(
		domovoi.ExecSh(hf.Cmd()),
		horus.WithOp(op),
		horus.WithCategory("shell_command"),
		horus.WithMessage("Failed to execute build hook"),
		horus.WithDetails(map[string]any{
			"command": hf.Cmd(),
		}),
	)
}

func Replace(key, val string) hookReplace {
	return hookReplace{old: key, new: val}
}

func (h hookForge) Cmd() string {
	pairs := make([]string, 0, 2*len(h.replaces))
	for _, r := range h.replaces {
		pairs = append(pairs, r.old, r.new)
	}
	return strings.NewReplacer(pairs...).Replace(h.command)
}

////////////////////////////////////////////////////////////////////////////////////////////////////
