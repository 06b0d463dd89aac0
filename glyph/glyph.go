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

// Package glyph resolves the icon tokens used in data files into printable symbols.
package glyph

////////////////////////////////////////////////////////////////////////////////////////////////////

import "strings"

////////////////////////////////////////////////////////////////////////////////////////////////////

const Fallback = "•"

var glyphs = map[string]string{
	"bell":     "🔔",
	"bot":      "🤖",
	"bug":      "🐛",
	"clock":    "🕒",
	"command":  "⌘",
	"gamepad":  "🎮",
	"gift":     "🎁",
	"heart":    "❤",
	"lock":     "🔒",
	"music":    "🎵",
	"rocket":   "🚀",
	"search":   "🔍",
	"settings": "⚙",
	"shield":   "🛡",
	"sparkles": "✨",
	"star":     "⭐",
	"ticket":   "🎫",
	"wrench":   "🔧",
	"zap":      "⚡",
}

// Lookup returns the symbol for token, or Fallback when the token is unknown.
func Lookup(token string) string {
	if g, ok := glyphs[strings.ToLower(strings.TrimSpace(token))]; ok {
		return g
	}
	return Fallback
}

// Known reports whether token has a symbol of its own.
func Known(token string) bool {
	_, ok := glyphs[strings.ToLower(strings.TrimSpace(token))]
	return ok
}

////////////////////////////////////////////////////////////////////////////////////////////////////
