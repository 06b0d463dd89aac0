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

// Package feed models the changelog entries shown on the updates page and the home widget.
package feed

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"strings"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

type ChangeType string

const (
	Feature     ChangeType = "feature"
	Fix         ChangeType = "fix"
	Improvement ChangeType = "improvement"
	Security    ChangeType = "security"
	Other       ChangeType = "other"
)

// Kind folds unknown or differently cased values into a known type.
func (t ChangeType) Kind() ChangeType {
	switch k := ChangeType(strings.ToLower(strings.TrimSpace(string(t)))); k {
	case Feature, Fix, Improvement, Security:
		return k
	default:
		return Other
	}
}

type Change struct {
	Type        ChangeType `toml:"type" edn:"type" yaml:"type" json:"type"`
	Description string     `toml:"description" edn:"description" yaml:"description" json:"description"`
}

// Update is one changelog record. Slices of updates are newest first.
type Update struct {
	Version     string   `toml:"version" edn:"version" yaml:"version" json:"version"`
	Date        string   `toml:"date" edn:"date" yaml:"date" json:"date"`
	Title       string   `toml:"title" edn:"title" yaml:"title" json:"title"`
	Description string   `toml:"description" edn:"description" yaml:"description" json:"description"`
	Icon        string   `toml:"icon" edn:"icon" yaml:"icon" json:"icon"`
	Highlighted bool     `toml:"highlighted" edn:"highlighted" yaml:"highlighted" json:"highlighted"`
	Changes     []Change `toml:"changes" edn:"changes" yaml:"changes" json:"changes"`
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// Entry is an update positioned in the feed.
type Entry struct {
	Update
	Position int
	Latest   bool
}

// Entries keeps the given order and flags only the first element as latest,
// whatever its Highlighted value.
func Entries(updates []Update) []Entry {
	out := make([]Entry, len(updates))
	for i, u := range updates {
		out[i] = Entry{Update: u, Position: i, Latest: i == 0}
	}
	return out
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// WidgetChanges is how many change notes the compact widget lists per entry.
const WidgetChanges = 2

// Compact returns the first limit changes and how many were left out.
func (e Entry) Compact(limit int) ([]Change, int) {
	if limit < 0 || len(e.Changes) <= limit {
		return e.Changes, 0
	}
	return e.Changes[:limit], len(e.Changes) - limit
}

////////////////////////////////////////////////////////////////////////////////////////////////////
